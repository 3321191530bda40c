package pipeline

import (
	"encoding/json"
	"strconv"
)

// OutcomeKind classifies a terminal response.
type OutcomeKind string

const (
	OutcomeSuccess OutcomeKind = "success"
	OutcomeRefusal OutcomeKind = "refusal"
	OutcomeError   OutcomeKind = "error"
)

// Outcome is the classification of one response.
type Outcome struct {
	Kind OutcomeKind

	// Reason is set for refusals, Code for errors.
	Reason string
	Code   string
}

// Classify inspects a written response. The first matching rule wins:
// success flag, string reason, error code, then a status of 400 or above
// as HTTP_<status>. ok is false when nothing matches and no outcome should
// be logged.
func Classify(status int, body []byte) (outcome Outcome, ok bool) {
	var payload map[string]any
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil {
		if success, _ := payload["success"].(bool); success {
			return Outcome{Kind: OutcomeSuccess}, true
		}
		if reason, isString := payload["reason"].(string); isString {
			return Outcome{Kind: OutcomeRefusal, Reason: reason}, true
		}
		if errBody, isObject := payload["error"].(map[string]any); isObject {
			if code, isString := errBody["code"].(string); isString {
				return Outcome{Kind: OutcomeError, Code: code}, true
			}
		}
	}

	if status >= 400 {
		return Outcome{Kind: OutcomeError, Code: "HTTP_" + strconv.Itoa(status)}, true
	}

	return Outcome{}, false
}
