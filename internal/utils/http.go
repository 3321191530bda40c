package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrEncodingJSON is returned by WriteJSON when data cannot be serialized.
// Nothing has been written to the response in that case.
var ErrEncodingJSON = errors.New("error writing data to JSON")

// WriteJSON serializes data and writes it with statusCode and a JSON content
// type.
//
// Serialization happens before anything is written, so on ErrEncodingJSON
// the response is left untouched and the caller can still write a fallback.
// Any other error comes from the underlying Write, after the status line is
// committed.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
