// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit implements the in-process fixed-window counter that
// bounds requests per partner credential.
package ratelimit

import (
	"errors"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"
)

const shardCount = 32

// ErrInvalidLimits is returned by [NewFixedWindow] for a non-positive limit
// or window.
var ErrInvalidLimits = errors.New("rate limit and window must be positive")

// Decision is the outcome of a single [FixedWindow.Check].
type Decision struct {
	Allowed bool

	// Limit is the configured number of requests per window.
	Limit int

	// Remaining is how many more requests the current window admits.
	Remaining int

	// RetryAfterSeconds is set on denials only and is never below 1.
	RetryAfterSeconds int
}

type bucket struct {
	windowStart time.Time
	count       int
}

type shard struct {
	mu      sync.Mutex
	buckets map[string]*bucket
}

// FixedWindow counts requests per identity in fixed windows. Checks for the
// same identity are serialized by the identity's shard lock; identities on
// different shards proceed independently.
//
// Stale buckets are swept during Check, no more often than once per window.
type FixedWindow struct {
	limit  int
	window time.Duration
	shards [shardCount]shard

	// lastSweep holds UnixNano of the last sweep.
	lastSweep atomic.Int64
}

// NewFixedWindow returns a limiter admitting limit requests per window.
func NewFixedWindow(limit int, window time.Duration) (*FixedWindow, error) {
	if limit <= 0 || window <= 0 {
		return nil, ErrInvalidLimits
	}

	l := &FixedWindow{limit: limit, window: window}
	for i := range l.shards {
		l.shards[i].buckets = make(map[string]*bucket)
	}

	return l, nil
}

// Check counts a request from identity at now and reports whether it is
// admitted. A denied request does not consume a slot.
func (l *FixedWindow) Check(identity string, now time.Time) Decision {
	l.maybeSweep(now)

	s := l.shardFor(identity)
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[identity]
	if !ok || now.Sub(b.windowStart) >= l.window {
		s.buckets[identity] = &bucket{windowStart: now, count: 1}
		return Decision{Allowed: true, Limit: l.limit, Remaining: l.limit - 1}
	}

	if b.count >= l.limit {
		return Decision{
			Limit:             l.limit,
			RetryAfterSeconds: retryAfterSeconds(b.windowStart.Add(l.window).Sub(now)),
		}
	}

	b.count++
	return Decision{Allowed: true, Limit: l.limit, Remaining: l.limit - b.count}
}

// Len returns the number of tracked identities.
func (l *FixedWindow) Len() int {
	n := 0
	for i := range l.shards {
		s := &l.shards[i]
		s.mu.Lock()
		n += len(s.buckets)
		s.mu.Unlock()
	}
	return n
}

func (l *FixedWindow) shardFor(identity string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(identity))
	return &l.shards[h.Sum32()%shardCount]
}

// maybeSweep drops buckets whose window has fully elapsed. Only the caller
// that wins the CAS sweeps.
func (l *FixedWindow) maybeSweep(now time.Time) {
	last := l.lastSweep.Load()
	if last == 0 {
		l.lastSweep.CompareAndSwap(0, now.UnixNano())
		return
	}
	if now.UnixNano()-last < int64(l.window) {
		return
	}
	if !l.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}

	for i := range l.shards {
		s := &l.shards[i]
		s.mu.Lock()
		for identity, b := range s.buckets {
			if now.Sub(b.windowStart) >= l.window {
				delete(s.buckets, identity)
			}
		}
		s.mu.Unlock()
	}
}

// retryAfterSeconds rounds the remaining window up to whole seconds, with a
// floor of one.
func retryAfterSeconds(remaining time.Duration) int {
	secs := int((remaining + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}
