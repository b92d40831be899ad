// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package policy

// Limit constructs a handler that enforces a retry budget around next.
// While the count of consecutive failures since the last success is at
// most max, the decision is delegated to next. The failure after that
// is forwarded without consulting next. A success resets the count, so
// Limit(max, next) allows up to max retries, or max+1 total attempts,
// between successes.
//
// A non-positive max forwards every failure. Limit panics if next is
// nil.
func Limit(max int, next Handler) Handler {
	if next == nil {
		panic("retryx/policy: next handler may not be nil")
	}
	return &limitHandler{max: max, next: next}
}

type limitHandler struct {
	max      int
	next     Handler
	failures int
}

func (h *limitHandler) Handle(err error) Decision {
	h.failures++
	if h.failures > h.max {
		return Forward(err)
	}
	return h.next.Handle(err)
}

func (h *limitHandler) OK() {
	h.failures = 0
	h.next.OK()
}

// StreamLimit constructs the stream-side counterpart of Limit. It keeps
// no count of its own: the attempt number supplied by the driving
// stream is already the count of consecutive failures, so the budget
// check reads it directly. The budget arithmetic matches Limit exactly.
//
// A non-positive max forwards every failure. StreamLimit panics if next
// is nil.
func StreamLimit(max int, next StreamHandler) StreamHandler {
	if next == nil {
		panic("retryx/policy: next handler may not be nil")
	}
	return streamLimitHandler{max: max, next: next}
}

type streamLimitHandler struct {
	max  int
	next StreamHandler
}

func (h streamLimitHandler) Handle(attempt int, err error) Decision {
	if attempt > h.max {
		return Forward(err)
	}
	return h.next.Handle(attempt, err)
}

func (h streamLimitHandler) OK(attempt int) {
	h.next.OK(attempt)
}
