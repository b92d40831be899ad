// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package policy

import (
	"github.com/gogama/retryx/backoff"
	"github.com/gogama/retryx/transient"
)

// Transient constructs a retry handler for I/O-flavored operations,
// classifying each failure with transient.Categorize. Connection-level
// interruptions (refusal, reset, abort, broken pipe, lost connection,
// interrupted call) ask for an immediate retry, since the next attempt
// opens a fresh connection anyway. Timeouts ask for a wait on curve b,
// fed by the count of consecutive failures since the last success.
// Every other failure is forwarded: an error the classifier does not
// recognize as transient is unlikely to go away on its own.
//
// Transient imposes no ceiling of its own. Wrap it in Limit to bound
// the number of consecutive retries, which is what Default does.
//
// Transient panics if b is nil.
func Transient(b backoff.Backoff) Handler {
	if b == nil {
		panic("retryx/policy: backoff may not be nil")
	}
	return &transientHandler{backoff: b}
}

type transientHandler struct {
	backoff  backoff.Backoff
	failures int
}

func (h *transientHandler) Handle(err error) Decision {
	h.failures++
	switch transient.Categorize(err) {
	case transient.Not:
		return Forward(err)
	case transient.Timeout:
		return Wait(h.backoff.Delay(h.failures))
	default:
		return Repeat()
	}
}

func (h *transientHandler) OK() {
	h.failures = 0
}

// StreamTransient constructs the stream-side counterpart of Transient,
// with the failure count supplied by the driving stream instead of
// kept internally.
//
// StreamTransient panics if b is nil.
func StreamTransient(b backoff.Backoff) StreamHandler {
	if b == nil {
		panic("retryx/policy: backoff may not be nil")
	}
	return streamTransientHandler{backoff: b}
}

type streamTransientHandler struct {
	backoff backoff.Backoff
}

func (h streamTransientHandler) Handle(attempt int, err error) Decision {
	switch transient.Categorize(err) {
	case transient.Not:
		return Forward(err)
	case transient.Timeout:
		return Wait(h.backoff.Delay(attempt))
	default:
		return Repeat()
	}
}

func (h streamTransientHandler) OK(_ int) {}
