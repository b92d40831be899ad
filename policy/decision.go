// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package policy

import "time"

// A Decision is a handler's answer to one failed operation attempt. It
// selects exactly one of three courses: forward the error to the caller
// and stop retrying (Forward), try again immediately (Repeat), or try
// again once a wait has elapsed (Wait).
//
// The zero value of Decision is Repeat().
type Decision struct {
	kind  decisionKind
	delay time.Duration
	err   error
}

type decisionKind int

const (
	repeatKind decisionKind = iota
	waitKind
	forwardKind
)

// Forward constructs a Decision that gives up on the operation and
// surfaces err to the caller. For a retried operation this ends the
// run; for a retried stream it emits one error element and leaves the
// stream open.
//
// Forward panics if err is nil. Forwarding nothing is always a handler
// bug, since the caller would be handed a failure it cannot see.
func Forward(err error) Decision {
	if err == nil {
		panic("retryx/policy: forwarded error may not be nil")
	}
	return Decision{kind: forwardKind, err: err}
}

// Repeat constructs a Decision to try the operation again immediately.
// The driver involves no timer on this path.
func Repeat() Decision {
	return Decision{}
}

// Wait constructs a Decision to try the operation again after d has
// elapsed. The driver serves the wait through its Timer before the next
// attempt; this holds even for a zero or negative d, which behaves as
// an immediate wake-up request.
func Wait(d time.Duration) Decision {
	return Decision{kind: waitKind, delay: d}
}

// Terminal reports whether the decision gives up and forwards an error.
func (d Decision) Terminal() bool {
	return d.kind == forwardKind
}

// Delayed reports whether the decision schedules a wait before the next
// attempt.
func (d Decision) Delayed() bool {
	return d.kind == waitKind
}

// Err returns the error a Terminal decision forwards, and nil for any
// other decision.
func (d Decision) Err() error {
	return d.err
}

// Delay returns the wait a Delayed decision schedules, and zero for any
// other decision.
func (d Decision) Delay() time.Duration {
	return d.delay
}

// String describes the decision for logs and error messages.
func (d Decision) String() string {
	switch d.kind {
	case forwardKind:
		return "forward: " + d.err.Error()
	case waitKind:
		return "wait " + d.delay.String()
	default:
		return "repeat"
	}
}
