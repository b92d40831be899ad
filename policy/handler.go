// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package policy

import "github.com/gogama/retryx/backoff"

// A Handler owns the retry decisions for one retried operation. The
// driver calls Handle after every failed attempt, and the returned
// Decision tells it how to proceed. When an attempt finally succeeds
// the driver calls OK exactly once and then leaves the handler alone.
//
// Unlike a StreamHandler, a Handler receives no attempt number. Any
// bookkeeping it wants, such as a ceiling on consecutive failures, it
// keeps itself, which is why the built-in constructors return a fresh
// value per call. A Handler may therefore be stateful, and a single
// instance must not drive two retried operations at the same time.
//
// Use the built-in constructors Limit, Transient, and Default; or
// implement your own Handler. Use HandlerFunc to convert an ordinary
// function into a Handler.
type Handler interface {
	Handle(err error) Decision
	OK()
}

// A StreamHandler owns the retry decisions for one retried stream. It
// plays the same role as Handler, with one difference: the driving
// stream maintains the attempt counter on the handler's behalf. Handle
// receives the 1-indexed number of the attempt that just failed, and OK
// receives the attempt number at which the stream finally produced an
// element; after each success the counting starts over at 1.
//
// A StreamHandler may be stateful, and a single instance must not drive
// two retried streams at the same time. The built-in stream handlers
// happen to be stateless because the driver already does the counting
// for them.
//
// Use the built-in constructors StreamLimit, StreamTransient, and
// StreamDefault; or implement your own StreamHandler. Use
// StreamHandlerFunc to convert an ordinary function into a
// StreamHandler.
type StreamHandler interface {
	Handle(attempt int, err error) Decision
	OK(attempt int)
}

// The HandlerFunc type is an adapter to allow the use of ordinary
// functions as retry handlers. The function is consulted on every
// failed attempt; OK does nothing.
type HandlerFunc func(err error) Decision

// Handle decides how the driver should proceed after a failed attempt.
func (f HandlerFunc) Handle(err error) Decision {
	return f(err)
}

// OK does nothing. A bare function keeps no state worth resetting.
func (f HandlerFunc) OK() {}

// The StreamHandlerFunc type is an adapter to allow the use of ordinary
// functions as stream retry handlers. The function is consulted on
// every failed attempt; OK does nothing.
type StreamHandlerFunc func(attempt int, err error) Decision

// Handle decides how the driver should proceed after a failed attempt.
func (f StreamHandlerFunc) Handle(attempt int, err error) Decision {
	return f(attempt, err)
}

// OK does nothing. A bare function keeps no state worth resetting.
func (f StreamHandlerFunc) OK(_ int) {}

// Never is a handler that never retries: every failure is forwarded
// as-is. It is useful if you want the bookkeeping of a retried
// operation without any retries.
var Never Handler = HandlerFunc(func(err error) Decision {
	return Forward(err)
})

// StreamNever is a handler that never retries a stream: every failure
// becomes an error element in the output.
var StreamNever StreamHandler = StreamHandlerFunc(func(_ int, err error) Decision {
	return Forward(err)
})

// DefaultRetries is the number of consecutive retries the handlers
// built by Default and StreamDefault allow before giving up.
const DefaultRetries = 5

// Default constructs a general-purpose retry handler suitable for
// common use cases. It retries transient failures up to DefaultRetries
// consecutive times (i.e. up to 6 total attempts between successes):
// connection-level failures immediately, timeouts after a wait on the
// backoff.Default curve. Every other failure is forwarded at once.
//
// Each call returns a fresh handler, because handlers carry per-run
// state and cannot be shared.
func Default() Handler {
	return Limit(DefaultRetries, Transient(backoff.Default))
}

// StreamDefault constructs the stream-side counterpart of Default.
func StreamDefault() StreamHandler {
	return StreamLimit(DefaultRetries, StreamTransient(backoff.Default))
}
