// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

import (
	"context"

	"github.com/gogama/retryx/policy"
)

// A Retrier drives one unit of work to a single terminal outcome,
// retrying failed attempts as its handler directs. Construct it with
// NewRetrier and run it with Run.
//
// A Retrier is exclusively owned. It is not safe for concurrent use,
// and Run consumes it. To run the same work again, construct another
// Retrier; the Factory makes that cheap.
type Retrier[T any] struct {
	// Timer serves the waits between attempts. If Timer is nil, the
	// Retrier uses DefaultTimer.
	Timer Timer

	factory Factory[T]
	handler policy.Handler
	op      Operation[T]
	ran     bool
}

// NewRetrier constructs a Retrier from an operation factory and a
// retry handler. The factory is invoked once, immediately, to create
// the operation for the first attempt, and once more before each
// further attempt.
//
// A nil handler selects a fresh product of policy.Default(). NewRetrier
// panics if factory is nil.
func NewRetrier[T any](factory Factory[T], handler policy.Handler) *Retrier[T] {
	if factory == nil {
		panic("retryx: factory may not be nil")
	}
	if handler == nil {
		handler = policy.Default()
	}
	return &Retrier[T]{
		factory: factory,
		handler: handler,
		op:      factory.New(),
	}
}

// Run blocks until the retried work reaches a terminal outcome and
// returns it: the first success value, the first error the handler
// forwarded, ctx.Err() if the context ended an attempt or a wait, or a
// timer failure. Run may be called once; calling it again panics.
//
// Between a failure and the next attempt, Run either loops immediately
// (repeat decisions) or sleeps on the Timer (wait decisions). An
// attempt that succeeds is terminal even if ctx expired while it ran.
func (r *Retrier[T]) Run(ctx context.Context) (T, error) {
	var zero T
	if r.ran {
		panic("retryx: Run called twice")
	}
	r.ran = true
	for {
		v, err := r.op(ctx)
		r.op = nil
		if err == nil {
			r.handler.OK()
			return v, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zero, ctxErr
		}
		d := r.handler.Handle(err)
		if d.Terminal() {
			return zero, d.Err()
		}
		if d.Delayed() {
			if sleepErr := r.timer().Sleep(ctx, d.Delay()); sleepErr != nil {
				return zero, sleepErr
			}
		}
		r.op = r.factory.New()
	}
}

func (r *Retrier[T]) timer() Timer {
	if r.Timer == nil {
		return DefaultTimer
	}
	return r.Timer
}
