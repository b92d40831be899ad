// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

import (
	"context"

	"github.com/gogama/retryx/timeout"
	"github.com/gogama/retryx/transient"
)

// TimeLimit wraps a factory so that every operation it produces runs
// under its own attempt deadline, chosen by the given timeout policy.
// The deadline is applied through the operation's context, so the
// operation must honor cancellation for the limit to bite.
//
// An attempt that outlives its deadline fails with the context's
// deadline error, which package transient classifies as a timeout, so
// handlers built on policy.Transient answer it with a backoff wait.
// The policy is consulted before each attempt and told how the
// previous attempt ended, which lets a policy such as timeout.Adaptive
// trade a tight usual deadline for looser ones once attempts start
// timing out.
//
// The returned factory carries per-run state and is exclusively owned:
// use it with one Retrier at a time, and construct a fresh one for
// each run. A nil policy selects timeout.DefaultPolicy. TimeLimit
// panics if factory is nil.
func TimeLimit[T any](factory Factory[T], p timeout.Policy) Factory[T] {
	if factory == nil {
		panic("retryx: factory may not be nil")
	}
	if p == nil {
		p = timeout.DefaultPolicy
	}
	return &timeLimitFactory[T]{factory: factory, policy: p}
}

type timeLimitFactory[T any] struct {
	factory  Factory[T]
	policy   timeout.Policy
	prev     error
	timeouts int
}

func (f *timeLimitFactory[T]) New() Operation[T] {
	op := f.factory.New()
	d := f.policy.Timeout(f.prev, f.timeouts)
	return func(ctx context.Context) (T, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		v, err := op(ctx)
		f.prev = err
		if transient.Categorize(err) == transient.Timeout {
			f.timeouts++
		}
		return v, err
	}
}
