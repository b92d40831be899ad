// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

import "context"

// An Operation is one attempt at a retried unit of work: a single-use
// deferred computation that either produces a value or fails. The
// drivers invoke an Operation at most once. After a failure the next
// attempt runs a fresh Operation obtained from the Factory, never the
// failed value again.
//
// An Operation that blocks should honor cancellation of ctx.
type Operation[T any] func(ctx context.Context) (T, error)

// A Factory creates the Operation for each attempt of a retried unit
// of work. New is called once when the Retrier is constructed, and once
// more before every further attempt.
//
// Use FactoryFunc to convert an ordinary function into a Factory.
type Factory[T any] interface {
	New() Operation[T]
}

// The FactoryFunc type is an adapter to allow the use of ordinary
// functions as operation factories.
type FactoryFunc[T any] func() Operation[T]

// New returns the operation for the next attempt.
func (f FactoryFunc[T]) New() Operation[T] {
	return f()
}
