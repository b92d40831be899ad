// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

import "context"

// A Source is the underlying stream a StreamRetrier draws from. Each
// Next call is one attempt to produce the next element.
//
// A Source signals that it is exhausted by returning the sentinel
// io.EOF, untouched and unwrapped, after which the retried stream ends
// too; io.EOF is never treated as a failure to retry. Every other
// error is a failed attempt and goes to the retry handler.
//
// Use SourceFunc to convert an ordinary function into a Source.
type Source[T any] interface {
	Next(ctx context.Context) (T, error)
}

// The SourceFunc type is an adapter to allow the use of ordinary
// functions as stream sources.
type SourceFunc[T any] func(ctx context.Context) (T, error)

// Next produces the source's next element.
func (f SourceFunc[T]) Next(ctx context.Context) (T, error) {
	return f(ctx)
}
