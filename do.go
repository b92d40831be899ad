// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

import (
	"context"
	"io"

	"github.com/gogama/retryx/policy"
)

// Do runs one retried unit of work to completion. It is shorthand for
// NewRetrier(factory, handler).Run(ctx).
func Do[T any](ctx context.Context, factory Factory[T], handler policy.Handler) (T, error) {
	return NewRetrier[T](factory, handler).Run(ctx)
}

// ForEach consumes a retried stream to exhaustion, passing every
// element, forwarded failures included, to fn in emission order. It
// returns nil once the source reports io.EOF, fn's error if fn rejects
// an element, and otherwise the machinery error that ended the stream
// early.
func ForEach[T any](ctx context.Context, source Source[T], handler policy.StreamHandler, fn func(Item[T]) error) error {
	s := NewStreamRetrier[T](source, handler)
	for {
		item, err := s.Next(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(item); err != nil {
			return err
		}
	}
}
