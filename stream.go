// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

import (
	"context"
	"io"
	"time"

	"github.com/gogama/retryx/policy"
)

// An Item is one element of a retried stream, tagged with the number
// of the attempt that produced it. A nil Err marks a success element
// carrying Value. A non-nil Err marks a failure the handler chose to
// forward; Value is the zero value then.
type Item[T any] struct {
	Value   T
	Attempt int
	Err     error
}

// A StreamRetrier wraps a Source so that failed attempts to produce
// the next element are retried in place, without ending the stream.
// Construct it with NewStreamRetrier or NewStreamRetrierWithCounter
// and pull elements with Next.
//
// The StreamRetrier maintains the attempt counter its handler sees. The
// counter starts at 1, rises by 1 with each consecutive failure, and
// returns to 1 whenever an element is emitted, whether a success or a
// forwarded failure.
//
// A StreamRetrier is exclusively owned: it is not safe for concurrent
// use, and only one Next call may be in flight at a time.
type StreamRetrier[T any] struct {
	// Timer serves the waits between attempts. If Timer is nil, the
	// StreamRetrier uses DefaultTimer.
	Timer Timer

	source  Source[T]
	handler policy.StreamHandler
	attempt int
	owed    time.Duration
	waiting bool
}

// NewStreamRetrier constructs a StreamRetrier whose attempt counter
// starts at 1. A nil handler selects a fresh product of
// policy.StreamDefault(). NewStreamRetrier panics if source is nil.
func NewStreamRetrier[T any](source Source[T], handler policy.StreamHandler) *StreamRetrier[T] {
	return NewStreamRetrierWithCounter(source, handler, attemptStart)
}

// NewStreamRetrierWithCounter constructs a StreamRetrier whose attempt
// counter starts at the given value instead of 1. This suits handing
// an in-progress failure streak over to a replacement stream, for
// example after the underlying source had to be recreated. It panics
// if source is nil or attempt is less than 1; a nil handler selects a
// fresh product of policy.StreamDefault().
func NewStreamRetrierWithCounter[T any](source Source[T], handler policy.StreamHandler, attempt int) *StreamRetrier[T] {
	if source == nil {
		panic("retryx: source may not be nil")
	}
	if handler == nil {
		handler = policy.StreamDefault()
	}
	if attempt < attemptStart {
		panic("retryx: attempt counter starts at 1 or above")
	}
	return &StreamRetrier[T]{
		source:  source,
		handler: handler,
		attempt: attempt,
	}
}

const attemptStart = 1

// Next blocks until the stream produces its next element and returns
// it tagged with the attempt number. Failures the handler absorbs, by
// repeating or waiting, stay invisible to the caller; a failure the
// handler forwards comes back as an element with Err set, and the
// stream remains open past it.
//
// The error return carries only stream machinery conditions: io.EOF
// once the underlying source is exhausted, ctx.Err() if the context
// ends an attempt or a wait, or a failure of the Timer itself. A wait
// interrupted by cancellation is not forgotten; the next call serves
// the full wait again before touching the source.
func (s *StreamRetrier[T]) Next(ctx context.Context) (Item[T], error) {
	for {
		if s.waiting {
			if err := s.timer().Sleep(ctx, s.owed); err != nil {
				return Item[T]{}, err
			}
			s.waiting = false
		}
		v, err := s.source.Next(ctx)
		if err == nil {
			attempt := s.attempt
			s.attempt = attemptStart
			s.handler.OK(attempt)
			return Item[T]{Value: v, Attempt: attempt}, nil
		}
		if err == io.EOF {
			return Item[T]{}, io.EOF
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Item[T]{}, ctxErr
		}
		attempt := s.attempt
		s.attempt++
		d := s.handler.Handle(attempt, err)
		switch {
		case d.Terminal():
			s.attempt = attemptStart
			return Item[T]{Err: d.Err(), Attempt: attempt}, nil
		case d.Delayed():
			s.waiting = true
			s.owed = d.Delay()
		}
	}
}

func (s *StreamRetrier[T]) timer() Timer {
	if s.Timer == nil {
		return DefaultTimer
	}
	return s.Timer
}
