// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

import (
	"context"
	"time"
)

// A Timer serves the waits between retry attempts. Whenever a handler
// returns a wait decision, the driver calls Sleep and does not proceed
// until it returns.
//
// Sleep blocks until at least d has elapsed, returning nil, or until
// ctx is done, returning ctx.Err(). Any other error means the timer
// itself failed. The drivers treat a timer failure as fatal and
// surface it without consulting the retry handler, because scheduling
// another attempt would need the very timer that just failed.
//
// The wake-up clock is the one capability the drivers do not bring
// themselves: both driver types have a Timer field, and leave it nil
// to get DefaultTimer. Substituting a Timer makes waits observable, or
// subject to a different clock, without touching the retry logic.
type Timer interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// The TimerFunc type is an adapter to allow the use of ordinary
// functions as timers.
type TimerFunc func(ctx context.Context, d time.Duration) error

// Sleep blocks until the wait has elapsed or ctx is done.
func (f TimerFunc) Sleep(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// DefaultTimer is the wall-clock Timer the drivers use unless told
// otherwise. Its Sleep never fails for any reason other than context
// cancellation.
var DefaultTimer Timer = sleepTimer{}

type sleepTimer struct{}

func (sleepTimer) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	}
}
