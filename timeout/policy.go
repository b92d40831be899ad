// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"time"

	"github.com/gogama/retryx/transient"
)

// A Policy defines how to pick the deadline for each attempt of a
// retried operation, the initial attempt as well as any retries. Plug
// a Policy into retryx.TimeLimit to bound every attempt an operation
// factory produces.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
type Policy interface {
	// Timeout returns the timeout to set on the next attempt.
	//
	// Parameter prev is the error that ended the previous attempt,
	// or nil if there was no previous attempt. Parameter timeouts is
	// the number of attempts so far that ended in a timeout, as
	// classified by transient.Categorize.
	Timeout(prev error, timeouts int) time.Duration
}

// DefaultPolicy is the default timeout policy. It sets a fixed timeout
// of 5 seconds on each attempt.
var DefaultPolicy Policy = Fixed(5 * time.Second)

// Infinite is a built-in timeout policy which never times out.
var Infinite Policy = Fixed(1<<63 - 1)

// Fixed constructs a timeout policy that uses the same value to set
// every attempt timeout. The return value is a timeout policy that
// always returns the value d.
//
// Use Fixed to create the typical timeout behavior supported by most
// retrying client software.
func Fixed(d time.Duration) Policy {
	return policy([]time.Duration{d})
}

// Adaptive constructs a timeout policy that varies the next timeout
// value if the previous attempt timed out.
//
// Use Adaptive if you find the operation often exhibits one-off slow
// completion times that can be cured by quickly timing out and
// retrying, but you also need to protect your application (and the
// remote party, if the operation talks to one) from retry storms and
// failure when the slowness persists and most attempts run slower than
// your usual quick timeout.
//
// Parameter usual represents the timeout value the policy will return
// for an initial attempt and for any retry where the immediately
// preceding attempt did not time out.
//
// Parameter after contains timeout values the policy will return if
// the previous attempt timed out. If this was the first timeout of the
// retried run, after[0] is returned; if the second, after[1], and so
// on. If more attempts have timed out within the run than after has
// elements, then the last element of after is returned.
//
// Consider the following timeout policy:
//
//	p := Adaptive(200*time.Millisecond, time.Second, 10*time.Second)
//
// The policy p will use 200 milliseconds as the usual timeout but if
// the preceding attempt timed out and was the first timeout of the
// run, it will use 1 second; and if the previous attempt timed out and
// was not the first timeout, it will use 10 seconds.
func Adaptive(usual time.Duration, after ...time.Duration) Policy {
	p := make([]time.Duration, 1, 1+len(after))
	p[0] = usual
	return policy(append(p, after...))
}

type policy []time.Duration

func (p policy) Timeout(prev error, timeouts int) time.Duration {
	if transient.Categorize(prev) != transient.Timeout {
		return p[0]
	}

	i := timeouts
	if i > len(p)-1 {
		i = len(p) - 1
	}

	return p[i]
}
