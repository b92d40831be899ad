// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package backoff

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// A Backoff specifies how long to wait before retrying a failed
// operation attempt. Delay receives the number of the attempt that just
// failed, where 1 is the first attempt since the last success. Values
// below 1 are treated as 1.
//
// Implementations of Backoff must be safe for concurrent use by
// multiple goroutines, since a single Backoff value is often shared by
// many retry handlers.
//
// This package provides the constructors Fixed, Exp, and Atan. In
// addition it provides a concrete instance suitable for many typical
// use cases, Default.
type Backoff interface {
	Delay(attempt int) time.Duration
}

// Default is the default backoff curve. It uses the arctangent
// progression built by Atan, climbing from a 5 millisecond wait on the
// first failed attempt toward, but never reaching, 1 second.
var Default = Atan(5*time.Millisecond, 1000*time.Millisecond)

// Fixed constructs a Backoff that always returns the given duration.
//
// Use Fixed to obtain a constant retry wait.
func Fixed(d time.Duration) Backoff {
	return fixedBackoff(d)
}

type fixedBackoff time.Duration

func (b fixedBackoff) Delay(_ int) time.Duration {
	return time.Duration(b)
}

// Exp constructs a Backoff implementing an exponential formula with
// optional jitter.
//
// The formula implemented is the "Full Jitter" approach described in:
// https://aws.amazon.com/blogs/architecture/exponential-backoff-and-jitter.
//
// Parameters base and max control the exponential calculation of the
// ceiling:
//
//	ceil := min(base * 2**(attempt-1), max)
//
// Base and max must be positive values, and max must be at least equal
// to base.
//
// Parameter jitter is used to generate a random number between 0 and
// ceil. To make a backoff that does not jitter and simply returns
// ceil on each attempt, pass nil for jitter. Otherwise you may specify
// either a random number generator seed value (as a time.Time, int, or
// int64) or a random number generator (as a rand.Source). If a seed
// value is specified, it is used to seed a random number generator
// for calculating jitter. If a rand.Source is specified, it is used to
// calculate jitter.
func Exp(base, max time.Duration, jitter any) Backoff {
	if base < 1 {
		panic("retryx/backoff: base must be positive")
	}
	if max < base {
		panic("retryx/backoff: max must be at least base")
	}
	r := jitterToRand(jitter)
	return &jitterExpBackoff{
		base: base,
		max:  max,
		rand: r,
	}
}

type jitterExpBackoff struct {
	base time.Duration
	max  time.Duration
	rand *rand.Rand
	lock sync.Mutex
}

func (b *jitterExpBackoff) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	exp := int64(1) << (attempt - 1)
	if exp < 1 {
		exp = 1<<63 - 1
	}

	ceil := int64(b.base) * exp
	if ceil < int64(b.base) || int64(b.max) < ceil {
		ceil = int64(b.max)
	}

	duration := ceil
	if ceil > 0 {
		b.lock.Lock()
		defer b.lock.Unlock()
		if b.rand != nil {
			duration = b.rand.Int63n(ceil)
		}
	}

	return time.Duration(duration)
}

// Atan constructs a Backoff implementing an arctangent curve which
// starts at min on the first failed attempt and rises toward max on
// subsequent attempts without ever reaching it:
//
//	delay := min + atan((attempt-1)/2) * (2/pi) * (max-min)
//
// The curve front-loads its growth and then flattens. Starting from the
// Default parameters of 5 milliseconds and 1 second, the delay on the
// first attempt is 5ms, then roughly 299ms, 503ms, 628ms, 706ms, and by
// the tenth attempt about 861ms.
//
// The delay is non-decreasing in the attempt number and, as long as max
// exceeds min, stays strictly below max for every attempt. Min must be
// positive, and max must be at least equal to min.
func Atan(min, max time.Duration) Backoff {
	if min < 1 {
		panic("retryx/backoff: min must be positive")
	}
	if max < min {
		panic("retryx/backoff: max must be at least min")
	}
	return atanBackoff{
		min: min,
		max: max,
	}
}

type atanBackoff struct {
	min time.Duration
	max time.Duration
}

func (b atanBackoff) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	scale := math.Atan(float64(attempt-1)/2) * (2 / math.Pi)
	return b.min + time.Duration(scale*float64(b.max-b.min))
}

func jitterToRand(jitter any) *rand.Rand {
	var s rand.Source
	switch j := jitter.(type) {
	case nil:
		return nil
	case time.Time:
		s = rand.NewSource(j.UnixNano())
	case int:
		s = rand.NewSource(int64(j))
	case int64:
		s = rand.NewSource(j)
	case *rand.Rand:
		if j == nil {
			panic("retryx/backoff: jitter may not be a typed nil")
		}
		return j
	case rand.Source:
		s = j
	default:
		panic("retryx/backoff: invalid jitter type")
	}
	return rand.New(s)
}
