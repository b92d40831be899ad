// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package policy

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestForward(t *testing.T) {
	err := errors.New("out of cheese")
	d := Forward(err)
	assert.True(t, d.Terminal())
	assert.False(t, d.Delayed())
	assert.Same(t, err, d.Err())
	assert.Equal(t, time.Duration(0), d.Delay())
	assert.Panics(t, func() {
		Forward(nil)
	}, "nil error")
}

func TestRepeat(t *testing.T) {
	d := Repeat()
	assert.False(t, d.Terminal())
	assert.False(t, d.Delayed())
	assert.NoError(t, d.Err())
	assert.Equal(t, time.Duration(0), d.Delay())
	assert.Equal(t, Repeat(), Decision{}, "zero value is Repeat")
}

func TestWait(t *testing.T) {
	d := Wait(250 * time.Millisecond)
	assert.False(t, d.Terminal())
	assert.True(t, d.Delayed())
	assert.NoError(t, d.Err())
	assert.Equal(t, 250*time.Millisecond, d.Delay())

	zero := Wait(0)
	assert.True(t, zero.Delayed(), "zero wait is still a wait")
	assert.Equal(t, time.Duration(0), zero.Delay())
	assert.NotEqual(t, Repeat(), zero)
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "repeat", Repeat().String())
	assert.Equal(t, "repeat", Decision{}.String())
	assert.Equal(t, "wait 10ms", Wait(10*time.Millisecond).String())
	assert.Equal(t, "forward: out of cheese", Forward(errors.New("out of cheese")).String())
}
