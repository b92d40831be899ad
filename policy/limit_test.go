// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package policy

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimit(t *testing.T) {
	err := errors.New("qux")
	t.Run("nil next", func(t *testing.T) {
		assert.Panics(t, func() {
			Limit(3, nil)
		})
	})
	t.Run("delegates within budget", func(t *testing.T) {
		next := &countingHandler{decision: Wait(time.Second)}
		h := Limit(2, next)
		assert.Equal(t, Wait(time.Second), h.Handle(err))
		assert.Equal(t, Wait(time.Second), h.Handle(err))
		require.Len(t, next.handled, 2)
		assert.Same(t, err, next.handled[0])
		assert.Same(t, err, next.handled[1])
	})
	t.Run("forwards past budget without consulting next", func(t *testing.T) {
		next := &countingHandler{decision: Repeat()}
		h := Limit(2, next)
		h.Handle(err)
		h.Handle(err)
		d := h.Handle(err)
		assert.True(t, d.Terminal())
		assert.Same(t, err, d.Err())
		assert.Len(t, next.handled, 2, "next not consulted once the budget is spent")
	})
	t.Run("success resets the budget", func(t *testing.T) {
		next := &countingHandler{decision: Repeat()}
		h := Limit(1, next)
		assert.Equal(t, Repeat(), h.Handle(err))
		h.OK()
		assert.Equal(t, 1, next.oks, "reset propagates to next")
		assert.Equal(t, Repeat(), h.Handle(err), "budget is fresh after a success")
		assert.True(t, h.Handle(err).Terminal())
	})
	t.Run("non-positive max forwards everything", func(t *testing.T) {
		next := &countingHandler{decision: Repeat()}
		h := Limit(0, next)
		assert.True(t, h.Handle(err).Terminal())
		assert.Empty(t, next.handled)
	})
}

func TestStreamLimit(t *testing.T) {
	err := errors.New("quux")
	t.Run("nil next", func(t *testing.T) {
		assert.Panics(t, func() {
			StreamLimit(3, nil)
		})
	})
	t.Run("delegates within budget", func(t *testing.T) {
		next := &countingStreamHandler{decision: Repeat()}
		h := StreamLimit(2, next)
		assert.Equal(t, Repeat(), h.Handle(1, err))
		assert.Equal(t, Repeat(), h.Handle(2, err))
		assert.Equal(t, []int{1, 2}, next.attempts)
	})
	t.Run("forwards past budget without consulting next", func(t *testing.T) {
		next := &countingStreamHandler{decision: Repeat()}
		h := StreamLimit(2, next)
		d := h.Handle(3, err)
		assert.True(t, d.Terminal())
		assert.Same(t, err, d.Err())
		assert.Empty(t, next.attempts)
	})
	t.Run("success notification passes through", func(t *testing.T) {
		next := &countingStreamHandler{decision: Repeat()}
		h := StreamLimit(2, next)
		h.OK(4)
		assert.Equal(t, []int{4}, next.oks)
	})
	t.Run("non-positive max forwards everything", func(t *testing.T) {
		next := &countingStreamHandler{decision: Repeat()}
		h := StreamLimit(0, next)
		assert.True(t, h.Handle(1, err).Terminal())
		assert.Empty(t, next.attempts)
	})
}

type countingHandler struct {
	decision Decision
	handled  []error
	oks      int
}

func (h *countingHandler) Handle(err error) Decision {
	h.handled = append(h.handled, err)
	return h.decision
}

func (h *countingHandler) OK() {
	h.oks++
}

type countingStreamHandler struct {
	decision Decision
	attempts []int
	oks      []int
}

func (h *countingStreamHandler) Handle(attempt int, err error) Decision {
	h.attempts = append(h.attempts, attempt)
	return h.decision
}

func (h *countingStreamHandler) OK(attempt int) {
	h.oks = append(h.oks, attempt)
}
