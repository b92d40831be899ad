// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogama/retryx/policy"
)

func TestDo(t *testing.T) {
	errFlaky := errors.New("flaky")
	t.Run("retries to success", func(t *testing.T) {
		f := &scriptedFactory[int]{ops: []Operation[int]{
			opError[int](errFlaky),
			opValue(3),
		}}
		v, err := Do[int](context.Background(), f, repeatAlways())
		assert.Equal(t, 3, v)
		assert.NoError(t, err)
		assert.Equal(t, 2, f.calls)
	})
	t.Run("forwarded error surfaces", func(t *testing.T) {
		f := &scriptedFactory[int]{ops: []Operation[int]{opError[int](errFlaky)}}
		_, err := Do[int](context.Background(), f, policy.Never)
		assert.Same(t, errFlaky, err)
	})
	t.Run("factory function literal", func(t *testing.T) {
		calls := 0
		f := FactoryFunc[string](func() Operation[string] {
			calls++
			n := calls
			return func(context.Context) (string, error) {
				if n < 3 {
					return "", errFlaky
				}
				return "done", nil
			}
		})
		v, err := Do[string](context.Background(), f, repeatAlways())
		require.NoError(t, err)
		assert.Equal(t, "done", v)
		assert.Equal(t, 3, calls)
	})
}

func TestForEach(t *testing.T) {
	err17 := errors.New("error 17")
	t.Run("consumes the stream to exhaustion", func(t *testing.T) {
		var items []Item[int]
		err := ForEach[int](context.Background(), scriptSource(
			step[int]{v: 1},
			step[int]{err: err17},
			step[int]{v: 19},
		), streamHandlerFuncRepeat(), func(item Item[int]) error {
			items = append(items, item)
			return nil
		})
		assert.NoError(t, err, "exhaustion is a clean finish")
		assert.Equal(t, []Item[int]{
			{Value: 1, Attempt: 1},
			{Value: 19, Attempt: 2},
		}, items)
	})
	t.Run("forwarded failures are elements, not errors", func(t *testing.T) {
		var items []Item[int]
		err := ForEach[int](context.Background(), scriptSource(
			step[int]{err: err17},
			step[int]{v: 19},
		), policy.StreamNever, func(item Item[int]) error {
			items = append(items, item)
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, []Item[int]{
			{Err: err17, Attempt: 1},
			{Value: 19, Attempt: 1},
		}, items)
	})
	t.Run("fn error stops consumption", func(t *testing.T) {
		errStop := errors.New("stop")
		pulls := 0
		src := SourceFunc[int](func(context.Context) (int, error) {
			pulls++
			return pulls, nil
		})
		var items []Item[int]
		err := ForEach[int](context.Background(), src, streamHandlerFuncRepeat(), func(item Item[int]) error {
			items = append(items, item)
			if len(items) == 2 {
				return errStop
			}
			return nil
		})
		assert.Same(t, errStop, err)
		assert.Len(t, items, 2)
		assert.Equal(t, 2, pulls, "no pull after fn rejects an element")
	})
	t.Run("cancellation surfaces", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		src := SourceFunc[int](func(ctx context.Context) (int, error) {
			cancel()
			<-ctx.Done()
			return 0, ctx.Err()
		})
		err := ForEach[int](ctx, src, streamHandlerFuncRepeat(), func(Item[int]) error {
			t.Error("no element expected")
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
	t.Run("waits are honored between attempts", func(t *testing.T) {
		start := time.Now()
		var items []Item[int]
		err := ForEach[int](context.Background(), scriptSource(
			step[int]{err: err17},
			step[int]{v: 19},
		), waitStream(20*time.Millisecond), func(item Item[int]) error {
			items = append(items, item)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []Item[int]{{Value: 19, Attempt: 2}}, items)
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})
}
