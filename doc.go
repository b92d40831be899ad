// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package retryx retries failed operations: single units of work that
produce one value, and streams that produce many.

Wrap a unit of work in a Factory and run it with Do. The factory builds
a fresh single-use attempt whenever one is needed, and a handler from
package policy decides after each failure whether to give up, try again
at once, or try again after a wait:

	factory := retryx.FactoryFunc[net.Conn](func() retryx.Operation[net.Conn] {
		var d net.Dialer
		return func(ctx context.Context) (net.Conn, error) {
			return d.DialContext(ctx, "tcp", addr)
		}
	})
	conn, err := retryx.Do(ctx, factory, policy.Default())

For streams, wrap the element producer in a Source and pull through a
StreamRetrier. Failures are retried in place; a failure the handler
forwards becomes an element with Err set, and the stream keeps going
past it. Every element is tagged with the number of attempts it took:

	src := retryx.SourceFunc[net.Conn](func(_ context.Context) (net.Conn, error) {
		return listener.Accept()
	})
	err := retryx.ForEach(ctx, src, policy.StreamDefault(),
		func(item retryx.Item[net.Conn]) error {
			if item.Err != nil {
				log.Printf("accept failed after %d attempts: %v", item.Attempt, item.Err)
				return nil
			}
			go serve(item.Value)
			return nil
		})

For control over retry decisions, compose a handler from the building
blocks in package policy and the wait curves in package backoff:

	handler := policy.Limit(3, policy.Transient(backoff.Exp(
		50*time.Millisecond, 2*time.Second, time.Now())))
	value, err := retryx.Do(ctx, factory, handler)

For control over how waits are slept, set the Timer field of a Retrier
or StreamRetrier constructed directly:

	r := retryx.NewRetrier[int](factory, handler)
	r.Timer = fakeClock
	value, err := r.Run(ctx)

Both drivers block their calling goroutine and are driven by it alone:
no goroutines are spawned, cancellation arrives through the context,
and dropping a driver abandons the work with nothing left running.

To bound each attempt instead of, or as well as, the whole run, wrap
the factory in TimeLimit with a deadline policy from package timeout:

	factory = retryx.TimeLimit(factory, timeout.Adaptive(
		200*time.Millisecond, time.Second))

Packages logger and metric decorate handlers with structured logging
and prometheus instrumentation. Package transient classifies errors for
retry purposes and is useful on its own.
*/
package retryx
