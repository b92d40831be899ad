// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package logger

import (
	"github.com/rs/zerolog"

	"github.com/gogama/retryx/policy"
)

// Handler returns a handler that makes the same decisions as next and
// logs each one: an absorbed failure at warn level with the failure's
// error, a forwarded failure at error level with the forwarded error,
// and a success at debug level. Wait decisions carry the scheduled
// wait as a duration field.
//
// Attach per-operation context, such as the operation's name, to log
// before decorating. Handler panics if next is nil.
func Handler(log zerolog.Logger, next policy.Handler) policy.Handler {
	if next == nil {
		panic("retryx/logger: next handler may not be nil")
	}
	return handler{log: log, next: next}
}

type handler struct {
	log  zerolog.Logger
	next policy.Handler
}

func (h handler) Handle(err error) policy.Decision {
	d := h.next.Handle(err)
	logDecision(h.log, err, d, noAttempt)
	return d
}

func (h handler) OK() {
	h.log.Debug().Msg("attempt succeeded")
	h.next.OK()
}

// StreamHandler is the stream-side counterpart of Handler. Log entries
// additionally carry the attempt number the driving stream supplied.
//
// StreamHandler panics if next is nil.
func StreamHandler(log zerolog.Logger, next policy.StreamHandler) policy.StreamHandler {
	if next == nil {
		panic("retryx/logger: next handler may not be nil")
	}
	return streamHandler{log: log, next: next}
}

type streamHandler struct {
	log  zerolog.Logger
	next policy.StreamHandler
}

func (h streamHandler) Handle(attempt int, err error) policy.Decision {
	d := h.next.Handle(attempt, err)
	logDecision(h.log, err, d, attempt)
	return d
}

func (h streamHandler) OK(attempt int) {
	h.log.Debug().Int("attempt", attempt).Msg("attempt succeeded")
	h.next.OK(attempt)
}

// noAttempt marks log entries from the operation variant, which has no
// driver-maintained attempt counter to report.
const noAttempt = -1

func logDecision(log zerolog.Logger, err error, d policy.Decision, attempt int) {
	var evt *zerolog.Event
	var msg string
	switch {
	case d.Terminal():
		evt = log.Error().Err(d.Err())
		msg = "giving up"
	case d.Delayed():
		evt = log.Warn().Err(err).Dur("wait", d.Delay())
		msg = "retrying after wait"
	default:
		evt = log.Warn().Err(err)
		msg = "retrying immediately"
	}
	if attempt != noAttempt {
		evt = evt.Int("attempt", attempt)
	}
	evt.Msg(msg)
}
