// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package logger decorates retry handlers with structured logging, so
// that every retry decision leaves a record without any logging code
// in the handlers themselves.
//
// The decorators wrap an existing handler from package policy and log
// each decision it makes to a zerolog logger: absorbed failures at
// warn level, forwarded failures at error level, and successes at
// debug level. The wrapped handler's decisions are returned unchanged,
// so decorating a handler never alters retry behavior.
//
//	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	h := logger.Handler(log.With().Str("op", "dial").Logger(), policy.Default())
//	conn, err := retryx.Do(ctx, factory, h)
package logger
