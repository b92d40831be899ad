// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package policy defines the decisions a retry handler can make about
// failed operation attempts, and provides composable built-in handlers
// for common retry shapes.
//
// Every failure is answered with one of three decisions: forward the
// error to the caller and stop retrying (Forward), try again right away
// (Repeat), or try again after a wait (Wait). The Handler interface
// makes these decisions for retried operations. StreamHandler makes
// them for retried streams, where the driver additionally maintains the
// attempt counter on the handler's behalf.
//
// A useful handler can be quickly assembled from the built-ins:
//
//	h := policy.Limit(3, policy.Transient(backoff.Default))
//
// or written from scratch with HandlerFunc:
//
//	h := policy.HandlerFunc(func(err error) policy.Decision {
//		if errors.Is(err, errQuota) {
//			return policy.Forward(err)
//		}
//		return policy.Wait(time.Second)
//	})
//
// If the built-in functionality is insufficient, fully custom handlers
// can be created via custom implementations of Handler or
// StreamHandler.
package policy
