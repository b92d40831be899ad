// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package timeout defines flexible policies for bounding the individual
// attempts of a retried operation, including retries. A generic
// interface for timeout policies is provided, Policy, along with
// several useful policy generating functions and built-in policies.
//
// A Policy only chooses durations. Applying them is the concern of
// retryx.TimeLimit, which wraps an operation factory so that every
// attempt runs under the deadline the policy picked for it.
package timeout
