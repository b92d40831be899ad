// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package backoff provides wait duration curves for spacing out retries
// of failed operation attempts.
//
// The interface Backoff maps the number of a failed attempt to the
// duration to wait before trying again. Three curve shapes come built
// in: a constant wait (Fixed), a jittered exponential wait (Exp), and
// an arctangent wait which climbs quickly at first and then flattens
// out below its ceiling (Atan). The package variable Default holds an
// arctangent curve with parameters suitable for many use cases.
//
// A Backoff only computes durations. Sleeping on them is the concern of
// the retry drivers in the parent package, which pass the duration to a
// wake-up timer as part of a wait decision.
package backoff
