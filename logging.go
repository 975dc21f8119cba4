// Copyright © 2015 CurveKit Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package curve

import "log"

// Logger is satisfied by *log.Logger. Every component in this module
// logs and degrades instead of panicking on recoverable failures
// (spec.md §7) — the teacher does the same with plain log.Printf calls
// throughout asset.go and loader.go, so no logging framework is pulled
// in beyond the standard library.
type Logger interface {
	Printf(format string, args ...any)
}

// DefaultLogger is used wherever a caller does not supply one.
var DefaultLogger Logger = log.Default()
