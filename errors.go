// Copyright © 2022 CurveKit Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package curve

import "errors"

// Error kinds returned by this module. Constructors fail fast with one
// of these; query operations never fail (see spec.md §7).
var (
	// ErrInvalidPoint is returned when a legacy tuple has arity less
	// than 3, or a coordinate/frame field cannot be read as numeric.
	ErrInvalidPoint = errors.New("curve: invalid point")

	// ErrInvalidConfig is returned by cache construction when
	// max size is not positive.
	ErrInvalidConfig = errors.New("curve: invalid config")

	// ErrLoadFailed marks a non-fatal image decode failure. Callers see
	// it only through logs; get_image surfaces a plain miss instead.
	ErrLoadFailed = errors.New("curve: image load failed")

	// ErrWorkerTimeout marks a preload worker that did not acknowledge
	// a stop request within the grace period.
	ErrWorkerTimeout = errors.New("curve: preload worker timeout")
)
