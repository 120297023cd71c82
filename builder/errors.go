// SPDX-License-Identifier: MIT
// Package: meteobn/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Builders attach the method name with builderErrorf and %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a row/day/state count below the builder's minimum.
var ErrBadSize = errors.New("builder: invalid size")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// builderErrorf returns "<method>: <message>: <sentinel>" keeping sentinel
// reachable through errors.Is.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
