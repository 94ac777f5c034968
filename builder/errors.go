// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter (n, rows, cols) below its minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor was called
// without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")
