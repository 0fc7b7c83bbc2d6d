// SPDX-License-Identifier: MIT
// Package: waypoint/builder
//
// errors.go - sentinel errors for graph constructors.
//
// Callers branch with errors.Is; constructors wrap with "<Method>: ...: %w".

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidRadius indicates a non-positive or NaN connection radius.
var ErrInvalidRadius = errors.New("builder: invalid radius")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a core rejection.
var ErrConstructFailed = errors.New("builder: construction failed")
