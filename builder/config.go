package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig is the resolved, read-only view of all Options.
type builderConfig struct {
	idFn   IDFn       // vertex ID scheme for indexed layouts
	rng    *rand.Rand // nil unless WithSeed/WithRand
	scale  float64    // coordinate multiplier, > 0
	radius float64    // circle radius for Cycle/Star/Wheel/Complete, > 0
}

const (
	defaultScale  = 1.0
	defaultRadius = 1.0

	// centerVertexID is the fixed hub ID of Star and Wheel.
	centerVertexID = "Center"
)

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		rng:    nil,
		scale:  defaultScale,
		radius: defaultRadius,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// IDFn maps a layout index to a node ID.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal index: "0", "1", ...
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// SymbolIDFn returns "A".."Z" for 0..25 and falls back to the decimal index.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		return strconv.Itoa(idx)
	}

	return string(rune('A' + idx))
}

// PrefixIDFn returns prefix followed by the decimal index.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}
