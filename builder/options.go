package builder

import "math/rand"

// Option customizes builderConfig. Options panic on programmer errors
// (nil functions, non-positive sizes) at construction time, never while a
// graph is being built.
type Option func(*builderConfig)

// WithIDScheme sets the ID function for indexed layouts.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithIDPrefix is shorthand for WithIDScheme(PrefixIDFn(prefix)).
func WithIDPrefix(prefix string) Option {
	return WithIDScheme(PrefixIDFn(prefix))
}

// WithRand uses r for stochastic constructors.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds a private RNG for stochastic constructors.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithScale multiplies every generated coordinate by s.
func WithScale(s float64) Option {
	if s <= 0 {
		panic("builder: WithScale(s<=0)")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithRadius sets the circle radius of circular layouts, before scaling.
func WithRadius(r float64) Option {
	if r <= 0 {
		panic("builder: WithRadius(r<=0)")
	}
	return func(c *builderConfig) {
		c.radius = r
	}
}
