package swarm

import (
	"fmt"
	"runtime"
)

// Default optimizer parameters. These are tunables, not a contract:
// inertia in the 0.5-0.9 range with cognitive and social coefficients
// around 2.0 is the standard PSO configuration.
const (
	DefaultInertia   = 0.7
	DefaultCognitive = 2.0
	DefaultSocial    = 2.0
)

// InvalidBoundsError indicates an inconsistent search box: a lower
// bound above its upper bound, or bound vectors whose lengths disagree.
// It is fatal at configuration time, before any evaluation happens.
type InvalidBoundsError struct {
	Reason string
	Index  int
}

func (e *InvalidBoundsError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid bounds at dimension %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("invalid bounds: %s", e.Reason)
}

// Config holds the optimizer parameters. The search dimensionality is
// implied by the bound vectors.
type Config struct {
	// LowerBounds and UpperBounds define the closed per-dimension box
	// positions are confined to.
	LowerBounds []float64
	UpperBounds []float64

	// SwarmSize is the number of particles.
	SwarmSize int

	// MaxIterations is the iteration budget. Zero means no update
	// iterations: the result is the best initial position.
	MaxIterations int

	// ConvergenceTol stops the run early once the spread (max-min) of
	// the particles' personal-best fitnesses falls to or below it.
	// Zero disables the check.
	ConvergenceTol float64

	// Inertia, Cognitive and Social are the velocity update
	// coefficients. Zero values are replaced with the defaults.
	Inertia   float64
	Cognitive float64
	Social    float64

	// Parallelism caps concurrent objective evaluations within one
	// iteration. Zero or negative means GOMAXPROCS.
	Parallelism int

	// Seed seeds the run's random source. Zero picks a time-based
	// seed; fix it for reproducible runs.
	Seed int64
}

// Validate checks the configuration. It must pass before any swarm
// state is created.
func (c *Config) Validate() error {
	if len(c.LowerBounds) == 0 {
		return &InvalidBoundsError{Reason: "bound vectors cannot be empty", Index: -1}
	}
	if len(c.LowerBounds) != len(c.UpperBounds) {
		return &InvalidBoundsError{
			Reason: fmt.Sprintf("lower has %d dimensions, upper has %d", len(c.LowerBounds), len(c.UpperBounds)),
			Index:  -1,
		}
	}
	for i := range c.LowerBounds {
		if c.LowerBounds[i] > c.UpperBounds[i] {
			return &InvalidBoundsError{
				Reason: fmt.Sprintf("lower %v exceeds upper %v", c.LowerBounds[i], c.UpperBounds[i]),
				Index:  i,
			}
		}
	}

	if c.SwarmSize <= 0 {
		return fmt.Errorf("swarm size must be positive, got %d", c.SwarmSize)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("max iterations cannot be negative, got %d", c.MaxIterations)
	}
	if c.ConvergenceTol < 0 {
		return fmt.Errorf("convergence tolerance cannot be negative, got %f", c.ConvergenceTol)
	}
	if c.Inertia < 0 || c.Cognitive < 0 || c.Social < 0 {
		return fmt.Errorf("velocity coefficients cannot be negative")
	}

	return nil
}

// Dimensions returns the search dimensionality.
func (c *Config) Dimensions() int {
	return len(c.LowerBounds)
}

// withDefaults returns a copy with zero-valued tunables filled in.
func (c Config) withDefaults() Config {
	if c.Inertia == 0 {
		c.Inertia = DefaultInertia
	}
	if c.Cognitive == 0 {
		c.Cognitive = DefaultCognitive
	}
	if c.Social == 0 {
		c.Social = DefaultSocial
	}
	if c.Parallelism <= 0 {
		c.Parallelism = runtime.GOMAXPROCS(0)
	}
	return c
}
