package config

import (
	"fmt"
)

// Job represents a complete blend job configuration
type Job struct {
	Input    Input   `yaml:"input"`
	Bounds   Bounds  `yaml:"bounds,omitempty"`
	Swarm    Swarm   `yaml:"swarm,omitempty"`
	Output   Output  `yaml:"output,omitempty"`
	LogLevel string  `yaml:"log_level,omitempty"`
}

// Input describes where the training-set prediction table comes from
type Input struct {
	Predictions  string `yaml:"predictions"`
	TargetColumn string `yaml:"target_column,omitempty"`
}

// Bounds describes the per-model weight search box
type Bounds struct {
	Lower BoundSpec `yaml:"lower,omitempty"`
	Upper BoundSpec `yaml:"upper,omitempty"`
}

// BoundSpec is either a single scalar applied to every model or an
// explicit per-model list. The zero value means "not set".
type BoundSpec struct {
	Scalar   *float64
	PerModel []float64
}

// UnmarshalYAML accepts either a scalar or a sequence of floats.
func (b *BoundSpec) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var scalar float64
	if err := unmarshal(&scalar); err == nil {
		b.Scalar = &scalar
		b.PerModel = nil
		return nil
	}

	var list []float64
	if err := unmarshal(&list); err != nil {
		return fmt.Errorf("bound must be a number or a list of numbers: %w", err)
	}
	b.Scalar = nil
	b.PerModel = list
	return nil
}

// IsSet reports whether the spec was present in the YAML.
func (b *BoundSpec) IsSet() bool {
	return b.Scalar != nil || b.PerModel != nil
}

// Expand resolves the spec to a vector of n values, defaulting to def
// when the spec is absent. An explicit per-model list must have exactly
// n entries.
func (b *BoundSpec) Expand(n int, def float64) ([]float64, error) {
	out := make([]float64, n)
	switch {
	case b.PerModel != nil:
		if len(b.PerModel) != n {
			return nil, fmt.Errorf("bound list has %d entries, want one per model (%d)", len(b.PerModel), n)
		}
		copy(out, b.PerModel)
	case b.Scalar != nil:
		for i := range out {
			out[i] = *b.Scalar
		}
	default:
		for i := range out {
			out[i] = def
		}
	}
	return out, nil
}

// Swarm holds the optimizer parameters
type Swarm struct {
	Size                 int     `yaml:"size,omitempty"`
	MaxIterations        int     `yaml:"max_iterations,omitempty"`
	ConvergenceTolerance float64 `yaml:"convergence_tolerance,omitempty"`
	Inertia              float64 `yaml:"inertia,omitempty"`
	Cognitive            float64 `yaml:"cognitive,omitempty"`
	Social               float64 `yaml:"social,omitempty"`
	Parallelism          int     `yaml:"parallelism,omitempty"`
	Seed                 int64   `yaml:"seed,omitempty"`
}

// Output describes where and how the resulting weights are written
type Output struct {
	Format string `yaml:"format,omitempty"` // json or csv
	Path   string `yaml:"path,omitempty"`   // empty means stdout
}

// Default values applied by ApplyDefaults
const (
	DefaultTargetColumn  = "target"
	DefaultSwarmSize     = 40
	DefaultMaxIterations = 200
	DefaultOutputFormat  = "json"
	DefaultLogLevel      = "info"
)

// ApplyDefaults fills in zero-valued optional fields
func (j *Job) ApplyDefaults() {
	if j.Input.TargetColumn == "" {
		j.Input.TargetColumn = DefaultTargetColumn
	}
	if j.Swarm.Size == 0 {
		j.Swarm.Size = DefaultSwarmSize
	}
	if j.Swarm.MaxIterations == 0 {
		j.Swarm.MaxIterations = DefaultMaxIterations
	}
	if j.Output.Format == "" {
		j.Output.Format = DefaultOutputFormat
	}
	if j.LogLevel == "" {
		j.LogLevel = DefaultLogLevel
	}
}
