package config

import (
	"fmt"
	"os"
)

// LoadJob loads, parses and validates a job configuration file
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}
	job, err := ParseJobYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse job file %s: %w", path, err)
	}
	return job, nil
}

// validateJob performs validation on the job configuration. Bound and
// model-count consistency is checked later, once the prediction table
// has been loaded and the model count is known.
func validateJob(j *Job) error {
	if j.Input.Predictions == "" {
		return fmt.Errorf("input.predictions cannot be empty")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[j.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", j.LogLevel)
	}

	if j.Swarm.Size <= 0 {
		return fmt.Errorf("swarm.size must be positive, got %d", j.Swarm.Size)
	}
	if j.Swarm.MaxIterations < 0 {
		return fmt.Errorf("swarm.max_iterations cannot be negative, got %d", j.Swarm.MaxIterations)
	}
	if j.Swarm.ConvergenceTolerance < 0 {
		return fmt.Errorf("swarm.convergence_tolerance cannot be negative, got %f", j.Swarm.ConvergenceTolerance)
	}
	if j.Swarm.Inertia < 0 {
		return fmt.Errorf("swarm.inertia cannot be negative, got %f", j.Swarm.Inertia)
	}
	if j.Swarm.Cognitive < 0 {
		return fmt.Errorf("swarm.cognitive cannot be negative, got %f", j.Swarm.Cognitive)
	}
	if j.Swarm.Social < 0 {
		return fmt.Errorf("swarm.social cannot be negative, got %f", j.Swarm.Social)
	}
	if j.Swarm.Parallelism < 0 {
		return fmt.Errorf("swarm.parallelism cannot be negative, got %d", j.Swarm.Parallelism)
	}

	// Per-model bound lists must agree with each other here; agreement
	// with the actual model count is deferred to the runner.
	if j.Bounds.Lower.PerModel != nil && j.Bounds.Upper.PerModel != nil {
		if len(j.Bounds.Lower.PerModel) != len(j.Bounds.Upper.PerModel) {
			return fmt.Errorf("bounds.lower has %d entries but bounds.upper has %d",
				len(j.Bounds.Lower.PerModel), len(j.Bounds.Upper.PerModel))
		}
	}

	validFormats := map[string]bool{
		"json": true,
		"csv":  true,
	}
	if !validFormats[j.Output.Format] {
		return fmt.Errorf("invalid output format: %s (must be json or csv)", j.Output.Format)
	}

	return nil
}
