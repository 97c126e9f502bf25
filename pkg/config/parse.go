package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseJobYAML parses a Job from YAML bytes, applies defaults and
// validates it. This is used for callers that carry the job as a
// payload rather than a file.
func ParseJobYAML(data []byte) (*Job, error) {
	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job yaml: %w", err)
	}

	job.ApplyDefaults()

	if err := validateJob(&job); err != nil {
		return nil, fmt.Errorf("invalid job: %w", err)
	}

	return &job, nil
}

// ParseJobYAMLString parses a Job from a YAML string
func ParseJobYAMLString(yamlText string) (*Job, error) {
	return ParseJobYAML([]byte(yamlText))
}
