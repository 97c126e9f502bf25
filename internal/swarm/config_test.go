package swarm

import (
	"errors"
	"testing"
)

func validConfig() Config {
	return Config{
		LowerBounds:   []float64{0, 0, 0},
		UpperBounds:   []float64{1, 1, 1},
		SwarmSize:     10,
		MaxIterations: 50,
		Seed:          1,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Config)
		wantErr    bool
		wantBounds bool
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:       "empty bounds",
			mutate:     func(c *Config) { c.LowerBounds = nil; c.UpperBounds = nil },
			wantErr:    true,
			wantBounds: true,
		},
		{
			name:       "bound length mismatch",
			mutate:     func(c *Config) { c.UpperBounds = []float64{1, 1} },
			wantErr:    true,
			wantBounds: true,
		},
		{
			name:       "lower exceeds upper",
			mutate:     func(c *Config) { c.LowerBounds[1] = 2 },
			wantErr:    true,
			wantBounds: true,
		},
		{
			name:    "zero swarm size",
			mutate:  func(c *Config) { c.SwarmSize = 0 },
			wantErr: true,
		},
		{
			name:    "negative iterations",
			mutate:  func(c *Config) { c.MaxIterations = -1 },
			wantErr: true,
		},
		{
			name:    "negative tolerance",
			mutate:  func(c *Config) { c.ConvergenceTol = -0.1 },
			wantErr: true,
		},
		{
			name:    "negative inertia",
			mutate:  func(c *Config) { c.Inertia = -0.5 },
			wantErr: true,
		},
		{
			name:   "zero iterations allowed",
			mutate: func(c *Config) { c.MaxIterations = 0 },
		},
		{
			name:   "single particle allowed",
			mutate: func(c *Config) { c.SwarmSize = 1 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected validation error")
				}
				if tt.wantBounds {
					var boundsErr *InvalidBoundsError
					if !errors.As(err, &boundsErr) {
						t.Fatalf("expected InvalidBoundsError, got %v", err)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := validConfig().withDefaults()
	if cfg.Inertia != DefaultInertia {
		t.Errorf("expected default inertia %v, got %v", DefaultInertia, cfg.Inertia)
	}
	if cfg.Cognitive != DefaultCognitive {
		t.Errorf("expected default cognitive %v, got %v", DefaultCognitive, cfg.Cognitive)
	}
	if cfg.Social != DefaultSocial {
		t.Errorf("expected default social %v, got %v", DefaultSocial, cfg.Social)
	}
	if cfg.Parallelism <= 0 {
		t.Errorf("expected positive parallelism, got %d", cfg.Parallelism)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.LowerBounds[0] = 5 // above upper bound

	_, err := New(cfg)
	if err == nil {
		t.Fatal("expected error from New")
	}
	var boundsErr *InvalidBoundsError
	if !errors.As(err, &boundsErr) {
		t.Fatalf("expected InvalidBoundsError, got %v", err)
	}
	if boundsErr.Index != 0 {
		t.Errorf("expected failing dimension 0, got %d", boundsErr.Index)
	}
}
