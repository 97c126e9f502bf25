package swarm

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/swarmblend/ensemble-core/pkg/logger"
	"github.com/swarmblend/ensemble-core/pkg/utils"
)

// Objective is the black box the swarm minimizes. Lower values are
// better. Evaluate must be safe to call concurrently; an error from it
// signals a caller contract violation (such as a shape mismatch) and
// aborts the run immediately.
type Objective interface {
	Evaluate(position []float64) (float64, error)
}

// StopReason identifies which stopping condition ended a run.
type StopReason string

const (
	// StopMaxIterations means the iteration budget was exhausted.
	StopMaxIterations StopReason = "max_iterations"
	// StopConverged means the population's fitness spread fell within
	// the configured tolerance.
	StopConverged StopReason = "converged"
	// StopCancelled means the caller's context was cancelled between
	// iterations.
	StopCancelled StopReason = "cancelled"
)

// Result is the outcome of one optimization run. PSO is a stochastic
// heuristic: BestPosition is the best point the swarm visited, not a
// guaranteed global optimum.
type Result struct {
	BestPosition []float64
	BestFitness  float64
	Iterations   int
	Evaluations  int
	StopReason   StopReason
	// History holds the global-best fitness after initialization and
	// after each completed iteration. It is non-increasing.
	History []float64
	// FinalSpread is the personal-best fitness spread when the run
	// stopped.
	FinalSpread float64
	Elapsed     time.Duration
}

// Optimizer drives a particle swarm over a bounded box. Each run owns
// its swarm state exclusively; nothing persists between runs and
// independent optimizers never share state.
type Optimizer struct {
	cfg Config
	rng *utils.RandSource
	log *slog.Logger
}

// New validates cfg and returns an optimizer with a seeded random
// source. Configuration errors fail here, before any evaluation.
func New(cfg Config) (*Optimizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	return &Optimizer{
		cfg: cfg,
		rng: utils.NewRandSource(cfg.Seed),
		log: logger.With("component", "swarm"),
	}, nil
}

// Run executes the optimization and returns the best position found
// with its fitness. Cancellation is honored between iterations: a
// cancelled run still returns the best result seen so far, with
// StopReason set to StopCancelled.
func (o *Optimizer) Run(ctx context.Context, obj Objective) (*Result, error) {
	start := time.Now()
	dims := o.cfg.Dimensions()

	particles := o.initSwarm()
	evals, err := o.evaluateAll(obj, particles)
	if err != nil {
		return nil, err
	}

	// Personal bests start at the initial positions regardless of
	// fitness; the global best seeds from the first particle so it is
	// always a real position, even if every initial fitness is
	// non-finite.
	for _, p := range particles {
		p.BestFitness = p.Fitness
		copy(p.BestPosition, p.Position)
	}
	globalBest := make([]float64, dims)
	copy(globalBest, particles[0].BestPosition)
	globalFitness := particles[0].BestFitness
	for _, p := range particles[1:] {
		if better(p.BestFitness, globalFitness) {
			globalFitness = p.BestFitness
			copy(globalBest, p.BestPosition)
		}
	}

	history := make([]float64, 0, o.cfg.MaxIterations+1)
	history = append(history, globalFitness)

	reason := StopMaxIterations
	iterations := 0
	for iterations < o.cfg.MaxIterations {
		if ctx.Err() != nil {
			reason = StopCancelled
			break
		}
		if o.cfg.ConvergenceTol > 0 && converged(particles, o.cfg.ConvergenceTol) {
			reason = StopConverged
			break
		}

		o.advance(particles, globalBest)

		n, err := o.evaluateAll(obj, particles)
		evals += n
		if err != nil {
			return nil, err
		}

		// Barrier reached: all evaluations of this iteration are in
		// before any best is updated or the next velocities computed.
		for _, p := range particles {
			p.recordPersonalBest()
			if better(p.BestFitness, globalFitness) {
				globalFitness = p.BestFitness
				copy(globalBest, p.BestPosition)
			}
		}

		iterations++
		history = append(history, globalFitness)
		o.log.Debug("iteration complete",
			"iteration", iterations,
			"best_fitness", globalFitness,
		)
	}

	result := &Result{
		BestPosition: globalBest,
		BestFitness:  globalFitness,
		Iterations:   iterations,
		Evaluations:  evals,
		StopReason:   reason,
		History:      history,
		FinalSpread:  personalBestSpread(particles),
		Elapsed:      time.Since(start),
	}

	o.log.Info("optimization stopped",
		"reason", string(reason),
		"iterations", iterations,
		"evaluations", evals,
		"best_fitness", globalFitness,
		"elapsed", result.Elapsed,
	)

	return result, nil
}

// initSwarm creates the particles. Positions are drawn uniformly within
// the bounds; velocities uniformly within the signed box width
// per dimension.
func (o *Optimizer) initSwarm() []*Particle {
	dims := o.cfg.Dimensions()
	particles := make([]*Particle, o.cfg.SwarmSize)
	for i := range particles {
		p := &Particle{
			Position:     make([]float64, dims),
			Velocity:     make([]float64, dims),
			BestPosition: make([]float64, dims),
			BestFitness:  math.Inf(1),
		}
		for d := 0; d < dims; d++ {
			lb := o.cfg.LowerBounds[d]
			ub := o.cfg.UpperBounds[d]
			p.Position[d] = o.rng.UniformFloat64(lb, ub)
			p.Velocity[d] = o.rng.SymmetricFloat64(ub - lb)
		}
		particles[i] = p
	}
	return particles
}

// advance applies the velocity and position updates to every particle.
// All random draws happen here, in the sequential phase, so a fixed
// seed gives an identical trajectory regardless of evaluation
// parallelism. Positions are clipped to the bounds; a clipped dimension
// has its velocity zeroed so particles do not pin against the walls.
func (o *Optimizer) advance(particles []*Particle, globalBest []float64) {
	cfg := o.cfg
	for _, p := range particles {
		for i := range p.Position {
			r1 := o.rng.Float64()
			r2 := o.rng.Float64()
			p.Velocity[i] = cfg.Inertia*p.Velocity[i] +
				cfg.Cognitive*r1*(p.BestPosition[i]-p.Position[i]) +
				cfg.Social*r2*(globalBest[i]-p.Position[i])
			p.Position[i] += p.Velocity[i]

			if p.Position[i] < cfg.LowerBounds[i] {
				p.Position[i] = cfg.LowerBounds[i]
				p.Velocity[i] = 0
			} else if p.Position[i] > cfg.UpperBounds[i] {
				p.Position[i] = cfg.UpperBounds[i]
				p.Velocity[i] = 0
			}
		}
	}
}

// evaluateAll scores every particle's current position through the
// objective, fanning evaluations out across a bounded worker pool and
// waiting for all of them before returning. The first evaluation error
// aborts the run.
func (o *Optimizer) evaluateAll(obj Objective, particles []*Particle) (int, error) {
	semaphore := make(chan struct{}, o.cfg.Parallelism)
	var wg sync.WaitGroup
	fitnesses := make([]float64, len(particles))
	errs := make([]error, len(particles))

	for i, p := range particles {
		wg.Add(1)
		position := append([]float64(nil), p.Position...)
		go func(idx int, pos []float64) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			fitnesses[idx], errs[idx] = obj.Evaluate(pos)
		}(i, position)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return len(particles), fmt.Errorf("objective evaluation failed: %w", err)
		}
	}

	for i, p := range particles {
		p.Fitness = fitnesses[i]
	}
	return len(particles), nil
}
