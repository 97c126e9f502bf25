package blend

import (
	"context"
	"fmt"
	"time"

	"github.com/swarmblend/ensemble-core/internal/ensemble"
	"github.com/swarmblend/ensemble-core/internal/swarm"
	"github.com/swarmblend/ensemble-core/pkg/config"
	"github.com/swarmblend/ensemble-core/pkg/logger"
	"github.com/swarmblend/ensemble-core/pkg/utils"
)

// Input carries the aligned training-set data for one blend run.
type Input struct {
	Models      []string
	Predictions [][]float64
	Target      []float64
}

// Result is the outcome of one blend run. Weights are normalized to
// sum to 1 and are what callers apply to held-out predictions;
// RawWeights is the optimizer's best position before normalization.
type Result struct {
	RunID       string    `json:"run_id"`
	Models      []string  `json:"models"`
	Weights     []float64 `json:"weights"`
	RawWeights  []float64 `json:"raw_weights"`
	Fitness     float64   `json:"fitness"`
	Iterations  int       `json:"iterations"`
	Evaluations int       `json:"evaluations"`
	StopReason  string    `json:"stop_reason"`
	ElapsedMs   int64     `json:"elapsed_ms"`
}

// setup validates the input shapes and job against each other and
// builds the objective plus the optimizer configuration. Everything
// that can fail fails here, before any swarm state is created.
func setup(in Input, job *config.Job) (*ensemble.Objective, *ensemble.PredictionSet, swarm.Config, error) {
	preds, err := ensemble.NewPredictionSet(in.Models, in.Predictions)
	if err != nil {
		return nil, nil, swarm.Config{}, err
	}
	objective, err := ensemble.NewObjective(preds, in.Target)
	if err != nil {
		return nil, nil, swarm.Config{}, err
	}

	m := preds.NumModels()
	lower, err := job.Bounds.Lower.Expand(m, 0)
	if err != nil {
		return nil, nil, swarm.Config{}, fmt.Errorf("bounds.lower: %w", err)
	}
	upper, err := job.Bounds.Upper.Expand(m, 1)
	if err != nil {
		return nil, nil, swarm.Config{}, fmt.Errorf("bounds.upper: %w", err)
	}

	cfg := swarm.Config{
		LowerBounds:    lower,
		UpperBounds:    upper,
		SwarmSize:      job.Swarm.Size,
		MaxIterations:  job.Swarm.MaxIterations,
		ConvergenceTol: job.Swarm.ConvergenceTolerance,
		Inertia:        job.Swarm.Inertia,
		Cognitive:      job.Swarm.Cognitive,
		Social:         job.Swarm.Social,
		Parallelism:    job.Swarm.Parallelism,
		Seed:           job.Swarm.Seed,
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, swarm.Config{}, err
	}

	return objective, preds, cfg, nil
}

// Validate checks the input shapes and job configuration without
// running the search.
func Validate(in Input, job *config.Job) error {
	_, _, _, err := setup(in, job)
	return err
}

// Run searches for the ensemble weights minimizing training-set MSE.
// All shape validation happens up front, before any swarm state is
// created: a prediction/target mismatch fails here, not mid-search.
func Run(ctx context.Context, in Input, job *config.Job) (*Result, error) {
	start := time.Now()

	objective, preds, cfg, err := setup(in, job)
	if err != nil {
		return nil, err
	}
	m := preds.NumModels()

	optimizer, err := swarm.New(cfg)
	if err != nil {
		return nil, err
	}

	runID := utils.GenerateRunID()
	logger.Info("starting blend run",
		"run_id", runID,
		"models", m,
		"samples", preds.NumSamples(),
		"swarm_size", cfg.SwarmSize,
		"max_iterations", cfg.MaxIterations,
	)

	res, err := optimizer.Run(ctx, objective)
	if err != nil {
		return nil, err
	}

	if utils.Sum(res.BestPosition) == 0 {
		return nil, fmt.Errorf("optimizer returned all-zero weights; ensemble coefficients are undefined")
	}
	weights := utils.Normalize(res.BestPosition)

	return &Result{
		RunID:       runID,
		Models:      preds.Models(),
		Weights:     weights,
		RawWeights:  res.BestPosition,
		Fitness:     res.BestFitness,
		Iterations:  res.Iterations,
		Evaluations: res.Evaluations,
		StopReason:  string(res.StopReason),
		ElapsedMs:   time.Since(start).Milliseconds(),
	}, nil
}

// Combine applies normalized weights to a set of prediction series,
// one per model in weight order, returning the blended prediction. The
// series must all have the same length.
func Combine(weights []float64, predictions [][]float64) ([]float64, error) {
	if len(predictions) != len(weights) {
		return nil, &ensemble.DimensionMismatchError{
			Vector: "predictions",
			Want:   len(weights),
			Got:    len(predictions),
		}
	}
	if len(predictions) == 0 {
		return nil, fmt.Errorf("no predictions to combine")
	}

	n := len(predictions[0])
	for i, series := range predictions {
		if len(series) != n {
			return nil, &ensemble.DimensionMismatchError{
				Vector: fmt.Sprintf("predictions[%d]", i),
				Want:   n,
				Got:    len(series),
			}
		}
	}

	combined := make([]float64, n)
	for i, w := range weights {
		for j, v := range predictions[i] {
			combined[j] += w * v
		}
	}
	return combined, nil
}
