package ensemble

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/swarmblend/ensemble-core/pkg/utils"
)

// DegenerateFitness is the sentinel returned when every weight is zero.
// The all-zero corner cannot form an ensemble, but the optimizer may
// legitimately visit it, so the objective stays finite there instead of
// failing: large enough that any minimizer rejects it, finite so it
// never poisons the swarm arithmetic.
const DegenerateFitness = 1e12

// Objective scores candidate weight vectors against a fixed prediction
// set and target. It is a pure function of its inputs and safe to call
// concurrently.
type Objective struct {
	preds  *PredictionSet
	target []float64
}

// NewObjective validates that the target is aligned with the prediction
// set and returns an evaluator over it. Shape violations fail here,
// before any optimizer state exists.
func NewObjective(preds *PredictionSet, target []float64) (*Objective, error) {
	if len(target) != preds.NumSamples() {
		return nil, &DimensionMismatchError{Vector: "target", Want: preds.NumSamples(), Got: len(target)}
	}
	targetCopy := make([]float64, len(target))
	copy(targetCopy, target)
	return &Objective{preds: preds, target: targetCopy}, nil
}

// NumModels returns the dimensionality a weight vector must have.
func (o *Objective) NumModels() int {
	return o.preds.NumModels()
}

// Evaluate returns the mean squared error of the weighted, normalized
// ensemble prediction against the target.
//
// Weights are normalized to sum to 1 before combining, so the score is
// invariant under positive scaling of the weight vector. An all-zero
// weight vector returns DegenerateFitness. Any non-finite value in the
// combined prediction is replaced with 0 before scoring, so a single
// model emitting NaN or Inf cannot make the whole score unrecoverable.
func (o *Objective) Evaluate(weights []float64) (float64, error) {
	m := o.preds.NumModels()
	if len(weights) != m {
		return 0, &DimensionMismatchError{Vector: "weights", Want: m, Got: len(weights)}
	}

	total := utils.Sum(weights)
	if total == 0 {
		return DegenerateFitness, nil
	}

	w := mat.NewVecDense(m, nil)
	for i, wi := range weights {
		w.SetVec(i, wi/total)
	}

	var combined mat.VecDense
	combined.MulVec(o.preds.matrix, w)

	n := o.preds.NumSamples()
	sumSquares := 0.0
	for j := 0; j < n; j++ {
		y := combined.AtVec(j)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			y = 0
		}
		diff := y - o.target[j]
		sumSquares += diff * diff
	}

	return sumSquares / float64(n), nil
}
