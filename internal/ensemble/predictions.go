package ensemble

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DimensionMismatchError indicates that a prediction series, the target
// vector, or a weight vector disagrees with the expected length. It is
// fatal and surfaced to the caller immediately; nothing is ever
// truncated or padded to compensate.
type DimensionMismatchError struct {
	Vector string
	Want   int
	Got    int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: %s has length %d, want %d", e.Vector, e.Got, e.Want)
}

// PredictionSet holds the per-model training-set predictions as a dense
// N×M matrix, one column per model, rows aligned to sample order. The
// model ordering is fixed at construction and shared with every weight
// vector evaluated against it.
type PredictionSet struct {
	names  []string
	matrix *mat.Dense
	n      int
}

// NewPredictionSet builds a PredictionSet from named series. Every
// series must have the same length; a mismatch fails with a
// DimensionMismatchError naming the offending model.
func NewPredictionSet(names []string, series [][]float64) (*PredictionSet, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("prediction set requires at least one model")
	}
	if len(series) != len(names) {
		return nil, &DimensionMismatchError{Vector: "prediction series", Want: len(names), Got: len(series)}
	}

	n := len(series[0])
	if n == 0 {
		return nil, fmt.Errorf("prediction set requires at least one sample")
	}
	for i, s := range series {
		if len(s) != n {
			return nil, &DimensionMismatchError{
				Vector: fmt.Sprintf("predictions[%s]", names[i]),
				Want:   n,
				Got:    len(s),
			}
		}
	}

	matrix := mat.NewDense(n, len(names), nil)
	for j, s := range series {
		matrix.SetCol(j, s)
	}

	namesCopy := make([]string, len(names))
	copy(namesCopy, names)

	return &PredictionSet{names: namesCopy, matrix: matrix, n: n}, nil
}

// Models returns the model names in column order.
func (ps *PredictionSet) Models() []string {
	out := make([]string, len(ps.names))
	copy(out, ps.names)
	return out
}

// NumModels returns the number of models (columns).
func (ps *PredictionSet) NumModels() int {
	return len(ps.names)
}

// NumSamples returns the number of samples (rows).
func (ps *PredictionSet) NumSamples() int {
	return ps.n
}
