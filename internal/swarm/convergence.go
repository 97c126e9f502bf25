package swarm

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/swarmblend/ensemble-core/pkg/utils"
)

// personalBestSpread returns the max-min range of the particles'
// personal-best fitnesses. Any non-finite fitness yields +Inf so the
// swarm is never considered converged while it still contains
// unevaluable regions.
func personalBestSpread(particles []*Particle) float64 {
	vals := make([]float64, len(particles))
	for i, p := range particles {
		vals[i] = p.BestFitness
	}
	if !utils.AllFinite(vals) {
		return math.Inf(1)
	}
	return floats.Max(vals) - floats.Min(vals)
}

// converged reports whether the population's fitness spread has
// collapsed to within tol.
func converged(particles []*Particle, tol float64) bool {
	return personalBestSpread(particles) <= tol
}
