package swarm

import (
	"math"
)

// Particle is one candidate weight vector together with its velocity
// and the best position it has personally seen. Particles exist only
// for the lifetime of a single optimization run.
type Particle struct {
	Position     []float64
	Velocity     []float64
	Fitness      float64
	BestPosition []float64
	BestFitness  float64
}

// recordPersonalBest updates the particle's personal best if the
// current fitness improves on it.
func (p *Particle) recordPersonalBest() {
	if better(p.Fitness, p.BestFitness) {
		p.BestFitness = p.Fitness
		copy(p.BestPosition, p.Position)
	}
}

// better reports whether candidate is a strict improvement over
// incumbent. Non-finite fitness values are worse than any finite value
// and never count as an improvement.
func better(candidate, incumbent float64) bool {
	if math.IsNaN(candidate) || math.IsInf(candidate, 0) {
		return false
	}
	if math.IsNaN(incumbent) || math.IsInf(incumbent, 0) {
		return true
	}
	return candidate < incumbent
}
