package fractal

import (
	"fmt"
	"math"

	"github.com/lixenwraith/vi-mandel/vmath"
)

// Result is the outcome of iterating one plane point
// Iterations is in [0, MaxIterations]; MaxIterations means the point never escaped
type Result struct {
	Iterations int
}

// Evaluator iterates z ← z² + c from z = 0 until |z| exceeds the escape radius
type Evaluator struct {
	maxIterations int
	radius        float64
	radiusSq      float64
}

// NewEvaluator creates an evaluator with the given iteration cap and escape radius
func NewEvaluator(maxIterations int, radius float64) (Evaluator, error) {
	if maxIterations <= 0 {
		return Evaluator{}, fmt.Errorf("evaluator: max iterations must be positive, got %d", maxIterations)
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return Evaluator{}, fmt.Errorf("evaluator: escape radius must be positive and finite, got %v", radius)
	}
	return Evaluator{
		maxIterations: maxIterations,
		radius:        radius,
		radiusSq:      radius * radius,
	}, nil
}

// MaxIterations returns the iteration cap
func (e Evaluator) MaxIterations() int {
	return e.maxIterations
}

// Evaluate returns the number of iterations completed before the one whose
// result left the escape radius, or MaxIterations if none did
func (e Evaluator) Evaluate(c vmath.Point) Result {
	var z vmath.Point
	for k := 0; k < e.maxIterations; k++ {
		z = z.Square().Add(c)

		magSq := z.MagnitudeSq()
		if magSq <= e.radiusSq {
			continue
		}
		if !math.IsInf(magSq, 0) && !math.IsNaN(magSq) {
			return Result{Iterations: k}
		}

		// Squared norm overflowed; Hypot stays finite for any finite z
		mag := z.Magnitude()
		if math.IsInf(mag, 0) || math.IsNaN(mag) {
			return Result{Iterations: e.maxIterations}
		}
		if mag > e.radius {
			return Result{Iterations: k}
		}
	}

	return Result{Iterations: e.maxIterations}
}
