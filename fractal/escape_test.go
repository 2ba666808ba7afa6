package fractal

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/vi-mandel/vmath"
)

const testMaxIter = 200

func newTestEvaluator(t *testing.T) Evaluator {
	t.Helper()
	e, err := NewEvaluator(testMaxIter, 2.0)
	if err != nil {
		t.Fatalf("NewEvaluator failed: %v", err)
	}
	return e
}

func TestNewEvaluatorRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		iter   int
		radius float64
	}{
		{"Zero iterations", 0, 2},
		{"Negative iterations", -5, 2},
		{"Zero radius", 10, 0},
		{"NaN radius", 10, math.NaN()},
		{"Inf radius", 10, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewEvaluator(tt.iter, tt.radius); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestEvaluateKnownPoints(t *testing.T) {
	e := newTestEvaluator(t)

	tests := []struct {
		name string
		c    vmath.Point
		want int
	}{
		// Origin is a fixed point of the recurrence
		{"Origin", vmath.Point{}, testMaxIter},
		// Period-2 cycle 0 → -1 → 0
		{"Minus one", vmath.Point{X: -1}, testMaxIter},
		// Tip of the needle, z settles at 2 and never exceeds it
		{"Minus two", vmath.Point{X: -2}, testMaxIter},
		{"Imaginary unit", vmath.Point{Y: 1}, testMaxIter},
		// z1 = 2 sits on the radius, z2 = 6 escapes: one completed iteration before divergence
		{"Two", vmath.Point{X: 2}, 1},
		{"Just outside radius", vmath.Point{X: 2.5}, 0},
		{"Far away", vmath.Point{X: 100, Y: -100}, 0},
		// z1 = 1, z2 = 2, z3 = 5
		{"One", vmath.Point{X: 1}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Evaluate(tt.c).Iterations; got != tt.want {
				t.Errorf("Evaluate(%v) = %d, want %d", tt.c, got, tt.want)
			}
		})
	}
}

func TestEvaluateBounded(t *testing.T) {
	e := newTestEvaluator(t)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 20000; i++ {
		c := vmath.Point{X: rng.Float64()*6 - 3, Y: rng.Float64()*6 - 3}
		got := e.Evaluate(c).Iterations
		if got < 0 || got > testMaxIter {
			t.Fatalf("Evaluate(%v) = %d out of [0, %d]", c, got, testMaxIter)
		}
	}
}

func TestEvaluateNonFinite(t *testing.T) {
	e := newTestEvaluator(t)

	tests := []struct {
		name string
		c    vmath.Point
		want int
	}{
		{"NaN real", vmath.Point{X: math.NaN()}, testMaxIter},
		{"NaN imaginary", vmath.Point{Y: math.NaN()}, testMaxIter},
		{"Positive Inf", vmath.Point{X: math.Inf(1)}, testMaxIter},
		{"Negative Inf", vmath.Point{Y: math.Inf(-1)}, testMaxIter},
		// Squared norm overflows but the point is finite and clearly outside
		{"Huge finite", vmath.Point{X: 1e200, Y: 1e200}, 0},
		{"Max float", vmath.Point{X: math.MaxFloat64}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Evaluate(tt.c).Iterations; got != tt.want {
				t.Errorf("Evaluate(%v) = %d, want %d", tt.c, got, tt.want)
			}
		})
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	e := newTestEvaluator(t)
	c := vmath.Point{X: -0.743643887037151, Y: 0.13182590420533}

	first := e.Evaluate(c)
	for i := 0; i < 100; i++ {
		if got := e.Evaluate(c); got != first {
			t.Fatalf("Run %d: %v != %v", i, got, first)
		}
	}
}

func TestEvaluateMainCardioid(t *testing.T) {
	e := newTestEvaluator(t)

	// Points well inside the main cardioid and the period-2 bulb never escape
	for _, c := range []vmath.Point{
		{X: -0.1, Y: 0.1},
		{X: 0.2, Y: 0},
		{X: -0.5, Y: 0.3},
		{X: -1.1, Y: 0.05},
		{X: -0.9, Y: 0},
	} {
		if got := e.Evaluate(c).Iterations; got != testMaxIter {
			t.Errorf("Evaluate(%v) = %d, want %d", c, got, testMaxIter)
		}
	}
}

func BenchmarkEvaluateInterior(b *testing.B) {
	e, _ := NewEvaluator(1000, 2)
	c := vmath.Point{X: -0.1, Y: 0.1}
	for i := 0; i < b.N; i++ {
		e.Evaluate(c)
	}
}
