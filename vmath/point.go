package vmath

import "math"

// Point is a point in the complex plane, X the real part and Y the imaginary part
type Point struct {
	X, Y float64
}

// Add returns p + q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both components by s
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Square returns p² treating p as a complex number: (x² - y², 2xy)
func (p Point) Square() Point {
	return Point{X: p.X*p.X - p.Y*p.Y, Y: 2 * p.X * p.Y}
}

// MagnitudeSq returns x² + y², which overflows to +Inf for large components
func (p Point) MagnitudeSq() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Magnitude returns the Euclidean norm without intermediate overflow
func (p Point) Magnitude() float64 {
	return math.Hypot(p.X, p.Y)
}

// IsFinite reports whether neither component is NaN or ±Inf
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Pixel is an integer grid position, row-major with Y growing downward
type Pixel struct {
	X, Y int
}

// Index returns the row-major index of the pixel in a grid of the given width
func (px Pixel) Index(width int) int {
	return px.Y*width + px.X
}
