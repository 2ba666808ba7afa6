// Package fractal holds the numeric kernel of the explorer: the escape-time
// evaluator for z ← z² + c and the mapping from viewport pixels to points in
// the complex plane.
//
// Both are pure value types safe for concurrent use by any number of
// rasterizer workers.
package fractal
