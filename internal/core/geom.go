// Package core provides fundamental types and utilities for the sweeper platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is a grid coordinate. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// In reports whether p lies inside [0,w)×[0,h).
func (p Point) In(w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// NeighborOffsets lists the eight relative neighbor positions.
// The order is significant: solvers break ties by it.
var NeighborOffsets = [8]Point{
	{1, 0}, {0, 1}, {1, 1}, {-1, 0},
	{0, -1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Move is a cell chosen by a solver and its estimated chance of being safe.
type Move struct {
	Point Point
	Score float64
}
