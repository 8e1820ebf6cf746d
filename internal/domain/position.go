package domain

import (
	"fmt"
	"math"
)

// Position is a point in a body's frame of reference
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// NewPosition creates a new position
func NewPosition(x, y float64) Position {
	return Position{X: x, Y: y}
}

// Translate moves the position by another position
func (p *Position) Translate(offset Position) {
	p.X += offset.X
	p.Y += offset.Y
}

// Scale multiplies both coordinates by the same factor
func (p *Position) Scale(factor float64) {
	p.X *= factor
	p.Y *= factor
}

// Norm returns the Euclidean distance from the origin of the frame
func (p Position) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// String renders the position as ( x , y ) with three decimals
func (p Position) String() string {
	return fmt.Sprintf("( %.3f , %.3f )", p.X, p.Y)
}
