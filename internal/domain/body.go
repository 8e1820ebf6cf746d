package domain

import "fmt"

// Kind identifies the variant of a celestial body
type Kind string

const (
	KindStar   Kind = "Star"
	KindPlanet Kind = "Planet"
	KindMoon   Kind = "Moon"
)

const (
	// MaxPlanets is the number of planets a star can hold
	MaxPlanets = 26000
	// MaxMoons is the number of moons a planet can hold
	MaxMoons = 5000
)

// Body is any star, planet or moon of a solar system.
// The set of implementations is closed to this package.
type Body interface {
	ID() string
	Kind() Kind
	Mass() float64
	// RelativePosition returns a copy of the position in the parent's frame
	RelativePosition() Position
	// AbsolutePosition returns the position in the star's frame of origin
	AbsolutePosition() Position
	// Parent returns the body this one orbits, or nil for a star or a removed body
	Parent() Body
	String() string

	sealed()
}

// Satellite is a body that orbits a parent
type Satellite interface {
	Body
	DistanceToParent() float64
	RemoveFromSystem()
}

// celestial holds the fields shared by every variant
type celestial struct {
	id       string
	position Position
	mass     float64
}

func (c *celestial) ID() string                 { return c.id }
func (c *celestial) Mass() float64              { return c.mass }
func (c *celestial) RelativePosition() Position { return c.position }
func (c *celestial) sealed()                    {}

// orbitRadius is the distance to the parent's frame origin
func (c *celestial) orbitRadius() float64 {
	return c.position.Norm()
}

// describe renders a body for display
func describe(b Body) string {
	return fmt.Sprintf("[ %s: %s\tmass: %g\tposition: %s ]",
		b.Kind(), b.ID(), b.Mass(), b.AbsolutePosition())
}

// IsAttached reports whether a body is still reachable from its star
func IsAttached(b Body) bool {
	for b != nil {
		if b.Kind() == KindStar {
			return true
		}
		b = b.Parent()
	}
	return false
}

// Root returns the topmost ancestor of a body
func Root(b Body) Body {
	for {
		parent := b.Parent()
		if parent == nil {
			return b
		}
		b = parent
	}
}
