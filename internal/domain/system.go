package domain

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SolarSystem is a star with its planets and their moons
type SolarSystem struct {
	star *Star
}

// NewSolarSystem creates a system whose star is S1
func NewSolarSystem(position Position, mass float64) *SolarSystem {
	return newSolarSystem(1, position, mass)
}

func newSolarSystem(starNumber int, position Position, mass float64) *SolarSystem {
	return &SolarSystem{star: newStar(starNumber, position, mass)}
}

// Star returns the root of the system
func (s *SolarSystem) Star() *Star {
	return s.star
}

// Bodies lists every live body depth-first: the star, then each planet
// followed by its moons
func (s *SolarSystem) Bodies() []Body {
	bodies := []Body{s.star}
	for _, planet := range s.star.planets {
		bodies = append(bodies, planet)
		for _, moon := range planet.moons {
			bodies = append(bodies, moon)
		}
	}
	return bodies
}

// Size returns the number of live bodies, star included
func (s *SolarSystem) Size() int {
	size := 1 + len(s.star.planets)
	for _, planet := range s.star.planets {
		size += len(planet.moons)
	}
	return size
}

// Contains reports whether the body is live in this system
func (s *SolarSystem) Contains(b Body) bool {
	return b != nil && Root(b) == Body(s.star)
}

// FindCelestialBody looks the identifier up among the star, then the
// planets, then the moons of each planet
func (s *SolarSystem) FindCelestialBody(id string) (Body, error) {
	if id == s.star.id {
		return s.star, nil
	}

	if planet, ok := s.star.FindPlanet(id); ok {
		return planet, nil
	}

	for _, planet := range s.star.planets {
		if moon, ok := planet.FindMoon(id); ok {
			return moon, nil
		}
	}

	return nil, &NotFoundError{Identifier: id}
}

// RemoveCelestialBody detaches the planet or moon with the given identifier
func (s *SolarSystem) RemoveCelestialBody(id string) (Body, error) {
	body, err := s.FindCelestialBody(id)
	if err != nil {
		return nil, err
	}

	satellite, ok := body.(Satellite)
	if !ok {
		return nil, ErrStarRemoval
	}
	satellite.RemoveFromSystem()
	return body, nil
}

// Clear removes every planet and moon, keeping the star
func (s *SolarSystem) Clear() int {
	return s.star.RemoveAllPlanets()
}

// TotalMass sums the mass of the star, the planets and the moons
func (s *SolarSystem) TotalMass() float64 {
	return floats.Sum(s.masses())
}

// CenterOfMass is the mass-weighted mean of the absolute positions of every
// live body. It fails with ErrZeroMass when the system has no mass.
func (s *SolarSystem) CenterOfMass() (Position, error) {
	bodies := s.Bodies()
	masses := make([]float64, len(bodies))
	xs := make([]float64, len(bodies))
	ys := make([]float64, len(bodies))
	for i, body := range bodies {
		absolute := body.AbsolutePosition()
		masses[i] = body.Mass()
		xs[i] = absolute.X
		ys[i] = absolute.Y
	}

	if floats.Sum(masses) == 0 {
		return Position{}, ErrZeroMass
	}

	return NewPosition(stat.Mean(xs, masses), stat.Mean(ys, masses)), nil
}

func (s *SolarSystem) masses() []float64 {
	bodies := s.Bodies()
	masses := make([]float64, len(bodies))
	for i, body := range bodies {
		masses[i] = body.Mass()
	}
	return masses
}
