package domain

import (
	"fmt"
	"math"
	"slices"
)

// CollisionKind names the check that found a possible collision
type CollisionKind string

const (
	CollisionPlanetPlanet CollisionKind = "planet-planet"
	CollisionStarMoon     CollisionKind = "star-moon"
	CollisionMoonMoon     CollisionKind = "moon-moon"
	CollisionPlanetMoon   CollisionKind = "planet-moon"
)

// Collision is a pair of bodies whose orbits may intersect
type Collision struct {
	Kind   CollisionKind
	First  Body
	Second Body
}

func (c Collision) String() string {
	return fmt.Sprintf("%s: %s and %s", c.Kind, c.First.ID(), c.Second.ID())
}

// The checks below compare orbital radii only. They approximate orbit overlap
// along the radial axis of the star and are not a geometric intersection test.

// DetectCollisions reports whether any of the four collision checks fires
func (s *SolarSystem) DetectCollisions() bool {
	return s.planetPlanetCollision() != nil ||
		s.starMoonCollision() != nil ||
		s.moonMoonCollision() != nil ||
		s.planetMoonCollision() != nil
}

// Collisions runs every check and returns the first pair found by each
func (s *SolarSystem) Collisions() []Collision {
	var found []Collision
	for _, check := range []func() *Collision{
		s.planetPlanetCollision,
		s.starMoonCollision,
		s.moonMoonCollision,
		s.planetMoonCollision,
	} {
		if c := check(); c != nil {
			found = append(found, *c)
		}
	}
	return found
}

// planetPlanetCollision finds two planets sharing an orbital radius
func (s *SolarSystem) planetPlanetCollision() *Collision {
	seen := make([]float64, 0, len(s.star.planets))
	for i, planet := range s.star.planets {
		distance := planet.DistanceToParent()
		if j := slices.Index(seen, distance); j >= 0 {
			return &Collision{Kind: CollisionPlanetPlanet, First: s.star.planets[j], Second: s.star.planets[i]}
		}
		seen = append(seen, distance)
	}
	return nil
}

// starMoonCollision finds a moon whose orbit reaches its planet's orbit radius
func (s *SolarSystem) starMoonCollision() *Collision {
	for _, planet := range s.star.planets {
		for _, moon := range planet.moons {
			if planet.DistanceToParent() <= moon.DistanceToParent() {
				return &Collision{Kind: CollisionStarMoon, First: s.star, Second: moon}
			}
		}
	}
	return nil
}

// moonMoonCollision checks every unordered pair of moons in the system
func (s *SolarSystem) moonMoonCollision() *Collision {
	var moons []*Moon
	for _, planet := range s.star.planets {
		moons = append(moons, planet.moons...)
	}

	for i := 0; i < len(moons); i++ {
		for j := i + 1; j < len(moons); j++ {
			first, second := moons[i], moons[j]
			if moonsCollide(first, second) {
				return &Collision{Kind: CollisionMoonMoon, First: first, Second: second}
			}
		}
	}
	return nil
}

func moonsCollide(first, second *Moon) bool {
	if first.planet == second.planet {
		return first.DistanceToParent() == second.DistanceToParent()
	}
	gap := math.Abs(first.planet.DistanceToParent() - second.planet.DistanceToParent())
	return first.DistanceToParent()+second.DistanceToParent() >= gap
}

// planetMoonCollision checks every ordered pair of distinct planets for a moon
// of the second whose orbit spans the gap to the first
func (s *SolarSystem) planetMoonCollision() *Collision {
	for _, planet := range s.star.planets {
		for _, other := range s.star.planets {
			if planet == other {
				continue
			}
			gap := math.Abs(planet.DistanceToParent() - other.DistanceToParent())
			for _, moon := range other.moons {
				if moon.DistanceToParent() >= gap {
					return &Collision{Kind: CollisionPlanetMoon, First: planet, Second: moon}
				}
			}
		}
	}
	return nil
}
