package domain

// Star is the root of a solar system
type Star struct {
	celestial
	planets   []*Planet
	planetSeq int
}

func newStar(number int, position Position, mass float64) *Star {
	return &Star{
		celestial: celestial{
			id:       StarID(number),
			position: position,
			mass:     mass,
		},
		planets: make([]*Planet, 0),
	}
}

func (s *Star) Kind() Kind { return KindStar }

// AbsolutePosition of a star is its position
func (s *Star) AbsolutePosition() Position { return s.position }

// Parent always returns nil
func (s *Star) Parent() Body { return nil }

func (s *Star) String() string { return describe(s) }

// Planets returns the planets in creation order
func (s *Star) Planets() []*Planet {
	planets := make([]*Planet, len(s.planets))
	copy(planets, s.planets)
	return planets
}

// PlanetCount returns the number of live planets
func (s *Star) PlanetCount() int {
	return len(s.planets)
}

// AddNewPlanet creates a planet orbiting the star.
// Returns nil without changing anything when the star is full.
func (s *Star) AddNewPlanet(relative Position, mass float64) *Planet {
	if len(s.planets) >= MaxPlanets {
		return nil
	}
	s.planetSeq++
	planet := &Planet{
		celestial: celestial{
			id:       PlanetID(s.id, s.planetSeq),
			position: relative,
			mass:     mass,
		},
		star:  s,
		moons: make([]*Moon, 0),
	}
	s.planets = append(s.planets, planet)
	return planet
}

// FindPlanet returns the planet with the given identifier
func (s *Star) FindPlanet(id string) (*Planet, bool) {
	for _, planet := range s.planets {
		if planet.id == id {
			return planet, true
		}
	}
	return nil, false
}

// RemoveAllPlanets detaches every planet, and with them every moon
func (s *Star) RemoveAllPlanets() int {
	removed := len(s.planets)
	for _, planet := range s.planets {
		planet.star = nil
	}
	s.planets = make([]*Planet, 0)
	return removed
}

func (s *Star) detach(planet *Planet) {
	for i, p := range s.planets {
		if p == planet {
			s.planets = append(s.planets[:i], s.planets[i+1:]...)
			return
		}
	}
}
