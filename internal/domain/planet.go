package domain

// Planet orbits a star and owns its moons
type Planet struct {
	celestial
	star    *Star
	moons   []*Moon
	moonSeq int
}

func (p *Planet) Kind() Kind { return KindPlanet }

// Star returns the star the planet orbits, or nil once removed
func (p *Planet) Star() *Star { return p.star }

// Parent returns the star, or nil once removed
func (p *Planet) Parent() Body {
	if p.star == nil {
		return nil
	}
	return p.star
}

// AbsolutePosition adds the star's position to the relative one
func (p *Planet) AbsolutePosition() Position {
	absolute := p.position
	if p.star != nil {
		absolute.Translate(p.star.AbsolutePosition())
	}
	return absolute
}

// DistanceToParent is the orbital radius around the star
func (p *Planet) DistanceToParent() float64 {
	return p.orbitRadius()
}

func (p *Planet) String() string { return describe(p) }

// Moons returns the moons in creation order
func (p *Planet) Moons() []*Moon {
	moons := make([]*Moon, len(p.moons))
	copy(moons, p.moons)
	return moons
}

// MoonCount returns the number of live moons
func (p *Planet) MoonCount() int {
	return len(p.moons)
}

// AddNewMoon creates a moon orbiting the planet.
// Returns nil without changing anything when the planet is full.
func (p *Planet) AddNewMoon(relative Position, mass float64) *Moon {
	if len(p.moons) >= MaxMoons {
		return nil
	}
	p.moonSeq++
	moon := &Moon{
		celestial: celestial{
			id:       MoonID(p.id, p.moonSeq),
			position: relative,
			mass:     mass,
		},
		planet: p,
	}
	p.moons = append(p.moons, moon)
	return moon
}

// FindMoon returns the moon with the given identifier
func (p *Planet) FindMoon(id string) (*Moon, bool) {
	for _, moon := range p.moons {
		if moon.id == id {
			return moon, true
		}
	}
	return nil, false
}

// RemoveFromSystem detaches the planet from its star. The planet keeps its
// moons but none of them is reachable from the system anymore.
func (p *Planet) RemoveFromSystem() {
	if p.star == nil {
		return
	}
	p.star.detach(p)
	p.star = nil
}

func (p *Planet) detach(moon *Moon) {
	for i, m := range p.moons {
		if m == moon {
			p.moons = append(p.moons[:i], p.moons[i+1:]...)
			return
		}
	}
}
