package domain

// Moon orbits a planet
type Moon struct {
	celestial
	planet *Planet
}

func (m *Moon) Kind() Kind { return KindMoon }

// Planet returns the planet the moon orbits, or nil once removed
func (m *Moon) Planet() *Planet { return m.planet }

// Parent returns the planet, or nil once removed
func (m *Moon) Parent() Body {
	if m.planet == nil {
		return nil
	}
	return m.planet
}

// AbsolutePosition adds the planet's absolute position to the relative one
func (m *Moon) AbsolutePosition() Position {
	absolute := m.position
	if m.planet != nil {
		absolute.Translate(m.planet.AbsolutePosition())
	}
	return absolute
}

// DistanceToParent is the orbital radius around the planet
func (m *Moon) DistanceToParent() float64 {
	return m.orbitRadius()
}

func (m *Moon) String() string { return describe(m) }

// RemoveFromSystem detaches the moon from its planet
func (m *Moon) RemoveFromSystem() {
	if m.planet == nil {
		return
	}
	m.planet.detach(m)
	m.planet = nil
}
