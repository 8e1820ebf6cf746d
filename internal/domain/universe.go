package domain

// Universe allocates star numbers for independent solar systems and resolves
// identifiers across them
type Universe struct {
	systems []*SolarSystem
	starSeq int
}

// NewUniverse creates an empty universe
func NewUniverse() *Universe {
	return &Universe{systems: make([]*SolarSystem, 0)}
}

// NewSystem creates a system whose star takes the next free number
func (u *Universe) NewSystem(position Position, mass float64) *SolarSystem {
	u.starSeq++
	system := newSolarSystem(u.starSeq, position, mass)
	u.systems = append(u.systems, system)
	return system
}

// Systems returns the systems in creation order
func (u *Universe) Systems() []*SolarSystem {
	systems := make([]*SolarSystem, len(u.systems))
	copy(systems, u.systems)
	return systems
}

// FindCelestialBody looks the identifier up in every system
func (u *Universe) FindCelestialBody(id string) (Body, error) {
	for _, system := range u.systems {
		body, err := system.FindCelestialBody(id)
		if err == nil {
			return body, nil
		}
	}
	return nil, &NotFoundError{Identifier: id}
}

// FindPath resolves both identifiers in any system. Bodies of different
// systems fail with ErrDifferentSystem.
func (u *Universe) FindPath(fromID, toID string) (Path, error) {
	if fromID == toID {
		return Path{}, nil
	}

	from, err := u.FindCelestialBody(fromID)
	if err != nil {
		return Path{}, err
	}
	to, err := u.FindCelestialBody(toID)
	if err != nil {
		return Path{}, err
	}

	return PathBetween(from, to)
}
