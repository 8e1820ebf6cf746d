package domain

// Snapshot is a read-only view of a system for display and export
type Snapshot struct {
	Star         BodyView  `json:"star"`
	TotalMass    float64   `json:"total_mass"`
	CenterOfMass *Position `json:"center_of_mass,omitempty"`
	Collisions   []string  `json:"collisions,omitempty"`
}

// BodyView describes one body and its satellites
type BodyView struct {
	ID               string     `json:"id"`
	Kind             Kind       `json:"kind"`
	Mass             float64    `json:"mass"`
	RelativePosition Position   `json:"relative_position"`
	AbsolutePosition Position   `json:"absolute_position"`
	Satellites       []BodyView `json:"satellites,omitempty"`
}

// NewBodyView captures a body without its satellites
func NewBodyView(b Body) BodyView {
	return BodyView{
		ID:               b.ID(),
		Kind:             b.Kind(),
		Mass:             b.Mass(),
		RelativePosition: b.RelativePosition(),
		AbsolutePosition: b.AbsolutePosition(),
	}
}

// Snapshot captures the current state of the system
func (s *SolarSystem) Snapshot() *Snapshot {
	star := NewBodyView(s.star)
	star.Satellites = make([]BodyView, 0, len(s.star.planets))
	for _, planet := range s.star.planets {
		pv := NewBodyView(planet)
		for _, moon := range planet.moons {
			pv.Satellites = append(pv.Satellites, NewBodyView(moon))
		}
		star.Satellites = append(star.Satellites, pv)
	}

	snapshot := &Snapshot{
		Star:      star,
		TotalMass: s.TotalMass(),
	}
	if center, err := s.CenterOfMass(); err == nil {
		snapshot.CenterOfMass = &center
	}
	for _, c := range s.Collisions() {
		snapshot.Collisions = append(snapshot.Collisions, c.String())
	}
	return snapshot
}
