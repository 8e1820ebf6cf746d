package domain

import (
	"fmt"
	"strings"
)

// Path is the sequence of bodies connecting two bodies through the tree,
// with the orbital distance travelled along it
type Path struct {
	Bodies   []Body
	Distance float64
}

// Required reports whether the path has at least one step
func (p Path) Required() bool {
	return len(p.Bodies) > 1
}

// IDs returns the identifiers along the path
func (p Path) IDs() []string {
	ids := make([]string, len(p.Bodies))
	for i, body := range p.Bodies {
		ids[i] = body.ID()
	}
	return ids
}

// Reverse returns the same path walked the other way
func (p Path) Reverse() Path {
	bodies := make([]Body, len(p.Bodies))
	for i, body := range p.Bodies {
		bodies[len(bodies)-1-i] = body
	}
	return Path{Bodies: bodies, Distance: p.Distance}
}

// String renders the path as "S1P1M1 > S1P1 > S1 > S1P2"
func (p Path) String() string {
	if !p.Required() {
		return "no path required"
	}
	return strings.Join(p.IDs(), " > ")
}

// Describe renders the path followed by the distance travelled
func (p Path) Describe() string {
	if !p.Required() {
		return p.String()
	}
	return fmt.Sprintf("%s (distance: %.3f)", p, p.Distance)
}

// FindPath resolves both identifiers and returns the tree path between them.
// Equal identifiers give an empty path without any lookup.
func (s *SolarSystem) FindPath(fromID, toID string) (Path, error) {
	if fromID == toID {
		return Path{}, nil
	}

	from, err := s.FindCelestialBody(fromID)
	if err != nil {
		return Path{}, err
	}
	to, err := s.FindCelestialBody(toID)
	if err != nil {
		return Path{}, err
	}

	return PathBetween(from, to)
}

// PathBetween walks both bodies toward their roots until the walks meet.
// Bodies that never meet belong to different systems.
func PathBetween(from, to Body) (Path, error) {
	if from == to {
		return Path{}, nil
	}

	up := ancestry(from)
	down := ancestry(to)

	for i, a := range up {
		for j, b := range down {
			if a != b {
				continue
			}
			bodies := make([]Body, 0, i+j+1)
			bodies = append(bodies, up[:i+1]...)
			for k := j - 1; k >= 0; k-- {
				bodies = append(bodies, down[k])
			}
			return Path{Bodies: bodies, Distance: pathDistance(bodies)}, nil
		}
	}

	return Path{}, &DifferentSystemError{From: from, To: to}
}

// ancestry lists a body followed by each of its ancestors up to the root
func ancestry(b Body) []Body {
	var chain []Body
	for b != nil {
		chain = append(chain, b)
		b = b.Parent()
	}
	return chain
}

// pathDistance sums, for every edge, the orbital radius of its outer endpoint
func pathDistance(bodies []Body) float64 {
	var total float64
	for i := 1; i < len(bodies); i++ {
		prev, next := bodies[i-1], bodies[i]
		outer := next
		if prev.Parent() == next {
			outer = prev
		}
		if satellite, ok := outer.(Satellite); ok {
			total += satellite.DistanceToParent()
		}
	}
	return total
}
