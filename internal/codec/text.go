package codec

import (
	"fmt"
	"io"
	"strings"

	"planetarium/internal/domain"
)

// TextCodec renders a snapshot as an indented tree
type TextCodec struct{}

// NewTextCodec creates a new text codec
func NewTextCodec() *TextCodec {
	return &TextCodec{}
}

// Format returns the codec format identifier
func (c *TextCodec) Format() string {
	return "text"
}

// Export writes the tree, for example:
//
//	S1      [ Star    mass: 10  position: ( 0.000 , 0.000 ) ]
//	 |__ S1P1   [ Planet  mass: 2   position: ( 5.000 , 0.000 ) ]
//	 |      |__ S1P1M1  [ Moon  mass: 1  position: ( 6.000 , 0.000 ) ]
//	 |__ S1P2   ...
func (c *TextCodec) Export(snapshot *domain.Snapshot, w io.Writer) error {
	var b strings.Builder

	star := snapshot.Star
	fmt.Fprintf(&b, "%s\t\t\t%s\n", star.ID, describeView(star))

	for i, planet := range star.Satellites {
		last := i == len(star.Satellites)-1
		fmt.Fprintf(&b, " |__ %s\t\t%s\n", planet.ID, describeView(planet))

		indent := " |      |__ "
		if last {
			indent = "        |__ "
		}
		for _, moon := range planet.Satellites {
			fmt.Fprintf(&b, "%s%s\t%s\n", indent, moon.ID, describeView(moon))
		}
	}

	fmt.Fprintf(&b, "\nTotal mass: %g\n", snapshot.TotalMass)
	if snapshot.CenterOfMass != nil {
		fmt.Fprintf(&b, "Center of mass: %s\n", *snapshot.CenterOfMass)
	}
	if len(snapshot.Collisions) > 0 {
		b.WriteString("Possible collisions:\n")
		for _, c := range snapshot.Collisions {
			fmt.Fprintf(&b, "  %s\n", c)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write text: %w", err)
	}
	return nil
}

func describeView(v domain.BodyView) string {
	return fmt.Sprintf("[ %s\tmass: %g\tposition: %s ]", v.Kind, v.Mass, v.AbsolutePosition)
}
