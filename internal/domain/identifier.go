package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Identifier examples:
//
//	star:   S1
//	planet: S1P3
//	moon:   S1P3M2
var identifierPattern = regexp.MustCompile(`^S(\d+)(?:P(\d+)(?:M(\d+))?)?$`)

// StarID returns the identifier of the n-th star
func StarID(n int) string {
	return fmt.Sprintf("S%d", n)
}

// PlanetID returns the identifier of the k-th planet of a star
func PlanetID(starID string, k int) string {
	return fmt.Sprintf("%sP%d", starID, k)
}

// MoonID returns the identifier of the j-th moon of a planet
func MoonID(planetID string, j int) string {
	return fmt.Sprintf("%sM%d", planetID, j)
}

// Identifier is a parsed body identifier
type Identifier struct {
	Star   int
	Planet int // 0 for a star
	Moon   int // 0 for a star or a planet
}

// ParseIdentifier splits an identifier into its sequence numbers.
// Surrounding spaces are ignored and the letters are case-insensitive.
func ParseIdentifier(raw string) (Identifier, error) {
	m := identifierPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(raw)))
	if m == nil {
		return Identifier{}, fmt.Errorf("invalid identifier %q", raw)
	}

	var id Identifier
	id.Star, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		id.Planet, _ = strconv.Atoi(m[2])
	}
	if m[3] != "" {
		id.Moon, _ = strconv.Atoi(m[3])
	}
	return id, nil
}

// Kind returns the variant the identifier names
func (id Identifier) Kind() Kind {
	switch {
	case id.Moon > 0:
		return KindMoon
	case id.Planet > 0:
		return KindPlanet
	default:
		return KindStar
	}
}

// StarID returns the identifier of the star that owns this body
func (id Identifier) StarID() string {
	return StarID(id.Star)
}

// PlanetID returns the identifier of the planet that owns this body, if any
func (id Identifier) PlanetID() string {
	if id.Planet == 0 {
		return ""
	}
	return PlanetID(id.StarID(), id.Planet)
}

// String renders the canonical identifier
func (id Identifier) String() string {
	switch id.Kind() {
	case KindMoon:
		return MoonID(id.PlanetID(), id.Moon)
	case KindPlanet:
		return id.PlanetID()
	default:
		return id.StarID()
	}
}

// NormalizeID returns the canonical form of an identifier typed by a user,
// or the input trimmed when it does not parse
func NormalizeID(raw string) string {
	id, err := ParseIdentifier(raw)
	if err != nil {
		return strings.TrimSpace(raw)
	}
	return id.String()
}
