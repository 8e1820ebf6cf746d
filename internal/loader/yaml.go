package loader

import (
	"fmt"
	"os"

	"planetarium/internal/domain"

	"gopkg.in/yaml.v3"
)

// ScenarioYAML represents the YAML file structure
type ScenarioYAML struct {
	Version     string    `yaml:"version"`
	Description string    `yaml:"description,omitempty"`
	Star        *StarYAML `yaml:"star"`
}

// StarYAML represents the star of the scenario
type StarYAML struct {
	Position PositionYAML `yaml:"position"`
	Mass     float64      `yaml:"mass"`
	Planets  []PlanetYAML `yaml:"planets,omitempty"`
}

// PlanetYAML represents a planet, positioned relative to its star
type PlanetYAML struct {
	Position PositionYAML `yaml:"position"`
	Mass     float64      `yaml:"mass"`
	Moons    []MoonYAML   `yaml:"moons,omitempty"`
}

// MoonYAML represents a moon, positioned relative to its planet
type MoonYAML struct {
	Position PositionYAML `yaml:"position"`
	Mass     float64      `yaml:"mass"`
}

// PositionYAML is an x/y pair
type PositionYAML struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p PositionYAML) toDomain() domain.Position {
	return domain.NewPosition(p.X, p.Y)
}

// LoadYAML loads a solar system from a YAML scenario file
func LoadYAML(path string) (*domain.SolarSystem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseYAML(data)
}

// ParseYAML parses a solar system from YAML bytes
func ParseYAML(data []byte) (*domain.SolarSystem, error) {
	var scenario ScenarioYAML
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return convertScenario(&scenario)
}

func convertScenario(s *ScenarioYAML) (*domain.SolarSystem, error) {
	if s.Star == nil {
		return nil, fmt.Errorf("scenario has no star")
	}
	if s.Star.Mass <= 0 {
		return nil, fmt.Errorf("star mass must be positive, got %g", s.Star.Mass)
	}
	if len(s.Star.Planets) > domain.MaxPlanets {
		return nil, fmt.Errorf("scenario has %d planets, at most %d allowed", len(s.Star.Planets), domain.MaxPlanets)
	}

	system := domain.NewSolarSystem(s.Star.Position.toDomain(), s.Star.Mass)

	for i, p := range s.Star.Planets {
		if p.Mass <= 0 {
			return nil, fmt.Errorf("planet %d: mass must be positive, got %g", i+1, p.Mass)
		}
		if len(p.Moons) > domain.MaxMoons {
			return nil, fmt.Errorf("planet %d: %d moons, at most %d allowed", i+1, len(p.Moons), domain.MaxMoons)
		}

		planet := system.Star().AddNewPlanet(p.Position.toDomain(), p.Mass)

		for j, m := range p.Moons {
			if m.Mass <= 0 {
				return nil, fmt.Errorf("planet %s moon %d: mass must be positive, got %g", planet.ID(), j+1, m.Mass)
			}
			planet.AddNewMoon(m.Position.toDomain(), m.Mass)
		}
	}

	return system, nil
}
