package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"planetarium/internal/domain"
)

const sampleScenario = `
version: "1"
description: two planets, one moon
star:
  position: {x: 10, y: 20}
  mass: 1000
  planets:
    - position: {x: 100, y: 0}
      mass: 5
      moons:
        - position: {x: 0, y: 2}
          mass: 1
    - position: {x: 0, y: -250}
      mass: 8
`

func TestParseYAML(t *testing.T) {
	system, err := ParseYAML([]byte(sampleScenario))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if system.Star().ID() != "S1" {
		t.Errorf("expected star S1, got %s", system.Star().ID())
	}
	if system.Size() != 4 {
		t.Errorf("expected 4 bodies, got %d", system.Size())
	}

	moon, err := system.FindCelestialBody("S1P1M1")
	if err != nil {
		t.Fatalf("expected S1P1M1 to exist: %v", err)
	}
	if got := moon.AbsolutePosition(); got != domain.NewPosition(110, 22) {
		t.Errorf("expected moon at (110, 22), got %s", got)
	}
	if system.TotalMass() != 1014 {
		t.Errorf("expected total mass 1014, got %f", system.TotalMass())
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"malformed", "star: [", "failed to parse YAML"},
		{"missing star", "version: \"1\"\n", "no star"},
		{"massless star", "star:\n  mass: 0\n", "star mass"},
		{"massless planet", "star:\n  mass: 1\n  planets:\n    - mass: -1\n", "planet 1"},
		{"massless moon", "star:\n  mass: 1\n  planets:\n    - mass: 1\n      moons:\n        - mass: 0\n", "S1P1 moon 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadYAML(t *testing.T) {
	t.Run("reads a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenario.yaml")
		if err := os.WriteFile(path, []byte(sampleScenario), 0644); err != nil {
			t.Fatalf("failed to write scenario: %v", err)
		}

		system, err := LoadYAML(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if system.Star().PlanetCount() != 2 {
			t.Errorf("expected 2 planets, got %d", system.Star().PlanetCount())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
