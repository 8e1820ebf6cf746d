package domain

import (
	"errors"
	"slices"
	"testing"
)

// pathFixture builds S1 with planets P1 (3,4) and P2 (0,10), moons P1M1
// (1,0), P1M2 (0,2) and P2M1 (0,3)
func pathFixture() *SolarSystem {
	system := NewSolarSystem(Position{}, 100)
	p1 := system.Star().AddNewPlanet(NewPosition(3, 4), 5)
	p2 := system.Star().AddNewPlanet(NewPosition(0, 10), 5)
	p1.AddNewMoon(NewPosition(1, 0), 1)
	p1.AddNewMoon(NewPosition(0, 2), 1)
	p2.AddNewMoon(NewPosition(0, 3), 1)
	return system
}

func TestFindPath(t *testing.T) {
	system := pathFixture()

	tests := []struct {
		from     string
		to       string
		want     []string
		distance float64
	}{
		{"S1", "S1P2", []string{"S1", "S1P2"}, 10},
		{"S1P2", "S1", []string{"S1P2", "S1"}, 10},
		{"S1P1M1", "S1P2", []string{"S1P1M1", "S1P1", "S1", "S1P2"}, 16},
		{"S1P1M1", "S1P1", []string{"S1P1M1", "S1P1"}, 1},
		{"S1P1", "S1P1M2", []string{"S1P1", "S1P1M2"}, 2},
		{"S1P1M1", "S1P1M2", []string{"S1P1M1", "S1P1", "S1P1M2"}, 3},
		{"S1P1M1", "S1P2M1", []string{"S1P1M1", "S1P1", "S1", "S1P2", "S1P2M1"}, 19},
		{"S1", "S1P2M1", []string{"S1", "S1P2", "S1P2M1"}, 13},
		{"S1P1", "S1P2", []string{"S1P1", "S1", "S1P2"}, 15},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			path, err := system.FindPath(tt.from, tt.to)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(path.IDs(), tt.want) {
				t.Errorf("expected %v, got %v", tt.want, path.IDs())
			}
			if !almostEqual(path.Distance, tt.distance) {
				t.Errorf("expected distance %f, got %f", tt.distance, path.Distance)
			}
		})
	}
}

func TestFindPathSameIdentifier(t *testing.T) {
	system := pathFixture()

	for _, body := range system.Bodies() {
		path, err := system.FindPath(body.ID(), body.ID())
		if err != nil {
			t.Errorf("FindPath(%s, %s) unexpected error: %v", body.ID(), body.ID(), err)
			continue
		}
		if path.Required() {
			t.Errorf("FindPath(%s, %s) expected no path, got %s", body.ID(), body.ID(), path)
		}
		if path.String() != "no path required" {
			t.Errorf("unexpected rendering %q", path.String())
		}
	}
}

func TestFindPathNotFound(t *testing.T) {
	system := pathFixture()

	for _, tc := range [][2]string{{"S1P9", "S1"}, {"S1", "S1P1M9"}} {
		_, err := system.FindPath(tc[0], tc[1])
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("FindPath(%s, %s) expected ErrNotFound, got %v", tc[0], tc[1], err)
		}
	}
}

func TestFindPathReversible(t *testing.T) {
	system := pathFixture()
	bodies := system.Bodies()

	for _, a := range bodies {
		for _, b := range bodies {
			forward, err := system.FindPath(a.ID(), b.ID())
			if err != nil {
				t.Fatalf("FindPath(%s, %s) unexpected error: %v", a.ID(), b.ID(), err)
			}
			backward, err := system.FindPath(b.ID(), a.ID())
			if err != nil {
				t.Fatalf("FindPath(%s, %s) unexpected error: %v", b.ID(), a.ID(), err)
			}

			if !slices.Equal(forward.Reverse().IDs(), backward.IDs()) {
				t.Errorf("path %s -> %s is %v, reverse is %v", a.ID(), b.ID(), forward.IDs(), backward.IDs())
			}
			if !almostEqual(forward.Distance, backward.Distance) {
				t.Errorf("distance %s <-> %s differs: %f vs %f", a.ID(), b.ID(), forward.Distance, backward.Distance)
			}
		}
	}
}

func TestPathBetweenDifferentSystems(t *testing.T) {
	first := NewSolarSystem(Position{}, 1)
	second := NewSolarSystem(NewPosition(1000, 0), 1)
	a := first.Star().AddNewPlanet(NewPosition(1, 0), 1)
	b := second.Star().AddNewPlanet(NewPosition(2, 0), 1)

	_, err := PathBetween(a, b)
	if !errors.Is(err, ErrDifferentSystem) {
		t.Fatalf("expected ErrDifferentSystem, got %v", err)
	}

	var diff *DifferentSystemError
	if !errors.As(err, &diff) || diff.From != Body(a) || diff.To != Body(b) {
		t.Errorf("expected DifferentSystemError naming both planets, got %v", err)
	}
}

func TestPathDescribe(t *testing.T) {
	system := pathFixture()
	path, err := system.FindPath("S1P1M1", "S1P2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "S1P1M1 > S1P1 > S1 > S1P2 (distance: 16.000)"
	if got := path.Describe(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
