package generator

import (
	"testing"

	"planetarium/internal/domain"
)

func TestPopulate(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 42

	gen, err := New(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	system := domain.NewSolarSystem(domain.Position{}, 1000)
	result := gen.Populate(system.Star(), 4, 3)

	if result.Planets != 4 || result.Moons != 12 {
		t.Errorf("expected 4 planets and 12 moons, got %+v", result)
	}
	if system.Size() != 1+4+12 {
		t.Errorf("expected 17 bodies, got %d", system.Size())
	}

	for _, planet := range system.Star().Planets() {
		d := planet.DistanceToParent()
		if d < opts.MinPlanetRadius-1e-9 || d > opts.MaxPlanetRadius+1e-9 {
			t.Errorf("planet %s radius %f out of range", planet.ID(), d)
		}
		if planet.Mass() < opts.MinMass || planet.Mass() > opts.MaxMass {
			t.Errorf("planet %s mass %f out of range", planet.ID(), planet.Mass())
		}
		for _, moon := range planet.Moons() {
			d := moon.DistanceToParent()
			if d < opts.MinMoonRadius-1e-9 || d > opts.MaxMoonRadius+1e-9 {
				t.Errorf("moon %s radius %f out of range", moon.ID(), d)
			}
		}
	}
}

func TestPopulateIsReproducible(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 7

	build := func() []domain.Position {
		gen, err := New(opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		system := domain.NewSolarSystem(domain.Position{}, 1)
		gen.Populate(system.Star(), 3, 2)

		var positions []domain.Position
		for _, body := range system.Bodies() {
			positions = append(positions, body.AbsolutePosition())
		}
		return positions
	}

	first, second := build(), build()
	if len(first) != len(second) {
		t.Fatalf("expected equal sizes, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("body %d differs: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestPopulateClampsCounts(t *testing.T) {
	gen, err := New(DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	system := domain.NewSolarSystem(domain.Position{}, 1)

	result := gen.Populate(system.Star(), -3, 5)
	if result.Planets != 0 || result.Moons != 0 {
		t.Errorf("expected nothing generated, got %+v", result)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"inverted planet range", func(o *Options) { o.MaxPlanetRadius = o.MinPlanetRadius - 1 }},
		{"negative moon radius", func(o *Options) { o.MinMoonRadius = -1 }},
		{"zero mass", func(o *Options) { o.MinMass = 0 }},
		{"inverted mass range", func(o *Options) { o.MaxMass = o.MinMass / 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(&opts)
			if err := opts.Validate(); err == nil {
				t.Error("expected validation error")
			}
			if _, err := New(opts); err == nil {
				t.Error("expected New to reject options")
			}
		})
	}

	if err := DefaultOptions().Validate(); err != nil {
		t.Errorf("expected defaults to be valid, got %v", err)
	}
}

func TestPopulateSmallMasses(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 1
	opts.MinMass, opts.MaxMass = 0.1, 0.4

	gen, err := New(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	system := domain.NewSolarSystem(domain.Position{}, 1)
	gen.Populate(system.Star(), 3, 2)

	for _, body := range system.Bodies()[1:] {
		if body.Mass() <= 0 || body.Mass() < opts.MinMass || body.Mass() > opts.MaxMass {
			t.Errorf("%s mass %g outside [%g, %g]", body.ID(), body.Mass(), opts.MinMass, opts.MaxMass)
		}
	}
}
