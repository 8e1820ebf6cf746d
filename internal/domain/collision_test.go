package domain

import "testing"

func TestDetectCollisionsQuietSystems(t *testing.T) {
	t.Run("lone star", func(t *testing.T) {
		system := NewSolarSystem(Position{}, 10)
		if system.DetectCollisions() {
			t.Error("expected no collision")
		}
	})

	t.Run("single planet without moons", func(t *testing.T) {
		system := NewSolarSystem(Position{}, 10)
		system.Star().AddNewPlanet(NewPosition(3, 0), 1)
		if system.DetectCollisions() {
			t.Error("expected no collision")
		}
	})

	t.Run("well separated planets and moons", func(t *testing.T) {
		system := NewSolarSystem(Position{}, 10)
		p1 := system.Star().AddNewPlanet(NewPosition(100, 0), 1)
		p2 := system.Star().AddNewPlanet(NewPosition(0, 300), 1)
		p1.AddNewMoon(NewPosition(1, 0), 1)
		p1.AddNewMoon(NewPosition(0, 2), 1)
		p2.AddNewMoon(NewPosition(3, 0), 1)

		if system.DetectCollisions() {
			t.Errorf("expected no collision, got %v", system.Collisions())
		}
	})
}

func TestDetectCollisions(t *testing.T) {
	tests := []struct {
		name  string
		build func(s *Star)
		kind  CollisionKind
	}{
		{
			name: "planets on the same orbit",
			build: func(s *Star) {
				s.AddNewPlanet(NewPosition(3, 0), 1)
				s.AddNewPlanet(NewPosition(0, 3), 1)
			},
			kind: CollisionPlanetPlanet,
		},
		{
			name: "moon orbit reaches the star",
			build: func(s *Star) {
				p := s.AddNewPlanet(NewPosition(5, 0), 1)
				p.AddNewMoon(NewPosition(0, 5), 1)
			},
			kind: CollisionStarMoon,
		},
		{
			name: "moons of one planet on the same orbit",
			build: func(s *Star) {
				p := s.AddNewPlanet(NewPosition(100, 0), 1)
				p.AddNewMoon(NewPosition(2, 0), 1)
				p.AddNewMoon(NewPosition(0, -2), 1)
			},
			kind: CollisionMoonMoon,
		},
		{
			name: "moon shells of neighbouring planets overlap",
			build: func(s *Star) {
				p1 := s.AddNewPlanet(NewPosition(100, 0), 1)
				p2 := s.AddNewPlanet(NewPosition(110, 0), 1)
				p1.AddNewMoon(NewPosition(6, 0), 1)
				p2.AddNewMoon(NewPosition(4, 0), 1)
			},
			kind: CollisionMoonMoon,
		},
		{
			name: "moon orbit reaches another planet",
			build: func(s *Star) {
				s.AddNewPlanet(NewPosition(100, 0), 1)
				p2 := s.AddNewPlanet(NewPosition(110, 0), 1)
				p2.AddNewMoon(NewPosition(10, 0), 1)
			},
			kind: CollisionPlanetMoon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			system := NewSolarSystem(Position{}, 10)
			tt.build(system.Star())

			if !system.DetectCollisions() {
				t.Fatal("expected a collision")
			}

			found := false
			for _, c := range system.Collisions() {
				if c.Kind == tt.kind {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a %s collision, got %v", tt.kind, system.Collisions())
			}
		})
	}
}

func TestMoonShellBoundary(t *testing.T) {
	t.Run("shells touching exactly collide", func(t *testing.T) {
		system := NewSolarSystem(Position{}, 10)
		p1 := system.Star().AddNewPlanet(NewPosition(100, 0), 1)
		p2 := system.Star().AddNewPlanet(NewPosition(120, 0), 1)
		p1.AddNewMoon(NewPosition(8, 0), 1)
		p2.AddNewMoon(NewPosition(12, 0), 1)

		if system.moonMoonCollision() == nil {
			t.Error("expected moon-moon collision when shells sum to the gap")
		}
	})

	t.Run("shells short of the gap do not collide", func(t *testing.T) {
		system := NewSolarSystem(Position{}, 10)
		p1 := system.Star().AddNewPlanet(NewPosition(100, 0), 1)
		p2 := system.Star().AddNewPlanet(NewPosition(120, 0), 1)
		p1.AddNewMoon(NewPosition(8, 0), 1)
		p2.AddNewMoon(NewPosition(11, 0), 1)

		if c := system.moonMoonCollision(); c != nil {
			t.Errorf("expected no moon-moon collision, got %s", c)
		}
	})
}

func TestPlanetMoonCollisionChecksBothDirections(t *testing.T) {
	system := NewSolarSystem(Position{}, 10)
	p1 := system.Star().AddNewPlanet(NewPosition(100, 0), 1)
	system.Star().AddNewPlanet(NewPosition(110, 0), 1)
	p1.AddNewMoon(NewPosition(0, 10), 1)

	c := system.planetMoonCollision()
	if c == nil {
		t.Fatal("expected planet-moon collision from the first planet's moon")
	}
	if c.First.ID() != "S1P2" || c.Second.ID() != "S1P1M1" {
		t.Errorf("unexpected pair %s", c)
	}
}
