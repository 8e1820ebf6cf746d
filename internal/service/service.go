package service

import (
	"errors"
	"fmt"
	"io"
	"log"

	"planetarium/internal/codec"
	"planetarium/internal/domain"
	"planetarium/internal/generator"
)

var (
	// ErrInvalidMass is returned for a mass that is not strictly positive
	ErrInvalidMass = errors.New("mass must be greater than zero")
	// ErrCapacity is returned when a star or planet cannot take another satellite
	ErrCapacity = errors.New("maximum number of satellites reached")
	// ErrWrongKind is returned when an identifier names another kind of body
	ErrWrongKind = errors.New("identifier names a different kind of body")
)

// SystemService provides business logic for solar system operations
type SystemService struct {
	system   *domain.SolarSystem
	eventBus *EventBus
}

// NewSystemService creates a new system service
func NewSystemService(system *domain.SolarSystem, eventBus *EventBus) *SystemService {
	if eventBus == nil {
		eventBus = NewEventBus()
	}
	return &SystemService{
		system:   system,
		eventBus: eventBus,
	}
}

// System returns the underlying solar system
func (s *SystemService) System() *domain.SolarSystem {
	return s.system
}

// Load replaces the managed system, typically with one read from a scenario
func (s *SystemService) Load(system *domain.SolarSystem) {
	s.system = system
	log.Printf("Loaded system %s with %d bodies", system.Star().ID(), system.Size())
	s.eventBus.Publish(Event{
		Type:    EventSystemLoaded,
		Payload: map[string]any{"star_id": system.Star().ID(), "bodies": system.Size()},
	})
}

// AddPlanet creates a planet around the star
func (s *SystemService) AddPlanet(relative domain.Position, mass float64) (*domain.Planet, error) {
	if err := validateMass(mass); err != nil {
		return nil, err
	}

	planet := s.system.Star().AddNewPlanet(relative, mass)
	if planet == nil {
		return nil, fmt.Errorf("star %s holds %d planets: %w", s.system.Star().ID(), domain.MaxPlanets, ErrCapacity)
	}

	log.Printf("Added planet %s at %s (mass %g)", planet.ID(), relative, mass)
	s.eventBus.Publish(Event{
		Type:    EventPlanetAdded,
		Payload: map[string]string{"body_id": planet.ID()},
	})
	return planet, nil
}

// AddMoon creates a moon around the planet with the given identifier
func (s *SystemService) AddMoon(planetID string, relative domain.Position, mass float64) (*domain.Moon, error) {
	if err := validateMass(mass); err != nil {
		return nil, err
	}

	planet, err := s.Planet(planetID)
	if err != nil {
		return nil, err
	}

	moon := planet.AddNewMoon(relative, mass)
	if moon == nil {
		return nil, fmt.Errorf("planet %s holds %d moons: %w", planet.ID(), domain.MaxMoons, ErrCapacity)
	}

	log.Printf("Added moon %s at %s (mass %g)", moon.ID(), relative, mass)
	s.eventBus.Publish(Event{
		Type:    EventMoonAdded,
		Payload: map[string]string{"body_id": moon.ID()},
	})
	return moon, nil
}

// Body returns the body with the given identifier
func (s *SystemService) Body(id string) (domain.Body, error) {
	return s.system.FindCelestialBody(domain.NormalizeID(id))
}

// Planet returns the planet with the given identifier
func (s *SystemService) Planet(id string) (*domain.Planet, error) {
	body, err := s.Body(id)
	if err != nil {
		return nil, err
	}
	planet, ok := body.(*domain.Planet)
	if !ok {
		return nil, fmt.Errorf("%s is a %s: %w", body.ID(), body.Kind(), ErrWrongKind)
	}
	return planet, nil
}

// RemovePlanet removes a planet and, with it, all its moons
func (s *SystemService) RemovePlanet(id string) error {
	planet, err := s.Planet(id)
	if err != nil {
		return err
	}
	moons := planet.MoonCount()
	planet.RemoveFromSystem()

	log.Printf("Removed planet %s and %d moons", planet.ID(), moons)
	s.publishRemoved(planet)
	return nil
}

// RemoveMoon removes a moon from its planet
func (s *SystemService) RemoveMoon(id string) error {
	body, err := s.Body(id)
	if err != nil {
		return err
	}
	moon, ok := body.(*domain.Moon)
	if !ok {
		return fmt.Errorf("%s is a %s: %w", body.ID(), body.Kind(), ErrWrongKind)
	}
	moon.RemoveFromSystem()

	log.Printf("Removed moon %s", moon.ID())
	s.publishRemoved(moon)
	return nil
}

// Remove removes any planet or moon by identifier
func (s *SystemService) Remove(id string) error {
	body, err := s.system.RemoveCelestialBody(domain.NormalizeID(id))
	if err != nil {
		return err
	}

	log.Printf("Removed %s %s", body.Kind(), body.ID())
	s.publishRemoved(body)
	return nil
}

func (s *SystemService) publishRemoved(body domain.Body) {
	s.eventBus.Publish(Event{
		Type:    EventBodyRemoved,
		Payload: map[string]string{"body_id": body.ID(), "kind": string(body.Kind())},
	})
}

// Clear removes every planet and moon
func (s *SystemService) Clear() int {
	removed := s.system.Clear()

	log.Printf("Cleared %d planets from %s", removed, s.system.Star().ID())
	s.eventBus.Publish(Event{
		Type:    EventSystemCleared,
		Payload: map[string]int{"planets_removed": removed},
	})
	return removed
}

// Populate adds random planets and moons
func (s *SystemService) Populate(opts generator.Options, planets, moonsPerPlanet int) (generator.Result, error) {
	gen, err := generator.New(opts)
	if err != nil {
		return generator.Result{}, fmt.Errorf("failed to create generator: %w", err)
	}

	result := gen.Populate(s.system.Star(), planets, moonsPerPlanet)

	log.Printf("Generated %d planets and %d moons", result.Planets, result.Moons)
	s.eventBus.Publish(Event{
		Type:    EventSystemPopulated,
		Payload: result,
	})
	return result, nil
}

// CenterOfMass returns the center of mass of the system
func (s *SystemService) CenterOfMass() (domain.Position, error) {
	return s.system.CenterOfMass()
}

// Collisions returns the possible collisions, empty when the system is quiet
func (s *SystemService) Collisions() []domain.Collision {
	if !s.system.DetectCollisions() {
		return nil
	}
	return s.system.Collisions()
}

// Route returns the path between two bodies
func (s *SystemService) Route(fromID, toID string) (domain.Path, error) {
	return s.system.FindPath(domain.NormalizeID(fromID), domain.NormalizeID(toID))
}

// Export writes a snapshot of the system in the requested format
func (s *SystemService) Export(format string, w io.Writer) error {
	exporter, err := codec.ForFormat(format)
	if err != nil {
		return err
	}
	return exporter.Export(s.system.Snapshot(), w)
}

func validateMass(mass float64) error {
	if !(mass > 0) {
		return fmt.Errorf("invalid mass %g: %w", mass, ErrInvalidMass)
	}
	return nil
}
