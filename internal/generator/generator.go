// Package generator populates solar systems with random planets and moons.
package generator

import (
	"fmt"
	"math"
	"math/rand/v2"

	"planetarium/internal/domain"
)

// Options bounds the generated bodies
type Options struct {
	Seed uint64
	// PlanetRadius bounds the orbital radius of generated planets
	MinPlanetRadius float64
	MaxPlanetRadius float64
	// MoonRadius bounds the orbital radius of generated moons
	MinMoonRadius float64
	MaxMoonRadius float64
	MinMass       float64
	MaxMass       float64
}

// DefaultOptions returns the bounds used when nothing is configured
func DefaultOptions() Options {
	return Options{
		MinPlanetRadius: 100,
		MaxPlanetRadius: 10000,
		MinMoonRadius:   1,
		MaxMoonRadius:   50,
		MinMass:         1,
		MaxMass:         1000,
	}
}

// Validate checks that every range is well formed
func (o Options) Validate() error {
	if o.MinPlanetRadius < 0 || o.MaxPlanetRadius < o.MinPlanetRadius {
		return fmt.Errorf("invalid planet radius range [%g, %g]", o.MinPlanetRadius, o.MaxPlanetRadius)
	}
	if o.MinMoonRadius < 0 || o.MaxMoonRadius < o.MinMoonRadius {
		return fmt.Errorf("invalid moon radius range [%g, %g]", o.MinMoonRadius, o.MaxMoonRadius)
	}
	if o.MinMass <= 0 || o.MaxMass < o.MinMass {
		return fmt.Errorf("invalid mass range [%g, %g]", o.MinMass, o.MaxMass)
	}
	return nil
}

// Result counts the bodies a run created
type Result struct {
	Planets int `json:"planets"`
	Moons   int `json:"moons"`
}

// Generator creates random bodies from a seeded source
type Generator struct {
	opts Options
	rng  *rand.Rand
}

// New creates a generator. A zero seed draws one at random.
func New(opts Options) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Generator{
		opts: opts,
		rng:  rand.New(rand.NewPCG(seed, seed>>1|1)),
	}, nil
}

// Populate adds planets to the star and moonsPerPlanet moons to each of them.
// Counts are capped at domain.MaxPlanets and domain.MaxMoons.
func (g *Generator) Populate(star *domain.Star, planets, moonsPerPlanet int) Result {
	planets = min(max(planets, 0), domain.MaxPlanets)
	moonsPerPlanet = min(max(moonsPerPlanet, 0), domain.MaxMoons)

	var result Result
	for i := 0; i < planets; i++ {
		planet := star.AddNewPlanet(g.position(g.opts.MinPlanetRadius, g.opts.MaxPlanetRadius), g.mass())
		if planet == nil {
			break
		}
		result.Planets++

		for j := 0; j < moonsPerPlanet; j++ {
			if planet.AddNewMoon(g.position(g.opts.MinMoonRadius, g.opts.MaxMoonRadius), g.mass()) == nil {
				break
			}
			result.Moons++
		}
	}
	return result
}

// position draws a point at a random angle and a radius in [lo, hi]
func (g *Generator) position(lo, hi float64) domain.Position {
	radius := lo + g.rng.Float64()*(hi-lo)
	angle := g.rng.Float64() * 2 * math.Pi
	return domain.NewPosition(radius*math.Cos(angle), radius*math.Sin(angle))
}

// mass draws a value in [MinMass, MaxMass], so it is always positive
func (g *Generator) mass() float64 {
	return g.opts.MinMass + g.rng.Float64()*(g.opts.MaxMass-g.opts.MinMass)
}
