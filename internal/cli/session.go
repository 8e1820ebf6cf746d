package cli

import (
	"errors"
	"fmt"
	"io"
	"log"

	"planetarium/internal/domain"
	"planetarium/internal/generator"
	"planetarium/internal/service"
)

const frame = "――――――――――――――――――――――――――――――――――――――――――――――――――――――――"

const (
	choiceExit = iota
	choiceAdd
	choiceRemove
	choiceInfo
	choiceList
	choiceCenterOfMass
	choiceRoute
	choiceCollisions
	choiceGenerate
	choiceClear
)

var mainMenu = []string{
	"1. Add a new planet/moon",
	"2. Remove a planet/moon",
	"3. Show a celestial body",
	"4. List every body of the system",
	"5. Compute the center of mass",
	"6. Compute the route between two bodies",
	"7. Show possible collisions",
	"8. Generate random planets and moons",
	"9. Remove every planet and moon",
	"0. Exit",
}

// Options configures a session
type Options struct {
	// Format of the system listing: text, json or yaml
	Format    string
	Generator generator.Options
}

// Session is one interactive run of the menu
type Session struct {
	svc  *service.SystemService
	in   *prompter
	out  io.Writer
	opts Options
}

// NewSession creates a session over the given service
func NewSession(svc *service.SystemService, in io.Reader, out io.Writer, opts Options) *Session {
	return &Session{
		svc:  svc,
		in:   newPrompter(in, out),
		out:  out,
		opts: opts,
	}
}

// AskStar asks for the position and mass of the star and replaces the
// system with a new one around it
func (s *Session) AskStar() error {
	x, err := s.in.float("X coordinate of the star: ")
	if err != nil {
		return err
	}
	y, err := s.in.float("Y coordinate of the star: ")
	if err != nil {
		return err
	}
	mass, err := s.in.positiveFloat("Mass of the star: ")
	if err != nil {
		return err
	}

	s.svc.Load(domain.NewSolarSystem(domain.NewPosition(x, y), mass))
	return nil
}

// Run shows the menu until the user exits or the input ends
func (s *Session) Run() error {
	fmt.Fprintf(s.out, "Planetarium: system %s\n", s.svc.System().Star().ID())

	for {
		s.printMenu(mainMenu)
		choice, err := s.in.intInRange("\nType the number of the option > ", choiceExit, choiceClear)
		if err != nil {
			return ignoreEOF(err)
		}
		if choice == choiceExit {
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		}
		if err := s.dispatch(choice); err != nil {
			return ignoreEOF(err)
		}
	}
}

func (s *Session) dispatch(choice int) error {
	switch choice {
	case choiceAdd:
		return s.add()
	case choiceRemove:
		return s.remove()
	case choiceInfo:
		return s.info()
	case choiceList:
		return s.list()
	case choiceCenterOfMass:
		return s.centerOfMass()
	case choiceRoute:
		return s.route()
	case choiceCollisions:
		return s.collisions()
	case choiceGenerate:
		return s.generate()
	case choiceClear:
		return s.clear()
	}
	return nil
}

func (s *Session) printMenu(lines []string) {
	fmt.Fprintln(s.out, frame)
	for _, line := range lines {
		fmt.Fprintf(s.out, "\t%s\n", line)
	}
}

func (s *Session) add() error {
	s.printMenu([]string{"1. Add a new planet", "2. Add a new moon"})
	choice, err := s.in.intInRange("> ", 1, 2)
	if err != nil {
		return err
	}

	if choice == 1 {
		pos, mass, err := s.readBody("planet", "its star")
		if err != nil {
			return err
		}
		planet, err := s.svc.AddPlanet(pos, mass)
		if err != nil {
			return s.report(err)
		}
		fmt.Fprintf(s.out, "Created planet %s\n", planet.ID())
		return nil
	}

	planetID, err := s.in.line("Planet ID to add the moon to: ")
	if err != nil {
		return err
	}
	if _, err := s.svc.Planet(planetID); err != nil {
		return s.report(err)
	}
	pos, mass, err := s.readBody("moon", "its planet")
	if err != nil {
		return err
	}
	moon, err := s.svc.AddMoon(planetID, pos, mass)
	if err != nil {
		return s.report(err)
	}
	fmt.Fprintf(s.out, "Created moon %s\n", moon.ID())
	return nil
}

func (s *Session) readBody(kind, parent string) (domain.Position, float64, error) {
	x, err := s.in.float(fmt.Sprintf("X coordinate of the %s (relative to %s): ", kind, parent))
	if err != nil {
		return domain.Position{}, 0, err
	}
	y, err := s.in.float(fmt.Sprintf("Y coordinate of the %s (relative to %s): ", kind, parent))
	if err != nil {
		return domain.Position{}, 0, err
	}
	mass, err := s.in.positiveFloat(fmt.Sprintf("Mass of the %s: ", kind))
	if err != nil {
		return domain.Position{}, 0, err
	}
	return domain.NewPosition(x, y), mass, nil
}

func (s *Session) remove() error {
	s.printMenu([]string{"1. Remove a planet", "2. Remove a moon"})
	choice, err := s.in.intInRange("> ", 1, 2)
	if err != nil {
		return err
	}

	if choice == 1 {
		id, err := s.in.line("Planet ID to remove: ")
		if err != nil {
			return err
		}
		if err := s.svc.RemovePlanet(id); err != nil {
			return s.report(err)
		}
		fmt.Fprintf(s.out, "Removed planet %s\n", domain.NormalizeID(id))
		return nil
	}

	id, err := s.in.line("Moon ID to remove: ")
	if err != nil {
		return err
	}
	if err := s.svc.RemoveMoon(id); err != nil {
		return s.report(err)
	}
	fmt.Fprintf(s.out, "Removed moon %s\n", domain.NormalizeID(id))
	return nil
}

func (s *Session) info() error {
	id, err := s.in.line("Celestial body ID: ")
	if err != nil {
		return err
	}
	body, err := s.svc.Body(id)
	if err != nil {
		return s.report(err)
	}

	fmt.Fprintln(s.out, body)
	switch b := body.(type) {
	case *domain.Star:
		fmt.Fprintf(s.out, "Planets: %d\n", b.PlanetCount())
	case *domain.Planet:
		fmt.Fprintf(s.out, "Orbit radius: %.3f\tMoons: %d\n", b.DistanceToParent(), b.MoonCount())
	case *domain.Moon:
		fmt.Fprintf(s.out, "Orbit radius: %.3f\tPlanet: %s\n", b.DistanceToParent(), b.Planet().ID())
	}
	return nil
}

func (s *Session) list() error {
	if err := s.svc.Export(s.opts.Format, s.out); err != nil {
		return s.report(err)
	}
	return nil
}

func (s *Session) centerOfMass() error {
	center, err := s.svc.CenterOfMass()
	if err != nil {
		return s.report(err)
	}
	fmt.Fprintf(s.out, "The center of mass is at %s\n", center)
	return nil
}

func (s *Session) route() error {
	from, err := s.in.line("ID of the first celestial body: ")
	if err != nil {
		return err
	}
	to, err := s.in.line("ID of the second celestial body: ")
	if err != nil {
		return err
	}

	path, err := s.svc.Route(from, to)
	if err != nil {
		return s.report(err)
	}
	fmt.Fprintln(s.out, path.Describe())
	return nil
}

func (s *Session) collisions() error {
	found := s.svc.Collisions()
	if len(found) == 0 {
		fmt.Fprintln(s.out, "All quiet. No collision detected.")
		return nil
	}

	fmt.Fprintln(s.out, "WARNING! Possible collisions between celestial bodies!")
	for _, c := range found {
		fmt.Fprintf(s.out, "  %s\n", c)
	}
	return nil
}

func (s *Session) generate() error {
	free := domain.MaxPlanets - s.svc.System().Star().PlanetCount()
	planets, err := s.in.intInRange(fmt.Sprintf("How many planets to generate? [max %d]: ", free), 0, free)
	if err != nil {
		return err
	}
	moons, err := s.in.intInRange(fmt.Sprintf("How many moons per planet? [max %d]: ", domain.MaxMoons), 0, domain.MaxMoons)
	if err != nil {
		return err
	}

	result, err := s.svc.Populate(s.opts.Generator, planets, moons)
	if err != nil {
		return s.report(err)
	}
	fmt.Fprintf(s.out, "Generated %d planets and %d moons\n", result.Planets, result.Moons)
	return nil
}

func (s *Session) clear() error {
	removed := s.svc.Clear()
	fmt.Fprintf(s.out, "Every planet and moon has been removed (%d planets)\n", removed)
	return nil
}

// report prints an expected failure and lets the menu continue
func (s *Session) report(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintf(s.out, "Not found: %v\n", err)
	case errors.Is(err, domain.ErrDifferentSystem),
		errors.Is(err, domain.ErrStarRemoval),
		errors.Is(err, domain.ErrZeroMass),
		errors.Is(err, service.ErrInvalidMass),
		errors.Is(err, service.ErrCapacity),
		errors.Is(err, service.ErrWrongKind):
		fmt.Fprintf(s.out, "Error: %v\n", err)
	default:
		log.Printf("cli: unexpected error: %v", err)
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
	return nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
