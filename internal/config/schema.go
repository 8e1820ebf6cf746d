package config

// Config is the root configuration structure
type Config struct {
	Version   int             `yaml:"version"`
	Star      StarConfig      `yaml:"star"`
	Generator GeneratorConfig `yaml:"generator"`
	Display   DisplayConfig   `yaml:"display"`
	Log       LogConfig       `yaml:"log"`
	// Scenario is a YAML system description loaded at startup instead of a bare star
	Scenario string `yaml:"scenario,omitempty"`
}

// StarConfig holds the star created when no scenario is loaded
type StarConfig struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Mass float64 `yaml:"mass"`
}

// GeneratorConfig bounds randomly generated planets and moons
type GeneratorConfig struct {
	Seed            uint64  `yaml:"seed,omitempty"` // 0 = random
	MinPlanetRadius float64 `yaml:"min_planet_radius"`
	MaxPlanetRadius float64 `yaml:"max_planet_radius"`
	MinMoonRadius   float64 `yaml:"min_moon_radius"`
	MaxMoonRadius   float64 `yaml:"max_moon_radius"`
	MinMass         float64 `yaml:"min_mass"`
	MaxMass         float64 `yaml:"max_mass"`
}

// DisplayConfig holds output settings
type DisplayConfig struct {
	Format string `yaml:"format"` // text, json, yaml
}

// LogConfig holds diagnostic logging settings
type LogConfig struct {
	File    string `yaml:"file,omitempty"`
	Verbose bool   `yaml:"verbose"`
}
