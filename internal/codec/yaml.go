package codec

import (
	"fmt"
	"io"

	"planetarium/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// yamlSnapshot represents the YAML structure for a system snapshot
type yamlSnapshot struct {
	TotalMass    float64  `yaml:"total_mass"`
	CenterOfMass *yamlXY  `yaml:"center_of_mass,omitempty"`
	Collisions   []string `yaml:"collisions,omitempty"`
	Star         yamlBody `yaml:"star"`
}

type yamlBody struct {
	ID         string     `yaml:"id"`
	Kind       string     `yaml:"kind"`
	Mass       float64    `yaml:"mass"`
	Relative   yamlXY     `yaml:"relative"`
	Absolute   yamlXY     `yaml:"absolute"`
	Satellites []yamlBody `yaml:"satellites,omitempty"`
}

type yamlXY struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Export exports the snapshot to YAML
func (c *YAMLCodec) Export(snapshot *domain.Snapshot, w io.Writer) error {
	ys := yamlSnapshot{
		TotalMass:  snapshot.TotalMass,
		Collisions: snapshot.Collisions,
		Star:       toYAMLBody(snapshot.Star),
	}
	if snapshot.CenterOfMass != nil {
		ys.CenterOfMass = &yamlXY{X: snapshot.CenterOfMass.X, Y: snapshot.CenterOfMass.Y}
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(&ys); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

func toYAMLBody(view domain.BodyView) yamlBody {
	yb := yamlBody{
		ID:       view.ID,
		Kind:     string(view.Kind),
		Mass:     view.Mass,
		Relative: yamlXY{X: view.RelativePosition.X, Y: view.RelativePosition.Y},
		Absolute: yamlXY{X: view.AbsolutePosition.X, Y: view.AbsolutePosition.Y},
	}
	for _, sat := range view.Satellites {
		yb.Satellites = append(yb.Satellites, toYAMLBody(sat))
	}
	return yb
}
