// Package codec renders solar system snapshots in several formats.
package codec

import (
	"fmt"
	"io"
	"strings"

	"planetarium/internal/domain"
)

// Exporter interface for exporting a system snapshot to various formats
type Exporter interface {
	Export(snapshot *domain.Snapshot, w io.Writer) error
	Format() string
}

// Formats lists the supported format identifiers
func Formats() []string {
	return []string{"text", "json", "yaml"}
}

// ForFormat returns the exporter for a format identifier
func ForFormat(format string) (Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return NewTextCodec(), nil
	case "json":
		return NewJSONCodec(), nil
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (want one of %s)", format, strings.Join(Formats(), ", "))
	}
}
