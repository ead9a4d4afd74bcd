package render

import (
	"fmt"
	"strings"
)

// ViewMode selects how faces and edges are drawn.
type ViewMode int

const (
	// Wireframe strokes every edge and marks every vertex.
	Wireframe ViewMode = iota
	// Polygons fills faces in a flat colour and outlines them.
	Polygons
	// Illuminated fills faces shaded by the light direction.
	Illuminated

	viewModeCount int = iota
)

var viewModeNames = [...]string{
	Wireframe:   "wireframe",
	Polygons:    "polygons",
	Illuminated: "illuminated",
}

// Next returns the view mode after v, wrapping around.
func (v ViewMode) Next() ViewMode {
	if v < 0 || int(v) >= viewModeCount {
		return Wireframe
	}
	return ViewMode((int(v) + 1) % viewModeCount)
}

func (v ViewMode) String() string {
	if v < 0 || int(v) >= viewModeCount {
		return fmt.Sprintf("ViewMode(%d)", int(v))
	}
	return viewModeNames[v]
}

// Shaded reports whether the mode draws faces rather than edges.
func (v ViewMode) Shaded() bool {
	return v == Polygons || v == Illuminated
}

// ParseViewMode returns the view mode with the given name.
func ParseViewMode(name string) (ViewMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range viewModeNames {
		if n == name {
			return ViewMode(i), nil
		}
	}
	return Wireframe, fmt.Errorf("unknown view mode %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (v ViewMode) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *ViewMode) UnmarshalText(text []byte) error {
	parsed, err := ParseViewMode(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
