// Package render turns a rotated mesh into an ordered list of 2D draw commands
// and provides the pixel surfaces that replay them.
package render

import (
	"fmt"
	"strings"

	"github.com/taigrr/polyview/pkg/math3d"
)

// Projection selects how rotated points are mapped to the screen.
type Projection int

const (
	Orthographic Projection = iota
	Perspective

	projectionCount int = iota
)

var projectionNames = [...]string{
	Orthographic: "orthographic",
	Perspective:  "perspective",
}

// Default scales for each projection, in pixels per unit.
const (
	OrthographicScale = 100.0
	PerspectiveScale  = 250.0
)

// Perspective divides by (max(z, perspectiveNear) + perspectiveDistance).
const (
	perspectiveNear     = 0.1
	perspectiveDistance = 5.0
	perspectiveFocal    = 2.0
)

// Next returns the projection after p, wrapping around.
func (p Projection) Next() Projection {
	if p < 0 || int(p) >= projectionCount {
		return Orthographic
	}
	return Projection((int(p) + 1) % projectionCount)
}

func (p Projection) String() string {
	if p < 0 || int(p) >= projectionCount {
		return fmt.Sprintf("Projection(%d)", int(p))
	}
	return projectionNames[p]
}

// ParseProjection accepts a projection name; "ortho" and "persp" are accepted too.
func ParseProjection(name string) (Projection, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range projectionNames {
		if n == name || n[:5] == name {
			return Projection(i), nil
		}
	}
	return Orthographic, fmt.Errorf("unknown projection %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (p Projection) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Projection) UnmarshalText(text []byte) error {
	parsed, err := ParseProjection(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// DefaultScale returns the starting scale for a projection.
func DefaultScale(p Projection) float64 {
	if p == Perspective {
		return PerspectiveScale
	}
	return OrthographicScale
}

// Project maps a rotated point onto a width x height viewport centred on the
// origin. Screen Y grows downward. Perspective clamps z to perspectiveNear so
// points behind the viewer never divide by zero.
func Project(p math3d.Vec3, width, height int, scale float64, projection Projection) math3d.Vec2 {
	px, py := p.X, p.Y
	if projection == Perspective {
		factor := perspectiveFocal / (max(p.Z, perspectiveNear) + perspectiveDistance)
		px *= factor
		py *= factor
	}
	return math3d.V2(
		px*scale+float64(width)/2,
		-py*scale+float64(height)/2,
	)
}
