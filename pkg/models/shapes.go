package models

import (
	"fmt"
	"math"
	"strings"

	"github.com/taigrr/polyview/pkg/math3d"
)

// Kind identifies a member of the shape catalogue.
type Kind int

// The catalogue, in cycling order.
const (
	Cube Kind = iota
	Pyramid
	Tetrahedron
	Octahedron
	Sphere
	Torus
	Surface

	kindCount int = iota
)

// KindCustom tags meshes that were loaded from a file rather than generated.
const KindCustom Kind = -1

var kindNames = [...]string{
	Cube:        "cube",
	Pyramid:     "pyramid",
	Tetrahedron: "tetrahedron",
	Octahedron:  "octahedron",
	Sphere:      "sphere",
	Torus:       "torus",
	Surface:     "surface",
}

// Catalogue parameters for the generated shapes.
const (
	SphereLatDiv = 30
	SphereLonDiv = 30
	SphereRadius = 1.8

	TorusSegU        = 24
	TorusSegV        = 12
	TorusMajorRadius = 1.5
	TorusMinorRadius = 0.5

	SurfaceWidth   = 100
	SurfaceHeight  = 100
	SurfaceSpacing = 0.05
	SurfaceScale   = 1.0
)

// Kinds returns the catalogue in cycling order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Valid reports whether k is a catalogue member.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < kindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return "custom"
	}
	return kindNames[k]
}

// ParseKind returns the catalogue kind with the given (case-insensitive) name.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return KindCustom, fmt.Errorf("unknown shape %q (want one of %s)", name, strings.Join(kindNames[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// NextKind returns the catalogue entry after current, wrapping from the last
// entry to the first. A current kind outside the catalogue counts as Cube.
func NextKind(current Kind) Kind {
	if !current.Valid() {
		current = Cube
	}
	return Kind((int(current) + 1) % kindCount)
}

// Generate builds the catalogue mesh for kind.
func Generate(kind Kind) *Mesh {
	switch kind {
	case Pyramid:
		return NewPyramid()
	case Tetrahedron:
		return NewTetrahedron()
	case Octahedron:
		return NewOctahedron()
	case Sphere:
		return NewSphere(SphereLatDiv, SphereLonDiv, SphereRadius)
	case Torus:
		return NewTorus(TorusSegU, TorusSegV, TorusMajorRadius, TorusMinorRadius)
	case Surface:
		return NewSurface(SurfaceWidth, SurfaceHeight, SurfaceSpacing, SurfaceScale)
	default:
		return NewCube()
	}
}

// GenerateNext builds the catalogue mesh that follows current.
func GenerateNext(current Kind) *Mesh {
	return Generate(NextKind(current))
}

// NewCube returns a cube with vertices at (±1, ±1, ±1).
func NewCube() *Mesh {
	vertices := []math3d.Vec3{
		{X: -1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 1},
		{X: -1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1},
		{X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1},
	}
	faces := []Face{
		{0, 1, 3, 2}, // x = -1
		{4, 6, 7, 5}, // x = +1
		{0, 4, 5, 1}, // y = -1
		{2, 3, 7, 6}, // y = +1
		{1, 5, 7, 3}, // z = +1
		{0, 2, 6, 4}, // z = -1
	}
	return NewMesh(Cube, vertices, faces)
}

// NewPyramid returns a square pyramid standing on the z=0 plane with its apex at (0, 0, 2).
func NewPyramid() *Mesh {
	vertices := []math3d.Vec3{
		{X: -1, Y: -1, Z: 0}, {X: 1, Y: -1, Z: 0},
		{X: 1, Y: 1, Z: 0}, {X: -1, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 2},
	}
	faces := []Face{
		{3, 2, 1, 0},
		{0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4},
	}
	return NewMesh(Pyramid, vertices, faces)
}

// NewTetrahedron returns a tetrahedron on alternating corners of the unit cube.
func NewTetrahedron() *Mesh {
	vertices := []math3d.Vec3{
		{X: 1, Y: 1, Z: 1}, {X: -1, Y: -1, Z: 1},
		{X: -1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: -1},
	}
	faces := []Face{
		{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {2, 0, 3},
	}
	return NewMesh(Tetrahedron, vertices, faces)
}

// NewOctahedron returns two square pyramids joined base to base, vertices on the axes.
func NewOctahedron() *Mesh {
	vertices := []math3d.Vec3{
		{X: 1}, {X: -1},
		{Y: 1}, {Y: -1},
		{Z: 1}, {Z: -1},
	}
	faces := []Face{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{0, 5, 2}, {2, 5, 1}, {1, 5, 3}, {3, 5, 0},
	}
	return NewMesh(Octahedron, vertices, faces)
}

// NewSphere returns a UV sphere with latDiv-1 latitude rings of lonDiv vertices
// each, plus one vertex at each pole.
func NewSphere(latDiv, lonDiv int, radius float64) *Mesh {
	vertices := make([]math3d.Vec3, 0, (latDiv-1)*lonDiv+2)
	faces := make([]Face, 0, latDiv*lonDiv)

	vertices = append(vertices, math3d.V3(0, 0, radius))
	for i := 1; i < latDiv; i++ {
		theta := math.Pi * float64(i) / float64(latDiv)
		for j := range lonDiv {
			phi := 2 * math.Pi * float64(j) / float64(lonDiv)
			vertices = append(vertices, math3d.V3(
				radius*math.Sin(theta)*math.Cos(phi),
				radius*math.Sin(theta)*math.Sin(phi),
				radius*math.Cos(theta),
			))
		}
	}
	vertices = append(vertices, math3d.V3(0, 0, -radius))

	// North pole fan
	for j := range lonDiv {
		faces = append(faces, Face{0, j + 1, (j+1)%lonDiv + 1})
	}

	// Bands between rings
	for i := 0; i < latDiv-2; i++ {
		for j := range lonDiv {
			a := 1 + i*lonDiv + j
			b := 1 + i*lonDiv + (j+1)%lonDiv
			c := 1 + (i+1)*lonDiv + (j+1)%lonDiv
			d := 1 + (i+1)*lonDiv + j
			faces = append(faces, Face{d, c, b, a})
		}
	}

	// South pole fan
	south := len(vertices) - 1
	offset := 1 + (latDiv-2)*lonDiv
	for j := range lonDiv {
		faces = append(faces, Face{offset + j, south, offset + (j+1)%lonDiv})
	}

	return NewMesh(Sphere, vertices, faces)
}

// NewTorus returns a torus with major radius R and minor radius r sampled on a
// segU x segV grid. The grid wraps in both directions.
func NewTorus(segU, segV int, R, r float64) *Mesh {
	vertices := make([]math3d.Vec3, 0, segU*segV)
	faces := make([]Face, 0, segU*segV)

	for i := range segU {
		u := 2 * math.Pi * float64(i) / float64(segU)
		for j := range segV {
			v := 2 * math.Pi * float64(j) / float64(segV)
			vertices = append(vertices, math3d.V3(
				(R+r*math.Cos(v))*math.Cos(u),
				(R+r*math.Cos(v))*math.Sin(u),
				r*math.Sin(v),
			))
		}
	}

	for i := range segU {
		next := (i + 1) % segU
		for j := range segV {
			jn := (j + 1) % segV
			faces = append(faces, Face{
				i*segV + j,
				next*segV + j,
				next*segV + jn,
				i*segV + jn,
			})
		}
	}

	return NewMesh(Torus, vertices, faces)
}

// SurfaceHeightAt is the height field of the parametric surface:
//
//	z = 0.5·sin(2x)·cos(2y) + 0.3·sin(4x)·cos(3y)
func SurfaceHeightAt(x, y float64) float64 {
	return 0.5*math.Sin(x*2)*math.Cos(y*2) + 0.3*math.Sin(x*4)*math.Cos(y*3)
}

// NewSurface returns a w x h height-field grid centred on the origin.
// Unlike the torus the grid does not wrap at its border.
func NewSurface(w, h int, spacing, scale float64) *Mesh {
	vertices := make([]math3d.Vec3, 0, w*h)
	faces := make([]Face, 0, max(w-1, 0)*max(h-1, 0))

	for row := range h {
		for col := range w {
			px := (float64(col) - float64(w)/2) * spacing * scale
			py := (float64(row) - float64(h)/2) * spacing * scale
			vertices = append(vertices, math3d.V3(px, py, SurfaceHeightAt(px, py)))
		}
	}

	for row := 0; row < h-1; row++ {
		for col := 0; col < w-1; col++ {
			a := row*w + col
			faces = append(faces, Face{a, a + 1, a + w + 1, a + w})
		}
	}

	return NewMesh(Surface, vertices, faces)
}
