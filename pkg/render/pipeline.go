package render

import (
	"image"
	"image/color"
	"strconv"

	"github.com/taigrr/polyview/pkg/math3d"
	"github.com/taigrr/polyview/pkg/models"
)

// LightMarkerDistance scales the light direction to place its on-screen marker.
const LightMarkerDistance = 3.0

// Sizes of the drawn primitives, in pixels.
const (
	EdgeWidth         = 2
	OutlineWidth      = 1
	VertexRadius      = 3
	LightMarkerRadius = 5
)

// labelOffset shifts vertex labels up and to the right of the vertex.
var labelOffset = image.Pt(5, -5)

// Palette holds the colours of a rendered frame.
type Palette struct {
	Vertex     color.RGBA
	Edge       color.RGBA
	Face       color.RGBA
	Light      color.RGBA
	Label      color.RGBA
	Background color.RGBA
}

// DefaultPalette returns yellow vertices, amber edges and cream faces on black.
func DefaultPalette() Palette {
	return Palette{
		Vertex:     RGB(255, 255, 0),
		Edge:       RGB(255, 204, 0),
		Face:       RGB(255, 255, 204),
		Light:      ColorYellow,
		Label:      ColorWhite,
		Background: ColorBlack,
	}
}

// Params describes one frame.
type Params struct {
	Rotation   math3d.Mat3
	Projection Projection
	Scale      float64
	View       ViewMode
	Light      math3d.Vec3
	Width      int
	Height     int
	Debug      bool
}

// Frame is the output of RenderFrame.
type Frame struct {
	Rotated   []math3d.Vec3
	Projected []image.Point
	// Faces is sorted farthest first. Empty in wireframe mode.
	Faces []FaceRecord
	// LightMarker is the projected light position; valid when HasLight is set.
	LightMarker image.Point
	HasLight    bool
	Commands    []Command
}

// RenderFrame rotates, projects, shades and orders mesh for drawing.
// Rendering is pure: the mesh and params are not modified.
func RenderFrame(mesh *models.Mesh, p Params, pal Palette) *Frame {
	f := &Frame{
		Rotated:   make([]math3d.Vec3, len(mesh.Vertices)),
		Projected: make([]image.Point, len(mesh.Vertices)),
	}
	for i, v := range mesh.Vertices {
		r := p.Rotation.MulVec3(v)
		f.Rotated[i] = r
		f.Projected[i] = Project(r, p.Width, p.Height, p.Scale, p.Projection).Point()
	}

	if p.View.Shaded() && len(mesh.Faces) > 0 {
		f.Faces = ShadeFaces(mesh, f.Rotated, p.Light)
		SortByDepth(f.Faces)
		f.emitFaces(p, pal)

		if p.View == Illuminated {
			marker := p.Light.Scale(LightMarkerDistance)
			f.LightMarker = Project(marker, p.Width, p.Height, p.Scale, p.Projection).Point()
			f.HasLight = true
			f.Commands = append(f.Commands, Command{
				Op:     OpFillDisc,
				Points: []image.Point{f.LightMarker},
				Radius: LightMarkerRadius,
				Color:  pal.Light,
			})
		}
	}

	if p.View == Wireframe {
		f.emitWireframe(mesh, p, pal)
	}

	return f
}

func (f *Frame) emitFaces(p Params, pal Palette) {
	for _, rec := range f.Faces {
		pts := make([]image.Point, len(rec.Indices))
		var center image.Point
		for i, idx := range rec.Indices {
			pts[i] = f.Projected[idx]
			center = center.Add(pts[i])
		}

		fill := pal.Face
		if p.View == Illuminated {
			fill = Shade(pal.Face, rec.Brightness)
		}
		f.Commands = append(f.Commands, Command{Op: OpFillPolygon, Points: pts, Color: fill})

		if p.Debug {
			f.Commands = append(f.Commands, Command{
				Op:     OpText,
				Points: []image.Point{center.Div(len(pts))},
				Text:   strconv.Itoa(rec.Index),
				Color:  pal.Label,
			})
		}

		if p.View == Polygons {
			f.Commands = append(f.Commands, Command{
				Op:     OpStrokePolygon,
				Points: pts,
				Width:  OutlineWidth,
				Color:  pal.Edge,
			})
		}
	}
}

func (f *Frame) emitWireframe(mesh *models.Mesh, p Params, pal Palette) {
	for _, e := range mesh.Edges {
		f.Commands = append(f.Commands, Command{
			Op:     OpStrokeLine,
			Points: []image.Point{f.Projected[e.A], f.Projected[e.B]},
			Width:  EdgeWidth,
			Color:  pal.Edge,
		})
	}
	for _, pt := range f.Projected {
		f.Commands = append(f.Commands, Command{
			Op:     OpFillDisc,
			Points: []image.Point{pt},
			Radius: VertexRadius,
			Color:  pal.Vertex,
		})
	}
	if p.Debug {
		for i, pt := range f.Projected {
			f.Commands = append(f.Commands, Command{
				Op:     OpText,
				Points: []image.Point{pt.Add(labelOffset)},
				Text:   strconv.Itoa(i),
				Color:  pal.Label,
			})
		}
	}
}

// Shade scales the RGB channels of c by brightness, truncating.
func Shade(c color.RGBA, brightness float64) color.RGBA {
	b := math3d.Clamp(brightness, 0, 1)
	return color.RGBA{
		R: uint8(b * float64(c.R)),
		G: uint8(b * float64(c.G)),
		B: uint8(b * float64(c.B)),
		A: c.A,
	}
}
