package render

import (
	"image"
	"testing"

	"github.com/taigrr/polyview/pkg/models"
)

func BenchmarkRenderFrameSphereIlluminated(b *testing.B) {
	mesh := models.Generate(models.Sphere)
	p := testParams(Illuminated)
	pal := DefaultPalette()

	for b.Loop() {
		_ = RenderFrame(mesh, p, pal)
	}
}

func BenchmarkRenderFrameSurfaceWireframe(b *testing.B) {
	mesh := models.Generate(models.Surface)
	p := testParams(Wireframe)
	pal := DefaultPalette()

	for b.Loop() {
		_ = RenderFrame(mesh, p, pal)
	}
}

func BenchmarkFramebufferDrawTorus(b *testing.B) {
	fb := NewFramebuffer(800, 600)
	pal := DefaultPalette()
	f := RenderFrame(models.Generate(models.Torus), testParams(Illuminated), pal)

	for b.Loop() {
		fb.Clear(pal.Background)
		f.Draw(fb)
	}
}

func BenchmarkFillPolygon(b *testing.B) {
	fb := NewFramebuffer(200, 200)
	pts := []image.Point{{20, 20}, {180, 40}, {160, 180}, {30, 150}}

	for b.Loop() {
		fb.FillPolygon(pts, ColorWhite)
	}
}
