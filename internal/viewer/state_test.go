package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/polyview/internal/config"
	"github.com/taigrr/polyview/pkg/math3d"
	"github.com/taigrr/polyview/pkg/models"
	"github.com/taigrr/polyview/pkg/render"
)

func newState(t *testing.T, modify func(*config.Config)) *State {
	t.Helper()
	cfg := config.Default()
	cfg.Viewer.AutoRotate = false
	cfg.Viewer.SmoothZoom = false
	if modify != nil {
		modify(cfg)
	}
	require.NoError(t, cfg.Validate())
	return New(cfg)
}

func assertMat(t *testing.T, want, got math3d.Mat3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12, "element %d", i)
	}
}

func TestNewState(t *testing.T) {
	s := newState(t, nil)
	assert.Equal(t, models.Cube, s.Kind())
	assert.Equal(t, render.Wireframe, s.View)
	assert.Equal(t, render.Orthographic, s.Projection)
	assert.Equal(t, 100.0, s.Scale)
	assert.Equal(t, math3d.V3(0.5, 0.5, -1), s.Light)
	assert.Equal(t, render.DefaultPalette(), s.Palette)
	assertMat(t, math3d.RotateX(-math3d.Radians(90)).Mul(math3d.RotateY(-math3d.Radians(45))), s.Rotation)
}

func TestRotationActionsLeftMultiply(t *testing.T) {
	step := math3d.Radians(3)
	tests := []struct {
		action Action
		want   math3d.Mat3
	}{
		{RotateXPos, math3d.RotateX(step)},
		{RotateXNeg, math3d.RotateX(-step)},
		{RotateYPos, math3d.RotateY(step)},
		{RotateYNeg, math3d.RotateY(-step)},
		{RotateZPos, math3d.RotateZ(step)},
		{RotateZNeg, math3d.RotateZ(-step)},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			s := newState(t, nil)
			before := s.Rotation
			s.Apply(tc.action)
			assertMat(t, tc.want.Mul(before), s.Rotation)
		})
	}
}

func TestRotationStaysOrthonormal(t *testing.T) {
	s := newState(t, func(c *config.Config) { c.Viewer.AutoRotate = true })
	for range 1000 {
		s.Apply(RotateXPos)
		s.Apply(RotateZNeg)
		s.Tick()
	}
	assert.InDelta(t, 1, s.Rotation.Determinant(), 1e-9)
	assertMat(t, math3d.Identity3(), s.Rotation.Mul(s.Rotation.Transpose()))
}

func TestTickAutoRotates(t *testing.T) {
	s := newState(t, nil)
	before := s.Rotation
	s.Tick()
	assert.Equal(t, before, s.Rotation, "auto rotate off")

	s.Apply(ToggleAutoRotate)
	s.Tick()
	assertMat(t, math3d.RotateY(math3d.Radians(3)).Mul(before), s.Rotation)
}

func TestZoom(t *testing.T) {
	s := newState(t, nil)
	s.Apply(ZoomIn)
	assert.InDelta(t, 110, s.Scale, 1e-9)
	s.Apply(ZoomOut)
	assert.InDelta(t, 100, s.Scale, 1e-9)
	s.Apply(ZoomOut)
	assert.InDelta(t, 100/1.1, s.Scale, 1e-9)
}

func TestSmoothZoomSettles(t *testing.T) {
	s := newState(t, func(c *config.Config) { c.Viewer.SmoothZoom = true })
	s.Apply(ZoomIn)
	assert.Equal(t, 100.0, s.Scale, "scale moves on tick")
	assert.InDelta(t, 110, s.ZoomTarget(), 1e-9)

	s.Tick()
	assert.Greater(t, s.Scale, 100.0)
	assert.Less(t, s.Scale, 110.0)

	for range 300 {
		s.Tick()
	}
	assert.Equal(t, s.ZoomTarget(), s.Scale)
}

func TestNextProjectionResetsScale(t *testing.T) {
	s := newState(t, nil)
	s.Apply(ZoomIn)
	s.Apply(NextProjection)
	assert.Equal(t, render.Perspective, s.Projection)
	assert.Equal(t, 250.0, s.Scale)
	assert.Equal(t, 250.0, s.ZoomTarget())

	s.Apply(NextProjection)
	assert.Equal(t, render.Orthographic, s.Projection)
	assert.Equal(t, 100.0, s.Scale)
}

func TestLightMovesAndClamps(t *testing.T) {
	s := newState(t, nil)
	s.Apply(LightRight)
	assert.InDelta(t, 0.6, s.Light.X, 1e-9)
	s.Apply(LightDown)
	assert.InDelta(t, 0.4, s.Light.Y, 1e-9)

	for range 30 {
		s.Apply(LightRight)
		s.Apply(LightUp)
	}
	assert.Equal(t, 1.0, s.Light.X)
	assert.Equal(t, 1.0, s.Light.Y)
	assert.Equal(t, -1.0, s.Light.Z)

	for range 30 {
		s.Apply(LightLeft)
	}
	assert.Equal(t, -1.0, s.Light.X)
}

func TestNextShapeCycles(t *testing.T) {
	s := newState(t, nil)
	var seen []models.Kind
	for range models.Kinds() {
		s.Apply(NextShape)
		seen = append(seen, s.Kind())
	}
	assert.Equal(t, []models.Kind{
		models.Pyramid, models.Tetrahedron, models.Octahedron,
		models.Sphere, models.Torus, models.Surface, models.Cube,
	}, seen)
}

func TestNextShapeFromLoadedMesh(t *testing.T) {
	s := newState(t, nil)
	s.SetMesh(&models.Mesh{Name: "duck.glb", Kind: models.KindCustom})
	assert.Contains(t, s.Status()[0], "duck.glb")
	s.Apply(NextShape)
	assert.Equal(t, models.Pyramid, s.Kind())
}

func TestTogglesAndModes(t *testing.T) {
	s := newState(t, nil)
	s.Apply(ToggleDebug)
	assert.True(t, s.Debug)
	s.Apply(ToggleDebug)
	assert.False(t, s.Debug)

	s.Apply(NextView)
	assert.Equal(t, render.Polygons, s.View)
	s.Apply(NextView)
	s.Apply(NextView)
	assert.Equal(t, render.Wireframe, s.View)

	before := *s
	s.Apply(None)
	s.Apply(Quit)
	assert.Equal(t, before.Rotation, s.Rotation)
	assert.Equal(t, before.Scale, s.Scale)
}

func TestFrameUsesState(t *testing.T) {
	s := newState(t, func(c *config.Config) { c.Viewer.View = render.Illuminated })
	f := s.Frame(800, 600)
	assert.True(t, f.HasLight)
	assert.Len(t, f.Faces, 6)

	p := s.Params(320, 200)
	assert.Equal(t, 320, p.Width)
	assert.Equal(t, s.Rotation, p.Rotation)
	assert.Equal(t, s.Light, p.Light)
}

func TestFittedFrame(t *testing.T) {
	s := newState(t, func(c *config.Config) { c.Viewer.InitialPitch, c.Viewer.InitialYaw = 0, 0 })
	assert.Equal(t, 1.0, s.FitFactor(800, 600))
	assert.Equal(t, 0.2, s.FitFactor(160, 200))

	// Cube vertex (1, 1, 1) lands 100 px from the centre at full size and
	// 20 px at a fifth of the width.
	full := s.Frame(800, 600)
	small := s.FittedFrame(160, 200)
	assert.Equal(t, 500, full.Projected[7].X)
	assert.Equal(t, 100, small.Projected[7].X)
	assert.Equal(t, 80, small.Projected[7].Y)
}

func TestStatus(t *testing.T) {
	s := newState(t, nil)
	lines := s.Status()
	require.Len(t, lines, 3)
	assert.Equal(t, "Shape: cube, view: wireframe, projection: orthographic", lines[0])

	s.Apply(ToggleDebug)
	assert.Contains(t, s.Status()[0], "scale: 100")
}

func TestConfigureKeepsModes(t *testing.T) {
	s := newState(t, nil)
	s.Apply(NextView)
	s.Apply(NextShape)

	cfg := config.Default()
	cfg.Colors.Face = "#ff0000"
	cfg.Viewer.ZoomFactor = 2
	cfg.Viewer.SmoothZoom = false
	s.Configure(cfg)

	assert.Equal(t, render.Polygons, s.View)
	assert.Equal(t, models.Pyramid, s.Kind())
	assert.Equal(t, render.RGB(255, 0, 0), s.Palette.Face)
	s.Apply(ZoomIn)
	assert.InDelta(t, 200, s.Scale, 1e-9)
}
