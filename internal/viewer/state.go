// Package viewer holds the interactive state shared by the terminal and
// window frontends: rotation, shape, view and projection modes, zoom and light.
package viewer

import (
	"fmt"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/polyview/internal/config"
	"github.com/taigrr/polyview/internal/logger"
	"github.com/taigrr/polyview/pkg/math3d"
	"github.com/taigrr/polyview/pkg/models"
	"github.com/taigrr/polyview/pkg/render"
	"go.uber.org/zap"
)

// Zoom spring: frequency 6 settles in a few frames, damping 1 never overshoots.
const (
	zoomFrequency = 6.0
	zoomDamping   = 1.0
	zoomEpsilon   = 1e-3
)

// State owns all mutable viewer state. It is not safe for concurrent use;
// frontends apply actions and ticks from their render loop.
type State struct {
	Rotation   math3d.Mat3
	Mesh       *models.Mesh
	View       render.ViewMode
	Projection render.Projection
	Light      math3d.Vec3
	AutoRotate bool
	Debug      bool
	Palette    render.Palette

	// Scale is the displayed scale; it follows zoomTarget through the spring.
	Scale      float64
	zoomTarget float64
	zoomVel    float64
	zoomSpring harmonica.Spring

	cfg config.ViewerConfig
}

// New builds the initial state from the config. The palette must already be
// valid; config.Load guarantees that.
func New(cfg *config.Config) *State {
	pal, err := cfg.Colors.Palette()
	if err != nil {
		pal = render.DefaultPalette()
	}
	v := cfg.Viewer
	s := &State{
		Rotation:   v.InitialRotation(),
		Mesh:       models.Generate(v.Shape),
		View:       v.View,
		Projection: v.Projection,
		Light:      v.Light.Direction(),
		AutoRotate: v.AutoRotate,
		Debug:      v.Debug,
		Palette:    pal,
		zoomSpring: harmonica.NewSpring(harmonica.FPS(v.FPS), zoomFrequency, zoomDamping),
		cfg:        v,
	}
	s.resetScale()
	return s
}

// Configure applies a reloaded config. Colours, steps and the zoom factor take
// effect immediately; the current shape, rotation and modes are kept.
func (s *State) Configure(cfg *config.Config) {
	if pal, err := cfg.Colors.Palette(); err == nil {
		s.Palette = pal
	}
	s.cfg = cfg.Viewer
	s.zoomSpring = harmonica.NewSpring(harmonica.FPS(cfg.Viewer.FPS), zoomFrequency, zoomDamping)
}

// SetMesh replaces the displayed mesh, e.g. with one loaded from a file.
func (s *State) SetMesh(m *models.Mesh) {
	s.Mesh = m
}

// Kind returns the catalogue kind of the displayed mesh.
func (s *State) Kind() models.Kind {
	return s.Mesh.Kind
}

func (s *State) step() float64 {
	return math3d.Radians(s.cfg.RotationStep)
}

// rotate left-multiplies the current rotation so the new turn happens in
// screen space, after everything applied so far.
func (s *State) rotate(m math3d.Mat3) {
	s.Rotation = m.Mul(s.Rotation)
}

func (s *State) moveLight(dx, dy float64) {
	step := s.cfg.Light.Step
	s.Light = math3d.V3(s.Light.X+dx*step, s.Light.Y+dy*step, s.Light.Z).Clamp(-1, 1)
}

func (s *State) resetScale() {
	s.Scale = s.cfg.Scale(s.Projection)
	s.zoomTarget = s.Scale
	s.zoomVel = 0
}

func (s *State) zoom(factor float64) {
	s.zoomTarget *= factor
	if !s.cfg.SmoothZoom {
		s.Scale = s.zoomTarget
	}
}

// Apply performs a. Quit and None are no-ops; frontends handle quitting.
func (s *State) Apply(a Action) {
	step := s.step()
	switch a {
	case RotateXPos:
		s.rotate(math3d.RotateX(step))
	case RotateXNeg:
		s.rotate(math3d.RotateX(-step))
	case RotateYPos:
		s.rotate(math3d.RotateY(step))
	case RotateYNeg:
		s.rotate(math3d.RotateY(-step))
	case RotateZPos:
		s.rotate(math3d.RotateZ(step))
	case RotateZNeg:
		s.rotate(math3d.RotateZ(-step))
	case ZoomIn:
		s.zoom(s.cfg.ZoomFactor)
	case ZoomOut:
		s.zoom(1 / s.cfg.ZoomFactor)
	case LightLeft:
		s.moveLight(-1, 0)
	case LightRight:
		s.moveLight(1, 0)
	case LightUp:
		s.moveLight(0, 1)
	case LightDown:
		s.moveLight(0, -1)
	case NextShape:
		s.Mesh = models.GenerateNext(s.Mesh.Kind)
		logger.Debug("shape changed", zap.Stringer("shape", s.Mesh.Kind),
			zap.Int("vertices", s.Mesh.VertexCount()), zap.Int("faces", s.Mesh.FaceCount()))
	case ToggleAutoRotate:
		s.AutoRotate = !s.AutoRotate
	case ToggleDebug:
		s.Debug = !s.Debug
	case NextView:
		s.View = s.View.Next()
	case NextProjection:
		s.Projection = s.Projection.Next()
		s.resetScale()
	}
}

// Tick advances one frame: auto rotation about Y and the zoom spring.
func (s *State) Tick() {
	if s.AutoRotate {
		s.rotate(math3d.RotateY(s.step()))
	}
	if s.Scale != s.zoomTarget {
		s.Scale, s.zoomVel = s.zoomSpring.Update(s.Scale, s.zoomVel, s.zoomTarget)
		if d := s.Scale - s.zoomTarget; d < zoomEpsilon && d > -zoomEpsilon && s.zoomVel < zoomEpsilon && s.zoomVel > -zoomEpsilon {
			s.Scale, s.zoomVel = s.zoomTarget, 0
		}
	}
}

// ZoomTarget is the scale the spring is heading for.
func (s *State) ZoomTarget() float64 {
	return s.zoomTarget
}

// Params returns the render parameters for a width x height viewport.
func (s *State) Params(width, height int) render.Params {
	return render.Params{
		Rotation:   s.Rotation,
		Projection: s.Projection,
		Scale:      s.Scale,
		View:       s.View,
		Light:      s.Light,
		Width:      width,
		Height:     height,
		Debug:      s.Debug,
	}
}

// Frame renders the current state for a width x height viewport.
func (s *State) Frame(width, height int) *render.Frame {
	return render.RenderFrame(s.Mesh, s.Params(width, height), s.Palette)
}

// FittedFrame renders for a viewport of a different size than the configured
// one, shrinking or growing the scale so the shape keeps its relative size.
func (s *State) FittedFrame(width, height int) *render.Frame {
	p := s.Params(width, height)
	p.Scale *= s.FitFactor(width, height)
	return render.RenderFrame(s.Mesh, p, s.Palette)
}

// FitFactor is min(width/configured width, height/configured height).
func (s *State) FitFactor(width, height int) float64 {
	return min(float64(width)/float64(s.cfg.Width), float64(height)/float64(s.cfg.Height))
}

// Status returns the status line followed by the key help lines.
func (s *State) Status() []string {
	shape := s.Mesh.Kind.String()
	if s.Mesh.Kind == models.KindCustom {
		shape = s.Mesh.Name
	}
	status := fmt.Sprintf("Shape: %s, view: %s, projection: %s", shape, s.View, s.Projection)
	if s.Debug {
		status += fmt.Sprintf(", scale: %.0f, light: (%.1f, %.1f, %.1f)", s.Scale, s.Light.X, s.Light.Y, s.Light.Z)
	}
	return []string{
		status,
		"Next shape: space, view: V, projection: P",
		"Auto-rotate: R, rotate: A/D/W/S/Q/E, light: arrows, zoom: +/-",
	}
}
