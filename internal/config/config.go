// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/taigrr/polyview/pkg/math3d"
	"github.com/taigrr/polyview/pkg/models"
	"github.com/taigrr/polyview/pkg/render"
)

// Config holds all viewer settings.
type Config struct {
	Viewer  ViewerConfig  `yaml:"viewer"`
	Colors  ColorConfig   `yaml:"colors"`
	Logging LoggingConfig `yaml:"logging"`
}

// ViewerConfig holds display and interaction settings.
type ViewerConfig struct {
	Width      int               `yaml:"width"`
	Height     int               `yaml:"height"`
	FPS        int               `yaml:"fps"`
	Shape      models.Kind       `yaml:"shape"`
	View       render.ViewMode   `yaml:"view"`
	Projection render.Projection `yaml:"projection"`
	AutoRotate bool              `yaml:"auto_rotate"`
	Debug      bool              `yaml:"debug"`

	RotationStep float64 `yaml:"rotation_step"` // degrees per key press or tick
	InitialPitch float64 `yaml:"initial_pitch"` // degrees about X, applied after yaw
	InitialYaw   float64 `yaml:"initial_yaw"`   // degrees about Y

	OrthographicScale float64 `yaml:"orthographic_scale"`
	PerspectiveScale  float64 `yaml:"perspective_scale"`
	ZoomFactor        float64 `yaml:"zoom_factor"`
	SmoothZoom        bool    `yaml:"smooth_zoom"`

	Light LightConfig `yaml:"light"`
}

// LightConfig holds the initial light direction and its key step.
type LightConfig struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Z    float64 `yaml:"z"`
	Step float64 `yaml:"step"`
}

// ColorConfig holds palette colours as hex strings (#rrggbb).
type ColorConfig struct {
	Vertex     string `yaml:"vertex"`
	Edge       string `yaml:"edge"`
	Face       string `yaml:"face"`
	Light      string `yaml:"light"`
	Label      string `yaml:"label"`
	Background string `yaml:"background"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Viewer: ViewerConfig{
			Width:             800,
			Height:            600,
			FPS:               30,
			Shape:             models.Cube,
			View:              render.Wireframe,
			Projection:        render.Orthographic,
			AutoRotate:        true,
			RotationStep:      3,
			InitialPitch:      -90,
			InitialYaw:        -45,
			OrthographicScale: render.OrthographicScale,
			PerspectiveScale:  render.PerspectiveScale,
			ZoomFactor:        1.1,
			SmoothZoom:        true,
			Light:             LightConfig{X: 0.5, Y: 0.5, Z: -1, Step: 0.1},
		},
		Colors: ColorConfig{
			Vertex:     "#ffff00",
			Edge:       "#ffcc00",
			Face:       "#ffffcc",
			Light:      "#ffff00",
			Label:      "#ffffff",
			Background: "#000000",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every out-of-range setting.
func (c *Config) Validate() error {
	var errs []error
	v := c.Viewer
	if v.Width <= 0 || v.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewer size %dx%d must be positive", v.Width, v.Height))
	}
	if v.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps %d must be positive", v.FPS))
	}
	if !v.Shape.Valid() {
		errs = append(errs, fmt.Errorf("shape %d is not in the catalogue", v.Shape))
	}
	if v.OrthographicScale <= 0 || v.PerspectiveScale <= 0 {
		errs = append(errs, errors.New("projection scales must be positive"))
	}
	if v.ZoomFactor <= 1 {
		errs = append(errs, fmt.Errorf("zoom factor %v must be greater than 1", v.ZoomFactor))
	}
	if v.RotationStep <= 0 || v.Light.Step <= 0 {
		errs = append(errs, errors.New("rotation and light steps must be positive"))
	}
	if _, err := c.Colors.Palette(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Scale returns the configured default scale for p.
func (v ViewerConfig) Scale(p render.Projection) float64 {
	if p == render.Perspective {
		return v.PerspectiveScale
	}
	return v.OrthographicScale
}

// InitialRotation returns RotateX(pitch)·RotateY(yaw).
func (v ViewerConfig) InitialRotation() math3d.Mat3 {
	return math3d.RotateX(math3d.Radians(v.InitialPitch)).Mul(math3d.RotateY(math3d.Radians(v.InitialYaw)))
}

// Direction returns the light direction, clamped to [-1, 1] per component.
func (l LightConfig) Direction() math3d.Vec3 {
	return math3d.V3(l.X, l.Y, l.Z).Clamp(-1, 1)
}

// Palette parses the hex colours into a render palette.
func (c ColorConfig) Palette() (render.Palette, error) {
	var pal render.Palette
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"vertex", c.Vertex, &pal.Vertex},
		{"edge", c.Edge, &pal.Edge},
		{"face", c.Face, &pal.Face},
		{"light", c.Light, &pal.Light},
		{"label", c.Label, &pal.Label},
		{"background", c.Background, &pal.Background},
	}
	for _, f := range fields {
		col, err := colorful.Hex(f.hex)
		if err != nil {
			return render.Palette{}, fmt.Errorf("colors.%s: %w", f.name, err)
		}
		r, g, b := col.RGB255()
		*f.dst = render.RGB(r, g, b)
	}
	return pal, nil
}
