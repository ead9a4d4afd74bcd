package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/taigrr/polyview/pkg/models"
	"github.com/taigrr/polyview/pkg/render"
)

// Flag names shared by every command.
const (
	FlagConfig     = "config"
	FlagDebug      = "debug"
	FlagLogFile    = "log-file"
	FlagWidth      = "width"
	FlagHeight     = "height"
	FlagFPS        = "fps"
	FlagShape      = "shape"
	FlagView       = "view"
	FlagProjection = "projection"
)

// BindFlags registers the config override flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "Path to config file")
	fs.Bool(FlagDebug, false, "Enable debug logging and the index overlay")
	fs.String(FlagLogFile, "", "Write logs to this file (rotated)")
	fs.Int(FlagWidth, 0, "Viewport width in pixels")
	fs.Int(FlagHeight, 0, "Viewport height in pixels")
	fs.Int(FlagFPS, 0, "Target frames per second")
	fs.String(FlagShape, "", "Initial shape (cube, pyramid, tetrahedron, octahedron, sphere, torus, surface)")
	fs.String(FlagView, "", "Initial view mode (wireframe, polygons, illuminated)")
	fs.String(FlagProjection, "", "Initial projection (orthographic, perspective)")
}

// ConfigPath returns the explicit config path if provided via --config.
func ConfigPath(fs *pflag.FlagSet) string {
	if fs == nil {
		return ""
	}
	path, _ := fs.GetString(FlagConfig)
	return path
}

// applyFlags applies flags that were set on the command line. Unset flags
// leave the file and default values alone.
func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}

	if fs.Changed(FlagDebug) {
		debug, _ := fs.GetBool(FlagDebug)
		cfg.Viewer.Debug = debug
		if debug {
			cfg.Logging.Level = "debug"
		}
	}
	if fs.Changed(FlagLogFile) {
		cfg.Logging.LogFile, _ = fs.GetString(FlagLogFile)
	}
	if v, _ := fs.GetInt(FlagWidth); fs.Changed(FlagWidth) && v > 0 {
		cfg.Viewer.Width = v
	}
	if v, _ := fs.GetInt(FlagHeight); fs.Changed(FlagHeight) && v > 0 {
		cfg.Viewer.Height = v
	}
	if v, _ := fs.GetInt(FlagFPS); fs.Changed(FlagFPS) && v > 0 {
		cfg.Viewer.FPS = v
	}

	if fs.Changed(FlagShape) {
		name, _ := fs.GetString(FlagShape)
		kind, err := models.ParseKind(name)
		if err != nil {
			return fmt.Errorf("--%s: %w", FlagShape, err)
		}
		cfg.Viewer.Shape = kind
	}
	if fs.Changed(FlagView) {
		name, _ := fs.GetString(FlagView)
		view, err := render.ParseViewMode(name)
		if err != nil {
			return fmt.Errorf("--%s: %w", FlagView, err)
		}
		cfg.Viewer.View = view
	}
	if fs.Changed(FlagProjection) {
		name, _ := fs.GetString(FlagProjection)
		proj, err := render.ParseProjection(name)
		if err != nil {
			return fmt.Errorf("--%s: %w", FlagProjection, err)
		}
		cfg.Viewer.Projection = proj
	}
	return nil
}
