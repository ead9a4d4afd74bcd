// polyview - interactive 3D mesh viewer
// Renders a catalogue of solids and surfaces (or a loaded GLB) as wireframe,
// flat polygons or lit polygons, in the terminal or in a desktop window.
//
// Controls:
//
//	W/S         - Rotate about X
//	A/D         - Rotate about Y
//	Q/E         - Rotate about Z
//	+/-         - Zoom in/out
//	Arrows      - Move the light
//	Space       - Next shape
//	R           - Toggle auto rotation
//	V           - Next view mode (wireframe, polygons, illuminated)
//	P           - Next projection (orthographic, perspective)
//	`           - Toggle vertex/face index overlay
//	Esc         - Quit
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/taigrr/polyview/internal/config"
	"github.com/taigrr/polyview/internal/logger"
	"github.com/taigrr/polyview/pkg/models"
	"go.uber.org/zap"
)

const controls = `Controls:
  W/S A/D Q/E - Rotate about X, Y, Z
  +/-         - Zoom in/out
  Arrows      - Move the light
  Space       - Next shape
  R           - Toggle auto rotation
  V           - Next view mode
  P           - Next projection
  ` + "`" + `           - Toggle index overlay
  Esc         - Quit`

// fitExtent is the size loaded models are scaled to, close to the catalogue solids.
const fitExtent = 3.0

// app carries the resolved config between cobra hooks and commands.
type app struct {
	cfg     *config.Config
	cfgPath string
	flags   *pflag.FlagSet
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "polyview [shape|model.glb]",
		Short: "Interactive 3D mesh viewer",
		Long: `polyview - interactive 3D mesh viewer

Rotate, light and project a catalogue of solids and surfaces, or any GLB model.
Without a subcommand the terminal viewer starts.

` + controls,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg, a.cfgPath, a.flags = cfg, path, cmd.Flags()
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTerminal(cmd.Context(), firstArg(args))
		},
	}
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "view [shape|model.glb]",
			Short: "View in the terminal",
			Long:  "Render in the terminal using half-block characters.\n\n" + controls,
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runTerminal(cmd.Context(), firstArg(args))
			},
		},
		&cobra.Command{
			Use:   "window [shape|model.glb]",
			Short: "View in a desktop window",
			Long:  "Open a desktop window of the configured size.\n\n" + controls,
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runWindow(cmd.Context(), firstArg(args))
			},
		},
		a.newSnapshotCmd(),
		a.newExportCmd(),
		a.newInfoCmd(),
		a.newConfigCmd(),
	)

	return root
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// initLogging starts the logger. A nil console logs to the file only.
func (a *app) initLogging(console io.Writer) error {
	var fileCfg logger.FileConfig
	if a.cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(a.cfg.Logging.LogFile)
	}
	if err := logger.InitWithFileConfig(a.cfg.Logging.Level, fileCfg, console); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	if a.cfgPath != "" {
		logger.Info("config loaded", zap.String("path", a.cfgPath))
	}
	return nil
}

// loadMesh resolves a command argument: empty means the configured shape, a
// catalogue name generates that shape, anything else is loaded as a GLB file
// and fitted to the catalogue's size when fit is set.
func (a *app) loadMesh(arg string, fit bool) (*models.Mesh, error) {
	if arg == "" {
		return models.Generate(a.cfg.Viewer.Shape), nil
	}
	if kind, err := models.ParseKind(arg); err == nil {
		return models.Generate(kind), nil
	}

	switch ext := strings.ToLower(filepath.Ext(arg)); ext {
	case ".glb", ".gltf":
	default:
		return nil, fmt.Errorf("%q is neither a shape nor a .glb/.gltf file", arg)
	}

	mesh, err := models.LoadGLB(arg)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	logger.Info("model loaded",
		zap.String("path", arg),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("faces", mesh.FaceCount()))
	if fit {
		mesh.Fit(fitExtent)
	}
	return mesh, nil
}
