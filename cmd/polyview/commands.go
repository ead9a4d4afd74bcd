package main

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taigrr/polyview/internal/config"
	"github.com/taigrr/polyview/internal/logger"
	"github.com/taigrr/polyview/internal/viewer"
	"github.com/taigrr/polyview/pkg/models"
	"github.com/taigrr/polyview/pkg/render"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func (a *app) newSnapshotCmd() *cobra.Command {
	var (
		output string
		frames int
		status bool
	)
	cmd := &cobra.Command{
		Use:   "snapshot [shape|model.glb]",
		Short: "Render one frame to a PNG or WebP file",
		Long: `Render one frame at the configured size without opening a terminal or window.
The output format follows the file extension (.png or .webp).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initLogging(os.Stderr); err != nil {
				return err
			}
			mesh, err := a.loadMesh(firstArg(args), true)
			if err != nil {
				return err
			}
			return a.snapshot(mesh, output, frames, status)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "polyview.png", "Output file (.png or .webp)")
	cmd.Flags().IntVar(&frames, "frames", 0, "Advance auto rotation by this many frames first")
	cmd.Flags().BoolVar(&status, "status", false, "Draw the status lines")
	return cmd
}

func (a *app) snapshot(mesh *models.Mesh, output string, frames int, status bool) error {
	state := viewer.New(a.cfg)
	state.SetMesh(mesh)
	for range frames {
		state.Tick()
	}

	w, h := a.cfg.Viewer.Width, a.cfg.Viewer.Height
	fb := render.NewFramebuffer(w, h)
	fb.Clear(state.Palette.Background)
	state.Frame(w, h).Draw(fb)
	if status {
		drawStatus(fb, state)
	}

	if err := fb.Save(output); err != nil {
		return err
	}
	logger.Info("snapshot written",
		zap.String("path", output),
		zap.Stringer("view", state.View),
		zap.Stringer("projection", state.Projection))
	return nil
}

// drawStatus writes the status lines at the top left, 20 px apart.
func drawStatus(fb *render.Framebuffer, state *viewer.State) {
	for i, line := range state.Status() {
		fb.DrawText(image.Pt(10, 20*(i+1)), line, state.Palette.Label)
	}
}

func (a *app) newExportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export [shape]",
		Short: "Write a catalogue shape as binary glTF",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initLogging(os.Stderr); err != nil {
				return err
			}
			kind := a.cfg.Viewer.Shape
			if len(args) == 1 {
				k, err := models.ParseKind(args[0])
				if err != nil {
					return err
				}
				kind = k
			}
			if output == "" {
				output = kind.String() + ".glb"
			}
			mesh := models.Generate(kind)
			if err := models.SaveGLB(mesh, output); err != nil {
				return err
			}
			logger.Info("mesh exported",
				zap.String("path", output),
				zap.Stringer("shape", kind),
				zap.Int("faces", mesh.FaceCount()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default <shape>.glb)")
	return cmd
}

func (a *app) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [shape|model.glb]",
		Short: "Display mesh information",
		Long:  "Display vertex, face and edge counts and the bounding box of a catalogue shape or a GLB file.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initLogging(os.Stderr); err != nil {
				return err
			}
			mesh, err := a.loadMesh(firstArg(args), false)
			if err != nil {
				return err
			}
			return printInfo(cmd.OutOrStdout(), mesh, firstArg(args))
		},
	}
}

func printInfo(w io.Writer, mesh *models.Mesh, source string) error {
	name := mesh.Kind.String()
	if mesh.Kind == models.KindCustom {
		name = filepath.Base(source)
	}
	size := mesh.Size()
	center := mesh.Center()

	var b strings.Builder
	fmt.Fprintf(&b, "Shape:      %s\n", name)
	fmt.Fprintf(&b, "Vertices:   %d\n", mesh.VertexCount())
	fmt.Fprintf(&b, "Faces:      %d\n", mesh.FaceCount())
	fmt.Fprintf(&b, "Edges:      %d\n", mesh.EdgeCount())
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Bounds Min: (%.3f, %.3f, %.3f)\n", mesh.BoundsMin.X, mesh.BoundsMin.Y, mesh.BoundsMin.Z)
	fmt.Fprintf(&b, "Bounds Max: (%.3f, %.3f, %.3f)\n", mesh.BoundsMax.X, mesh.BoundsMax.Y, mesh.BoundsMax.Z)
	fmt.Fprintf(&b, "Dimensions: %.3f x %.3f x %.3f\n", size.X, size.Y, size.Z)
	fmt.Fprintf(&b, "Center:     (%.3f, %.3f, %.3f)\n", center.X, center.Y, center.Z)

	_, err := io.WriteString(w, b.String())
	return err
}

func (a *app) newConfigCmd() *cobra.Command {
	var (
		output string
		save   bool
	)
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print or write the effective configuration",
		Long: `Print the configuration after defaults, the config file and flags are merged.
With --output the result is written as a config file instead, and with --save
it becomes the user config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if save {
				if err := a.cfg.Save(); err != nil {
					return fmt.Errorf("save config: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", config.UserConfigPath())
				return nil
			}
			if output != "" {
				if err := a.cfg.SaveTo(output); err != nil {
					return fmt.Errorf("write config: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
				return nil
			}
			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this path instead of stdout")
	cmd.Flags().BoolVar(&save, "save", false, "Write to the user config directory")
	cmd.MarkFlagsMutuallyExclusive("output", "save")
	return cmd
}
