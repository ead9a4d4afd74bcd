package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/polyview/pkg/models"
)

// execute runs the root command in an empty working directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(t.Context())
	return out.String(), err
}

func TestInfoShape(t *testing.T) {
	out, err := execute(t, "info", "cube")
	require.NoError(t, err)
	assert.Contains(t, out, "Shape:      cube")
	assert.Contains(t, out, "Vertices:   8")
	assert.Contains(t, out, "Faces:      6")
	assert.Contains(t, out, "Edges:      12")
	assert.Contains(t, out, "Bounds Min: (-1.000, -1.000, -1.000)")
}

func TestInfoUsesShapeFlag(t *testing.T) {
	out, err := execute(t, "info", "--shape", "tetrahedron")
	require.NoError(t, err)
	assert.Contains(t, out, "Shape:      tetrahedron")
	assert.Contains(t, out, "Edges:      6")
}

func TestInfoRejectsUnknownArgument(t *testing.T) {
	_, err := execute(t, "info", "teapot.obj")
	assert.Error(t, err)
}

func TestExportThenInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oct.glb")
	_, err := execute(t, "export", "octahedron", "-o", path)
	require.NoError(t, err)

	out, err := execute(t, "info", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Shape:      oct.glb")
	assert.Contains(t, out, "Vertices:   6")
	assert.Contains(t, out, "Faces:      8")
}

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"cube.png", "torus.webp"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			_, err := execute(t, "snapshot", "--view", "illuminated", "--width", "200", "--height", "150",
				"--frames", "5", "--status", "-o", path)
			require.NoError(t, err)
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestSnapshotRejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "snapshot", "-o", filepath.Join(t.TempDir(), "out.gif"))
	assert.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config", "--projection", "perspective")
	require.NoError(t, err)
	assert.Contains(t, out, "projection: perspective")
	assert.Contains(t, out, "shape: cube")

	path := filepath.Join(t.TempDir(), "polyview.yaml")
	_, err = execute(t, "config", "--fps", "12", "-o", path)
	require.NoError(t, err)

	out, err = execute(t, "config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "fps: 12")
}

func TestConfigSave(t *testing.T) {
	out, err := execute(t, "config", "--shape", "torus", "--save")
	require.NoError(t, err)

	path := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "polyview", "config.yaml")
	assert.Contains(t, out, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "shape: torus")

	_, err = execute(t, "config", "--save", "-o", filepath.Join(t.TempDir(), "x.yaml"))
	assert.Error(t, err)
}

func TestBadFlagValue(t *testing.T) {
	_, err := execute(t, "info", "--view", "xray")
	assert.Error(t, err)
}

func TestPrintInfoCustomMesh(t *testing.T) {
	m := models.NewPyramid()
	m.Kind = models.KindCustom
	var buf bytes.Buffer
	require.NoError(t, printInfo(&buf, m, "/models/pyramid.glb"))
	assert.Contains(t, buf.String(), "Shape:      pyramid.glb")
	assert.Contains(t, buf.String(), "Dimensions: 2.000 x 2.000 x 2.000")
	assert.Contains(t, buf.String(), "Center:     (0.000, 0.000, 1.000)")
}
