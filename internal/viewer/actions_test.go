package viewer

import (
	"slices"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/stretchr/testify/assert"
)

func TestDefaultBindings(t *testing.T) {
	b := DefaultBindings()
	tests := map[string]Action{
		"w":      RotateXPos,
		"S":      RotateXNeg,
		"a":      RotateYPos,
		"d":      RotateYNeg,
		"q":      RotateZPos,
		"e":      RotateZNeg,
		"=":      ZoomIn,
		"_":      ZoomOut,
		"left":   LightLeft,
		"up":     LightUp,
		" ":      NextShape,
		"space":  NextShape,
		"`":      ToggleDebug,
		"r":      ToggleAutoRotate,
		"v":      NextView,
		"p":      NextProjection,
		"escape": Quit,
		"ctrl+c": Quit,
		"x":      None,
	}
	for key, want := range tests {
		assert.Equal(t, want, b.Lookup(key), "key %q", key)
	}
}

func TestEveryActionIsBound(t *testing.T) {
	b := DefaultBindings()
	for a := RotateXPos; a <= Quit; a++ {
		assert.NotEmpty(t, b.Keys(a), "%s has no key", a)
	}
	assert.Equal(t, []string{"+", "=", "shift+="}, b.Keys(ZoomIn))
}

func TestBindingsMatch(t *testing.T) {
	b := DefaultBindings()
	matcher := func(pressed ...string) func(...string) bool {
		return func(names ...string) bool {
			for _, n := range names {
				if slices.Contains(pressed, n) {
					return true
				}
			}
			return false
		}
	}

	assert.Equal(t, NextView, b.Match(matcher("v")))
	assert.Equal(t, LightDown, b.Match(matcher("down")))
	assert.Equal(t, None, b.Match(matcher("f12")))
}

func TestBindingsResolveTerminalKeys(t *testing.T) {
	b := DefaultBindings()
	tests := []struct {
		name string
		key  uv.KeyPressEvent
		want Action
	}{
		{"plus", uv.KeyPressEvent{Code: '+', Text: "+"}, ZoomIn},
		{"shift equals", uv.KeyPressEvent{Code: '=', Mod: uv.ModShift, Text: "+"}, ZoomIn},
		{"equals", uv.KeyPressEvent{Code: '=', Text: "="}, ZoomIn},
		{"minus", uv.KeyPressEvent{Code: '-', Text: "-"}, ZoomOut},
		{"letter", uv.KeyPressEvent{Code: 'w', Text: "w"}, RotateXPos},
		{"shifted letter", uv.KeyPressEvent{Code: 'd', Mod: uv.ModShift, Text: "D"}, RotateYNeg},
		{"ctrl+c", uv.KeyPressEvent{Code: 'c', Mod: uv.ModCtrl}, Quit},
		{"arrow", uv.KeyPressEvent{Code: uv.KeyUp}, LightUp},
		{"extended", uv.KeyPressEvent{Code: uv.KeyExtended, Text: "é"}, None},
		{"unbound", uv.KeyPressEvent{Code: 'x', Text: "x"}, None},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, b.Resolve(tc.key.MatchString, tc.key.Text))
		})
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "next-projection", NextProjection.String())
	assert.Equal(t, "unknown", Action(99).String())
}
