package viewer

import (
	"slices"
	"strings"
)

// Action is a user command understood by State.
type Action int

const (
	None Action = iota
	RotateXPos
	RotateXNeg
	RotateYPos
	RotateYNeg
	RotateZPos
	RotateZNeg
	ZoomIn
	ZoomOut
	LightLeft
	LightRight
	LightUp
	LightDown
	NextShape
	ToggleAutoRotate
	ToggleDebug
	NextView
	NextProjection
	Quit
)

var actionNames = map[Action]string{
	None:             "none",
	RotateXPos:       "rotate-x+",
	RotateXNeg:       "rotate-x-",
	RotateYPos:       "rotate-y+",
	RotateYNeg:       "rotate-y-",
	RotateZPos:       "rotate-z+",
	RotateZNeg:       "rotate-z-",
	ZoomIn:           "zoom-in",
	ZoomOut:          "zoom-out",
	LightLeft:        "light-left",
	LightRight:       "light-right",
	LightUp:          "light-up",
	LightDown:        "light-down",
	NextShape:        "next-shape",
	ToggleAutoRotate: "toggle-auto-rotate",
	ToggleDebug:      "toggle-debug",
	NextView:         "next-view",
	NextProjection:   "next-projection",
	Quit:             "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Bindings maps key names to actions. Names follow the terminal key
// notation: lower-case letters, "space", "left", "ctrl+c" and so on.
type Bindings map[string]Action

// DefaultBindings returns the standard key layout.
func DefaultBindings() Bindings {
	return Bindings{
		"w": RotateXPos,
		"s": RotateXNeg,
		"a": RotateYPos,
		"d": RotateYNeg,
		"q": RotateZPos,
		"e": RotateZNeg,

		"+":       ZoomIn,
		"=":       ZoomIn,
		"shift+=": ZoomIn,
		"-":       ZoomOut,
		"_":       ZoomOut,

		"left":  LightLeft,
		"right": LightRight,
		"up":    LightUp,
		"down":  LightDown,

		"space": NextShape,
		"r":     ToggleAutoRotate,
		"`":     ToggleDebug,
		"v":     NextView,
		"p":     NextProjection,

		"esc":    Quit,
		"ctrl+c": Quit,
	}
}

// Lookup returns the action bound to key, or None.
func (b Bindings) Lookup(key string) Action {
	key = strings.ToLower(key)
	if key == " " {
		key = "space"
	}
	if key == "escape" {
		key = "esc"
	}
	return b[key]
}

// Match returns the first action, in key order, whose key satisfies match.
// Frontends pass their event matcher, e.g. uv.KeyPressEvent.MatchString.
// Names with an empty "+"-separated part, like a bare "+", are skipped since
// modifier matchers cannot express them.
func (b Bindings) Match(match func(...string) bool) Action {
	keys := make([]string, 0, len(b))
	for k := range b {
		if slices.Contains(strings.Split(k, "+"), "") {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if match(k) {
			return b[k]
		}
	}
	return None
}

// Resolve maps a key press to an action: by name through match first, then
// by the text the key produced.
func (b Bindings) Resolve(match func(...string) bool, text string) Action {
	if a := b.Match(match); a != None {
		return a
	}
	if text == "" {
		return None
	}
	return b.Lookup(text)
}

// Keys returns the sorted key names bound to a.
func (b Bindings) Keys(a Action) []string {
	var keys []string
	for k, v := range b {
		if v == a {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}
