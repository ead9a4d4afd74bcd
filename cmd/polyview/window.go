package main

import (
	"context"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/taigrr/polyview/internal/config"
	"github.com/taigrr/polyview/internal/logger"
	"github.com/taigrr/polyview/internal/viewer"
	"github.com/taigrr/polyview/pkg/render"
	"go.uber.org/zap"
)

// runWindow opens a desktop window showing the software framebuffer.
// It blocks until the window closes.
func (a *app) runWindow(ctx context.Context, arg string) error {
	if err := a.initLogging(os.Stderr); err != nil {
		return err
	}
	mesh, err := a.loadMesh(arg, true)
	if err != nil {
		return err
	}

	state := viewer.New(a.cfg)
	state.SetMesh(mesh)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g := &windowGame{
		ctx:      ctx,
		state:    state,
		bindings: viewer.DefaultBindings(),
		fb:       render.NewFramebuffer(a.cfg.Viewer.Width, a.cfg.Viewer.Height),
	}
	if a.cfgPath != "" {
		if g.updates, err = config.Watch(ctx, a.cfgPath, a.flags); err != nil {
			logger.Warn("config watch disabled", zap.Error(err))
		}
	}

	ebiten.SetWindowTitle("polyview")
	ebiten.SetWindowSize(a.cfg.Viewer.Width, a.cfg.Viewer.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(a.cfg.Viewer.FPS)
	return ebiten.RunGame(g)
}

type windowGame struct {
	ctx      context.Context
	state    *viewer.State
	bindings viewer.Bindings
	updates  <-chan *config.Config

	fb    *render.Framebuffer
	fbImg *ebiten.Image
	keys  []ebiten.Key
}

func (g *windowGame) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	case cfg, ok := <-g.updates:
		if ok {
			g.state.Configure(cfg)
			ebiten.SetTPS(cfg.Viewer.FPS)
		} else {
			g.updates = nil
		}
	default:
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		action := g.bindings.Lookup(keyName(k))
		if action == viewer.Quit {
			return ebiten.Termination
		}
		g.state.Apply(action)
	}

	g.state.Tick()
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	w, h := g.fb.Width, g.fb.Height
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != w || g.fbImg.Bounds().Dy() != h {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
	}

	g.fb.Clear(g.state.Palette.Background)
	g.state.FittedFrame(w, h).Draw(g.fb)
	g.fbImg.WritePixels(g.fb.Image().Pix)
	screen.DrawImage(g.fbImg, nil)

	for i, line := range g.state.Status() {
		ebitenutil.DebugPrintAt(screen, line, 10, 4+16*i)
	}
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.fb.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// keyName maps an ebiten key to the terminal key notation used by Bindings.
func keyName(k ebiten.Key) string {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	switch k {
	case ebiten.KeySpace:
		return "space"
	case ebiten.KeyEscape:
		return "esc"
	case ebiten.KeyArrowLeft:
		return "left"
	case ebiten.KeyArrowRight:
		return "right"
	case ebiten.KeyArrowUp:
		return "up"
	case ebiten.KeyArrowDown:
		return "down"
	case ebiten.KeyEqual, ebiten.KeyNumpadAdd:
		return "="
	case ebiten.KeyMinus, ebiten.KeyNumpadSubtract:
		return "-"
	case ebiten.KeyBackquote:
		return "`"
	}
	if k >= ebiten.KeyA && k <= ebiten.KeyZ {
		name := strings.ToLower(k.String())
		if ctrl {
			return "ctrl+" + name
		}
		return name
	}
	return ""
}
