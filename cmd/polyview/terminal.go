package main

import (
	"context"
	"fmt"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/polyview/internal/config"
	"github.com/taigrr/polyview/internal/logger"
	"github.com/taigrr/polyview/internal/viewer"
	"github.com/taigrr/polyview/pkg/render"
	"go.uber.org/zap"
)

// runTerminal runs the interactive viewer on the controlling terminal.
// Input and config reloads arrive on channels and are applied between frames,
// so all state mutation happens on this goroutine.
func (a *app) runTerminal(ctx context.Context, arg string) error {
	// Anything written to the tty would corrupt the frame: log to file only.
	if err := a.initLogging(nil); err != nil {
		return err
	}
	mesh, err := a.loadMesh(arg, true)
	if err != nil {
		return err
	}

	state := viewer.New(a.cfg)
	state.SetMesh(mesh)
	bindings := viewer.DefaultBindings()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var updates <-chan *config.Config
	if a.cfgPath != "" {
		updates, err = config.Watch(ctx, a.cfgPath, a.flags)
		if err != nil {
			logger.Warn("config watch disabled", zap.Error(err))
		}
	}

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	// Each terminal row shows two framebuffer rows.
	fb := render.NewFramebuffer(width, height*2)

	events := make(chan uv.Event, 16)
	go func() {
		for ev := range term.Events() {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.Viewer.FPS))
	defer ticker.Stop()

	logger.Info("terminal viewer started",
		zap.Int("cols", width), zap.Int("rows", height),
		zap.Stringer("shape", state.Kind()))

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				fb.Resize(width, height*2)
			case uv.KeyPressEvent:
				action := bindings.Resolve(ev.MatchString, ev.Text)
				if action == viewer.Quit {
					return nil
				}
				state.Apply(action)
			}

		case cfg, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			state.Configure(cfg)
			ticker.Reset(time.Second / time.Duration(cfg.Viewer.FPS))

		case <-ticker.C:
			start := time.Now()
			state.Tick()

			fb.Clear(state.Palette.Background)
			state.FittedFrame(fb.Width, fb.Height).Draw(fb)
			fb.Draw(term, term.Bounds())
			for i, line := range state.Status() {
				render.DrawString(term, 1, i, line, state.Palette.Label)
			}
			if err := term.Display(); err != nil {
				return fmt.Errorf("display: %w", err)
			}
			if state.Debug {
				logger.Debug("frame", zap.Duration("took", time.Since(start)))
			}
		}
	}
}
