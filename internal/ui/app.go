package ui

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/charmbracelet/log"
	"github.com/oligo/gioview/theme"

	"github.com/OpenTraceLab/OpenTraceLA/internal/config"
	"github.com/OpenTraceLab/OpenTraceLA/pkg/action"
	"github.com/OpenTraceLab/OpenTraceLA/pkg/timeline"
	"github.com/OpenTraceLab/OpenTraceLA/pkg/view"
)

// App drives the capture view window.
type App struct {
	window *app.Window
	ops    op.Ops

	gvTheme *theme.Theme
	logger  *log.Logger

	model    *view.Model
	actions  *action.Registry
	toolbar  *toolbar
	ruler    *rulerView
	keys     []event.Filter
	shortcut map[key.Name]action.ID

	status string
}

// New wires the window, configuration and view together.
func New(w *app.Window, cfg *config.Config, logger *log.Logger) (*App, error) {
	if w == nil {
		w = new(app.Window)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	w.Option(app.Title("OpenTraceLA"), app.Size(unit.Dp(1280), unit.Dp(420)))

	a := &App{
		window:   w,
		gvTheme:  theme.NewTheme("", nil, true),
		logger:   logger,
		model:    cfg.NewModel(),
		actions:  action.NewRegistry(),
		shortcut: make(map[key.Name]action.ID),
		status:   "Ready",
	}
	a.applyPalette(cfg.Ruler.Theme)

	shaper := text.NewShaper(text.WithCollection(gofont.Collection()))
	a.ruler = newRulerView(a.model, shaper, unit.Dp(cfg.Ruler.Height), logger)
	a.ruler.onChange = a.setStatus

	if err := view.BindActions(a.actions, a.model, a.invalidate); err != nil {
		return nil, fmt.Errorf("bind view actions: %w", err)
	}
	if err := a.actions.Bind(action.Exit, func(context.Context) error {
		a.window.Perform(system.ActionClose)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("bind exit: %w", err)
	}

	for _, act := range a.actions.Actions() {
		if act.Shortcut == "" {
			continue
		}
		name := key.Name(act.Shortcut)
		a.shortcut[name] = act.ID
		a.keys = append(a.keys, key.Filter{Name: name, Optional: key.ModShift})
	}
	a.toolbar = newToolbar(a.actions, a.dispatch)

	logger.Info("view ready",
		"rate", a.model.SampleRate,
		"samples", a.model.Samples,
		"theme", cfg.Ruler.Theme)
	return a, nil
}

// Run blocks processing window events until the window closes.
func (a *App) Run() error {
	for {
		e := a.window.Event()
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	a.handleKeys(gtx)
	paint.FillShape(gtx.Ops, a.gvTheme.Palette.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.toolbar.Layout(gtx, a.gvTheme)
		}),
		layout.Flexed(1, a.ruler.Layout),
		layout.Rigid(a.layoutStatus),
	)
}

func (a *App) handleKeys(gtx layout.Context) {
	if len(a.keys) == 0 {
		return
	}
	for {
		ev, ok := gtx.Event(a.keys...)
		if !ok {
			break
		}
		ke, ok := ev.(key.Event)
		if !ok || ke.State != key.Press {
			continue
		}
		if id, found := a.shortcut[ke.Name]; found {
			a.dispatch(id)
		}
	}
}

func (a *App) layoutStatus(gtx layout.Context) layout.Dimensions {
	scale := timeline.FormatLabel(a.model.SecondsPerPixel(), 0, 3, a.model.HasTimingData())
	return layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceBetween}.Layout(gtx,
			layout.Rigid(material.Body2(a.gvTheme.Theme, a.status).Layout),
			layout.Rigid(material.Body2(a.gvTheme.Theme, scale+"/px").Layout),
		)
	})
}

// dispatch runs an action and reports the outcome on the status line.
func (a *App) dispatch(id action.ID) {
	act, _ := a.actions.Get(id)
	err := a.actions.Dispatch(context.Background(), id)
	switch {
	case err == nil:
		a.logger.Debug("action", "name", act.Name)
		a.setStatus(act.Label)
	case errors.Is(err, action.ErrNoHandler):
		a.logger.Warn("action unavailable", "name", act.Name)
		a.setStatus(act.Label + " is not available")
	default:
		a.logger.Error("action failed", "name", act.Name, "err", err)
		a.setStatus(err.Error())
	}
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.invalidate()
}

func (a *App) invalidate() {
	if a.window != nil {
		a.window.Invalidate()
	}
}

func (a *App) applyPalette(name string) {
	t, _ := timeline.ParseTheme(name)
	if t == timeline.ThemeLight {
		a.gvTheme.WithPalette(theme.Palette{
			Bg:         color.NRGBA{R: 245, G: 247, B: 253, A: 255},
			Fg:         color.NRGBA{R: 34, G: 37, B: 49, A: 255},
			ContrastBg: color.NRGBA{R: 80, G: 120, B: 255, A: 255},
			ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			Bg2:        color.NRGBA{R: 225, G: 230, B: 244, A: 255},
		})
		return
	}
	a.gvTheme.WithPalette(theme.Palette{
		Bg:         color.NRGBA{R: 18, G: 20, B: 26, A: 255},
		Fg:         color.NRGBA{R: 233, G: 236, B: 245, A: 255},
		ContrastBg: color.NRGBA{R: 120, G: 150, B: 255, A: 255},
		ContrastFg: color.NRGBA{R: 12, G: 16, B: 24, A: 255},
		Bg2:        color.NRGBA{R: 34, G: 40, B: 50, A: 255},
	})
}
