package view

import (
	"context"

	"github.com/OpenTraceLab/OpenTraceLA/pkg/action"
)

// BindActions binds the view actions of r to m. changed, if not nil, runs
// after every handler that modified the model.
func BindActions(r *action.Registry, m *Model, changed func()) error {
	bind := func(id action.ID, fn func()) error {
		return r.Bind(id, func(context.Context) error {
			fn()
			if changed != nil {
				changed()
			}
			return nil
		})
	}

	handlers := []struct {
		id action.ID
		fn func()
	}{
		{action.ZoomIn, m.ZoomIn},
		{action.ZoomOut, m.ZoomOut},
		{action.ZoomDefault, m.ZoomDefault},
		{action.ZoomFit, m.ZoomToFit},
		{action.GotoTrigger, m.GotoTrigger},
		{action.ClearCursors, m.ClearCursors},
		{action.ToggleMinorLabels, func() { m.MinorLabels = !m.MinorLabels }},
	}
	for _, h := range handlers {
		if err := bind(h.id, h.fn); err != nil {
			return err
		}
	}
	return nil
}
