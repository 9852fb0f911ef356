// Package action is the command table of the client. Every user command
// has a fixed ID, a name, a tooltip, an optional keyboard shortcut and
// icon, and at most one handler bound by whoever hosts it.
package action

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/exp/shiny/materialdesign/icons"
)

// ID identifies an action.
type ID int

const (
	Open ID = iota
	Save
	Capture
	RepeatCapture
	ZoomIn
	ZoomOut
	ZoomDefault
	ZoomFit
	GotoTrigger
	ClearCursors
	ToggleMinorLabels
	Exit
)

var (
	// ErrUnknownAction is returned for names or IDs outside the table.
	ErrUnknownAction = errors.New("unknown action")
	// ErrNoHandler is returned when an action has nothing bound to it.
	ErrNoHandler = errors.New("no handler bound")
)

// Handler runs an action.
type Handler func(ctx context.Context) error

// Action describes one command.
type Action struct {
	ID       ID
	Name     string
	Label    string
	Tooltip  string
	Shortcut string // Gio key name, empty for none
	Icon     []byte // IconVG data, nil for none
}

// Builtin lists every action in menu order.
var Builtin = []Action{
	{ID: Open, Name: "open", Label: "Open…", Tooltip: "Open an existing capture", Shortcut: "O", Icon: icons.FileFolderOpen},
	{ID: Save, Name: "save", Label: "Save…", Tooltip: "Save the current capture", Shortcut: "S", Icon: icons.ContentSave},
	{ID: Capture, Name: "capture", Label: "Capture", Tooltip: "Start a new capture", Shortcut: "C", Icon: icons.AVFiberManualRecord},
	{ID: RepeatCapture, Name: "repeat-capture", Label: "Repeat capture", Tooltip: "Capture again with the last settings", Shortcut: "R", Icon: icons.AVRepeat},
	{ID: ZoomIn, Name: "zoom-in", Label: "Zoom in", Tooltip: "Zoom in around the view centre", Shortcut: "+", Icon: icons.ActionZoomIn},
	{ID: ZoomOut, Name: "zoom-out", Label: "Zoom out", Tooltip: "Zoom out around the view centre", Shortcut: "-", Icon: icons.ActionZoomOut},
	{ID: ZoomDefault, Name: "zoom-default", Label: "Zoom 1:1", Tooltip: "One pixel per sample", Shortcut: "1", Icon: icons.ActionRestore},
	{ID: ZoomFit, Name: "zoom-fit", Label: "Zoom to fit", Tooltip: "Fit the whole capture in the window", Shortcut: "F", Icon: icons.NavigationFullscreen},
	{ID: GotoTrigger, Name: "goto-trigger", Label: "Go to trigger", Tooltip: "Centre the view on the trigger", Shortcut: "T", Icon: icons.MapsMyLocation},
	{ID: ClearCursors, Name: "clear-cursors", Label: "Clear cursors", Tooltip: "Remove every cursor", Icon: icons.ContentClear},
	{ID: ToggleMinorLabels, Name: "toggle-minor-labels", Label: "Minor labels", Tooltip: "Show or hide labels on minor ticks", Shortcut: "M", Icon: icons.ActionLabel},
	{ID: Exit, Name: "exit", Label: "Exit", Tooltip: "Quit the application", Shortcut: "Q", Icon: icons.ActionExitToApp},
}

// Registry binds handlers to the builtin actions. It is safe for
// concurrent use.
type Registry struct {
	mu       sync.RWMutex
	byID     map[ID]Action
	byName   map[string]ID
	handlers map[ID]Handler
}

// NewRegistry returns a registry holding the builtin actions with no
// handlers bound.
func NewRegistry() *Registry {
	r := &Registry{
		byID:     make(map[ID]Action, len(Builtin)),
		byName:   make(map[string]ID, len(Builtin)),
		handlers: make(map[ID]Handler),
	}
	for _, a := range Builtin {
		r.byID[a.ID] = a
		r.byName[a.Name] = a.ID
	}
	return r
}

// Bind sets the handler of id, replacing any previous one. A nil handler
// unbinds it.
func (r *Registry) Bind(id ID, h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("bind %d: %w", id, ErrUnknownAction)
	}
	if h == nil {
		delete(r.handlers, id)
		return nil
	}
	r.handlers[id] = h
	return nil
}

// Lookup returns the action with the given name.
func (r *Registry) Lookup(name string) (Action, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byName[name]
	if !ok {
		return Action{}, false
	}
	return r.byID[id], true
}

// Get returns the action with the given ID.
func (r *Registry) Get(id ID) (Action, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	return a, ok
}

// Bound reports whether id has a handler.
func (r *Registry) Bound(id ID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[id]
	return ok
}

// Actions returns every action ordered by ID.
func (r *Registry) Actions() []Action {
	r.mu.RLock()
	out := make([]Action, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Dispatch runs the handler bound to id.
func (r *Registry) Dispatch(ctx context.Context, id ID) error {
	r.mu.RLock()
	a, known := r.byID[id]
	h := r.handlers[id]
	r.mu.RUnlock()

	if !known {
		return fmt.Errorf("dispatch %d: %w", id, ErrUnknownAction)
	}
	if h == nil {
		return fmt.Errorf("%s: %w", a.Name, ErrNoHandler)
	}
	if err := h(ctx); err != nil {
		return fmt.Errorf("%s: %w", a.Name, err)
	}
	return nil
}

// DispatchName runs the handler of the action called name.
func (r *Registry) DispatchName(ctx context.Context, name string) error {
	a, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("dispatch %q: %w", name, ErrUnknownAction)
	}
	return r.Dispatch(ctx, a.ID)
}
