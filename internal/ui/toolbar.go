package ui

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/OpenTraceLab/OpenTraceLA/pkg/action"
)

type toolButton struct {
	action action.Action
	icon   *widget.Icon
	click  widget.Clickable
}

// toolbar shows one icon button per action and a dropdown listing all of
// them with their shortcuts.
type toolbar struct {
	registry *action.Registry
	dispatch func(action.ID)

	buttons  []*toolButton
	menu     *menu.DropdownMenu
	menuIcon *widget.Icon
	menuBtn  widget.Clickable
}

func newToolbar(r *action.Registry, dispatch func(action.ID)) *toolbar {
	tb := &toolbar{registry: r, dispatch: dispatch}
	for _, act := range r.Actions() {
		btn := &toolButton{action: act}
		if icon, err := widget.NewIcon(act.Icon); err == nil {
			btn.icon = icon
		}
		tb.buttons = append(tb.buttons, btn)
	}
	if icon, err := widget.NewIcon(icons.NavigationMenu); err == nil {
		tb.menuIcon = icon
	}
	tb.menu = tb.buildMenu()
	return tb
}

func (tb *toolbar) buildMenu() *menu.DropdownMenu {
	opts := make([]menu.MenuOption, 0, len(tb.buttons))
	for _, btn := range tb.buttons {
		act := btn.action
		opts = append(opts, menu.MenuOption{
			OnClicked: func() error {
				tb.dispatch(act.ID)
				return nil
			},
			Layout: func(gtx menu.C, th *theme.Theme) menu.D {
				lbl := material.Body1(th.Theme, act.Label)
				if !tb.registry.Bound(act.ID) {
					lbl.Color.A = 0x80
				}
				return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceBetween}.Layout(gtx,
						layout.Rigid(lbl.Layout),
						layout.Rigid(layout.Spacer{Width: unit.Dp(16)}.Layout),
						layout.Rigid(material.Caption(th.Theme, act.Shortcut).Layout),
					)
				})
			},
		})
	}
	drop := menu.NewDropdownMenu([][]menu.MenuOption{opts})
	drop.MaxWidth = unit.Dp(260)
	return drop
}

func (tb *toolbar) Layout(gtx layout.Context, th *theme.Theme) layout.Dimensions {
	for _, btn := range tb.buttons {
		if btn.click.Clicked(gtx) {
			tb.dispatch(btn.action.ID)
		}
	}
	if tb.menuBtn.Clicked(gtx) {
		tb.menu.ToggleVisibility(gtx)
	}

	children := make([]layout.FlexChild, 0, len(tb.buttons)+1)
	children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
		dims := tb.iconButton(gtx, th, &tb.menuBtn, tb.menuIcon, "Actions")
		tb.menu.Layout(gtx, th)
		return dims
	}))
	for _, btn := range tb.buttons {
		if btn.icon == nil {
			continue
		}
		b := btn
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return tb.iconButton(gtx, th, &b.click, b.icon, b.action.Tooltip)
		}))
	}
	return layout.UniformInset(unit.Dp(2)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, children...)
	})
}

func (tb *toolbar) iconButton(gtx layout.Context, th *theme.Theme, click *widget.Clickable, icon *widget.Icon, desc string) layout.Dimensions {
	btn := material.IconButton(th.Theme, click, icon, desc)
	btn.Size = unit.Dp(18)
	btn.Inset = layout.UniformInset(unit.Dp(6))
	btn.Background = th.Bg2
	btn.Color = th.Palette.Fg
	return layout.UniformInset(unit.Dp(2)).Layout(gtx, btn.Layout)
}
