// Package wailshost installs application menus and exposes windows through
// a Wails v3 application.
package wailshost

import (
	"fmt"
	"log/slog"

	"github.com/pkg/browser"
	"github.com/wailsapp/wails/v3/pkg/application"
	"go.aimuz.me/webshell/menu"
)

var roles = map[menu.Role]application.Role{
	menu.RoleUndo:               application.Undo,
	menu.RoleRedo:               application.Redo,
	menu.RoleCut:                application.Cut,
	menu.RoleCopy:               application.Copy,
	menu.RolePaste:              application.Paste,
	menu.RolePasteAndMatchStyle: application.PasteAndMatchStyle,
	menu.RoleSelectAll:          application.SelectAll,
	menu.RoleMinimize:           application.Minimise,
	menu.RoleClose:              application.CloseWindow,
	menu.RoleFront:              application.BringAllToFront,
	menu.RoleServices:           application.ServicesMenu,
	menu.RoleHide:               application.Hide,
	menu.RoleHideOthers:         application.HideOthers,
	menu.RoleUnhide:             application.UnHide,
}

// built is the Handle produced by BuildFromTemplate.
type built struct {
	menu     *application.Menu
	bindings map[string]menu.Action
	skipped  []string
}

// keyBindings is the subset of the Wails key binding manager used for
// hidden aliases.
type keyBindings interface {
	Add(accelerator string, callback func(window application.Window))
	Remove(accelerator string)
}

// Host implements menu.Host on a Wails application.
type Host struct {
	app      *application.App
	keys     keyBindings
	setMenu  func(*application.Menu)
	platform menu.Platform

	// accelerators bound for hidden aliases by the installed menu
	bound []string
}

// New returns a Host for app.
func New(app *application.App, p menu.Platform) *Host {
	return &Host{
		app:      app,
		keys:     app.KeyBinding,
		setMenu:  app.Menu.Set,
		platform: p,
	}
}

// BuildFromTemplate converts tree into a native menu. Hidden nodes are not
// rendered; those whose accelerator stays active become key bindings.
func (h *Host) BuildFromTemplate(tree []*menu.Node) (menu.Handle, error) {
	b := &built{
		menu:     application.NewMenu(),
		bindings: make(map[string]menu.Action),
	}
	for _, n := range tree {
		if n.Kind != menu.KindSubmenu {
			return nil, fmt.Errorf("top-level node %q is not a submenu", n.Label)
		}
		sub := b.menu.AddSubmenu(Label(n.Label, h.platform))
		if err := h.fill(sub, n.Children, b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (h *Host) fill(m *application.Menu, nodes []*menu.Node, b *built) error {
	for _, n := range nodes {
		if n.Hidden {
			if n.AcceleratorWhenHidden && n.Action != nil {
				if acc, ok := Accelerator(n.Accelerator); ok {
					b.bindings[acc] = n.Action
				} else {
					b.skipped = append(b.skipped, n.Accelerator)
				}
			}
			continue
		}

		switch n.Kind {
		case menu.KindSeparator:
			m.AddSeparator()
		case menu.KindRole:
			r, ok := roles[n.Role]
			if !ok {
				return fmt.Errorf("unknown role %q", n.Role)
			}
			m.AddRole(r)
		case menu.KindSubmenu:
			if err := h.fill(m.AddSubmenu(Label(n.Label, h.platform)), n.Children, b); err != nil {
				return err
			}
		case menu.KindCommand:
			item := m.Add(Label(n.Label, h.platform))
			if acc, ok := Accelerator(n.Accelerator); ok {
				item.SetAccelerator(acc)
			}
			if action := n.Action; action != nil {
				item.OnClick(func(*application.Context) {
					action(h.Focused())
				})
			}
		}
	}
	return nil
}

// SetApplicationMenu installs handle as the application menu, replacing
// the menu and alias bindings of the previous install.
func (h *Host) SetApplicationMenu(handle menu.Handle) {
	b, ok := handle.(*built)
	if !ok {
		slog.Error("install menu: foreign handle", "type", fmt.Sprintf("%T", handle))
		return
	}

	for _, acc := range h.bound {
		h.keys.Remove(acc)
	}
	h.bound = h.bound[:0]

	for acc, action := range b.bindings {
		h.keys.Add(acc, func(w application.Window) {
			action(wrapWindow(w))
		})
		h.bound = append(h.bound, acc)
	}
	if len(b.skipped) > 0 {
		slog.Warn("alias accelerators not bound", "accelerators", b.skipped)
	}

	h.setMenu(b.menu)
	slog.Info("application menu installed", "aliases", len(h.bound))
}

// Focused returns the focused window, or nil when none is.
func (h *Host) Focused() menu.Window {
	return wrapWindow(h.app.Window.Current())
}

func wrapWindow(w application.Window) menu.Window {
	if w == nil {
		return nil
	}
	return &Window{w: w}
}

// Window adapts a Wails window to menu.Window.
type Window struct {
	w application.Window
}

// Reload reloads the window content.
func (w *Window) Reload() {
	w.w.Reload()
}

// IsFullscreen reports whether the window is fullscreen.
func (w *Window) IsFullscreen() bool {
	return w.w.IsFullscreen()
}

// ToggleDevTools opens the inspector. Wails offers no way to close it.
func (w *Window) ToggleDevTools() {
	w.w.OpenDevTools()
}

// SetFullscreen enters or leaves fullscreen.
func (w *Window) SetFullscreen(fullscreen bool) {
	if fullscreen {
		w.w.Fullscreen()
	} else {
		w.w.UnFullscreen()
	}
}

// Page adapts a Wails window to the page the shell service drives.
type Page struct {
	W application.Window
}

func (p Page) ExecJS(js string) { p.W.ExecJS(js) }
func (p Page) SetURL(url string) { p.W.SetURL(url) }
func (p Page) SetZoom(factor float64) { p.W.SetZoom(factor) }

// Opener opens external URLs with the system browser.
type Opener struct{}

// OpenExternal opens url. Failures are logged.
func (*Opener) OpenExternal(url string) {
	go func() {
		if err := browser.OpenURL(url); err != nil {
			slog.Error("open external url", "url", url, "error", err)
		}
	}()
}
