package menu

import "runtime"

// Platform selects the accelerator and section policy.
type Platform int

const (
	Other Platform = iota
	Darwin
)

func (p Platform) String() string {
	if p == Darwin {
		return "darwin"
	}
	return "other"
}

// CurrentPlatform returns the platform the process runs on.
func CurrentPlatform() Platform {
	return PlatformFor(runtime.GOOS)
}

// PlatformFor maps a GOOS value to a Platform.
func PlatformFor(goos string) Platform {
	if goos == "darwin" {
		return Darwin
	}
	return Other
}

// Shortcut identifies a platform-dependent accelerator.
type Shortcut int

const (
	ShortcutBack Shortcut = iota
	ShortcutForward
	ShortcutFullscreen
	ShortcutDevTools
)

// accelerators is the only place where accelerators differ by platform.
var accelerators = map[Platform]map[Shortcut]string{
	Darwin: {
		ShortcutBack:       "Cmd+Left",
		ShortcutForward:    "Cmd+Right",
		ShortcutFullscreen: "Ctrl+Cmd+F",
		ShortcutDevTools:   "Alt+Cmd+I",
	},
	Other: {
		ShortcutBack:       "Alt+Left",
		ShortcutForward:    "Alt+Right",
		ShortcutFullscreen: "F11",
		ShortcutDevTools:   "Ctrl+Shift+I",
	},
}

// Accelerator returns the accelerator bound to s on p.
func (p Platform) Accelerator(s Shortcut) string {
	return accelerators[p][s]
}

// alias binds a primary View item to a hidden legacy accelerator.
// Both nodes share the same Action.
type alias struct {
	label   string
	primary string
	legacy  string
	hidden  string
	action  Action
}

// expand returns the visible primary node followed by its hidden alias.
func (a alias) expand() []*Node {
	return []*Node{
		command(a.label, a.primary, a.action),
		{
			Label:                 a.hidden,
			Kind:                  KindCommand,
			Accelerator:           a.legacy,
			Hidden:                true,
			AcceleratorWhenHidden: true,
			Action:                a.action,
		},
	}
}
