package menu

import (
	"errors"
	"fmt"
	"strconv"
)

// Section labels of the top-level menu.
const (
	SectionApp    = "&Webshell"
	SectionEdit   = "&Edit"
	SectionView   = "&View"
	SectionWindow = "&Window"
	SectionHelp   = "&Help"
)

// Labels referenced outside the builder.
const (
	LabelCopyURL      = "Copy Current URL"
	LabelClearAppData = "Clear App Data"
	LabelBack         = "Back"
	LabelForward      = "Forward"
	LabelRefresh      = "Reload"
	LabelFullscreen   = "Toggle Full Screen"
	LabelZoomIn       = "Zoom In"
	LabelZoomOut      = "Zoom Out"
	LabelDevTools     = "Toggle Developer Tools"
	LabelReportIssue  = "Report an Issue"
	LabelBringToFront = "Bring All to Front"
	LabelQuit         = "Quit"
)

// Fixed links of the Help section.
const (
	HomepageURL = "https://github.com/jiahaog/nativefier"
	IssuesURL   = "https://github.com/jiahaog/nativefier/issues"
)

var (
	// ErrMissingCallback is returned when a required callback is nil.
	ErrMissingCallback = errors.New("missing callback")
	// ErrEmptyVersion is returned when ProductVersion is empty.
	ErrEmptyVersion = errors.New("empty product version")
)

// Config is the input of a menu build. It is not retained after Build.
type Config struct {
	ProductVersion string

	Quit         func()
	ZoomIn       func()
	ZoomOut      func()
	ZoomReset    func()
	GoBack       func()
	GoForward    func()
	CurrentURL   func() string
	ClearAppData func()

	// DefaultZoom only affects the Reset label.
	DefaultZoom     float64
	DisableDevTools bool
}

func (c Config) validate() error {
	if c.ProductVersion == "" {
		return ErrEmptyVersion
	}
	callbacks := []struct {
		name string
		set  bool
	}{
		{"Quit", c.Quit != nil},
		{"ZoomIn", c.ZoomIn != nil},
		{"ZoomOut", c.ZoomOut != nil},
		{"ZoomReset", c.ZoomReset != nil},
		{"GoBack", c.GoBack != nil},
		{"GoForward", c.GoForward != nil},
		{"CurrentURL", c.CurrentURL != nil},
		{"ClearAppData", c.ClearAppData != nil},
	}
	for _, cb := range callbacks {
		if !cb.set {
			return fmt.Errorf("%w: %s", ErrMissingCallback, cb.name)
		}
	}
	return nil
}

// Clipboard receives text written by menu actions.
type Clipboard interface {
	SetText(text string)
}

// Opener opens a URL in the default external handler.
// Failures are the opener's to handle.
type Opener interface {
	OpenExternal(url string)
}

// ResetZoomLabel returns the label of the Reset zoom item.
func ResetZoomLabel(defaultZoom float64) string {
	if defaultZoom == 1.0 {
		return "Reset"
	}
	pct := strconv.FormatFloat(defaultZoom*100, 'f', -1, 64)
	return "Reset (to " + pct + "%, set as default)"
}

// HelpLabel returns the first Help item label for version.
func HelpLabel(version string) string {
	return "Built with Nativefier v" + version
}

func call(f func()) Action {
	return func(Window) { f() }
}

// Build assembles the menu tree for cfg on platform p.
// It has no side effects; clipboard and opener are only used by actions.
func Build(cfg Config, p Platform, cb Clipboard, op Opener) ([]*Node, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("build menu: %w", err)
	}
	if cb == nil || op == nil {
		return nil, fmt.Errorf("build menu: %w: clipboard or opener", ErrMissingCallback)
	}

	edit := buildEdit(cfg, cb)
	view := buildView(cfg, p)
	window := buildWindow(p)
	help := buildHelp(cfg, op)

	if p == Darwin {
		return []*Node{buildApp(cfg), edit, view, window, help}, nil
	}
	return []*Node{edit, view, window, help}, nil
}

func buildEdit(cfg Config, cb Clipboard) *Node {
	currentURL := cfg.CurrentURL
	return submenu(SectionEdit,
		role("Undo", "CmdOrCtrl+Z", RoleUndo),
		role("Redo", "Shift+CmdOrCtrl+Z", RoleRedo),
		separator(),
		role("Cut", "CmdOrCtrl+X", RoleCut),
		role("Copy", "CmdOrCtrl+C", RoleCopy),
		command(LabelCopyURL, "Shift+CmdOrCtrl+C", func(Window) {
			cb.SetText(currentURL())
		}),
		role("Paste", "CmdOrCtrl+V", RolePaste),
		role("Paste and Match Style", "CmdOrCtrl+Shift+V", RolePasteAndMatchStyle),
		role("Select All", "CmdOrCtrl+A", RoleSelectAll),
		command(LabelClearAppData, "", call(cfg.ClearAppData)),
	)
}

func buildView(cfg Config, p Platform) *Node {
	view := submenu(SectionView)
	add := func(n ...*Node) { view.Children = append(view.Children, n...) }

	add(alias{
		label:   LabelBack,
		primary: p.Accelerator(ShortcutBack),
		legacy:  "CmdOrCtrl+[",
		hidden:  "BackAdditionalShortcut",
		action:  call(cfg.GoBack),
	}.expand()...)
	add(alias{
		label:   LabelForward,
		primary: p.Accelerator(ShortcutForward),
		legacy:  "CmdOrCtrl+]",
		hidden:  "ForwardAdditionalShortcut",
		action:  call(cfg.GoForward),
	}.expand()...)

	add(
		command(LabelRefresh, "F5", func(w Window) {
			if w != nil {
				w.Reload()
			}
		}),
		separator(),
		command(LabelFullscreen, p.Accelerator(ShortcutFullscreen), func(w Window) {
			if w != nil {
				w.SetFullscreen(!w.IsFullscreen())
			}
		}),
	)

	zoom := []alias{
		{LabelZoomIn, "CmdOrCtrl+=", "CmdOrCtrl+numadd", "ZoomInAdditionalShortcut", call(cfg.ZoomIn)},
		{LabelZoomOut, "CmdOrCtrl+-", "CmdOrCtrl+numsub", "ZoomOutAdditionalShortcut", call(cfg.ZoomOut)},
		{ResetZoomLabel(cfg.DefaultZoom), "CmdOrCtrl+0", "CmdOrCtrl+num0", "ZoomResetAdditionalShortcut", call(cfg.ZoomReset)},
	}
	for _, a := range zoom {
		add(a.expand()...)
	}

	if !cfg.DisableDevTools {
		add(
			separator(),
			command(LabelDevTools, p.Accelerator(ShortcutDevTools), func(w Window) {
				if w != nil {
					w.ToggleDevTools()
				}
			}),
		)
	}
	return view
}

func buildWindow(p Platform) *Node {
	window := submenu(SectionWindow,
		role("Minimize", "CmdOrCtrl+M", RoleMinimize),
		role("Close", "CmdOrCtrl+W", RoleClose),
	)
	if p == Darwin {
		window.Children = append(window.Children,
			separator(),
			role(LabelBringToFront, "", RoleFront),
		)
	}
	return window
}

func buildHelp(cfg Config, op Opener) *Node {
	return submenu(SectionHelp,
		command(HelpLabel(cfg.ProductVersion), "", func(Window) {
			op.OpenExternal(HomepageURL)
		}),
		command(LabelReportIssue, "", func(Window) {
			op.OpenExternal(IssuesURL)
		}),
	)
}

func buildApp(cfg Config) *Node {
	return submenu(SectionApp,
		role("Services", "", RoleServices),
		separator(),
		role("Hide App", "Cmd+H", RoleHide),
		role("Hide Others", "Cmd+Shift+H", RoleHideOthers),
		role("Show All", "", RoleUnhide),
		separator(),
		command(LabelQuit, "Cmd+Q", call(cfg.Quit)),
	)
}
