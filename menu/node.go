// Package menu builds the application menu tree of the browser shell and
// installs it through a host menu API.
package menu

// Kind is the variant of a menu node.
type Kind int

const (
	KindCommand Kind = iota
	KindSeparator
	KindSubmenu
	KindRole
)

func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindSeparator:
		return "separator"
	case KindSubmenu:
		return "submenu"
	case KindRole:
		return "role"
	default:
		return "unknown"
	}
}

// Role names a host built-in behavior bound to a menu item.
type Role string

const (
	RoleUndo               Role = "undo"
	RoleRedo               Role = "redo"
	RoleCut                Role = "cut"
	RoleCopy               Role = "copy"
	RolePaste              Role = "paste"
	RolePasteAndMatchStyle Role = "pasteAndMatchStyle"
	RoleSelectAll          Role = "selectAll"
	RoleMinimize           Role = "minimize"
	RoleClose              Role = "close"
	RoleFront              Role = "front"
	RoleServices           Role = "services"
	RoleHide               Role = "hide"
	RoleHideOthers         Role = "hideOthers"
	RoleUnhide             Role = "unhide"
)

// Window is the focused window as seen by menu actions.
type Window interface {
	Reload()
	IsFullscreen() bool
	SetFullscreen(fullscreen bool)
	ToggleDevTools()
}

// Action is invoked when a node is clicked or its accelerator fires.
// win is the focused window and may be nil.
type Action func(win Window)

// Node is one entry of the menu tree.
type Node struct {
	Label       string
	Kind        Kind
	Role        Role
	Accelerator string

	// Hidden nodes are not rendered. With AcceleratorWhenHidden set their
	// accelerator still dispatches Action.
	Hidden                bool
	AcceleratorWhenHidden bool

	Action   Action
	Children []*Node
}

// Visible reports whether the node is rendered.
func (n *Node) Visible() bool { return !n.Hidden }

// IsLeaf reports whether the node kind must not carry children.
func (n *Node) IsLeaf() bool { return n.Kind != KindSubmenu }

func separator() *Node {
	return &Node{Kind: KindSeparator}
}

func command(label, accelerator string, action Action) *Node {
	return &Node{Label: label, Kind: KindCommand, Accelerator: accelerator, Action: action}
}

func role(label, accelerator string, r Role) *Node {
	return &Node{Label: label, Kind: KindRole, Role: r, Accelerator: accelerator}
}

func submenu(label string, children ...*Node) *Node {
	return &Node{Label: label, Kind: KindSubmenu, Children: children}
}
