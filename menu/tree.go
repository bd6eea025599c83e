package menu

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// ErrAcceleratorConflict is returned when two live nodes share an accelerator.
var ErrAcceleratorConflict = errors.New("accelerator conflict")

// Walk visits every node depth first. Returning false from fn skips the
// node's children.
func Walk(tree []*Node, fn func(n *Node, depth int) bool) {
	var visit func(nodes []*Node, depth int)
	visit = func(nodes []*Node, depth int) {
		for _, n := range nodes {
			if fn(n, depth) && n.Kind == KindSubmenu {
				visit(n.Children, depth+1)
			}
		}
	}
	visit(tree, 0)
}

// Flatten returns every node of the tree in depth-first order.
func Flatten(tree []*Node) []*Node {
	var out []*Node
	Walk(tree, func(n *Node, _ int) bool {
		out = append(out, n)
		return true
	})
	return out
}

// Find returns the first node labelled label, or nil.
func Find(tree []*Node, label string) *Node {
	n, ok := lo.Find(Flatten(tree), func(n *Node) bool {
		return n.Label == label
	})
	if !ok {
		return nil
	}
	return n
}

// Section returns the top-level submenu labelled label, or nil.
func Section(tree []*Node, label string) *Node {
	n, ok := lo.Find(tree, func(n *Node) bool {
		return n.Kind == KindSubmenu && n.Label == label
	})
	if !ok {
		return nil
	}
	return n
}

// Live reports whether the node's accelerator can fire.
func (n *Node) Live() bool {
	return n.Accelerator != "" && (n.Visible() || n.AcceleratorWhenHidden)
}

// Accelerators returns the accelerators of every live node in tree order.
func Accelerators(tree []*Node) []string {
	return lo.FilterMap(Flatten(tree), func(n *Node, _ int) (string, bool) {
		return n.Accelerator, n.Live()
	})
}

// HiddenAliases returns the hidden nodes whose accelerators stay active.
func HiddenAliases(tree []*Node) []*Node {
	return lo.Filter(Flatten(tree), func(n *Node, _ int) bool {
		return n.Hidden && n.AcceleratorWhenHidden
	})
}

// Validate checks the structural invariants of tree on platform p: only
// submenus carry children and no two live nodes share an accelerator.
func Validate(tree []*Node, p Platform) error {
	seen := make(map[string]string)
	var err error
	Walk(tree, func(n *Node, _ int) bool {
		if err != nil {
			return false
		}
		if n.IsLeaf() && len(n.Children) > 0 {
			err = fmt.Errorf("node %q: %s node has children", n.Label, n.Kind)
			return false
		}
		if !n.Live() {
			return true
		}
		key := NormalizeAccelerator(n.Accelerator, p)
		if prev, ok := seen[key]; ok {
			err = fmt.Errorf("%w: %q and %q both use %s", ErrAcceleratorConflict, prev, n.Label, n.Accelerator)
			return false
		}
		seen[key] = n.Label
		return true
	})
	return err
}

// NormalizeAccelerator returns a canonical form of acc for comparison:
// lower case, CmdOrCtrl resolved for p, modifiers sorted before the key.
func NormalizeAccelerator(acc string, p Platform) string {
	parts := strings.Split(strings.ToLower(acc), "+")
	if len(parts) == 0 {
		return ""
	}
	key := parts[len(parts)-1]
	// "CmdOrCtrl++" splits into a trailing empty key.
	if key == "" && len(parts) > 1 {
		key = "+"
		parts = parts[:len(parts)-1]
	}
	mods := lo.Map(parts[:len(parts)-1], func(m string, _ int) string {
		switch m {
		case "cmdorctrl", "commandorcontrol":
			if p == Darwin {
				return "cmd"
			}
			return "ctrl"
		case "command":
			return "cmd"
		case "control":
			return "ctrl"
		case "option":
			return "alt"
		}
		return m
	})
	mods = lo.Uniq(mods)
	sort.Strings(mods)
	return strings.Join(append(mods, key), "+")
}
