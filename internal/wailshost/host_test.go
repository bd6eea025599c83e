package wailshost

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wailsapp/wails/v3/pkg/application"
	"go.aimuz.me/webshell/menu"
)

type fakeKeys struct {
	bound   map[string]func(application.Window)
	removed []string
}

func (k *fakeKeys) Add(accelerator string, callback func(window application.Window)) {
	k.bound[accelerator] = callback
}

func (k *fakeKeys) Remove(accelerator string) {
	delete(k.bound, accelerator)
	k.removed = append(k.removed, accelerator)
}

func (k *fakeKeys) accelerators() []string {
	out := make([]string, 0, len(k.bound))
	for acc := range k.bound {
		out = append(out, acc)
	}
	sort.Strings(out)
	return out
}

func newTestHost() (*Host, *fakeKeys, *[]*application.Menu) {
	keys := &fakeKeys{bound: make(map[string]func(application.Window))}
	var installed []*application.Menu
	h := &Host{
		keys:     keys,
		setMenu:  func(m *application.Menu) { installed = append(installed, m) },
		platform: menu.Other,
	}
	return h, keys, &installed
}

func aliasTree(visible string, aliases map[string]menu.Action) []*menu.Node {
	view := &menu.Node{Label: "&View", Kind: menu.KindSubmenu}
	view.Children = append(view.Children, &menu.Node{Label: visible, Kind: menu.KindCommand, Action: func(menu.Window) {}})
	for acc, action := range aliases {
		view.Children = append(view.Children, &menu.Node{
			Label:                 visible + "Alias",
			Kind:                  menu.KindCommand,
			Accelerator:           acc,
			Hidden:                true,
			AcceleratorWhenHidden: true,
			Action:                action,
		})
	}
	return []*menu.Node{view}
}

func TestHost_ReinstallReplacesAliasBindings(t *testing.T) {
	h, keys, installed := newTestHost()

	var first, second int
	bump := func(n *int) menu.Action { return func(menu.Window) { *n++ } }

	handle, err := h.BuildFromTemplate(aliasTree("Back", map[string]menu.Action{
		"CmdOrCtrl+[": bump(&first),
		"CmdOrCtrl+]": bump(&first),
	}))
	require.NoError(t, err)
	h.SetApplicationMenu(handle)
	assert.Equal(t, []string{"CmdOrCtrl+[", "CmdOrCtrl+]"}, keys.accelerators())

	handle, err = h.BuildFromTemplate(aliasTree("Forward", map[string]menu.Action{
		"F6": bump(&second),
	}))
	require.NoError(t, err)
	h.SetApplicationMenu(handle)

	assert.Equal(t, []string{"f6"}, keys.accelerators())
	assert.ElementsMatch(t, []string{"CmdOrCtrl+[", "CmdOrCtrl+]"}, keys.removed)
	require.Len(t, *installed, 2)
	assert.NotSame(t, (*installed)[0], (*installed)[1])

	keys.bound["f6"](nil)
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}

func TestHost_SkipsUnsupportedAliases(t *testing.T) {
	h, keys, installed := newTestHost()

	handle, err := h.BuildFromTemplate(aliasTree("Zoom In", map[string]menu.Action{
		"CmdOrCtrl+numadd": func(menu.Window) {},
	}))
	require.NoError(t, err)
	h.SetApplicationMenu(handle)

	assert.Empty(t, keys.bound)
	assert.Len(t, *installed, 1)
}

func TestHost_RejectsTopLevelLeaf(t *testing.T) {
	h, _, _ := newTestHost()
	_, err := h.BuildFromTemplate([]*menu.Node{{Label: "Quit", Kind: menu.KindCommand}})
	assert.Error(t, err)
}

func TestHost_ForeignHandle(t *testing.T) {
	h, keys, installed := newTestHost()
	h.SetApplicationMenu("not a menu")
	assert.Empty(t, keys.bound)
	assert.Empty(t, *installed)
}
