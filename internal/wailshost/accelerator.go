package wailshost

import (
	"strings"

	"go.aimuz.me/webshell/menu"
)

var modifiers = map[string]string{
	"cmdorctrl": "CmdOrCtrl",
	"cmd":       "CmdOrCtrl",
	"command":   "CmdOrCtrl",
	"ctrl":      "Ctrl",
	"control":   "Ctrl",
	"alt":       "OptionOrAlt",
	"option":    "OptionOrAlt",
	"shift":     "Shift",
	"super":     "Super",
}

// unsupportedKey reports numeric keypad keys, which have no accelerator
// name in Wails.
func unsupportedKey(key string) bool {
	return strings.HasPrefix(strings.ToLower(key), "num")
}

// Accelerator translates a menu accelerator into Wails syntax. It reports
// false when Wails cannot express the key.
//
// Cmd only appears in darwin accelerators, where CmdOrCtrl is equivalent.
func Accelerator(acc string) (string, bool) {
	if acc == "" {
		return "", false
	}
	parts := strings.Split(acc, "+")
	key := parts[len(parts)-1]
	if unsupportedKey(key) {
		return "", false
	}

	out := make([]string, 0, len(parts))
	for _, m := range parts[:len(parts)-1] {
		w, ok := modifiers[strings.ToLower(m)]
		if !ok {
			return "", false
		}
		out = append(out, w)
	}
	out = append(out, strings.ToLower(key))
	return strings.Join(out, "+"), true
}

// Label strips Windows mnemonic markers on platforms that render them
// literally.
func Label(label string, p menu.Platform) string {
	if p == menu.Darwin {
		return strings.ReplaceAll(label, "&", "")
	}
	return label
}
