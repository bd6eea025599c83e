package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/spf13/cobra"
	"go.aimuz.me/webshell/config"
	"go.aimuz.me/webshell/menu"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Print the application menu with its accelerators",
	Long: `Print the application menu the shell would install, including hidden
legacy shortcut aliases. Use --platform to inspect another platform's layout.`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().String("platform", "", "Platform layout to print (darwin, other; default: current)")
	menuCmd.Flags().StringP("output", "o", "", "Output format (json)")
	menuCmd.Flags().Float64("zoom", 0, "Default zoom factor")
	menuCmd.Flags().Bool("disable-dev-tools", false, "Remove developer tools from the menu")
}

// nodeView is the JSON form of a menu node.
type nodeView struct {
	Label                 string     `json:"label,omitempty"`
	Kind                  string     `json:"kind"`
	Role                  string     `json:"role,omitempty"`
	Accelerator           string     `json:"accelerator,omitempty"`
	Hidden                bool       `json:"hidden,omitempty"`
	AcceleratorWhenHidden bool       `json:"acceleratorWhenHidden,omitempty"`
	Children              []nodeView `json:"children,omitempty"`
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	flags := cmd.Flags()
	platform := menu.CurrentPlatform()
	if p, _ := flags.GetString("platform"); p != "" {
		switch strings.ToLower(p) {
		case "darwin", "macos", "mac":
			platform = menu.Darwin
		case "other", "linux", "windows":
			platform = menu.Other
		default:
			return fmt.Errorf("unknown platform: %s", p)
		}
	}

	tree, err := menu.Build(previewConfig(cfg), platform, discard{}, discard{})
	if err != nil {
		return err
	}
	if err := menu.Validate(tree, platform); err != nil {
		pterm.Warning.Println(err.Error())
	}

	if output, _ := flags.GetString("output"); output == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(views(tree))
	}

	pterm.DefaultSection.Printf("Application menu (%s)", platform)
	return pterm.DefaultTree.WithRoot(putils.TreeFromLeveledList(leveledList(tree))).Render()
}

// previewConfig returns a menu configuration with inert callbacks.
func previewConfig(cfg *config.Config) menu.Config {
	nop := func() {}
	return menu.Config{
		ProductVersion:  version,
		Quit:            nop,
		ZoomIn:          nop,
		ZoomOut:         nop,
		ZoomReset:       nop,
		GoBack:          nop,
		GoForward:       nop,
		CurrentURL:      func() string { return cfg.TargetURL },
		ClearAppData:    nop,
		DefaultZoom:     cfg.DefaultZoom,
		DisableDevTools: cfg.DisableDevTools,
	}
}

func leveledList(tree []*menu.Node) pterm.LeveledList {
	var list pterm.LeveledList
	menu.Walk(tree, func(n *menu.Node, depth int) bool {
		list = append(list, pterm.LeveledListItem{Level: depth, Text: nodeText(n)})
		return true
	})
	return list
}

func nodeText(n *menu.Node) string {
	if n.Kind == menu.KindSeparator {
		return "───"
	}
	text := n.Label
	if n.Kind == menu.KindRole {
		text += " (" + string(n.Role) + ")"
	}
	if n.Accelerator != "" {
		text += "  [" + n.Accelerator + "]"
	}
	if n.Hidden {
		text = pterm.Gray(text + "  hidden")
	}
	return text
}

func views(nodes []*menu.Node) []nodeView {
	out := make([]nodeView, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, nodeView{
			Label:                 n.Label,
			Kind:                  n.Kind.String(),
			Role:                  string(n.Role),
			Accelerator:           n.Accelerator,
			Hidden:                n.Hidden,
			AcceleratorWhenHidden: n.AcceleratorWhenHidden,
			Children:              views(n.Children),
		})
	}
	return out
}

type discard struct{}

func (discard) SetText(string) {}
func (discard) OpenExternal(string) {}
