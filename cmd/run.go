package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/wailsapp/wails/v3/pkg/application"
	"go.aimuz.me/webshell/clipboard"
	"go.aimuz.me/webshell/config"
	"go.aimuz.me/webshell/internal/app"
	"go.aimuz.me/webshell/internal/wailshost"
	"go.aimuz.me/webshell/menu"
	"go.aimuz.me/webshell/metric"
	"go.aimuz.me/webshell/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the web application in a desktop window",
	RunE:  runShell,
}

func addShellFlags(cmd *cobra.Command) {
	cmd.Flags().String("url", "", "URL of the web application")
	cmd.Flags().String("name", "", "Window title and application name")
	cmd.Flags().Float64("zoom", 0, "Default zoom factor")
	cmd.Flags().Bool("disable-dev-tools", false, "Remove developer tools from the menu")
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address")
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.TargetURL, _ = flags.GetString("url")
	}
	if flags.Changed("name") {
		cfg.Name, _ = flags.GetString("name")
	}
	if flags.Changed("zoom") {
		cfg.DefaultZoom, _ = flags.GetFloat64("zoom")
	}
	if flags.Changed("disable-dev-tools") {
		cfg.DisableDevTools, _ = flags.GetBool("disable-dev-tools")
	}
	return cfg, nil
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if !releaseVersion(version) {
		slog.Warn("version is not a release semver", "version", version)
	}
	slog.Info("starting webshell", "version", version, "commit", commit, "date", date, "url", cfg.TargetURL)

	st, err := store.Open(filepath.Join(cfg.Dir(), "data"))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	reg := prometheus.NewRegistry()
	actions := metric.NewCounterWithRegistry(reg, "webshell_menu_actions_total", "Menu actions invoked, by action.", "action")

	svc := app.New(version, cfg, st, actions)
	defer svc.Shutdown()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if addr, _ := cmd.Flags().GetString("metrics-addr"); addr != "" {
		go func() {
			if err := metric.Serve(ctx, addr, reg); err != nil {
				slog.Error("metrics server", "error", err)
			}
		}()
	}

	wails := application.New(application.Options{
		Name:        cfg.Name,
		Description: "Web application shell",
		Services: []application.Service{
			application.NewService(svc),
		},
		Mac: application.MacOptions{
			// No Quit item outside the app menu; closing the window ends the app.
			ApplicationShouldTerminateAfterLastWindowClosed: true,
		},
	})

	window := wails.Window.NewWithOptions(application.WebviewWindowOptions{
		Title:           cfg.Name,
		Width:           cfg.Width,
		Height:          cfg.Height,
		URL:             svc.StartURL(),
		DevToolsEnabled: !cfg.DisableDevTools,
	})

	svc.Init(wailshost.Page{W: window}, wails.Quit, func(name string, data any) {
		wails.Event.Emit(name, data)
	})
	svc.ZoomReset()
	svc.RecordNavigation(svc.StartURL())

	platform := menu.CurrentPlatform()
	builder := menu.NewBuilder(
		wailshost.New(wails, platform),
		platform,
		clipboard.NewWriter(wails),
		&wailshost.Opener{},
	)
	generation, err := builder.Install(svc.MenuConfig())
	if err != nil {
		return fmt.Errorf("install menu: %w", err)
	}
	slog.Debug("menu ready", "generation", generation, "platform", platform)

	if err := wails.Run(); err != nil {
		return fmt.Errorf("run app: %w", err)
	}
	return nil
}
