// Package cmd implements the webshell command line.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

// EnvLogLevel sets the default log level.
const EnvLogLevel = "LOG_LEVEL"

// Build information, set by main.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "webshell",
	Short: "Wrap a web application in a desktop window",
	Long: `webshell opens a web application in a native window with a desktop
application menu: navigation, zoom, developer tools and app data controls.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		return setupLogger(level)
	},
	RunE: runShell,
}

func init() {
	rootCmd.PersistentFlags().String("log-level", os.Getenv(EnvLogLevel), "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("config", "", "Path to config.json (default: user config dir)")

	addShellFlags(rootCmd)
	addShellFlags(runCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the command line with the given build information.
func Execute(ctx context.Context, v, c, d string) error {
	version, commit, date = v, c, d
	rootCmd.Version = v
	return fang.Execute(ctx, rootCmd,
		fang.WithVersion(v),
		fang.WithCommit(c),
	)
}

func setupLogger(level string) error {
	var lvl slog.Level
	if strings.TrimSpace(level) != "" {
		if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
	})))
	return nil
}
