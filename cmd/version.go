package cmd

import (
	"github.com/Masterminds/semver/v3"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		pterm.Printf("webshell %s (commit %s, built %s)\n", version, commit, date)
		if !releaseVersion(version) {
			pterm.Warning.Println("Not a release build")
		}
	},
}

// releaseVersion reports whether v is a semantic version without a
// prerelease suffix.
func releaseVersion(v string) bool {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return false
	}
	return sv.Prerelease() == ""
}
