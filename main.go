package main

import (
	"context"
	"os"

	"go.aimuz.me/webshell/cmd"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := cmd.Execute(context.Background(), version, commit, date); err != nil {
		os.Exit(1)
	}
}
