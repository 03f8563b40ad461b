// Command localelint verifies that every locale document defines a
// translation key path as a string.
package main

import (
	"os"

	"localelint/internal/cli"
)

// Set via -ldflags "-X main.version=... -X main.commit=...".
var (
	version = ""
	commit  = ""
)

func main() {
	if version != "" {
		cli.Version = version
	}
	if commit != "" {
		cli.Commit = commit
	}
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
