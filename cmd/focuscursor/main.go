package main

import "github.com/ivlev/focuscursor/internal/cli"

// Set with -ldflags "-X main.version=... -X main.commit=..."
var (
	version = "dev"
	commit  = ""
)

func main() {
	cli.Execute(cli.BuildInfo{Version: version, Commit: commit})
}
