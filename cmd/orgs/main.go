package main

import (
	"github.com/orghub/orgs-cli/internal/orgs/commands/root"
	_ "github.com/orghub/orgs-cli/internal/pkg/logger"
)

// This variable will be overridden by ldflags during build
// Example : go build -ldflags "-X main.AppVersion=1.0.0"
var AppVersion string

func init() {
	// Set default app version in case not provided by ldflags
	if AppVersion == "" {
		AppVersion = "dev"
	}
	root.SetAppVersion(AppVersion)
}

func main() {
	root.Execute()
}
