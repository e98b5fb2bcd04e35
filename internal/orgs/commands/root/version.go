package root

import (
	"github.com/spf13/cobra"

	"github.com/orghub/orgs-cli/internal/pkg/printer"
)

// AppVersion is set by the linker at build time.
var AppVersion string

func SetAppVersion(version string) {
	AppVersion = version
}

// versionCmd prints the version number of the tool.
// Usage: `orgs version`
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(_ *cobra.Command, _ []string) {
		printer.Infof("Organization Console %s\n", AppVersion)
	},
}
