package version

import (
	"fmt"

	"github.com/element-hq/ess-helm-deployables/pkg/version"
	"github.com/spf13/cobra"
)

// Cmd is the Cobra object representing the deployables version command.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the version of this binary",
	Long: `Prints the version of the "deployables" binary for debugging purposes.
`,
	Example: `  deployables version`,
	Args:    cobra.ExactArgs(0),
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("%s\n", version.VERSION)
	},
}
