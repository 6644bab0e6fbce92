package vet

import (
	"fmt"
	"io"
	"os"

	"github.com/element-hq/ess-helm-deployables/cmd/deployables/util"
	"github.com/element-hq/ess-helm-deployables/pkg/catalog"
	"github.com/element-hq/ess-helm-deployables/pkg/deployable"
	"github.com/element-hq/ess-helm-deployables/pkg/registry"
	"github.com/spf13/cobra"
)

// Cmd is the Cobra object representing the deployables vet command.
var Cmd = &cobra.Command{
	Use:   "vet",
	Short: "Validates the deployables of the chart",
	Long: `Validates the deployables of the chart.
Checks that every deployable has a unique valid name, belongs to at most one owner and is the only
deployable claiming manifests named after it. Prints found errors to STDERR and returns a non-zero
error code if any issues are found.
`,
	Example: `  deployables vet`,
	Args:    cobra.ExactArgs(0),
	Run: func(_ *cobra.Command, _ []string) {
		if err := Vet(os.Stdout, catalog.Components()); err != nil {
			util.PrintErrAndDie(err)
		}
	},
}

// Vet builds a Registry from components and writes a summary to out if it is valid.
func Vet(out io.Writer, components []*deployable.Component) error {
	r, err := registry.New(components)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%d deployables from %d components are valid\n", r.Len(), len(r.Components()))
	return err
}
