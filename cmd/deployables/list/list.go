package list

import (
	"fmt"
	"io"
	"os"

	"github.com/element-hq/ess-helm-deployables/cmd/deployables/flags"
	"github.com/element-hq/ess-helm-deployables/cmd/deployables/util"
	"github.com/element-hq/ess-helm-deployables/pkg/deployable"
	"github.com/element-hq/ess-helm-deployables/pkg/registry"
	"github.com/element-hq/ess-helm-deployables/pkg/status"
	"github.com/spf13/cobra"
)

func init() {
	flags.AddFilters(Cmd)
}

// Cmd is the Cobra object representing the deployables list command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the deployables of the chart",
	Long: `Lists every deployable of the chart with its kind and the deployable that owns it.
Use --filter to only list the deployables that have particular capabilities.
`,
	Example: `  deployables list
  deployables list --filter=replicas
  deployables list --filter=workloads,ingress`,
	Args: cobra.ExactArgs(0),
	Run: func(_ *cobra.Command, _ []string) {
		filters, err := flags.ParseFilters()
		if err != nil {
			util.PrintErrAndDie(err)
		}
		if err := Print(os.Stdout, util.RegistryOrDie(), filters...); err != nil {
			util.PrintErrAndDie(err)
		}
	},
}

// Print writes a table of the deployables in r matching all of filters to out.
func Print(out io.Writer, r *registry.Registry, filters ...registry.Filter) error {
	w := util.NewWriter(out)
	// nolint: errcheck
	fmt.Fprintln(w, "NAME\tKIND\tOWNER")
	errs := r.ForEach(func(d deployable.Deployable) status.Error {
		owner := "-"
		if parent := deployable.ParentOf(d); parent != nil {
			owner = parent.Name()
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", d.Name(), deployable.KindOf(d), owner); err != nil {
			return status.InternalWrap(err)
		}
		return nil
	}, filters...)
	if errs != nil {
		return errs
	}
	return w.Flush()
}
