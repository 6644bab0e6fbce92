package owners

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/element-hq/ess-helm-deployables/cmd/deployables/flags"
	"github.com/element-hq/ess-helm-deployables/cmd/deployables/util"
	"github.com/element-hq/ess-helm-deployables/pkg/manifest"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

func init() {
	flags.AddManifests(Cmd)
}

// Cmd is the Cobra object representing the deployables owners command.
var Cmd = &cobra.Command{
	Use:   "owners",
	Short: "Prints the deployable owning each rendered object and container",
	Long: `Prints the deployable owning each object rendered from the chart, and each of the containers
the object runs. Prints found errors to STDERR and returns a non-zero error code if any object or
container has no single owner.
`,
	Example: `  helm template ess charts/matrix-stack > rendered.yaml
  deployables owners --manifests=rendered.yaml --release=ess`,
	Args: cobra.ExactArgs(0),
	Run: func(_ *cobra.Command, _ []string) {
		objs, err := manifest.Load(flags.Manifests)
		if err != nil {
			util.PrintErrAndDie(err)
		}
		if err := Print(os.Stdout, util.RegistryOrDie(), objs, flags.Release); err != nil {
			util.PrintErrAndDie(err)
		}
	},
}

// Print writes a table of the owners of objs and their containers to out. Objects are printed even
// when the others have errors, which are returned.
func Print(out io.Writer, owners manifest.Owners, objs []*unstructured.Unstructured, release string) error {
	attributions, errs := manifest.Attribute(owners, objs, release)

	w := util.NewWriter(out)
	// nolint: errcheck
	fmt.Fprintln(w, "OBJECT\tCONTAINER\tOWNER")
	for _, a := range attributions {
		// nolint: errcheck
		fmt.Fprintf(w, "%s\t%s\t%s\n", a.ID, "-", a.Owner.Name())

		containers := make([]string, 0, len(a.Containers))
		for c := range a.Containers {
			containers = append(containers, c)
		}
		sort.Strings(containers)
		for _, c := range containers {
			// nolint: errcheck
			fmt.Fprintf(w, "%s\t%s\t%s\n", a.ID, c, a.Containers[c].Name())
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if errs != nil {
		return errs
	}
	return nil
}
