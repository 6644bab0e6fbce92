package property

import (
	"fmt"
	"io"
	"os"

	"github.com/element-hq/ess-helm-deployables/cmd/deployables/flags"
	"github.com/element-hq/ess-helm-deployables/cmd/deployables/util"
	"github.com/element-hq/ess-helm-deployables/pkg/deployable"
	"github.com/element-hq/ess-helm-deployables/pkg/values"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// Unsupported is printed for a property the deployable can't configure.
const Unsupported = "unsupported"

func init() {
	flags.AddValues(GetCmd)
}

// PathCmd is the Cobra object representing the deployables path command.
var PathCmd = &cobra.Command{
	Use:   "path DEPLOYABLE PROPERTY",
	Short: "Prints where a property of a deployable lives in the values",
	Long: `Prints the keys a property of a deployable is written at and read from in the chart values.
A side the deployable can't use is printed as <none>.
`,
	Example: `  deployables path synapse-pusher replicas
  deployables path synapse-pusher image`,
	Args: cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		d, p, err := util.Lookup(util.RegistryOrDie(), args[0], args[1])
		if err != nil {
			util.PrintErrAndDie(err)
		}
		if err := PrintPath(os.Stdout, d, p); err != nil {
			util.PrintErrAndDie(err)
		}
	},
}

// GetCmd is the Cobra object representing the deployables get command.
var GetCmd = &cobra.Command{
	Use:   "get DEPLOYABLE PROPERTY",
	Short: "Prints the value of a property of a deployable",
	Long: `Prints, as YAML, the value of a property of a deployable in a chart values file.
Missing values print as {}. Prints "unsupported" if the deployable can't read the property at all.
`,
	Example: `  deployables get synapse-pusher image --values=charts/matrix-stack/values.yaml`,
	Args:    cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		d, p, err := util.Lookup(util.RegistryOrDie(), args[0], args[1])
		if err != nil {
			util.PrintErrAndDie(err)
		}
		v, err := values.Load(flags.Values)
		if err != nil {
			util.PrintErrAndDie(err)
		}
		if err := PrintValue(os.Stdout, d, p, v); err != nil {
			util.PrintErrAndDie(err)
		}
	},
}

// PrintPath writes the Path of p for d to out.
func PrintPath(out io.Writer, d deployable.Deployable, p values.PropertyType) error {
	_, err := fmt.Fprintf(out, "%s\n", d.ValuesFilePath(p))
	return err
}

// PrintValue writes the value of p for d in v to out, as YAML.
func PrintValue(out io.Writer, d deployable.Deployable, p values.PropertyType, v values.Values) error {
	value, supported, err := d.Get(v, p, nil)
	if err != nil {
		return err
	}
	if !supported {
		_, err := fmt.Fprintln(out, Unsupported)
		return err
	}
	bytes, err := yaml.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "marshalling %s of %q", p, d.Name())
	}
	_, err = out.Write(bytes)
	return err
}
