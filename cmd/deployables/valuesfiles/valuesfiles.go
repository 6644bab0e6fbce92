package valuesfiles

import (
	"fmt"
	"io"
	"os"

	"github.com/element-hq/ess-helm-deployables/cmd/deployables/util"
	"github.com/element-hq/ess-helm-deployables/pkg/registry"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	secrets  bool
	services bool
)

func init() {
	Cmd.Flags().BoolVar(&secrets, "secrets", false,
		"If true, list the values files exercising secrets instead.")
	Cmd.Flags().BoolVar(&services, "services", false,
		"If true, also list the values files exposing services.")
}

// Cmd is the Cobra object representing the deployables values-files command.
var Cmd = &cobra.Command{
	Use:   "values-files",
	Short: "Lists the values files the chart is tested with",
	Long: `Lists the values files of every Component, plus the scenarios spanning several Components.
`,
	Example: `  deployables values-files
  deployables values-files --secrets`,
	Args: cobra.ExactArgs(0),
	Run: func(_ *cobra.Command, _ []string) {
		if err := Print(os.Stdout, util.RegistryOrDie(), secrets, services); err != nil {
			util.PrintErrAndDie(err)
		}
	},
}

// Print writes one file name per line to out.
func Print(out io.Writer, r *registry.Registry, secrets, services bool) error {
	var files []string
	switch {
	case secrets && services:
		return errors.New("--secrets and --services can't be used together")
	case secrets:
		files = r.SecretValuesFiles()
	case services:
		files = r.ServicesValuesFiles()
	default:
		files = r.ValuesFiles()
	}
	for _, f := range files {
		if _, err := fmt.Fprintln(out, f); err != nil {
			return err
		}
	}
	return nil
}
