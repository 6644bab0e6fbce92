package describe

import (
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/element-hq/ess-helm-deployables/cmd/deployables/util"
	"github.com/element-hq/ess-helm-deployables/pkg/deployable"
	"github.com/element-hq/ess-helm-deployables/pkg/values"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var dump bool

func init() {
	Cmd.Flags().BoolVar(&dump, "dump", false,
		"If true, dump the internal representation of the deployable instead.")
}

// Cmd is the Cobra object representing the deployables describe command.
var Cmd = &cobra.Command{
	Use:   "describe DEPLOYABLE",
	Short: "Prints the capabilities of a deployable",
	Long: `Prints, as YAML, the capabilities of a deployable and the path of each property it can use.
`,
	Example: `  deployables describe synapse-check-config
  deployables describe postgres-exporter --dump`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		d, err := util.Deployable(util.RegistryOrDie(), args[0])
		if err != nil {
			util.PrintErrAndDie(err)
		}
		if dump {
			Dump(os.Stdout, d)
			return
		}
		if err := Print(os.Stdout, d); err != nil {
			util.PrintErrAndDie(err)
		}
	},
}

// Description is what describe prints about a deployable.
type Description struct {
	Name         string          `json:"name"`
	Kind         deployable.Kind `json:"kind"`
	Owner        string          `json:"owner,omitempty"`
	Capabilities map[string]bool `json:"capabilities"`
	// Paths has the properties the deployable can read or write.
	Paths             map[values.PropertyType]Path `json:"paths"`
	ValuesFiles       []string                     `json:"valuesFiles,omitempty"`
	SecretValuesFiles []string                     `json:"secretValuesFiles,omitempty"`
}

// Path is a values.Path as dotted keys.
type Path struct {
	Write string `json:"write,omitempty"`
	Read  string `json:"read,omitempty"`
}

// Describe returns the Description of d.
func Describe(d deployable.Deployable) Description {
	details := d.DeployableDetails()
	result := Description{
		Name: d.Name(),
		Kind: deployable.KindOf(d),
		Capabilities: map[string]bool{
			"additionalConfig":             details.HasAdditionalConfig,
			"automountServiceAccountToken": details.HasAutomountServiceAccountToken,
			"db":                           details.HasDB,
			"hook":                         details.IsHook,
			"image":                        details.HasImage,
			"ingress":                      details.HasIngress,
			"mountContext":                 details.HasMountContext,
			"outboundRequests":             details.MakesOutboundRequests,
			"replicas":                     details.HasReplicas,
			"serviceMonitor":               details.HasServiceMonitor,
			"storage":                      details.HasStorage,
			"synapseProcess":               details.IsSynapseProcess,
			"workloads":                    details.HasWorkloads,
		},
		Paths: make(map[values.PropertyType]Path),
	}
	if parent := deployable.ParentOf(d); parent != nil {
		result.Owner = parent.Name()
	}
	for _, p := range values.PropertyTypes() {
		path := d.ValuesFilePath(p)
		if !path.Readable() && !path.Writable() {
			continue
		}
		result.Paths[p] = Path{
			Write: strings.Join(path.WritePath, "."),
			Read:  strings.Join(path.ReadPath, "."),
		}
	}
	if c, ok := d.(*deployable.Component); ok {
		result.ValuesFiles = c.ValuesFiles()
		result.SecretValuesFiles = c.SecretValuesFiles()
	}
	return result
}

// Print writes the Description of d to out as YAML.
func Print(out io.Writer, d deployable.Deployable) error {
	bytes, err := yaml.Marshal(Describe(d))
	if err != nil {
		return errors.Wrapf(err, "marshalling %q", d.Name())
	}
	_, err = out.Write(bytes)
	return err
}

// Dump writes the internal representation of d to out.
func Dump(out io.Writer, d deployable.Deployable) {
	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true, MaxDepth: 3}
	cfg.Fdump(out, d)
}
