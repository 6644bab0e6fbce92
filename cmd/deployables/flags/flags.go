package flags

import (
	"fmt"
	"strings"

	"github.com/element-hq/ess-helm-deployables/pkg/registry"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	// ValuesName is the flag name for Values below.
	ValuesName = "values"
	// ManifestsName is the flag name for Manifests below.
	ManifestsName = "manifests"
	// ReleaseName is the flag name for Release below.
	ReleaseName = "release"
	// FilterName is the flag name for Filters below.
	FilterName = "filter"
)

var (
	// Values is the path of a chart values file.
	Values string

	// Manifests is the path of a file of manifests rendered from the chart.
	Manifests string

	// Release is the name of the Helm release the manifests were rendered for.
	Release string

	// Filters restrict commands to deployables with the named capabilities.
	Filters []string
)

// AddValues adds the --values flag.
func AddValues(cmd *cobra.Command) {
	cmd.Flags().StringVar(&Values, ValuesName, "",
		"Path of a chart values file.")
	_ = cmd.MarkFlagRequired(ValuesName)
}

// AddManifests adds the --manifests and --release flags.
func AddManifests(cmd *cobra.Command) {
	cmd.Flags().StringVar(&Manifests, ManifestsName, "",
		`Path of the output of "helm template", as YAML documents or a single JSON object.`)
	_ = cmd.MarkFlagRequired(ManifestsName)
	cmd.Flags().StringVar(&Release, ReleaseName, "",
		"Name of the Helm release the manifests were rendered for. Stripped from the start of object names.")
}

// AddFilters adds the --filter flag.
func AddFilters(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&Filters, FilterName, nil,
		fmt.Sprintf("Only include deployables with all of these capabilities. One of: %s.",
			strings.Join(registry.FilterNames(), ", ")))
}

// ParseFilters returns the registry.Filters named by --filter.
func ParseFilters() ([]registry.Filter, error) {
	var result []registry.Filter
	for _, name := range Filters {
		f, ok := registry.ParseFilter(name)
		if !ok {
			return nil, errors.Errorf("unknown --%s %q, must be one of: %s",
				FilterName, name, strings.Join(registry.FilterNames(), ", "))
		}
		result = append(result, f)
	}
	return result, nil
}
