package util

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/element-hq/ess-helm-deployables/pkg/catalog"
	"github.com/element-hq/ess-helm-deployables/pkg/deployable"
	"github.com/element-hq/ess-helm-deployables/pkg/registry"
	"github.com/element-hq/ess-helm-deployables/pkg/values"
	"github.com/pkg/errors"
)

// PrintErrAndDie prints an error to STDERR and exits immediately
func PrintErrAndDie(err error) {
	// nolint: errcheck
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// NewWriter returns a standardized writer for the CLI for writing tabular output to the console.
func NewWriter(out io.Writer) *tabwriter.Writer {
	padding := 3
	return tabwriter.NewWriter(out, 0, 0, padding, ' ', 0)
}

// RegistryOrDie builds the Registry of the chart, or prints an error and dies if it is invalid.
func RegistryOrDie() *registry.Registry {
	r, err := catalog.NewRegistry()
	if err != nil {
		PrintErrAndDie(err)
	}
	return r
}

// Lookup returns the named deployable and PropertyType.
func Lookup(r *registry.Registry, name, property string) (deployable.Deployable, values.PropertyType, error) {
	d, err := Deployable(r, name)
	if err != nil {
		return nil, "", err
	}
	p, err := values.ParsePropertyType(property)
	if err != nil {
		return nil, "", err
	}
	return d, p, nil
}

// Deployable returns the named deployable.
func Deployable(r *registry.Registry, name string) (deployable.Deployable, error) {
	d, found := r.Get(name)
	if !found {
		return nil, errors.Errorf("unknown deployable %q", name)
	}
	return d, nil
}
