package deployable

import (
	"fmt"
	"strings"

	"k8s.io/utils/pointer"
)

// ComponentOptions configure a new Component.
type ComponentOptions struct {
	Options

	// ValuesFilePrefix starts the names of the Component's values files. Defaults to the name.
	ValuesFilePrefix string
	SubComponents    []*SubComponent
	Sidecars         []*Sidecar

	// IsShared marks infrastructure used by several Components, such as HAProxy or Postgres.
	// Shared Components have no values files of their own.
	IsShared bool
	// HasCredentials adds the secrets values files. Defaults to true.
	HasCredentials              *bool
	AdditionalValuesFiles       []string
	AdditionalSecretValuesFiles []string
}

// Component is a top-level deployable. It can own SubComponents and Sidecars and, unless shared,
// is tested with its own values files.
type Component struct {
	Details

	valuesFilePrefix  string
	isShared          bool
	subComponents     []*SubComponent
	sidecars          []*Sidecar
	valuesFiles       []string
	secretValuesFiles []string
}

// NewComponent returns a Component and derives its values files.
//
// The returned tree is not yet linked: Sidecars have no parent and outbound requests have not been
// moved to their parents. Call Link, or build a registry.Registry which does, before querying
// ownership or capabilities of anything in the tree.
func NewComponent(name string, opts ComponentOptions) *Component {
	c := &Component{
		Details:          newDetails(name, opts.Options),
		valuesFilePrefix: opts.ValuesFilePrefix,
		isShared:         opts.IsShared,
		subComponents:    append([]*SubComponent{}, opts.SubComponents...),
		sidecars:         append([]*Sidecar{}, opts.Sidecars...),
	}
	if c.valuesFilePrefix == "" {
		c.valuesFilePrefix = name
	}
	if c.isShared {
		c.valuesFiles = []string{}
		c.secretValuesFiles = []string{}
		return c
	}

	c.valuesFiles = append([]string{
		fmt.Sprintf("%s-minimal-values.yaml", c.valuesFilePrefix),
	}, opts.AdditionalValuesFiles...)

	c.secretValuesFiles = append([]string{}, opts.AdditionalSecretValuesFiles...)
	if pointer.BoolDeref(opts.HasCredentials, true) {
		c.secretValuesFiles = append(c.secretValuesFiles,
			fmt.Sprintf("%s-secrets-in-helm-values.yaml", c.valuesFilePrefix),
			fmt.Sprintf("%s-secrets-externally-values.yaml", c.valuesFilePrefix),
		)
	}
	if c.HasDB {
		c.secretValuesFiles = append(c.secretValuesFiles,
			fmt.Sprintf("%s-postgres-secrets-in-helm-values.yaml", c.valuesFilePrefix),
			fmt.Sprintf("%s-postgres-secrets-externally-values.yaml", c.valuesFilePrefix),
		)
	}
	return c
}

// ValuesFilePrefix returns the prefix of the Component's values files.
func (c *Component) ValuesFilePrefix() string {
	return c.valuesFilePrefix
}

// IsShared returns true if the Component is shared infrastructure.
func (c *Component) IsShared() bool {
	return c.isShared
}

// SubComponents returns the SubComponents the Component owns.
func (c *Component) SubComponents() []*SubComponent {
	return c.subComponents
}

// Sidecars returns the Sidecars running directly in the Component's Pods.
func (c *Component) Sidecars() []*Sidecar {
	return c.sidecars
}

// ValuesFiles returns the Component's minimal values files. Empty for shared Components.
func (c *Component) ValuesFiles() []string {
	return c.valuesFiles
}

// SecretValuesFiles returns the Component's values files exercising its secrets. Empty for shared
// Components.
func (c *Component) SecretValuesFiles() []string {
	return c.secretValuesFiles
}

// OwnsManifest implements Deployable.
//
// SubComponents are asked first. They may have names that merely extend the Component's, and a
// manifest one of them claims is never the Component's.
func (c *Component) OwnsManifest(manifestName string) bool {
	for _, s := range c.subComponents {
		if s.OwnsManifest(manifestName) {
			return false
		}
	}
	return strings.HasPrefix(manifestName, c.Name())
}

// ContainerOwner implements Deployable.
func (c *Component) ContainerOwner(containerName string) Deployable {
	if owner := sidecarOwner(c.sidecars, containerName); owner != nil {
		return owner
	}
	return c
}
