// Package deployable models the units of ownership in the chart and where their configuration
// lives in the values.
//
// There are three kinds of deployable:
//
//   - Component: a top-level deployable with its own values files, unless it is shared
//     infrastructure.
//   - SubComponent: a deployable that only ever exists as part of one Component.
//   - Sidecar: an extra container in the Pod of a Component or SubComponent. Pod-level properties
//     come from the parent.
//
// The kinds only differ in how manifests and containers are attributed to them and in what they
// own. Everything checked about a deployable lives on the shared Details.
package deployable

import (
	"github.com/element-hq/ess-helm-deployables/pkg/values"
)

// Deployable is implemented by *Component, *SubComponent and *Sidecar only.
type Deployable interface {
	// Name returns the unique name of the deployable.
	Name() string
	// DeployableDetails returns the capability record of the deployable.
	DeployableDetails() *Details
	// ValuesFilePath returns where PropertyType p lives in the values for the deployable.
	ValuesFilePath(p values.PropertyType) values.Path
	// Get reads PropertyType p for the deployable from v.
	Get(v values.Values, p values.PropertyType, defaultValue interface{}) (interface{}, bool, error)
	// Set writes PropertyType p for the deployable into v.
	Set(v values.Values, p values.PropertyType, value interface{}) error
	// OwnsManifest returns true if the rendered manifest with this name belongs to the deployable.
	OwnsManifest(manifestName string) bool
	// ContainerOwner returns the deployable owning the named container in a manifest owned by
	// this deployable. Sidecars return nil for containers that aren't theirs.
	ContainerOwner(containerName string) Deployable
}

var (
	_ Deployable = &Component{}
	_ Deployable = &SubComponent{}
	_ Deployable = &Sidecar{}
)

// Kind names the kind of a Deployable.
type Kind string

// The kinds of Deployable.
const (
	ComponentKind    = Kind("Component")
	SubComponentKind = Kind("SubComponent")
	SidecarKind      = Kind("Sidecar")
)

// KindOf returns the Kind of d.
func KindOf(d Deployable) Kind {
	switch d.(type) {
	case *Component:
		return ComponentKind
	case *SubComponent:
		return SubComponentKind
	case *Sidecar:
		return SidecarKind
	default:
		return ""
	}
}

// ParentOf returns the deployable that owns d, or nil for a Component.
func ParentOf(d Deployable) Deployable {
	switch t := d.(type) {
	case *Sidecar:
		return t.Parent()
	case *SubComponent:
		if t.owner == nil {
			return nil
		}
		return t.owner
	default:
		return nil
	}
}
