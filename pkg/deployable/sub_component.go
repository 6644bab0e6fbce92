package deployable

import (
	"strings"
)

// SubComponent is a deployable that belongs to exactly one Component, for example the Redis
// serving Synapse. It has no values files of its own.
type SubComponent struct {
	Details

	sidecars []*Sidecar
	// owner is set once, when the forest is linked.
	owner *Component
}

// NewSubComponent returns a SubComponent owning the passed sidecars.
func NewSubComponent(name string, opts Options, sidecars ...*Sidecar) *SubComponent {
	return &SubComponent{
		Details:  newDetails(name, opts),
		sidecars: append([]*Sidecar{}, sidecars...),
	}
}

// Sidecars returns the Sidecars running in the SubComponent's Pods.
func (s *SubComponent) Sidecars() []*Sidecar {
	return s.sidecars
}

// Owner returns the Component the SubComponent belongs to. It is nil until the forest has been
// linked.
func (s *SubComponent) Owner() *Component {
	return s.owner
}

// OwnsManifest implements Deployable.
func (s *SubComponent) OwnsManifest(manifestName string) bool {
	return strings.HasPrefix(manifestName, s.Name())
}

// ContainerOwner implements Deployable.
func (s *SubComponent) ContainerOwner(containerName string) Deployable {
	if owner := sidecarOwner(s.sidecars, containerName); owner != nil {
		return owner
	}
	return s
}
