package deployable

import (
	"strings"

	"github.com/element-hq/ess-helm-deployables/pkg/values"
)

// podProperties are controlled by the Pod a Sidecar runs in, never by the Sidecar itself.
var podProperties = []values.PropertyType{
	values.NodeSelector,
	values.PodSecurityContext,
	values.ServiceAccount,
	values.Volumes,
	values.Tolerations,
	values.TopologySpreadConstraints,
}

// Sidecar is an additional container running in the Pod of a Component or SubComponent.
type Sidecar struct {
	Details

	// parent is set once, when the forest is linked.
	parent Deployable
}

// NewSidecar returns a Sidecar. A Sidecar always has workloads, never has its own replicas and
// can't configure the Pod-level properties, whatever opts says.
func NewSidecar(name string, opts Options) *Sidecar {
	hasWorkloads := true
	opts.HasWorkloads = &hasWorkloads

	s := &Sidecar{Details: newDetails(name, opts)}
	for _, p := range podProperties {
		s.Overrides[p] = values.NotSupported()
	}
	s.HasReplicas = false
	return s
}

// Parent returns the deployable whose Pod the Sidecar runs in. It is nil until the forest has been
// linked.
func (s *Sidecar) Parent() Deployable {
	return s.parent
}

// OwnsManifest implements Deployable. A Sidecar never owns what its parent could own. Before the
// forest is linked the parent is unknown and only the prefix is checked.
func (s *Sidecar) OwnsManifest(manifestName string) bool {
	if s.parent != nil && s.parent.OwnsManifest(manifestName) {
		return false
	}
	return strings.HasPrefix(manifestName, s.Name())
}

// ContainerOwner implements Deployable.
func (s *Sidecar) ContainerOwner(containerName string) Deployable {
	if strings.HasPrefix(containerName, s.Name()) {
		return s
	}
	return nil
}

// sidecarOwner returns the first of sidecars owning the container or nil.
func sidecarOwner(sidecars []*Sidecar, containerName string) Deployable {
	for _, s := range sidecars {
		if owner := s.ContainerOwner(containerName); owner != nil {
			return owner
		}
	}
	return nil
}
