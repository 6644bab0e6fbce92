package registry

import (
	"github.com/element-hq/ess-helm-deployables/pkg/deployable"
	"github.com/element-hq/ess-helm-deployables/pkg/status"
)

// Filter selects the deployables a Visitor is called with.
type Filter func(d deployable.Deployable) bool

// Visitor is called with one deployable at a time.
type Visitor func(d deployable.Deployable) status.Error

// WithReplicas selects deployables with a configurable replica count.
func WithReplicas(d deployable.Deployable) bool {
	return d.DeployableDetails().HasReplicas
}

// WithIngress selects deployables exposed through an Ingress.
func WithIngress(d deployable.Deployable) bool {
	return d.DeployableDetails().HasIngress
}

// WithWorkloads selects deployables that run Pods.
func WithWorkloads(d deployable.Deployable) bool {
	return d.DeployableDetails().HasWorkloads
}

// ParseFilter returns the Filter with the passed name, as used on the command line.
func ParseFilter(name string) (Filter, bool) {
	switch name {
	case "replicas":
		return WithReplicas, true
	case "ingress":
		return WithIngress, true
	case "workloads":
		return WithWorkloads, true
	default:
		return nil, false
	}
}

// FilterNames lists the names ParseFilter accepts.
func FilterNames() []string {
	return []string{"replicas", "ingress", "workloads"}
}

func matches(d deployable.Deployable, filters []Filter) bool {
	for _, f := range filters {
		if !f(d) {
			return false
		}
	}
	return true
}
