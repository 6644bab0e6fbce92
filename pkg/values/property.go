package values

import (
	"github.com/pkg/errors"
)

// PropertyType is a configurable aspect of a deployable. Its value is the key under which the
// property lives in the chart values, and is the last key of any path to it.
type PropertyType string

// The closed set of PropertyTypes.
const (
	AdditionalConfig          = PropertyType("additional")
	Enabled                   = PropertyType("enabled")
	Env                       = PropertyType("extraEnv")
	Volumes                   = PropertyType("extraVolumes")
	VolumeMounts              = PropertyType("extraVolumeMounts")
	HostAliases               = PropertyType("hostAliases")
	Image                     = PropertyType("image")
	Ingress                   = PropertyType("ingress")
	Labels                    = PropertyType("labels")
	LivenessProbe             = PropertyType("livenessProbe")
	NodeSelector              = PropertyType("nodeSelector")
	PodSecurityContext        = PropertyType("podSecurityContext")
	Postgres                  = PropertyType("postgres")
	Replicas                  = PropertyType("replicas")
	ReadinessProbe            = PropertyType("readinessProbe")
	Resources                 = PropertyType("resources")
	StartupProbe              = PropertyType("startupProbe")
	ServiceAccount            = PropertyType("serviceAccount")
	ServiceMonitor            = PropertyType("serviceMonitors")
	Storage                   = PropertyType("storage")
	Tolerations               = PropertyType("tolerations")
	TopologySpreadConstraints = PropertyType("topologySpreadConstraints")
)

var propertyTypes = []PropertyType{
	AdditionalConfig,
	Enabled,
	Env,
	Volumes,
	VolumeMounts,
	HostAliases,
	Image,
	Ingress,
	Labels,
	LivenessProbe,
	NodeSelector,
	PodSecurityContext,
	Postgres,
	Replicas,
	ReadinessProbe,
	Resources,
	StartupProbe,
	ServiceAccount,
	ServiceMonitor,
	Storage,
	Tolerations,
	TopologySpreadConstraints,
}

// PropertyTypes returns every PropertyType.
func PropertyTypes() []PropertyType {
	result := make([]PropertyType, len(propertyTypes))
	copy(result, propertyTypes)
	return result
}

// ParsePropertyType returns the PropertyType with the given values key.
func ParsePropertyType(key string) (PropertyType, error) {
	for _, p := range propertyTypes {
		if string(p) == key {
			return p, nil
		}
	}
	return "", errors.Errorf("unknown property type %q", key)
}

// Key returns the values key for the PropertyType.
func (p PropertyType) Key() string {
	return string(p)
}

// String implements fmt.Stringer.
func (p PropertyType) String() string {
	return string(p)
}
