// Package catalog is the forest of deployables making up the chart.
package catalog

import (
	"github.com/element-hq/ess-helm-deployables/pkg/deployable"
	"github.com/element-hq/ess-helm-deployables/pkg/registry"
	"github.com/element-hq/ess-helm-deployables/pkg/values"
	"k8s.io/utils/pointer"
)

var syn2masSecretValuesFiles = []string{
	"matrix-authentication-service-synapse-syn2mas-dry-run-secrets-in-helm-values.yaml",
	"matrix-authentication-service-synapse-syn2mas-dry-run-secrets-externally-values.yaml",
	"matrix-authentication-service-synapse-syn2mas-migrate-secrets-in-helm-values.yaml",
	"matrix-authentication-service-synapse-syn2mas-migrate-secrets-externally-values.yaml",
}

// ExtraValuesFiles are scenarios spanning several Components.
func ExtraValuesFiles() []string {
	return append([]string{"example-default-enabled-components-values.yaml"}, syn2masSecretValuesFiles...)
}

// ExtraSecretValuesFiles are secrets scenarios spanning several Components.
func ExtraSecretValuesFiles() []string {
	return append([]string{}, syn2masSecretValuesFiles...)
}

// ExtraServicesValuesFiles are the scenarios exposing services.
func ExtraServicesValuesFiles() []string {
	return []string{
		"matrix-rtc-exposed-services-values.yaml",
		"matrix-rtc-host-mode-values.yaml",
	}
}

// NewRegistry builds the forest and its Registry. Each call returns an independent Registry.
func NewRegistry() (*registry.Registry, error) {
	return registry.New(Components(),
		registry.ExtraValuesFiles(ExtraValuesFiles()...),
		registry.ExtraSecretValuesFiles(ExtraSecretValuesFiles()...),
		registry.ExtraServicesValuesFiles(ExtraServicesValuesFiles()...),
	)
}

// Components returns a newly built, unlinked forest of every Component in the chart.
func Components() []*deployable.Component {
	return []*deployable.Component{
		newHook("deployment-markers", "deploymentMarkers", pointer.Bool(false)),
		newHook("init-secrets", "initSecrets", nil),
		deployable.NewComponent("haproxy", deployable.ComponentOptions{
			Options: deployable.Options{
				HasAdditionalConfig:   pointer.Bool(false),
				HasIngress:            pointer.Bool(false),
				MakesOutboundRequests: pointer.Bool(false),
				IgnoreUnreferencedMounts: map[string][]string{
					"haproxy": {"/usr/local/etc/haproxy/placeholder"},
				},
				SkipPathConsistencyForFiles: []string{"haproxy.cfg", "429.http", "path_map_file", "path_map_file_get"},
			},
			HasCredentials: pointer.Bool(false),
			IsShared:       true,
		}),
		newPostgres(),
		newMatrixRTC(),
		deployable.NewComponent("element-admin", deployable.ComponentOptions{
			Options: deployable.Options{
				ValuesPath:            readWrite("elementAdmin"),
				HasAdditionalConfig:   pointer.Bool(false),
				HasServiceMonitor:     pointer.Bool(false),
				MakesOutboundRequests: pointer.Bool(false),
				IgnoreUnreferencedMounts: map[string][]string{
					"element-admin": {"/tmp"},
				},
			},
			HasCredentials: pointer.Bool(false),
		}),
		newElementWeb(),
		newMatrixAuthenticationService(),
		newSynapse(),
		deployable.NewComponent("well-known", deployable.ComponentOptions{
			Options: deployable.Options{
				ValuesPath:          readWrite("wellKnownDelegation"),
				HasAdditionalConfig: pointer.Bool(true),
				HasWorkloads:        pointer.Bool(false),
			},
			HasCredentials: pointer.Bool(false),
		}),
	}
}

// newHook returns one of the shared Jobs run by Helm hooks.
func newHook(name, key string, hasCredentials *bool) *deployable.Component {
	return deployable.NewComponent(name, deployable.ComponentOptions{
		Options: deployable.Options{
			ValuesPath:                      readWrite(key),
			Overrides:                       jobProbes(),
			HasAdditionalConfig:             pointer.Bool(false),
			HasImage:                        pointer.Bool(false),
			HasIngress:                      pointer.Bool(false),
			HasAutomountServiceAccountToken: true,
			HasReplicas:                     pointer.Bool(false),
			HasServiceMonitor:               pointer.Bool(false),
			MakesOutboundRequests:           pointer.Bool(false),
			IsHook:                          true,
			HasMountContext:                 pointer.Bool(false),
		},
		HasCredentials: hasCredentials,
		IsShared:       true,
	})
}

func newPostgres() *deployable.Component {
	exporter := deployable.NewSidecar("postgres-exporter", deployable.Options{
		ValuesPath: readWrite("postgres", "postgresExporter"),
		// No manifests of its own so no labels.
		Overrides: map[values.PropertyType]values.Path{
			values.Labels: values.NotSupported(),
		},
		HasAdditionalConfig:   pointer.Bool(false),
		HasIngress:            pointer.Bool(false),
		HasServiceMonitor:     pointer.Bool(false),
		MakesOutboundRequests: pointer.Bool(false),
	})

	return deployable.NewComponent("postgres", deployable.ComponentOptions{
		Options: deployable.Options{
			HasAdditionalConfig:   pointer.Bool(false),
			HasIngress:            pointer.Bool(false),
			HasStorage:            true,
			HasReplicas:           pointer.Bool(false),
			MakesOutboundRequests: pointer.Bool(false),
			ContentVolumesMapping: map[string][]string{
				"/var/lib/postgres/data": {"pgdata"},
			},
			IgnoreUnreferencedMounts: map[string][]string{
				"postgres": {"/tmp", "/var/run/postgresql"},
			},
		},
		Sidecars: []*deployable.Sidecar{exporter},
		IsShared: true,
	})
}

func newMatrixRTC() *deployable.Component {
	return deployable.NewComponent("matrix-rtc", deployable.ComponentOptions{
		Options: deployable.Options{
			ValuesPath:          readWrite("matrixRTC"),
			HasAdditionalConfig: pointer.Bool(false),
			HasServiceMonitor:   pointer.Bool(false),
		},
		SubComponents: []*deployable.SubComponent{
			deployable.NewSubComponent("matrix-rtc-sfu", deployable.Options{
				ValuesPath:            readWrite("matrixRTC", "sfu"),
				HasIngress:            pointer.Bool(false),
				HasReplicas:           pointer.Bool(false),
				MakesOutboundRequests: pointer.Bool(false),
			}),
		},
		AdditionalSecretValuesFiles: []string{
			"matrix-rtc-external-livekit-secrets-in-helm-values.yaml",
			"matrix-rtc-external-livekit-secrets-externally-values.yaml",
		},
	})
}

func newElementWeb() *deployable.Component {
	return deployable.NewComponent("element-web", deployable.ComponentOptions{
		Options: deployable.Options{
			ValuesPath:            readWrite("elementWeb"),
			HasServiceMonitor:     pointer.Bool(false),
			MakesOutboundRequests: pointer.Bool(false),
			IgnorePathsMismatches: map[string][]string{
				// nginx header paths and files from the base image.
				"element-web": {
					"/50x.html",
					"/config",
					"/health",
					"/index.html",
					"/modules",
					"/version",
					"/non-existant-so-that-this-works-with-read-only-root-filesystem",
				},
			},
			IgnoreUnreferencedMounts: map[string][]string{
				// Included by a wildcard in the base image.
				"element-web": {
					"/etc/nginx/conf.d/default.conf",
					"/etc/nginx/conf.d/http_customisations.conf",
				},
			},
			ContentVolumesMapping: map[string][]string{"/tmp": {"element-web-config"}},
		},
		HasCredentials: pointer.Bool(false),
	})
}

func newMatrixAuthenticationService() *deployable.Component {
	overrides := jobProbes()
	overrides[values.AdditionalConfig] = values.ReadElsewhere("matrixAuthenticationService", "additional")
	// The media store is in Synapse's homeserver.yaml but isn't mounted.
	synapseConfigPaths := []string{"/as/0/bridge_registration.yaml", "/media/media_store"}

	syn2mas := deployable.NewSubComponent("syn2mas", deployable.Options{
		ValuesPath: readWrite("matrixAuthenticationService", "syn2mas"),
		Overrides:  overrides,
		IgnoreUnreferencedMounts: map[string][]string{
			"syn2mas-migrate": {"/tmp-mas-cli", "/tmp-mas-cli/mas-cli"},
		},
		IgnorePathsMismatches: map[string][]string{
			"copy-mas-cli":    {"/usr/local/bin/mas-cli"},
			"syn2mas-check":   synapseConfigPaths,
			"syn2mas-migrate": synapseConfigPaths,
		},
		ContentVolumesMapping:           map[string][]string{"/tmp-mas-cli": {"mas-cli"}},
		HasIngress:                      pointer.Bool(false),
		HasAutomountServiceAccountToken: true,
		HasReplicas:                     pointer.Bool(false),
		HasServiceMonitor:               pointer.Bool(false),
		IsHook:                          true,
		HasMountContext:                 pointer.Bool(false),
		MakesOutboundRequests:           pointer.Bool(false),
	})

	return deployable.NewComponent("matrix-authentication-service", deployable.ComponentOptions{
		Options: deployable.Options{
			ValuesPath: readWrite("matrixAuthenticationService"),
			HasDB:      true,
		},
		SubComponents: []*deployable.SubComponent{syn2mas},
	})
}

// jobProbes returns overrides for a Job, which has none of the probes.
func jobProbes() map[values.PropertyType]values.Path {
	return map[values.PropertyType]values.Path{
		values.LivenessProbe:  values.NotSupported(),
		values.ReadinessProbe: values.NotSupported(),
		values.StartupProbe:   values.NotSupported(),
	}
}

func readWrite(keys ...string) *values.Path {
	p := values.ReadWrite(keys...)
	return &p
}
