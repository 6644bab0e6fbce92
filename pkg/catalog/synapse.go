package catalog

import (
	"github.com/element-hq/ess-helm-deployables/pkg/deployable"
	"github.com/element-hq/ess-helm-deployables/pkg/values"
	"k8s.io/utils/pointer"
)

// WorkerType says whether a Synapse worker can run more than one replica.
type WorkerType string

// The WorkerTypes.
const (
	Single   = WorkerType("single")
	Scalable = WorkerType("scalable")
)

// Worker is a kind of Synapse worker the chart can deploy.
type Worker struct {
	Name string
	Type WorkerType
}

var synapseWorkers = []Worker{
	{"account-data", Single},
	{"appservice", Single},
	{"background", Single},
	{"client-reader", Scalable},
	{"device-lists", Scalable},
	{"encryption", Single},
	{"event-creator", Scalable},
	{"event-persister", Scalable},
	{"federation-inbound", Scalable},
	{"federation-reader", Scalable},
	{"federation-sender", Scalable},
	{"initial-synchrotron", Scalable},
	{"media-repository", Single},
	{"presence-writer", Single},
	{"push-rules", Single},
	{"pusher", Scalable},
	{"receipts", Scalable},
	{"sliding-sync", Scalable},
	{"sso-login", Single},
	{"synchrotron", Scalable},
	{"typing-persister", Single},
	{"user-dir", Single},
}

// SynapseWorkers returns every kind of Synapse worker.
func SynapseWorkers() []Worker {
	return append([]Worker{}, synapseWorkers...)
}

// synapseProcessProperties are shared by every process running Synapse and are only written
// under the main process.
var synapseProcessProperties = []values.PropertyType{
	values.AdditionalConfig,
	values.Env,
	values.Volumes,
	values.VolumeMounts,
	values.HostAliases,
	values.Image,
	values.Labels,
	values.NodeSelector,
	values.PodSecurityContext,
	values.ServiceAccount,
	values.ServiceMonitor,
	values.Tolerations,
	values.TopologySpreadConstraints,
}

// readFromSynapse reads each of properties from the main Synapse process. The ServiceMonitor
// setting is singular there.
func readFromSynapse(overrides map[values.PropertyType]values.Path, properties ...values.PropertyType) map[values.PropertyType]values.Path {
	for _, p := range properties {
		key := p.Key()
		if p == values.ServiceMonitor {
			key = "serviceMonitor"
		}
		overrides[p] = values.ReadElsewhere("synapse", key)
	}
	return overrides
}

func synapseMounts() map[string][]string {
	return map[string][]string{"synapse": {"/tmp"}}
}

func mediaContent() map[string][]string {
	return map[string][]string{"/media": {"media_store"}}
}

func newSynapseWorker(w Worker) *deployable.SubComponent {
	return deployable.NewSubComponent("synapse-"+w.Name, deployable.Options{
		ValuesPath:               readWrite("synapse", "workers", w.Name),
		Overrides:                readFromSynapse(map[values.PropertyType]values.Path{}, synapseProcessProperties...),
		HasIngress:               pointer.Bool(false),
		IsSynapseProcess:         true,
		HasReplicas:              pointer.Bool(w.Type == Scalable),
		HasMountContext:          pointer.Bool(true),
		IgnoreUnreferencedMounts: synapseMounts(),
		ContentVolumesMapping:    mediaContent(),
	})
}

func newSynapse() *deployable.Component {
	var subs []*deployable.SubComponent
	for _, w := range synapseWorkers {
		subs = append(subs, newSynapseWorker(w))
	}
	subs = append(subs,
		deployable.NewSubComponent("synapse-redis", deployable.Options{
			ValuesPath:            readWrite("synapse", "redis"),
			HasAdditionalConfig:   pointer.Bool(false),
			HasIngress:            pointer.Bool(false),
			HasServiceMonitor:     pointer.Bool(false),
			HasReplicas:           pointer.Bool(false),
			MakesOutboundRequests: pointer.Bool(false),
		}),
		deployable.NewSubComponent("synapse-check-config", deployable.Options{
			ValuesPath: readWrite("synapse", "checkConfigHook"),
			Overrides: readFromSynapse(jobProbes(),
				values.AdditionalConfig,
				values.Env,
				values.Volumes,
				values.VolumeMounts,
				values.Image,
				values.NodeSelector,
				values.PodSecurityContext,
				values.Resources,
				values.ServiceMonitor,
				values.Tolerations,
				values.TopologySpreadConstraints,
			),
			HasIngress:               pointer.Bool(false),
			HasServiceMonitor:        pointer.Bool(false),
			HasReplicas:              pointer.Bool(false),
			IsHook:                   true,
			MakesOutboundRequests:    pointer.Bool(false),
			IgnoreUnreferencedMounts: synapseMounts(),
			ContentVolumesMapping:    mediaContent(),
		}),
	)

	return deployable.NewComponent("synapse", deployable.ComponentOptions{
		Options: deployable.Options{
			Overrides: map[values.PropertyType]values.Path{
				values.Storage: values.ReadWrite("synapse", "media", "storage"),
			},
			HasDB:                       true,
			HasStorage:                  true,
			HasReplicas:                 pointer.Bool(false),
			IsSynapseProcess:            true,
			HasMountContext:             pointer.Bool(true),
			SkipPathConsistencyForFiles: []string{"path_map_file", "path_map_file_get"},
			IgnoreUnreferencedMounts:    synapseMounts(),
			ContentVolumesMapping:       mediaContent(),
		},
		SubComponents:         subs,
		AdditionalValuesFiles: []string{"synapse-worker-example-values.yaml"},
	})
}
