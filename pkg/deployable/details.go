package deployable

import (
	"github.com/element-hq/ess-helm-deployables/pkg/values"
	"k8s.io/utils/pointer"
)

// Options configure a new deployable. Fields left nil take the defaults derived from the others
// when the deployable is constructed.
type Options struct {
	// ValuesPath is where the deployable's properties are rooted in the values. The PropertyType
	// key finishes off the path. Defaults to values.ReadWrite(name).
	ValuesPath *values.Path
	// Overrides replace the path for specific PropertyTypes.
	Overrides map[values.PropertyType]values.Path

	// HasAdditionalConfig defaults to HasWorkloads.
	HasAdditionalConfig *bool
	HasDB               bool
	// HasImage defaults to HasWorkloads.
	HasImage *bool
	// HasIngress defaults to true.
	HasIngress                      *bool
	HasAutomountServiceAccountToken bool
	// HasWorkloads defaults to true.
	HasWorkloads *bool
	// HasReplicas defaults to HasWorkloads.
	HasReplicas *bool
	// HasServiceMonitor defaults to HasWorkloads.
	HasServiceMonitor *bool
	HasStorage        bool
	// MakesOutboundRequests defaults to HasWorkloads.
	MakesOutboundRequests *bool
	IsHook                bool
	// HasMountContext defaults to IsHook.
	HasMountContext  *bool
	IsSynapseProcess bool

	// IgnoreUnreferencedMounts lists, per container, mount points not expected to be referenced in
	// commands or configs.
	IgnoreUnreferencedMounts map[string][]string
	// IgnorePathsMismatches lists, per container, paths found in configuration that don't match a
	// mount point.
	IgnorePathsMismatches map[string][]string
	// SkipPathConsistencyForFiles are files whose paths aren't checked against mounts at all.
	SkipPathConsistencyForFiles []string
	// ContentVolumesMapping lists, per mount path, files present even though no template creates
	// them.
	ContentVolumesMapping map[string][]string
}

// Details is the capability record shared by every kind of deployable.
//
// Only the name identifies a deployable. The flags are fixed once the forest has been linked.
type Details struct {
	name string

	ValuesPath values.Path
	Overrides  map[values.PropertyType]values.Path

	HasAdditionalConfig             bool
	HasDB                           bool
	HasImage                        bool
	HasIngress                      bool
	HasAutomountServiceAccountToken bool
	HasWorkloads                    bool
	HasReplicas                     bool
	HasServiceMonitor               bool
	HasStorage                      bool
	MakesOutboundRequests           bool
	IsHook                          bool
	HasMountContext                 bool
	IsSynapseProcess                bool

	IgnoreUnreferencedMounts    map[string][]string
	IgnorePathsMismatches       map[string][]string
	SkipPathConsistencyForFiles []string
	ContentVolumesMapping       map[string][]string
}

func newDetails(name string, opts Options) Details {
	hasWorkloads := pointer.BoolDeref(opts.HasWorkloads, true)

	d := Details{
		name:       name,
		ValuesPath: values.ReadWrite(name),
		Overrides:  make(map[values.PropertyType]values.Path, len(opts.Overrides)),

		HasAdditionalConfig:             pointer.BoolDeref(opts.HasAdditionalConfig, hasWorkloads),
		HasDB:                           opts.HasDB,
		HasImage:                        pointer.BoolDeref(opts.HasImage, hasWorkloads),
		HasIngress:                      pointer.BoolDeref(opts.HasIngress, true),
		HasAutomountServiceAccountToken: opts.HasAutomountServiceAccountToken,
		HasWorkloads:                    hasWorkloads,
		HasReplicas:                     pointer.BoolDeref(opts.HasReplicas, hasWorkloads),
		HasServiceMonitor:               pointer.BoolDeref(opts.HasServiceMonitor, hasWorkloads),
		HasStorage:                      opts.HasStorage,
		MakesOutboundRequests:           pointer.BoolDeref(opts.MakesOutboundRequests, hasWorkloads),
		IsHook:                          opts.IsHook,
		HasMountContext:                 pointer.BoolDeref(opts.HasMountContext, opts.IsHook),
		IsSynapseProcess:                opts.IsSynapseProcess,

		IgnoreUnreferencedMounts:    copyStringsMap(opts.IgnoreUnreferencedMounts),
		IgnorePathsMismatches:       copyStringsMap(opts.IgnorePathsMismatches),
		SkipPathConsistencyForFiles: append([]string{}, opts.SkipPathConsistencyForFiles...),
		ContentVolumesMapping:       copyStringsMap(opts.ContentVolumesMapping),
	}
	if opts.ValuesPath != nil {
		d.ValuesPath = *opts.ValuesPath
	}
	for p, path := range opts.Overrides {
		d.Overrides[p] = path
	}
	return d
}

// Name returns the name of the deployable, unique within a registry.
func (d *Details) Name() string {
	return d.name
}

// DeployableDetails returns the capability record.
func (d *Details) DeployableDetails() *Details {
	return d
}

// ValuesFilePath returns the path through the values to the PropertyType for this deployable. The
// path may be readable and writable, one of those, or neither.
func (d *Details) ValuesFilePath(p values.PropertyType) values.Path {
	if override, found := d.Overrides[p]; found {
		return override
	}
	return d.ValuesPath.WithPropertyType(p)
}

// Get returns the configured value of the PropertyType for this deployable. See values.Get for
// the semantics: the boolean is false when the deployable can't configure the PropertyType, and
// missing structure is created in v.
func (d *Details) Get(v values.Values, p values.PropertyType, defaultValue interface{}) (interface{}, bool, error) {
	return values.Get(v, d.ValuesFilePath(p), defaultValue)
}

// Set sets value for the PropertyType of this deployable. It silently does nothing if the
// deployable can't set the PropertyType itself.
func (d *Details) Set(v values.Values, p values.PropertyType, value interface{}) error {
	return values.Set(v, d.ValuesFilePath(p), value)
}

func copyStringsMap(m map[string][]string) map[string][]string {
	result := make(map[string][]string, len(m))
	for k, v := range m {
		result[k] = append([]string{}, v...)
	}
	return result
}
