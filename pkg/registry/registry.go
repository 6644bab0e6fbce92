// Package registry flattens the forest of deployables into a single read-only collection and
// answers which deployable owns a rendered manifest or container.
package registry

import (
	"sort"
	"strings"

	"github.com/element-hq/ess-helm-deployables/pkg/deployable"
	"github.com/element-hq/ess-helm-deployables/pkg/status"
	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/klog/v2"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// Registry is the set of every deployable reachable from its Components, keyed by name.
//
// A Registry is immutable in shape once New returns and may be shared between goroutines. The
// values passed to the deployables it returns are not, see values.Get.
type Registry struct {
	components []*deployable.Component
	byName     map[string]deployable.Deployable
	// names is sorted.
	names []string

	valuesFiles         []string
	secretValuesFiles   []string
	servicesValuesFiles []string
}

// New links the forest rooted at components, flattens it and validates the result.
//
// Flattening visits each Component, then its SubComponents each followed by their Sidecars, then
// the Component's own Sidecars. A deployable reached twice is only kept once.
func New(components []*deployable.Component, opts ...Option) (*Registry, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	r := &Registry{
		components: append([]*deployable.Component{}, components...),
		byName:     make(map[string]deployable.Deployable),
	}

	var errs status.MultiError
	for _, c := range r.components {
		errs = status.Append(errs, deployable.Link(c))
	}
	duplicates := sets.NewString()
	for _, c := range r.components {
		r.flatten(c, duplicates)
	}
	for _, name := range duplicates.List() {
		errs = status.Append(errs, DuplicateNameError(name))
	}
	if errs != nil {
		return nil, errs
	}

	r.names = make([]string, 0, len(r.byName))
	for name := range r.byName {
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)

	if errs := validate(r); errs != nil {
		return nil, errs
	}

	values := sets.NewString(o.extraValuesFiles...)
	secrets := sets.NewString(o.extraSecretValuesFiles...)
	for _, c := range r.components {
		values.Insert(c.ValuesFiles()...)
		secrets.Insert(c.SecretValuesFiles()...)
	}
	r.valuesFiles = values.List()
	r.secretValuesFiles = secrets.List()
	r.servicesValuesFiles = values.Union(sets.NewString(o.extraServicesValuesFiles...)).List()

	klog.V(2).Infof("registry has %d deployables from %d components", len(r.names), len(r.components))
	return r, nil
}

func (r *Registry) flatten(c *deployable.Component, duplicates sets.String) {
	r.add(c, duplicates)
	for _, sub := range c.SubComponents() {
		r.add(sub, duplicates)
		for _, s := range sub.Sidecars() {
			r.add(s, duplicates)
		}
	}
	for _, s := range c.Sidecars() {
		r.add(s, duplicates)
	}
}

func (r *Registry) add(d deployable.Deployable, duplicates sets.String) {
	existing, found := r.byName[d.Name()]
	switch {
	case !found:
		klog.V(4).Infof("adding %s %q", deployable.KindOf(d), d.Name())
		r.byName[d.Name()] = d
	case existing != d:
		duplicates.Insert(d.Name())
	}
}

// Components returns the top-level deployables the Registry was built from, in the order passed.
func (r *Registry) Components() []*deployable.Component {
	return r.components
}

// All returns every deployable sorted by name.
func (r *Registry) All() []deployable.Deployable {
	result := make([]deployable.Deployable, len(r.names))
	for i, name := range r.names {
		result[i] = r.byName[name]
	}
	return result
}

// Names returns the name of every deployable, sorted.
func (r *Registry) Names() []string {
	return append([]string{}, r.names...)
}

// Get returns the deployable with the passed name.
func (r *Registry) Get(name string) (deployable.Deployable, bool) {
	d, found := r.byName[name]
	return d, found
}

// Len returns the number of deployables.
func (r *Registry) Len() int {
	return len(r.names)
}

// ForEach calls visit with every deployable matching all of filters, in name order, and returns
// the errors visit returned.
func (r *Registry) ForEach(visit Visitor, filters ...Filter) status.MultiError {
	var errs status.MultiError
	for _, name := range r.names {
		d := r.byName[name]
		if matches(d, filters) {
			errs = status.Append(errs, visit(d))
		}
	}
	return errs
}

// ValuesFiles returns the values files of every Component plus the extra scenario files, sorted.
func (r *Registry) ValuesFiles() []string {
	return r.valuesFiles
}

// SecretValuesFiles returns the secrets values files of every Component plus the extra scenario
// files, sorted.
func (r *Registry) SecretValuesFiles() []string {
	return r.secretValuesFiles
}

// ServicesValuesFiles returns ValuesFiles plus the files exposing services, sorted.
func (r *Registry) ServicesValuesFiles() []string {
	return r.servicesValuesFiles
}

// OwnerOfManifest returns the single deployable claiming the manifest name.
func (r *Registry) OwnerOfManifest(manifestName string) (deployable.Deployable, status.Error) {
	claimants := r.claimants(manifestName)
	switch len(claimants) {
	case 0:
		return nil, UnownedManifestError(manifestName)
	case 1:
		return claimants[0], nil
	default:
		names := make([]string, len(claimants))
		for i, d := range claimants {
			names[i] = d.Name()
		}
		return nil, AmbiguousOwnerError(manifestName, names)
	}
}

// OwnerOfObject returns the deployable owning a rendered object. Objects are named after their
// deployable, prefixed with the name of the Helm release.
func (r *Registry) OwnerOfObject(obj client.Object, release string) (deployable.Deployable, status.Error) {
	return r.OwnerOfManifest(ManifestName(obj.GetName(), release))
}

// OwnerOfContainer returns the deployable owning the named container in the named manifest.
func (r *Registry) OwnerOfContainer(manifestName, containerName string) (deployable.Deployable, status.Error) {
	owner, err := r.OwnerOfManifest(manifestName)
	if err != nil {
		return nil, err
	}
	if container := owner.ContainerOwner(containerName); container != nil {
		return container, nil
	}
	return owner, nil
}

// ManifestName strips the release prefix from an object name.
func ManifestName(objectName, release string) string {
	if release == "" {
		return objectName
	}
	return strings.TrimPrefix(objectName, release+"-")
}

func (r *Registry) claimants(manifestName string) []deployable.Deployable {
	var result []deployable.Deployable
	for _, name := range r.names {
		if d := r.byName[name]; d.OwnsManifest(manifestName) {
			result = append(result, d)
		}
	}
	return result
}
