package manifest

import (
	"github.com/element-hq/ess-helm-deployables/pkg/core"
	"github.com/element-hq/ess-helm-deployables/pkg/deployable"
	"github.com/element-hq/ess-helm-deployables/pkg/status"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/klog/v2"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// UnownedContainerErrorCode is the error code for a container the owner of its manifest doesn't
// claim.
const UnownedContainerErrorCode = "2008"

var unownedContainerError = status.NewErrorBuilder(UnownedContainerErrorCode)

// UnownedContainerError reports that the deployable owning id doesn't own the named container.
func UnownedContainerError(id core.ID, container, owner string) status.Error {
	return unownedContainerError.Sprintf("container %q of %s is not owned by %q, which owns the manifest",
		container, id, owner).BuildWithDeployables(owner)
}

// Owners finds the deployable owning a rendered object.
type Owners interface {
	OwnerOfObject(obj client.Object, release string) (deployable.Deployable, status.Error)
}

// Attribution is the deployable owning a rendered object and those owning each of its
// containers.
type Attribution struct {
	ID    core.ID
	Owner deployable.Deployable
	// Containers maps the name of each container and init container to its owner. Nil for
	// objects that aren't workloads.
	Containers map[string]deployable.Deployable
}

// Attribute finds the owner of every object in objs, and of every container they run. Objects
// that can't be attributed are reported and left out of the result.
func Attribute(owners Owners, objs []*unstructured.Unstructured, release string) ([]Attribution, status.MultiError) {
	var result []Attribution
	var errs status.MultiError
	for _, obj := range objs {
		a, err := attribute(owners, obj, release)
		if err != nil {
			errs = status.Append(errs, err)
			continue
		}
		result = append(result, a)
	}
	return result, errs
}

func attribute(owners Owners, obj *unstructured.Unstructured, release string) (Attribution, status.MultiError) {
	id := core.IDOfUnstructured(*obj)
	owner, err := owners.OwnerOfObject(obj, release)
	if err != nil {
		return Attribution{}, status.Append(nil, err)
	}
	klog.V(4).Infof("%s is owned by %q", id, owner.Name())

	names, cErr := Containers(obj)
	if cErr != nil {
		return Attribution{}, status.Append(nil, cErr)
	}
	a := Attribution{ID: id, Owner: owner}
	if names == nil {
		return a, nil
	}

	var errs status.MultiError
	a.Containers = make(map[string]deployable.Deployable, len(names))
	for _, name := range names {
		containerOwner := owner.ContainerOwner(name)
		if containerOwner == nil {
			errs = status.Append(errs, UnownedContainerError(id, name, owner.Name()))
			continue
		}
		a.Containers[name] = containerOwner
	}
	if errs != nil {
		return Attribution{}, errs
	}
	return a, nil
}
