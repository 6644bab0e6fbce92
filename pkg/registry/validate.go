package registry

import (
	"github.com/element-hq/ess-helm-deployables/pkg/deployable"
	"github.com/element-hq/ess-helm-deployables/pkg/status"
	"k8s.io/apimachinery/pkg/util/validation"
)

// validate checks that the Registry's names can prefix object names and that ownership of
// manifests is a partition, at least for manifests named exactly after a deployable.
//
// Every Component and SubComponent must be the only claimant of its own name. A Sidecar yields
// its name to its parent, so it only needs exactly one claimant.
func validate(r *Registry) status.MultiError {
	var errs status.MultiError
	for _, d := range r.All() {
		errs = status.Append(errs, validName(d))
		errs = status.Append(errs, ownsOwnName(r, d))
	}
	return errs
}

func validName(d deployable.Deployable) status.Error {
	if problems := validation.IsDNS1123Label(d.Name()); len(problems) > 0 {
		return InvalidNameError(d.Name(), problems)
	}
	return nil
}

func ownsOwnName(r *Registry, d deployable.Deployable) status.Error {
	owner, err := r.OwnerOfManifest(d.Name())
	switch {
	case err != nil:
		return err
	case deployable.KindOf(d) == deployable.SidecarKind:
		return nil
	case owner != d:
		return AmbiguousOwnerError(d.Name(), []string{d.Name(), owner.Name()})
	default:
		return nil
	}
}
