package deployable

import (
	"github.com/element-hq/ess-helm-deployables/pkg/status"
	"k8s.io/klog/v2"
)

// ReparentedErrorCode is the error code for a deployable attached to more than one owner.
const ReparentedErrorCode = "2003"

var reparentedError = status.NewErrorBuilder(ReparentedErrorCode)

// ReparentedError reports that child is owned by both of the named deployables.
func ReparentedError(child, owner, other string) status.Error {
	return reparentedError.Sprintf("%q is owned by %q and can't also be owned by %q", child, owner, other).
		BuildWithDeployables(child, owner, other)
}

// Link establishes the ownership links of the tree rooted at c and propagates the flags derived
// from them. It must run after every node of the tree has been constructed and before the tree is
// queried. Linking the same tree again is a no-op.
func Link(c *Component) status.MultiError {
	var errs status.MultiError
	for _, sub := range c.subComponents {
		errs = status.Append(errs, sub.linkTo(c))
		for _, s := range sub.sidecars {
			errs = status.Append(errs, s.linkTo(sub))
		}
	}
	for _, s := range c.sidecars {
		errs = status.Append(errs, s.linkTo(c))
	}
	return errs
}

func (s *SubComponent) linkTo(owner *Component) status.Error {
	if s.owner != nil && s.owner != owner {
		return ReparentedError(s.Name(), s.owner.Name(), owner.Name())
	}
	if s.owner == nil {
		klog.V(2).Infof("linking sub-component %q to %q", s.Name(), owner.Name())
	}
	s.owner = owner
	return nil
}

func (s *Sidecar) linkTo(parent Deployable) status.Error {
	if s.parent != nil && s.parent != parent {
		return ReparentedError(s.Name(), s.parent.Name(), parent.Name())
	}
	if s.parent == nil {
		klog.V(2).Infof("linking sidecar %q to %q", s.Name(), parent.Name())
	}
	s.parent = parent

	// The parent Pod needs host alias support for the sidecar's requests even if the parent
	// container makes none. The sidecar has no Pod-level properties so the flag moves to the parent.
	if s.MakesOutboundRequests {
		klog.V(1).Infof("sidecar %q makes outbound requests, so %q must support them", s.Name(), parent.Name())
		parent.DeployableDetails().MakesOutboundRequests = true
		s.MakesOutboundRequests = false
	}
	return nil
}
