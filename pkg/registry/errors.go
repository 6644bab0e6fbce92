package registry

import (
	"strings"

	"github.com/element-hq/ess-helm-deployables/pkg/status"
)

// DuplicateNameErrorCode is the error code for distinct deployables sharing a name.
const DuplicateNameErrorCode = "2002"

var duplicateNameError = status.NewErrorBuilder(DuplicateNameErrorCode)

// DuplicateNameError reports that more than one distinct deployable is called name.
func DuplicateNameError(name string) status.Error {
	return duplicateNameError.Sprintf("more than one deployable is named %q and names must be unique", name).
		BuildWithDeployables(name)
}

// UnownedManifestErrorCode is the error code for a rendered manifest no deployable claims.
const UnownedManifestErrorCode = "2004"

var unownedManifestError = status.NewErrorBuilder(UnownedManifestErrorCode)

// UnownedManifestError reports that no deployable claims the manifest.
func UnownedManifestError(manifestName string) status.Error {
	return unownedManifestError.Sprintf("no deployable owns the manifest %q", manifestName).Build()
}

// AmbiguousOwnerErrorCode is the error code for a manifest name claimed by more than one
// deployable.
const AmbiguousOwnerErrorCode = "2005"

var ambiguousOwnerError = status.NewErrorBuilder(AmbiguousOwnerErrorCode)

// AmbiguousOwnerError reports that every one of owners claims the manifest.
func AmbiguousOwnerError(manifestName string, owners []string) status.Error {
	return ambiguousOwnerError.Sprintf("the manifest %q is claimed by %d deployables: %s",
		manifestName, len(owners), strings.Join(owners, ", ")).
		BuildWithDeployables(owners...)
}

// InvalidNameErrorCode is the error code for a deployable name that can't prefix Kubernetes
// object names.
const InvalidNameErrorCode = "2006"

var invalidNameError = status.NewErrorBuilder(InvalidNameErrorCode)

// InvalidNameError reports that name is not a valid DNS-1123 label.
func InvalidNameError(name string, problems []string) status.Error {
	return invalidNameError.Sprintf("deployable names must be valid DNS-1123 labels: %s",
		strings.Join(problems, "; ")).
		BuildWithDeployables(name)
}
