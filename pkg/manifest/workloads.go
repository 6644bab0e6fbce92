package manifest

import (
	"github.com/element-hq/ess-helm-deployables/pkg/kinds"
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
)

// IsWorkload returns true if u runs Pods from a Pod template.
func IsWorkload(u *unstructured.Unstructured) bool {
	gk := u.GroupVersionKind().GroupKind()
	for _, workload := range kinds.Workloads() {
		if gk == workload {
			return true
		}
	}
	return false
}

// PodTemplate returns the Pod template of a workload, or nil for any other object.
func PodTemplate(u *unstructured.Unstructured) (*corev1.PodTemplateSpec, error) {
	if !IsWorkload(u) {
		return nil, nil
	}
	template, found, err := unstructured.NestedMap(u.Object, "spec", "template")
	if err != nil {
		return nil, ParseError(errors.Wrapf(err, "%s %q", u.GetKind(), u.GetName()))
	}
	if !found {
		return nil, ParseError(errors.Errorf("%s %q has no Pod template", u.GetKind(), u.GetName()))
	}

	result := &corev1.PodTemplateSpec{}
	if err := runtime.DefaultUnstructuredConverter.FromUnstructured(template, result); err != nil {
		return nil, ParseError(errors.Wrapf(err, "%s %q", u.GetKind(), u.GetName()))
	}
	return result, nil
}

// Containers returns the names of the containers, then the init containers, a workload runs.
// Other objects have none.
func Containers(u *unstructured.Unstructured) ([]string, error) {
	template, err := PodTemplate(u)
	if err != nil || template == nil {
		return nil, err
	}

	var names []string
	for _, c := range template.Spec.Containers {
		names = append(names, c.Name)
	}
	for _, c := range template.Spec.InitContainers {
		names = append(names, c.Name)
	}
	return names, nil
}
