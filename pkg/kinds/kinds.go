package kinds

import (
	appsv1 "k8s.io/api/apps/v1"
	batchv1 "k8s.io/api/batch/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// Deployment returns the canonical Deployment GroupVersionKind
func Deployment() schema.GroupVersionKind {
	return appsv1.SchemeGroupVersion.WithKind("Deployment")
}

// StatefulSet returns the canonical StatefulSet GroupVersionKind
func StatefulSet() schema.GroupVersionKind {
	return appsv1.SchemeGroupVersion.WithKind("StatefulSet")
}

// DaemonSet returns the canonical DaemonSet GroupVersionKind
func DaemonSet() schema.GroupVersionKind {
	return appsv1.SchemeGroupVersion.WithKind("DaemonSet")
}

// Job returns the canonical Job GroupVersionKind
func Job() schema.GroupVersionKind {
	return batchv1.SchemeGroupVersion.WithKind("Job")
}

// Workloads returns the GroupKinds of objects that run Pods from a template.
func Workloads() []schema.GroupKind {
	return []schema.GroupKind{
		Deployment().GroupKind(),
		StatefulSet().GroupKind(),
		DaemonSet().GroupKind(),
		Job().GroupKind(),
	}
}
