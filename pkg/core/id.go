package core

import (
	"fmt"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// ID uniquely identifies a rendered object.
type ID struct {
	schema.GroupKind
	client.ObjectKey
}

// IDOf returns the ID of a rendered object.
func IDOf(o client.Object) ID {
	return ID{
		GroupKind: o.GetObjectKind().GroupVersionKind().GroupKind(),
		ObjectKey: client.ObjectKeyFromObject(o),
	}
}

// IDOfUnstructured returns the ID of an unstructured object
func IDOfUnstructured(u unstructured.Unstructured) ID {
	return IDOf(&u)
}

// String implements fmt.Stringer.
func (i ID) String() string {
	if i.Namespace == "" {
		return fmt.Sprintf("%s, %s", i.GroupKind.String(), i.Name)
	}
	return fmt.Sprintf("%s, %s/%s", i.GroupKind.String(), i.Namespace, i.Name)
}
