package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

func TestIDOf(t *testing.T) {
	for _, tc := range []struct {
		name       string
		apiVersion string
		kind       string
		namespace  string
		objName    string
		want       ID
		wantString string
	}{
		{
			name:       "namespaced",
			apiVersion: "apps/v1",
			kind:       "Deployment",
			namespace:  "ess",
			objName:    "ess-synapse-main",
			want: ID{
				GroupKind: schema.GroupKind{Group: "apps", Kind: "Deployment"},
				ObjectKey: client.ObjectKey{Namespace: "ess", Name: "ess-synapse-main"},
			},
			wantString: "Deployment.apps, ess/ess-synapse-main",
		},
		{
			name:       "core group without namespace",
			apiVersion: "v1",
			kind:       "ConfigMap",
			objName:    "ess-element-web",
			want: ID{
				GroupKind: schema.GroupKind{Kind: "ConfigMap"},
				ObjectKey: client.ObjectKey{Name: "ess-element-web"},
			},
			wantString: "ConfigMap, ess-element-web",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			u := unstructured.Unstructured{}
			u.SetAPIVersion(tc.apiVersion)
			u.SetKind(tc.kind)
			u.SetNamespace(tc.namespace)
			u.SetName(tc.objName)

			got := IDOfUnstructured(u)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Error(diff)
			}
			if got.String() != tc.wantString {
				t.Errorf("String() = %q, want %q", got.String(), tc.wantString)
			}
		})
	}
}
