package registry

import (
	"testing"

	"github.com/element-hq/ess-helm-deployables/pkg/deployable"
	"github.com/element-hq/ess-helm-deployables/pkg/status"
	"github.com/google/go-cmp/cmp"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/utils/pointer"
)

func forest() []*deployable.Component {
	return []*deployable.Component{
		deployable.NewComponent("postgres", deployable.ComponentOptions{
			Options:  deployable.Options{HasReplicas: pointer.Bool(false), HasIngress: pointer.Bool(false)},
			Sidecars: []*deployable.Sidecar{deployable.NewSidecar("postgres-exporter", deployable.Options{})},
			IsShared: true,
		}),
		deployable.NewComponent("synapse", deployable.ComponentOptions{
			Options: deployable.Options{HasDB: true, HasReplicas: pointer.Bool(false)},
			SubComponents: []*deployable.SubComponent{
				deployable.NewSubComponent("synapse-redis", deployable.Options{HasIngress: pointer.Bool(false)}),
				deployable.NewSubComponent("synapse-pusher", deployable.Options{HasIngress: pointer.Bool(false)}),
			},
			AdditionalValuesFiles: []string{"synapse-worker-example-values.yaml"},
		}),
		deployable.NewComponent("well-known", deployable.ComponentOptions{
			Options:        deployable.Options{HasWorkloads: pointer.Bool(false)},
			HasCredentials: pointer.Bool(false),
		}),
	}
}

func newRegistry(t *testing.T, opts ...Option) *Registry {
	t.Helper()
	r, err := New(forest(), opts...)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	return r
}

func names(ds []deployable.Deployable) []string {
	var result []string
	for _, d := range ds {
		result = append(result, d.Name())
	}
	return result
}

func TestFlatten(t *testing.T) {
	r := newRegistry(t)

	want := []string{"postgres", "postgres-exporter", "synapse", "synapse-pusher", "synapse-redis", "well-known"}
	if diff := cmp.Diff(want, names(r.All())); diff != "" {
		t.Errorf("All() (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, r.Names()); diff != "" {
		t.Errorf("Names() (-want +got):\n%s", diff)
	}
	if r.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", r.Len(), len(want))
	}
	if len(r.Components()) != 3 {
		t.Errorf("len(Components()) = %d, want 3", len(r.Components()))
	}

	d, found := r.Get("postgres-exporter")
	if !found {
		t.Fatal("Get(postgres-exporter) not found")
	}
	if deployable.ParentOf(d).Name() != "postgres" {
		t.Errorf("ParentOf(postgres-exporter) = %q, want postgres", deployable.ParentOf(d).Name())
	}
	if _, found := r.Get("haproxy"); found {
		t.Error("Get(haproxy) found, want not found")
	}
}

func TestNewDeduplicatesSameDeployable(t *testing.T) {
	redis := deployable.NewSubComponent("synapse-redis", deployable.Options{})
	synapse := deployable.NewComponent("synapse", deployable.ComponentOptions{
		SubComponents: []*deployable.SubComponent{redis, redis},
	})

	r, err := New([]*deployable.Component{synapse, synapse})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"synapse", "synapse-redis"}, r.Names()); diff != "" {
		t.Error(diff)
	}
}

func TestNewErrors(t *testing.T) {
	for _, tc := range []struct {
		name       string
		components func() []*deployable.Component
		wantCode   string
	}{
		{
			name: "distinct deployables share a name",
			components: func() []*deployable.Component {
				return []*deployable.Component{
					deployable.NewComponent("synapse", deployable.ComponentOptions{}),
					deployable.NewComponent("synapse", deployable.ComponentOptions{}),
				}
			},
			wantCode: DuplicateNameErrorCode,
		},
		{
			name: "sidecar shared by two parents",
			components: func() []*deployable.Component {
				exporter := deployable.NewSidecar("exporter", deployable.Options{})
				return []*deployable.Component{
					deployable.NewComponent("postgres", deployable.ComponentOptions{Sidecars: []*deployable.Sidecar{exporter}}),
					deployable.NewComponent("haproxy", deployable.ComponentOptions{Sidecars: []*deployable.Sidecar{exporter}}),
				}
			},
			wantCode: deployable.ReparentedErrorCode,
		},
		{
			name: "sibling names prefix one another",
			components: func() []*deployable.Component {
				return []*deployable.Component{
					deployable.NewComponent("synapse", deployable.ComponentOptions{}),
					deployable.NewComponent("synapse-admin", deployable.ComponentOptions{}),
				}
			},
			wantCode: AmbiguousOwnerErrorCode,
		},
		{
			name: "sub-component names prefix one another",
			components: func() []*deployable.Component {
				return []*deployable.Component{
					deployable.NewComponent("synapse", deployable.ComponentOptions{
						SubComponents: []*deployable.SubComponent{
							deployable.NewSubComponent("synapse-push", deployable.Options{}),
							deployable.NewSubComponent("synapse-pusher", deployable.Options{}),
						},
					}),
				}
			},
			wantCode: AmbiguousOwnerErrorCode,
		},
		{
			name: "sub-component not named after its component",
			components: func() []*deployable.Component {
				return []*deployable.Component{
					deployable.NewComponent("matrix-rtc", deployable.ComponentOptions{
						SubComponents: []*deployable.SubComponent{deployable.NewSubComponent("matrix", deployable.Options{})},
					}),
				}
			},
			wantCode: AmbiguousOwnerErrorCode,
		},
		{
			name: "name is not a DNS label",
			components: func() []*deployable.Component {
				return []*deployable.Component{deployable.NewComponent("Element_Web", deployable.ComponentOptions{})}
			},
			wantCode: InvalidNameErrorCode,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r, err := New(tc.components())
			if r != nil {
				t.Error("New() returned a Registry with an error")
			}
			if !status.HasCode(err, tc.wantCode) {
				t.Errorf("New() = %v, want error with code %s", err, tc.wantCode)
			}
		})
	}
}

func TestValuesFiles(t *testing.T) {
	r := newRegistry(t,
		ExtraValuesFiles("example-default-enabled-components-values.yaml", "synapse-minimal-values.yaml"),
		ExtraSecretValuesFiles("synapse-syn2mas-secrets-in-helm-values.yaml"),
		ExtraServicesValuesFiles("matrix-rtc-host-mode-values.yaml"),
	)

	wantValues := []string{
		"example-default-enabled-components-values.yaml",
		"synapse-minimal-values.yaml",
		"synapse-worker-example-values.yaml",
		"well-known-minimal-values.yaml",
	}
	if diff := cmp.Diff(wantValues, r.ValuesFiles()); diff != "" {
		t.Errorf("ValuesFiles() (-want +got):\n%s", diff)
	}

	wantSecrets := []string{
		"synapse-postgres-secrets-externally-values.yaml",
		"synapse-postgres-secrets-in-helm-values.yaml",
		"synapse-secrets-externally-values.yaml",
		"synapse-secrets-in-helm-values.yaml",
		"synapse-syn2mas-secrets-in-helm-values.yaml",
	}
	if diff := cmp.Diff(wantSecrets, r.SecretValuesFiles()); diff != "" {
		t.Errorf("SecretValuesFiles() (-want +got):\n%s", diff)
	}

	wantServices := []string{
		"example-default-enabled-components-values.yaml",
		"matrix-rtc-host-mode-values.yaml",
		"synapse-minimal-values.yaml",
		"synapse-worker-example-values.yaml",
		"well-known-minimal-values.yaml",
	}
	if diff := cmp.Diff(wantServices, r.ServicesValuesFiles()); diff != "" {
		t.Errorf("ServicesValuesFiles() (-want +got):\n%s", diff)
	}
}

func TestForEach(t *testing.T) {
	r := newRegistry(t)

	for _, tc := range []struct {
		name    string
		filters []Filter
		want    []string
	}{
		{
			name: "all",
			want: []string{"postgres", "postgres-exporter", "synapse", "synapse-pusher", "synapse-redis", "well-known"},
		},
		{
			name:    "replicas",
			filters: []Filter{WithReplicas},
			want:    []string{"synapse-pusher", "synapse-redis"},
		},
		{
			name:    "ingress",
			filters: []Filter{WithIngress},
			want:    []string{"postgres-exporter", "synapse", "well-known"},
		},
		{
			name:    "workloads without ingress",
			filters: []Filter{WithWorkloads, func(d deployable.Deployable) bool { return !WithIngress(d) }},
			want:    []string{"postgres", "synapse-pusher", "synapse-redis"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var got []string
			errs := r.ForEach(func(d deployable.Deployable) status.Error {
				got = append(got, d.Name())
				return nil
			}, tc.filters...)
			if errs != nil {
				t.Fatal(errs)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestForEachCollectsErrors(t *testing.T) {
	r := newRegistry(t)
	errs := r.ForEach(func(d deployable.Deployable) status.Error {
		return status.UndocumentedErrorf("%s failed", d.Name())
	}, WithReplicas)
	if got := len(errs.Errors()); got != 2 {
		t.Errorf("got %d errors, want 2: %v", got, errs)
	}
}

func TestParseFilter(t *testing.T) {
	for _, name := range FilterNames() {
		if _, ok := ParseFilter(name); !ok {
			t.Errorf("ParseFilter(%q) not ok", name)
		}
	}
	if _, ok := ParseFilter("storage"); ok {
		t.Error("ParseFilter(storage) ok, want not ok")
	}
}

func TestOwnerOfManifest(t *testing.T) {
	r := newRegistry(t)

	for _, tc := range []struct {
		manifest string
		want     string
		wantCode string
	}{
		{manifest: "synapse-main", want: "synapse"},
		{manifest: "synapse-redis", want: "synapse-redis"},
		{manifest: "synapse-pusher-0", want: "synapse-pusher"},
		{manifest: "postgres-exporter", want: "postgres"},
		{manifest: "well-known-haproxy", want: "well-known"},
		{manifest: "haproxy", wantCode: UnownedManifestErrorCode},
	} {
		t.Run(tc.manifest, func(t *testing.T) {
			got, err := r.OwnerOfManifest(tc.manifest)
			if tc.wantCode != "" {
				if !status.HasCode(err, tc.wantCode) {
					t.Fatalf("OwnerOfManifest() = %v, want error with code %s", err, tc.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got.Name() != tc.want {
				t.Errorf("OwnerOfManifest() = %q, want %q", got.Name(), tc.want)
			}
		})
	}
}

func TestOwnerOfObject(t *testing.T) {
	r := newRegistry(t)

	obj := &unstructured.Unstructured{}
	obj.SetName("ess-synapse-redis")
	got, err := r.OwnerOfObject(obj, "ess")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name() != "synapse-redis" {
		t.Errorf("OwnerOfObject() = %q, want synapse-redis", got.Name())
	}

	if _, err := r.OwnerOfObject(obj, ""); !status.HasCode(err, UnownedManifestErrorCode) {
		t.Errorf("OwnerOfObject() without release = %v, want code %s", err, UnownedManifestErrorCode)
	}
}

func TestOwnerOfContainer(t *testing.T) {
	r := newRegistry(t)

	for _, tc := range []struct {
		manifest  string
		container string
		want      string
	}{
		{"postgres", "postgres-exporter-main", "postgres-exporter"},
		{"postgres", "postgres", "postgres"},
		{"synapse-redis", "redis", "synapse-redis"},
	} {
		t.Run(tc.manifest+"/"+tc.container, func(t *testing.T) {
			got, err := r.OwnerOfContainer(tc.manifest, tc.container)
			if err != nil {
				t.Fatal(err)
			}
			if got.Name() != tc.want {
				t.Errorf("OwnerOfContainer() = %q, want %q", got.Name(), tc.want)
			}
		})
	}
}

func TestManifestName(t *testing.T) {
	for _, tc := range []struct {
		object, release, want string
	}{
		{"ess-synapse-main", "ess", "synapse-main"},
		{"synapse-main", "", "synapse-main"},
		{"other-synapse-main", "ess", "other-synapse-main"},
	} {
		if got := ManifestName(tc.object, tc.release); got != tc.want {
			t.Errorf("ManifestName(%q, %q) = %q, want %q", tc.object, tc.release, got, tc.want)
		}
	}
}
