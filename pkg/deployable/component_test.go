package deployable

import (
	"testing"

	"github.com/element-hq/ess-helm-deployables/pkg/values"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"k8s.io/utils/pointer"
)

func TestComponentValuesFiles(t *testing.T) {
	for _, tc := range []struct {
		name            string
		opts            ComponentOptions
		wantValues      []string
		wantSecretFiles []string
	}{
		{
			name: "synapse",
			opts: ComponentOptions{
				Options:               Options{HasDB: true},
				AdditionalValuesFiles: []string{"synapse-worker-example-values.yaml"},
			},
			wantValues: []string{"synapse-minimal-values.yaml", "synapse-worker-example-values.yaml"},
			wantSecretFiles: []string{
				"synapse-secrets-in-helm-values.yaml",
				"synapse-secrets-externally-values.yaml",
				"synapse-postgres-secrets-in-helm-values.yaml",
				"synapse-postgres-secrets-externally-values.yaml",
			},
		},
		{
			name:            "no credentials",
			opts:            ComponentOptions{HasCredentials: pointer.Bool(false)},
			wantValues:      []string{"synapse-minimal-values.yaml"},
			wantSecretFiles: nil,
		},
		{
			name: "prefix and extra secrets",
			opts: ComponentOptions{
				ValuesFilePrefix:            "custom",
				AdditionalSecretValuesFiles: []string{"custom-external-secrets-in-helm-values.yaml"},
			},
			wantValues: []string{"custom-minimal-values.yaml"},
			wantSecretFiles: []string{
				"custom-external-secrets-in-helm-values.yaml",
				"custom-secrets-in-helm-values.yaml",
				"custom-secrets-externally-values.yaml",
			},
		},
		{
			name: "shared has no values files",
			opts: ComponentOptions{
				Options:                     Options{HasDB: true, HasStorage: true},
				IsShared:                    true,
				AdditionalValuesFiles:       []string{"ignored-values.yaml"},
				AdditionalSecretValuesFiles: []string{"ignored-secrets-values.yaml"},
			},
			wantValues:      nil,
			wantSecretFiles: nil,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := NewComponent("synapse", tc.opts)
			if diff := cmp.Diff(tc.wantValues, c.ValuesFiles(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ValuesFiles() (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.wantSecretFiles, c.SecretValuesFiles(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("SecretValuesFiles() (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComponentDefaults(t *testing.T) {
	c := NewComponent("element-web", ComponentOptions{
		Options: Options{ValuesPath: pathPtr(values.ReadWrite("elementWeb"))},
	})
	if c.ValuesFilePrefix() != "element-web" {
		t.Errorf("ValuesFilePrefix() = %q, want %q", c.ValuesFilePrefix(), "element-web")
	}
	if c.IsShared() {
		t.Error("IsShared() = true, want false")
	}
	if diff := cmp.Diff(values.ReadWrite("elementWeb", "image"), c.ValuesFilePath(values.Image)); diff != "" {
		t.Error(diff)
	}
}

func synapseForTest() *Component {
	return NewComponent("synapse", ComponentOptions{
		SubComponents: []*SubComponent{
			NewSubComponent("synapse-redis", Options{}),
			NewSubComponent("synapse-pusher", Options{}),
		},
	})
}

func TestOwnsManifest(t *testing.T) {
	synapse := synapseForTest()
	redis := synapse.SubComponents()[0]

	for _, tc := range []struct {
		name          string
		manifest      string
		wantComponent bool
		wantRedis     bool
	}{
		{"component manifest", "synapse-main", true, false},
		{"sub-component takes precedence", "synapse-redis", false, true},
		{"sub-component with suffix", "synapse-redis-config", false, true},
		{"other sub-component", "synapse-pusher", false, false},
		{"unrelated", "haproxy", false, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := synapse.OwnsManifest(tc.manifest); got != tc.wantComponent {
				t.Errorf("synapse.OwnsManifest(%q) = %t, want %t", tc.manifest, got, tc.wantComponent)
			}
			if got := redis.OwnsManifest(tc.manifest); got != tc.wantRedis {
				t.Errorf("redis.OwnsManifest(%q) = %t, want %t", tc.manifest, got, tc.wantRedis)
			}
		})
	}
}

func TestContainerOwner(t *testing.T) {
	exporter := NewSidecar("postgres-exporter", Options{})
	postgres := NewComponent("postgres", ComponentOptions{Sidecars: []*Sidecar{exporter}, IsShared: true})
	if err := Link(postgres); err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct {
		name      string
		container string
		want      Deployable
	}{
		{"sidecar", "postgres-exporter-main", exporter},
		{"sidecar exact", "postgres-exporter", exporter},
		{"parent", "postgres", postgres},
		{"init container", "postgres-init", postgres},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := postgres.ContainerOwner(tc.container); got != tc.want {
				t.Errorf("ContainerOwner(%q) = %q, want %q", tc.container, got.Name(), tc.want.Name())
			}
		})
	}

	if got := exporter.ContainerOwner("postgres"); got != nil {
		t.Errorf("exporter.ContainerOwner(postgres) = %q, want nil", got.Name())
	}
}

func TestSubComponentContainerOwner(t *testing.T) {
	proxy := NewSidecar("sfu-proxy", Options{})
	sfu := NewSubComponent("matrix-rtc-sfu", Options{}, proxy)
	rtc := NewComponent("matrix-rtc", ComponentOptions{SubComponents: []*SubComponent{sfu}})
	if err := Link(rtc); err != nil {
		t.Fatal(err)
	}

	if got := sfu.ContainerOwner("sfu-proxy"); got != proxy {
		t.Errorf("ContainerOwner(sfu-proxy) = %q, want sfu-proxy", got.Name())
	}
	if got := sfu.ContainerOwner("sfu"); got != sfu {
		t.Errorf("ContainerOwner(sfu) = %q, want matrix-rtc-sfu", got.Name())
	}
	if got := ParentOf(proxy); got != sfu {
		t.Errorf("ParentOf(proxy) = %v, want matrix-rtc-sfu", got)
	}
	if got := ParentOf(sfu); got != rtc {
		t.Errorf("ParentOf(sfu) = %v, want matrix-rtc", got)
	}
	if got := ParentOf(rtc); got != nil {
		t.Errorf("ParentOf(rtc) = %v, want nil", got)
	}
}

func TestKindOf(t *testing.T) {
	for _, tc := range []struct {
		d    Deployable
		want Kind
	}{
		{NewComponent("haproxy", ComponentOptions{}), ComponentKind},
		{NewSubComponent("synapse-redis", Options{}), SubComponentKind},
		{NewSidecar("postgres-exporter", Options{}), SidecarKind},
	} {
		if got := KindOf(tc.d); got != tc.want {
			t.Errorf("KindOf(%q) = %q, want %q", tc.d.Name(), got, tc.want)
		}
	}
}
