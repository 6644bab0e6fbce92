package deployable

import (
	"testing"

	"github.com/element-hq/ess-helm-deployables/pkg/status"
	"github.com/element-hq/ess-helm-deployables/pkg/values"
	"github.com/google/go-cmp/cmp"
	"k8s.io/utils/pointer"
)

func TestSidecarForcedProperties(t *testing.T) {
	s := NewSidecar("postgres-exporter", Options{
		ValuesPath:   pathPtr(values.ReadWrite("postgres", "postgresExporter")),
		HasWorkloads: pointer.Bool(false),
		HasReplicas:  pointer.Bool(true),
		Overrides: map[values.PropertyType]values.Path{
			values.Labels:       values.NotSupported(),
			values.NodeSelector: values.ReadWrite("postgres", "postgresExporter", "nodeSelector"),
		},
	})

	if !s.HasWorkloads {
		t.Error("HasWorkloads = false, want true")
	}
	if s.HasReplicas {
		t.Error("HasReplicas = true, want false")
	}
	for _, p := range podProperties {
		if diff := cmp.Diff(values.NotSupported(), s.ValuesFilePath(p)); diff != "" {
			t.Errorf("%s: %s", p, diff)
		}
	}
	if diff := cmp.Diff(values.NotSupported(), s.ValuesFilePath(values.Labels)); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff(values.ReadWrite("postgres", "postgresExporter", "resources"), s.ValuesFilePath(values.Resources)); diff != "" {
		t.Error(diff)
	}
}

func TestSidecarImageDefaultsFromForcedWorkloads(t *testing.T) {
	s := NewSidecar("exporter", Options{HasWorkloads: pointer.Bool(false)})
	if !s.HasImage {
		t.Error("HasImage = false, want true since sidecars always have workloads")
	}
}

func TestOutboundRequestPropagation(t *testing.T) {
	for _, tc := range []struct {
		name            string
		sidecarOutbound bool
		parentOutbound  bool
		wantParent      bool
	}{
		{"sidecar makes requests", true, false, true},
		{"neither makes requests", false, false, false},
		{"parent already makes requests", false, true, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSidecar("postgres-exporter", Options{MakesOutboundRequests: pointer.Bool(tc.sidecarOutbound)})
			parent := NewComponent("postgres", ComponentOptions{
				Options:  Options{MakesOutboundRequests: pointer.Bool(tc.parentOutbound)},
				Sidecars: []*Sidecar{s},
			})

			if err := Link(parent); err != nil {
				t.Fatal(err)
			}
			if parent.MakesOutboundRequests != tc.wantParent {
				t.Errorf("parent.MakesOutboundRequests = %t, want %t", parent.MakesOutboundRequests, tc.wantParent)
			}
			if s.MakesOutboundRequests {
				t.Error("sidecar.MakesOutboundRequests = true, want false")
			}
			if s.Parent() != parent {
				t.Errorf("Parent() = %v, want postgres", s.Parent())
			}
		})
	}
}

func TestSubComponentSidecarPropagation(t *testing.T) {
	s := NewSidecar("sfu-proxy", Options{})
	sfu := NewSubComponent("matrix-rtc-sfu", Options{MakesOutboundRequests: pointer.Bool(false)}, s)
	rtc := NewComponent("matrix-rtc", ComponentOptions{
		Options:       Options{MakesOutboundRequests: pointer.Bool(false)},
		SubComponents: []*SubComponent{sfu},
	})

	if err := Link(rtc); err != nil {
		t.Fatal(err)
	}
	if !sfu.MakesOutboundRequests {
		t.Error("sub-component MakesOutboundRequests = false, want true")
	}
	if rtc.MakesOutboundRequests {
		t.Error("component MakesOutboundRequests = true, want false")
	}
}

func TestLinkIsIdempotent(t *testing.T) {
	s := NewSidecar("postgres-exporter", Options{})
	parent := NewComponent("postgres", ComponentOptions{
		Options:  Options{MakesOutboundRequests: pointer.Bool(false)},
		Sidecars: []*Sidecar{s},
	})
	for i := 0; i < 2; i++ {
		if err := Link(parent); err != nil {
			t.Fatalf("Link() #%d = %v", i, err)
		}
	}
	if !parent.MakesOutboundRequests || s.MakesOutboundRequests {
		t.Errorf("after relinking parent=%t sidecar=%t, want true and false",
			parent.MakesOutboundRequests, s.MakesOutboundRequests)
	}
}

func TestLinkRejectsSecondParent(t *testing.T) {
	s := NewSidecar("exporter", Options{})
	first := NewComponent("postgres", ComponentOptions{Sidecars: []*Sidecar{s}})
	second := NewComponent("haproxy", ComponentOptions{Sidecars: []*Sidecar{s}})

	if err := Link(first); err != nil {
		t.Fatal(err)
	}
	err := Link(second)
	if !status.HasCode(err, ReparentedErrorCode) {
		t.Fatalf("Link() = %v, want error with code %s", err, ReparentedErrorCode)
	}
	if s.Parent() != first {
		t.Errorf("Parent() = %v, want postgres", s.Parent())
	}
}

func TestLinkRejectsSharedSubComponent(t *testing.T) {
	sub := NewSubComponent("redis", Options{})
	first := NewComponent("synapse", ComponentOptions{SubComponents: []*SubComponent{sub}})
	second := NewComponent("element-web", ComponentOptions{SubComponents: []*SubComponent{sub}})

	if err := Link(first); err != nil {
		t.Fatal(err)
	}
	if err := Link(second); !status.HasCode(err, ReparentedErrorCode) {
		t.Fatalf("Link() = %v, want error with code %s", err, ReparentedErrorCode)
	}
}

func TestSidecarOwnsManifest(t *testing.T) {
	s := NewSidecar("postgres-exporter", Options{})
	parent := NewComponent("postgres", ComponentOptions{Sidecars: []*Sidecar{s}})

	// Unlinked, the sidecar only has its prefix to go on.
	if !s.OwnsManifest("postgres-exporter") {
		t.Error("unlinked OwnsManifest(postgres-exporter) = false, want true")
	}

	if err := Link(parent); err != nil {
		t.Fatal(err)
	}
	if s.OwnsManifest("postgres-exporter") {
		t.Error("OwnsManifest(postgres-exporter) = true, want false as the parent owns it")
	}
	if !parent.OwnsManifest("postgres-exporter") {
		t.Error("parent.OwnsManifest(postgres-exporter) = false, want true")
	}
}

func TestUnlinkedTree(t *testing.T) {
	s := NewSidecar("postgres-exporter", Options{})
	parent := NewComponent("postgres", ComponentOptions{
		Options:  Options{MakesOutboundRequests: pointer.Bool(false)},
		Sidecars: []*Sidecar{s},
	})

	if s.Parent() != nil {
		t.Errorf("Parent() before Link = %v, want nil", s.Parent())
	}
	if parent.MakesOutboundRequests {
		t.Error("parent.MakesOutboundRequests = true before Link, want false")
	}

	if err := Link(parent); err != nil {
		t.Fatal(err)
	}
	if s.Parent() != parent {
		t.Errorf("Parent() = %v, want postgres", s.Parent())
	}
	if !parent.MakesOutboundRequests {
		t.Error("parent.MakesOutboundRequests = false after Link, want true")
	}
}
