// ABOUTME: Tests for service descriptor name splitting and TXT encoding
// ABOUTME: Covers instance/service/domain derivation from full DNS-SD names
package discovery

import (
	"testing"
)

func TestInstance(t *testing.T) {
	d := Descriptor{
		Type: "_http._tcp.local.",
		Name: "myhost._http._tcp.local.",
	}
	if got := d.Instance(); got != "myhost" {
		t.Errorf("expected instance \"myhost\", got %q", got)
	}
}

func TestInstanceWithoutTypeSuffix(t *testing.T) {
	d := Descriptor{
		Type: "_http._tcp.local.",
		Name: "some.other.name",
	}
	if got := d.Instance(); got != "some" {
		t.Errorf("expected first label \"some\", got %q", got)
	}
}

func TestServiceAndDomain(t *testing.T) {
	d := Descriptor{Type: "_http._tcp.local."}
	if got := d.Service(); got != "_http._tcp" {
		t.Errorf("expected service \"_http._tcp\", got %q", got)
	}
	if got := d.Domain(); got != "local." {
		t.Errorf("expected domain \"local.\", got %q", got)
	}
}

func TestServiceAndDomainUDP(t *testing.T) {
	d := Descriptor{Type: "_sleep-proxy._udp.example.com."}
	if got := d.Service(); got != "_sleep-proxy._udp" {
		t.Errorf("expected service \"_sleep-proxy._udp\", got %q", got)
	}
	if got := d.Domain(); got != "example.com." {
		t.Errorf("expected domain \"example.com.\", got %q", got)
	}
}

func TestDomainDefaultsToLocal(t *testing.T) {
	d := Descriptor{Type: "_weird."}
	if got := d.Domain(); got != "local." {
		t.Errorf("expected fallback domain \"local.\", got %q", got)
	}
}

func TestTXTSortedByKey(t *testing.T) {
	d := Descriptor{
		Properties: map[string]string{
			"version": "1.0",
			"path":    "/api",
		},
	}
	txt := d.TXT()
	if len(txt) != 2 {
		t.Fatalf("expected 2 TXT strings, got %v", txt)
	}
	if txt[0] != "path=/api" || txt[1] != "version=1.0" {
		t.Errorf("expected sorted k=v strings, got %v", txt)
	}
}

func TestTXTEmpty(t *testing.T) {
	d := Descriptor{}
	if got := d.TXT(); len(got) != 0 {
		t.Errorf("expected no TXT strings, got %v", got)
	}
}
