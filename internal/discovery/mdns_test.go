// ABOUTME: Tests for the protocol engine adapters
// ABOUTME: Covers construction and the unregistered no-op contract
package discovery

import (
	"testing"
)

func TestNewMDNSEngine(t *testing.T) {
	engine := NewMDNSEngine()
	if engine == nil {
		t.Fatal("expected engine to be created")
	}
}

func TestMDNSUnregisterWithoutRegister(t *testing.T) {
	engine := NewMDNSEngine()
	if err := engine.Unregister(testDescriptor("alpha")); err != nil {
		t.Errorf("expected unregister without registration to be a no-op, got %v", err)
	}
	if err := engine.Close(); err != nil {
		t.Errorf("expected close without registration to be a no-op, got %v", err)
	}
}

func TestNewZeroconfEngine(t *testing.T) {
	engine := NewZeroconfEngine()
	if engine == nil {
		t.Fatal("expected engine to be created")
	}
}

func TestZeroconfUnregisterWithoutRegister(t *testing.T) {
	engine := NewZeroconfEngine()
	if err := engine.Unregister(testDescriptor("alpha")); err != nil {
		t.Errorf("expected unregister without registration to be a no-op, got %v", err)
	}
	if err := engine.Close(); err != nil {
		t.Errorf("expected close without registration to be a no-op, got %v", err)
	}
}
