// ABOUTME: grandcat/zeroconf backed protocol engine
// ABOUTME: Alternate backend selected via the config "engine" field
package discovery

import (
	"fmt"
	"sync"

	"github.com/grandcat/zeroconf"
)

// ZeroconfEngine advertises via grandcat/zeroconf. Semantics match
// MDNSEngine: one live registration, replace on Register, no-op
// Unregister when nothing is registered.
type ZeroconfEngine struct {
	mu     sync.Mutex
	server *zeroconf.Server
}

// NewZeroconfEngine creates the zeroconf-backed protocol engine.
func NewZeroconfEngine() *ZeroconfEngine {
	return &ZeroconfEngine{}
}

// Register publishes the descriptor on all multicast interfaces.
func (e *ZeroconfEngine) Register(d Descriptor) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.server != nil {
		e.server.Shutdown()
		e.server = nil
	}

	server, err := zeroconf.Register(d.Instance(), d.Service(), d.Domain(), d.Port, d.TXT(), nil)
	if err != nil {
		return fmt.Errorf("failed to register service: %w", err)
	}
	e.server = server

	return nil
}

// Unregister withdraws the current registration. A no-op when nothing
// is registered.
func (e *ZeroconfEngine) Unregister(Descriptor) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.server != nil {
		e.server.Shutdown()
		e.server = nil
	}
	return nil
}

// Close releases the transport, withdrawing any live registration.
func (e *ZeroconfEngine) Close() error {
	return e.Unregister(Descriptor{})
}
