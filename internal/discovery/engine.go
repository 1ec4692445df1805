// ABOUTME: Protocol engine abstraction for DNS-SD registration
// ABOUTME: Adapters own the multicast transport behind Register/Unregister
package discovery

// Engine is the DNS-SD protocol engine the manager drives. An engine
// holds at most one live registration; Register replaces any previous
// one, and Unregister while nothing is registered is a no-op.
//
// Constructing an engine connects its transport; Close releases it.
type Engine interface {
	Register(d Descriptor) error
	Unregister(d Descriptor) error
	Close() error
}
