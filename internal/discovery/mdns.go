// ABOUTME: hashicorp/mdns backed protocol engine
// ABOUTME: Maps descriptor registration onto an mdns zone server
package discovery

import (
	"fmt"
	"net"
	"sync"

	"github.com/hashicorp/mdns"
)

// MDNSEngine advertises via hashicorp/mdns. Each registration runs a
// zone server answering multicast queries; unregistering shuts it down.
type MDNSEngine struct {
	mu     sync.Mutex
	server *mdns.Server
}

// NewMDNSEngine creates the default protocol engine.
func NewMDNSEngine() *MDNSEngine {
	return &MDNSEngine{}
}

// Register publishes the descriptor. Any previous registration is shut
// down first so at most one zone server is ever live.
func (e *MDNSEngine) Register(d Descriptor) error {
	ips, err := getLocalIPs()
	if err != nil {
		return fmt.Errorf("failed to get local IPs: %w", err)
	}

	zone, err := mdns.NewMDNSService(d.Instance(), d.Service(), d.Domain(), d.Host, d.Port, ips, d.TXT())
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.server != nil {
		if err := e.server.Shutdown(); err != nil {
			return fmt.Errorf("failed to replace registration: %w", err)
		}
		e.server = nil
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: zone})
	if err != nil {
		return fmt.Errorf("failed to create mdns server: %w", err)
	}
	e.server = server

	return nil
}

// Unregister withdraws the current registration. A no-op when nothing
// is registered.
func (e *MDNSEngine) Unregister(Descriptor) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.server == nil {
		return nil
	}
	err := e.server.Shutdown()
	e.server = nil
	return err
}

// Close releases the transport, withdrawing any live registration.
func (e *MDNSEngine) Close() error {
	return e.Unregister(Descriptor{})
}

// getLocalIPs returns local non-loopback IPv4 addresses
func getLocalIPs() ([]net.IP, error) {
	var ips []net.IP

	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
				if ipnet.IP.To4() != nil {
					ips = append(ips, ipnet.IP)
				}
			}
		}
	}

	return ips, nil
}
