// ABOUTME: Service descriptor for DNS-SD advertisements
// ABOUTME: Carries instance naming, port, TXT properties, and target host
package discovery

import (
	"sort"
	"strings"
)

// Descriptor describes one advertised service. It is a value type; the
// manager swaps whole descriptors, never mutates one in place.
type Descriptor struct {
	Type       string            // e.g. "_http._tcp.local."
	Name       string            // fully-qualified instance name, e.g. "myhost._http._tcp.local."
	Port       int               // 1-65535
	Properties map[string]string // TXT record key/values
	Host       string            // target host the advertisement points to, e.g. "myhost.local."
}

// Instance returns the bare instance label, the fully-qualified name
// with the service type suffix stripped.
func (d Descriptor) Instance() string {
	if s := strings.TrimSuffix(d.Name, "."+d.Type); s != d.Name {
		return s
	}
	if i := strings.Index(d.Name, "."); i > 0 {
		return d.Name[:i]
	}
	return d.Name
}

// Service returns the service type without the domain suffix,
// e.g. "_http._tcp" for "_http._tcp.local.".
func (d Descriptor) Service() string {
	service, _ := splitTypeDomain(d.Type)
	return service
}

// Domain returns the domain part of the service type, e.g. "local.".
func (d Descriptor) Domain() string {
	_, domain := splitTypeDomain(d.Type)
	return domain
}

// TXT encodes the properties as DNS-SD TXT strings in sorted key order.
func (d Descriptor) TXT() []string {
	keys := make([]string, 0, len(d.Properties))
	for k := range d.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	txt := make([]string, 0, len(keys))
	for _, k := range keys {
		txt = append(txt, k+"="+d.Properties[k])
	}
	return txt
}

// splitTypeDomain splits a full service type like "_http._tcp.local."
// into the service part ("_http._tcp") and the domain part ("local.").
func splitTypeDomain(t string) (service, domain string) {
	for _, proto := range []string{"._tcp.", "._udp."} {
		if i := strings.Index(t, proto); i >= 0 {
			cut := i + len(proto) - 1
			return t[:cut], t[cut+1:]
		}
	}
	return strings.TrimSuffix(t, "."), "local."
}
