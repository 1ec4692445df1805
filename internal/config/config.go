// ABOUTME: JSON configuration for the announcer
// ABOUTME: Loads service settings with defaulting and first-run persistence
package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"github.com/harperreed/announcer-go/internal/discovery"
)

// Defaults used whenever the config file is missing or unusable.
const (
	DefaultType     = "_http._tcp.local."
	DefaultPort     = 8080
	DefaultInterval = 60 // seconds
)

// Config is the on-disk settings record. All fields are optional;
// absent fields take the defaults above. Engine selects the protocol
// backend ("mdns" or "zeroconf") and is omitted from persisted
// defaults.
type Config struct {
	Type       string            `json:"type"`
	Name       string            `json:"name"`
	Port       int               `json:"port"`
	Properties map[string]string `json:"properties"`
	Interval   float64           `json:"interval"`
	Engine     string            `json:"engine,omitempty"`
}

// Default returns the built-in configuration. Name is left empty here;
// it depends on the hostname, which callers inject (see Load and
// Descriptor).
func Default() Config {
	return Config{
		Type:       DefaultType,
		Port:       DefaultPort,
		Properties: map[string]string{},
		Interval:   DefaultInterval,
	}
}

// Load reads the configuration at path. It never fails past this
// boundary:
//   - missing file: defaults are synthesized and written back to path
//   - unreadable or malformed file: defaults are used in memory only
//   - empty name: recomputed as "<hostname>.<type>"
//
// The hostname is a parameter so name derivation is deterministic and
// test-injectable.
func Load(path, hostname string) Config {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := withName(Default(), hostname)
		if werr := write(path, cfg); werr != nil {
			log.Printf("WARNING: could not write default config to %s: %v", path, werr)
		} else {
			log.Printf("WARNING: config file not found, created %s with defaults", path)
		}
		return cfg
	}
	if err != nil {
		log.Printf("WARNING: could not read config %s, using defaults: %v", path, err)
		return withName(Default(), hostname)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("WARNING: invalid config in %s, using defaults: %v", path, err)
		return withName(Default(), hostname)
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		log.Printf("WARNING: config port %d out of range, using %d", cfg.Port, DefaultPort)
		cfg.Port = DefaultPort
	}
	if cfg.Interval <= 0 {
		log.Printf("WARNING: config interval %v not positive, using %d", cfg.Interval, DefaultInterval)
		cfg.Interval = DefaultInterval
	}
	if cfg.Properties == nil {
		cfg.Properties = map[string]string{}
	}
	return withName(cfg, hostname)
}

// Descriptor builds the service descriptor this configuration
// advertises, pointing at "<hostname>.local.".
func (c Config) Descriptor(hostname string) discovery.Descriptor {
	name := c.Name
	if name == "" {
		name = hostname + "." + c.Type
	}
	return discovery.Descriptor{
		Type:       c.Type,
		Name:       name,
		Port:       c.Port,
		Properties: c.Properties,
		Host:       hostname + ".local.",
	}
}

// RefreshInterval returns the interval as a duration.
func (c Config) RefreshInterval() time.Duration {
	return time.Duration(c.Interval * float64(time.Second))
}

func withName(cfg Config, hostname string) Config {
	if cfg.Name == "" {
		cfg.Name = hostname + "." + cfg.Type
	}
	return cfg
}

func write(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
