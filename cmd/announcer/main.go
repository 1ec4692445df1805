// ABOUTME: Entry point for the announcer daemon
// ABOUTME: Loads configuration and keeps one DNS-SD advertisement fresh
package main

import (
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/harperreed/announcer-go/internal/config"
	"github.com/harperreed/announcer-go/internal/discovery"
	"github.com/harperreed/announcer-go/internal/version"
)

const (
	configPath = "config.json"
	logPath    = "announcer.log"
)

func main() {
	// Set up logging (both file and console)
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer f.Close()

	multiWriter := io.MultiWriter(os.Stdout, f)
	log.SetOutput(multiWriter)

	// Hostname is resolved exactly once; everything derived from it
	// (instance name, target host) flows from here.
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	cfg := config.Load(configPath, hostname)
	info := cfg.Descriptor(hostname)

	log.Printf("Starting %s %s: %s on port %d (type: %s)",
		version.Product, version.Version, info.Name, info.Port, info.Type)

	var engine discovery.Engine
	switch cfg.Engine {
	case "", "mdns":
		engine = discovery.NewMDNSEngine()
	case "zeroconf":
		engine = discovery.NewZeroconfEngine()
	default:
		log.Fatalf("unknown engine %q (want \"mdns\" or \"zeroconf\")", cfg.Engine)
	}

	mgr := discovery.NewManager(info, cfg.RefreshInterval(), engine)

	// Safety net for exit paths that bypass the signal handling below.
	defer func() {
		if err := mgr.Close(); err != nil {
			log.Printf("ERROR: closing announcer: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	mgr.Start()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case sig := <-sigChan:
			log.Printf("Received %v signal, shutting down gracefully...", sig)
			if err := mgr.Close(); err != nil {
				log.Printf("ERROR: closing announcer: %v", err)
			}
			return
		case <-ticker.C:
			if !mgr.IsAlive() {
				log.Printf("ERROR: announcer loop is no longer running, exiting")
				if err := mgr.Close(); err != nil {
					log.Printf("ERROR: closing announcer: %v", err)
				}
				os.Exit(1)
			}
		}
	}
}
