// ABOUTME: Lifecycle manager for one DNS-SD advertisement
// ABOUTME: Drives register/refresh/unregister on its own goroutine
package discovery

import (
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// State is the lifecycle state of a Manager.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateStopping
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Manager owns one service advertisement from registration to
// withdrawal. It refreshes the advertisement on its own goroutine every
// interval and guarantees a final unregister on shutdown.
type Manager struct {
	engine   Engine
	interval time.Duration

	info  atomic.Pointer[Descriptor]
	state atomic.Int32

	stopping  chan struct{}
	stopped   chan struct{}
	stopOnce  sync.Once
	closeOnce sync.Once
	closeErr  error
}

// NewManager creates a manager in the Idle state. Nothing is registered
// until Start. The manager takes ownership of the engine; Close
// releases it.
func NewManager(info Descriptor, interval time.Duration, engine Engine) *Manager {
	m := &Manager{
		engine:   engine,
		interval: interval,
		stopping: make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	m.info.Store(&info)
	return m
}

// Start launches the refresh loop. Calling Start on a manager that has
// already left Idle is a logged no-op; at most one loop ever runs.
func (m *Manager) Start() {
	if !m.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		log.Printf("Announcer already started (state: %s)", m.State())
		return
	}

	log.Printf("Starting announcer (refresh every %v)", m.interval)
	go m.loop()
}

// loop is the background refresh cycle: withdraw the previous
// announcement, publish the current descriptor, then wait out the
// interval or a stop signal, whichever comes first.
func (m *Manager) loop() {
	defer close(m.stopped)
	defer m.state.Store(int32(StateStopped))
	defer log.Printf("Announcer stopped")

	// The advertisement is withdrawn on every exit path, including an
	// engine failure mid-cycle.
	defer func() {
		if err := m.engine.Unregister(*m.info.Load()); err != nil {
			log.Printf("ERROR: final unregister failed: %v", err)
		}
	}()

	for {
		select {
		case <-m.stopping:
			return
		default:
		}

		info := m.info.Load()
		if err := m.engine.Unregister(*info); err != nil {
			log.Printf("ERROR: unregister failed: %v", err)
			return
		}
		if err := m.engine.Register(*info); err != nil {
			log.Printf("ERROR: register failed: %v", err)
			return
		}
		log.Printf("Refreshed advertisement: %s on port %d", info.Name, info.Port)

		select {
		case <-m.stopping:
			return
		case <-time.After(m.interval):
		}
	}
}

// UpdateInfo swaps the descriptor the loop will announce on its next
// register. It does not touch the network itself; a cycle already in
// flight keeps its old descriptor.
func (m *Manager) UpdateInfo(info Descriptor) {
	m.info.Store(&info)
}

// Stop signals the loop and blocks until it has exited, final
// unregister included. Idempotent; a stop on a never-started manager
// just marks it Stopped.
func (m *Manager) Stop() {
	if m.state.CompareAndSwap(int32(StateIdle), int32(StateStopped)) {
		m.stopOnce.Do(func() { close(m.stopping) })
		close(m.stopped)
		return
	}

	m.state.CompareAndSwap(int32(StateRunning), int32(StateStopping))
	m.stopOnce.Do(func() {
		log.Printf("Stopping announcer...")
		close(m.stopping)
	})
	<-m.stopped
}

// Close stops the loop and releases the protocol engine. This is the
// only path that frees the underlying transport. Idempotent; later
// calls return the first close's result.
func (m *Manager) Close() error {
	m.Stop()
	m.closeOnce.Do(func() {
		m.closeErr = m.engine.Close()
	})
	return m.closeErr
}

// IsAlive reports whether the background loop is currently executing.
func (m *Manager) IsAlive() bool {
	s := m.State()
	return s == StateRunning || s == StateStopping
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	return State(m.state.Load())
}
