package appstate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/skillcoder/gce-reservation-helper/internal/infra/shutdown"
)

// State represents the application state
type State string

const (
	// StateInit is the initial state when the application is created
	StateInit State = "init"

	// StateStarting is the state when the application is starting up
	StateStarting State = "starting"

	// StateRunning is the state when the application is running normally
	StateRunning State = "running"

	// StateTerminating is the state when the application is shutting down
	StateTerminating State = "terminating"

	// StateTerminated is the final state when the application has terminated
	StateTerminated State = "terminated"
)

const (
	defaultShutdownersCount = 10
	defaultPingTimeout      = 1 * time.Second
)

// AppState manages the application state with thread-safe operations
type AppState struct {
	mu              sync.RWMutex
	logger          *slog.Logger
	startedAt       time.Time
	readyAt         *time.Time
	terminatingAt   *time.Time
	state           State
	quit            <-chan os.Signal
	shutdownTimeout time.Duration
	pingers         []Pinger
	shutdowners     []shutdown.Shutdowner
}

// New creates a new AppState with the given start time
func New(
	logger *slog.Logger,
	appStart time.Time,
	quit <-chan os.Signal,
	shutdownTimeout time.Duration,
) *AppState {
	return &AppState{
		logger:          logger,
		startedAt:       appStart,
		state:           StateInit,
		quit:            quit,
		shutdownTimeout: shutdownTimeout,
		shutdowners:     make([]shutdown.Shutdowner, 0, defaultShutdownersCount),
	}
}

// RegisterPinger adds a component whose Ping must succeed for the app to be ready.
func (s *AppState) RegisterPinger(pinger Pinger) error {
	if pinger == nil {
		return fmt.Errorf("register pinger: %w", ErrNilComponent)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pingers = append(s.pingers, pinger)

	return nil
}

// RegisterShutdowner adds a component to shut down; components shut down in reverse order.
func (s *AppState) RegisterShutdowner(shutdowner shutdown.Shutdowner) error {
	if shutdowner == nil {
		return fmt.Errorf("register shutdowner: %w", ErrNilComponent)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.shutdowners = append(s.shutdowners, shutdowner)

	return nil
}

// SetStarting transitions the state from Init to Starting
func (s *AppState) SetStarting(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInit {
		return fmt.Errorf("set starting: %w", ErrInvalidStateTransition)
	}

	return s.setState(StateStarting)
}

// SetRunning transitions the state from Starting to Running
func (s *AppState) SetRunning(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateStarting {
		return fmt.Errorf("set running: %w", ErrInvalidStateTransition)
	}

	now := time.Now()
	s.readyAt = &now

	return s.setState(StateRunning)
}

// SetTerminating transitions the state to Terminating
func (s *AppState) SetTerminating(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateTerminated {
		return fmt.Errorf("set terminating: %w", ErrAlreadyTerminated)
	}

	now := time.Now()
	s.terminatingAt = &now

	return s.setState(StateTerminating)
}

// setState is an internal method to set the state
func (s *AppState) setState(newState State) error {
	if s.state == StateTerminated {
		return fmt.Errorf("set state: %w", ErrAlreadyTerminated)
	}

	s.state = newState

	return nil
}

// GetState returns the current application state
func (s *AppState) GetState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// GetStartTime returns the time when the application started
func (s *AppState) GetStartTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.startedAt
}

// GetUptime returns the duration since the application started
func (s *AppState) GetUptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return time.Since(s.startedAt)
}

// IsHealthy returns true if the application is in a healthy state (running)
func (s *AppState) IsHealthy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state == StateRunning
}

// IsReady returns true if the application is running and every registered pinger answers
func (s *AppState) IsReady(ctx context.Context) bool {
	s.mu.RLock()
	running := s.state == StateRunning && s.readyAt != nil
	pingers := append([]Pinger(nil), s.pingers...)
	s.mu.RUnlock()

	if !running {
		return false
	}

	for _, p := range pingers {
		pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
		err := p.Ping(pingCtx)

		cancel()

		if err != nil {
			s.logger.DebugContext(ctx, "pinger error", "name", p.Name(), "reason", err)

			return false
		}
	}

	return true
}

// Quit returns the channel that will receive the signal when shutdown is requested
func (s *AppState) Quit() <-chan os.Signal {
	return s.quit
}

// Shutdown shuts down the registered components and transitions to the terminated state
func (s *AppState) Shutdown(ctx context.Context) error {
	if s.GetState() == StateTerminated {
		return nil
	}

	if err := s.SetTerminating(ctx); err != nil {
		return fmt.Errorf("set terminating application state: %w", err)
	}

	s.mu.RLock()
	shutdowners := append([]shutdown.Shutdowner(nil), s.shutdowners...)
	s.mu.RUnlock()

	err := shutdown.GracefulShutdown(ctx, s.logger, s.shutdownTimeout, shutdowners)

	s.mu.Lock()
	s.state = StateTerminated
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
