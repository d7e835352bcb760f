package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"k8s.io/utils/clock"

	"github.com/skillcoder/gce-reservation-helper/internal/infra/metrics"
)

type Service struct {
	logger       *slog.Logger
	repo         Repository
	progress     *Progress
	target       Target
	interval     time.Duration
	onFetchError FetchErrorPolicy
	clock        clock.Clock
	ready        chan struct{}
	doneCh       chan struct{}
	stopCh       chan struct{}
	started      atomic.Bool
	inShutdown   atomic.Bool
}

// New creates a new controller service driving progress towards its target.
// A nil clock means the real clock.
func New(
	logger *slog.Logger,
	repo Repository,
	progress *Progress,
	interval time.Duration,
	onFetchError FetchErrorPolicy,
	clk clock.Clock,
) *Service {
	if interval <= 0 {
		interval = DefaultInterval
	}

	if onFetchError == "" {
		onFetchError = OnFetchErrorAssumeEmpty
	}

	if clk == nil {
		clk = clock.RealClock{}
	}

	return &Service{
		logger:       logger,
		repo:         repo,
		progress:     progress,
		target:       progress.Target(),
		interval:     interval,
		onFetchError: onFetchError,
		clock:        clk,
		ready:        make(chan struct{}),
		doneCh:       make(chan struct{}),
		stopCh:       make(chan struct{}),
	}
}

// Name returns the name of the controller component
func (s *Service) Name() string {
	return "reservation-controller"
}

func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "controller service is shutting down, skipping start")

		return nil
	}

	if !s.started.CompareAndSwap(false, true) {
		return fmt.Errorf("controller service already started")
	}

	// Remote calls run under runCtx so Shutdown can abort an in-flight operation wait.
	runCtx, cancel := context.WithCancel(ctx)

	go func() {
		defer cancel()

		select {
		case <-s.stopCh:
		case <-s.doneCh:
		}
	}()

	go s.RunCommand(runCtx)

	return nil
}

func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Done returns a channel that is closed once the reconciliation loop has exited.
func (s *Service) Done() <-chan struct{} {
	return s.doneCh
}

func (s *Service) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
		return nil
	default:
		return fmt.Errorf("controller service is not ready")
	}
}

// Shutdown signals the reconciliation loop to stop and waits for it to exit.
func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "controller service is already shutting down, skipping shutdown")

		return nil // Already shutting down
	}

	defer func() {
		s.logger.InfoContext(ctx, "controller service shut downed")
	}()

	s.logger.InfoContext(ctx, "shutting down controller service")

	close(s.stopCh)

	if !s.started.Load() {
		return nil
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before controller loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "controller loop exited")
	}

	return nil
}

// RunCommand grows the reservation until the target is reached or shutdown is requested.
func (s *Service) RunCommand(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("controller", "RunCommand")

	metrics.SetTargetVMCount(s.target.Count)
	close(s.ready)

	logger.InfoContext(ctx, "starting reservation worker",
		"reservation", s.target.Name,
		"zone", s.target.Zone,
		"target", s.target.Count,
	)

	if s.target.Count <= 0 {
		s.complete(ctx, logger)

		return
	}

	for {
		if s.stopping(ctx) {
			s.prematureStop(ctx, logger)

			return
		}

		action, err := s.ReconcileCommand(ctx)

		switch {
		case err != nil && s.stopping(ctx):
			logger.InfoContext(ctx, "reconcile interrupted by shutdown", "action", action, "reason", err)
		case err != nil:
			logger.ErrorContext(ctx, "reconcile error", "action", action, "reason", err)
		}

		if action == ActionNone {
			s.complete(ctx, logger)

			return
		}

		if !s.wait(ctx) {
			s.prematureStop(ctx, logger)

			return
		}
	}
}

// ReconcileCommand runs one iteration: fetch the reservation, then create it,
// grow it by one instance, or report that the target is met (ActionNone).
// Remote failures are returned for logging; none of them ends the loop.
func (s *Service) ReconcileCommand(ctx context.Context) (Action, error) {
	logger := s.logger.With("controller", "ReconcileCommand")

	observed, err := s.fetchObservedCount(ctx, logger)
	if err != nil && s.onFetchError == OnFetchErrorSkip {
		logger.InfoContext(ctx, "skipping iteration after fetch error", "policy", string(s.onFetchError))

		return ActionSkip, nil
	}

	if ctx.Err() != nil {
		return ActionSkip, fmt.Errorf("reconcile interrupted: %w", ctx.Err())
	}

	logger.InfoContext(ctx, "current VM count", "observed", observed, "target", s.target.Count)

	switch {
	case observed == 0:
		logger.InfoContext(ctx, "creating new reservation")

		err = s.createReservationCommand(ctx, logger)

		return ActionCreate, err
	case observed < s.target.Count:
		logger.InfoContext(ctx, "resizing reservation", "count", observed+resizeStep)

		err = s.resizeReservationCommand(ctx, logger, observed+resizeStep)

		return ActionResize, err
	default:
		return ActionNone, nil
	}
}

// fetchObservedCount reads the remote count and publishes it. The attempt starts
// from zero and is published only after the call, so a failed fetch shows as 0.
func (s *Service) fetchObservedCount(ctx context.Context, logger *slog.Logger) (int64, error) {
	var observed int64

	reservation, err := s.repo.GetReservationQuery(ctx, s.target.ProjectID, s.target.Zone, s.target.Name)

	switch {
	case err != nil:
		var target notFound
		if errors.As(err, &target) {
			logger.InfoContext(ctx, "reservation not found", "reservation", s.target.Name)
		} else {
			logger.ErrorContext(ctx, "error getting current VM count", "reason", err)
		}

		metrics.RecordOperation(metrics.OperationGet, metrics.ResultError)

		err = fmt.Errorf("%w: %w", ErrFetchReservation, err)
	case reservation == nil:
		logger.ErrorContext(ctx, "error getting current VM count", "reason", "empty response")
		metrics.RecordOperation(metrics.OperationGet, metrics.ResultError)

		err = fmt.Errorf("%w: empty response", ErrFetchReservation)
	default:
		metrics.RecordOperation(metrics.OperationGet, metrics.ResultSuccess)

		observed = max(reservation.Count, 0)
	}

	if err != nil && s.onFetchError == OnFetchErrorSkip {
		return s.progress.Observed(), err
	}

	s.progress.setObserved(observed, s.clock.Now())
	metrics.SetObservedVMCount(observed)

	return observed, err
}

func (s *Service) createReservationCommand(ctx context.Context, logger *slog.Logger) error {
	result, err := s.repo.InsertReservationCommand(ctx, s.target.ProjectID, s.target.Zone, Reservation{
		Name:        s.target.Name,
		Count:       initialReservationCount,
		MachineType: s.target.MachineType,
	})
	logOperationResult(ctx, logger, result)

	if err != nil {
		metrics.RecordOperation(metrics.OperationInsert, metrics.ResultError)

		return fmt.Errorf("%w: %w", ErrCreateReservation, err)
	}

	metrics.RecordOperation(metrics.OperationInsert, metrics.ResultSuccess)

	return nil
}

func (s *Service) resizeReservationCommand(ctx context.Context, logger *slog.Logger, count int64) error {
	result, err := s.repo.ResizeReservationCommand(ctx, s.target.ProjectID, s.target.Zone, s.target.Name, count)
	logOperationResult(ctx, logger, result)

	if err != nil {
		metrics.RecordOperation(metrics.OperationResize, metrics.ResultError)

		return fmt.Errorf("%w: %w", ErrResizeReservation, err)
	}

	metrics.RecordOperation(metrics.OperationResize, metrics.ResultSuccess)

	return nil
}

func logOperationResult(ctx context.Context, logger *slog.Logger, result *OperationResult) {
	if result == nil {
		return
	}

	logger.InfoContext(ctx, "operation result",
		"operation", result.Name,
		"status", result.Status,
		"warnings", result.Warnings,
	)
}

// wait sleeps for the interval. It returns false when shutdown interrupted the wait.
func (s *Service) wait(ctx context.Context) bool {
	timer := s.clock.NewTimer(s.interval)
	defer timer.Stop()

	select {
	case <-timer.C():
		return true
	case <-s.stopCh:
		return false
	case <-ctx.Done():
		return false
	}
}

func (s *Service) stopping(ctx context.Context) bool {
	select {
	case <-s.stopCh:
		return true
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

func (s *Service) complete(ctx context.Context, logger *slog.Logger) {
	s.progress.setCompleted()
	logger.InfoContext(ctx, "target VM count reached, exiting",
		"observed", s.progress.Observed(),
		"target", s.target.Count,
	)
}

func (s *Service) prematureStop(ctx context.Context, logger *slog.Logger) {
	logger.InfoContext(ctx, "reconciliation stopped before target VM count was reached",
		"observed", s.progress.Observed(),
		"target", s.target.Count,
	)
}
