// Package refresh reloads the registry from the configured source, either on
// an admin request or from the scheduler.
package refresh

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/cropstats/internal/domain/models"
	"github.com/mamadbah2/cropstats/internal/registry"
)

// ErrInProgress is returned when a refresh is asked for while one is running.
var ErrInProgress = errors.New("refresh already in progress")

// Target is the registry side of a refresh.
type Target interface {
	Current() *registry.Snapshot
	Load(ctx context.Context, loader registry.Loader) error
}

// Service runs at most one refresh at a time. Readers keep being served from
// the previous snapshot until the new one is swapped in.
type Service struct {
	target  Target
	loader  registry.Loader
	apiKey  []byte
	timeout time.Duration
	logger  *zap.Logger
	now     func() time.Time

	running atomic.Bool
	wg      sync.WaitGroup

	mu      sync.Mutex
	lastRun time.Time
	lastErr error
}

// NewService wires a refresh service. timeout bounds asynchronous runs.
func NewService(target Target, loader registry.Loader, apiKey string, timeout time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		target:  target,
		loader:  loader,
		apiKey:  []byte(apiKey),
		timeout: timeout,
		logger:  logger,
		now:     time.Now,
	}
}

// Authorize checks an admin key in constant time.
func (s *Service) Authorize(key string) error {
	if len(s.apiKey) == 0 || subtle.ConstantTimeCompare([]byte(key), s.apiKey) != 1 {
		return fmt.Errorf("admin key: %w", models.ErrUnauthorized)
	}
	return nil
}

// Refresh reloads the dataset synchronously.
func (s *Service) Refresh(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrInProgress
	}
	defer s.running.Store(false)
	return s.run(ctx)
}

// TriggerAsync starts a refresh in the background and reports whether it did.
// It returns false when a refresh is already running.
func (s *Service) TriggerAsync() bool {
	if !s.running.CompareAndSwap(false, true) {
		return false
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.running.Store(false)

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		_ = s.run(ctx)
	}()
	return true
}

// Wait blocks until a background refresh, if any, has finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) run(ctx context.Context) error {
	start := s.now()
	s.logger.Info("refresh started", zap.String("loader", s.loader.Name()))

	err := s.target.Load(ctx, s.loader)

	s.mu.Lock()
	s.lastRun = start
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("refresh failed", zap.String("loader", s.loader.Name()), zap.Error(err))
		return err
	}

	s.logger.Info("refresh completed",
		zap.String("loader", s.loader.Name()),
		zap.Uint64("version", s.target.Current().Version),
		zap.Duration("duration", s.now().Sub(start)))
	return nil
}

// Status describes the snapshot in service and the last refresh attempt.
type Status struct {
	Version     uint64     `json:"version"`
	Source      string     `json:"source"`
	Edition     string     `json:"edition"`
	LoadedAt    time.Time  `json:"loadedAt"`
	Warnings    []string   `json:"warnings"`
	Loader      string     `json:"loader"`
	Refreshing  bool       `json:"refreshing"`
	LastRefresh *time.Time `json:"lastRefresh,omitempty"`
	LastError   string     `json:"lastError,omitempty"`
}

// Status reports the registry generation and refresh bookkeeping.
func (s *Service) Status() Status {
	snap := s.target.Current()
	st := Status{
		Version:    snap.Version,
		Source:     snap.Source,
		Edition:    snap.Dataset.Edition,
		LoadedAt:   snap.LoadedAt,
		Warnings:   snap.Warnings,
		Loader:     s.loader.Name(),
		Refreshing: s.running.Load(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.lastRun.IsZero() {
		last := s.lastRun
		st.LastRefresh = &last
	}
	if s.lastErr != nil {
		st.LastError = s.lastErr.Error()
	}
	return st
}
