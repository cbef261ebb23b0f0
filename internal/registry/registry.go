// Package registry holds the statistics dataset served by the API. Readers
// take a snapshot pointer and work on it for the whole request; a refresh
// swaps the pointer in a single store, so no reader ever sees a half-loaded
// dataset.
package registry

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Loader produces a complete dataset from some source.
type Loader interface {
	Name() string
	Load(ctx context.Context) (*Dataset, error)
}

// Snapshot is one immutable generation of the registry.
type Snapshot struct {
	Dataset  *Dataset
	Version  uint64
	Source   string
	LoadedAt time.Time
	Warnings []string
}

// Registry is safe for concurrent use.
type Registry struct {
	current atomic.Pointer[Snapshot]
	logger  *zap.Logger
	now     func() time.Time
}

// New builds a registry serving the initial dataset.
func New(initial *Dataset, source string, logger *zap.Logger) (*Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{logger: logger, now: time.Now}
	if err := r.Replace(initial, source); err != nil {
		return nil, err
	}
	return r, nil
}

// Current returns the snapshot in service.
func (r *Registry) Current() *Snapshot {
	return r.current.Load()
}

// Dataset is shorthand for Current().Dataset.
func (r *Registry) Dataset() *Dataset {
	return r.current.Load().Dataset
}

// Replace validates ds and makes it the served dataset. On error the previous
// snapshot stays in place.
func (r *Registry) Replace(ds *Dataset, source string) error {
	warnings, err := Validate(ds)
	if err != nil {
		return fmt.Errorf("replace dataset from %s: %w", source, err)
	}

	for _, w := range warnings {
		r.logger.Warn("dataset invariant", zap.String("source", source), zap.String("detail", w))
	}

	for {
		prev := r.current.Load()
		next := &Snapshot{
			Dataset:  ds,
			Version:  1,
			Source:   source,
			LoadedAt: r.now().UTC(),
			Warnings: warnings,
		}
		if prev != nil {
			next.Version = prev.Version + 1
		}
		if r.current.CompareAndSwap(prev, next) {
			r.logger.Info("dataset replaced",
				zap.String("source", source),
				zap.String("edition", ds.Edition),
				zap.Uint64("version", next.Version),
				zap.Int("warnings", len(warnings)))
			return nil
		}
	}
}

// Load runs the loader and replaces the dataset with its result.
func (r *Registry) Load(ctx context.Context, loader Loader) error {
	ds, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("load from %s: %w", loader.Name(), err)
	}
	return r.Replace(ds, loader.Name())
}
