// Package source provides snapshot providers that feed the dashboard with
// traffic totals produced by an external accounting process.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/safedep/bandview/core/bandwidth"
)

// Provider kinds known to the default registry.
const (
	KindStatic = "static"
	KindJSONL  = "jsonl"
)

// ErrNoData is returned by a provider that has not received any snapshot yet.
var ErrNoData = errors.New("no snapshot received yet")

// Provider supplies the most recent snapshot. Implementations must return a
// consistent snapshot: all fields observed at one instant.
type Provider interface {
	// Snapshot returns the latest snapshot.
	Snapshot(ctx context.Context) (bandwidth.Snapshot, error)
	// Close releases any resources held by the provider.
	Close() error
}

// OpenOptions carries the inputs a provider factory may need.
type OpenOptions struct {
	// Input is the stream read by stream-backed providers.
	Input io.Reader
	// Snapshot is the fixed value served by the static provider.
	Snapshot bandwidth.Snapshot
}

// Factory creates a provider from options.
type Factory func(opts OpenOptions) (Provider, error)

// Registry manages provider factories by kind.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// DefaultRegistry returns a registry with the static and jsonl providers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(KindStatic, func(opts OpenOptions) (Provider, error) {
		return NewStatic(opts.Snapshot), nil
	})
	r.Register(KindJSONL, func(opts OpenOptions) (Provider, error) {
		if opts.Input == nil {
			return nil, fmt.Errorf("%s provider requires an input stream", KindJSONL)
		}
		return NewJSONL(opts.Input), nil
	})
	return r
}

// Register adds a factory to the registry, replacing any existing one.
func (r *Registry) Register(kind string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[kind] = f
}

// Open creates a provider of the given kind.
func (r *Registry) Open(kind string, opts OpenOptions) (Provider, error) {
	r.mu.RLock()
	f, ok := r.factories[kind]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown source kind %q", kind)
	}
	return f(opts)
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	return kinds
}
