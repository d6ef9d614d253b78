package source

import (
	"context"

	"github.com/safedep/bandview/core/bandwidth"
)

// Static serves a fixed snapshot.
type Static struct {
	snapshot bandwidth.Snapshot
}

// NewStatic creates a provider that always returns s.
func NewStatic(s bandwidth.Snapshot) *Static {
	return &Static{snapshot: s}
}

func (s *Static) Snapshot(ctx context.Context) (bandwidth.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return bandwidth.Snapshot{}, err
	}
	return s.snapshot, nil
}

func (s *Static) Close() error { return nil }

var _ Provider = (*Static)(nil)
