package header

import (
	"context"
	"time"

	"github.com/safedep/bandview/core/bandwidth"
)

// SnapshotSource supplies the counters shown by the dashboard.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (bandwidth.Snapshot, error)
}

type Options struct {
	Source          SnapshotSource
	Formatter       bandwidth.Formatter
	Theme           Theme
	RefreshInterval time.Duration
	Cumulative      bool
	Now             func() time.Time
}

func (o Options) refreshInterval() time.Duration {
	if o.RefreshInterval > 0 {
		return o.RefreshInterval
	}
	return time.Second
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
