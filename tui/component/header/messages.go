package header

import (
	"time"

	"github.com/safedep/bandview/core/bandwidth"
)

type snapshotMsg struct {
	snapshot bandwidth.Snapshot
}

type snapshotErrorMsg struct {
	err error
}

type tickMsg time.Time
