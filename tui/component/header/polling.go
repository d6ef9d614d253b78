package header

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func fetchSnapshot(src SnapshotSource, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		s, err := src.Snapshot(ctx)
		if err != nil {
			return snapshotErrorMsg{err: err}
		}
		return snapshotMsg{snapshot: s}
	}
}

func scheduleTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
