package header

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/safedep/bandview/core/bandwidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	snapshot bandwidth.Snapshot
	err      error
}

func (s fakeSource) Snapshot(ctx context.Context) (bandwidth.Snapshot, error) {
	return s.snapshot, s.err
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestModel(src SnapshotSource) (Model, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	m := New(Options{
		Source:          src,
		Theme:           NewTheme("", "", false),
		RefreshInterval: time.Second,
		Now:             clock.Now,
	})
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	next, _ := m.Update(msg)
	switch v := next.(type) {
	case Model:
		return v
	case *Model:
		return *v
	default:
		require.FailNow(t, "unexpected model type")
		return m
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_SnapshotFlowsIntoRequest(t *testing.T) {
	m, clock := newTestModel(nil)

	snap := bandwidth.Snapshot{TotalBytesUploaded: 1500, TotalBytesDownloaded: 2_500_000}
	m = update(t, m, snapshotMsg{snapshot: snap})
	clock.advance(3725 * time.Second)

	req := m.Request()
	assert.Equal(t, snap, req.Snapshot)
	assert.Equal(t, 3725*time.Second, req.Elapsed)
	assert.False(t, req.Paused)
}

func TestModel_PauseFreezesElapsedAndSnapshot(t *testing.T) {
	m, clock := newTestModel(nil)

	m = update(t, m, snapshotMsg{snapshot: bandwidth.Snapshot{TotalBytesUploaded: 1}})
	clock.advance(10 * time.Second)

	m = update(t, m, keyMsg("p"))
	assert.True(t, m.Request().Paused)

	clock.advance(5 * time.Second)
	m = update(t, m, snapshotMsg{snapshot: bandwidth.Snapshot{TotalBytesUploaded: 99}})

	req := m.Request()
	assert.Equal(t, 10*time.Second, req.Elapsed)
	assert.Equal(t, uint64(1), req.Snapshot.TotalBytesUploaded)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	clock.advance(2 * time.Second)

	req = m.Request()
	assert.False(t, req.Paused)
	assert.Equal(t, 12*time.Second, req.Elapsed)
}

func TestModel_ToggleCumulative(t *testing.T) {
	m, _ := newTestModel(nil)
	assert.False(t, m.Request().Snapshot.CumulativeMode)

	m = update(t, m, keyMsg("t"))
	assert.True(t, m.Request().Snapshot.CumulativeMode)

	// the toggle wins over whatever the source reports
	m = update(t, m, snapshotMsg{snapshot: bandwidth.Snapshot{CumulativeMode: false}})
	assert.True(t, m.Request().Snapshot.CumulativeMode)

	m = update(t, m, keyMsg("t"))
	assert.False(t, m.Request().Snapshot.CumulativeMode)
}

func TestModel_ErrorShownInFooterAndCleared(t *testing.T) {
	m, _ := newTestModel(nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 6})

	m = update(t, m, snapshotErrorMsg{err: errors.New("no data yet")})
	assert.Contains(t, m.View(), "err: no data yet")

	m = update(t, m, snapshotMsg{})
	assert.NotContains(t, m.View(), "err:")
}

func TestModel_View(t *testing.T) {
	m, clock := newTestModel(nil)
	assert.Equal(t, "loading...", m.View())

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 8})
	m = update(t, m, snapshotMsg{snapshot: bandwidth.Snapshot{TotalBytesUploaded: 1500, TotalBytesDownloaded: 2_500_000}})
	clock.advance(3725 * time.Second)

	view := m.View()
	assert.Contains(t, view, " Total Up / Down: 1.5 kB/s / 2.5 MB/s")
	assert.Contains(t, view, "01:02:05 ")
	assert.Contains(t, view, "rate")

	m = update(t, m, keyMsg("p"))
	assert.Contains(t, m.View(), "[PAUSED]")
}

func TestModel_NarrowViewDropsElapsed(t *testing.T) {
	m, clock := newTestModel(nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 4})
	clock.advance(3725 * time.Second)

	assert.NotContains(t, m.View(), "01:02:05")
}

func TestModel_InitFetchesFromSource(t *testing.T) {
	snap := bandwidth.Snapshot{TotalBytesUploaded: 7}
	m, _ := newTestModel(fakeSource{snapshot: snap})

	msg := m.fetch()()
	assert.Equal(t, snapshotMsg{snapshot: snap}, msg)

	failing, _ := newTestModel(fakeSource{err: errors.New("boom")})
	msg = failing.fetch()()
	errMsg, ok := msg.(snapshotErrorMsg)
	require.True(t, ok)
	assert.EqualError(t, errMsg.err, "boom")

	assert.NotNil(t, m.Init())
}

func TestModel_QuitKeys(t *testing.T) {
	m, _ := newTestModel(nil)

	for _, k := range []tea.KeyMsg{keyMsg("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestElapsedClock(t *testing.T) {
	start := time.Unix(1000, 0)
	c := newElapsedClock(start)

	assert.Equal(t, 30*time.Second, c.elapsed(start.Add(30*time.Second)))

	c.pause(start.Add(30 * time.Second))
	c.pause(start.Add(40 * time.Second))
	assert.Equal(t, 30*time.Second, c.elapsed(start.Add(50*time.Second)))

	c.resume(start.Add(60 * time.Second))
	c.resume(start.Add(70 * time.Second))
	assert.Equal(t, 40*time.Second, c.elapsed(start.Add(70*time.Second)))

	assert.Equal(t, time.Duration(0), c.elapsed(start.Add(-time.Hour)))
}
