package source

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/safedep/bandview/core/bandwidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitDone(t *testing.T, j *JSONL) {
	t.Helper()

	select {
	case <-j.Done():
	case <-time.After(5 * time.Second):
		require.FailNow(t, "jsonl reader did not finish")
	}
}

func TestJSONL_LatestSnapshotWins(t *testing.T) {
	input := strings.Join([]string{
		`{"total_bytes_uploaded":1,"total_bytes_downloaded":2,"cumulative_mode":false}`,
		``,
		`{"total_bytes_uploaded":1500,"total_bytes_downloaded":2500000,"cumulative_mode":true}`,
	}, "\n")

	j := NewJSONL(strings.NewReader(input))
	waitDone(t, j)

	got, err := j.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, bandwidth.Snapshot{
		TotalBytesUploaded:   1500,
		TotalBytesDownloaded: 2_500_000,
		CumulativeMode:       true,
	}, got)
}

func TestJSONL_MalformedLinesSkipped(t *testing.T) {
	input := "{\"total_bytes_uploaded\":5}\nnot json\n{\"total_bytes_uploaded\":\"x\"}\n"

	var badLines []int
	j := NewJSONL(strings.NewReader(input), WithDecodeErrorHandler(func(line int, err error) {
		assert.Error(t, err)
		badLines = append(badLines, line)
	}))
	waitDone(t, j)

	got, err := j.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(5), got.TotalBytesUploaded)
	assert.Equal(t, []int{2, 3}, badLines)
}

func TestJSONL_NoData(t *testing.T) {
	j := NewJSONL(strings.NewReader(""))
	waitDone(t, j)

	_, err := j.Snapshot(context.Background())
	assert.ErrorIs(t, err, ErrNoData)
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestJSONL_ReadErrorBeforeData(t *testing.T) {
	j := NewJSONL(failingReader{})
	waitDone(t, j)

	_, err := j.Snapshot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device gone")
	assert.NotErrorIs(t, err, ErrNoData)
}

func TestJSONL_OversizedLineSkipped(t *testing.T) {
	input := `{"total_bytes_uploaded":1}` + "\n" +
		`{"pad":"` + strings.Repeat("x", maxLineSize+10) + `"}` + "\n" +
		`{"total_bytes_uploaded":3}` + "\n"

	var (
		badLines []int
		badErr   error
	)
	j := NewJSONL(strings.NewReader(input), WithDecodeErrorHandler(func(line int, err error) {
		badLines = append(badLines, line)
		badErr = err
	}))
	waitDone(t, j)

	got, err := j.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), got.TotalBytesUploaded)
	assert.Equal(t, []int{2}, badLines)
	assert.ErrorIs(t, badErr, ErrLineTooLong)
}

func TestJSONL_LastLineWithoutNewline(t *testing.T) {
	j := NewJSONL(strings.NewReader("{\"total_bytes_uploaded\":1}\n{\"total_bytes_uploaded\":2}"))
	waitDone(t, j)

	got, err := j.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got.TotalBytesUploaded)
}

type failAfterReader struct {
	data []byte
}

func (r *failAfterReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, errors.New("device gone")
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestJSONL_ReadErrorAfterData(t *testing.T) {
	j := NewJSONL(&failAfterReader{data: []byte("{\"total_bytes_uploaded\":7}\n")})
	waitDone(t, j)

	got, err := j.Snapshot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device gone")
	assert.Equal(t, uint64(7), got.TotalBytesUploaded)
}

func TestJSONL_CancelledContext(t *testing.T) {
	j := NewJSONL(strings.NewReader(`{"total_bytes_uploaded":1}`))
	waitDone(t, j)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := j.Snapshot(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestJSONL_CloseClosesInput(t *testing.T) {
	pr, pw := io.Pipe()
	j := NewJSONL(pr)

	_, err := pw.Write([]byte("{\"total_bytes_downloaded\":9}\n"))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		s, err := j.Snapshot(context.Background())
		return err == nil && s.TotalBytesDownloaded == 9
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, j.Close())
	waitDone(t, j)

	s, err := j.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(9), s.TotalBytesDownloaded)
}

func TestStatic(t *testing.T) {
	want := bandwidth.Snapshot{TotalBytesUploaded: 3}
	s := NewStatic(want)

	got, err := s.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, s.Close())
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{KindJSONL, KindStatic}, r.Kinds())

	p, err := r.Open(KindStatic, OpenOptions{Snapshot: bandwidth.Snapshot{TotalBytesDownloaded: 4}})
	require.NoError(t, err)
	got, err := p.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(4), got.TotalBytesDownloaded)

	_, err = r.Open(KindJSONL, OpenOptions{})
	assert.Error(t, err)

	p, err = r.Open(KindJSONL, OpenOptions{Input: strings.NewReader("")})
	require.NoError(t, err)
	assert.IsType(t, &JSONL{}, p)

	_, err = r.Open("pcap", OpenOptions{})
	assert.EqualError(t, err, `unknown source kind "pcap"`)
}
