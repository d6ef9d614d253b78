package source

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/safedep/bandview/core/bandwidth"
	"github.com/safedep/dry/log"
)

const (
	maxLineSize    = 1024 * 1024
	readBufferSize = 64 * 1024
)

// ErrLineTooLong is reported for a stream line longer than the reader accepts.
var ErrLineTooLong = errors.New("snapshot line too long")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONL reads newline-delimited JSON snapshots from a stream in the
// background and serves the most recent one. After the stream ends the
// last snapshot keeps being served.
type JSONL struct {
	mu       sync.RWMutex
	latest   bandwidth.Snapshot
	received bool
	readErr  error
	closed   bool

	input   io.Reader
	done    chan struct{}
	onError func(line int, err error)
}

// JSONLOption configures a JSONL provider.
type JSONLOption func(*JSONL)

// WithDecodeErrorHandler sets the callback invoked for lines that cannot be
// decoded or exceed the line limit. The default logs a warning.
func WithDecodeErrorHandler(fn func(line int, err error)) JSONLOption {
	return func(j *JSONL) {
		j.onError = fn
	}
}

// NewJSONL starts reading snapshots from r.
func NewJSONL(r io.Reader, opts ...JSONLOption) *JSONL {
	j := &JSONL{
		input: r,
		done:  make(chan struct{}),
		onError: func(line int, err error) {
			log.Warnf("skipping malformed snapshot at line %d: %v", line, err)
		},
	}
	for _, opt := range opts {
		opt(j)
	}

	go j.run()

	return j
}

func (j *JSONL) run() {
	defer close(j.done)

	reader := bufio.NewReaderSize(j.input, readBufferSize)

	line := 0
	for {
		raw, err := readLine(reader)
		if errors.Is(err, ErrLineTooLong) {
			line++
			j.onError(line, err)
			continue
		}
		if err == nil || len(raw) > 0 {
			line++
			j.decode(line, raw)
		}

		if err == io.EOF {
			return
		}
		if err != nil {
			j.mu.Lock()
			if !j.closed {
				j.readErr = fmt.Errorf("failed to read snapshot stream: %w", err)
			}
			j.mu.Unlock()
			return
		}
	}
}

func (j *JSONL) decode(line int, raw []byte) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return
	}

	var s bandwidth.Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		j.onError(line, err)
		return
	}

	j.mu.Lock()
	j.latest = s
	j.received = true
	j.mu.Unlock()
}

// readLine returns the next line without its terminating newline. A line
// longer than maxLineSize is consumed through its newline and reported as
// ErrLineTooLong so reading can resume on the next line.
func readLine(r *bufio.Reader) ([]byte, error) {
	var (
		buf     []byte
		tooLong bool
	)

	for {
		chunk, err := r.ReadSlice('\n')
		if !tooLong {
			if len(buf)+len(chunk) > maxLineSize {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}

		if err == bufio.ErrBufferFull {
			continue
		}
		if tooLong && (err == nil || err == io.EOF) {
			return nil, fmt.Errorf("%w: exceeds %d bytes", ErrLineTooLong, maxLineSize)
		}
		return bytes.TrimSuffix(buf, []byte("\n")), err
	}
}

// Snapshot returns the latest decoded snapshot, or ErrNoData before the
// first one. Once the stream has failed the read error is returned along
// with the last snapshot, so a stalled feed is visible to the caller.
func (j *JSONL) Snapshot(ctx context.Context) (bandwidth.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return bandwidth.Snapshot{}, err
	}

	j.mu.RLock()
	defer j.mu.RUnlock()

	if j.readErr != nil {
		return j.latest, j.readErr
	}
	if !j.received {
		return bandwidth.Snapshot{}, ErrNoData
	}
	return j.latest, nil
}

// Done is closed once the input stream has been fully consumed.
func (j *JSONL) Done() <-chan struct{} {
	return j.done
}

// Close closes the input if it is closable. It does not wait for the
// reader goroutine, which exits once the input is drained or closed.
func (j *JSONL) Close() error {
	j.mu.Lock()
	j.closed = true
	j.mu.Unlock()

	if c, ok := j.input.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

var _ Provider = (*JSONL)(nil)
