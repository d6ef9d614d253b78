// Package bandwidth holds the traffic totals shown by the dashboard and the
// formatter that turns byte quantities into display strings.
package bandwidth

// Snapshot is an instantaneous, read-only view of the monitored counters.
// It is a small value and is copied per frame rather than shared.
type Snapshot struct {
	// TotalBytesUploaded is the number of bytes sent.
	TotalBytesUploaded uint64 `json:"total_bytes_uploaded"`
	// TotalBytesDownloaded is the number of bytes received.
	TotalBytesDownloaded uint64 `json:"total_bytes_downloaded"`
	// CumulativeMode displays raw totals when true and per-second rates when false.
	CumulativeMode bool `json:"cumulative_mode"`
}

// AsRate reports whether the counters should be displayed as a rate.
func (s Snapshot) AsRate() bool {
	return !s.CumulativeMode
}

// WithCumulativeMode returns a copy of the snapshot with the mode flag replaced.
func (s Snapshot) WithCumulativeMode(cumulative bool) Snapshot {
	s.CumulativeMode = cumulative
	return s
}
