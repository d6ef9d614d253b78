package tui

// HeaderView represents a rendered header strip for display.
type HeaderView struct {
	// Line is the styled strip, ready to be written to a terminal.
	Line string `json:"-"`
	// Text is the strip without styling.
	Text      string         `json:"text"`
	Width     int            `json:"width"`
	Paused    bool           `json:"paused"`
	Fragments []FragmentView `json:"fragments"`
}

// FragmentView represents one painted fragment of the header.
type FragmentView struct {
	Text      string `json:"text"`
	Alignment string `json:"alignment"`
	Emphasis  string `json:"emphasis"`
	Color     string `json:"color"`
}

// ConfigView represents configuration for display.
type ConfigView struct {
	Location string                 `json:"location"`
	Values   map[string]interface{} `json:"values"`
}

// DoctorView represents doctor check results.
type DoctorView struct {
	Checks []DoctorCheck `json:"checks"`
	AllOK  bool          `json:"all_ok"`
}

// DoctorCheck represents a single doctor check.
type DoctorCheck struct {
	Name       string      `json:"name"`
	Status     CheckStatus `json:"status"`
	Message    string      `json:"message,omitempty"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// CheckStatus represents the status of a doctor check.
type CheckStatus string

const (
	CheckOK   CheckStatus = "ok"
	CheckWarn CheckStatus = "warn"
	CheckFail CheckStatus = "fail"
)
