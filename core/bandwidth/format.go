package bandwidth

import (
	"math"

	"github.com/dustin/go-humanize"
)

// DefaultRateSuffix is appended to quantities displayed as a rate.
const DefaultRateSuffix = "/s"

// UnitSystem selects the unit family used for byte quantities.
type UnitSystem string

const (
	// UnitsDecimal uses SI units (kB, MB, GB).
	UnitsDecimal UnitSystem = "decimal"
	// UnitsBinary uses IEC units (KiB, MiB, GiB).
	UnitsBinary UnitSystem = "binary"
)

// Formatter renders a byte magnitude for display, optionally as a rate.
type Formatter interface {
	Format(magnitude float64, asRate bool) string
}

// FormatterFunc adapts a plain function to the Formatter interface.
type FormatterFunc func(magnitude float64, asRate bool) string

// Format calls f.
func (f FormatterFunc) Format(magnitude float64, asRate bool) string {
	return f(magnitude, asRate)
}

// HumanFormatter formats byte quantities with go-humanize.
type HumanFormatter struct {
	Units      UnitSystem
	RateSuffix string
}

// NewHumanFormatter creates a formatter for the given unit system.
// An empty rate suffix falls back to DefaultRateSuffix.
func NewHumanFormatter(units UnitSystem, rateSuffix string) *HumanFormatter {
	if rateSuffix == "" {
		rateSuffix = DefaultRateSuffix
	}
	return &HumanFormatter{Units: units, RateSuffix: rateSuffix}
}

// DefaultFormatter returns a decimal-unit formatter with the "/s" rate suffix.
func DefaultFormatter() *HumanFormatter {
	return NewHumanFormatter(UnitsDecimal, DefaultRateSuffix)
}

// Format implements Formatter.
func (h *HumanFormatter) Format(magnitude float64, asRate bool) string {
	n := toBytes(magnitude)

	var s string
	if h.Units == UnitsBinary {
		s = humanize.IBytes(n)
	} else {
		s = humanize.Bytes(n)
	}

	if asRate {
		suffix := h.RateSuffix
		if suffix == "" {
			suffix = DefaultRateSuffix
		}
		s += suffix
	}
	return s
}

// toBytes truncates a magnitude to a whole byte count. NaN and negative
// values become zero, values beyond the uint64 range saturate.
func toBytes(magnitude float64) uint64 {
	if math.IsNaN(magnitude) || magnitude <= 0 {
		return 0
	}
	if magnitude >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(magnitude)
}

// IsValidUnitSystem returns true if the given unit system is known.
func IsValidUnitSystem(u UnitSystem) bool {
	switch u {
	case UnitsDecimal, UnitsBinary:
		return true
	default:
		return false
	}
}
