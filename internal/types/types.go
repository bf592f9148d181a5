package types

import (
	"fmt"
	"strings"
)

// Variant selects the column-alias table and the fields a Product carries.
type Variant int

const (
	// VariantClassic carries quantity and zone.
	VariantClassic Variant = iota + 1
	// VariantExtended keeps every unrecognized column in Product.Extra.
	VariantExtended
)

func (v Variant) String() string {
	switch v {
	case VariantClassic:
		return "classic"
	case VariantExtended:
		return "extended"
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// ParseVariant accepts "classic"/"extended" or "1"/"2".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic", "1":
		return VariantClassic, nil
	case "extended", "2":
		return VariantExtended, nil
	}
	return 0, fmt.Errorf("unknown variant %q (want classic or extended)", s)
}

// Zone is a coarse grouping of cells. The stored value is whatever the
// spreadsheet said, uppercased; use ParseZone before rendering.
type Zone string

const (
	ZoneA       Zone = "A"
	ZoneB       Zone = "B"
	ZoneC       Zone = "C"
	ZoneD       Zone = "D"
	ZoneUnknown Zone = "?"
)

// Zones lists the known zones in legend order.
var Zones = []Zone{ZoneA, ZoneB, ZoneC, ZoneD}

// Known reports whether z is one of A-D.
func (z Zone) Known() bool {
	switch z {
	case ZoneA, ZoneB, ZoneC, ZoneD:
		return true
	}
	return false
}

// ParseZone maps s to a known zone, or ZoneUnknown.
func ParseZone(s string) Zone {
	z := Zone(strings.ToUpper(strings.TrimSpace(s)))
	if z.Known() {
		return z
	}
	return ZoneUnknown
}

// ZoneLabel returns the legend caption for a zone.
func ZoneLabel(z Zone) string {
	switch z {
	case ZoneA:
		return "Electronics"
	case ZoneB:
		return "Peripherals"
	case ZoneC:
		return "Accessories"
	case ZoneD:
		return "Network equipment"
	}
	return "Unknown zone"
}

// Product is one normalized inventory row.
type Product struct {
	ID       string
	Article  string
	Name     string
	Cell     string
	Quantity float64
	Zone     Zone

	// Extra holds the original columns that no alias claimed (extended variant).
	Extra map[string]string
}

// Row is one data row keyed by header text.
type Row map[string]string

type ImportResult struct {
	BatchID  string
	Source   string
	Sheet    string
	Rows     int
	Products []Product
}

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "info"
}

type Notification struct {
	Title       string
	Description string
	Severity    Severity
}
