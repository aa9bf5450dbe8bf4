package engine

import (
	"fmt"
	"strings"
)

// Stability is an ordered qualitative class; lower values are more stable.
type Stability int

const (
	VeryHigh Stability = iota
	High
	Medium
	Low
	VeryLow
)

// Class boundaries in eV. Each bound belongs to the less stable class.
const (
	VeryHighBelow = -2.5
	HighBelow     = -2.0
	MediumBelow   = -1.5
	LowBelow      = -1.0
)

var stabilityNames = [...]string{"Very High", "High", "Medium", "Low", "Very Low"}
var stabilityKeys = [...]string{"VeryHigh", "High", "Medium", "Low", "VeryLow"}

// Tone names the traffic-light colour used when rendering a class.
type Tone string

const (
	ToneGreen  Tone = "green"
	ToneYellow Tone = "yellow"
	ToneOrange Tone = "orange"
	ToneRed    Tone = "red"
)

// Classify maps a formation energy to its stability class. More negative is
// more stable; Classify(-2.5) is High, not VeryHigh.
func Classify(energy float64) Stability {
	switch {
	case energy < VeryHighBelow:
		return VeryHigh
	case energy < HighBelow:
		return High
	case energy < MediumBelow:
		return Medium
	case energy < LowBelow:
		return Low
	default:
		return VeryLow
	}
}

func (s Stability) valid() bool { return s >= VeryHigh && s <= VeryLow }

func (s Stability) String() string {
	if !s.valid() {
		return fmt.Sprintf("Stability(%d)", int(s))
	}
	return stabilityNames[s]
}

// Key is the compact identifier used in files and flags.
func (s Stability) Key() string {
	if !s.valid() {
		return ""
	}
	return stabilityKeys[s]
}

// Tone returns the display colour of the class.
func (s Stability) Tone() Tone {
	switch s {
	case VeryHigh, High:
		return ToneGreen
	case Medium:
		return ToneYellow
	case Low:
		return ToneOrange
	default:
		return ToneRed
	}
}

// Promising reports whether the class warrants experimental follow-up.
func (s Stability) Promising() bool { return s == VeryHigh || s == High }

// AtLeast reports whether s is as stable as min or more.
func (s Stability) AtLeast(min Stability) bool { return s <= min }

func (s Stability) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("invalid stability %d", int(s))
	}
	return []byte(s.Key()), nil
}

func (s *Stability) UnmarshalText(b []byte) error {
	v, err := ParseStability(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseStability accepts the key or display name in any case, with or
// without separators ("very-high", "Very High", "veryhigh").
func ParseStability(s string) (Stability, error) {
	norm := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	for i, k := range stabilityKeys {
		if strings.ToLower(k) == norm {
			return Stability(i), nil
		}
	}
	return 0, fmt.Errorf("unknown stability %q (expected one of %s)", s, strings.Join(stabilityKeys[:], ", "))
}
