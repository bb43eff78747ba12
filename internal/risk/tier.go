// Package risk classifies lint rules into risk tiers that gate automatic
// fixing.
package risk

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Tier orders diagnostics by how much care a fix requires.
// Low < Medium < High.
type Tier int

const (
	Low Tier = iota
	Medium
	High
)

// Tiers lists every tier in ascending order.
var Tiers = []Tier{Low, Medium, High}

func (t Tier) String() string {
	switch t {
	case Low:
		return "LOW"
	case Medium:
		return "MEDIUM"
	case High:
		return "HIGH"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// AtMost reports whether t is at or below ceiling.
func (t Tier) AtMost(ceiling Tier) bool {
	return t <= ceiling
}

// ParseTier parses a tier name case-insensitively.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return Low, nil
	case "medium":
		return Medium, nil
	case "high":
		return High, nil
	}
	return Low, fmt.Errorf("invalid risk level %q (valid: low, medium, high)", s)
}

func (t Tier) MarshalText() ([]byte, error) {
	if t < Low || t > High {
		return nil, fmt.Errorf("invalid tier %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(b []byte) error {
	parsed, err := ParseTier(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON encodes the tier as its upper-case name.
func (t Tier) MarshalJSON() ([]byte, error) {
	b, err := t.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(b))
}
