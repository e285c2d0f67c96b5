package climate

import (
	"fmt"
	"strings"
)

// Unit is the temperature unit values are reported in. Stored data is always Celsius.
type Unit string

const (
	Celsius    Unit = "celsius"
	Fahrenheit Unit = "fahrenheit"
)

// ParseUnit accepts the long names and the single-letter forms used in query strings.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "celsius", "c", "°c":
		return Celsius, nil
	case "fahrenheit", "f", "°f":
		return Fahrenheit, nil
	default:
		return "", fmt.Errorf("invalid unit %q (allowed: celsius, fahrenheit)", s)
	}
}

// Suffix returns the display suffix for u.
func (u Unit) Suffix() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// Toggle returns the other unit.
func (u Unit) Toggle() Unit {
	if u == Fahrenheit {
		return Celsius
	}
	return Fahrenheit
}

// Convert converts a Celsius value into u.
func Convert(celsius float64, u Unit) float64 {
	if u != Fahrenheit {
		return celsius
	}
	return celsius*9/5 + 32
}

// Format renders v (already in unit u) with one decimal place and the unit suffix.
func Format(v float64, u Unit) string {
	return fmt.Sprintf("%.1f%s", v, u.Suffix())
}

func convertSeries(s Series, u Unit) Series {
	if u != Fahrenheit {
		return s
	}
	var out Series
	for i, v := range s {
		out[i] = Convert(v, u)
	}
	return out
}
