// Package viewstate models the user's current selections as an immutable value
// and derives the comparison view from it.
package viewstate

import (
	"errors"
	"fmt"
	"strings"

	"weathercompare/internal/climate"
)

// ErrInvalidState is returned for malformed state or action values.
var ErrInvalidState = errors.New("invalid view state")

// Theme is presentation only; derivation ignores it.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("%w: theme %q (allowed: light, dark)", ErrInvalidState, s)
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// CityLookup resolves city ids. *climate.Dataset implements it.
type CityLookup interface {
	City(id climate.CityID) (climate.City, error)
}

// State is the complete set of user selections. Selected keeps insertion
// order and may be empty. Values are never mutated in place.
type State struct {
	Selected []climate.CityID `json:"cities"`
	Period   climate.Period   `json:"period"`
	Unit     climate.Unit     `json:"unit"`
	Theme    Theme            `json:"theme"`
}

// Default is the state of a fresh load.
func Default() State {
	return State{
		Selected: []climate.CityID{climate.London},
		Period:   climate.PeriodRecent,
		Unit:     climate.Celsius,
		Theme:    ThemeLight,
	}
}

// IsSelected reports whether id is in the selection.
func (s State) IsSelected(id climate.CityID) bool {
	for _, c := range s.Selected {
		if c == id {
			return true
		}
	}
	return false
}

// Empty reports whether no city is selected.
func (s State) Empty() bool {
	return len(s.Selected) == 0
}

func (s State) clone() State {
	out := s
	out.Selected = make([]climate.CityID, len(s.Selected))
	copy(out.Selected, s.Selected)
	return out
}

// Validate checks every field, resolving cities through lookup.
func (s State) Validate(lookup CityLookup) error {
	if _, err := climate.ParsePeriod(string(s.Period)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	if _, err := climate.ParseUnit(string(s.Unit)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	if _, err := ParseTheme(string(s.Theme)); err != nil {
		return err
	}
	seen := make(map[climate.CityID]bool, len(s.Selected))
	for _, id := range s.Selected {
		if seen[id] {
			return fmt.Errorf("%w: city %q selected twice", ErrInvalidState, id)
		}
		seen[id] = true
		if _, err := lookup.City(id); err != nil {
			return err
		}
	}
	return nil
}

// Normalize canonicalises flag spellings ("f" -> fahrenheit), fills blank
// flags with defaults and drops duplicate cities.
func (s State) Normalize() (State, error) {
	def := Default()
	out := s.clone()
	if strings.TrimSpace(string(out.Period)) == "" {
		out.Period = def.Period
	} else {
		p, err := climate.ParsePeriod(string(out.Period))
		if err != nil {
			return State{}, fmt.Errorf("%w: %v", ErrInvalidState, err)
		}
		out.Period = p
	}
	if strings.TrimSpace(string(out.Unit)) == "" {
		out.Unit = def.Unit
	} else {
		u, err := climate.ParseUnit(string(out.Unit))
		if err != nil {
			return State{}, fmt.Errorf("%w: %v", ErrInvalidState, err)
		}
		out.Unit = u
	}
	if strings.TrimSpace(string(out.Theme)) == "" {
		out.Theme = def.Theme
	} else {
		th, err := ParseTheme(string(out.Theme))
		if err != nil {
			return State{}, err
		}
		out.Theme = th
	}
	out.Selected = dedupe(out.Selected)
	return out, nil
}

func dedupe(ids []climate.CityID) []climate.CityID {
	out := make([]climate.CityID, 0, len(ids))
	seen := make(map[climate.CityID]bool, len(ids))
	for _, id := range ids {
		id = climate.CityID(strings.ToLower(strings.TrimSpace(string(id))))
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
