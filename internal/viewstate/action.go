package viewstate

import (
	"fmt"

	"weathercompare/internal/climate"
)

// ActionType names a user toggle event.
type ActionType string

const (
	ToggleCity   ActionType = "toggle-city"
	SelectCity   ActionType = "select-city"
	DeselectCity ActionType = "deselect-city"
	TogglePeriod ActionType = "toggle-period"
	SetPeriod    ActionType = "set-period"
	ToggleUnit   ActionType = "toggle-unit"
	SetUnit      ActionType = "set-unit"
	ToggleTheme  ActionType = "toggle-theme"
	SetTheme     ActionType = "set-theme"
	Reset        ActionType = "reset"
)

// Action is one user event. City is used by the city actions, Value by the
// set-* actions.
type Action struct {
	Type  ActionType     `json:"type"`
	City  climate.CityID `json:"city,omitempty"`
	Value string         `json:"value,omitempty"`
}

// Apply returns the state that results from a on s. s is not modified.
// Deselecting the last selected city is allowed and leaves an empty selection.
func Apply(lookup CityLookup, s State, a Action) (State, error) {
	next := s.clone()
	switch a.Type {
	case ToggleCity, SelectCity, DeselectCity:
		if _, err := lookup.City(a.City); err != nil {
			return State{}, err
		}
		selected := s.IsSelected(a.City)
		switch {
		case a.Type == ToggleCity && selected, a.Type == DeselectCity:
			next.Selected = without(next.Selected, a.City)
		case !selected:
			next.Selected = append(next.Selected, a.City)
		}
	case TogglePeriod:
		next.Period = s.Period.Toggle()
	case SetPeriod:
		p, err := climate.ParsePeriod(a.Value)
		if err != nil {
			return State{}, fmt.Errorf("%w: %v", ErrInvalidState, err)
		}
		next.Period = p
	case ToggleUnit:
		next.Unit = s.Unit.Toggle()
	case SetUnit:
		u, err := climate.ParseUnit(a.Value)
		if err != nil {
			return State{}, fmt.Errorf("%w: %v", ErrInvalidState, err)
		}
		next.Unit = u
	case ToggleTheme:
		next.Theme = s.Theme.Toggle()
	case SetTheme:
		th, err := ParseTheme(a.Value)
		if err != nil {
			return State{}, err
		}
		next.Theme = th
	case Reset:
		return Default(), nil
	default:
		return State{}, fmt.Errorf("%w: unknown action %q", ErrInvalidState, a.Type)
	}
	return next, nil
}

func without(ids []climate.CityID, id climate.CityID) []climate.CityID {
	out := ids[:0]
	for _, c := range ids {
		if c != id {
			out = append(out, c)
		}
	}
	return out
}
