package viewstate

import (
	"net/url"
	"strings"

	"weathercompare/internal/climate"
)

// Query keys of the permalink encoding.
const (
	keyCities = "cities"
	keyPeriod = "period"
	keyUnit   = "unit"
	keyTheme  = "theme"
)

// Decode reads a state from query values. A missing "cities" key means the
// default selection; a present but empty one means no city is selected.
func Decode(q url.Values, lookup CityLookup) (State, error) {
	s := Default()
	if vals, ok := q[keyCities]; ok {
		s.Selected = nil
		for _, v := range vals {
			for _, part := range strings.Split(v, ",") {
				s.Selected = append(s.Selected, climate.CityID(part))
			}
		}
	}
	s.Period = climate.Period(q.Get(keyPeriod))
	s.Unit = climate.Unit(q.Get(keyUnit))
	s.Theme = Theme(q.Get(keyTheme))

	s, err := s.Normalize()
	if err != nil {
		return State{}, err
	}
	if err := s.Validate(lookup); err != nil {
		return State{}, err
	}
	return s, nil
}

// Encode is the inverse of Decode.
func Encode(s State) url.Values {
	ids := make([]string, len(s.Selected))
	for i, id := range s.Selected {
		ids[i] = string(id)
	}
	return url.Values{
		keyCities: {strings.Join(ids, ",")},
		keyPeriod: {string(s.Period)},
		keyUnit:   {string(s.Unit)},
		keyTheme:  {string(s.Theme)},
	}
}
