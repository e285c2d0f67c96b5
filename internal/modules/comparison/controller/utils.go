package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"weathercompare/internal/climate"
	"weathercompare/internal/modules/comparison/types"
	"weathercompare/internal/modules/comparison/views"
	"weathercompare/internal/share"
	"weathercompare/internal/viewstate"
)

const maxActionBodyBytes = 64 << 10

// decodeState reads the view state from the request query. Any failure is a
// client error, including an unknown city in the query.
func (c *comparisonControllerImpl) decodeState(r *http.Request) (viewstate.State, error) {
	return viewstate.Decode(r.URL.Query(), c.dataset)
}

// parseActionRequest reads and checks a POST body. The returned status is the
// one to answer with when err is non-nil.
func (c *comparisonControllerImpl) parseActionRequest(r *http.Request) (types.ActionRequest, int, error) {
	var req types.ActionRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxActionBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return types.ActionRequest{}, http.StatusBadRequest, fmt.Errorf("invalid JSON body: %v", err)
	}
	if req.Action.Type == "" {
		return types.ActionRequest{}, http.StatusBadRequest, errors.New("missing action type")
	}

	s, err := req.State.Normalize()
	if err != nil {
		return types.ActionRequest{}, http.StatusBadRequest, err
	}
	if err := s.Validate(c.dataset); err != nil {
		return types.ActionRequest{}, statusFor(err), err
	}
	req.State = s
	return req, http.StatusOK, nil
}

func statusFor(err error) int {
	if errors.Is(err, climate.ErrUnknownCity) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// href is the dashboard link for s.
func href(path string, s viewstate.State) string {
	return path + "?" + viewstate.Encode(s).Encode()
}

// actionHref links to the state a leads to from s.
func (c *comparisonControllerImpl) actionHref(s viewstate.State, a viewstate.Action) (string, error) {
	next, err := viewstate.Apply(c.dataset, s, a)
	if err != nil {
		return "", err
	}
	return href("/", next), nil
}

func unitName(u climate.Unit) string {
	if u == climate.Fahrenheit {
		return "Fahrenheit (°F)"
	}
	return "Celsius (°C)"
}

func themeLabel(t viewstate.Theme) string {
	if t == viewstate.ThemeDark {
		return "Light mode"
	}
	return "Dark mode"
}

// buildDashboardData turns a derived view into the template model. Every
// toggle links to the state produced by applying its action.
func (c *comparisonControllerImpl) buildDashboardData(v viewstate.View) (*views.DashboardData, error) {
	s := v.State
	data := &views.DashboardData{
		Theme:        s.Theme,
		Palette:      views.PaletteFor(s.Theme),
		PeriodLabel:  v.PeriodLabel,
		UnitName:     unitName(s.Unit),
		Empty:        v.Empty,
		EmptyMessage: views.EmptyMessage,
		Chart:        views.BuildChart(v),
		Permalink:    share.PermalinkURL(c.baseURL, viewstate.Encode(s)),
		ShareImage:   href("/share.png", s),
		PartialHref:  href("/partials/comparison", s),
	}

	cities := make(map[climate.CityID]climate.City, len(v.Cities))
	for _, opt := range v.Cities {
		cities[opt.ID] = opt.City
		link, err := c.actionHref(s, viewstate.Action{Type: viewstate.ToggleCity, City: opt.ID})
		if err != nil {
			return nil, err
		}
		data.Cities = append(data.Cities, views.CityToggle{
			ID:       string(opt.ID),
			Name:     opt.Name,
			Color:    opt.Color,
			Selected: opt.Selected,
			Href:     link,
		})
	}

	toggles := []struct {
		target *views.Link
		label  string
		action viewstate.Action
	}{
		{&data.Period, v.PeriodLabel, viewstate.Action{Type: viewstate.TogglePeriod}},
		{&data.Unit, "Show " + s.Unit.Toggle().Suffix(), viewstate.Action{Type: viewstate.ToggleUnit}},
		{&data.ThemeToggle, themeLabel(s.Theme), viewstate.Action{Type: viewstate.ToggleTheme}},
		{&data.Reset, "Reset", viewstate.Action{Type: viewstate.Reset}},
	}
	for _, tg := range toggles {
		link, err := c.actionHref(s, tg.action)
		if err != nil {
			return nil, err
		}
		*tg.target = views.Link{Label: tg.label, Href: link}
	}
	data.Period.Active = s.Period == climate.PeriodNormal

	for _, st := range v.Statistics {
		data.Stats = append(data.Stats, views.NewStatCard(cities[st.City], st))
	}
	return data, nil
}
