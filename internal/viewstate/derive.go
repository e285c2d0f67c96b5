package viewstate

import "weathercompare/internal/climate"

// CityOption is a city toggle with its current selection.
type CityOption struct {
	climate.City
	Selected bool `json:"selected"`
}

// View is everything the presentation layer renders for a state.
type View struct {
	State       State                 `json:"state"`
	PeriodLabel string                `json:"periodLabel"`
	Cities      []CityOption          `json:"cities"`
	Records     []climate.ChartRecord `json:"records"`
	Range       climate.AxisRange     `json:"range"`
	Statistics  []climate.Statistics  `json:"statistics"`
	Empty       bool                  `json:"empty"`
}

// Derive recomputes the view from the dataset and s. Nothing is cached.
func Derive(d *climate.Dataset, s State) (View, error) {
	cities := d.Cities()
	options := make([]CityOption, len(cities))
	for i, c := range cities {
		options[i] = CityOption{City: c, Selected: s.IsSelected(c.ID)}
	}

	axis, err := climate.ComputeRange(d, s.Selected, s.Period, s.Unit)
	if err != nil {
		return View{}, err
	}

	stats := make([]climate.Statistics, 0, len(s.Selected))
	for _, id := range s.Selected {
		st, err := climate.ComputeStatistics(d, id, s.Period, s.Unit)
		if err != nil {
			return View{}, err
		}
		stats = append(stats, st)
	}

	return View{
		State:       s.clone(),
		PeriodLabel: s.Period.Label(),
		Cities:      options,
		Records:     climate.BuildChartRecords(d, s.Period, s.Unit),
		Range:       axis,
		Statistics:  stats,
		Empty:       s.Empty(),
	}, nil
}
