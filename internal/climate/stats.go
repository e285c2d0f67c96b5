package climate

// Statistics summarises one city's series for a period, in Unit.
type Statistics struct {
	City          CityID  `json:"city"`
	Unit          Unit    `json:"unit"`
	MaxDay        float64 `json:"maxDay"`
	MaxDayMonth   int     `json:"maxDayMonth"`
	MinNight      float64 `json:"minNight"`
	MinNightMonth int     `json:"minNightMonth"`
	AvgDay        float64 `json:"avgDay"`
	AvgNight      float64 `json:"avgNight"`
	Range         float64 `json:"range"`
}

// ComputeStatistics converts the city's series to u and summarises them.
// Ties on the extremes resolve to the earliest month.
func ComputeStatistics(d *Dataset, id CityID, p Period, u Unit) (Statistics, error) {
	pair, err := d.Series(id, p)
	if err != nil {
		return Statistics{}, err
	}
	day := convertSeries(pair.Day, u)
	night := convertSeries(pair.Night, u)

	maxDay, maxDayMonth := day[0], 0
	minNight, minNightMonth := night[0], 0
	for m := 1; m < MonthsPerYear; m++ {
		if day[m] > maxDay {
			maxDay, maxDayMonth = day[m], m
		}
		if night[m] < minNight {
			minNight, minNightMonth = night[m], m
		}
	}

	return Statistics{
		City:          id,
		Unit:          u,
		MaxDay:        maxDay,
		MaxDayMonth:   maxDayMonth,
		MinNight:      minNight,
		MinNightMonth: minNightMonth,
		AvgDay:        mean(day),
		AvgNight:      mean(night),
		Range:         maxDay - minNight,
	}, nil
}

func mean(s Series) float64 {
	var sum float64
	for _, v := range s {
		sum += v
	}
	return sum / MonthsPerYear
}
