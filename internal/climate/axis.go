package climate

import "math"

// axisPadding is added below the floor and above the ceiling of the data.
const axisPadding = 2

// AxisRange is the Y-axis domain of the chart.
type AxisRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ComputeRange derives the Y-axis domain from the selected cities only.
// The running min and max start at zero, so a selection whose values never
// cross zero still has zero inside its domain and an empty selection yields
// [-2, 2].
func ComputeRange(d *Dataset, selected []CityID, p Period, u Unit) (AxisRange, error) {
	lo, hi := 0.0, 0.0
	for _, id := range selected {
		pair, err := d.Series(id, p)
		if err != nil {
			return AxisRange{}, err
		}
		for m := 0; m < MonthsPerYear; m++ {
			lo = math.Min(lo, Convert(pair.Night[m], u))
			hi = math.Max(hi, Convert(pair.Day[m], u))
		}
	}
	return AxisRange{
		Min: math.Floor(lo) - axisPadding,
		Max: math.Ceil(hi) + axisPadding,
	}, nil
}
