package climate

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CityReading is one city's day and night value for a month, in the record's unit.
type CityReading struct {
	City  CityID
	Day   float64
	Night float64
}

// ChartRecord is one month of the chart with a reading for every dataset city.
type ChartRecord struct {
	Index    int
	Month    string
	Readings []CityReading
}

// Reading returns the reading of id, if present.
func (r ChartRecord) Reading(id CityID) (CityReading, bool) {
	for _, cr := range r.Readings {
		if cr.City == id {
			return cr, true
		}
	}
	return CityReading{}, false
}

// MarshalJSON flattens readings into "<city>_day" / "<city>_night" keys so a
// charting client sees the same key set whatever the selection is.
func (r ChartRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	month, err := json.Marshal(r.Month)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(&buf, `"month":%s,"index":%d`, month, r.Index)
	for _, cr := range r.Readings {
		day, err := json.Marshal(cr.Day)
		if err != nil {
			return nil, err
		}
		night, err := json.Marshal(cr.Night)
		if err != nil {
			return nil, err
		}
		dayKey, _ := json.Marshal(string(cr.City) + "_day")
		nightKey, _ := json.Marshal(string(cr.City) + "_night")
		fmt.Fprintf(&buf, `,%s:%s,%s:%s`, dayKey, day, nightKey, night)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// BuildChartRecords returns the twelve monthly records, Jan through Dec, for
// every city of d. The selection is deliberately not an input.
func BuildChartRecords(d *Dataset, p Period, u Unit) []ChartRecord {
	converted := make([]SeriesPair, len(d.cities))
	for i, c := range d.cities {
		pair, _ := d.Series(c.ID, p)
		converted[i] = SeriesPair{Day: convertSeries(pair.Day, u), Night: convertSeries(pair.Night, u)}
	}

	records := make([]ChartRecord, MonthsPerYear)
	for m := 0; m < MonthsPerYear; m++ {
		readings := make([]CityReading, len(d.cities))
		for i, c := range d.cities {
			readings[i] = CityReading{City: c.ID, Day: converted[i].Day[m], Night: converted[i].Night[m]}
		}
		records[m] = ChartRecord{Index: m, Month: MonthLabels[m], Readings: readings}
	}
	return records
}
