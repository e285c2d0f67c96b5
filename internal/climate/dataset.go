// Package climate holds the fixed monthly temperature catalog and the pure
// derivations the comparison view is built from: chart records, the Y-axis
// range and per-city statistics.
package climate

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/dolthub/swiss"
)

// MonthsPerYear is the length of every series.
const MonthsPerYear = 12

// MonthLabels indexes short month names by month (0 = Jan).
var MonthLabels = [MonthsPerYear]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// ErrUnknownCity is returned when a city id is not part of the dataset.
var ErrUnknownCity = errors.New("unknown city")

// CityID identifies a city in the dataset.
type CityID string

// City is the display metadata of a dataset entry.
type City struct {
	ID    CityID `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Series is one measurement for every calendar month, in Celsius.
type Series [MonthsPerYear]float64

// SeriesPair holds the day and night series of one city for one period.
type SeriesPair struct {
	Day   Series `json:"day"`
	Night Series `json:"night"`
}

// Climatology is the recent and normal series of a city.
type Climatology struct {
	Recent SeriesPair
	Normal SeriesPair
}

// For returns the pair matching p. Anything other than PeriodNormal selects recent.
func (c Climatology) For(p Period) SeriesPair {
	if p == PeriodNormal {
		return c.Normal
	}
	return c.Recent
}

// Entry is one city of a dataset under construction.
type Entry struct {
	City        City
	Climatology Climatology
}

// Dataset is the immutable city catalog. It is safe for concurrent use.
type Dataset struct {
	cities []City
	index  *swiss.Map[CityID, Climatology]
}

// NewDataset validates entries and builds a Dataset. City order is preserved.
func NewDataset(entries []Entry) (*Dataset, error) {
	if len(entries) == 0 {
		return nil, errors.New("dataset: no cities")
	}
	d := &Dataset{
		cities: make([]City, 0, len(entries)),
		index:  swiss.NewMap[CityID, Climatology](uint32(len(entries))),
	}
	for _, e := range entries {
		id := CityID(strings.TrimSpace(string(e.City.ID)))
		if id == "" {
			return nil, errors.New("dataset: empty city id")
		}
		if d.index.Has(id) {
			return nil, fmt.Errorf("dataset: duplicate city %q", id)
		}
		if err := validatePair(e.Climatology.Recent); err != nil {
			return nil, fmt.Errorf("dataset: city %q recent: %w", id, err)
		}
		if err := validatePair(e.Climatology.Normal); err != nil {
			return nil, fmt.Errorf("dataset: city %q normal: %w", id, err)
		}
		c := e.City
		c.ID = id
		d.cities = append(d.cities, c)
		d.index.Put(id, e.Climatology)
	}
	return d, nil
}

func validatePair(p SeriesPair) error {
	for i := 0; i < MonthsPerYear; i++ {
		if math.IsNaN(p.Day[i]) || math.IsInf(p.Day[i], 0) {
			return fmt.Errorf("day value for %s is not finite", MonthLabels[i])
		}
		if math.IsNaN(p.Night[i]) || math.IsInf(p.Night[i], 0) {
			return fmt.Errorf("night value for %s is not finite", MonthLabels[i])
		}
	}
	return nil
}

// Cities returns the city table in dataset order.
func (d *Dataset) Cities() []City {
	out := make([]City, len(d.cities))
	copy(out, d.cities)
	return out
}

// Len returns the number of cities.
func (d *Dataset) Len() int {
	return len(d.cities)
}

// City returns the metadata of id.
func (d *Dataset) City(id CityID) (City, error) {
	for _, c := range d.cities {
		if c.ID == id {
			return c, nil
		}
	}
	return City{}, fmt.Errorf("%w: %q", ErrUnknownCity, id)
}

// Series returns the series pair of id for period p.
func (d *Dataset) Series(id CityID, p Period) (SeriesPair, error) {
	c, ok := d.index.Get(id)
	if !ok {
		return SeriesPair{}, fmt.Errorf("%w: %q", ErrUnknownCity, id)
	}
	return c.For(p), nil
}
