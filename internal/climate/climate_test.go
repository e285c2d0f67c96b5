package climate

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

const tolerance = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		unit Unit
		want float64
	}{
		{name: "celsius is identity", in: 23.8, unit: Celsius, want: 23.8},
		{name: "freezing", in: 0, unit: Fahrenheit, want: 32},
		{name: "boiling", in: 100, unit: Fahrenheit, want: 212},
		{name: "warmest london day", in: 23.8, unit: Fahrenheit, want: 74.84},
		{name: "minus forty", in: -40, unit: Fahrenheit, want: -40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Convert(tt.in, tt.unit); !approx(got, tt.want) {
				t.Errorf("Convert(%v, %s) = %v; want %v", tt.in, tt.unit, got, tt.want)
			}
		})
	}
}

func TestConvert_roundTrip(t *testing.T) {
	for _, v := range []float64{-19.2, -9.9, 0, 3.1, 15.85, 23.8, 32.8} {
		f := Convert(v, Fahrenheit)
		back := (f - 32) * 5 / 9
		if !approx(back, v) {
			t.Errorf("round trip of %v = %v", v, back)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := Format(23.8, Celsius); got != "23.8°C" {
		t.Errorf("Format = %q; want 23.8°C", got)
	}
	if got := Format(Convert(23.8, Fahrenheit), Fahrenheit); got != "74.8°F" {
		t.Errorf("Format = %q; want 74.8°F", got)
	}
	if got := Format(-9.9, Celsius); got != "-9.9°C" {
		t.Errorf("Format = %q; want -9.9°C", got)
	}
}

func TestParseUnit(t *testing.T) {
	for in, want := range map[string]Unit{"c": Celsius, "Celsius": Celsius, " f ": Fahrenheit, "fahrenheit": Fahrenheit} {
		got, err := ParseUnit(in)
		if err != nil {
			t.Fatalf("ParseUnit(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseUnit(%q) = %q; want %q", in, got, want)
		}
	}
	if _, err := ParseUnit("kelvin"); err == nil {
		t.Error("ParseUnit(kelvin) = nil error; want error")
	}
}

func TestParsePeriod(t *testing.T) {
	if p, err := ParsePeriod("NORMAL"); err != nil || p != PeriodNormal {
		t.Errorf("ParsePeriod(NORMAL) = %q, %v", p, err)
	}
	if _, err := ParsePeriod("decade"); err == nil {
		t.Error("ParsePeriod(decade) = nil error; want error")
	}
	if PeriodRecent.Toggle() != PeriodNormal || PeriodNormal.Toggle() != PeriodRecent {
		t.Error("Period.Toggle does not alternate")
	}
}

func TestDataset_Series(t *testing.T) {
	d := Builtin()

	pair, err := d.Series(London, PeriodRecent)
	if err != nil {
		t.Fatalf("Series(london): %v", err)
	}
	if pair.Day[6] != 23.8 || pair.Night[0] != 3.1 {
		t.Errorf("unexpected london recent pair: %+v", pair)
	}
	normal, _ := d.Series(London, PeriodNormal)
	if normal == pair {
		t.Error("london normal equals recent; want distinct fixture data")
	}
	sr, _ := d.Series(Shanghai, PeriodRecent)
	sn, _ := d.Series(Shanghai, PeriodNormal)
	if sr != sn {
		t.Error("shanghai recent and normal differ; fixture keeps them identical")
	}
}

func TestDataset_unknownCity(t *testing.T) {
	d := Builtin()
	if _, err := d.Series("paris", PeriodRecent); !errors.Is(err, ErrUnknownCity) {
		t.Errorf("Series(paris) err = %v; want ErrUnknownCity", err)
	}
	if _, err := d.City("paris"); !errors.Is(err, ErrUnknownCity) {
		t.Errorf("City(paris) err = %v; want ErrUnknownCity", err)
	}
}

func TestDataset_citiesOrder(t *testing.T) {
	d := Builtin()
	var got []CityID
	for _, c := range d.Cities() {
		got = append(got, c.ID)
	}
	want := []CityID{London, Shanghai, Moscow, Krasnoyarsk}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Cities() = %v; want %v", got, want)
	}

	cities := d.Cities()
	cities[0].Name = "mutated"
	if c, _ := d.City(London); c.Name != "London" {
		t.Error("Cities() exposes internal slice")
	}
}

func TestNewDataset_validation(t *testing.T) {
	good := BuiltinEntries()[0]

	t.Run("empty", func(t *testing.T) {
		if _, err := NewDataset(nil); err == nil {
			t.Error("NewDataset(nil) = nil error")
		}
	})
	t.Run("duplicate", func(t *testing.T) {
		if _, err := NewDataset([]Entry{good, good}); err == nil || !strings.Contains(err.Error(), "duplicate") {
			t.Errorf("err = %v; want duplicate error", err)
		}
	})
	t.Run("blank id", func(t *testing.T) {
		e := good
		e.City.ID = "  "
		if _, err := NewDataset([]Entry{e}); err == nil {
			t.Error("NewDataset(blank id) = nil error")
		}
	})
	t.Run("not finite", func(t *testing.T) {
		e := good
		e.Climatology.Normal.Night[4] = math.NaN()
		_, err := NewDataset([]Entry{e})
		if err == nil || !strings.Contains(err.Error(), "May") {
			t.Errorf("err = %v; want non-finite error naming May", err)
		}
	})
}

func TestBuildChartRecords(t *testing.T) {
	d := Builtin()
	for _, p := range []Period{PeriodRecent, PeriodNormal} {
		for _, u := range []Unit{Celsius, Fahrenheit} {
			records := BuildChartRecords(d, p, u)
			if len(records) != MonthsPerYear {
				t.Fatalf("%s/%s: got %d records; want 12", p, u, len(records))
			}
			for m, r := range records {
				if r.Index != m || r.Month != MonthLabels[m] {
					t.Errorf("%s/%s: record %d = %d %q", p, u, m, r.Index, r.Month)
				}
				if len(r.Readings) != d.Len() {
					t.Errorf("%s/%s: record %d has %d readings; want %d", p, u, m, len(r.Readings), d.Len())
				}
				for _, c := range d.Cities() {
					pair, _ := d.Series(c.ID, p)
					got, ok := r.Reading(c.ID)
					if !ok {
						t.Fatalf("%s/%s: record %d missing %s", p, u, m, c.ID)
					}
					if !approx(got.Day, Convert(pair.Day[m], u)) || !approx(got.Night, Convert(pair.Night[m], u)) {
						t.Errorf("%s/%s: record %d %s = %+v", p, u, m, c.ID, got)
					}
				}
			}
		}
	}
}

func TestBuildChartRecords_idempotent(t *testing.T) {
	d := Builtin()
	a := BuildChartRecords(d, PeriodNormal, Fahrenheit)
	b := BuildChartRecords(d, PeriodNormal, Fahrenheit)
	if !reflect.DeepEqual(a, b) {
		t.Error("BuildChartRecords is not deterministic")
	}
}

func TestChartRecord_MarshalJSON(t *testing.T) {
	records := BuildChartRecords(Builtin(), PeriodRecent, Celsius)
	b, err := json.Marshal(records[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal %s: %v", b, err)
	}
	if got["month"] != "Jan" || got["index"] != float64(0) {
		t.Errorf("month/index = %v/%v", got["month"], got["index"])
	}
	if got["london_day"] != 8.7 || got["krasnoyarsk_night"] != -19.2 {
		t.Errorf("unexpected values in %s", b)
	}
	if len(got) != 2+2*4 {
		t.Errorf("got %d keys; want 10", len(got))
	}
}

func TestComputeRange(t *testing.T) {
	d := Builtin()
	tests := []struct {
		name     string
		selected []CityID
		period   Period
		unit     Unit
		want     AxisRange
	}{
		{name: "moscow recent celsius", selected: []CityID{Moscow}, period: PeriodRecent, unit: Celsius, want: AxisRange{Min: -12, Max: 27}},
		{name: "empty selection", selected: nil, period: PeriodRecent, unit: Celsius, want: AxisRange{Min: -2, Max: 2}},
		{name: "empty selection fahrenheit", selected: []CityID{}, period: PeriodNormal, unit: Fahrenheit, want: AxisRange{Min: -2, Max: 2}},
		// London nights never drop below zero, so the zero seed stays the minimum.
		{name: "london keeps zero seed", selected: []CityID{London}, period: PeriodRecent, unit: Celsius, want: AxisRange{Min: -2, Max: 26}},
		{name: "london fahrenheit", selected: []CityID{London}, period: PeriodRecent, unit: Fahrenheit, want: AxisRange{Min: -2, Max: 77}},
		{name: "shanghai and krasnoyarsk", selected: []CityID{Shanghai, Krasnoyarsk}, period: PeriodRecent, unit: Celsius, want: AxisRange{Min: -22, Max: 35}},
		{name: "krasnoyarsk fahrenheit", selected: []CityID{Krasnoyarsk}, period: PeriodRecent, unit: Fahrenheit, want: AxisRange{Min: -5, Max: 80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeRange(d, tt.selected, tt.period, tt.unit)
			if err != nil {
				t.Fatalf("ComputeRange: %v", err)
			}
			if got != tt.want {
				t.Errorf("ComputeRange = %+v; want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeRange_unknownCity(t *testing.T) {
	_, err := ComputeRange(Builtin(), []CityID{London, "oslo"}, PeriodRecent, Celsius)
	if !errors.Is(err, ErrUnknownCity) {
		t.Errorf("err = %v; want ErrUnknownCity", err)
	}
}

func TestComputeStatistics_london(t *testing.T) {
	got, err := ComputeStatistics(Builtin(), London, PeriodRecent, Celsius)
	if err != nil {
		t.Fatalf("ComputeStatistics: %v", err)
	}
	if got.MaxDay != 23.8 || got.MaxDayMonth != 6 {
		t.Errorf("max day = %v (%d); want 23.8 (Jul)", got.MaxDay, got.MaxDayMonth)
	}
	if got.MinNight != 3.1 || got.MinNightMonth != 0 {
		t.Errorf("min night = %v (%d); want 3.1 (Jan)", got.MinNight, got.MinNightMonth)
	}
	if !approx(got.AvgDay, 190.2/12) {
		t.Errorf("avg day = %v; want %v", got.AvgDay, 190.2/12)
	}
	if !approx(got.AvgNight, 101.6/12) {
		t.Errorf("avg night = %v; want %v", got.AvgNight, 101.6/12)
	}
	if !approx(got.Range, 20.7) {
		t.Errorf("range = %v; want 20.7", got.Range)
	}
	if Format(got.AvgDay, got.Unit) != "15.8°C" && Format(got.AvgDay, got.Unit) != "15.9°C" {
		t.Errorf("formatted avg day = %q", Format(got.AvgDay, got.Unit))
	}
}

func TestComputeStatistics_fahrenheit(t *testing.T) {
	d := Builtin()
	c, _ := ComputeStatistics(d, Moscow, PeriodRecent, Celsius)
	f, err := ComputeStatistics(d, Moscow, PeriodRecent, Fahrenheit)
	if err != nil {
		t.Fatalf("ComputeStatistics: %v", err)
	}
	if f.MaxDayMonth != c.MaxDayMonth || f.MinNightMonth != c.MinNightMonth {
		t.Errorf("months changed with unit: %+v vs %+v", f, c)
	}
	if !approx(f.MaxDay, Convert(24.1, Fahrenheit)) || !approx(f.MinNight, Convert(-9.9, Fahrenheit)) {
		t.Errorf("extremes = %v / %v", f.MaxDay, f.MinNight)
	}
	if !approx(f.Range, f.MaxDay-f.MinNight) {
		t.Errorf("range = %v; want %v", f.Range, f.MaxDay-f.MinNight)
	}
	if !approx(f.Range, c.Range*9/5) {
		t.Errorf("range = %v; want %v", f.Range, c.Range*9/5)
	}
	if !approx(f.AvgDay, Convert(c.AvgDay, Fahrenheit)) {
		t.Errorf("avg day = %v; want %v", f.AvgDay, Convert(c.AvgDay, Fahrenheit))
	}
}

func TestComputeStatistics_tieBreak(t *testing.T) {
	e := Entry{
		City: City{ID: "ties", Name: "Ties"},
		Climatology: Climatology{
			Recent: SeriesPair{
				Day:   Series{10, 12, 12, 5, 1, 1, 1, 1, 1, 1, 1, 1},
				Night: Series{4, 4, -3, 2, 2, 2, 2, -3, 2, 2, 2, 2},
			},
		},
	}
	d, err := NewDataset([]Entry{e})
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	got, err := ComputeStatistics(d, "ties", PeriodRecent, Celsius)
	if err != nil {
		t.Fatalf("ComputeStatistics: %v", err)
	}
	if got.MaxDay != 12 || got.MaxDayMonth != 1 {
		t.Errorf("max day = %v at %d; want 12 at 1 (Feb)", got.MaxDay, got.MaxDayMonth)
	}
	if got.MinNight != -3 || got.MinNightMonth != 2 {
		t.Errorf("min night = %v at %d; want -3 at 2 (Mar)", got.MinNight, got.MinNightMonth)
	}
}

func TestComputeStatistics_unknownCity(t *testing.T) {
	if _, err := ComputeStatistics(Builtin(), "lima", PeriodNormal, Celsius); !errors.Is(err, ErrUnknownCity) {
		t.Errorf("err = %v; want ErrUnknownCity", err)
	}
}
