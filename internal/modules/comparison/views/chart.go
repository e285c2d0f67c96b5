package views

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"weathercompare/internal/climate"
	"weathercompare/internal/viewstate"
)

// Chart geometry in SVG user units.
const (
	chartWidth        = 960.0
	chartHeight       = 500.0
	chartMarginLeft   = 64.0
	chartMarginRight  = 30.0
	chartMarginTop    = 20.0
	chartMarginBottom = 40.0
	maxYTicks         = 10
)

var yTickSteps = []int{1, 2, 5, 10, 20, 50, 100}

// ChartTick is one axis tick at Pos (x for the month axis, y for temperature).
type ChartTick struct {
	Pos   float64
	Label string
}

// ChartPoint is a plotted reading with its tooltip text.
type ChartPoint struct {
	X     float64
	Y     float64
	Title string
}

// ChartSeries is one polyline: a city's day or night temperatures.
type ChartSeries struct {
	Name   string
	Color  string
	Dashed bool
	Width  float64
	Radius float64
	Points string
	Dots   []ChartPoint
}

type Chart struct {
	Width     float64
	Height    float64
	Left      float64
	Top       float64
	Right     float64
	Bottom    float64
	AxisLabel string
	XTicks    []ChartTick
	YTicks    []ChartTick
	Series    []ChartSeries
}

// BuildChart lays out the selected cities of v on a fixed canvas, scaled to
// v.Range. Each city contributes a solid day line and a dashed night line.
func BuildChart(v viewstate.View) Chart {
	c := Chart{
		Width:     chartWidth,
		Height:    chartHeight,
		Left:      chartMarginLeft,
		Top:       chartMarginTop,
		Right:     chartWidth - chartMarginRight,
		Bottom:    chartHeight - chartMarginBottom,
		AxisLabel: fmt.Sprintf("Temperature (%s)", v.State.Unit.Suffix()),
	}

	for i, label := range climate.MonthLabels {
		c.XTicks = append(c.XTicks, ChartTick{Pos: c.x(i), Label: label})
	}

	lo, hi := v.Range.Min, v.Range.Max
	step := yTickStep(hi - lo)
	for t := int(math.Ceil(lo/float64(step))) * step; float64(t) <= hi; t += step {
		c.YTicks = append(c.YTicks, ChartTick{Pos: c.y(float64(t), v.Range), Label: strconv.Itoa(t)})
	}

	names := make(map[climate.CityID]climate.City, len(v.Cities))
	for _, opt := range v.Cities {
		names[opt.ID] = opt.City
	}
	for _, id := range v.State.Selected {
		city := names[id]
		day := ChartSeries{Name: city.Name + " Day", Color: city.Color, Width: 3, Radius: 4}
		night := ChartSeries{Name: city.Name + " Night", Color: city.Color, Dashed: true, Width: 2, Radius: 3}
		var dayPts, nightPts []string
		for _, rec := range v.Records {
			r, ok := rec.Reading(id)
			if !ok {
				continue
			}
			x := c.x(rec.Index)
			dy, ny := c.y(r.Day, v.Range), c.y(r.Night, v.Range)
			dayPts = append(dayPts, point(x, dy))
			nightPts = append(nightPts, point(x, ny))
			day.Dots = append(day.Dots, ChartPoint{X: x, Y: dy, Title: fmt.Sprintf("%s %s: %s", day.Name, rec.Month, climate.Format(r.Day, v.State.Unit))})
			night.Dots = append(night.Dots, ChartPoint{X: x, Y: ny, Title: fmt.Sprintf("%s %s: %s", night.Name, rec.Month, climate.Format(r.Night, v.State.Unit))})
		}
		day.Points = strings.Join(dayPts, " ")
		night.Points = strings.Join(nightPts, " ")
		c.Series = append(c.Series, day, night)
	}
	return c
}

func (c Chart) x(month int) float64 {
	span := c.Right - c.Left
	return round1(c.Left + span*float64(month)/float64(climate.MonthsPerYear-1))
}

func (c Chart) y(v float64, r climate.AxisRange) float64 {
	span := r.Max - r.Min
	if span <= 0 {
		return c.Bottom
	}
	return round1(c.Bottom - (v-r.Min)/span*(c.Bottom-c.Top))
}

func yTickStep(span float64) int {
	for _, s := range yTickSteps {
		if span/float64(s) <= maxYTicks {
			return s
		}
	}
	return yTickSteps[len(yTickSteps)-1]
}

func point(x, y float64) string {
	return strconv.FormatFloat(x, 'f', 1, 64) + "," + strconv.FormatFloat(y, 'f', 1, 64)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
