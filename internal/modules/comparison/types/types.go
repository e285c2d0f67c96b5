package types

import (
	"weathercompare/internal/climate"
	"weathercompare/internal/viewstate"
)

type ChartResponse struct {
	Period      climate.Period        `json:"period"`
	PeriodLabel string                `json:"periodLabel"`
	Unit        climate.Unit          `json:"unit"`
	Records     []climate.ChartRecord `json:"records"`
}

// FormattedStatistics carries display strings such as "23.8°C".
type FormattedStatistics struct {
	MaxDay        string `json:"maxDay"`
	MaxDayMonth   string `json:"maxDayMonth"`
	MinNight      string `json:"minNight"`
	MinNightMonth string `json:"minNightMonth"`
	AvgDay        string `json:"avgDay"`
	AvgNight      string `json:"avgNight"`
	Range         string `json:"range"`
}

type StatisticsResponse struct {
	climate.Statistics
	Name      string              `json:"name"`
	Period    climate.Period      `json:"period"`
	Formatted FormattedStatistics `json:"formatted"`
}

type ActionRequest struct {
	State  viewstate.State  `json:"state"`
	Action viewstate.Action `json:"action"`
}

type ActionResponse struct {
	State     viewstate.State `json:"state"`
	View      viewstate.View  `json:"view"`
	Permalink string          `json:"permalink"`
}

func NewStatisticsResponse(city climate.City, p climate.Period, st climate.Statistics) StatisticsResponse {
	return StatisticsResponse{
		Statistics: st,
		Name:       city.Name,
		Period:     p,
		Formatted: FormattedStatistics{
			MaxDay:        climate.Format(st.MaxDay, st.Unit),
			MaxDayMonth:   climate.MonthLabels[st.MaxDayMonth],
			MinNight:      climate.Format(st.MinNight, st.Unit),
			MinNightMonth: climate.MonthLabels[st.MinNightMonth],
			AvgDay:        climate.Format(st.AvgDay, st.Unit),
			AvgNight:      climate.Format(st.AvgNight, st.Unit),
			Range:         climate.Format(st.Range, st.Unit),
		},
	}
}
