package views

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"weathercompare/internal/climate"
	"weathercompare/internal/viewstate"
)

//go:embed templates static
var viewsFS embed.FS

// EmptyMessage is shown instead of the chart when no city is selected.
const EmptyMessage = "Select at least one city to view temperature data"

var dashboardTmpl *template.Template

// loadTemplatesFromFS loads dashboard templates from the given fs and dir.
// Used by LoadTemplates and by tests to simulate failure scenarios.
func loadTemplatesFromFS(fsys fs.FS, dir string) error {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return err
	}
	dashboardTmpl, err = template.ParseFS(sub, "*.html", "partials/*.html")
	if err != nil {
		return err
	}
	return nil
}

// LoadTemplates loads embedded dashboard templates. Call during startup before
// serving requests; if it returns an error, do not start the server.
func LoadTemplates() error {
	return loadTemplatesFromFS(viewsFS, "templates")
}

// StaticFS holds the stylesheet served under /static/.
func StaticFS() fs.FS {
	sub, err := fs.Sub(viewsFS, "static")
	if err != nil {
		panic(fmt.Sprintf("views: embedded static dir missing: %v", err))
	}
	return sub
}

// Link is a toggle control. Href is the permalink of the state the toggle
// leads to.
type Link struct {
	Label  string
	Href   string
	Active bool
}

// CityToggle is the view model for one city button.
type CityToggle struct {
	ID       string
	Name     string
	Color    string
	Selected bool
	Href     string
}

// StatCard is one city's formatted statistics.
type StatCard struct {
	CityName     string
	Color        string
	WarmestDay   string
	ColdestNight string
	AvgDay       string
	AvgNight     string
	Range        string
}

// NewStatCard formats st for display, e.g. "23.8°C (Jul)".
func NewStatCard(city climate.City, st climate.Statistics) StatCard {
	return StatCard{
		CityName:     city.Name,
		Color:        city.Color,
		WarmestDay:   fmt.Sprintf("%s (%s)", climate.Format(st.MaxDay, st.Unit), climate.MonthLabels[st.MaxDayMonth]),
		ColdestNight: fmt.Sprintf("%s (%s)", climate.Format(st.MinNight, st.Unit), climate.MonthLabels[st.MinNightMonth]),
		AvgDay:       climate.Format(st.AvgDay, st.Unit),
		AvgNight:     climate.Format(st.AvgNight, st.Unit),
		Range:        climate.Format(st.Range, st.Unit),
	}
}

// DashboardData is the view model for the dashboard page and the comparison partial.
type DashboardData struct {
	Theme        viewstate.Theme
	Palette      Palette
	PeriodLabel  string
	UnitName     string
	Cities       []CityToggle
	Period       Link
	Unit         Link
	ThemeToggle  Link
	Reset        Link
	Empty        bool
	EmptyMessage string
	Chart        Chart
	Stats        []StatCard
	Permalink    string
	ShareImage   string
	PartialHref  string
}

func RenderDashboard(w io.Writer, data *DashboardData) error {
	if dashboardTmpl == nil {
		return errors.New("dashboard template not loaded: call views.LoadTemplates during startup")
	}
	return dashboardTmpl.ExecuteTemplate(w, "dashboard.html", data)
}

// RenderComparisonPartial executes only the chart and statistics fragment.
// Use for HTMX fragment refresh.
func RenderComparisonPartial(w io.Writer, data *DashboardData) error {
	if dashboardTmpl == nil {
		return errors.New("dashboard template not loaded: call views.LoadTemplates during startup")
	}
	return dashboardTmpl.ExecuteTemplate(w, "partials/comparison.html", data)
}
