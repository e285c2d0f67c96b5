package views

import "weathercompare/internal/viewstate"

// Palette holds the colors one theme renders with. City colors are fixed by
// the dataset and do not change with the theme.
type Palette struct {
	Background string
	Surface    string
	Card       string
	Text       string
	Muted      string
	Border     string
	Grid       string
	Axis       string
	Inactive   string
	PeriodOn   string
}

var palettes = map[viewstate.Theme]Palette{
	viewstate.ThemeLight: {
		Background: "#ffffff",
		Surface:    "#ffffff",
		Card:       "#f9fafb",
		Text:       "#111827",
		Muted:      "#666666",
		Border:     "#e5e7eb",
		Grid:       "#e5e7eb",
		Axis:       "#9ca3af",
		Inactive:   "#f3f4f6",
		PeriodOn:   "#8b5cf6",
	},
	viewstate.ThemeDark: {
		Background: "#0f172a",
		Surface:    "#1e293b",
		Card:       "#273449",
		Text:       "#f1f5f9",
		Muted:      "#94a3b8",
		Border:     "#334155",
		Grid:       "#334155",
		Axis:       "#64748b",
		Inactive:   "#334155",
		PeriodOn:   "#8b5cf6",
	},
}

// PaletteFor returns the palette for t, falling back to the light one.
func PaletteFor(t viewstate.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[viewstate.ThemeLight]
}
