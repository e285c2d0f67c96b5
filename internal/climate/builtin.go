package climate

// City ids of the built-in catalog.
const (
	London      CityID = "london"
	Shanghai    CityID = "shanghai"
	Moscow      CityID = "moscow"
	Krasnoyarsk CityID = "krasnoyarsk"
)

// builtinEntries is the compiled-in catalog. Shanghai, Moscow and Krasnoyarsk
// carry the same arrays for both periods; only London has distinct recent data.
var builtinEntries = []Entry{
	{
		City: City{ID: London, Name: "London", Color: "#2563eb"},
		Climatology: Climatology{
			Recent: SeriesPair{
				Day:   Series{8.7, 9.8, 12.3, 15.2, 18.9, 21.4, 23.8, 23.5, 20.3, 15.8, 11.4, 9.1},
				Night: Series{3.1, 3.4, 4.8, 6.3, 9.7, 12.8, 15.1, 15.0, 12.6, 9.3, 5.8, 3.7},
			},
			Normal: SeriesPair{
				Day:   Series{8.1, 8.4, 11.3, 13.9, 17.5, 20.6, 22.6, 22.2, 19.2, 15.2, 11.1, 8.3},
				Night: Series{2.3, 2.3, 3.9, 5.3, 8.2, 11.3, 13.4, 13.2, 10.8, 8.0, 4.8, 2.7},
			},
		},
	},
	{
		City: City{ID: Shanghai, Name: "Shanghai", Color: "#dc2626"},
		Climatology: Climatology{
			Recent: SeriesPair{
				Day:   Series{9.4, 11.1, 15.0, 20.5, 25.3, 28.8, 32.8, 32.4, 28.3, 23.3, 17.7, 11.8},
				Night: Series{1.6, 3.3, 7.4, 13.1, 18.5, 23.0, 26.9, 26.6, 22.5, 16.6, 10.3, 4.2},
			},
			Normal: SeriesPair{
				Day:   Series{9.4, 11.1, 15.0, 20.5, 25.3, 28.8, 32.8, 32.4, 28.3, 23.3, 17.7, 11.8},
				Night: Series{1.6, 3.3, 7.4, 13.1, 18.5, 23.0, 26.9, 26.6, 22.5, 16.6, 10.3, 4.2},
			},
		},
	},
	{
		City: City{ID: Moscow, Name: "Moscow", Color: "#16a34a"},
		Climatology: Climatology{
			Recent: SeriesPair{
				Day:   Series{-4.8, -3.8, 2.0, 10.7, 18.0, 21.6, 24.1, 22.0, 15.7, 8.2, 0.7, -3.1},
				Night: Series{-9.8, -9.9, -5.4, 1.5, 7.6, 11.4, 14.1, 12.2, 7.4, 2.1, -3.5, -7.6},
			},
			Normal: SeriesPair{
				Day:   Series{-4.8, -3.8, 2.0, 10.7, 18.0, 21.6, 24.1, 22.0, 15.7, 8.2, 0.7, -3.1},
				Night: Series{-9.8, -9.9, -5.4, 1.5, 7.6, 11.4, 14.1, 12.2, 7.4, 2.1, -3.5, -7.6},
			},
		},
	},
	{
		City: City{ID: Krasnoyarsk, Name: "Krasnoyarsk", Color: "#9333ea"},
		Climatology: Climatology{
			Recent: SeriesPair{
				Day:   Series{-11.6, -7.5, 0.7, 9.3, 17.1, 23.5, 25.2, 22.2, 14.6, 6.7, -3.6, -9.3},
				Night: Series{-19.2, -16.3, -9.4, -1.4, 4.7, 10.8, 13.7, 10.9, 4.1, -1.8, -10.8, -16.5},
			},
			Normal: SeriesPair{
				Day:   Series{-11.6, -7.5, 0.7, 9.3, 17.1, 23.5, 25.2, 22.2, 14.6, 6.7, -3.6, -9.3},
				Night: Series{-19.2, -16.3, -9.4, -1.4, 4.7, 10.8, 13.7, 10.9, 4.1, -1.8, -10.8, -16.5},
			},
		},
	},
}

// Builtin returns the compiled-in catalog.
func Builtin() *Dataset {
	d, err := NewDataset(builtinEntries)
	if err != nil {
		panic("climate: invalid builtin dataset: " + err.Error())
	}
	return d
}

// BuiltinEntries returns a copy of the compiled-in catalog entries.
func BuiltinEntries() []Entry {
	out := make([]Entry, len(builtinEntries))
	copy(out, builtinEntries)
	return out
}
