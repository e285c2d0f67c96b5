package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"sort"

	"weathercompare/internal/climate"
)

//go:embed sql/get-cities.sql
var getCitiesSQL string

//go:embed sql/get-monthly-temperatures.sql
var getMonthlyTemperaturesSQL string

type CatalogRepository interface {
	LoadDataset(ctx context.Context) (*climate.Dataset, error)
}

type repositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) CatalogRepository {
	return &repositoryImpl{db: db}
}

// LoadDataset reads the whole catalog and builds the immutable dataset.
// Every city must have all twelve months for both periods.
func (r *repositoryImpl) LoadDataset(ctx context.Context) (*climate.Dataset, error) {
	cities, err := r.getCities(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cities: %w", err)
	}

	series, err := r.getMonthlyTemperatures(ctx)
	if err != nil {
		return nil, fmt.Errorf("load monthly temperatures: %w", err)
	}

	entries := make([]climate.Entry, 0, len(cities))
	for _, c := range cities {
		months, ok := series[c.ID]
		if !ok {
			return nil, fmt.Errorf("city %q has no monthly temperatures", c.ID)
		}
		if err := months.complete(); err != nil {
			return nil, fmt.Errorf("city %q: %w", c.ID, err)
		}
		entries = append(entries, climate.Entry{City: c, Climatology: months.climatology})
		delete(series, c.ID)
	}
	if len(series) > 0 {
		orphans := make([]string, 0, len(series))
		for id := range series {
			orphans = append(orphans, string(id))
		}
		sort.Strings(orphans)
		return nil, fmt.Errorf("monthly temperatures reference undeclared cities %v", orphans)
	}

	return climate.NewDataset(entries)
}

func (r *repositoryImpl) getCities(ctx context.Context) ([]climate.City, error) {
	rows, err := r.db.QueryContext(ctx, getCitiesSQL)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close cities rows", "error", err)
		}
	}()
	var out []climate.City
	for rows.Next() {
		var c climate.City
		if err := rows.Scan(&c.ID, &c.Name, &c.Color); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// cityMonths accumulates rows for one city and tracks which slots were filled.
type cityMonths struct {
	climatology climate.Climatology
	recent      [climate.MonthsPerYear]bool
	normal      [climate.MonthsPerYear]bool
}

func (m *cityMonths) complete() error {
	for i := 0; i < climate.MonthsPerYear; i++ {
		if !m.recent[i] {
			return fmt.Errorf("missing recent %s", climate.MonthLabels[i])
		}
		if !m.normal[i] {
			return fmt.Errorf("missing normal %s", climate.MonthLabels[i])
		}
	}
	return nil
}

func (r *repositoryImpl) getMonthlyTemperatures(ctx context.Context) (map[climate.CityID]*cityMonths, error) {
	rows, err := r.db.QueryContext(ctx, getMonthlyTemperaturesSQL)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close monthly temperature rows", "error", err)
		}
	}()

	out := make(map[climate.CityID]*cityMonths)
	for rows.Next() {
		var (
			cityID     climate.CityID
			periodStr  string
			month      int
			day, night float64
		)
		if err := rows.Scan(&cityID, &periodStr, &month, &day, &night); err != nil {
			return nil, err
		}
		if month < 0 || month >= climate.MonthsPerYear {
			return nil, fmt.Errorf("city %q: month %d out of range", cityID, month)
		}
		period, err := climate.ParsePeriod(periodStr)
		if err != nil {
			return nil, fmt.Errorf("city %q: %w", cityID, err)
		}

		m, ok := out[cityID]
		if !ok {
			m = &cityMonths{}
			out[cityID] = m
		}
		switch period {
		case climate.PeriodNormal:
			m.climatology.Normal.Day[month] = day
			m.climatology.Normal.Night[month] = night
			m.normal[month] = true
		default:
			m.climatology.Recent.Day[month] = day
			m.climatology.Recent.Night[month] = night
			m.recent[month] = true
		}
	}
	return out, rows.Err()
}
