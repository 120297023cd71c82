// SPDX-License-Identifier: MIT
// Package: meteobn/builder
//
// impl_weather.go - synthetic daily station weather.
//
// Model (°F, mb, knots; day d counted from StartDate):
//   season = sin(2π(d−110)/365.25)
//   TEMP   = 40 + 22·season + 4ε
//   DEWP   = TEMP − 5 − |3ε|
//   MAX    = TEMP + 7 + |2ε|,  MIN = TEMP − 7 − |2ε|
//   SLP    = 1016 − 0.12·(TEMP − 40) + 7ε
//   WDSP   = max(0.5, 7 + 0.15·(1016 − SLP) + 2.5ε)
// with ε ~ N(0,1)·noiseScale drawn in that order, values rounded to 0.1.
//
// The columns are therefore dependent through TEMP, which gives the
// structure learner something real to recover. Blank cells come from a
// second stream seeded once from the first, so WithMissing never shifts the
// values.

package builder

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/katalvlaran/meteobn/table"
)

// StartDate is the DATE of the first row written by WriteWeatherCSV.
var StartDate = time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)

const (
	baseTemp    = 40.0
	seasonAmp   = 22.0
	seasonShift = 110.0
	yearDays    = 365.25
	baseSLP     = 1016.0
	calmWind    = 0.5
)

// Weather returns days rows over WeatherColumns. Missing cells are NaN.
func Weather(days int, opts ...BuilderOption) (*table.Table, error) {
	if err := validateMin(MethodWeather, "days", days, MinRows); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)

	return table.New(append([]string(nil), WeatherColumns...), weatherRows(days, cfg))
}

// WriteWeatherCSV writes the same rows as Weather in GSOD layout: a STATION
// and DATE column followed by WeatherColumns, absent values as
// MissingSentinel.
func WriteWeatherCSV(w io.Writer, days int, opts ...BuilderOption) error {
	if err := validateMin(MethodWeather, "days", days, MinRows); err != nil {
		return err
	}
	cfg := newBuilderConfig(opts...)

	cw := csv.NewWriter(w)
	header := append([]string{"STATION", "DATE"}, WeatherColumns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("%s: %w", MethodWeather, err)
	}
	record := make([]string, len(header))
	for d, row := range weatherRows(days, cfg) {
		record[0] = cfg.station
		record[1] = StartDate.AddDate(0, 0, d).Format("2006-01-02")
		for j, v := range row {
			if table.IsMissing(v) {
				v = MissingSentinel
			}
			record[j+2] = strconv.FormatFloat(v, 'f', 1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("%s: %w", MethodWeather, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

func weatherRows(days int, cfg builderConfig) [][]float64 {
	r := cfg.rng
	eps := func() float64 { return cfg.noiseScale * r.NormFloat64() }
	mask := rand.New(rand.NewSource(r.Int63()))

	rows := make([][]float64, days)
	for d := range rows {
		season := math.Sin(2 * math.Pi * (float64(d) - seasonShift) / yearDays)
		temp := baseTemp + seasonAmp*season + 4*eps()
		dewp := temp - 5 - math.Abs(3*eps())
		hi := temp + 7 + math.Abs(2*eps())
		lo := temp - 7 - math.Abs(2*eps())
		slp := baseSLP - 0.12*(temp-baseTemp) + 7*eps()
		wdsp := math.Max(calmWind, 7+0.15*(baseSLP-slp)+2.5*eps())

		// Same order as WeatherColumns.
		row := []float64{round1(dewp), round1(hi), round1(lo), round1(slp), round1(temp), round1(wdsp)}
		for j, c := range WeatherColumns {
			if cfg.missingIn(c) && mask.Float64() < cfg.missingRate {
				row[j] = math.NaN()
			}
		}
		rows[d] = row
	}

	return rows
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
