// Package builder defines the named constants shared by the dataset builders.
package builder

// Builder method names, used to prefix errors.
const (
	MethodXor     = "Xor"
	MethodChain   = "Chain"
	MethodWeather = "Weather"
)

// Minimum sizes.
const (
	MinRows   = 1
	MinStates = 2
	MinLength = 2
)

// Probability bounds for WithFlip / WithMissing.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// XOR parents are biased so the pairwise marginals stay informative.
const (
	XorPA = 0.7 // P(A=1)
	XorPB = 0.8 // P(B=1)
)

// DefaultStation is the station ID written by WriteWeatherCSV.
const DefaultStation = "26063099999"

// MissingSentinel is the GSOD placeholder for an absent measurement.
const MissingSentinel = 9999.9

// WeatherColumns lists the measurement columns produced by Weather.
var WeatherColumns = []string{"DEWP", "MAX", "MIN", "SLP", "TEMP", "WDSP"}
