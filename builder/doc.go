// Package builder produces seeded synthetic datasets for meteobn: small
// discrete tables with a known dependency structure (XOR triple, Markov
// chain) and a continuous daily weather table shaped like a GSOD station
// export.
//
// Every builder is deterministic for a fixed seed and option list, so the
// tables can back golden tests, examples and the demo command.
//
// Options follow the functional style used across the module:
//
//   - WithSeed / WithRand select the random stream.
//   - WithFlip sets the label noise of Xor.
//   - WithNoiseScale scales the Gaussian residuals of Weather.
//   - WithMissing blanks cells of Weather at a given rate.
//   - WithStation names the station ID written by WriteWeatherCSV.
//
// Option constructors panic on meaningless values; builders never panic and
// return sentinel errors wrapped with the builder name.
package builder
