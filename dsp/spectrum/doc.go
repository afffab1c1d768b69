// Package spectrum evaluates the spectra of window coefficient sequences.
//
// It does not implement an FFT. The bin helpers (magnitude, power, phase,
// unwrapping, group delay) operate on complex bins produced by an FFT backend,
// and [Goertzel] evaluates a single DTFT point at an arbitrary normalized
// frequency, which is what the leakage searches need between bins.
package spectrum
