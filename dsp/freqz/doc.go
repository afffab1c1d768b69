// Package freqz samples the frequency response of a window (or any FIR
// coefficient set) on the upper half of the unit circle and converts it into
// plottable magnitude and phase series.
package freqz
