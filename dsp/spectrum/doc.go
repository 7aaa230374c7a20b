// Package spectrum provides FFT-adjacent utilities over complex spectrum bins.
//
// The package does not compute transforms itself; it works on bins produced
// by dsp/fourier (or any other backend) and extracts per-bin magnitude and
// phase for reporting.
package spectrum
