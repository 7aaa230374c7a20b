// Package harmonics tabulates the amplitude and phase of the leading terms of
// an unnormalized DFT and writes them as a plain-text report.
package harmonics
