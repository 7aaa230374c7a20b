// Package fourier computes discrete Fourier transforms of real coordinate
// sequences and rebuilds truncated real-valued approximations from them.
//
// Transform is unnormalized: X[k] = sum_i x[i] * exp(-2*pi*i*k*i/n). The 1/n
// scaling is applied by Reconstruct and by the harmonics report, not here.
//
// Reconstruct exploits conjugate symmetry of real input: harmonic k below
// n/2 contributes 2*(a_k*cos(k*t) - b_k*sin(k*t)) with a_k = Re(X[k])/n and
// b_k = Im(X[k])/n. For even n the Nyquist bin contributes once, and bins
// above n/2 are mirrors that are already accounted for. With terms = n the
// result is the exact inverse transform; with terms = 1 it is the mean.
package fourier
