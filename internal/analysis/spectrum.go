// Package analysis extracts orbital periods from recorded coordinate
// series.
package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of the positive-frequency half of
// the series' FFT. The input is zero-padded to a power of two.
func PowerSpectrum(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)

	spec := fft.FFTReal(padded)
	ps := make([]float64, len(spec)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spec[i])
	}
	return ps
}

// DominantFrequency locates the strongest non-DC component and returns
// its frequency in cycles per second for samples spaced dt apart, along
// with its power. A flat series reports zero frequency.
func DominantFrequency(data []float64, dt float64) (float64, float64) {
	ps := PowerSpectrum(data)
	if len(ps) < 2 || dt <= 0 {
		return 0, 0
	}

	maxIdx, maxPower := 0, 0.0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}
	// Round-off on a flat series leaves only noise beyond the DC bin.
	if maxIdx == 0 || maxPower <= 1e-9*ps[0] {
		return 0, 0
	}

	// Bin width is 1/(N*dt) with N the padded length (2*len(ps)).
	return float64(maxIdx) / (float64(2*len(ps)) * dt), maxPower
}
