package analysis

import (
	"math"
	"math/cmplx"
)

func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	if n%2 != 0 {
		panic("fft requires power of 2 length")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)

	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

func PowerSpectrum(data []float64) []float64 {
	fft := FFT(data)
	ps := make([]float64, len(fft)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}

	return ps
}

// Detrend subtracts the mean so the DC bin does not swamp the
// spectrum of a slowly drifting signal.
func Detrend(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = v - mean
	}
	return out
}

// truncatePow2 trims a signal to the largest power-of-two prefix.
func truncatePow2(data []float64) []float64 {
	n := 1
	for n*2 <= len(data) {
		n *= 2
	}
	return data[:n]
}

// DominantFrequency returns the strongest non-DC frequency (Hz) in a
// signal sampled every dt seconds, and its spectral magnitude. A
// signal too short to resolve any oscillation returns (0, 0).
func DominantFrequency(data []float64, dt float64) (freq, magnitude float64) {
	if dt <= 0 || len(data) < 4 {
		return 0, 0
	}

	ps := PowerSpectrum(Detrend(truncatePow2(data)))
	if len(ps) < 2 {
		return 0, 0
	}

	n := 1
	for n*2 <= len(data) {
		n *= 2
	}

	best := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[best] {
			best = i
		}
	}

	return float64(best) / (float64(n) * dt), ps[best]
}
