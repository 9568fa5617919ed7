// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 clamps x to [-1, 1] and scales it to a signed 16-bit PCM
// sample. Negative values scale by 0x8000 and non-negative values by 0x7FFF
// so that both ends of the float range map onto the full int16 range.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	if x < 0 {
		return int16(x * 0x8000)
	}
	return int16(x * 0x7FFF)
}

// Int16ToFloat32 maps a signed 16-bit PCM sample back into [-1, 1].
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// Clamp limits x to the inclusive range [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// DBToLinear converts a decibel value to a linear amplitude factor.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts a linear amplitude factor to decibels.
// Amplitudes at or below zero map to -infinity-ish floor of -200 dB.
func LinearToDB(amp float64) float64 {
	if amp <= 0 {
		return -200
	}
	return 20 * math.Log10(amp)
}
