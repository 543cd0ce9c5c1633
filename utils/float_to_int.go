// SPDX-License-Identifier: EPL-2.0

package utils

// SampleToPCM16 converts a float sample in [-1, 1] to signed 16-bit PCM.
// The sample is clamped first. Negative values scale by 32768 and
// non-negative values by 32767, truncating toward zero, so that -1.0 maps
// to -32768 and 1.0 maps to 32767 without overflow.
func SampleToPCM16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	if x < 0 {
		return int16(x * 32768.0)
	}
	return int16(x * 32767.0)
}
