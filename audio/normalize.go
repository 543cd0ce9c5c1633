// SPDX-License-Identifier: EPL-2.0

package audio

// NormalizeTarget is the peak amplitude after normalization, about -1 dBFS.
const NormalizeTarget = 0.89125

// Normalize applies peak normalization to b in place: the largest absolute
// sample across all channels is scaled to NormalizeTarget. A silent or empty
// buffer passes through untouched. Returns the gain that was applied
// (1 when nothing changed).
func Normalize(b *Buffer) float32 {
	var maxPeak float32

	for _, ch := range b.Data {
		for _, s := range ch {
			if s < 0 {
				s = -s
			}
			if s > maxPeak {
				maxPeak = s
			}
		}
	}

	if maxPeak == 0 {
		return 1
	}

	gain := float32(NormalizeTarget) / maxPeak
	for _, ch := range b.Data {
		for i := range ch {
			ch[i] *= gain
		}
	}

	return gain
}
