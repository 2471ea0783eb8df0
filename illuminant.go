package colorconstancy

import "math"

// estimateIlluminant computes the per-channel Minkowski p=3 illuminant of a
// linearized image and returns the inverted correction factors: the p-th
// root of the per-channel mean of p-th powers, normalized to unit quadratic
// mean across the three channels, then reciprocated. A channel with zero
// estimated illuminant keeps factor 1 so black input stays black instead of
// blowing up.
func estimateIlluminant(m *Image) [3]float64 {
	var sum [3]float64
	for y := 0; y < m.Height; y++ {
		row := m.Pix[y*m.Stride : y*m.Stride+3*m.Width]
		for i := 0; i < len(row); i += 3 {
			for c := 0; c < 3; c++ {
				v := float64(row[i+c])
				sum[c] += v * v * v
			}
		}
	}

	n := float64(m.Width) * float64(m.Height)
	var vec [3]float64
	for c := range vec {
		vec[c] = math.Cbrt(sum[c] / n)
	}

	norm := math.Sqrt((vec[0]*vec[0] + vec[1]*vec[1] + vec[2]*vec[2]) / 3)
	if norm > 0 {
		for c := range vec {
			vec[c] /= norm
		}
	}

	for c := range vec {
		if vec[c] > 0 {
			vec[c] = 1 / vec[c]
		} else {
			vec[c] = 1
		}
	}
	return vec
}

// applyIlluminant scales every pixel by the per-channel correction factors
// in place, clamping to [0, 255] and truncating back to 8 bits.
func applyIlluminant(m *Image, scale [3]float64) {
	for y := 0; y < m.Height; y++ {
		row := m.Pix[y*m.Stride : y*m.Stride+3*m.Width]
		for i := 0; i < len(row); i += 3 {
			for c := 0; c < 3; c++ {
				v := float64(row[i+c]) * scale[c]
				if v < 0 {
					v = 0
				}
				if v > 255 {
					v = 255
				}
				row[i+c] = uint8(v)
			}
		}
	}
}
