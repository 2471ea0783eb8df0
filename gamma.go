package colorconstancy

import "math"

// gammaTable builds the 256-entry linearization table for the given gamma.
// Entry i is 255*(i/255)^(1/gamma) truncated toward zero, matching an 8-bit
// integer cast. The table is rebuilt on every call; it is small and keeping
// it local preserves reentrancy.
func gammaTable(gamma float64) [256]uint8 {
	var lut [256]uint8
	inv := 1.0 / gamma
	for i := range lut {
		lut[i] = uint8(255 * math.Pow(float64(i)/255, inv))
	}
	return lut
}

// applyTable remaps every channel of every pixel in place. All channels use
// the same table.
func applyTable(m *Image, lut *[256]uint8) {
	for y := 0; y < m.Height; y++ {
		row := m.Pix[y*m.Stride : y*m.Stride+3*m.Width]
		for i, v := range row {
			row[i] = lut[v]
		}
	}
}
