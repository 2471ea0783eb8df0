package colorconstancy

import "testing"

func TestGammaTableIdentityAtOne(t *testing.T) {
	lut := gammaTable(1.0)
	for i := range lut {
		if d := int(lut[i]) - i; d < -1 || d > 1 {
			t.Fatalf("lut[%d]=%d, want %d +-1", i, lut[i], i)
		}
	}
}

func TestGammaTableEndpoints(t *testing.T) {
	for _, gamma := range []float64{1.0, 1.8, 2.2, 2.6} {
		lut := gammaTable(gamma)
		if lut[0] != 0 {
			t.Fatalf("gamma %v: lut[0]=%d, want 0", gamma, lut[0])
		}
		if lut[255] != 255 {
			t.Fatalf("gamma %v: lut[255]=%d, want 255", gamma, lut[255])
		}
	}
}

func TestGammaTableMonotonic(t *testing.T) {
	for _, gamma := range []float64{0.5, 1.0, 2.2, 4.0} {
		lut := gammaTable(gamma)
		for i := 1; i < len(lut); i++ {
			if lut[i] < lut[i-1] {
				t.Fatalf("gamma %v: lut[%d]=%d < lut[%d]=%d", gamma, i, lut[i], i-1, lut[i-1])
			}
		}
	}
}

func TestGammaTableBrightensAboveOne(t *testing.T) {
	// For gamma > 1 the linearization curve lies above the identity.
	lut := gammaTable(2.2)
	for i := range lut {
		if int(lut[i]) < i {
			t.Fatalf("lut[%d]=%d below identity", i, lut[i])
		}
	}
}

func TestApplyTableRemapsAllChannels(t *testing.T) {
	m := NewImage(2, 2)
	for i := range m.Pix {
		m.Pix[i] = uint8(i * 20)
	}
	lut := gammaTable(2.2)
	want := make([]uint8, len(m.Pix))
	for i, v := range m.Pix {
		want[i] = lut[v]
	}

	applyTable(m, &lut)
	for i := range want {
		if m.Pix[i] != want[i] {
			t.Fatalf("Pix[%d]=%d, want %d", i, m.Pix[i], want[i])
		}
	}
}
