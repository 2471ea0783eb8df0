package colorconstancy

import (
	"fmt"
	"math"
)

// DefaultGamma is the display gamma assumed when no option overrides it.
// Standard sRGB displays are close to 2.2.
const DefaultGamma = 2.2

// Options controls the correction.
type Options struct {
	// Gamma is the display gamma used to linearize pixel values before the
	// illuminant estimate. Must be positive.
	Gamma float64
	// JPEGQuality is used by CorrectFile when the output extension selects
	// JPEG encoding (1-100).
	JPEGQuality int
}

// Correct white-balances an image. The input is linearized with a gamma
// lookup table, the scene illuminant is estimated per channel with a
// Minkowski p=3 mean over the whole image, and every pixel is rescaled by
// the inverted, normalized illuminant. The result has the same dimensions
// as the input and all values in [0, 255].
//
// Buffer inputs are never mutated; the transform runs on a copy.
func Correct(in Input, opts ...func(*Options)) (*Image, error) {
	opt := Options{Gamma: DefaultGamma, JPEGQuality: defaultJPEGQuality}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	if math.IsNaN(opt.Gamma) || opt.Gamma <= 0 {
		return nil, fmt.Errorf("%w, got %v", ErrInvalidGamma, opt.Gamma)
	}

	img, err := in.load()
	if err != nil {
		return nil, err
	}

	lut := gammaTable(opt.Gamma)
	applyTable(img, &lut)
	applyIlluminant(img, estimateIlluminant(img))
	return img, nil
}

// CorrectFile reads an image from inPath, corrects it, and writes the
// result to outPath. The output format is chosen by extension: ".png"
// writes PNG, anything else JPEG.
func CorrectFile(inPath, outPath string, opts ...func(*Options)) error {
	opt := Options{JPEGQuality: defaultJPEGQuality}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	img, err := Correct(FromPath(inPath), opts...)
	if err != nil {
		return err
	}
	return img.WriteFile(outPath, opt.JPEGQuality)
}
