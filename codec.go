package colorconstancy

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const defaultJPEGQuality = 92

// ReadFile decodes an image file into an RGB buffer. Any format registered
// with the standard image package is accepted; JPEG, PNG, GIF, BMP, TIFF
// and WebP are registered by this package.
func ReadFile(path string) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrLoadFailed, path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrLoadFailed, path, err)
	}
	return FromImage(src), nil
}

// FromImage converts any image.Image to an RGB buffer. Alpha is dropped;
// premultiplied formats are unwound through the NRGBA color model.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	dst := NewImage(b.Dx(), b.Dy())

	if n, ok := src.(*image.NRGBA); ok {
		for y := 0; y < dst.Height; y++ {
			si := n.PixOffset(b.Min.X, b.Min.Y+y)
			di := y * dst.Stride
			for x := 0; x < dst.Width; x++ {
				dst.Pix[di] = n.Pix[si]
				dst.Pix[di+1] = n.Pix[si+1]
				dst.Pix[di+2] = n.Pix[si+2]
				si += 4
				di += 3
			}
		}
		return dst
	}

	for y := 0; y < dst.Height; y++ {
		di := y * dst.Stride
		for x := 0; x < dst.Width; x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			dst.Pix[di] = c.R
			dst.Pix[di+1] = c.G
			dst.Pix[di+2] = c.B
			di += 3
		}
	}
	return dst
}

// GoImage returns a copy of the buffer as *image.NRGBA with opaque alpha.
func (m *Image) GoImage() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		si := y * m.Stride
		di := y * dst.Stride
		for x := 0; x < m.Width; x++ {
			dst.Pix[di] = m.Pix[si]
			dst.Pix[di+1] = m.Pix[si+1]
			dst.Pix[di+2] = m.Pix[si+2]
			dst.Pix[di+3] = 0xFF
			si += 3
			di += 4
		}
	}
	return dst
}

// WriteFile encodes the image to path. A ".png" extension writes PNG; any
// other extension writes JPEG with the given quality (1-100).
func (m *Image) WriteFile(path string, quality int) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, m.GoImage())
	default:
		err = jpeg.Encode(f, m.GoImage(), &jpeg.Options{Quality: quality})
	}
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return f.Close()
}
