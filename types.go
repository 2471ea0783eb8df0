package colorconstancy

import "fmt"

// Image stores an 8-bit color image as a flat interleaved buffer with three
// channels per pixel. Pixel (x, y) occupies Pix[y*Stride+3*x : y*Stride+3*x+3].
// The codec layer produces and consumes R, G, B order; the transform itself
// treats channels symmetrically, so buffers in BGR order correct the same.
type Image struct {
	Width  int
	Height int
	Stride int // bytes per row
	Pix    []uint8
}

// NewImage allocates a zeroed width x height image with a tight stride.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Stride: 3 * width,
		Pix:    make([]uint8, 3*width*height),
	}
}

// ImageFromPix wraps an interleaved pixel buffer without copying it.
// The buffer must hold exactly width*height pixels with the given channel
// count, and only 3-channel color buffers are accepted; grayscale or alpha
// layouts fail with ErrInvalidFormat.
func ImageFromPix(pix []uint8, width, height, channels int) (*Image, error) {
	if channels != 3 {
		return nil, fmt.Errorf("%w: want 3 channels, got %d", ErrInvalidFormat, channels)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidFormat, width, height)
	}
	if len(pix) != 3*width*height {
		return nil, fmt.Errorf("%w: buffer holds %d bytes, want %d", ErrInvalidFormat, len(pix), 3*width*height)
	}
	return &Image{Width: width, Height: height, Stride: 3 * width, Pix: pix}, nil
}

// Clone returns a deep copy with a tight stride.
func (m *Image) Clone() *Image {
	dst := NewImage(m.Width, m.Height)
	for y := 0; y < m.Height; y++ {
		copy(dst.Pix[y*dst.Stride:(y+1)*dst.Stride], m.Pix[y*m.Stride:y*m.Stride+3*m.Width])
	}
	return dst
}

func (m *Image) validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidFormat)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidFormat, m.Width, m.Height)
	}
	if m.Stride < 3*m.Width {
		return fmt.Errorf("%w: stride %d too small for width %d", ErrInvalidFormat, m.Stride, m.Width)
	}
	if need := m.Stride*(m.Height-1) + 3*m.Width; len(m.Pix) < need {
		return fmt.Errorf("%w: buffer holds %d bytes, want at least %d", ErrInvalidFormat, len(m.Pix), need)
	}
	return nil
}

// Input selects the source image for Correct: either a file path decoded by
// the codec layer, or an in-memory buffer. The zero Input is invalid; use
// FromPath or FromBuffer.
type Input struct {
	path    string
	hasPath bool
	img     *Image
	hasImg  bool
}

// FromPath makes an Input that loads and decodes the file at path.
func FromPath(path string) Input {
	return Input{path: path, hasPath: true}
}

// FromBuffer makes an Input from an in-memory buffer. The buffer is not
// mutated by Correct; the transform runs on a copy.
func FromBuffer(img *Image) Input {
	return Input{img: img, hasImg: true}
}

func (in Input) load() (*Image, error) {
	switch {
	case in.hasPath:
		return ReadFile(in.path)
	case in.hasImg:
		if err := in.img.validate(); err != nil {
			return nil, err
		}
		return in.img.Clone(), nil
	default:
		return nil, ErrUnsupportedInput
	}
}
