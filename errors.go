package colorconstancy

import "errors"

var (
	// ErrUnsupportedInput reports an Input built without FromPath or FromBuffer.
	ErrUnsupportedInput = errors.New("input is neither a path nor a buffer")
	// ErrLoadFailed reports a path input that could not be opened or decoded.
	ErrLoadFailed = errors.New("load image")
	// ErrInvalidFormat reports a buffer that is not a valid 3-channel 8-bit image.
	ErrInvalidFormat = errors.New("invalid image format")
	// ErrInvalidGamma reports a non-positive gamma parameter.
	ErrInvalidGamma = errors.New("gamma must be positive")
)
