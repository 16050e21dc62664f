package imaging

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/math/f64"
)

var (
	// ErrInvalidDimensions is returned when width or height is not positive,
	// or when width*height does not fit in an int.
	ErrInvalidDimensions = errors.New("invalid image dimensions")

	// ErrBufferSize is returned when the pixel buffer length does not equal
	// width*height.
	ErrBufferSize = errors.New("pixel buffer length does not match dimensions")
)

// Image is a single-channel 8-bit image stored row-major.
//
// The sample for pixel (x, y) lives at Pix[y*Width+x]. An Image returned by
// DetectEdges owns its Pix slice; nothing else in this package keeps a
// reference to it.
type Image struct {
	// Width of the image in pixels.
	Width int `json:"width"`

	// Height of the image in pixels.
	Height int `json:"height"`

	// Pix holds Width*Height samples in row-major order.
	Pix []uint8 `json:"-"`
}

// At returns the sample at (x, y). It panics if the coordinates are outside
// the image, like indexing a slice would.
func (m *Image) At(x, y int) uint8 {
	return m.Pix[y*m.Width+x]
}

// Gray returns a stdlib grayscale view of the image. The view shares Pix, so
// writes through either are visible in both.
func (m *Image) Gray() *image.Gray {
	return &image.Gray{
		Pix:    m.Pix,
		Stride: m.Width,
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}
}

// sobelX and sobelY are the horizontal and vertical Sobel kernels.
var (
	sobelX = [3][3]int{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]int{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// DetectEdges computes the Sobel gradient magnitude of a grayscale image.
//
// Parameters:
//   - pix: Row-major 8-bit samples, exactly width*height long. The slice is
//     only read, never modified or retained.
//   - width: Image width in pixels (must be > 0).
//   - height: Image height in pixels (must be > 0).
//
// Returns:
//   - *Image: A new image with the same dimensions as the input. The caller
//     owns it.
//   - error: ErrInvalidDimensions or ErrBufferSize (wrapped) when the input
//     does not describe a valid image.
//
// # Algorithm
//
// For every interior pixel (1 <= x <= width-2, 1 <= y <= height-2) the 3x3
// neighborhood is convolved with the Sobel kernels:
//
//	Gx = [-1 0 1; -2 0 2; -1 0 1]
//	Gy = [-1 -2 -1; 0 0 0; 1 2 1]
//
// The output sample is sqrt(sx² + sy²) computed in float64, clamped to 255
// and then truncated to an integer. Sums are accumulated in int, so the
// largest squared sum (about 2.08e6) cannot overflow.
//
// Border pixels have no full neighborhood and are always 0. Images with
// width or height below 3 have no interior pixels at all and produce an
// all-zero result without error.
//
// # Memory
//
// The output buffer is allocated with make. If the allocation cannot be
// satisfied the Go runtime aborts the program; there is no nil return.
//
// DetectEdges holds no state and may be called concurrently.
func DetectEdges(pix []uint8, width, height int) (*Image, error) {
	src, err := NewImage(pix, width, height)
	if err != nil {
		return nil, err
	}

	out := &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, len(src.Pix)),
	}
	sobel(out.Pix, src.Pix, width, width, height)
	return out, nil
}

// NewImage wraps pix as a width x height Image after checking that the
// buffer length matches. pix is not copied.
func NewImage(pix []uint8, width, height int) (*Image, error) {
	size, err := pixelCount(width, height)
	if err != nil {
		return nil, err
	}
	if len(pix) != size {
		return nil, fmt.Errorf("%w: got %d bytes, want %d (%dx%d)",
			ErrBufferSize, len(pix), size, width, height)
	}
	return &Image{Width: width, Height: height, Pix: pix}, nil
}

// DetectGray runs DetectEdges on a stdlib grayscale image.
//
// The source's Stride and Rect.Min are honored, so sub-images obtained with
// SubImage work without copying. The result always starts at (0, 0).
func DetectGray(src *image.Gray) (*Image, error) {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	size, err := pixelCount(width, height)
	if err != nil {
		return nil, err
	}

	out := &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, size),
	}
	offset := src.PixOffset(bounds.Min.X, bounds.Min.Y)
	sobel(out.Pix, src.Pix[offset:], src.Stride, width, height)
	return out, nil
}

// sobel writes the gradient magnitude of src into dst. dst is width*height
// and must already be zeroed; src rows are stride bytes apart.
func sobel(dst, src []uint8, stride, width, height int) {
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			var sx, sy int
			for ky := -1; ky <= 1; ky++ {
				row := (y + ky) * stride
				for kx := -1; kx <= 1; kx++ {
					p := int(src[row+x+kx])
					sx += p * sobelX[ky+1][kx+1]
					sy += p * sobelY[ky+1][kx+1]
				}
			}
			dst[y*width+x] = magnitude(sx, sy)
		}
	}
}

// magnitude combines two gradient sums into an 8-bit sample. The square root
// is clamped to 255 before truncation.
func magnitude(sx, sy int) uint8 {
	m := math.Sqrt(float64(sx*sx + sy*sy))
	return uint8(f64.Clamp(m, 0, 255))
}

// pixelCount validates the dimensions and returns width*height.
func pixelCount(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > math.MaxInt/height {
		return 0, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}
	return width * height, nil
}
