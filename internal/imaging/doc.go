// Package imaging computes Sobel edge-magnitude maps of 8-bit grayscale images.
//
// The input is a raw row-major buffer of width*height samples with no header.
// DetectEdges returns a new Image of the same size whose interior samples hold
// the gradient magnitude and whose border samples are zero.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - Pixel (x, y) is stored at offset y*width + x
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Thread Safety
//
// DetectEdges, DetectGray, DetectRegion and ComputeHistogram hold no state and
// can be called concurrently on independent inputs. They never modify their
// input. The ImageStore type is safe for concurrent use.
//
// # Ownership
//
// Images returned by the detector belong to the caller and are reclaimed by
// the garbage collector. ImageStore exists for callers on the far side of a
// process or language boundary: they hold an opaque handle and must release
// it exactly once.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Non-positive width or height (ErrInvalidDimensions)
//   - A pixel buffer whose length is not width*height (ErrBufferSize)
//   - Regions outside the image or with x1 >= x2 or y1 >= y2
//   - Handles that were never issued or were already released (ErrUnknownHandle)
//
// Sentinel errors are wrapped with context; use errors.Is to test for them.
package imaging
