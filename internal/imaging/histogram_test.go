package imaging

import (
	"testing"
)

func TestComputeHistogram(t *testing.T) {
	img := &Image{Width: 3, Height: 2, Pix: []uint8{0, 0, 10, 10, 10, 255}}

	h := ComputeHistogram(img)

	if len(h.Bins) != 256 {
		t.Fatalf("len(Bins): got %d, want 256", len(h.Bins))
	}
	if h.Bins[0] != 2 || h.Bins[10] != 3 || h.Bins[255] != 1 {
		t.Errorf("bins: got [0]=%d [10]=%d [255]=%d, want 2, 3, 1", h.Bins[0], h.Bins[10], h.Bins[255])
	}
	if h.Total != 6 {
		t.Errorf("Total: got %d, want 6", h.Total)
	}
	// (30 + 255) / 6 = 47.5
	if h.Mean != 47.5 {
		t.Errorf("Mean: got %.2f, want 47.50", h.Mean)
	}
	if h.MaxValue != 255 {
		t.Errorf("MaxValue: got %d, want 255", h.MaxValue)
	}
}

func TestComputeHistogram_EdgeMap(t *testing.T) {
	pix := createStepBuffer(5, 5, 2, 0, 255)
	edges, err := DetectEdges(pix, 5, 5)
	if err != nil {
		t.Fatalf("DetectEdges failed: %v", err)
	}

	h := ComputeHistogram(edges)

	// 16 border pixels + 3 interior pixels in the uniform column are zero,
	// the 6 interior pixels at x=1 and x=2 are saturated
	if h.Bins[0] != 19 {
		t.Errorf("Bins[0]: got %d, want 19", h.Bins[0])
	}
	if h.Bins[255] != 6 {
		t.Errorf("Bins[255]: got %d, want 6", h.Bins[255])
	}
	if h.Total != 25 {
		t.Errorf("Total: got %d, want 25", h.Total)
	}
}

func TestComputeHistogram_AllZero(t *testing.T) {
	img := &Image{Width: 4, Height: 4, Pix: make([]uint8, 16)}

	h := ComputeHistogram(img)

	if h.Bins[0] != 16 {
		t.Errorf("Bins[0]: got %d, want 16", h.Bins[0])
	}
	if h.Mean != 0 || h.MaxValue != 0 {
		t.Errorf("Mean/MaxValue: got %.2f/%d, want 0/0", h.Mean, h.MaxValue)
	}
}
