//go:build cgo

package main

import (
	"testing"
	"unsafe"
)

func createStepPixels(w, h, edge int) []uint8 {
	pix := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := edge; x < w; x++ {
			pix[y*w+x] = 255
		}
	}
	return pix
}

func resultPixels(t *testing.T, p unsafe.Pointer) []uint8 {
	t.Helper()
	d := pixels(p)
	if d == nil {
		t.Fatal("result has no pixel data")
	}
	return unsafe.Slice((*uint8)(d), imgWidth(p)*imgHeight(p))
}

func TestDetect_StepEdge(t *testing.T) {
	pix := createStepPixels(5, 5, 2)

	p := detect(unsafe.Pointer(&pix[0]), 5, 5)
	if p == nil {
		t.Fatal("detect returned nil")
	}
	defer release(p)

	if imgWidth(p) != 5 || imgHeight(p) != 5 {
		t.Fatalf("dimensions: got %dx%d, want 5x5", imgWidth(p), imgHeight(p))
	}

	out := resultPixels(t, p)
	tests := []struct {
		x, y int
		want uint8
	}{
		{2, 2, 255},
		{1, 2, 255},
		{3, 2, 0},
		{0, 0, 0},
		{4, 4, 0},
	}
	for _, tt := range tests {
		if got := out[tt.y*5+tt.x]; got != tt.want {
			t.Errorf("(%d,%d): got %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}

	// The result is a copy in C memory
	if &out[0] == &pix[0] {
		t.Error("result aliases the input buffer")
	}
}

func TestDetect_Degenerate(t *testing.T) {
	pix := []uint8{0, 255, 0}

	p := detect(unsafe.Pointer(&pix[0]), 3, 1)
	if p == nil {
		t.Fatal("degenerate image should still produce a result")
	}
	defer release(p)

	if imgWidth(p) != 3 || imgHeight(p) != 1 {
		t.Fatalf("dimensions: got %dx%d, want 3x1", imgWidth(p), imgHeight(p))
	}
	for i, v := range resultPixels(t, p) {
		if v != 0 {
			t.Errorf("Pix[%d] = %d, want 0", i, v)
		}
	}
}

func TestDetect_InvalidArguments(t *testing.T) {
	pix := createStepPixels(4, 4, 2)
	src := unsafe.Pointer(&pix[0])

	tests := []struct {
		name string
		src  unsafe.Pointer
		w, h int
	}{
		{"nil image", nil, 4, 4},
		{"zero width", src, 0, 4},
		{"zero height", src, 4, 0},
		{"negative width", src, -1, 4},
		{"negative height", src, 4, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p := detect(tt.src, tt.w, tt.h); p != nil {
				release(p)
				t.Error("detect should return nil")
			}
		})
	}
}

func TestRelease(t *testing.T) {
	// nil is accepted like free(NULL)
	release(nil)

	pix := createStepPixels(6, 6, 3)
	for i := 0; i < 10; i++ {
		p := detect(unsafe.Pointer(&pix[0]), 6, 6)
		if p == nil {
			t.Fatalf("iteration %d: detect returned nil", i)
		}
		if got := resultPixels(t, p)[2*6+3]; got != 255 {
			t.Errorf("iteration %d: step pixel got %d, want 255", i, got)
		}
		release(p)
	}
}
