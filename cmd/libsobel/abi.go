//go:build cgo

package main

/*
#include <stdlib.h>
#include "img.h"

// cgo's C.malloc aborts on exhaustion; the ABI reports NULL instead.
static void* try_malloc(size_t n) { return malloc(n); }
*/
import "C"

import (
	"math"
	"unsafe"

	"github.com/ironsheep/sobel-edge-mcp/internal/imaging"
)

// detect runs the edge detector over w*h bytes at src and returns an Img
// allocated in C memory, or nil.
func detect(src unsafe.Pointer, w, h int) unsafe.Pointer {
	if src == nil || w <= 0 || h <= 0 || w > math.MaxInt32 || h > math.MaxInt32 {
		return nil
	}
	n := w * h
	if n/w != h {
		return nil
	}

	edges, err := imaging.DetectEdges(unsafe.Slice((*uint8)(src), n), w, h)
	if err != nil {
		return nil
	}

	r := (*C.Img)(C.try_malloc(C.size_t(unsafe.Sizeof(C.Img{}))))
	if r == nil {
		return nil
	}
	d := C.try_malloc(C.size_t(n))
	if d == nil {
		C.free(unsafe.Pointer(r))
		return nil
	}
	copy(unsafe.Slice((*uint8)(d), n), edges.Pix)

	r.d = (*C.uchar)(d)
	r.w = C.int(w)
	r.h = C.int(h)
	return unsafe.Pointer(r)
}

func release(p unsafe.Pointer) {
	if p == nil {
		return
	}
	C.free(unsafe.Pointer((*C.Img)(p).d))
	C.free(p)
}

func pixels(p unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer((*C.Img)(p).d)
}

func imgWidth(p unsafe.Pointer) int {
	return int((*C.Img)(p).w)
}

func imgHeight(p unsafe.Pointer) int {
	return int((*C.Img)(p).h)
}
