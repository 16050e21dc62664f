//go:build cgo

// Command libsobel builds the edge detector as a C shared library.
//
//	go build -buildmode=c-shared -o libsobel.so ./cmd/libsobel
//
// The exported ABI is:
//
//	struct Img { unsigned char* d; int w, h; };
//	Img* sobel(unsigned char* img, int w, int h);
//	void free_img(Img* i);
//	unsigned char* data(Img* i);
//	int width(Img* i);
//	int height(Img* i);
//
// Results live in C memory. sobel returns NULL when w or h is not positive,
// img is NULL, or malloc fails. Every non-NULL result must be passed to
// free_img exactly once; the accessors are valid only until then.
package main

// #include "img.h"
import "C"

import "unsafe"

//export sobel
func sobel(img *C.uchar, w, h C.int) *C.Img {
	return (*C.Img)(detect(unsafe.Pointer(img), int(w), int(h)))
}

//export free_img
func free_img(i *C.Img) {
	release(unsafe.Pointer(i))
}

//export data
func data(i *C.Img) *C.uchar {
	return (*C.uchar)(pixels(unsafe.Pointer(i)))
}

//export width
func width(i *C.Img) C.int {
	return C.int(imgWidth(unsafe.Pointer(i)))
}

//export height
func height(i *C.Img) C.int {
	return C.int(imgHeight(unsafe.Pointer(i)))
}

func main() {}
