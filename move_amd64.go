// Copyright 2025 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build amd64

package repstring

import (
	"unsafe"

	"github.com/grailbio/repstring/internal/dirflag"
)

// *** the following functions are defined in repstring_amd64.s

//go:noescape
func repMovs8Asm(dst, src unsafe.Pointer, nElem int)

//go:noescape
func repMovs16Asm(dst, src unsafe.Pointer, nElem int)

//go:noescape
func repMovs32Asm(dst, src unsafe.Pointer, nElem int)

//go:noescape
func repMovs64Asm(dst, src unsafe.Pointer, nElem int)

// *** end assembly function signatures

// CopyRaw copies nElem elements from src to dst with a single rep movs,
// selecting the B/W/L/Q form from the element width.
//
// WARNING: No validation is performed.  The caller must guarantee that both
// pointers are non-nil, aligned to the element width, valid for nElem
// elements, and that dst does not start strictly inside the source range.
// Use Copy when any of that is in doubt.
func CopyRaw[T Element](dst, src *T, nElem int) {
	d, s := unsafe.Pointer(dst), unsafe.Pointer(src)
	dirflag.RunForward(func() {
		switch unsafe.Sizeof(*dst) {
		case 1:
			repMovs8Asm(d, s, nElem)
		case 2:
			repMovs16Asm(d, s, nElem)
		case 4:
			repMovs32Asm(d, s, nElem)
		default:
			repMovs64Asm(d, s, nElem)
		}
	})
}

func copyFwd[T Element](dst, src *T, nElem int) {
	if nElem*int(unsafe.Sizeof(*dst)) < movsCutoff {
		dstS := unsafe.Slice(dst, nElem)
		srcS := unsafe.Slice(src, nElem)
		// Explicit forward traversal; correct for the permitted overlap
		// direction, unlike a backward loop.
		for i := 0; i < nElem; i++ {
			dstS[i] = srcS[i]
		}
		return
	}
	CopyRaw(dst, src, nElem)
}
