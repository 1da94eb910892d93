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
func repStos8Asm(dst unsafe.Pointer, val uint64, nElem int)

//go:noescape
func repStos16Asm(dst unsafe.Pointer, val uint64, nElem int)

//go:noescape
func repStos32Asm(dst unsafe.Pointer, val uint64, nElem int)

//go:noescape
func repStos64Asm(dst unsafe.Pointer, val uint64, nElem int)

// *** end assembly function signatures

// FillRaw stores val into nElem consecutive elements at dst with a single
// rep stos, selecting the B/W/L/Q form from the element width.
//
// WARNING: No validation is performed.  The caller must guarantee that dst
// is non-nil, aligned to the element width, and valid for nElem elements.
// Use Fill when any of that is in doubt.
func FillRaw[T Element](dst *T, val T, nElem int) {
	d := unsafe.Pointer(dst)
	bits := elemBits(val)
	dirflag.RunForward(func() {
		switch unsafe.Sizeof(val) {
		case 1:
			repStos8Asm(d, bits, nElem)
		case 2:
			repStos16Asm(d, bits, nElem)
		case 4:
			repStos32Asm(d, bits, nElem)
		default:
			repStos64Asm(d, bits, nElem)
		}
	})
}

func fillFwd[T Element](dst *T, val T, nElem int) {
	if nElem*int(unsafe.Sizeof(val)) < stosCutoff {
		dstS := unsafe.Slice(dst, nElem)
		for i := range dstS {
			dstS[i] = val
		}
		return
	}
	FillRaw(dst, val, nElem)
}
