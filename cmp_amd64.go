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
func repCmps8Asm(a, b unsafe.Pointer, nElem int) int

//go:noescape
func repCmps16Asm(a, b unsafe.Pointer, nElem int) int

//go:noescape
func repCmps32Asm(a, b unsafe.Pointer, nElem int) int

//go:noescape
func repCmps64Asm(a, b unsafe.Pointer, nElem int) int

// *** end assembly function signatures

// MismatchRaw compares nElem element pairs starting at a and b with a
// single repe cmps and returns the index where the instruction stopped on
// a differing pair, or -1 when all pairs matched.
//
// WARNING: No validation is performed.  The caller must guarantee that
// both pointers are non-nil, aligned to the element width, and valid for
// nElem elements.  Use Mismatch when any of that is in doubt.
func MismatchRaw[T Element](a, b *T, nElem int) int {
	if nElem == 0 {
		return -1
	}
	pa, pb := unsafe.Pointer(a), unsafe.Pointer(b)
	idx := -1
	dirflag.RunForward(func() {
		switch unsafe.Sizeof(*a) {
		case 1:
			idx = repCmps8Asm(pa, pb, nElem)
		case 2:
			idx = repCmps16Asm(pa, pb, nElem)
		case 4:
			idx = repCmps32Asm(pa, pb, nElem)
		default:
			idx = repCmps64Asm(pa, pb, nElem)
		}
	})
	return idx
}

func mismatchFwd[T Element](a, b *T, nElem int) int {
	if nElem*int(unsafe.Sizeof(*a)) < cmpsCutoff {
		aS := unsafe.Slice(a, nElem)
		bS := unsafe.Slice(b, nElem)
		for i := 0; i < nElem; i++ {
			if !bitEqual(aS[i], bS[i]) {
				return i
			}
		}
		return -1
	}
	return MismatchRaw(a, b, nElem)
}
