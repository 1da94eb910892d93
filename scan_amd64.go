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
func repScas8Asm(p unsafe.Pointer, val uint64, nElem int) int

//go:noescape
func repScas16Asm(p unsafe.Pointer, val uint64, nElem int) int

//go:noescape
func repScas32Asm(p unsafe.Pointer, val uint64, nElem int) int

//go:noescape
func repScas64Asm(p unsafe.Pointer, val uint64, nElem int) int

// *** end assembly function signatures

// IndexRaw scans nElem elements starting at p with a single repne scas and
// returns the index where the instruction stopped on an element matching
// val, or -1 when the whole range was consumed without a match.
//
// WARNING: No validation is performed.  The caller must guarantee that p
// is non-nil, aligned to the element width, and valid for nElem elements.
// Use Index when any of that is in doubt.
func IndexRaw[T Element](p *T, val T, nElem int) int {
	if nElem == 0 {
		return -1
	}
	pp := unsafe.Pointer(p)
	bits := elemBits(val)
	idx := -1
	dirflag.RunForward(func() {
		switch unsafe.Sizeof(val) {
		case 1:
			idx = repScas8Asm(pp, bits, nElem)
		case 2:
			idx = repScas16Asm(pp, bits, nElem)
		case 4:
			idx = repScas32Asm(pp, bits, nElem)
		default:
			idx = repScas64Asm(pp, bits, nElem)
		}
	})
	return idx
}

func indexFwd[T Element](p *T, val T, nElem int) int {
	if nElem*int(unsafe.Sizeof(val)) < scasCutoff {
		pS := unsafe.Slice(p, nElem)
		for i := 0; i < nElem; i++ {
			if bitEqual(pS[i], val) {
				return i
			}
		}
		return -1
	}
	return IndexRaw(p, val, nElem)
}
