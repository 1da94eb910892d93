// Copyright 2025 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package repstring

import "unsafe"

// Element enumerates the types the repeated-instruction kernels can process:
// anything whose underlying representation is a 1-, 2-, 4-, or 8-byte
// scalar.  The width of the concrete type selects the instruction form
// (byte/word/long/quad), so requesting an unsupported element type fails at
// compile time rather than at run time.
//
// float32 and float64 are included deliberately: the compare and scan
// instructions see only bit patterns, so Mismatch and Index treat floats
// bitwise (see bitEqual).
type Element interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 |
		~int64 | ~uint64 | ~int | ~uint | ~uintptr | ~float32 | ~float64
}

// bitEqual reports whether a and b have identical object representations.
// This is the scalar rendering of what repe cmps / repne scas compute: for
// integer types it coincides with ==, for floats it differs in exactly the
// NaN and signed-zero cases (NaN == NaN bitwise, +0 != -0 bitwise).
func bitEqual[T Element](a, b T) bool {
	size := unsafe.Sizeof(a)
	ba := (*[8]byte)(unsafe.Pointer(&a))
	bb := (*[8]byte)(unsafe.Pointer(&b))
	for i := uintptr(0); i != size; i++ {
		if ba[i] != bb[i] {
			return false
		}
	}
	return true
}
