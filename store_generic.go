// Copyright 2025 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !amd64

package repstring

import "unsafe"

// FillRaw stores val into nElem consecutive elements at dst.
//
// WARNING: No validation is performed.  The caller must guarantee that dst
// is non-nil, aligned to the element width, and valid for nElem elements.
// Use Fill when any of that is in doubt.
func FillRaw[T Element](dst *T, val T, nElem int) {
	dstS := unsafe.Slice(dst, nElem)
	for i := range dstS {
		dstS[i] = val
	}
}

func fillFwd[T Element](dst *T, val T, nElem int) {
	FillRaw(dst, val, nElem)
}
