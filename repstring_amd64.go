// Copyright 2025 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build amd64

package repstring

import (
	"unsafe"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// Per-operation cutoffs, in bytes.  Below the cutoff the safe entry points
// run a plain Go loop; at or above it they issue the REP kernel.  The
// cutoffs only ever change which code computes the result, never the
// result itself.
//
// The microcoded forms pay a fixed startup cost that scalar loops don't.
// ERMS (Ivy Bridge) shrinks that cost for movs/stos, and FSRM (Icelake)
// removes it for short movs, so init() lowers the thresholds when those
// bits are present.  x/sys/cpu does not expose FSRM, hence the second
// detection library; the cpuid package is the usual source for the long
// tail of feature bits.
var (
	movsCutoff int
	stosCutoff int
	cmpsCutoff int
	scasCutoff int
)

func init() {
	movsCutoff, stosCutoff = 256, 256
	if cpu.X86.HasERMS {
		movsCutoff, stosCutoff = 64, 64
	}
	if cpuid.CPU.Has(cpuid.FSRM) {
		movsCutoff = 0
	}
	// cmps/scas never got the ERMS treatment on hardware released so far
	// (Raptor Cove's fast-short support is not enumerable via x/sys/cpu or
	// cpuid yet), so these stay fixed.
	cmpsCutoff, scasCutoff = 64, 64
}

// elemBits returns the object representation of v in the low bytes of a
// 64-bit accumulator, which is how the stos and scas kernels want their
// operand (AL/AX/EAX/RAX).  amd64 is little-endian, so storing v at the
// base of u lands it in the low-order bits.
func elemBits[T Element](v T) uint64 {
	var u uint64
	*(*T)(unsafe.Pointer(&u)) = v
	return u
}
