// Copyright 2025 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package repstring

import (
	"fmt"
	"unsafe"
)

// Violation identifies which precondition a caller broke.
type Violation int

const (
	// LengthMismatch: the paired ranges of Copy or Mismatch disagree in
	// length.  The shorter prefix is never processed silently.
	LengthMismatch Violation = iota
	// ReverseOverlap: Copy was given a destination that starts strictly
	// inside its source.  A forward traversal would read elements it has
	// already overwritten, so this configuration is rejected outright
	// instead of producing instruction-defined garbage.
	ReverseOverlap
	// Misaligned: a range's base address is not a multiple of the element
	// width.  Unreachable through ordinary slices; it takes a slice forged
	// with package unsafe to trip this.
	Misaligned
)

func (v Violation) String() string {
	switch v {
	case LengthMismatch:
		return "length mismatch"
	case ReverseOverlap:
		return "reverse overlap"
	case Misaligned:
		return "misaligned base address"
	}
	return fmt.Sprintf("Violation(%d)", int(v))
}

// PreconditionError is the value the safe entry points panic with when a
// caller-supplied range fails validation.  Validation runs strictly before
// any kernel is issued, so a panicking call has not modified anything.
type PreconditionError struct {
	Op   string // "Copy", "Fill", "Mismatch", "Index"
	Kind Violation
}

func (e *PreconditionError) Error() string {
	return "repstring: " + e.Op + ": " + e.Kind.String()
}

// checkAligned panics unless p is aligned to the element width.  Element
// widths are powers of two, so a single mask suffices.
func checkAligned[T Element](op string, p *T) {
	if uintptr(unsafe.Pointer(p))&(unsafe.Sizeof(*p)-1) != 0 {
		panic(&PreconditionError{Op: op, Kind: Misaligned})
	}
}

// checkForwardOverlap panics if dst starts strictly inside the source range
// (src, src+nElem).  dst == src and dst < src are both fine for a forward
// traversal, as is full disjointness.
func checkForwardOverlap[T Element](op string, dst, src *T, nElem int) {
	d := uintptr(unsafe.Pointer(dst))
	s := uintptr(unsafe.Pointer(src))
	if s < d && d < s+uintptr(nElem)*unsafe.Sizeof(*dst) {
		panic(&PreconditionError{Op: op, Kind: ReverseOverlap})
	}
}
