// Copyright 2025 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package repstring_test

import (
	"testing"
	"unsafe"

	"github.com/grailbio/repstring"
	"github.com/stretchr/testify/require"
)

func requirePreconditionPanic(t *testing.T, op string, kind repstring.Violation, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		pe, ok := r.(*repstring.PreconditionError)
		require.True(t, ok, "panic value is %T, want *PreconditionError", r)
		require.Equal(t, op, pe.Op)
		require.Equal(t, kind, pe.Kind)
	}()
	f()
}

func TestLengthMismatch(t *testing.T) {
	a := make([]byte, 5)
	b := make([]byte, 3)
	// The shorter prefix must not be compared silently.
	requirePreconditionPanic(t, "Mismatch", repstring.LengthMismatch, func() {
		repstring.Mismatch(a, b)
	})
	requirePreconditionPanic(t, "Copy", repstring.LengthMismatch, func() {
		repstring.Copy(a, b)
	})
	long := make([]uint64, 4)
	short := make([]uint64, 2)
	requirePreconditionPanic(t, "Copy", repstring.LengthMismatch, func() {
		repstring.Copy(short, long)
	})
}

func TestReverseOverlapRejected(t *testing.T) {
	arr := []byte{1, 2, 3, 4, 5, 6}
	want := []byte{1, 2, 3, 4, 5, 6}
	// dst starts inside src: a forward copy would read elements it already
	// overwrote.
	requirePreconditionPanic(t, "Copy", repstring.ReverseOverlap, func() {
		repstring.Copy(arr[1:5], arr[0:4])
	})
	// Failure is all-or-nothing: nothing was written before the panic.
	require.Equal(t, want, arr)
}

func TestForwardOverlapAccepted(t *testing.T) {
	arr := []byte{1, 2, 3, 4, 5, 6}
	repstring.Copy(arr[0:4], arr[1:5])
	require.Equal(t, []byte{2, 3, 4, 5, 5, 6}, arr)

	// Exact aliasing is a well-defined no-op-equivalent.
	arr2 := []uint32{7, 8, 9}
	repstring.Copy(arr2, arr2)
	require.Equal(t, []uint32{7, 8, 9}, arr2)
}

// misalign returns a []uint32 view of arr whose base address is not
// 4-byte-aligned.  Only package unsafe can build such a slice; ordinary
// slices are aligned by construction.
func misalign(arr []byte, nElem int) []uint32 {
	off := 1
	if (uintptr(unsafe.Pointer(&arr[0]))+uintptr(off))%4 == 0 {
		off = 2
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&arr[off])), nElem)
}

func TestMisaligned(t *testing.T) {
	arr := make([]byte, 64)
	forged := misalign(arr, 4)
	requirePreconditionPanic(t, "Fill", repstring.Misaligned, func() {
		repstring.Fill(forged, 7)
	})
	requirePreconditionPanic(t, "Index", repstring.Misaligned, func() {
		repstring.Index(forged, 7)
	})
	aligned := make([]uint32, 4)
	requirePreconditionPanic(t, "Copy", repstring.Misaligned, func() {
		repstring.Copy(aligned, forged)
	})
	requirePreconditionPanic(t, "Mismatch", repstring.Misaligned, func() {
		repstring.Mismatch(forged, aligned)
	})
	// Nothing was written anywhere.
	for _, v := range arr {
		require.Zero(t, v)
	}
}

func TestPreconditionErrorMessage(t *testing.T) {
	err := &repstring.PreconditionError{Op: "Copy", Kind: repstring.ReverseOverlap}
	require.EqualError(t, err, "repstring: Copy: reverse overlap")
	err = &repstring.PreconditionError{Op: "Mismatch", Kind: repstring.LengthMismatch}
	require.EqualError(t, err, "repstring: Mismatch: length mismatch")
}
