// Copyright 2025 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package repstring provides safe, validated wrappers around the x86-64
// repeated string instructions: rep movs (copy), rep stos (fill), repe cmps
// (first mismatch), and repne scas (first match), each in 8/16/32/64-bit
// element form.
//
// Intel Ivy Bridge introduced ERMS, indicating that rep movs/stos on larger
// blocks is competitive with hand-written vector loops; Icelake added FSRM
// (fast short rep movs), extending that down to 1-128 byte inputs, and
// Raptor Cove did the same for short cmpsb/scasb.  On such hardware the
// microcoded forms are attractive because they need no per-width unrolled
// loops, but they come with two hazards this package exists to contain:
// they operate on raw pointer+count ranges with no bounds checking, and
// their traversal order is controlled by the processor-wide direction flag.
//
// Two tiers of functions are exported:
//
// - Copy, Fill, Mismatch, and Index take ordinary slices, verify length
// agreement, element alignment, and (for Copy) that any overlap is in the
// forward-safe direction, and panic with a *PreconditionError before any
// memory is touched when a check fails.  A zero-length range is a no-op.
//
// - Functions with a 'Raw' suffix take a pointer and an element count,
// perform no validation, and trust the caller to uphold the documented
// preconditions, exactly like the unchecked kernels they wrap.  They exist
// for callers that have already validated their ranges and sit in loops
// tight enough for the checks to matter.
//
// Element comparison (Mismatch, Index) is bitwise: two float64 NaNs with
// the same representation are equal, and +0/-0 are not, because that is
// what the cmps/scas hardware does.  All functions force forward traversal
// for the duration of one instruction and restore the ambient direction
// flag on every exit path; no flag state ever leaks to the caller.
//
// On non-amd64 targets every entry point falls back to a plain Go loop
// with identical observable behavior.
package repstring
