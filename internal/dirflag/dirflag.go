// Copyright 2025 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dirflag scopes access to the x86 direction flag, the
// processor-wide bit that decides whether the string instructions walk
// memory at increasing (DF=0) or decreasing (DF=1) addresses.  The flag is
// mutable state invisible to the type system, so this package is the only
// place in the module allowed to touch it, and it only ever does so with a
// save/force/restore bracket around a single instruction issue.
//
// The System V and Go internal ABIs both require DF to be clear at every
// function entry and exit, so the ambient state observed here is clear in
// practice; the bracket still saves and restores it unconditionally rather
// than assume.  That ABI rule is also what makes goroutine migration
// benign: whichever OS thread a goroutine lands on, its DF is clear at
// every call boundary.
//
// On non-amd64 targets there is no direction flag and everything here is a
// no-op.
package dirflag

// RunForward invokes f with the direction flag forced to forward, then
// restores the ambient flag state.  The restore runs on every exit path,
// including a panicking f; leaking a modified flag into unrelated code is
// a correctness bug, not a style concern.  f is expected to issue exactly
// one string instruction and must not block or suspend.
func RunForward(f func()) {
	backward := Read()
	forward()
	defer restore(backward)
	f()
}
