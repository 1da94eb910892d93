// Copyright 2025 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build amd64

package dirflag

// *** the following functions are defined in dirflag_amd64.s

func readDF() bool

func clearDF()

func setDF()

// *** end assembly function signatures

// Read reports the ambient direction flag; true means backward (STD).
func Read() bool {
	return readDF()
}

func forward() {
	clearDF()
}

func restore(backward bool) {
	if backward {
		setDF()
	} else {
		clearDF()
	}
}
