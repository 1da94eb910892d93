// Copyright 2025 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !amd64

package dirflag

// Read always reports forward; non-x86 targets have no direction flag.
func Read() bool {
	return false
}

func forward() {}

func restore(bool) {}
