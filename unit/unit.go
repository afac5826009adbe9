// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unit handles the two-valued unit-system selection (US or SI)
// that keys every hard-coded empirical constant table in this library.
// US means kip-inch-ksi; SI means N-mm-MPa.
package unit

import "github.com/cpmech/gosl/chk"

// System identifies a unit system
type System int

// available systems
const (
	US System = iota + 1 // kip, inch, ksi
	SI                   // N, mm, MPa
)

// Parse converts a unit-system tag into a System
func Parse(tag string) (System, error) {
	switch tag {
	case "US":
		return US, nil
	case "SI":
		return SI, nil
	}
	return 0, chk.Err("unit: system tag %q is incorrect; options are \"US\" and \"SI\"", tag)
}

// Valid tells whether o is one of the known systems
func (o System) Valid() bool {
	return o == US || o == SI
}

// String returns the tag of this system
func (o System) String() string {
	switch o {
	case US:
		return "US"
	case SI:
		return "SI"
	}
	return "unknown"
}
