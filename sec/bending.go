// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec

import (
	"strconv"

	"github.com/cpmech/gosl/chk"
)

// Bending selects the bending mode of a generation call. It is a closed
// sum type: full 3D with two fiber-count targets, or a 2D reduction about
// the strong or weak axis with one target. There is no numeric default;
// composers switch exhaustively on the three variants.
type Bending interface {
	bending()
}

// ThreeD requests full 3D fiber generation with Nf1 fibers across the
// primary (depth) direction and Nf2 across the transverse direction.
type ThreeD struct {
	Nf1 int
	Nf2 int
}

// Strong requests a 2D strong-axis reduction with Nf fibers across the depth
type Strong struct {
	Nf int
}

// Weak requests a 2D weak-axis reduction with Nf fibers across the width
type Weak struct {
	Nf int
}

func (ThreeD) bending() {}
func (Strong) bending() {}
func (Weak) bending()   {}

// ParseBending resolves the overloaded second fiber-count argument of the
// scripting interface: a positive integer selects 3D with that transverse
// target; the tags "strong"/"2dStrong" and "weak"/"2dWeak" select the 2D
// reductions. Anything else is an error.
func ParseBending(nf1 int, arg string) (Bending, error) {
	if nf1 < 1 {
		return nil, chk.Err("sec: ParseBending: number of fibers must be at least 1. nf1=%d is invalid", nf1)
	}
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 {
			return nil, chk.Err("sec: ParseBending: number of fibers must be at least 1. nf2=%d is invalid", n)
		}
		return ThreeD{Nf1: nf1, Nf2: n}, nil
	}
	switch arg {
	case "strong", "2dStrong":
		return Strong{Nf: nf1}, nil
	case "weak", "2dWeak":
		return Weak{Nf: nf1}, nil
	}
	return nil, chk.Err("sec: ParseBending: bending tag %q is incorrect; options are a positive fiber count, \"strong\", or \"weak\"", arg)
}

// checkBending validates the fiber counts of any variant
func checkBending(b Bending) error {
	switch v := b.(type) {
	case ThreeD:
		if v.Nf1 < 1 || v.Nf2 < 1 {
			return chk.Err("sec: number of fibers must be at least 1. nf1=%d, nf2=%d is invalid", v.Nf1, v.Nf2)
		}
	case Strong:
		if v.Nf < 1 {
			return chk.Err("sec: number of fibers must be at least 1. nf=%d is invalid", v.Nf)
		}
	case Weak:
		if v.Nf < 1 {
			return chk.Err("sec: number of fibers must be at least 1. nf=%d is invalid", v.Nf)
		}
	case nil:
		return chk.Err("sec: bending mode must be given")
	default:
		return chk.Err("sec: bending mode %v is unknown", b)
	}
	return nil
}

// twoD tells whether the variant is a 2D reduction
func twoD(b Bending) bool {
	switch b.(type) {
	case Strong, Weak:
		return true
	}
	return false
}
