// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msteel

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// CornerFy returns the enhanced yield stress at the cold-formed corners of
// a tube, per the Karren model adopted by Abdel-Rahman and Sivakumaran:
//
//	fyc = Bc / (r/t)^m · fy
//	Bc  = 3.69·(fu/fy) − 0.819·(fu/fy)² − 1.79
//	m   = 0.192·(fu/fy) − 0.068
//
// rOverT is the inside corner radius over the wall thickness.
func CornerFy(fy, fu, rOverT float64) (float64, error) {
	if fy <= 0 {
		return 0, chk.Err("msteel: CornerFy: yield stress must be positive. Fy=%g is invalid", fy)
	}
	if fu <= fy {
		return 0, chk.Err("msteel: CornerFy: tensile strength must exceed yield stress. Fy=%g, Fu=%g is invalid", fy, fu)
	}
	if rOverT <= 0 {
		return 0, chk.Err("msteel: CornerFy: radius-to-thickness ratio must be positive. r/t=%g is invalid", rOverT)
	}
	fr := fu / fy
	bc := 3.69*fr - 0.819*fr*fr - 1.79
	m := 0.192*fr - 0.068
	return bc / math.Pow(rOverT, m) * fy, nil
}
