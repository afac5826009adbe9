// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package msteel derives steel constitutive parameters from nominal
// material properties and section geometry: default strength/modulus
// values, the Shen two-surface parameter lookup, cold-formed corner
// strength, tube local-buckling degradation, the Lehigh residual-stress
// pattern, and the Sakino empirical fits for concrete-filled tubes.
//
// All functions are pure computations returning fixed-size parameter sets.
package msteel

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/fibsec/unit"
)

// DefaultFu estimates the tensile strength from the yield stress via a
// power-law fit to mill data. fy and the result are in ksi (US) or MPa (SI).
func DefaultFu(fy float64, sys unit.System) (float64, error) {
	if fy <= 0 {
		return 0, chk.Err("msteel: DefaultFu: yield stress must be positive. Fy=%g is invalid", fy)
	}
	switch sys {
	case unit.US:
		return 16.8 * math.Pow(fy, 0.345), nil
	case unit.SI:
		return 59.5 * math.Pow(fy, 0.345), nil
	}
	return 0, chk.Err("msteel: DefaultFu: unit system %v is incorrect", sys)
}

// DefaultEs returns the nominal steel elastic modulus: 29000 ksi (US) or
// 200000 MPa (SI).
func DefaultEs(sys unit.System) (float64, error) {
	switch sys {
	case unit.US:
		return 29000.0, nil
	case unit.SI:
		return 200000.0, nil
	}
	return 0, chk.Err("msteel: DefaultEs: unit system %v is incorrect", sys)
}
