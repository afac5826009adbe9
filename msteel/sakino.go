// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msteel

import (
	"math"

	"github.com/cpmech/fibsec/unit"
	"github.com/cpmech/gosl/chk"
)

// hoop-stress share of the tube yield stress sustaining confinement
const sakinoAlpha = 0.19

// SakinoScale returns the size-effect strength reduction factor of Sakino
// et al. for a concrete core of diameter dc: γU = 1.67·dc^(-0.112) with dc
// in millimeters (converted internally for US units).
func SakinoScale(dc float64, sys unit.System) (float64, error) {
	switch sys {
	case unit.US:
		dc *= 25.4
	case unit.SI:
	default:
		return 0, chk.Err("msteel: SakinoScale: unit system %v is incorrect", sys)
	}
	return 1.67 * math.Pow(dc, -0.112), nil
}

// SakinoFcc returns the confined core strength of a circular concrete
// filled tube with outer diameter D, wall t, tube yield fy, and nominal
// concrete strength fc:
//
//	fl  = α·fy·2t/(D-2t)
//	fcc = γU·fc + 4.1·fl
//
// The returned fl is the effective lateral pressure from tube hoop stress.
func SakinoFcc(fc, fy, D, t float64, sys unit.System) (fcc, fl float64, err error) {
	if fc <= 0 || fy <= 0 {
		return 0, 0, chk.Err("msteel: SakinoFcc: strengths must be positive. fc=%g, Fy=%g is invalid", fc, fy)
	}
	if D <= 0 || t <= 0 || t >= D/2.0 {
		return 0, 0, chk.Err("msteel: SakinoFcc: tube dimensions must satisfy 0 < t < D/2. D=%g, t=%g is invalid", D, t)
	}
	dc := D - 2.0*t
	γ, err := SakinoScale(dc, sys)
	if err != nil {
		return 0, 0, err
	}
	fl = sakinoAlpha * fy * 2.0 * t / dc
	fcc = γ*fc + 4.1*fl
	return
}
