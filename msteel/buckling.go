// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msteel

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Degradation holds the local-buckling and post-buckling parameters of a
// tube wall (or encased plate element). Strains are multiples of the yield
// strain; stresses are fractions of fy; Ksoft is an absolute slope.
type Degradation struct {
	Elb   float64 // strain at onset of local buckling [×εy]
	Slb   float64 // stress at onset of local buckling [×fy]
	Ksoft float64 // post-buckling softening slope (negative)
	Rres  float64 // residual stress plateau after buckling [×fy]
}

// clampSoft enforces the softening-slope bound: the slope is never less
// steep than -es/30.
func clampSoft(raw, es float64) float64 {
	if raw > -es/30.0 {
		return -es / 30.0
	}
	return raw
}

// RectTubeBuckling returns the degradation parameters of a rectangular
// tube flat with slenderness λ = (b/t)·sqrt(fy/es). Regression fits with
// floor/ceiling clamps applied after the raw evaluation.
func RectTubeBuckling(bOverT, fy, es float64) (Degradation, error) {
	if bOverT <= 0 || fy <= 0 || es <= 0 {
		return Degradation{}, chk.Err("msteel: RectTubeBuckling: inputs must be positive. b/t=%g, Fy=%g, Es=%g is invalid", bOverT, fy, es)
	}
	λ := bOverT * math.Sqrt(fy/es)
	d := Degradation{
		Elb:   3.14 * math.Pow(λ, -1.48),
		Slb:   1.24 - 0.37*λ,
		Ksoft: -0.04 * λ * es,
		Rres:  1.10 - 0.18*λ,
	}
	if d.Elb > 30.0 {
		d.Elb = 30.0
	}
	if d.Elb < 1.0 {
		d.Elb = 1.0
	}
	if d.Slb > 1.0 {
		d.Slb = 1.0
	}
	if d.Slb < 0.35 {
		d.Slb = 0.35
	}
	d.Ksoft = clampSoft(d.Ksoft, es)
	if d.Rres > 1.0 {
		d.Rres = 1.0
	}
	if d.Rres < 0.2 {
		d.Rres = 0.2
	}
	return d, nil
}

// RoundTubeBuckling returns the degradation parameters of a round tube
// wall with slenderness λ = (D/t)·(fy/es).
func RoundTubeBuckling(dOverT, fy, es float64) (Degradation, error) {
	if dOverT <= 0 || fy <= 0 || es <= 0 {
		return Degradation{}, chk.Err("msteel: RoundTubeBuckling: inputs must be positive. D/t=%g, Fy=%g, Es=%g is invalid", dOverT, fy, es)
	}
	λ := dOverT * fy / es
	d := Degradation{
		Elb:   0.21 * math.Pow(λ, -1.7),
		Slb:   1.18 - 3.0*λ,
		Ksoft: -0.5 * λ * es,
		Rres:  1.0 - 4.0*λ,
	}
	if d.Elb > 30.0 {
		d.Elb = 30.0
	}
	if d.Elb < 1.0 {
		d.Elb = 1.0
	}
	if d.Slb > 1.0 {
		d.Slb = 1.0
	}
	if d.Slb < 0.35 {
		d.Slb = 0.35
	}
	d.Ksoft = clampSoft(d.Ksoft, es)
	if d.Rres > 1.0 {
		d.Rres = 1.0
	}
	if d.Rres < 0.2 {
		d.Rres = 0.2
	}
	return d, nil
}
