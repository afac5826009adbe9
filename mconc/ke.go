// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mconc

import "github.com/cpmech/gosl/chk"

// Layout selects how the longitudinal bars of a rectangular section are
// arranged along each core face.
type Layout int

// layouts
const (
	CornerOnly Layout = iota + 1 // bars at the four corners only
	Even                         // bars evenly spaced along each face
)

// KeRect returns the effective confinement coefficient of a rectangular
// core per the Mander arching model:
//
//	ke = (1 − Σw′²/6 / (bc·hc)) · (1 − s′/2bc) · (1 − s′/2hc)
//
// bc and hc are the core dimensions (center-to-center of the perimeter
// hoop), sClear is the clear tie spacing s′, and w′ are the clear
// distances between adjacent longitudinal bars around the perimeter.
// nBarsB and nBarsH count the bars along each face of width bc and hc
// respectively, corner bars counted in both directions (each corner
// vertex belongs to two orthogonal bar rows). CornerOnly forces two bars
// per face regardless of the counts.
//
// The result is floored at zero.
func KeRect(bc, hc, sClear float64, layout Layout, nBarsB, nBarsH int, barDia float64) (float64, error) {
	if bc <= 0 || hc <= 0 {
		return 0, chk.Err("mconc: KeRect: core dimensions must be positive. bc=%g, hc=%g is invalid", bc, hc)
	}
	if sClear < 0 {
		return 0, chk.Err("mconc: KeRect: clear spacing must be non-negative. s'=%g is invalid", sClear)
	}
	if barDia < 0 {
		return 0, chk.Err("mconc: KeRect: bar diameter must be non-negative. db=%g is invalid", barDia)
	}
	switch layout {
	case CornerOnly:
		nBarsB, nBarsH = 2, 2
	case Even:
		if nBarsB < 2 || nBarsH < 2 {
			return 0, chk.Err("mconc: KeRect: evenly spaced layout needs at least 2 bars per face. nB=%d, nH=%d is invalid", nBarsB, nBarsH)
		}
	default:
		return 0, chk.Err("mconc: KeRect: layout must be CornerOnly or Even")
	}
	wb := bc/float64(nBarsB-1) - barDia
	wh := hc/float64(nBarsH-1) - barDia
	if wb < 0 {
		wb = 0
	}
	if wh < 0 {
		wh = 0
	}
	sumw2 := 2.0*float64(nBarsB-1)*wb*wb + 2.0*float64(nBarsH-1)*wh*wh
	fa := 1.0 - sumw2/6.0/(bc*hc)
	fb := 1.0 - sClear/(2.0*bc)
	fh := 1.0 - sClear/(2.0*hc)
	// each factor vanishes on its own; negative factors must not cancel
	if fa < 0 {
		fa = 0
	}
	if fb < 0 {
		fb = 0
	}
	if fh < 0 {
		fh = 0
	}
	return fa * fb * fh, nil
}

// KeCirc returns the effective confinement coefficient of a circular core
// of diameter ds with clear spiral/hoop spacing sClear: the arching factor
// (1 − s′/2ds) applied once for spirals and squared for discrete hoops.
// Floored at zero.
func KeCirc(ds, sClear float64, spiral bool) float64 {
	f := 1.0 - sClear/(2.0*ds)
	if f < 0 {
		f = 0
	}
	if spiral {
		return f
	}
	return f * f
}
