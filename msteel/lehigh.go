// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msteel

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// LehighPattern holds the Lehigh residual-stress distribution of a hot
// rolled wide-flange shape: compression at the flange tips varying
// linearly to tension at the flange-web junction, with the web carrying no
// geometric residual stress. The tensile value follows from force balance
// over the flange, web, and fillet areas.
type LehighPattern struct {
	Frc    float64   // compressive residual stress at the flange tips (negative)
	Frt    float64   // tensile residual stress at the flange center
	Levels []float64 // stress levels sampled at strip midpoints, flange tip to center
}

// Lehigh computes the residual-stress pattern. frc must be negative; n is
// the number of stress levels across each half flange; k is the design
// fillet dimension (distance from outer flange face to web toe of fillet),
// zero when fillets are neglected.
func Lehigh(frc float64, n int, d, tw, bf, tf, k float64) (*LehighPattern, error) {
	if frc >= 0 {
		return nil, chk.Err("msteel: Lehigh: residual stress at flange tips must be negative. frc=%g is invalid", frc)
	}
	if n < 1 {
		return nil, chk.Err("msteel: Lehigh: number of stress levels must be at least 1. n=%d is invalid", n)
	}
	if d <= 0 || tw <= 0 || bf <= 0 || tf <= 0 {
		return nil, chk.Err("msteel: Lehigh: dimensions must be positive. d=%g, tw=%g, bf=%g, tf=%g is invalid", d, tw, bf, tf)
	}
	if tf >= d/2.0 {
		return nil, chk.Err("msteel: Lehigh: flange thickness must be smaller than half the depth. d=%g, tf=%g is invalid", d, tf)
	}
	var afil float64
	if k > tf {
		r := k - tf
		afil = 4.0 * (1.0 - math.Pi/4.0) * r * r
	}
	dw := d - 2.0*tf
	af := bf * tf
	frt := -frc * af / (af + tw*dw + afil)
	o := &LehighPattern{Frc: frc, Frt: frt, Levels: make([]float64, n)}
	w := bf / (2.0 * float64(n))
	for i := 0; i < n; i++ {
		// |x| at the midpoint of strip i, counted from the tip inward
		x := bf/2.0 - (float64(i)+0.5)*w
		o.Levels[i] = frt + (frc-frt)*2.0*x/bf
	}
	return o, nil
}

// Balance returns the net axial force of the pattern integrated over the
// flange strips plus the web and fillet areas at frt. It is zero up to
// midpoint-rule exactness (the ramp is linear, so exactly zero).
func (o *LehighPattern) Balance(d, tw, bf, tf, k float64) float64 {
	var afil float64
	if k > tf {
		r := k - tf
		afil = 4.0 * (1.0 - math.Pi/4.0) * r * r
	}
	n := len(o.Levels)
	w := bf / (2.0 * float64(n))
	var f float64
	for _, s := range o.Levels {
		f += 4.0 * s * w * tf // four half-flange strips per level
	}
	return f + o.Frt*(tw*(d-2.0*tf)+afil)
}
