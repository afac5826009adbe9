// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// JRectTube returns the St Venant torsional constant of a closed
// thin-walled rectangular tube with mid-line depth d, mid-line width b,
// and wall thickness t.
func JRectTube(d, b, t float64) float64 {
	return 2.0 * t * d * d * b * b / (d + b)
}

// JRoundTube returns the polar moment of inertia of a round tube with
// outer radius ro and inner radius ri. ri = 0 gives the solid circle.
func JRoundTube(ro, ri float64) float64 {
	return 0.5 * math.Pi * (ro*ro*ro*ro - ri*ri*ri*ri)
}

// JRectSolid returns the St Venant torsional constant of a solid
// rectangle with sides a and b (any order).
func JRectSolid(a, b float64) float64 {
	if b > a {
		a, b = b, a
	}
	r := b / a
	return a * b * b * b * (1.0/3.0 - 0.21*r*(1.0-r*r*r*r/12.0))
}

// JOpenWF returns the thin-walled open-section torsional constant of a
// wide-flange shape: sum of b·t³/3 over the two flanges and the clear web.
func JOpenWF(d, tw, bf, tf float64) float64 {
	dw := d - 2.0*tf
	return (2.0*bf*tf*tf*tf + dw*tw*tw*tw) / 3.0
}
