// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Fiber is one area-weighted sample point of a cross section, before any
// material assignment. A is signed: negative areas carve holes.
type Fiber struct {
	Y float64 // y-coordinate in section-local axes
	Z float64 // z-coordinate in section-local axes
	A float64 // signed area
}

// Side selects which half of a tube a 2D patch covers
type Side int

// sides
const (
	Top Side = iota + 1 // y ≥ center
	Bottom              // y ≤ center
)

// RectPatch2d generates nf fibers of equal height spanning y1 to y2, all at
// z = 0, each with area width*(y2-y1)/nf. Used by the 2D bending reductions
// where the transverse direction is collapsed.
//  Note: y1 ≥ y2 is not rejected, only warned about, because negative-area
//  strips are a legitimate carving device for composite decompositions;
//  callers generating real material must pass y1 < y2
func RectPatch2d(nf int, width, y1, y2 float64) []Fiber {
	if nf < 1 {
		chk.Panic("geom: RectPatch2d: number of fibers must be at least 1. nf=%d is invalid", nf)
	}
	if y1 >= y2 {
		io.Pf("geom: RectPatch2d: warning: y1=%g is not smaller than y2=%g; fiber areas will be non-positive\n", y1, y2)
	}
	h := (y2 - y1) / float64(nf)
	fibers := make([]Fiber, nf)
	for i := 0; i < nf; i++ {
		fibers[i] = Fiber{Y: y1 + (float64(i)+0.5)*h, Z: 0, A: width * h}
	}
	return fibers
}

// HalfTubePatch2d discretizes the top or bottom half of an annular tube
// with outer diameter D and wall thickness t, centered at y = yc, into nf
// horizontal strips for 2D bending. Each strip area and centroid is exact:
// the strip is composed from up to four circular-segment pieces (outer
// segments at both strip edges and, where the inner radius crosses the
// strip, inner segments) combined with signed areas.
//
// t == D/2 produces a solid half disk.
func HalfTubePatch2d(nf int, yc float64, side Side, D, t float64) ([]Fiber, error) {
	if nf < 1 {
		return nil, chk.Err("geom: HalfTubePatch2d: number of fibers must be at least 1. nf=%d is invalid", nf)
	}
	if D <= 0 {
		return nil, chk.Err("geom: HalfTubePatch2d: outer diameter must be positive. D=%g is invalid", D)
	}
	if t <= 0 || t > D/2.0 {
		return nil, chk.Err("geom: HalfTubePatch2d: wall thickness must be within (0, D/2]. t=%g is invalid", t)
	}
	if side != Top && side != Bottom {
		return nil, chk.Err("geom: HalfTubePatch2d: side must be Top or Bottom")
	}
	ro := D / 2.0
	ri := ro - t
	fibers := make([]Fiber, nf)
	for i := 0; i < nf; i++ {
		ya := float64(i) * ro / float64(nf)
		yb := float64(i+1) * ro / float64(nf)
		parts := []Part{
			{Y: SectorCentroid(ya, ro), A: SectorArea(ya, ro)},
			{Y: SectorCentroid(yb, ro), A: -SectorArea(yb, ro)},
		}
		if ri > 0 {
			if ya < ri {
				parts = append(parts, Part{Y: SectorCentroid(ya, ri), A: -SectorArea(ya, ri)})
			}
			if yb < ri {
				parts = append(parts, Part{Y: SectorCentroid(yb, ri), A: SectorArea(yb, ri)})
			}
		}
		_, y, a := Combined(parts)
		if side == Bottom {
			y = -y
		}
		fibers[i] = Fiber{Y: yc + y, Z: 0, A: a}
	}
	return fibers, nil
}
