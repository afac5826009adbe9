// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the geometry primitives of the fiber generator:
// circular-segment area and centroid, signed-area composition, 2D patch
// generators, and torsional-constant estimators. geom is a leaf package.
package geom

import "math"

// SectorArea returns the area of the circular segment cut from a circle of
// radius R by a chord at perpendicular distance d from the center. The
// segment is the piece between the chord and the circle edge, on the side
// of the chord indicated by the sign of d.
//  Note: returns NaN if |d| > R; callers must clamp d to [-R, R]
func SectorArea(d, R float64) float64 {
	θ := 2.0 * math.Acos(math.Abs(d)/R)
	return 0.5 * R * R * (θ - math.Sin(θ))
}

// SectorCentroid returns the centroid offset, along the axis of symmetry,
// of the segment defined as in SectorArea. The limit |d| == R (vanishing
// segment) is a removable singularity and returns ±R.
func SectorCentroid(d, R float64) float64 {
	if math.Abs(d) >= R {
		return math.Copysign(R, d)
	}
	θ := 2.0 * math.Acos(math.Abs(d)/R)
	s := math.Sin(0.5 * θ)
	c := 4.0 * R * s * s * s / (3.0 * (θ - math.Sin(θ)))
	return math.Copysign(c, d)
}

// Part is one constituent of a composite shape: a centroid position and a
// signed area. Negative areas subtract; e.g. an annulus is the outer disk
// plus the inner disk with negative area.
type Part struct {
	X float64 // x-coordinate of centroid
	Y float64 // y-coordinate of centroid
	A float64 // signed area
}

// Combined returns the centroid and total signed area of a list of parts
// via area-weighted averaging. If the total area vanishes, the centroid is
// reported at the origin.
func Combined(parts []Part) (x, y, a float64) {
	var sx, sy float64
	for _, p := range parts {
		sx += p.X * p.A
		sy += p.Y * p.A
		a += p.A
	}
	if math.Abs(a) < 1e-15 {
		return 0, 0, a
	}
	return sx / a, sy / a, a
}
