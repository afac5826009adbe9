// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec

import (
	"math"

	"github.com/cpmech/fibsec/geom"
	"github.com/cpmech/fibsec/msteel"
	"github.com/cpmech/fibsec/unit"
	"github.com/cpmech/gosl/chk"
)

// RoundHSS generates a round hollow structural section.
//
// Material ids, starting from the sequence value N:
//
//	N = steel [, N+1 = added elastic]
type RoundHSS struct {
	ID    int
	Mode  OutputMode
	Units unit.System

	// dimensions
	D float64 // outer diameter
	T float64 // wall thickness

	// material properties
	Fy float64
	Fu float64 // zero resolves to the default fit
	Es float64 // zero resolves to the nominal value

	// options
	MatType MatKind // zero resolves to ElasticPP
	AE      AddedElastic
	GJ      GJOption

	// derived
	degr     *msteel.Degradation
	matSteel int
	matAE    int
}

// Validate checks dimensions, material properties, and options
func (o *RoundHSS) Validate(b Bending) error {
	if err := checkBending(b); err != nil {
		return err
	}
	if o.D <= 0 || o.T <= 0 || o.T >= o.D/2.0 {
		return chk.Err("sec: RoundHSS: tube dimensions must satisfy 0 < t < D/2. D=%g, t=%g is invalid", o.D, o.T)
	}
	if !o.Units.Valid() {
		return chk.Err("sec: RoundHSS: unit system %v is incorrect", o.Units)
	}
	switch o.MatType {
	case 0, Elastic, ElasticPP, Bilinear, MultiSurface, SteelTube:
	default:
		return chk.Err("sec: RoundHSS: material type %v cannot represent tube steel", o.MatType)
	}
	if o.MatType != Elastic && o.Fy <= 0 {
		return chk.Err("sec: RoundHSS: yield stress must be positive. Fy=%g is invalid", o.Fy)
	}
	if o.Fu != 0 && o.Fu <= o.Fy {
		return chk.Err("sec: RoundHSS: tensile strength must exceed yield stress. Fy=%g, Fu=%g is invalid", o.Fy, o.Fu)
	}
	if g := o.GJ.resolve(); g.Mode == GJConcreteOnly {
		return chk.Err("sec: RoundHSS: GJ mode concreteonly does not apply to a bare steel shape")
	}
	return o.AE.check(b)
}

func (o *RoundHSS) resolve() (err error) {
	if o.Mode == 0 {
		o.Mode = Full
	}
	if o.MatType == 0 {
		o.MatType = ElasticPP
	}
	if o.Es == 0 {
		if o.Es, err = msteel.DefaultEs(o.Units); err != nil {
			return
		}
	}
	if o.Fu == 0 && (o.MatType == MultiSurface || o.MatType == SteelTube) {
		if o.Fu, err = msteel.DefaultFu(o.Fy, o.Units); err != nil {
			return
		}
	}
	if o.MatType == SteelTube {
		d, err := msteel.RoundTubeBuckling(o.D/o.T, o.Fy, o.Es)
		if err != nil {
			return err
		}
		o.degr = &d
	}
	return
}

func (o *RoundHSS) scalars(b Bending) (gj float64, err error) {
	g := o.GJ.resolve()
	switch g.Mode {
	case GJNumeric:
		gj = g.Value
	case GJCalc, GJSteelOnly:
		gj = Gsteel(o.Es) * geom.JRoundTube(o.D/2.0, o.D/2.0-o.T)
	default:
		return 0, chk.Err("sec: RoundHSS: GJ mode %v is incorrect", g.Mode)
	}
	if o.AE.Use && !twoD(b) {
		gj += o.AE.GJ
	}
	return
}

func (o *RoundHSS) materials(e Emitter, ids *IDSeq) error {
	o.matSteel = ids.Next()
	prms, err := steelPrms(o.MatType, o.Fy, o.Fu, o.Es, 0, 0, o.Units, o.degr)
	if err != nil {
		return err
	}
	if err = e.Material(Material{ID: o.matSteel, Kind: o.MatType, Prms: prms}); err != nil {
		return err
	}
	if o.AE.Use {
		o.matAE = ids.Next()
		return addedElasticMaterial(e, o.matAE)
	}
	return nil
}

func (o *RoundHSS) fibers(e Emitter, b Bending) (err error) {
	switch v := b.(type) {
	case Strong, Weak:
		// both 2D reductions coincide by symmetry
		nf := 0
		if s, ok := v.(Strong); ok {
			nf = s.Nf
		} else {
			nf = v.(Weak).Nf
		}
		if err = roundTubeFibers2d(e, o.D, o.T, nf, o.matSteel); err != nil {
			return
		}
	case ThreeD:
		nr := nsub(2.0*o.T, o.D, v.Nf1)
		if err = e.CircPatch(o.matSteel, v.Nf2, nr, 0, 0, o.D/2.0-o.T, o.D/2.0, 0, 360); err != nil {
			return
		}
	}
	if o.AE.Use {
		return addedElasticFibers(e, o.matAE, b, o.AE)
	}
	return
}

// Generate runs the full pipeline for this shape
func (o *RoundHSS) Generate(e Emitter, ids *IDSeq, b Bending) error {
	if err := o.Validate(b); err != nil {
		return err
	}
	if err := o.resolve(); err != nil {
		return err
	}
	gj, err := o.scalars(b)
	if err != nil {
		return err
	}
	return orchestrate(e, o.Mode, o.ID, gj,
		func(dst Emitter) error { return o.materials(dst, ids) },
		func(dst Emitter) error { return o.fibers(dst, b) })
}

// RectHSS generates a cold-formed rectangular hollow structural section
// with outer corner radius 2t and inner corner radius t. The corner
// regions carry the enhanced cold-formed yield stress.
//
// Material ids, starting from the sequence value N:
//
//	N = flat steel, N+1 = corner steel [, N+2 = added elastic]
type RectHSS struct {
	ID    int
	Mode  OutputMode
	Units unit.System

	// dimensions
	D float64 // outer depth (along y for strong-axis bending)
	B float64 // outer width
	T float64 // wall thickness

	// material properties
	Fy float64
	Fu float64 // zero resolves to the default fit
	Es float64 // zero resolves to the nominal value

	// options
	MatType MatKind // zero resolves to ElasticPP
	AE      AddedElastic
	GJ      GJOption

	// derived
	fyc       float64
	degr      *msteel.Degradation
	matFlat   int
	matCorner int
	matAE     int
}

// Validate checks dimensions, material properties, and options
func (o *RectHSS) Validate(b Bending) error {
	if err := checkBending(b); err != nil {
		return err
	}
	if o.D <= 0 || o.B <= 0 || o.T <= 0 {
		return chk.Err("sec: RectHSS: dimensions must be positive. D=%g, B=%g, t=%g is invalid", o.D, o.B, o.T)
	}
	if o.T > math.Min(o.D, o.B)/4.0 {
		return chk.Err("sec: RectHSS: wall thickness must not exceed a quarter of the smaller side (flats vanish). D=%g, B=%g, t=%g is invalid", o.D, o.B, o.T)
	}
	if !o.Units.Valid() {
		return chk.Err("sec: RectHSS: unit system %v is incorrect", o.Units)
	}
	switch o.MatType {
	case 0, Elastic, ElasticPP, Bilinear, MultiSurface, SteelTube:
	default:
		return chk.Err("sec: RectHSS: material type %v cannot represent tube steel", o.MatType)
	}
	if o.MatType != Elastic && o.Fy <= 0 {
		return chk.Err("sec: RectHSS: yield stress must be positive. Fy=%g is invalid", o.Fy)
	}
	if o.Fu != 0 && o.Fu <= o.Fy {
		return chk.Err("sec: RectHSS: tensile strength must exceed yield stress. Fy=%g, Fu=%g is invalid", o.Fy, o.Fu)
	}
	if g := o.GJ.resolve(); g.Mode == GJConcreteOnly {
		return chk.Err("sec: RectHSS: GJ mode concreteonly does not apply to a bare steel shape")
	}
	return o.AE.check(b)
}

func (o *RectHSS) resolve() (err error) {
	if o.Mode == 0 {
		o.Mode = Full
	}
	if o.MatType == 0 {
		o.MatType = ElasticPP
	}
	if o.Es == 0 {
		if o.Es, err = msteel.DefaultEs(o.Units); err != nil {
			return
		}
	}
	if o.Fu == 0 && o.MatType != Elastic {
		if o.Fu, err = msteel.DefaultFu(o.Fy, o.Units); err != nil {
			return
		}
	}
	if o.MatType == Elastic {
		o.fyc = 0
	} else {
		// inside corner radius equals the wall thickness
		if o.fyc, err = msteel.CornerFy(o.Fy, o.Fu, 1.0); err != nil {
			return
		}
	}
	if o.MatType == SteelTube {
		flat := math.Max(o.D, o.B) - 4.0*o.T
		if flat < o.T {
			flat = o.T
		}
		d, err := msteel.RectTubeBuckling(flat/o.T, o.Fy, o.Es)
		if err != nil {
			return err
		}
		o.degr = &d
	}
	return
}

func (o *RectHSS) scalars(b Bending) (gj float64, err error) {
	g := o.GJ.resolve()
	switch g.Mode {
	case GJNumeric:
		gj = g.Value
	case GJCalc, GJSteelOnly:
		gj = Gsteel(o.Es) * geom.JRectTube(o.D-o.T, o.B-o.T, o.T)
	default:
		return 0, chk.Err("sec: RectHSS: GJ mode %v is incorrect", g.Mode)
	}
	if o.AE.Use && !twoD(b) {
		gj += o.AE.GJ
	}
	return
}

func (o *RectHSS) materials(e Emitter, ids *IDSeq) error {
	o.matFlat = ids.Next()
	prms, err := steelPrms(o.MatType, o.Fy, o.Fu, o.Es, 0, 0, o.Units, o.degr)
	if err != nil {
		return err
	}
	if err = e.Material(Material{ID: o.matFlat, Kind: o.MatType, Prms: prms}); err != nil {
		return err
	}
	o.matCorner = ids.Next()
	fy := o.fyc
	if o.MatType == Elastic {
		fy = 0
	}
	prms, err = steelPrms(o.MatType, fy, o.Fu, o.Es, 0, 0, o.Units, o.degr)
	if err != nil {
		return err
	}
	if err = e.Material(Material{ID: o.matCorner, Kind: o.MatType, Prms: prms}); err != nil {
		return err
	}
	if o.AE.Use {
		o.matAE = ids.Next()
		return addedElasticMaterial(e, o.matAE)
	}
	return nil
}

func (o *RectHSS) fibers(e Emitter, b Bending) (err error) {
	switch v := b.(type) {
	case Strong:
		err = rectTubeFibers2d(e, o.D, o.B, o.T, v.Nf, o.matFlat, o.matCorner)
	case Weak:
		// the weak-axis reduction is the strong-axis one of the transposed tube
		err = rectTubeFibers2d(e, o.B, o.D, o.T, v.Nf, o.matFlat, o.matCorner)
	case ThreeD:
		err = rectTubeFibers3d(e, o.D, o.B, o.T, v.Nf1, v.Nf2, o.matFlat, o.matCorner)
	}
	if err != nil {
		return
	}
	if o.AE.Use {
		return addedElasticFibers(e, o.matAE, b, o.AE)
	}
	return
}

// Generate runs the full pipeline for this shape
func (o *RectHSS) Generate(e Emitter, ids *IDSeq, b Bending) error {
	if err := o.Validate(b); err != nil {
		return err
	}
	if err := o.resolve(); err != nil {
		return err
	}
	gj, err := o.scalars(b)
	if err != nil {
		return err
	}
	return orchestrate(e, o.Mode, o.ID, gj,
		func(dst Emitter) error { return o.materials(dst, ids) },
		func(dst Emitter) error { return o.fibers(dst, b) })
}

// halfCount splits a target count between the two halves of a symmetric
// region, rounding up
func halfCount(nf int) int {
	n := (nf + 1) / 2
	if n < 1 {
		n = 1
	}
	return n
}

// roundTubeFibers2d emits both halves of an annular tube for 2D bending
func roundTubeFibers2d(e Emitter, D, t float64, nf, mat int) error {
	n := halfCount(nf)
	for _, side := range []geom.Side{geom.Top, geom.Bottom} {
		fibers, err := geom.HalfTubePatch2d(n, 0, side, D, t)
		if err != nil {
			return err
		}
		for _, f := range fibers {
			if err = e.Fiber(f.Y, f.Z, f.A, mat); err != nil {
				return err
			}
		}
	}
	return nil
}

// rectTubeFibers2d emits the flats and corner arcs of a rectangular tube
// (outer corner radius 2t) for 2D bending about the axis perpendicular to
// depth. The two corner arcs of each end together form the exact fiber
// set of a half annular tube, which makes the corner strips closed-form.
func rectTubeFibers2d(e Emitter, depth, width, t float64, nf, matFlat, matCorner int) error {
	ro := 2.0 * t
	yc := depth/2.0 - ro

	// side walls (both, lumped)
	nfW := nsub(depth-2.0*ro, depth, nf)
	for _, f := range geom.RectPatch2d(nfW, 2.0*t, -yc, yc) {
		if err := e.Fiber(f.Y, f.Z, f.A, matFlat); err != nil {
			return err
		}
	}

	// top and bottom flats
	nfF := nsub(t, depth, nf)
	for _, span := range [][2]float64{{depth/2.0 - t, depth / 2.0}, {-depth / 2.0, -depth/2.0 + t}} {
		for _, f := range geom.RectPatch2d(nfF, width-2.0*ro, span[0], span[1]) {
			if err := e.Fiber(f.Y, f.Z, f.A, matFlat); err != nil {
				return err
			}
		}
	}

	// corner arcs
	nfC := nsub(ro, depth, nf)
	for i, side := range []geom.Side{geom.Top, geom.Bottom} {
		center := yc
		if i == 1 {
			center = -yc
		}
		fibers, err := geom.HalfTubePatch2d(nfC, center, side, 2.0*ro, t)
		if err != nil {
			return err
		}
		for _, f := range fibers {
			if err = e.Fiber(f.Y, f.Z, f.A, matCorner); err != nil {
				return err
			}
		}
	}
	return nil
}

// rectTubeFibers3d emits the flats as quadrilateral patches and the
// corners as quarter-annulus circular patches
func rectTubeFibers3d(e Emitter, depth, width, t float64, nf1, nf2, matFlat, matCorner int) error {
	ro := 2.0 * t
	yc := depth/2.0 - ro
	zc := width/2.0 - ro

	// side walls
	nfW := nsub(depth-2.0*ro, depth, nf1)
	nfWz := nsub(t, width, nf2)
	for _, zs := range [][2]float64{{width/2.0 - t, width / 2.0}, {-width / 2.0, -width/2.0 + t}} {
		if err := e.QuadPatch(matFlat, nfWz, nfW, quad(-yc, yc, zs[0], zs[1])); err != nil {
			return err
		}
	}

	// top and bottom flats
	nfF := nsub(t, depth, nf1)
	nfFz := nsub(width-2.0*ro, width, nf2)
	for _, ys := range [][2]float64{{depth/2.0 - t, depth / 2.0}, {-depth / 2.0, -depth/2.0 + t}} {
		if err := e.QuadPatch(matFlat, nfFz, nfF, quad(ys[0], ys[1], -zc, zc)); err != nil {
			return err
		}
	}

	// corner arcs; angles counterclockwise from the +y axis
	nc := nsub(ro, depth, nf1)
	if nc < 2 {
		nc = 2
	}
	nr := nsub(t, depth, nf1)
	corners := []struct {
		y, z   float64
		a0, a1 float64
	}{
		{yc, zc, 0, 90},
		{-yc, zc, 90, 180},
		{-yc, -zc, 180, 270},
		{yc, -zc, 270, 360},
	}
	for _, c := range corners {
		if err := e.CircPatch(matCorner, nc, nr, c.y, c.z, ro-t, ro, c.a0, c.a1); err != nil {
			return err
		}
	}
	return nil
}
