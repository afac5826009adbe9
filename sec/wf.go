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

// WF generates a hot-rolled wide-flange steel section. Strong-axis
// bending puts the depth D along y.
//
// Material ids, starting from the sequence value N:
//
//	without residual stress:  N = steel [, N+1 = added elastic]
//	with Lehigh(n):           N..N+n-1 = flange stress levels (tip to
//	                          center), N+n = web [, N+n+1 = added elastic]
type WF struct {
	ID    int         // section id (Full mode)
	Mode  OutputMode  // zero resolves to Full
	Units unit.System // US or SI

	// dimensions
	D  float64 // depth
	Tw float64 // web thickness
	Bf float64 // flange width
	Tf float64 // flange thickness

	// material properties
	Fy float64 // yield stress (not needed for Elastic)
	Fu float64 // tensile strength; zero resolves to the default fit
	Es float64 // elastic modulus; zero resolves to the nominal value

	// options
	MatType MatKind      // zero resolves to ElasticPP
	Fillet  float64      // design k dimension; zero neglects fillets
	Lehigh  *LehighOpt   // residual-stress pattern; nil for none
	AE      AddedElastic // additional elastic stiffness
	GJ      GJOption     // torsional-stiffness mode

	// derived
	dw        float64 // clear web depth
	pattern   *msteel.LehighPattern
	matFlange []int
	matWeb    int
	matAE     int
}

// LehighOpt requests the Lehigh residual-stress pattern
type LehighOpt struct {
	Frc float64 // compressive residual stress at the flange tips (negative)
	N   int     // number of stress levels per half flange
}

// Validate checks dimensions, material properties, and options. It runs
// before any id allocation or emission.
func (o *WF) Validate(b Bending) error {
	if err := checkBending(b); err != nil {
		return err
	}
	if o.D <= 0 || o.Tw <= 0 || o.Bf <= 0 || o.Tf <= 0 {
		return chk.Err("sec: WF: dimensions must be positive. d=%g, tw=%g, bf=%g, tf=%g is invalid", o.D, o.Tw, o.Bf, o.Tf)
	}
	if o.Tf >= o.D/2.0 {
		return chk.Err("sec: WF: flange thickness must be smaller than half the depth. d=%g, tf=%g is invalid", o.D, o.Tf)
	}
	if o.Tw >= o.Bf {
		return chk.Err("sec: WF: web thickness must be smaller than the flange width. tw=%g, bf=%g is invalid", o.Tw, o.Bf)
	}
	if !o.Units.Valid() {
		return chk.Err("sec: WF: unit system %v is incorrect", o.Units)
	}
	switch o.MatType {
	case 0, Elastic, ElasticPP, Bilinear, MultiSurface:
	default:
		return chk.Err("sec: WF: material type %v cannot represent a rolled shape", o.MatType)
	}
	if o.MatType != Elastic && o.Fy <= 0 {
		return chk.Err("sec: WF: yield stress must be positive. Fy=%g is invalid", o.Fy)
	}
	if o.Fu != 0 && o.Fu <= o.Fy {
		return chk.Err("sec: WF: tensile strength must exceed yield stress. Fy=%g, Fu=%g is invalid", o.Fy, o.Fu)
	}
	if o.Fillet != 0 && o.Fillet < o.Tf {
		return chk.Err("sec: WF: fillet dimension must be at least the flange thickness. k=%g, tf=%g is invalid", o.Fillet, o.Tf)
	}
	if o.Fillet > o.D/2.0 {
		return chk.Err("sec: WF: fillet dimension must be smaller than half the depth. k=%g is invalid", o.Fillet)
	}
	if o.Lehigh != nil && o.MatType == Elastic {
		return chk.Err("sec: WF: residual stresses need an inelastic material type")
	}
	if g := o.GJ.resolve(); g.Mode == GJConcreteOnly {
		return chk.Err("sec: WF: GJ mode concreteonly does not apply to a bare steel shape")
	}
	return o.AE.check(b)
}

// resolve fills defaults and derived quantities
func (o *WF) resolve() (err error) {
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
	if o.Fu == 0 && o.MatType == MultiSurface {
		if o.Fu, err = msteel.DefaultFu(o.Fy, o.Units); err != nil {
			return
		}
	}
	o.dw = o.D - 2.0*o.Tf
	if o.Lehigh != nil {
		o.pattern, err = msteel.Lehigh(o.Lehigh.Frc, o.Lehigh.N, o.D, o.Tw, o.Bf, o.Tf, o.Fillet)
	}
	return
}

// scalars finalizes the section-level torsional stiffness
func (o *WF) scalars(b Bending) (gj float64, err error) {
	g := o.GJ.resolve()
	switch g.Mode {
	case GJNumeric:
		gj = g.Value
	case GJCalc, GJSteelOnly:
		gj = Gsteel(o.Es) * geom.JOpenWF(o.D, o.Tw, o.Bf, o.Tf)
	default:
		return 0, chk.Err("sec: WF: GJ mode %v is incorrect", g.Mode)
	}
	if o.AE.Use && !twoD(b) {
		gj += o.AE.GJ
	}
	return
}

// materials allocates ids and defines the material records
func (o *WF) materials(e Emitter, ids *IDSeq) error {
	if o.pattern != nil {
		o.matFlange = make([]int, len(o.pattern.Levels))
		for i, sig0 := range o.pattern.Levels {
			o.matFlange[i] = ids.Next()
			prms, err := steelPrms(o.MatType, o.Fy, o.Fu, o.Es, sig0, 0, o.Units, nil)
			if err != nil {
				return err
			}
			if err = e.Material(Material{ID: o.matFlange[i], Kind: o.MatType, Prms: prms}); err != nil {
				return err
			}
		}
		o.matWeb = ids.Next()
		prms, err := steelPrms(o.MatType, o.Fy, o.Fu, o.Es, 0, o.pattern.Frt, o.Units, nil)
		if err != nil {
			return err
		}
		if err = e.Material(Material{ID: o.matWeb, Kind: o.MatType, Prms: prms}); err != nil {
			return err
		}
	} else {
		id := ids.Next()
		o.matFlange = []int{id}
		o.matWeb = id
		prms, err := steelPrms(o.MatType, o.Fy, o.Fu, o.Es, 0, 0, o.Units, nil)
		if err != nil {
			return err
		}
		if err = e.Material(Material{ID: id, Kind: o.MatType, Prms: prms}); err != nil {
			return err
		}
	}
	if o.AE.Use {
		o.matAE = ids.Next()
		return addedElasticMaterial(e, o.matAE)
	}
	return nil
}

// flangeLevel maps |x| across the half flange width to a stress-level
// material, tip first
func (o *WF) flangeLevel(x float64) int {
	if o.pattern == nil {
		return o.matFlange[0]
	}
	n := len(o.pattern.Levels)
	w := o.Bf / (2.0 * float64(n))
	i := int((o.Bf/2.0 - math.Abs(x)) / w)
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return o.matFlange[i]
}

// fibers emits the fiber decomposition for the requested bending mode
func (o *WF) fibers(e Emitter, b Bending) (err error) {
	switch v := b.(type) {
	case Strong:
		err = o.fibersStrong(e, v.Nf)
	case Weak:
		err = o.fibersWeak(e, v.Nf)
	case ThreeD:
		err = o.fibers3d(e, v.Nf1, v.Nf2)
	}
	if err != nil {
		return
	}
	if o.AE.Use {
		return addedElasticFibers(e, o.matAE, b, o.AE)
	}
	return
}

func (o *WF) fibersStrong(e Emitter, nf int) error {
	nfF := nsub(o.Tf, o.D, nf)
	nfW := nsub(o.dw, o.D, nf)
	nlv := len(o.matFlange)
	for _, span := range [][2]float64{{-o.D / 2.0, -o.dw / 2.0}, {o.dw / 2.0, o.D / 2.0}} {
		for _, f := range geom.RectPatch2d(nfF, o.Bf, span[0], span[1]) {
			// each stress level covers an equal share of the flange width
			for i := 0; i < nlv; i++ {
				if err := e.Fiber(f.Y, 0, f.A/float64(nlv), o.matFlange[i]); err != nil {
					return err
				}
			}
		}
	}
	for _, f := range geom.RectPatch2d(nfW, o.Tw, -o.dw/2.0, o.dw/2.0) {
		if err := e.Fiber(f.Y, 0, f.A, o.matWeb); err != nil {
			return err
		}
	}
	return o.filletFibers(e, Strong{})
}

func (o *WF) fibersWeak(e Emitter, nf int) error {
	nfW := nsub(o.Tw, o.Bf, nf)
	for _, f := range geom.RectPatch2d(nf, 2.0*o.Tf, -o.Bf/2.0, o.Bf/2.0) {
		if err := e.Fiber(f.Y, 0, f.A, o.flangeLevel(f.Y)); err != nil {
			return err
		}
	}
	for _, f := range geom.RectPatch2d(nfW, o.dw, -o.Tw/2.0, o.Tw/2.0) {
		if err := e.Fiber(f.Y, 0, f.A, o.matWeb); err != nil {
			return err
		}
	}
	return o.filletFibers(e, Weak{})
}

func (o *WF) fibers3d(e Emitter, nf1, nf2 int) error {
	nfF := nsub(o.Tf, o.D, nf1)
	nfW := nsub(o.dw, o.D, nf1)
	nfWz := nsub(o.Tw, o.Bf, nf2)
	for _, span := range [][2]float64{{-o.D / 2.0, -o.dw / 2.0}, {o.dw / 2.0, o.D / 2.0}} {
		if o.pattern == nil {
			err := e.QuadPatch(o.matFlange[0], nf2, nfF, quad(span[0], span[1], -o.Bf/2.0, o.Bf/2.0))
			if err != nil {
				return err
			}
			continue
		}
		// one pair of mirrored patches per stress level
		n := len(o.pattern.Levels)
		w := o.Bf / (2.0 * float64(n))
		nfz := nsub(w, o.Bf, nf2)
		for i := 0; i < n; i++ {
			zo := o.Bf/2.0 - float64(i)*w
			zi := zo - w
			err := e.QuadPatch(o.matFlange[i], nfz, nfF, quad(span[0], span[1], zi, zo))
			if err != nil {
				return err
			}
			if err = e.QuadPatch(o.matFlange[i], nfz, nfF, quad(span[0], span[1], -zo, -zi)); err != nil {
				return err
			}
		}
	}
	err := e.QuadPatch(o.matWeb, nfWz, nfW, quad(-o.dw/2.0, o.dw/2.0, -o.Tw/2.0, o.Tw/2.0))
	if err != nil {
		return err
	}
	return o.filletFibers(e, ThreeD{})
}

// filletFibers injects the point fibers correcting the flange/web
// junction when the fillet dimension exceeds the flange thickness. The
// spandrel between the quarter-circle fillet and its corner has area
// r²·(1-π/4) with centroid 2r/(12-3π) from the fillet arc center toward
// the corner, along both axes.
func (o *WF) filletFibers(e Emitter, b Bending) error {
	if o.Fillet <= o.Tf {
		return nil
	}
	r := o.Fillet - o.Tf
	asp := r * r * (1.0 - math.Pi/4.0)
	c := 2.0 * r / (12.0 - 3.0*math.Pi)
	yc := o.dw/2.0 - r + c
	zc := o.Tw/2.0 + r - c
	switch b.(type) {
	case Strong:
		if err := e.Fiber(yc, 0, 2.0*asp, o.matWeb); err != nil {
			return err
		}
		return e.Fiber(-yc, 0, 2.0*asp, o.matWeb)
	case Weak:
		if err := e.Fiber(zc, 0, 2.0*asp, o.matWeb); err != nil {
			return err
		}
		return e.Fiber(-zc, 0, 2.0*asp, o.matWeb)
	}
	for _, s := range [][2]float64{{yc, zc}, {yc, -zc}, {-yc, zc}, {-yc, -zc}} {
		if err := e.Fiber(s[0], s[1], asp, o.matWeb); err != nil {
			return err
		}
	}
	return nil
}

// Generate runs the full pipeline: validate, resolve, compute GJ, then
// define materials and emit fibers atomically.
func (o *WF) Generate(e Emitter, ids *IDSeq, b Bending) error {
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

// quad builds the corner list of an axis-aligned rectangle
func quad(y1, y2, z1, z2 float64) [4][2]float64 {
	return [4][2]float64{{y1, z1}, {y1, z2}, {y2, z2}, {y2, z1}}
}
