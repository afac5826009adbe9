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
	"github.com/cpmech/gosl/fun/dbf"
)

// rcftKappa is the fraction of the tube yield force assumed to act as
// lateral confining pressure on the core of a rectangular filled tube
const rcftKappa = 0.05

// CCFT generates a circular concrete-filled steel tube.
//
// Material ids, starting from the sequence value N:
//
//	N = tube steel, N+1 = core concrete [, N+2 = added elastic]
type CCFT struct {
	ID    int
	Mode  OutputMode
	Units unit.System

	// dimensions
	D float64 // outer diameter
	T float64 // wall thickness

	// material properties
	Fy   float64
	Fu   float64 // zero resolves to the default fit
	Es   float64 // zero resolves to the nominal value
	Fc   float64
	EpsC float64 // unconfined peak strain; zero resolves to 0.002

	// options
	SteelType MatKind // zero resolves to SteelTube
	ConcType  MatKind // zero resolves to ConcreteCFT
	AE        AddedElastic
	GJ        GJOption

	// derived
	fcc      float64
	degr     *msteel.Degradation
	matSteel int
	matConc  int
	matAE    int
}

// Validate checks dimensions, material properties, and options
func (o *CCFT) Validate(b Bending) error {
	if err := checkBending(b); err != nil {
		return err
	}
	if o.D <= 0 || o.T <= 0 || o.T >= o.D/2.0 {
		return chk.Err("sec: CCFT: tube dimensions must satisfy 0 < t < D/2. D=%g, t=%g is invalid", o.D, o.T)
	}
	if !o.Units.Valid() {
		return chk.Err("sec: CCFT: unit system %v is incorrect", o.Units)
	}
	switch o.SteelType {
	case 0, Elastic, ElasticPP, Bilinear, MultiSurface, SteelTube:
	default:
		return chk.Err("sec: CCFT: material type %v cannot represent tube steel", o.SteelType)
	}
	switch o.ConcType {
	case 0, Elastic, ConcreteCFT:
	default:
		return chk.Err("sec: CCFT: material type %v cannot represent core concrete", o.ConcType)
	}
	if o.SteelType != Elastic && o.Fy <= 0 {
		return chk.Err("sec: CCFT: yield stress must be positive. Fy=%g is invalid", o.Fy)
	}
	if o.Fc <= 0 {
		return chk.Err("sec: CCFT: concrete strength must be positive. fc=%g is invalid", o.Fc)
	}
	return o.AE.check(b)
}

func (o *CCFT) resolve() (err error) {
	if o.Mode == 0 {
		o.Mode = Full
	}
	if o.SteelType == 0 {
		o.SteelType = SteelTube
	}
	if o.ConcType == 0 {
		o.ConcType = ConcreteCFT
	}
	if o.EpsC == 0 {
		o.EpsC = defaultEc
	}
	if o.Es == 0 {
		if o.Es, err = msteel.DefaultEs(o.Units); err != nil {
			return
		}
	}
	if o.Fu == 0 && (o.SteelType == MultiSurface || o.SteelType == SteelTube) {
		if o.Fu, err = msteel.DefaultFu(o.Fy, o.Units); err != nil {
			return
		}
	}
	if o.SteelType == SteelTube {
		d, err := msteel.RoundTubeBuckling(o.D/o.T, o.Fy, o.Es)
		if err != nil {
			return err
		}
		o.degr = &d
	}
	return
}

func (o *CCFT) scalars(b Bending) (gj float64, err error) {
	dc := o.D - 2.0*o.T
	gjs := Gsteel(o.Es) * geom.JRoundTube(o.D/2.0, dc/2.0)
	gjc := Gconcrete(EcConcrete(o.Fc, o.Units)) * geom.JRoundTube(dc/2.0, 0)
	g := o.GJ.resolve()
	switch g.Mode {
	case GJNumeric:
		gj = g.Value
	case GJCalc:
		gj = math.Max(gjs, gjc)
	case GJSteelOnly:
		gj = gjs
	case GJConcreteOnly:
		gj = gjc
	default:
		return 0, chk.Err("sec: CCFT: GJ mode %v is incorrect", g.Mode)
	}
	if o.AE.Use && !twoD(b) {
		gj += o.AE.GJ
	}
	return
}

func (o *CCFT) materials(e Emitter, ids *IDSeq) error {
	o.matSteel = ids.Next()
	prms, err := steelPrms(o.SteelType, o.Fy, o.Fu, o.Es, 0, 0, o.Units, o.degr)
	if err != nil {
		return err
	}
	if err = e.Material(Material{ID: o.matSteel, Kind: o.SteelType, Prms: prms}); err != nil {
		return err
	}

	o.matConc = ids.Next()
	prms, err = o.concrete()
	if err != nil {
		return err
	}
	if err = e.Material(Material{ID: o.matConc, Kind: o.ConcType, Prms: prms}); err != nil {
		return err
	}

	if o.AE.Use {
		o.matAE = ids.Next()
		return addedElasticMaterial(e, o.matAE)
	}
	return nil
}

// concrete builds the core parameter record. The confined strength of a
// circular filled tube comes from the hoop-tension fit rather than the
// generic confinement model; the record carries it directly.
func (o *CCFT) concrete() (prms dbf.Params, err error) {
	if o.ConcType == Elastic {
		return concretePrms(Elastic, o.Fc, o.EpsC, 0, 0, o.Units)
	}
	fcc, _, err := msteel.SakinoFcc(o.Fc, o.Fy, o.D, o.T, o.Units)
	if err != nil {
		return nil, err
	}
	o.fcc = fcc
	prms, err = concretePrms(o.ConcType, o.Fc, o.EpsC, 0, 0, o.Units)
	if err != nil {
		return nil, err
	}
	// override the unconfined pair from the symmetric model
	for _, p := range prms {
		switch p.N {
		case "fcc":
			p.V = fcc
		case "ecc":
			p.V = o.EpsC * (1.0 + 5.0*(fcc/o.Fc-1.0))
		}
	}
	return prms, nil
}

func (o *CCFT) fibers(e Emitter, b Bending) (err error) {
	dc := o.D - 2.0*o.T
	switch v := b.(type) {
	case Strong, Weak:
		nf := 0
		if s, ok := v.(Strong); ok {
			nf = s.Nf
		} else {
			nf = v.(Weak).Nf
		}
		if err = roundTubeFibers2d(e, o.D, o.T, nf, o.matSteel); err != nil {
			return
		}
		nc := halfCount(nsub(dc, o.D, nf))
		for _, side := range []geom.Side{geom.Top, geom.Bottom} {
			var core []geom.Fiber
			if core, err = geom.HalfTubePatch2d(nc, 0, side, dc, dc/2.0); err != nil {
				return
			}
			for _, f := range core {
				if err = e.Fiber(f.Y, f.Z, f.A, o.matConc); err != nil {
					return
				}
			}
		}
	case ThreeD:
		nr := nsub(2.0*o.T, o.D, v.Nf1)
		if err = e.CircPatch(o.matSteel, v.Nf2, nr, 0, 0, dc/2.0, o.D/2.0, 0, 360); err != nil {
			return
		}
		nrc := halfCount(nsub(dc, o.D, v.Nf1))
		if err = e.CircPatch(o.matConc, v.Nf2, nrc, 0, 0, 0, dc/2.0, 0, 360); err != nil {
			return
		}
	}
	if o.AE.Use {
		return addedElasticFibers(e, o.matAE, b, o.AE)
	}
	return
}

// Generate runs the full pipeline for this shape
func (o *CCFT) Generate(e Emitter, ids *IDSeq, b Bending) error {
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

// RCFT generates a rectangular concrete-filled steel tube. The tube
// follows the cold-formed geometry of RectHSS (outer corner radius 2t,
// inner radius t); the core concrete is confined by the biaxial pressure
// of the restrained walls.
//
// Material ids, starting from the sequence value N:
//
//	N = flat steel, N+1 = corner steel, N+2 = core concrete
//	[, N+3 = added elastic]
type RCFT struct {
	ID    int
	Mode  OutputMode
	Units unit.System

	// dimensions
	D float64 // outer depth (along y for strong-axis bending)
	B float64 // outer width
	T float64 // wall thickness

	// material properties
	Fy   float64
	Fu   float64 // zero resolves to the default fit
	Es   float64 // zero resolves to the nominal value
	Fc   float64
	EpsC float64 // unconfined peak strain; zero resolves to 0.002

	// options
	SteelType MatKind // zero resolves to SteelTube
	ConcType  MatKind // zero resolves to ConcreteCFT
	AE        AddedElastic
	GJ        GJOption

	// derived
	fyc       float64
	degr      *msteel.Degradation
	matFlat   int
	matCorner int
	matConc   int
	matAE     int
}

// Validate checks dimensions, material properties, and options
func (o *RCFT) Validate(b Bending) error {
	if err := checkBending(b); err != nil {
		return err
	}
	if o.D <= 0 || o.B <= 0 || o.T <= 0 {
		return chk.Err("sec: RCFT: dimensions must be positive. D=%g, B=%g, t=%g is invalid", o.D, o.B, o.T)
	}
	if o.T > math.Min(o.D, o.B)/4.0 {
		return chk.Err("sec: RCFT: wall thickness must not exceed a quarter of the smaller side (flats vanish). D=%g, B=%g, t=%g is invalid", o.D, o.B, o.T)
	}
	if !o.Units.Valid() {
		return chk.Err("sec: RCFT: unit system %v is incorrect", o.Units)
	}
	switch o.SteelType {
	case 0, Elastic, ElasticPP, Bilinear, MultiSurface, SteelTube:
	default:
		return chk.Err("sec: RCFT: material type %v cannot represent tube steel", o.SteelType)
	}
	switch o.ConcType {
	case 0, Elastic, ConcreteCFT:
	default:
		return chk.Err("sec: RCFT: material type %v cannot represent core concrete", o.ConcType)
	}
	if o.SteelType != Elastic && o.Fy <= 0 {
		return chk.Err("sec: RCFT: yield stress must be positive. Fy=%g is invalid", o.Fy)
	}
	if o.Fc <= 0 {
		return chk.Err("sec: RCFT: concrete strength must be positive. fc=%g is invalid", o.Fc)
	}
	return o.AE.check(b)
}

func (o *RCFT) resolve() (err error) {
	if o.Mode == 0 {
		o.Mode = Full
	}
	if o.SteelType == 0 {
		o.SteelType = SteelTube
	}
	if o.ConcType == 0 {
		o.ConcType = ConcreteCFT
	}
	if o.EpsC == 0 {
		o.EpsC = defaultEc
	}
	if o.Es == 0 {
		if o.Es, err = msteel.DefaultEs(o.Units); err != nil {
			return
		}
	}
	if o.Fu == 0 && o.SteelType != Elastic {
		if o.Fu, err = msteel.DefaultFu(o.Fy, o.Units); err != nil {
			return
		}
	}
	if o.SteelType == Elastic {
		o.fyc = 0
	} else {
		if o.fyc, err = msteel.CornerFy(o.Fy, o.Fu, 1.0); err != nil {
			return
		}
	}
	if o.SteelType == SteelTube {
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

func (o *RCFT) scalars(b Bending) (gj float64, err error) {
	dc := o.D - 2.0*o.T
	bc := o.B - 2.0*o.T
	gjs := Gsteel(o.Es) * geom.JRectTube(o.D-o.T, o.B-o.T, o.T)
	gjc := Gconcrete(EcConcrete(o.Fc, o.Units)) * geom.JRectSolid(dc, bc)
	g := o.GJ.resolve()
	switch g.Mode {
	case GJNumeric:
		gj = g.Value
	case GJCalc:
		gj = math.Max(gjs, gjc)
	case GJSteelOnly:
		gj = gjs
	case GJConcreteOnly:
		gj = gjc
	default:
		return 0, chk.Err("sec: RCFT: GJ mode %v is incorrect", g.Mode)
	}
	if o.AE.Use && !twoD(b) {
		gj += o.AE.GJ
	}
	return
}

func (o *RCFT) materials(e Emitter, ids *IDSeq) error {
	o.matFlat = ids.Next()
	prms, err := steelPrms(o.SteelType, o.Fy, o.Fu, o.Es, 0, 0, o.Units, o.degr)
	if err != nil {
		return err
	}
	if err = e.Material(Material{ID: o.matFlat, Kind: o.SteelType, Prms: prms}); err != nil {
		return err
	}

	o.matCorner = ids.Next()
	prms, err = steelPrms(o.SteelType, o.fyc, o.Fu, o.Es, 0, 0, o.Units, o.degr)
	if err != nil {
		return err
	}
	if err = e.Material(Material{ID: o.matCorner, Kind: o.SteelType, Prms: prms}); err != nil {
		return err
	}

	o.matConc = ids.Next()
	dc := o.D - 2.0*o.T
	bc := o.B - 2.0*o.T
	var fl1, fl2 float64
	if o.ConcType != Elastic && o.SteelType != Elastic {
		// wall-tension pressures on the two core directions, ordered
		fl1 = rcftKappa * 2.0 * o.T * o.Fy / dc
		fl2 = rcftKappa * 2.0 * o.T * o.Fy / bc
		if fl2 < fl1 {
			fl1, fl2 = fl2, fl1
		}
	}
	prms, err = concretePrms(o.ConcType, o.Fc, o.EpsC, fl1, fl2, o.Units)
	if err != nil {
		return err
	}
	if err = e.Material(Material{ID: o.matConc, Kind: o.ConcType, Prms: prms}); err != nil {
		return err
	}

	if o.AE.Use {
		o.matAE = ids.Next()
		return addedElasticMaterial(e, o.matAE)
	}
	return nil
}

func (o *RCFT) fibers(e Emitter, b Bending) (err error) {
	switch v := b.(type) {
	case Strong:
		if err = rectTubeFibers2d(e, o.D, o.B, o.T, v.Nf, o.matFlat, o.matCorner); err != nil {
			return
		}
		err = o.coreFibers2d(e, o.D, o.B, v.Nf)
	case Weak:
		if err = rectTubeFibers2d(e, o.B, o.D, o.T, v.Nf, o.matFlat, o.matCorner); err != nil {
			return
		}
		err = o.coreFibers2d(e, o.B, o.D, v.Nf)
	case ThreeD:
		if err = rectTubeFibers3d(e, o.D, o.B, o.T, v.Nf1, v.Nf2, o.matFlat, o.matCorner); err != nil {
			return
		}
		err = o.coreFibers3d(e, v.Nf1, v.Nf2)
	}
	if err != nil {
		return
	}
	if o.AE.Use {
		return addedElasticFibers(e, o.matAE, b, o.AE)
	}
	return
}

// coreFibers2d emits the rounded-corner core: a middle band at full core
// width, two cap bands clear of the corner rounds, and the four corner
// quarter disks (radius t) paired into two exact half disks
func (o *RCFT) coreFibers2d(e Emitter, depth, width float64, nf int) error {
	ri := o.T
	dc := depth - 2.0*o.T
	bc := width - 2.0*o.T
	yc := dc/2.0 - ri

	nfMid := nsub(dc-2.0*ri, depth, nf)
	for _, f := range geom.RectPatch2d(nfMid, bc, -yc, yc) {
		if err := e.Fiber(f.Y, f.Z, f.A, o.matConc); err != nil {
			return err
		}
	}

	nfCap := nsub(ri, depth, nf)
	for _, span := range [][2]float64{{yc, dc / 2.0}, {-dc / 2.0, -yc}} {
		for _, f := range geom.RectPatch2d(nfCap, bc-2.0*ri, span[0], span[1]) {
			if err := e.Fiber(f.Y, f.Z, f.A, o.matConc); err != nil {
				return err
			}
		}
	}

	for i, side := range []geom.Side{geom.Top, geom.Bottom} {
		center := yc
		if i == 1 {
			center = -yc
		}
		fibers, err := geom.HalfTubePatch2d(nfCap, center, side, 2.0*ri, ri)
		if err != nil {
			return err
		}
		for _, f := range fibers {
			if err = e.Fiber(f.Y, f.Z, f.A, o.matConc); err != nil {
				return err
			}
		}
	}
	return nil
}

// coreFibers3d uses the same decomposition with quadrilateral and
// quarter-disk circular patches
func (o *RCFT) coreFibers3d(e Emitter, nf1, nf2 int) error {
	ri := o.T
	dc := o.D - 2.0*o.T
	bc := o.B - 2.0*o.T
	yc := dc/2.0 - ri
	zc := bc/2.0 - ri

	nfMid := nsub(dc-2.0*ri, o.D, nf1)
	nfMidZ := nsub(bc, o.B, nf2)
	if err := e.QuadPatch(o.matConc, nfMidZ, nfMid, quad(-yc, yc, -bc/2.0, bc/2.0)); err != nil {
		return err
	}

	nfCap := nsub(ri, o.D, nf1)
	nfCapZ := nsub(bc-2.0*ri, o.B, nf2)
	for _, span := range [][2]float64{{yc, dc / 2.0}, {-dc / 2.0, -yc}} {
		if err := e.QuadPatch(o.matConc, nfCapZ, nfCap, quad(span[0], span[1], -zc, zc)); err != nil {
			return err
		}
	}

	nc := nfCap
	if nc < 2 {
		nc = 2
	}
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
		if err := e.CircPatch(o.matConc, nc, nfCap, c.y, c.z, 0, ri, c.a0, c.a1); err != nil {
			return err
		}
	}
	return nil
}

// Generate runs the full pipeline for this shape
func (o *RCFT) Generate(e Emitter, ids *IDSeq, b Bending) error {
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
