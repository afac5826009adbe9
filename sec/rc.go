// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec

import (
	"math"

	"github.com/cpmech/fibsec/geom"
	"github.com/cpmech/fibsec/mconc"
	"github.com/cpmech/fibsec/msteel"
	"github.com/cpmech/fibsec/unit"
	"github.com/cpmech/gosl/chk"
)

// RCRect generates a rectangular reinforced concrete section: unconfined
// cover, confined core, and longitudinal bars. Bars are point fibers; a
// matching negative-area core fiber removes the concrete they displace.
//
// Material ids, starting from the sequence value N:
//
//	N = cover concrete, N+1 = core concrete, N+2 = rebar
//	[, N+3 = added elastic]
type RCRect struct {
	ID    int
	Mode  OutputMode
	Units unit.System

	// dimensions
	H     float64 // gross depth (along y for strong-axis bending)
	B     float64 // gross width
	Cover float64 // cover to the centerline of the perimeter hoop

	// concrete
	Fc   float64
	EpsC float64 // unconfined peak strain; zero resolves to 0.002

	// reinforcement
	Fyr     float64
	Fur     float64      // zero resolves to the default fit
	Esr     float64      // zero resolves to the nominal value
	BarArea float64      // area of one longitudinal bar
	BarDia  float64      // diameter of one longitudinal bar
	NBarsB  int          // bars along each face of width B, corners included
	NBarsH  int          // bars along each face of depth H, corners included
	Layout  mconc.Layout // zero resolves to CornerOnly

	// transverse reinforcement
	TieArea float64
	TieDia  float64
	TieS    float64 // tie spacing along the member
	TieFy   float64
	NLegsY  int // tie legs resisting core expansion along y; zero resolves to 2
	NLegsZ  int // tie legs resisting core expansion along z; zero resolves to 2

	// options
	ConcType MatKind // zero resolves to ConcreteRC
	BarType  MatKind // zero resolves to ElasticPP
	AE       AddedElastic
	GJ       GJOption

	// derived
	matCover int
	matCore  int
	matBar   int
	matAE    int
}

// Validate checks dimensions, material properties, and options
func (o *RCRect) Validate(b Bending) error {
	if err := checkBending(b); err != nil {
		return err
	}
	if o.H <= 0 || o.B <= 0 {
		return chk.Err("sec: RCRect: dimensions must be positive. H=%g, B=%g is invalid", o.H, o.B)
	}
	if o.Cover <= 0 || 2.0*o.Cover >= math.Min(o.H, o.B) {
		return chk.Err("sec: RCRect: cover must satisfy 0 < 2c < min(B,H). c=%g is invalid", o.Cover)
	}
	if !o.Units.Valid() {
		return chk.Err("sec: RCRect: unit system %v is incorrect", o.Units)
	}
	if o.Fc <= 0 {
		return chk.Err("sec: RCRect: concrete strength must be positive. fc=%g is invalid", o.Fc)
	}
	switch o.ConcType {
	case 0, Elastic, ConcreteRC:
	default:
		return chk.Err("sec: RCRect: material type %v cannot represent reinforced concrete", o.ConcType)
	}
	switch o.BarType {
	case 0, Elastic, ElasticPP, Bilinear, MultiSurface:
	default:
		return chk.Err("sec: RCRect: material type %v cannot represent rebar", o.BarType)
	}
	if o.BarArea <= 0 || o.BarDia <= 0 {
		return chk.Err("sec: RCRect: bar area and diameter must be positive. Ab=%g, db=%g is invalid", o.BarArea, o.BarDia)
	}
	if o.BarType != Elastic && o.Fyr <= 0 {
		return chk.Err("sec: RCRect: rebar yield stress must be positive. Fyr=%g is invalid", o.Fyr)
	}
	if o.ConcType != Elastic {
		if o.TieArea <= 0 || o.TieDia <= 0 || o.TieS <= 0 || o.TieFy <= 0 {
			return chk.Err("sec: RCRect: confined core needs tie area, diameter, spacing, and strength. Ash=%g, dsh=%g, s=%g, fysh=%g is invalid",
				o.TieArea, o.TieDia, o.TieS, o.TieFy)
		}
	}
	if g := o.GJ.resolve(); g.Mode == GJSteelOnly {
		return chk.Err("sec: RCRect: GJ mode steelonly does not apply to a reinforced concrete shape")
	}
	return o.AE.check(b)
}

func (o *RCRect) resolve() (err error) {
	if o.Mode == 0 {
		o.Mode = Full
	}
	if o.ConcType == 0 {
		o.ConcType = ConcreteRC
	}
	if o.BarType == 0 {
		o.BarType = ElasticPP
	}
	if o.Layout == 0 {
		o.Layout = mconc.CornerOnly
	}
	if o.EpsC == 0 {
		o.EpsC = defaultEc
	}
	if o.NLegsY == 0 {
		o.NLegsY = 2
	}
	if o.NLegsZ == 0 {
		o.NLegsZ = 2
	}
	if o.Esr == 0 {
		if o.Esr, err = msteel.DefaultEs(o.Units); err != nil {
			return
		}
	}
	if o.Fur == 0 && o.BarType == MultiSurface {
		if o.Fur, err = msteel.DefaultFu(o.Fyr, o.Units); err != nil {
			return
		}
	}
	return
}

func (o *RCRect) scalars(b Bending) (gj float64, err error) {
	g := o.GJ.resolve()
	switch g.Mode {
	case GJNumeric:
		gj = g.Value
	case GJCalc, GJConcreteOnly:
		gj = Gconcrete(EcConcrete(o.Fc, o.Units)) * geom.JRectSolid(o.H, o.B)
	default:
		return 0, chk.Err("sec: RCRect: GJ mode %v is incorrect", g.Mode)
	}
	if o.AE.Use && !twoD(b) {
		gj += o.AE.GJ
	}
	return
}

// corePressures returns the ordered effective lateral pressures on the core
func (o *RCRect) corePressures() (fl1, fl2 float64, err error) {
	hc := o.H - 2.0*o.Cover
	bc := o.B - 2.0*o.Cover
	ke, err := mconc.KeRect(bc, hc, o.TieS-o.TieDia, o.Layout, o.NBarsB, o.NBarsH, o.BarDia)
	if err != nil {
		return 0, 0, err
	}
	fl1 = ke * float64(o.NLegsY) * o.TieArea * o.TieFy / (o.TieS * bc)
	fl2 = ke * float64(o.NLegsZ) * o.TieArea * o.TieFy / (o.TieS * hc)
	if fl2 < fl1 {
		fl1, fl2 = fl2, fl1
	}
	return
}

func (o *RCRect) materials(e Emitter, ids *IDSeq) error {
	o.matCover = ids.Next()
	prms, err := concretePrms(o.ConcType, o.Fc, o.EpsC, 0, 0, o.Units)
	if err != nil {
		return err
	}
	if err = e.Material(Material{ID: o.matCover, Kind: o.ConcType, Prms: prms}); err != nil {
		return err
	}

	o.matCore = ids.Next()
	var fl1, fl2 float64
	if o.ConcType != Elastic {
		if fl1, fl2, err = o.corePressures(); err != nil {
			return err
		}
	}
	prms, err = concretePrms(o.ConcType, o.Fc, o.EpsC, fl1, fl2, o.Units)
	if err != nil {
		return err
	}
	if err = e.Material(Material{ID: o.matCore, Kind: o.ConcType, Prms: prms}); err != nil {
		return err
	}

	o.matBar = ids.Next()
	prms, err = steelPrms(o.BarType, o.Fyr, o.Fur, o.Esr, 0, 0, o.Units, nil)
	if err != nil {
		return err
	}
	if err = e.Material(Material{ID: o.matBar, Kind: o.BarType, Prms: prms}); err != nil {
		return err
	}

	if o.AE.Use {
		o.matAE = ids.Next()
		return addedElasticMaterial(e, o.matAE)
	}
	return nil
}

// barPositions returns the (y, z) bar centers, corner bars once each
func (o *RCRect) barPositions() [][2]float64 {
	hc := o.H - 2.0*o.Cover
	bc := o.B - 2.0*o.Cover
	yb := hc/2.0 - (o.TieDia+o.BarDia)/2.0
	zb := bc/2.0 - (o.TieDia+o.BarDia)/2.0
	return rectBarPositions(yb, zb, o.NBarsB, o.NBarsH, o.Layout)
}

func (o *RCRect) fibers(e Emitter, b Bending) (err error) {
	switch v := b.(type) {
	case Strong:
		if err = coverAndCore2d(e, o.H, o.B, o.Cover, v.Nf, o.matCover, o.matCore); err != nil {
			return
		}
		err = emitBars(e, o.barPositions(), 0, twoDFlag, o.BarArea, o.matBar, o.matCore)
	case Weak:
		if err = coverAndCore2d(e, o.B, o.H, o.Cover, v.Nf, o.matCover, o.matCore); err != nil {
			return
		}
		err = emitBars(e, o.barPositions(), 1, twoDFlag, o.BarArea, o.matBar, o.matCore)
	case ThreeD:
		if err = coverAndCore3d(e, o.H, o.B, o.Cover, v.Nf1, v.Nf2, o.matCover, o.matCore); err != nil {
			return
		}
		err = emitBars(e, o.barPositions(), 0, threeDFlag, o.BarArea, o.matBar, o.matCore)
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
func (o *RCRect) Generate(e Emitter, ids *IDSeq, b Bending) error {
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

// RCCirc generates a circular reinforced concrete section with a
// spiral- or hoop-confined core and a ring of longitudinal bars.
//
// Material ids, starting from the sequence value N:
//
//	N = cover concrete, N+1 = core concrete, N+2 = rebar
//	[, N+3 = added elastic]
type RCCirc struct {
	ID    int
	Mode  OutputMode
	Units unit.System

	// dimensions
	D     float64 // gross diameter
	Cover float64 // cover to the centerline of the spiral or hoop

	// concrete
	Fc   float64
	EpsC float64 // unconfined peak strain; zero resolves to 0.002

	// reinforcement
	Fyr     float64
	Fur     float64 // zero resolves to the default fit
	Esr     float64 // zero resolves to the nominal value
	BarArea float64
	BarDia  float64
	NBars   int

	// transverse reinforcement
	Spiral  bool // continuous spiral rather than discrete hoops
	TieArea float64
	TieDia  float64
	TieS    float64 // spiral pitch or hoop spacing
	TieFy   float64

	// options
	ConcType MatKind // zero resolves to ConcreteRC
	BarType  MatKind // zero resolves to ElasticPP
	AE       AddedElastic
	GJ       GJOption

	// derived
	matCover int
	matCore  int
	matBar   int
	matAE    int
}

// Validate checks dimensions, material properties, and options
func (o *RCCirc) Validate(b Bending) error {
	if err := checkBending(b); err != nil {
		return err
	}
	if o.D <= 0 || o.Cover <= 0 || 2.0*o.Cover >= o.D {
		return chk.Err("sec: RCCirc: cover must satisfy 0 < 2c < D. D=%g, c=%g is invalid", o.D, o.Cover)
	}
	if !o.Units.Valid() {
		return chk.Err("sec: RCCirc: unit system %v is incorrect", o.Units)
	}
	if o.Fc <= 0 {
		return chk.Err("sec: RCCirc: concrete strength must be positive. fc=%g is invalid", o.Fc)
	}
	switch o.ConcType {
	case 0, Elastic, ConcreteRC:
	default:
		return chk.Err("sec: RCCirc: material type %v cannot represent reinforced concrete", o.ConcType)
	}
	switch o.BarType {
	case 0, Elastic, ElasticPP, Bilinear, MultiSurface:
	default:
		return chk.Err("sec: RCCirc: material type %v cannot represent rebar", o.BarType)
	}
	if o.BarArea <= 0 || o.BarDia <= 0 || o.NBars < 4 {
		return chk.Err("sec: RCCirc: bar ring needs positive area and diameter and at least 4 bars. Ab=%g, db=%g, n=%d is invalid",
			o.BarArea, o.BarDia, o.NBars)
	}
	if o.BarType != Elastic && o.Fyr <= 0 {
		return chk.Err("sec: RCCirc: rebar yield stress must be positive. Fyr=%g is invalid", o.Fyr)
	}
	if o.ConcType != Elastic {
		if o.TieArea <= 0 || o.TieDia <= 0 || o.TieS <= 0 || o.TieFy <= 0 {
			return chk.Err("sec: RCCirc: confined core needs spiral area, diameter, pitch, and strength. Asp=%g, dsp=%g, s=%g, fysp=%g is invalid",
				o.TieArea, o.TieDia, o.TieS, o.TieFy)
		}
	}
	if g := o.GJ.resolve(); g.Mode == GJSteelOnly {
		return chk.Err("sec: RCCirc: GJ mode steelonly does not apply to a reinforced concrete shape")
	}
	return o.AE.check(b)
}

func (o *RCCirc) resolve() (err error) {
	if o.Mode == 0 {
		o.Mode = Full
	}
	if o.ConcType == 0 {
		o.ConcType = ConcreteRC
	}
	if o.BarType == 0 {
		o.BarType = ElasticPP
	}
	if o.EpsC == 0 {
		o.EpsC = defaultEc
	}
	if o.Esr == 0 {
		if o.Esr, err = msteel.DefaultEs(o.Units); err != nil {
			return
		}
	}
	if o.Fur == 0 && o.BarType == MultiSurface {
		if o.Fur, err = msteel.DefaultFu(o.Fyr, o.Units); err != nil {
			return
		}
	}
	return
}

func (o *RCCirc) scalars(b Bending) (gj float64, err error) {
	g := o.GJ.resolve()
	switch g.Mode {
	case GJNumeric:
		gj = g.Value
	case GJCalc, GJConcreteOnly:
		gj = Gconcrete(EcConcrete(o.Fc, o.Units)) * geom.JRoundTube(o.D/2.0, 0)
	default:
		return 0, chk.Err("sec: RCCirc: GJ mode %v is incorrect", g.Mode)
	}
	if o.AE.Use && !twoD(b) {
		gj += o.AE.GJ
	}
	return
}

func (o *RCCirc) materials(e Emitter, ids *IDSeq) error {
	o.matCover = ids.Next()
	prms, err := concretePrms(o.ConcType, o.Fc, o.EpsC, 0, 0, o.Units)
	if err != nil {
		return err
	}
	if err = e.Material(Material{ID: o.matCover, Kind: o.ConcType, Prms: prms}); err != nil {
		return err
	}

	o.matCore = ids.Next()
	var fl float64
	if o.ConcType != Elastic {
		ds := o.D - 2.0*o.Cover
		ke := mconc.KeCirc(ds, o.TieS-o.TieDia, o.Spiral)
		rhoS := 4.0 * o.TieArea / (ds * o.TieS)
		fl = ke * rhoS * o.TieFy / 2.0
	}
	prms, err = concretePrms(o.ConcType, o.Fc, o.EpsC, fl, fl, o.Units)
	if err != nil {
		return err
	}
	if err = e.Material(Material{ID: o.matCore, Kind: o.ConcType, Prms: prms}); err != nil {
		return err
	}

	o.matBar = ids.Next()
	prms, err = steelPrms(o.BarType, o.Fyr, o.Fur, o.Esr, 0, 0, o.Units, nil)
	if err != nil {
		return err
	}
	if err = e.Material(Material{ID: o.matBar, Kind: o.BarType, Prms: prms}); err != nil {
		return err
	}

	if o.AE.Use {
		o.matAE = ids.Next()
		return addedElasticMaterial(e, o.matAE)
	}
	return nil
}

// barPositions places the bar ring just inside the spiral
func (o *RCCirc) barPositions() [][2]float64 {
	ds := o.D - 2.0*o.Cover
	rb := ds/2.0 - (o.TieDia+o.BarDia)/2.0
	pos := make([][2]float64, o.NBars)
	for i := range pos {
		th := 2.0 * math.Pi * float64(i) / float64(o.NBars)
		pos[i] = [2]float64{rb * math.Cos(th), rb * math.Sin(th)}
	}
	return pos
}

func (o *RCCirc) fibers(e Emitter, b Bending) (err error) {
	ds := o.D - 2.0*o.Cover
	switch v := b.(type) {
	case Strong, Weak:
		nf := 0
		if s, ok := v.(Strong); ok {
			nf = s.Nf
		} else {
			nf = v.(Weak).Nf
		}
		if err = roundTubeFibers2d(e, o.D, o.Cover, nf, o.matCover); err != nil {
			return
		}
		nc := halfCount(nsub(ds, o.D, nf))
		for _, side := range []geom.Side{geom.Top, geom.Bottom} {
			var core []geom.Fiber
			if core, err = geom.HalfTubePatch2d(nc, 0, side, ds, ds/2.0); err != nil {
				return
			}
			for _, f := range core {
				if err = e.Fiber(f.Y, f.Z, f.A, o.matCore); err != nil {
					return
				}
			}
		}
		err = emitBars(e, o.barPositions(), 0, twoDFlag, o.BarArea, o.matBar, o.matCore)
	case ThreeD:
		nr := nsub(2.0*o.Cover, o.D, v.Nf1)
		if err = e.CircPatch(o.matCover, v.Nf2, nr, 0, 0, ds/2.0, o.D/2.0, 0, 360); err != nil {
			return
		}
		nrc := halfCount(nsub(ds, o.D, v.Nf1))
		if err = e.CircPatch(o.matCore, v.Nf2, nrc, 0, 0, 0, ds/2.0, 0, 360); err != nil {
			return
		}
		err = emitBars(e, o.barPositions(), 0, threeDFlag, o.BarArea, o.matBar, o.matCore)
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
func (o *RCCirc) Generate(e Emitter, ids *IDSeq, b Bending) error {
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

// bar emission dimensionality
const (
	twoDFlag   = 2
	threeDFlag = 3
)

// rectBarPositions returns the bar centers of a rectangular arrangement:
// the four corners, plus evenly spaced interior bars along each face for
// the Even layout. yb and zb are the corner-bar offsets from the centroid;
// nB bars sit along each face of the width direction and nH along each
// face of the depth direction, corners included in both counts.
func rectBarPositions(yb, zb float64, nB, nH int, layout mconc.Layout) [][2]float64 {
	pos := [][2]float64{{yb, zb}, {yb, -zb}, {-yb, zb}, {-yb, -zb}}
	if layout != mconc.Even {
		return pos
	}
	for i := 1; i < nB-1; i++ {
		z := -zb + 2.0*zb*float64(i)/float64(nB-1)
		pos = append(pos, [2]float64{yb, z}, [2]float64{-yb, z})
	}
	for i := 1; i < nH-1; i++ {
		y := -yb + 2.0*yb*float64(i)/float64(nH-1)
		pos = append(pos, [2]float64{y, zb}, [2]float64{y, -zb})
	}
	return pos
}

// emitBars places the bar point fibers and the negative-area carve fibers
// removing the displaced core concrete. axis selects the 2D bending
// coordinate: 0 keeps y, 1 projects z onto the bending plane.
func emitBars(e Emitter, pos [][2]float64, axis, dim int, area float64, matBar, matCarve int) error {
	for _, p := range pos {
		y, z := p[0], p[1]
		if dim == twoDFlag {
			y, z = p[axis], 0
		}
		if err := e.Fiber(y, z, area, matBar); err != nil {
			return err
		}
		if err := e.Fiber(y, z, -area, matCarve); err != nil {
			return err
		}
	}
	return nil
}

// coverAndCore2d emits the cover bands and the rectangular core for 2D
// bending about the axis perpendicular to depth
func coverAndCore2d(e Emitter, depth, width, cover float64, nf, matCover, matCore int) error {
	dc := depth - 2.0*cover
	wc := width - 2.0*cover

	nfCov := nsub(cover, depth, nf)
	for _, span := range [][2]float64{{dc / 2.0, depth / 2.0}, {-depth / 2.0, -dc / 2.0}} {
		for _, f := range geom.RectPatch2d(nfCov, width, span[0], span[1]) {
			if err := e.Fiber(f.Y, f.Z, f.A, matCover); err != nil {
				return err
			}
		}
	}

	nfCore := nsub(dc, depth, nf)
	for _, f := range geom.RectPatch2d(nfCore, 2.0*cover, -dc/2.0, dc/2.0) {
		if err := e.Fiber(f.Y, f.Z, f.A, matCover); err != nil {
			return err
		}
	}
	for _, f := range geom.RectPatch2d(nfCore, wc, -dc/2.0, dc/2.0) {
		if err := e.Fiber(f.Y, f.Z, f.A, matCore); err != nil {
			return err
		}
	}
	return nil
}

// coverAndCore3d is the quadrilateral-patch counterpart of coverAndCore2d
func coverAndCore3d(e Emitter, depth, width, cover float64, nf1, nf2, matCover, matCore int) error {
	dc := depth - 2.0*cover
	wc := width - 2.0*cover

	nfCov := nsub(cover, depth, nf1)
	nfCovZ := nsub(width, width, nf2)
	for _, span := range [][2]float64{{dc / 2.0, depth / 2.0}, {-depth / 2.0, -dc / 2.0}} {
		if err := e.QuadPatch(matCover, nfCovZ, nfCov, quad(span[0], span[1], -width/2.0, width/2.0)); err != nil {
			return err
		}
	}

	nfCore := nsub(dc, depth, nf1)
	nfSideZ := nsub(cover, width, nf2)
	for _, zs := range [][2]float64{{wc / 2.0, width / 2.0}, {-width / 2.0, -wc / 2.0}} {
		if err := e.QuadPatch(matCover, nfSideZ, nfCore, quad(-dc/2.0, dc/2.0, zs[0], zs[1])); err != nil {
			return err
		}
	}

	nfCoreZ := nsub(wc, width, nf2)
	return e.QuadPatch(matCore, nfCoreZ, nfCore, quad(-dc/2.0, dc/2.0, -wc/2.0, wc/2.0))
}
