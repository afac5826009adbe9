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

// SRC generates a steel-reinforced concrete section: a wide-flange shape
// encased in a rectangular concrete block with cover, confined core, and
// longitudinal bars. The concrete around the shape is emitted as bands
// fitted to the steel envelope, so no negative patches are needed; only
// the bars carve their displaced core concrete.
//
// Material ids, starting from the sequence value N:
//
//	N = shape steel, N+1 = cover concrete, N+2 = core concrete,
//	N+3 = rebar [, N+4 = added elastic]
type SRC struct {
	ID    int
	Mode  OutputMode
	Units unit.System

	// encasement dimensions
	H     float64 // gross depth (along y for strong-axis bending)
	B     float64 // gross width
	Cover float64 // cover to the centerline of the perimeter hoop

	// steel shape dimensions, strong axis aligned with the encasement
	D  float64 // shape depth
	Tw float64 // web thickness
	Bf float64 // flange width
	Tf float64 // flange thickness

	// steel shape
	Fy float64
	Fu float64 // zero resolves to the default fit
	Es float64 // zero resolves to the nominal value

	// concrete
	Fc   float64
	EpsC float64 // unconfined peak strain; zero resolves to 0.002

	// reinforcement
	Fyr     float64
	Fur     float64 // zero resolves to the default fit
	Esr     float64 // zero resolves to the nominal value
	BarArea float64
	BarDia  float64
	NBarsB  int
	NBarsH  int
	Layout  mconc.Layout // zero resolves to CornerOnly

	// transverse reinforcement
	TieArea float64
	TieDia  float64
	TieS    float64
	TieFy   float64
	NLegsY  int // zero resolves to 2
	NLegsZ  int // zero resolves to 2

	// options
	SteelType MatKind // zero resolves to ElasticPP
	ConcType  MatKind // zero resolves to ConcreteRC
	BarType   MatKind // zero resolves to ElasticPP
	AE        AddedElastic
	GJ        GJOption

	// derived
	dw       float64
	matSteel int
	matCover int
	matCore  int
	matBar   int
	matAE    int
}

// Validate checks dimensions, material properties, and options
func (o *SRC) Validate(b Bending) error {
	if err := checkBending(b); err != nil {
		return err
	}
	if o.H <= 0 || o.B <= 0 {
		return chk.Err("sec: SRC: encasement dimensions must be positive. H=%g, B=%g is invalid", o.H, o.B)
	}
	if o.Cover <= 0 || 2.0*o.Cover >= math.Min(o.H, o.B) {
		return chk.Err("sec: SRC: cover must satisfy 0 < 2c < min(B,H). c=%g is invalid", o.Cover)
	}
	if o.D <= 0 || o.Tw <= 0 || o.Bf <= 0 || o.Tf <= 0 {
		return chk.Err("sec: SRC: shape dimensions must be positive. D=%g, tw=%g, bf=%g, tf=%g is invalid", o.D, o.Tw, o.Bf, o.Tf)
	}
	if o.Tf >= o.D/2.0 {
		return chk.Err("sec: SRC: flanges must not meet. D=%g, tf=%g is invalid", o.D, o.Tf)
	}
	if o.Tw >= o.Bf {
		return chk.Err("sec: SRC: web must be thinner than the flange width. tw=%g, bf=%g is invalid", o.Tw, o.Bf)
	}
	hc := o.H - 2.0*o.Cover
	bc := o.B - 2.0*o.Cover
	if o.D >= hc || o.Bf >= bc {
		return chk.Err("sec: SRC: the shape must fit inside the core. D=%g, bf=%g, hc=%g, bc=%g is invalid", o.D, o.Bf, hc, bc)
	}
	if !o.Units.Valid() {
		return chk.Err("sec: SRC: unit system %v is incorrect", o.Units)
	}
	switch o.SteelType {
	case 0, Elastic, ElasticPP, Bilinear, MultiSurface:
	default:
		return chk.Err("sec: SRC: material type %v cannot represent shape steel", o.SteelType)
	}
	switch o.ConcType {
	case 0, Elastic, ConcreteRC:
	default:
		return chk.Err("sec: SRC: material type %v cannot represent reinforced concrete", o.ConcType)
	}
	switch o.BarType {
	case 0, Elastic, ElasticPP, Bilinear, MultiSurface:
	default:
		return chk.Err("sec: SRC: material type %v cannot represent rebar", o.BarType)
	}
	if o.SteelType != Elastic && o.Fy <= 0 {
		return chk.Err("sec: SRC: yield stress must be positive. Fy=%g is invalid", o.Fy)
	}
	if o.Fc <= 0 {
		return chk.Err("sec: SRC: concrete strength must be positive. fc=%g is invalid", o.Fc)
	}
	if o.BarArea <= 0 || o.BarDia <= 0 {
		return chk.Err("sec: SRC: bar area and diameter must be positive. Ab=%g, db=%g is invalid", o.BarArea, o.BarDia)
	}
	if o.BarType != Elastic && o.Fyr <= 0 {
		return chk.Err("sec: SRC: rebar yield stress must be positive. Fyr=%g is invalid", o.Fyr)
	}
	if o.ConcType != Elastic {
		if o.TieArea <= 0 || o.TieDia <= 0 || o.TieS <= 0 || o.TieFy <= 0 {
			return chk.Err("sec: SRC: confined core needs tie area, diameter, spacing, and strength. Ash=%g, dsh=%g, s=%g, fysh=%g is invalid",
				o.TieArea, o.TieDia, o.TieS, o.TieFy)
		}
	}
	return o.AE.check(b)
}

func (o *SRC) resolve() (err error) {
	if o.Mode == 0 {
		o.Mode = Full
	}
	if o.SteelType == 0 {
		o.SteelType = ElasticPP
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
	o.dw = o.D - 2.0*o.Tf
	if o.Es == 0 {
		if o.Es, err = msteel.DefaultEs(o.Units); err != nil {
			return
		}
	}
	if o.Fu == 0 && o.SteelType == MultiSurface {
		if o.Fu, err = msteel.DefaultFu(o.Fy, o.Units); err != nil {
			return
		}
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

func (o *SRC) scalars(b Bending) (gj float64, err error) {
	gjs := Gsteel(o.Es) * geom.JOpenWF(o.D, o.Tw, o.Bf, o.Tf)
	gjc := Gconcrete(EcConcrete(o.Fc, o.Units)) * geom.JRectSolid(o.H, o.B)
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
		return 0, chk.Err("sec: SRC: GJ mode %v is incorrect", g.Mode)
	}
	if o.AE.Use && !twoD(b) {
		gj += o.AE.GJ
	}
	return
}

func (o *SRC) corePressures() (fl1, fl2 float64, err error) {
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

func (o *SRC) materials(e Emitter, ids *IDSeq) error {
	o.matSteel = ids.Next()
	prms, err := steelPrms(o.SteelType, o.Fy, o.Fu, o.Es, 0, 0, o.Units, nil)
	if err != nil {
		return err
	}
	if err = e.Material(Material{ID: o.matSteel, Kind: o.SteelType, Prms: prms}); err != nil {
		return err
	}

	o.matCover = ids.Next()
	prms, err = concretePrms(o.ConcType, o.Fc, o.EpsC, 0, 0, o.Units)
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

func (o *SRC) barPositions() [][2]float64 {
	hc := o.H - 2.0*o.Cover
	bc := o.B - 2.0*o.Cover
	yb := hc/2.0 - (o.TieDia+o.BarDia)/2.0
	zb := bc/2.0 - (o.TieDia+o.BarDia)/2.0
	return rectBarPositions(yb, zb, o.NBarsB, o.NBarsH, o.Layout)
}

// fibersStrong emits the strong-axis 2D reduction: cover bands, steel
// shape strips, and core bands fitted around the steel envelope
func (o *SRC) fibersStrong(e Emitter, nf int) error {
	hc := o.H - 2.0*o.Cover
	bc := o.B - 2.0*o.Cover

	// cover
	nfCov := nsub(o.Cover, o.H, nf)
	for _, span := range [][2]float64{{hc / 2.0, o.H / 2.0}, {-o.H / 2.0, -hc / 2.0}} {
		for _, f := range geom.RectPatch2d(nfCov, o.B, span[0], span[1]) {
			if err := e.Fiber(f.Y, f.Z, f.A, o.matCover); err != nil {
				return err
			}
		}
	}
	nfSide := nsub(hc, o.H, nf)
	for _, f := range geom.RectPatch2d(nfSide, 2.0*o.Cover, -hc/2.0, hc/2.0) {
		if err := e.Fiber(f.Y, f.Z, f.A, o.matCover); err != nil {
			return err
		}
	}

	// steel shape
	nfF := nsub(o.Tf, o.H, nf)
	for _, span := range [][2]float64{{o.dw / 2.0, o.D / 2.0}, {-o.D / 2.0, -o.dw / 2.0}} {
		for _, f := range geom.RectPatch2d(nfF, o.Bf, span[0], span[1]) {
			if err := e.Fiber(f.Y, f.Z, f.A, o.matSteel); err != nil {
				return err
			}
		}
	}
	nfW := nsub(o.dw, o.H, nf)
	for _, f := range geom.RectPatch2d(nfW, o.Tw, -o.dw/2.0, o.dw/2.0) {
		if err := e.Fiber(f.Y, f.Z, f.A, o.matSteel); err != nil {
			return err
		}
	}

	// core bands around the steel envelope
	nfAbove := nsub((hc-o.D)/2.0, o.H, nf)
	for _, span := range [][2]float64{{o.D / 2.0, hc / 2.0}, {-hc / 2.0, -o.D / 2.0}} {
		for _, f := range geom.RectPatch2d(nfAbove, bc, span[0], span[1]) {
			if err := e.Fiber(f.Y, f.Z, f.A, o.matCore); err != nil {
				return err
			}
		}
	}
	for _, span := range [][2]float64{{o.dw / 2.0, o.D / 2.0}, {-o.D / 2.0, -o.dw / 2.0}} {
		for _, f := range geom.RectPatch2d(nfF, bc-o.Bf, span[0], span[1]) {
			if err := e.Fiber(f.Y, f.Z, f.A, o.matCore); err != nil {
				return err
			}
		}
	}
	for _, f := range geom.RectPatch2d(nfW, bc-o.Tw, -o.dw/2.0, o.dw/2.0) {
		if err := e.Fiber(f.Y, f.Z, f.A, o.matCore); err != nil {
			return err
		}
	}

	return emitBars(e, o.barPositions(), 0, twoDFlag, o.BarArea, o.matBar, o.matCore)
}

// fibersWeak emits the weak-axis 2D reduction; the coordinate is z
func (o *SRC) fibersWeak(e Emitter, nf int) error {
	hc := o.H - 2.0*o.Cover
	bc := o.B - 2.0*o.Cover

	// cover
	nfCov := nsub(o.Cover, o.B, nf)
	for _, span := range [][2]float64{{bc / 2.0, o.B / 2.0}, {-o.B / 2.0, -bc / 2.0}} {
		for _, f := range geom.RectPatch2d(nfCov, o.H, span[0], span[1]) {
			if err := e.Fiber(f.Y, f.Z, f.A, o.matCover); err != nil {
				return err
			}
		}
	}
	nfSide := nsub(bc, o.B, nf)
	for _, f := range geom.RectPatch2d(nfSide, 2.0*o.Cover, -bc/2.0, bc/2.0) {
		if err := e.Fiber(f.Y, f.Z, f.A, o.matCover); err != nil {
			return err
		}
	}

	// steel shape
	nfF := nsub(o.Bf, o.B, nf)
	for _, f := range geom.RectPatch2d(nfF, 2.0*o.Tf, -o.Bf/2.0, o.Bf/2.0) {
		if err := e.Fiber(f.Y, f.Z, f.A, o.matSteel); err != nil {
			return err
		}
	}
	nfW := nsub(o.Tw, o.B, nf)
	for _, f := range geom.RectPatch2d(nfW, o.dw, -o.Tw/2.0, o.Tw/2.0) {
		if err := e.Fiber(f.Y, f.Z, f.A, o.matSteel); err != nil {
			return err
		}
	}

	// core bands around the steel envelope
	nfTip := nsub((bc-o.Bf)/2.0, o.B, nf)
	for _, span := range [][2]float64{{o.Bf / 2.0, bc / 2.0}, {-bc / 2.0, -o.Bf / 2.0}} {
		for _, f := range geom.RectPatch2d(nfTip, hc, span[0], span[1]) {
			if err := e.Fiber(f.Y, f.Z, f.A, o.matCore); err != nil {
				return err
			}
		}
	}
	nfFl := nsub((o.Bf-o.Tw)/2.0, o.B, nf)
	for _, span := range [][2]float64{{o.Tw / 2.0, o.Bf / 2.0}, {-o.Bf / 2.0, -o.Tw / 2.0}} {
		for _, f := range geom.RectPatch2d(nfFl, hc-2.0*o.Tf, span[0], span[1]) {
			if err := e.Fiber(f.Y, f.Z, f.A, o.matCore); err != nil {
				return err
			}
		}
	}
	for _, f := range geom.RectPatch2d(nfW, hc-o.D, -o.Tw/2.0, o.Tw/2.0) {
		if err := e.Fiber(f.Y, f.Z, f.A, o.matCore); err != nil {
			return err
		}
	}

	return emitBars(e, o.barPositions(), 1, twoDFlag, o.BarArea, o.matBar, o.matCore)
}

// fibers3d emits quadrilateral patches for the cover, the steel shape,
// and the core bands
func (o *SRC) fibers3d(e Emitter, nf1, nf2 int) error {
	hc := o.H - 2.0*o.Cover
	bc := o.B - 2.0*o.Cover

	// cover
	nfCov := nsub(o.Cover, o.H, nf1)
	for _, span := range [][2]float64{{hc / 2.0, o.H / 2.0}, {-o.H / 2.0, -hc / 2.0}} {
		if err := e.QuadPatch(o.matCover, nf2, nfCov, quad(span[0], span[1], -o.B/2.0, o.B/2.0)); err != nil {
			return err
		}
	}
	nfSide := nsub(hc, o.H, nf1)
	nfSideZ := nsub(o.Cover, o.B, nf2)
	for _, zs := range [][2]float64{{bc / 2.0, o.B / 2.0}, {-o.B / 2.0, -bc / 2.0}} {
		if err := e.QuadPatch(o.matCover, nfSideZ, nfSide, quad(-hc/2.0, hc/2.0, zs[0], zs[1])); err != nil {
			return err
		}
	}

	// steel shape
	nfF := nsub(o.Tf, o.H, nf1)
	nfFz := nsub(o.Bf, o.B, nf2)
	for _, span := range [][2]float64{{o.dw / 2.0, o.D / 2.0}, {-o.D / 2.0, -o.dw / 2.0}} {
		if err := e.QuadPatch(o.matSteel, nfFz, nfF, quad(span[0], span[1], -o.Bf/2.0, o.Bf/2.0)); err != nil {
			return err
		}
	}
	nfW := nsub(o.dw, o.H, nf1)
	nfWz := nsub(o.Tw, o.B, nf2)
	if err := e.QuadPatch(o.matSteel, nfWz, nfW, quad(-o.dw/2.0, o.dw/2.0, -o.Tw/2.0, o.Tw/2.0)); err != nil {
		return err
	}

	// core bands around the steel envelope
	nfAbove := nsub((hc-o.D)/2.0, o.H, nf1)
	nfCoreZ := nsub(bc, o.B, nf2)
	for _, span := range [][2]float64{{o.D / 2.0, hc / 2.0}, {-hc / 2.0, -o.D / 2.0}} {
		if err := e.QuadPatch(o.matCore, nfCoreZ, nfAbove, quad(span[0], span[1], -bc/2.0, bc/2.0)); err != nil {
			return err
		}
	}
	nfBesideZ := nsub((bc-o.Bf)/2.0, o.B, nf2)
	for _, span := range [][2]float64{{o.dw / 2.0, o.D / 2.0}, {-o.D / 2.0, -o.dw / 2.0}} {
		for _, zs := range [][2]float64{{o.Bf / 2.0, bc / 2.0}, {-bc / 2.0, -o.Bf / 2.0}} {
			if err := e.QuadPatch(o.matCore, nfBesideZ, nfF, quad(span[0], span[1], zs[0], zs[1])); err != nil {
				return err
			}
		}
	}
	nfWebZ := nsub((bc-o.Tw)/2.0, o.B, nf2)
	for _, zs := range [][2]float64{{o.Tw / 2.0, bc / 2.0}, {-bc / 2.0, -o.Tw / 2.0}} {
		if err := e.QuadPatch(o.matCore, nfWebZ, nfW, quad(-o.dw/2.0, o.dw/2.0, zs[0], zs[1])); err != nil {
			return err
		}
	}

	return emitBars(e, o.barPositions(), 0, threeDFlag, o.BarArea, o.matBar, o.matCore)
}

func (o *SRC) fibers(e Emitter, b Bending) (err error) {
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

// Generate runs the full pipeline for this shape
func (o *SRC) Generate(e Emitter, ids *IDSeq, b Bending) error {
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
