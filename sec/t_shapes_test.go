// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec

import (
	"math"
	"testing"

	"github.com/cpmech/fibsec/geom"
	"github.com/cpmech/fibsec/mconc"
	"github.com/cpmech/fibsec/unit"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_wf01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wf01. wide flange, strong axis")

	o := &WF{ID: 1, Units: unit.US, D: 14, Tw: 0.5, Bf: 8, Tf: 0.6, Fy: 50}
	rec := NewRecorder()
	if err := o.Generate(rec, NewIDSeq(1), Strong{Nf: 20}); err != nil {
		tst.Errorf("generation failed:\n%v", err)
		return
	}

	// single steel material
	if len(rec.Mats) != 1 || rec.Mats[0].ID != 1 {
		tst.Errorf("wrong material layout: %v", rec.Mats)
		return
	}

	// exact area: two flanges plus clear web
	area := 2.0*8.0*0.6 + (14.0-1.2)*0.5
	io.Pforan("area = %v\n", rec.TotalFiberArea())
	chk.Float64(tst, "A", 1e-10, rec.TotalFiberArea(), area)

	// torsional stiffness
	if len(rec.Secs) != 1 {
		tst.Errorf("wrong number of sections: %d", len(rec.Secs))
		return
	}
	gj := Gsteel(29000.0) * geom.JOpenWF(14, 0.5, 8, 0.6)
	chk.Float64(tst, "GJ", 1e-10, rec.Secs[0].GJ, gj)
}

func Test_wf02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wf02. wide flange, weak axis and fillets")

	o := &WF{ID: 1, Units: unit.US, D: 14, Tw: 0.5, Bf: 8, Tf: 0.6, Fy: 50, Fillet: 1.0}
	rec := NewRecorder()
	if err := o.Generate(rec, NewIDSeq(1), Weak{Nf: 20}); err != nil {
		tst.Errorf("generation failed:\n%v", err)
		return
	}

	// fillet spandrels on top of the rectangle decomposition
	r := 1.0 - 0.6
	area := 2.0*8.0*0.6 + (14.0-1.2)*0.5 + 4.0*r*r*(1.0-math.Pi/4.0)
	chk.Float64(tst, "A", 1e-10, rec.TotalFiberArea(), area)
}

func Test_wf03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wf03. wide flange, residual stresses")

	o := &WF{ID: 1, Units: unit.US, D: 14, Tw: 0.5, Bf: 8, Tf: 0.6, Fy: 50,
		MatType: MultiSurface, Lehigh: &LehighOpt{Frc: -10, N: 3}}
	rec := NewRecorder()
	if err := o.Generate(rec, NewIDSeq(1), Strong{Nf: 20}); err != nil {
		tst.Errorf("generation failed:\n%v", err)
		return
	}

	// three flange levels then the web
	if len(rec.Mats) != 4 {
		tst.Errorf("wrong number of materials: %d", len(rec.Mats))
		return
	}
	for i, m := range rec.Mats {
		if m.ID != i+1 {
			tst.Errorf("wrong material id: %d != %d", m.ID, i+1)
			return
		}
	}

	// splitting flange strips across levels preserves the area
	area := 2.0*8.0*0.6 + (14.0-1.2)*0.5
	chk.Float64(tst, "A", 1e-10, rec.TotalFiberArea(), area)

	// tip level is the most compressive
	sig0 := func(m Material) float64 {
		for _, p := range m.Prms {
			if p.N == "sig0" {
				return p.V
			}
		}
		tst.Errorf("material %d has no initial stress", m.ID)
		return 0
	}
	if sig0(rec.Mats[0]) >= sig0(rec.Mats[2]) {
		tst.Errorf("flange levels must go from tip compression toward the center")
		return
	}
}

func Test_wf04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wf04. wide flange, 3D patches and added stiffness")

	o := &WF{ID: 1, Units: unit.US, D: 14, Tw: 0.5, Bf: 8, Tf: 0.6, Fy: 50,
		AE: AddedElastic{Use: true, EA: 100, EI1: 400, EI2: 100, GJ: 10}}
	rec := NewRecorder()
	if err := o.Generate(rec, NewIDSeq(1), ThreeD{Nf1: 20, Nf2: 16}); err != nil {
		tst.Errorf("generation failed:\n%v", err)
		return
	}

	// steel + added elastic materials
	if len(rec.Mats) != 2 || rec.Mats[1].ID != 2 {
		tst.Errorf("wrong material layout: %v", rec.Mats)
		return
	}

	// two flange patches and the web
	if len(rec.Secs[0].Quads) != 3 {
		tst.Errorf("wrong number of patches: %d", len(rec.Secs[0].Quads))
		return
	}

	// four synthetic fibers at (±2, ±1) carrying EA/4 each
	chk.Float64(tst, "Aae", 1e-10, rec.FiberArea(2), 100.0)
	for _, f := range rec.Secs[0].Fibers {
		if f.Mat != 2 {
			continue
		}
		chk.Float64(tst, "|y|", 1e-12, math.Abs(f.Y), 2.0)
		chk.Float64(tst, "|z|", 1e-12, math.Abs(f.Z), 1.0)
	}

	// GJ gains the added term
	gj := Gsteel(29000.0)*geom.JOpenWF(14, 0.5, 8, 0.6) + 10.0
	chk.Float64(tst, "GJ", 1e-10, rec.Secs[0].GJ, gj)
}

func Test_wf05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wf05. wide flange, residual stresses in 3D")

	n := 3
	o := &WF{ID: 1, Units: unit.US, D: 14, Tw: 0.5, Bf: 8, Tf: 0.6, Fy: 50,
		MatType: MultiSurface, Lehigh: &LehighOpt{Frc: -10, N: n}}
	rec := NewRecorder()
	if err := o.Generate(rec, NewIDSeq(1), ThreeD{Nf1: 20, Nf2: 16}); err != nil {
		tst.Errorf("generation failed:\n%v", err)
		return
	}

	// each level gets a mirrored patch pair per flange, plus the web
	quads := rec.Secs[0].Quads
	if len(quads) != 4*n+1 {
		tst.Errorf("wrong number of patches: %d != %d", len(quads), 4*n+1)
		return
	}

	// per-level z-spans: level i covers bf/2 - (i+1)w to bf/2 - i·w on
	// each side, tip first
	w := 8.0 / (2.0 * float64(n))
	count := make(map[int]int)
	for _, q := range quads {
		count[q.Mat]++
		if q.Mat == 4 { // web
			continue
		}
		i := q.Mat - 1
		zo := 8.0/2.0 - float64(i)*w
		zi := zo - w
		zmin, zmax := math.Abs(q.Corners[0][1]), math.Abs(q.Corners[1][1])
		if zmin > zmax {
			zmin, zmax = zmax, zmin
		}
		chk.Float64(tst, "zi", 1e-12, zmin, zi)
		chk.Float64(tst, "zo", 1e-12, zmax, zo)
	}
	for i := 0; i < n; i++ {
		if count[i+1] != 4 {
			tst.Errorf("level %d must own 4 patches: %d", i+1, count[i+1])
			return
		}
	}
	if count[4] != 1 {
		tst.Errorf("web must own 1 patch: %d", count[4])
		return
	}
}

func Test_recthss01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("recthss01. rectangular tube")

	D, B, t := 10.0, 6.0, 0.465
	o := &RectHSS{ID: 1, Units: unit.US, D: D, B: B, T: t, Fy: 46}
	rec := NewRecorder()
	if err := o.Generate(rec, NewIDSeq(1), Strong{Nf: 20}); err != nil {
		tst.Errorf("generation failed:\n%v", err)
		return
	}

	// flat + corner materials
	if len(rec.Mats) != 2 || rec.Mats[0].ID != 1 || rec.Mats[1].ID != 2 {
		tst.Errorf("wrong material layout: %v", rec.Mats)
		return
	}

	// flats and corner arcs separately
	flats := 2.0*t*(D-4.0*t) + 2.0*t*(B-4.0*t)
	corners := 3.0 * math.Pi * t * t
	chk.Float64(tst, "Aflat", 1e-10, rec.FiberArea(1), flats)
	chk.Float64(tst, "Acorner", 1e-10, rec.FiberArea(2), corners)

	// the weak-axis reduction covers the same area
	o2 := &RectHSS{ID: 2, Units: unit.US, D: D, B: B, T: t, Fy: 46}
	rec2 := NewRecorder()
	if err := o2.Generate(rec2, NewIDSeq(1), Weak{Nf: 20}); err != nil {
		tst.Errorf("generation failed:\n%v", err)
		return
	}
	chk.Float64(tst, "A(weak)", 1e-10, rec2.TotalFiberArea(), flats+corners)
}

func Test_roundhss01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("roundhss01. round tube")

	D, t := 8.625, 0.465
	o := &RoundHSS{ID: 1, Units: unit.US, D: D, T: t, Fy: 42}
	rec := NewRecorder()
	if err := o.Generate(rec, NewIDSeq(1), Strong{Nf: 20}); err != nil {
		tst.Errorf("generation failed:\n%v", err)
		return
	}
	chk.Float64(tst, "A", 1e-10, rec.TotalFiberArea(), math.Pi*t*(D-t))

	// 3D uses a single annular patch
	rec3 := NewRecorder()
	o3 := &RoundHSS{ID: 2, Units: unit.US, D: D, T: t, Fy: 42}
	if err := o3.Generate(rec3, NewIDSeq(1), ThreeD{Nf1: 20, Nf2: 16}); err != nil {
		tst.Errorf("generation failed:\n%v", err)
		return
	}
	if len(rec3.Secs[0].Circs) != 1 {
		tst.Errorf("wrong number of annular patches: %d", len(rec3.Secs[0].Circs))
		return
	}
}

func Test_ccft01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ccft01. circular filled tube")

	D, t := 8.625, 0.25
	o := &CCFT{ID: 1, Units: unit.US, D: D, T: t, Fy: 42, Fc: 4}
	rec := NewRecorder()
	if err := o.Generate(rec, NewIDSeq(1), Strong{Nf: 20}); err != nil {
		tst.Errorf("generation failed:\n%v", err)
		return
	}

	// steel, concrete [and nothing else]
	if len(rec.Mats) != 2 {
		tst.Errorf("wrong number of materials: %d", len(rec.Mats))
		return
	}
	dc := D - 2.0*t
	chk.Float64(tst, "As", 1e-10, rec.FiberArea(1), math.Pi*t*(D-t))
	chk.Float64(tst, "Ac", 1e-10, rec.FiberArea(2), math.Pi*dc*dc/4.0)

	// the confined strength exceeds the plain strength
	fcc := 0.0
	for _, p := range rec.Mats[1].Prms {
		if p.N == "fcc" {
			fcc = p.V
		}
	}
	if fcc <= 4.0 {
		tst.Errorf("confined strength must exceed fc: %g", fcc)
		return
	}

	// GJ takes the larger contribution
	gjs := Gsteel(29000.0) * geom.JRoundTube(D/2.0, dc/2.0)
	gjc := Gconcrete(EcConcrete(4, unit.US)) * geom.JRoundTube(dc/2.0, 0)
	chk.Float64(tst, "GJ", 1e-10, rec.Secs[0].GJ, math.Max(gjs, gjc))
}

func Test_rcft01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rcft01. rectangular filled tube")

	D, B, t := 10.0, 6.0, 0.25
	o := &RCFT{ID: 1, Units: unit.US, D: D, B: B, T: t, Fy: 46, Fc: 4}
	rec := NewRecorder()
	if err := o.Generate(rec, NewIDSeq(1), Strong{Nf: 20}); err != nil {
		tst.Errorf("generation failed:\n%v", err)
		return
	}

	// flat steel, corner steel, concrete
	if len(rec.Mats) != 3 {
		tst.Errorf("wrong number of materials: %d", len(rec.Mats))
		return
	}

	flats := 2.0*t*(D-4.0*t) + 2.0*t*(B-4.0*t)
	corners := 3.0 * math.Pi * t * t
	chk.Float64(tst, "Aflat", 1e-10, rec.FiberArea(1), flats)
	chk.Float64(tst, "Acorner", 1e-10, rec.FiberArea(2), corners)

	// rounded-corner core area
	dc, bc := D-2.0*t, B-2.0*t
	core := dc*bc - (4.0-math.Pi)*t*t
	chk.Float64(tst, "Acore", 1e-10, rec.FiberArea(3), core)
}

func Test_rcrect01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rcrect01. rectangular reinforced concrete")

	o := &RCRect{ID: 1, Units: unit.US, H: 24, B: 18, Cover: 1.5, Fc: 4,
		Fyr: 60, BarArea: 0.79, BarDia: 1.0, NBarsB: 3, NBarsH: 4, Layout: mconc.Even,
		TieArea: 0.2, TieDia: 0.5, TieS: 12, TieFy: 60}
	rec := NewRecorder()
	if err := o.Generate(rec, NewIDSeq(1), Strong{Nf: 24}); err != nil {
		tst.Errorf("generation failed:\n%v", err)
		return
	}

	// cover, core, rebar
	if len(rec.Mats) != 3 {
		tst.Errorf("wrong number of materials: %d", len(rec.Mats))
		return
	}

	// bars carve the core, so the total is the gross area
	chk.Float64(tst, "A", 1e-10, rec.TotalFiberArea(), 24.0*18.0)

	// evenly spaced layout: 4 corners + 2 interior top/bottom + 4 interior sides
	nbars := 10.0
	chk.Float64(tst, "Abar", 1e-10, rec.FiberArea(3), nbars*0.79)
	chk.Float64(tst, "Acore", 1e-10, rec.FiberArea(2), 21.0*15.0-nbars*0.79)
	chk.Float64(tst, "Acover", 1e-10, rec.FiberArea(1), 24.0*18.0-21.0*15.0)

	// core confinement raises the strength
	var fccCover, fccCore float64
	for _, p := range rec.Mats[0].Prms {
		if p.N == "fcc" {
			fccCover = p.V
		}
	}
	for _, p := range rec.Mats[1].Prms {
		if p.N == "fcc" {
			fccCore = p.V
		}
	}
	if fccCore <= fccCover {
		tst.Errorf("core must be stronger than cover: %g <= %g", fccCore, fccCover)
		return
	}
}

func Test_rccirc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rccirc01. circular reinforced concrete")

	o := &RCCirc{ID: 1, Units: unit.US, D: 36, Cover: 2, Fc: 4,
		Fyr: 60, BarArea: 0.79, BarDia: 1.0, NBars: 12, Spiral: true,
		TieArea: 0.2, TieDia: 0.5, TieS: 3, TieFy: 60}
	rec := NewRecorder()
	if err := o.Generate(rec, NewIDSeq(1), Strong{Nf: 24}); err != nil {
		tst.Errorf("generation failed:\n%v", err)
		return
	}

	chk.Float64(tst, "A", 1e-9, rec.TotalFiberArea(), math.Pi*36.0*36.0/4.0)
	ds := 32.0
	chk.Float64(tst, "Abar", 1e-10, rec.FiberArea(3), 12.0*0.79)
	chk.Float64(tst, "Acore", 1e-9, rec.FiberArea(2), math.Pi*ds*ds/4.0-12.0*0.79)
}

func Test_src01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("src01. encased composite")

	o := &SRC{ID: 1, Units: unit.US, H: 24, B: 24, Cover: 1.5,
		D: 10, Tw: 0.5, Bf: 8, Tf: 0.6, Fy: 50, Fc: 4,
		Fyr: 60, BarArea: 0.79, BarDia: 1.0, NBarsB: 2, NBarsH: 2,
		TieArea: 0.2, TieDia: 0.5, TieS: 12, TieFy: 60}
	rec := NewRecorder()
	if err := o.Generate(rec, NewIDSeq(1), Strong{Nf: 24}); err != nil {
		tst.Errorf("generation failed:\n%v", err)
		return
	}

	// steel, cover, core, rebar
	if len(rec.Mats) != 4 {
		tst.Errorf("wrong number of materials: %d", len(rec.Mats))
		return
	}

	steel := 2.0*8.0*0.6 + (10.0-1.2)*0.5
	chk.Float64(tst, "As", 1e-10, rec.FiberArea(1), steel)

	// bands fitted to the steel envelope recover the gross area
	chk.Float64(tst, "A", 1e-10, rec.TotalFiberArea(), 24.0*24.0)
	chk.Float64(tst, "Abar", 1e-10, rec.FiberArea(4), 4.0*0.79)
	chk.Float64(tst, "Acore", 1e-10, rec.FiberArea(3), 21.0*21.0-steel-4.0*0.79)

	// weak axis covers the same area
	o2 := &SRC{ID: 2, Units: unit.US, H: 24, B: 24, Cover: 1.5,
		D: 10, Tw: 0.5, Bf: 8, Tf: 0.6, Fy: 50, Fc: 4,
		Fyr: 60, BarArea: 0.79, BarDia: 1.0, NBarsB: 2, NBarsH: 2,
		TieArea: 0.2, TieDia: 0.5, TieS: 12, TieFy: 60}
	rec2 := NewRecorder()
	if err := o2.Generate(rec2, NewIDSeq(1), Weak{Nf: 24}); err != nil {
		tst.Errorf("generation failed:\n%v", err)
		return
	}
	chk.Float64(tst, "A(weak)", 1e-10, rec2.TotalFiberArea(), 24.0*24.0)
}

func Test_modes01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("modes01. output modes and atomicity")

	// materials only: no geometry at all
	o := &WF{Mode: MaterialsOnly, Units: unit.US, D: 14, Tw: 0.5, Bf: 8, Tf: 0.6, Fy: 50}
	rec := NewRecorder()
	if err := o.Generate(rec, NewIDSeq(1), Strong{Nf: 20}); err != nil {
		tst.Errorf("generation failed:\n%v", err)
		return
	}
	if len(rec.Mats) != 1 || len(rec.Secs) != 0 || len(rec.LooseFibs) != 0 {
		tst.Errorf("materials-only mode must emit no geometry")
		return
	}

	// no section: loose fibers, no wrapper
	o2 := &WF{Mode: NoSection, Units: unit.US, D: 14, Tw: 0.5, Bf: 8, Tf: 0.6, Fy: 50}
	rec2 := NewRecorder()
	if err := o2.Generate(rec2, NewIDSeq(1), Strong{Nf: 20}); err != nil {
		tst.Errorf("generation failed:\n%v", err)
		return
	}
	if len(rec2.Secs) != 0 || len(rec2.LooseFibs) == 0 {
		tst.Errorf("no-section mode must emit loose fibers only")
		return
	}
	area := 2.0*8.0*0.6 + (14.0-1.2)*0.5
	chk.Float64(tst, "A", 1e-10, rec2.TotalFiberArea(), area)

	// a failed call leaves the destination untouched
	bad := &WF{ID: 1, Units: unit.US, D: 14, Tw: 9, Bf: 8, Tf: 0.6, Fy: 50}
	rec3 := NewRecorder()
	if err := bad.Generate(rec3, NewIDSeq(1), Strong{Nf: 20}); err == nil {
		tst.Errorf("invalid dimensions must fail")
		return
	}
	if len(rec3.Mats) != 0 || len(rec3.Secs) != 0 || len(rec3.LooseFibs) != 0 {
		tst.Errorf("failed generation must not touch the destination")
		return
	}
}

func Test_compose01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("compose01. shared id sequence across calls")

	ids := NewIDSeq(1)
	rec := NewRecorder()

	o := &CCFT{ID: 1, Units: unit.US, D: 8.625, T: 0.25, Fy: 42, Fc: 4}
	if err := o.Generate(rec, ids, Strong{Nf: 20}); err != nil {
		tst.Errorf("generation failed:\n%v", err)
		return
	}
	o2 := &RCFT{ID: 2, Units: unit.US, D: 10, B: 6, T: 0.25, Fy: 46, Fc: 4}
	if err := o2.Generate(rec, ids, Strong{Nf: 20}); err != nil {
		tst.Errorf("generation failed:\n%v", err)
		return
	}

	// 2 + 3 materials, contiguous ids
	if len(rec.Mats) != 5 {
		tst.Errorf("wrong number of materials: %d", len(rec.Mats))
		return
	}
	for i, m := range rec.Mats {
		if m.ID != i+1 {
			tst.Errorf("wrong material id: %d != %d", m.ID, i+1)
			return
		}
	}
	if len(rec.Secs) != 2 {
		tst.Errorf("wrong number of sections: %d", len(rec.Secs))
		return
	}
}
