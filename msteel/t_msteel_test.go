// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msteel

import (
	"math"
	"testing"

	"github.com/cpmech/fibsec/unit"
	"github.com/cpmech/gosl/chk"
)

func Test_defaults01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("defaults01. Fu and Es defaults")

	es, err := DefaultEs(unit.US)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Es US", 1e-15, es, 29000.0)

	es, err = DefaultEs(unit.SI)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Es SI", 1e-15, es, 200000.0)

	fu, err := DefaultFu(50.0, unit.US)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Fu US", 1e-12, fu, 16.8*math.Pow(50.0, 0.345))
	if fu <= 50.0 {
		tst.Errorf("Fu must exceed Fy for common steels: Fu=%g\n", fu)
		return
	}

	fu, err = DefaultFu(345.0, unit.SI)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Fu SI", 1e-12, fu, 59.5*math.Pow(345.0, 0.345))

	if _, err = DefaultFu(50.0, unit.System(0)); err == nil {
		tst.Errorf("unknown unit system must fail\n")
		return
	}
	if _, err = DefaultEs(unit.System(9)); err == nil {
		tst.Errorf("unknown unit system must fail\n")
		return
	}
	if _, err = DefaultFu(-1, unit.US); err == nil {
		tst.Errorf("negative Fy must fail\n")
		return
	}
}

func Test_shen01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shen01. regime boundaries")

	ε := 1e-9

	// upper boundary (US, 65 ksi): strictly-above selects high
	hi, err := ShenParams(65.0+ε, unit.US)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	med, err := ShenParams(65.0, unit.US)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if hi == med {
		tst.Errorf("Fy across the upper boundary must select different regimes\n")
		return
	}
	chk.Float64(tst, "high Rbso", 1e-15, hi.Rbso, shenHigh.Rbso)
	chk.Float64(tst, "med Rbso", 1e-15, med.Rbso, shenMed.Rbso)

	// lower boundary (US, 50 ksi): at-or-below selects low
	lo, err := ShenParams(50.0, unit.US)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	med2, err := ShenParams(50.0+ε, unit.US)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if lo == med2 {
		tst.Errorf("Fy across the lower boundary must select different regimes\n")
		return
	}
	chk.Float64(tst, "low Rbso", 1e-15, lo.Rbso, shenLow.Rbso)
	chk.Float64(tst, "med2 Rbso", 1e-15, med2.Rbso, shenMed.Rbso)

	// SI boundaries
	lo, err = ShenParams(345.0, unit.SI)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "low SI Rbso", 1e-15, lo.Rbso, shenLow.Rbso)
	hi, err = ShenParams(451.0, unit.SI)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "high SI Rbso", 1e-15, hi.Rbso, shenHigh.Rbso)

	// all sets fully populated
	for _, s := range []ShenSet{hi, med, lo} {
		prms := s.Params()
		if len(prms) != 13 {
			tst.Errorf("parameter set must carry 13 constants; got %d\n", len(prms))
			return
		}
		for _, p := range prms {
			if p.V == 0 {
				tst.Errorf("parameter %q must be non-zero\n", p.N)
				return
			}
		}
	}

	if _, err = ShenParams(50.0, unit.System(7)); err == nil {
		tst.Errorf("unknown unit system must fail\n")
		return
	}
}

func Test_corner01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("corner01. cold-formed corner strength")

	fy, fu := 46.0, 58.0
	fyc, err := CornerFy(fy, fu, 1.0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	fr := fu / fy
	bc := 3.69*fr - 0.819*fr*fr - 1.79
	chk.Float64(tst, "fyc r/t=1", 1e-13, fyc, bc*fy)
	if fyc <= fy {
		tst.Errorf("corner strength must exceed the flat yield: fyc=%g\n", fyc)
		return
	}

	// larger bend radius reduces the enhancement
	fyc2, err := CornerFy(fy, fu, 3.0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if fyc2 >= fyc {
		tst.Errorf("larger r/t must reduce the corner strength\n")
		return
	}

	if _, err = CornerFy(fy, fy, 1.0); err == nil {
		tst.Errorf("Fu == Fy must fail\n")
		return
	}
	if _, err = CornerFy(fy, fu, 0); err == nil {
		tst.Errorf("r/t == 0 must fail\n")
		return
	}
}

func Test_buckling01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("buckling01. tube degradation clamps")

	es := 29000.0

	// stocky flat: ceilings and the softening-slope clamp engage
	d, err := RectTubeBuckling(5.0, 50.0, es)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if d.Ksoft > -es/30.0 {
		tst.Errorf("softening slope %g is less steep than -Es/30\n", d.Ksoft)
		return
	}
	chk.Float64(tst, "stocky Ksoft clamped", 1e-12, d.Ksoft, -es/30.0)
	chk.Float64(tst, "stocky Elb ceiling", 1e-15, d.Elb, 30.0)
	chk.Float64(tst, "stocky Slb ceiling", 1e-15, d.Slb, 1.0)

	// slender flat: floors engaged
	d, err = RectTubeBuckling(120.0, 50.0, es)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	λ := 120.0 * math.Sqrt(50.0/es)
	chk.Float64(tst, "slender Elb floor", 1e-15, d.Elb, 1.0)
	chk.Float64(tst, "slender Slb floor", 1e-15, d.Slb, 0.35)
	if d.Rres < 0.2-1e-15 {
		tst.Errorf("floors violated: Slb=%g Rres=%g\n", d.Slb, d.Rres)
		return
	}
	chk.Float64(tst, "slender Ksoft raw", 1e-10, d.Ksoft, -0.04*λ*es)

	// round tube
	dr, err := RoundTubeBuckling(100.0, 50.0, es)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if dr.Ksoft > -es/30.0 {
		tst.Errorf("round softening slope %g is less steep than -Es/30\n", dr.Ksoft)
		return
	}
	if dr.Elb < 1.0 || dr.Elb > 30.0 {
		tst.Errorf("Elb out of bounds: %g\n", dr.Elb)
		return
	}

	if _, err = RectTubeBuckling(0, 50, es); err == nil {
		tst.Errorf("b/t == 0 must fail\n")
		return
	}
	if _, err = RoundTubeBuckling(10, -1, es); err == nil {
		tst.Errorf("negative Fy must fail\n")
		return
	}
}

func Test_lehigh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lehigh01. residual-stress pattern")

	d, tw, bf, tf := 14.0, 0.5, 8.0, 0.6
	frc := -15.0

	p, err := Lehigh(frc, 6, d, tw, bf, tf, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// tensile value from force balance
	af := bf * tf
	dw := d - 2.0*tf
	chk.Float64(tst, "frt", 1e-12, p.Frt, -frc*af/(af+tw*dw))
	if p.Frt <= 0 {
		tst.Errorf("frt must be tensile: %g\n", p.Frt)
		return
	}

	// levels run from compression at the tip towards tension at the center
	if len(p.Levels) != 6 {
		tst.Errorf("wrong number of levels: %d\n", len(p.Levels))
		return
	}
	for i := 1; i < len(p.Levels); i++ {
		if p.Levels[i] <= p.Levels[i-1] {
			tst.Errorf("levels must increase from tip to center\n")
			return
		}
	}

	// the full pattern is self-balanced
	chk.Float64(tst, "balance", 1e-11, p.Balance(d, tw, bf, tf, 0), 0)

	// with fillets
	p, err = Lehigh(frc, 4, d, tw, bf, tf, 1.0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "balance fillet", 1e-11, p.Balance(d, tw, bf, tf, 1.0), 0)

	// invalid inputs
	if _, err = Lehigh(10.0, 4, d, tw, bf, tf, 0); err == nil {
		tst.Errorf("positive frc must fail\n")
		return
	}
	if _, err = Lehigh(frc, 0, d, tw, bf, tf, 0); err == nil {
		tst.Errorf("n == 0 must fail\n")
		return
	}
	if _, err = Lehigh(frc, 4, d, tw, bf, 8.0, 0); err == nil {
		tst.Errorf("tf >= d/2 must fail\n")
		return
	}
}

func Test_sakino01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sakino01. CFT empirical fits")

	// scale factor decreases with core size
	γ1, err := SakinoScale(100.0, unit.SI)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	γ2, err := SakinoScale(500.0, unit.SI)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if γ2 >= γ1 {
		tst.Errorf("scale factor must decrease with size\n")
		return
	}
	chk.Float64(tst, "γ 100mm", 1e-12, γ1, 1.67*math.Pow(100.0, -0.112))

	// US input is converted to millimeters
	γ3, err := SakinoScale(100.0/25.4, unit.US)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "γ US/SI", 1e-12, γ3, γ1)

	// confined strength
	fc, fy, D, t := 4.0, 46.0, 16.0, 0.5
	fcc, fl, err := SakinoFcc(fc, fy, D, t, unit.US)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	dc := D - 2.0*t
	chk.Float64(tst, "fl", 1e-12, fl, 0.19*fy*2.0*t/dc)
	γ, _ := SakinoScale(dc, unit.US)
	chk.Float64(tst, "fcc", 1e-12, fcc, γ*fc+4.1*fl)

	if _, _, err = SakinoFcc(fc, fy, 10.0, 5.0, unit.US); err == nil {
		tst.Errorf("t >= D/2 must fail\n")
		return
	}
	if _, err = SakinoScale(100, unit.System(3)); err == nil {
		tst.Errorf("unknown unit system must fail\n")
		return
	}
}
