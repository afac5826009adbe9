// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mconc

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_confine01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("confine01. symmetric and degenerate cases")

	// symmetric reference scalar
	fc, ec := 4.0, 0.002
	fl := 0.5
	fcc, ecc, err := Confine(fc, ec, fl, fl)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	ref := fc * (-1.254 + 2.254*math.Sqrt(1.0+7.94*0.5/4.0) - 2.0*0.5/4.0)
	chk.Float64(tst, "fcc symmetric", 1e-14, fcc, ref)
	chk.Float64(tst, "ecc symmetric", 1e-14, ecc, ec*(1.0+5.0*(ref/fc-1.0)))

	// degenerate: no confinement
	for _, f := range []float64{3.0, 4.0, 11.5} {
		fcc, ecc, err = Confine(f, ec, 0, 0)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		if fcc != f {
			tst.Errorf("fl=0 must return fc exactly: fcc=%g fc=%g\n", fcc, f)
			return
		}
		if ecc != ec {
			tst.Errorf("fl=0 must return ec exactly: ecc=%g\n", ecc)
			return
		}
	}
}

func Test_confine02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("confine02. biaxial regression")

	fc, ec := 4.0, 0.002
	fl1, fl2 := 0.2, 0.6
	fcc, _, err := Confine(fc, ec, fl1, fl2)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	r := fl1 / fl2
	A := 6.8886 - (0.6069+17.275*r)*math.Exp(-4.989*r)
	B := 4.5/(5.0/A*(0.9849-0.6306*math.Exp(-3.8939*r))-0.1) - 5.0
	x := (fl1 + fl2) / (2.0 * fc)
	chk.Float64(tst, "fcc biaxial", 1e-14, fcc, fc*(1.0+A*x*(0.1+0.9/(1.0+B*x))))
	if fcc <= fc {
		tst.Errorf("confinement must increase strength: fcc=%g\n", fcc)
		return
	}

	// unordered pressures: caller error
	if _, _, err = Confine(fc, ec, 0.6, 0.2); err == nil {
		tst.Errorf("fl1 > fl2 must fail\n")
		return
	}
	if _, _, err = Confine(fc, ec, -0.1, 0.2); err == nil {
		tst.Errorf("negative fl1 must fail\n")
		return
	}
	if _, _, err = Confine(-4, ec, 0.1, 0.2); err == nil {
		tst.Errorf("negative fc must fail\n")
		return
	}
}

func Test_ke01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ke01. rectangular effective confinement")

	bc, hc := 12.0, 18.0
	sc := 3.0
	db := 1.0

	// corner-only layout: one clear gap per face
	ke1, err := KeRect(bc, hc, sc, CornerOnly, 0, 0, db)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	wb, wh := bc-db, hc-db
	sumw2 := 2.0*wb*wb + 2.0*wh*wh
	ref := (1.0 - sumw2/6.0/(bc*hc)) * (1.0 - sc/(2.0*bc)) * (1.0 - sc/(2.0*hc))
	chk.Float64(tst, "ke corner-only", 1e-14, ke1, ref)

	// evenly spaced bars arch less concrete away: larger ke
	ke2, err := KeRect(bc, hc, sc, Even, 4, 5, db)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if ke2 <= ke1 {
		tst.Errorf("even layout must give larger ke: %g vs %g\n", ke2, ke1)
		return
	}

	// floor at zero for an extreme layout
	ke3, err := KeRect(2.0, 2.0, 10.0, CornerOnly, 0, 0, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if ke3 != 0 {
		tst.Errorf("ke must be floored at zero: %g\n", ke3)
		return
	}

	// invalid inputs
	if _, err = KeRect(-1, hc, sc, Even, 4, 4, db); err == nil {
		tst.Errorf("negative bc must fail\n")
		return
	}
	if _, err = KeRect(bc, hc, sc, Even, 1, 4, db); err == nil {
		tst.Errorf("single bar per face must fail\n")
		return
	}
	if _, err = KeRect(bc, hc, sc, Layout(0), 4, 4, db); err == nil {
		tst.Errorf("unknown layout must fail\n")
		return
	}
}

func Test_ke02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ke02. circular effective confinement")

	ds, sc := 20.0, 2.0
	f := 1.0 - sc/(2.0*ds)
	chk.Float64(tst, "spiral", 1e-15, KeCirc(ds, sc, true), f)
	chk.Float64(tst, "hoops", 1e-15, KeCirc(ds, sc, false), f*f)
	chk.Float64(tst, "floor", 1e-15, KeCirc(1.0, 10.0, true), 0)
}
