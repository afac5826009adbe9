// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mconc derives confined-concrete properties from geometry and
// transverse reinforcement: the Chang-Mander confinement strength model
// and the effective confinement coefficient for rectangular and circular
// reinforcing layouts.
package mconc

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Confine returns the confined strength fcc and the strain at peak
// confined stress ecc for unconfined strength fc, unconfined peak strain
// ec, and lateral confining pressures fl1 ≤ fl2. The caller must reorder
// the pressures; unordered input is an error, not silently swapped.
//
// fl2 == 0 returns the unconfined values. Equal pressures use the
// closed-form symmetric solution; unequal pressures use the biaxial
// regression on r = fl1/fl2:
//
//	A = 6.8886 − (0.6069 + 17.275·r)·exp(−4.989·r)
//	B = 4.5 / (5/A·(0.9849 − 0.6306·exp(−3.8939·r)) − 0.1) − 5
//	K = 1 + A·x̄·(0.1 + 0.9/(1 + B·x̄)),  x̄ = (fl1+fl2)/(2·fc)
//
// The strain follows ecc = ec·(1 + 5·(fcc/fc − 1)) in every branch.
func Confine(fc, ec, fl1, fl2 float64) (fcc, ecc float64, err error) {
	if fc <= 0 || ec <= 0 {
		return 0, 0, chk.Err("mconc: Confine: unconfined strength and strain must be positive. fc=%g, ec=%g is invalid", fc, ec)
	}
	if fl1 < 0 {
		return 0, 0, chk.Err("mconc: Confine: confining pressures must be non-negative. fl1=%g is invalid", fl1)
	}
	if fl2 < fl1 {
		return 0, 0, chk.Err("mconc: Confine: confining pressures must be ordered fl1 ≤ fl2. fl1=%g, fl2=%g is invalid", fl1, fl2)
	}
	switch {
	case fl2 == 0:
		fcc = fc
	case fl1 == fl2:
		x := fl1 / fc
		fcc = fc * (-1.254 + 2.254*math.Sqrt(1.0+7.94*x) - 2.0*x)
	default:
		r := fl1 / fl2
		A := 6.8886 - (0.6069+17.275*r)*math.Exp(-4.989*r)
		B := 4.5/(5.0/A*(0.9849-0.6306*math.Exp(-3.8939*r))-0.1) - 5.0
		x := (fl1 + fl2) / (2.0 * fc)
		fcc = fc * (1.0 + A*x*(0.1+0.9/(1.0+B*x)))
	}
	ecc = ec * (1.0 + 5.0*(fcc/fc-1.0))
	return
}
