// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msteel

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/fibsec/unit"
)

// ShenSet holds the constants of the Shen bounding-surface steel model for
// one strength regime. The three regime rows below are literal calibrated
// values; they are a numeric contract and must not be re-derived.
type ShenSet struct {
	Rbso float64 // initial bounding-surface size as a fraction of fy
	Alp  float64 // bounding-line slope as a fraction of es
	A    float64 // plastic-modulus shape constant a
	Bb   float64 // plastic-modulus shape constant b
	C    float64 // plastic-modulus shape constant c
	W    float64 // shape-function weighting constant ω
	Ksi  float64 // hardening saturation rate ξ
	E    float64 // memory-surface expansion constant
	Fe   float64 // bounding-surface contraction constant
	M    float64 // virtual-peak ratio
	Epoi float64 // initial plastic modulus as a fraction of es
	Ust  float64 // yield-plateau end strain as a multiple of the yield strain
	Rc   float64 // elastic-core size as a fraction of fy
}

// regime rows: high, medium, and low strength
var (
	shenHigh = ShenSet{0.95, 0.010, 0.45, 4.0, 16.0, 1.15, 0.15, 400.0, 0.25, 0.28, 0.50, 1.0, 0.35}
	shenMed  = ShenSet{1.02, 0.013, 0.50, 5.5, 22.0, 1.05, 0.18, 450.0, 0.27, 0.30, 0.55, 8.0, 0.40}
	shenLow  = ShenSet{1.08, 0.015, 0.55, 6.5, 28.0, 0.95, 0.21, 500.0, 0.30, 0.33, 0.60, 14.0, 0.45}
)

// regime boundaries (absolute yield stress, per unit system)
const (
	shenHiUS = 65.0  // ksi
	shenLoUS = 50.0  // ksi
	shenHiSI = 450.0 // MPa
	shenLoSI = 345.0 // MPa
)

// ShenParams selects the regime row for the given yield stress. The
// comparisons are part of the contract: fy strictly above the upper
// boundary selects the high regime; fy at or below the lower boundary
// selects the low regime; anything else is the medium regime. A yield
// stress exactly on the upper boundary therefore resolves to medium, and
// exactly on the lower boundary resolves to low.
func ShenParams(fy float64, sys unit.System) (ShenSet, error) {
	if fy <= 0 {
		return ShenSet{}, chk.Err("msteel: ShenParams: yield stress must be positive. Fy=%g is invalid", fy)
	}
	var hi, lo float64
	switch sys {
	case unit.US:
		hi, lo = shenHiUS, shenLoUS
	case unit.SI:
		hi, lo = shenHiSI, shenLoSI
	default:
		return ShenSet{}, chk.Err("msteel: ShenParams: unit system %v is incorrect", sys)
	}
	switch {
	case fy > hi:
		return shenHigh, nil
	case fy <= lo:
		return shenLow, nil
	}
	return shenMed, nil
}

// Params exports the set as named parameter records
func (o ShenSet) Params() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "Rbso", V: o.Rbso},
		&dbf.P{N: "alp", V: o.Alp},
		&dbf.P{N: "a", V: o.A},
		&dbf.P{N: "b", V: o.Bb},
		&dbf.P{N: "c", V: o.C},
		&dbf.P{N: "w", V: o.W},
		&dbf.P{N: "ksi", V: o.Ksi},
		&dbf.P{N: "e", V: o.E},
		&dbf.P{N: "fE", V: o.Fe},
		&dbf.P{N: "M", V: o.M},
		&dbf.P{N: "Epoi", V: o.Epoi},
		&dbf.P{N: "ust", V: o.Ust},
		&dbf.P{N: "Rc", V: o.Rc},
	}
}
