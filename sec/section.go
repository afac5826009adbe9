// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec

import (
	"math"

	"github.com/cpmech/fibsec/unit"
	"github.com/cpmech/gosl/fun/dbf"
)

// Poisson ratios behind the shear moduli
const (
	nuSteel    = 0.3
	nuConcrete = 0.2
)

// Gsteel returns the steel shear modulus
func Gsteel(es float64) float64 {
	return es / (2.0 * (1.0 + nuSteel))
}

// Gconcrete returns the concrete shear modulus
func Gconcrete(ec float64) float64 {
	return ec / (2.0 * (1.0 + nuConcrete))
}

// EcConcrete returns the nominal concrete elastic modulus from the
// compressive strength: 1802.5·sqrt(fc) ksi (US) or 4700·sqrt(fc) MPa (SI).
func EcConcrete(fc float64, sys unit.System) float64 {
	if sys == unit.SI {
		return 4700.0 * math.Sqrt(fc)
	}
	return 1802.5 * math.Sqrt(fc)
}

// nsub returns the number of subdivisions a sub-region receives along its
// long axis: the ceiling of its share of the overall target. Rounding up
// is the contract: no region may be undersized, which is what guarantees
// full area coverage.
func nsub(extent, total float64, nf int) int {
	n := int(math.Ceil(extent / total * float64(nf)))
	if n < 1 {
		n = 1
	}
	return n
}

// orchestrate runs the shared emission pipeline: stage everything, define
// materials, open the section wrapper if requested, generate fibers, and
// commit atomically. mats and fibers run against the staging Recorder.
func orchestrate(e Emitter, mode OutputMode, id int, gj float64, mats, fibers func(Emitter) error) error {
	return staged(e, func(dst Emitter) (err error) {
		if err = mats(dst); err != nil {
			return
		}
		if mode == MaterialsOnly {
			return
		}
		if mode == Full {
			if err = dst.BeginSection(id, gj); err != nil {
				return
			}
		}
		if err = fibers(dst); err != nil {
			return
		}
		if mode == Full {
			err = dst.EndSection()
		}
		return
	})
}

// addedElasticMaterial defines the synthetic elastic material carrying
// the added stiffness. Its modulus is one, so the fiber areas below carry
// the stiffness values directly.
func addedElasticMaterial(e Emitter, id int) error {
	return e.Material(Material{ID: id, Kind: Elastic, Prms: dbf.Params{&dbf.P{N: "E", V: 1.0}}})
}

// addedElasticFibers places the point fibers reproducing the requested
// stiffness: two fibers in 2D, four in 3D. The caller accounts for the GJ
// addition in the section scalar.
func addedElasticFibers(e Emitter, id int, b Bending, ae AddedElastic) (err error) {
	if twoD(b) {
		a := ae.EA / 2.0
		y := math.Sqrt(ae.EI1 / ae.EA)
		if err = e.Fiber(y, 0, a, id); err != nil {
			return err
		}
		return e.Fiber(-y, 0, a, id)
	}
	a := ae.EA / 4.0
	y := math.Sqrt(ae.EI1 / ae.EA)
	z := math.Sqrt(ae.EI2 / ae.EA)
	for _, s := range [][2]float64{{y, z}, {y, -z}, {-y, z}, {-y, -z}} {
		if err = e.Fiber(s[0], s[1], a, id); err != nil {
			return err
		}
	}
	return nil
}
