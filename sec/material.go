// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec

import (
	"github.com/cpmech/fibsec/mconc"
	"github.com/cpmech/fibsec/msteel"
	"github.com/cpmech/fibsec/unit"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// hardening ratio of the bilinear steel law
const bilinearHardening = 0.003

// steelPrms assembles the parameter record of a steel material. sig0 is
// the initial (residual) stress; sigBias is the bounding-surface
// initial-stress bias used by the web of a Lehigh pattern (zero
// elsewhere). degr is non-nil for tube steels with local-buckling
// degradation.
func steelPrms(kind MatKind, fy, fu, es, sig0, sigBias float64, sys unit.System, degr *msteel.Degradation) (dbf.Params, error) {
	switch kind {
	case Elastic:
		return dbf.Params{&dbf.P{N: "E", V: es}}, nil
	case ElasticPP:
		return dbf.Params{
			&dbf.P{N: "E", V: es},
			&dbf.P{N: "fy", V: fy},
			&dbf.P{N: "sig0", V: sig0},
		}, nil
	case Bilinear:
		return dbf.Params{
			&dbf.P{N: "E", V: es},
			&dbf.P{N: "fy", V: fy},
			&dbf.P{N: "b", V: bilinearHardening},
			&dbf.P{N: "sig0", V: sig0},
		}, nil
	case MultiSurface:
		shen, err := msteel.ShenParams(fy, sys)
		if err != nil {
			return nil, err
		}
		prms := dbf.Params{
			&dbf.P{N: "E", V: es},
			&dbf.P{N: "fy", V: fy},
			&dbf.P{N: "fu", V: fu},
			&dbf.P{N: "sig0", V: sig0},
			&dbf.P{N: "sigb", V: sigBias},
		}
		return append(prms, shen.Params()...), nil
	case SteelTube:
		if degr == nil {
			return nil, chk.Err("sec: steel tube material needs local-buckling parameters")
		}
		shen, err := msteel.ShenParams(fy, sys)
		if err != nil {
			return nil, err
		}
		prms := dbf.Params{
			&dbf.P{N: "E", V: es},
			&dbf.P{N: "fy", V: fy},
			&dbf.P{N: "fu", V: fu},
			&dbf.P{N: "elb", V: degr.Elb},
			&dbf.P{N: "slb", V: degr.Slb},
			&dbf.P{N: "Ksft", V: degr.Ksoft},
			&dbf.P{N: "rres", V: degr.Rres},
		}
		return append(prms, shen.Params()...), nil
	}
	return nil, chk.Err("sec: material type %v cannot represent steel", kind)
}

// concretePrms assembles the parameter record of a concrete material. fl1
// and fl2 are the ordered lateral pressures; the confined strength and
// strain are derived here via the confinement model.
func concretePrms(kind MatKind, fc, ec, fl1, fl2 float64, sys unit.System) (dbf.Params, error) {
	switch kind {
	case Elastic:
		return dbf.Params{&dbf.P{N: "E", V: EcConcrete(fc, sys)}}, nil
	case ConcreteCFT, ConcreteRC:
		fcc, ecc, err := mconc.Confine(fc, ec, fl1, fl2)
		if err != nil {
			return nil, err
		}
		return dbf.Params{
			&dbf.P{N: "fc", V: fc},
			&dbf.P{N: "ec", V: ec},
			&dbf.P{N: "fcc", V: fcc},
			&dbf.P{N: "ecc", V: ecc},
			&dbf.P{N: "Ec", V: EcConcrete(fc, sys)},
		}, nil
	}
	return nil, chk.Err("sec: material type %v cannot represent concrete", kind)
}

// defaultEc is the unconfined peak strain used when the caller gives none
const defaultEc = 0.002
