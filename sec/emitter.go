// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sec composes fiber discretizations for structural cross sections
// (wide-flange, HSS, concrete-filled tubes, reinforced concrete, SRC) and
// assembles them, together with derived material parameter sets, into
// section descriptors for an external fiber-based solver.
//
// Every shape family follows the same pipeline: validate inputs, resolve
// optional parameters, compute section scalars (GJ, confinement, residual
// stress), then define materials and generate fibers for the requested
// bending mode. All emission is staged and committed atomically, so a
// failed generation call leaves no partial state in the consumer.
package sec

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// MatKind names a constitutive-law family. The set is closed: composers
// switch exhaustively and reject anything they cannot serve.
type MatKind int

// material kinds
const (
	Elastic      MatKind = iota + 1 // linear elastic
	ElasticPP                       // elastic-perfectly-plastic
	Bilinear                        // bilinear kinematic hardening
	MultiSurface                    // Shen bounding-surface steel
	SteelTube                       // tube steel with local-buckling degradation
	ConcreteCFT                     // concrete core of a filled tube
	ConcreteRC                      // reinforced-concrete hysteretic concrete
)

// String returns the tag of the kind
func (o MatKind) String() string {
	switch o {
	case Elastic:
		return "elastic"
	case ElasticPP:
		return "elasticPP"
	case Bilinear:
		return "bilinear"
	case MultiSurface:
		return "multiSurface"
	case SteelTube:
		return "steelTube"
	case ConcreteCFT:
		return "concreteCFT"
	case ConcreteRC:
		return "concreteRC"
	}
	return "unknown"
}

// ParseMatKind converts a material-type tag into a MatKind
func ParseMatKind(tag string) (MatKind, error) {
	switch tag {
	case "elastic":
		return Elastic, nil
	case "elasticPP":
		return ElasticPP, nil
	case "bilinear":
		return Bilinear, nil
	case "multiSurface", "shen":
		return MultiSurface, nil
	case "steelTube":
		return SteelTube, nil
	case "concreteCFT":
		return ConcreteCFT, nil
	case "concreteRC":
		return ConcreteRC, nil
	}
	return 0, chk.Err("sec: material type tag %q is incorrect", tag)
}

// Material is one solver-facing material definition: a numeric identifier,
// a constitutive-law kind, and its named parameters.
type Material struct {
	ID   int        // identifier; sequential per generation call
	Kind MatKind    // constitutive-law kind
	Prms dbf.Params // named numeric parameters
}

// Emitter receives the output of a section-generation call. The external
// solver's section builder implements this; Recorder provides a buffered
// in-process implementation.
//
// QuadPatch corners are listed counterclockwise starting at the
// (min y, min z) corner; each entry is {y, z}. CircPatch covers the
// annular sector between radii ri and ro and angles a0 to a1 (degrees,
// counterclockwise from the +y axis), centered at (yc, zc).
type Emitter interface {
	Material(m Material) error
	Fiber(y, z, a float64, mat int) error
	QuadPatch(mat, nIJ, nJK int, corners [4][2]float64) error
	CircPatch(mat, nc, nr int, yc, zc, ri, ro, a0, a1 float64) error
	BeginSection(id int, gj float64) error
	EndSection() error
}
