// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec

import (
	"strconv"

	"github.com/cpmech/gosl/chk"
)

// OutputMode selects the output shape of a generation call
type OutputMode int

// output modes
const (
	Full          OutputMode = iota + 1 // materials + section wrapper + fibers
	NoSection                           // materials + fibers only, appended to an open section
	MaterialsOnly                       // materials only, no geometry
)

// ParseOutputMode resolves the scripting sentinel of the section-id slot:
// a numeric value selects Full with that section id; the sentinels
// "noSection" and "materialsOnly" select the fibers-only and
// materials-only variants.
func ParseOutputMode(tag string) (OutputMode, int, error) {
	if id, err := strconv.Atoi(tag); err == nil {
		if id < 1 {
			return 0, 0, chk.Err("sec: ParseOutputMode: section id must be positive. id=%d is invalid", id)
		}
		return Full, id, nil
	}
	switch tag {
	case "noSection":
		return NoSection, 0, nil
	case "materialsOnly":
		return MaterialsOnly, 0, nil
	}
	return 0, 0, chk.Err("sec: ParseOutputMode: tag %q is incorrect; options are a section id, \"noSection\", or \"materialsOnly\"", tag)
}

// GJMode selects how the torsional stiffness of a section is obtained
type GJMode int

// GJ modes
const (
	GJCalc         GJMode = iota + 1 // computed; composites take the larger of steel and concrete
	GJSteelOnly                      // steel contribution only
	GJConcreteOnly                   // concrete contribution only
	GJNumeric                        // explicit value
)

// GJOption carries the GJ mode and, for GJNumeric, the value. The zero
// value resolves to GJCalc.
type GJOption struct {
	Mode  GJMode
	Value float64
}

// ParseGJ resolves a -GJ option argument
func ParseGJ(tag string) (GJOption, error) {
	if v, err := strconv.ParseFloat(tag, 64); err == nil {
		if v < 0 {
			return GJOption{}, chk.Err("sec: ParseGJ: torsional stiffness must be non-negative. GJ=%g is invalid", v)
		}
		return GJOption{Mode: GJNumeric, Value: v}, nil
	}
	switch tag {
	case "calc":
		return GJOption{Mode: GJCalc}, nil
	case "steelonly":
		return GJOption{Mode: GJSteelOnly}, nil
	case "concreteonly":
		return GJOption{Mode: GJConcreteOnly}, nil
	}
	return GJOption{}, chk.Err("sec: ParseGJ: tag %q is incorrect; options are \"calc\", \"steelonly\", \"concreteonly\", or a numeric value", tag)
}

// resolve applies the zero-value default
func (o GJOption) resolve() GJOption {
	if o.Mode == 0 {
		return GJOption{Mode: GJCalc}
	}
	return o
}

// AddedElastic requests additional elastic stiffness superimposed on the
// section via synthetic point fibers: EA and EI1 (about the strong axis)
// in 2D; EA, EI1, EI2 (about the weak axis), and GJ in 3D.
type AddedElastic struct {
	Use bool
	EA  float64
	EI1 float64
	EI2 float64
	GJ  float64
}

// check validates the requested stiffnesses for the given bending mode
func (o AddedElastic) check(b Bending) error {
	if !o.Use {
		return nil
	}
	if o.EA <= 0 || o.EI1 <= 0 {
		return chk.Err("sec: AddedElastic: EA and EI must be positive. EA=%g, EI=%g is invalid", o.EA, o.EI1)
	}
	if !twoD(b) {
		if o.EI2 <= 0 {
			return chk.Err("sec: AddedElastic: EIy must be positive in 3D. EIy=%g is invalid", o.EI2)
		}
		if o.GJ < 0 {
			return chk.Err("sec: AddedElastic: GJ must be non-negative. GJ=%g is invalid", o.GJ)
		}
	}
	return nil
}
