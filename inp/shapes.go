// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the catalog of standard shape dimensions read
// from JSON files
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/fibsec/sec"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Shape holds the catalog dimensions of one standard shape
type Shape struct {

	// input
	Name string  `json:"name"` // designation; e.g. "W14X90"
	Kind string  `json:"kind"` // kind of shape; e.g. "wf", "recthss", "roundhss"
	D    float64 `json:"d"`    // depth or outer diameter
	Tw   float64 `json:"tw"`   // web thickness (wf)
	Bf   float64 `json:"bf"`   // flange width (wf)
	Tf   float64 `json:"tf"`   // flange thickness (wf)
	K    float64 `json:"k"`    // fillet distance from flange face (wf)
	B    float64 `json:"b"`    // outer width (recthss)
	T    float64 `json:"t"`    // wall thickness (recthss, roundhss)
}

// ShapesData holds a set of shapes
type ShapesData []*Shape

// ShapeDb implements a database of standard shapes
type ShapeDb struct {

	// input
	Shapes ShapesData `json:"shapes"` // all shapes

	// derived
	WFs       map[string]*Shape // subset with shapes: wide flange
	RectHSSs  map[string]*Shape // subset with shapes: rectangular hollow
	RoundHSSs map[string]*Shape // subset with shapes: round hollow
}

// ReadShapes reads all shape data from a JSON catalog file
func ReadShapes(dir, fn string) (sdb *ShapeDb, err error) {

	// new database
	sdb = new(ShapeDb)

	// read file
	b := io.ReadFile(filepath.Join(dir, fn))

	// decode
	err = json.Unmarshal(b, sdb)
	if err != nil {
		return
	}

	// subsets
	sdb.WFs = make(map[string]*Shape)
	sdb.RectHSSs = make(map[string]*Shape)
	sdb.RoundHSSs = make(map[string]*Shape)
	for _, s := range sdb.Shapes {
		switch s.Kind {
		case "wf":
			if s.D <= 0 || s.Tw <= 0 || s.Bf <= 0 || s.Tf <= 0 {
				err = chk.Err("wide flange shape %q needs positive d, tw, bf, and tf", s.Name)
				return
			}
			sdb.WFs[s.Name] = s
			continue
		case "recthss":
			if s.D <= 0 || s.B <= 0 || s.T <= 0 {
				err = chk.Err("rectangular hollow shape %q needs positive d, b, and t", s.Name)
				return
			}
			sdb.RectHSSs[s.Name] = s
			continue
		case "roundhss":
			if s.D <= 0 || s.T <= 0 {
				err = chk.Err("round hollow shape %q needs positive d and t", s.Name)
				return
			}
			sdb.RoundHSSs[s.Name] = s
			continue
		default:
			err = chk.Err("shape kind %q is incorrect; options are \"wf\", \"recthss\", and \"roundhss\"", s.Kind)
			return
		}
	}
	return
}

// Get returns a shape
//  Note: returns nil if not found
func (o ShapeDb) Get(name string) *Shape {
	for _, s := range o.Shapes {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// WF builds a wide-flange composer from catalog dimensions
func (o *Shape) WF() (*sec.WF, error) {
	if o.Kind != "wf" {
		return nil, chk.Err("shape %q has kind %q, not \"wf\"", o.Name, o.Kind)
	}
	return &sec.WF{D: o.D, Tw: o.Tw, Bf: o.Bf, Tf: o.Tf, Fillet: o.K}, nil
}

// RectHSS builds a rectangular hollow composer from catalog dimensions
func (o *Shape) RectHSS() (*sec.RectHSS, error) {
	if o.Kind != "recthss" {
		return nil, chk.Err("shape %q has kind %q, not \"recthss\"", o.Name, o.Kind)
	}
	return &sec.RectHSS{D: o.D, B: o.B, T: o.T}, nil
}

// RoundHSS builds a round hollow composer from catalog dimensions
func (o *Shape) RoundHSS() (*sec.RoundHSS, error) {
	if o.Kind != "roundhss" {
		return nil, chk.Err("shape %q has kind %q, not \"roundhss\"", o.Name, o.Kind)
	}
	return &sec.RoundHSS{D: o.D, T: o.T}, nil
}

// String prints one shape
func (o *Shape) String() string {
	return io.Sf("    {\"name\":%q, \"kind\":%q, \"d\":%g, \"tw\":%g, \"bf\":%g, \"tf\":%g, \"k\":%g, \"b\":%g, \"t\":%g}",
		o.Name, o.Kind, o.D, o.Tw, o.Bf, o.Tf, o.K, o.B, o.T)
}

// String prints shapes
func (o ShapesData) String() string {
	l := "  \"shapes\" : [\n"
	for i, s := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", s)
	}
	l += "\n  ]"
	return l
}

// String outputs all shapes
func (o ShapeDb) String() string {
	return io.Sf("{\n%v\n}", o.Shapes)
}
