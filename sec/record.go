// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec

import "github.com/cpmech/gosl/chk"

// FiberRec is one emitted fiber
type FiberRec struct {
	Y   float64 // y-coordinate
	Z   float64 // z-coordinate
	A   float64 // signed area
	Mat int     // material identifier
}

// QuadRec is one emitted quadrilateral patch request
type QuadRec struct {
	Mat      int           // material identifier
	NIJ, NJK int           // subdivisions along the first and second edge
	Corners  [4][2]float64 // {y,z} corners, counterclockwise
}

// CircRec is one emitted circular/annular patch request
type CircRec struct {
	Mat    int     // material identifier
	Nc, Nr int     // circumferential and radial subdivisions
	Yc, Zc float64 // center
	Ri, Ro float64 // inner and outer radius
	A0, A1 float64 // start and end angle [deg]
}

// SectionRec is one emitted section with its nested geometry
type SectionRec struct {
	ID     int
	GJ     float64
	Fibers []FiberRec
	Quads  []QuadRec
	Circs  []CircRec
}

// Recorder is a buffered Emitter. Geometry emitted outside any section
// (the fibers-only output mode) is collected in the Loose* fields.
// CommitTo replays everything into another Emitter; because composers
// stage into a fresh Recorder and commit only on success, a failed
// generation call leaves the destination untouched.
type Recorder struct {
	Mats       []Material
	Secs       []SectionRec
	LooseFibs  []FiberRec
	LooseQuads []QuadRec
	LooseCircs []CircRec
	open       bool
}

// NewRecorder returns a new empty Recorder
func NewRecorder() *Recorder {
	return new(Recorder)
}

// Material records a material definition
func (o *Recorder) Material(m Material) error {
	for _, prev := range o.Mats {
		if prev.ID == m.ID {
			return chk.Err("sec: Recorder: material id %d is already defined", m.ID)
		}
	}
	o.Mats = append(o.Mats, m)
	return nil
}

// Fiber records one fiber
func (o *Recorder) Fiber(y, z, a float64, mat int) error {
	f := FiberRec{Y: y, Z: z, A: a, Mat: mat}
	if o.open {
		s := &o.Secs[len(o.Secs)-1]
		s.Fibers = append(s.Fibers, f)
		return nil
	}
	o.LooseFibs = append(o.LooseFibs, f)
	return nil
}

// QuadPatch records one quadrilateral patch
func (o *Recorder) QuadPatch(mat, nIJ, nJK int, corners [4][2]float64) error {
	q := QuadRec{Mat: mat, NIJ: nIJ, NJK: nJK, Corners: corners}
	if o.open {
		s := &o.Secs[len(o.Secs)-1]
		s.Quads = append(s.Quads, q)
		return nil
	}
	o.LooseQuads = append(o.LooseQuads, q)
	return nil
}

// CircPatch records one circular patch
func (o *Recorder) CircPatch(mat, nc, nr int, yc, zc, ri, ro, a0, a1 float64) error {
	c := CircRec{Mat: mat, Nc: nc, Nr: nr, Yc: yc, Zc: zc, Ri: ri, Ro: ro, A0: a0, A1: a1}
	if o.open {
		s := &o.Secs[len(o.Secs)-1]
		s.Circs = append(s.Circs, c)
		return nil
	}
	o.LooseCircs = append(o.LooseCircs, c)
	return nil
}

// BeginSection opens a new section scope
func (o *Recorder) BeginSection(id int, gj float64) error {
	if o.open {
		return chk.Err("sec: Recorder: section %d is still open", o.Secs[len(o.Secs)-1].ID)
	}
	o.Secs = append(o.Secs, SectionRec{ID: id, GJ: gj})
	o.open = true
	return nil
}

// EndSection closes the current section scope
func (o *Recorder) EndSection() error {
	if !o.open {
		return chk.Err("sec: Recorder: no section is open")
	}
	o.open = false
	return nil
}

// CommitTo replays the recorded calls, in order, into dst
func (o *Recorder) CommitTo(dst Emitter) (err error) {
	if o.open {
		return chk.Err("sec: Recorder: cannot commit with an open section")
	}
	for _, m := range o.Mats {
		if err = dst.Material(m); err != nil {
			return
		}
	}
	for _, f := range o.LooseFibs {
		if err = dst.Fiber(f.Y, f.Z, f.A, f.Mat); err != nil {
			return
		}
	}
	for _, q := range o.LooseQuads {
		if err = dst.QuadPatch(q.Mat, q.NIJ, q.NJK, q.Corners); err != nil {
			return
		}
	}
	for _, c := range o.LooseCircs {
		if err = dst.CircPatch(c.Mat, c.Nc, c.Nr, c.Yc, c.Zc, c.Ri, c.Ro, c.A0, c.A1); err != nil {
			return
		}
	}
	for _, s := range o.Secs {
		if err = dst.BeginSection(s.ID, s.GJ); err != nil {
			return
		}
		for _, f := range s.Fibers {
			if err = dst.Fiber(f.Y, f.Z, f.A, f.Mat); err != nil {
				return
			}
		}
		for _, q := range s.Quads {
			if err = dst.QuadPatch(q.Mat, q.NIJ, q.NJK, q.Corners); err != nil {
				return
			}
		}
		for _, c := range s.Circs {
			if err = dst.CircPatch(c.Mat, c.Nc, c.Nr, c.Yc, c.Zc, c.Ri, c.Ro, c.A0, c.A1); err != nil {
				return
			}
		}
		if err = dst.EndSection(); err != nil {
			return
		}
	}
	return
}

// FiberArea sums the recorded fiber areas of one material, everywhere
func (o *Recorder) FiberArea(mat int) (a float64) {
	for _, f := range o.LooseFibs {
		if f.Mat == mat {
			a += f.A
		}
	}
	for _, s := range o.Secs {
		for _, f := range s.Fibers {
			if f.Mat == mat {
				a += f.A
			}
		}
	}
	return
}

// TotalFiberArea sums all recorded fiber areas
func (o *Recorder) TotalFiberArea() (a float64) {
	for _, f := range o.LooseFibs {
		a += f.A
	}
	for _, s := range o.Secs {
		for _, f := range s.Fibers {
			a += f.A
		}
	}
	return
}

// staged runs fn against a fresh Recorder and commits to dst only if fn
// succeeds. This is the atomicity device of every composer.
func staged(dst Emitter, fn func(Emitter) error) error {
	rec := NewRecorder()
	if err := fn(rec); err != nil {
		return err
	}
	return rec.CommitTo(dst)
}
