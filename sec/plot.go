// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// plotPalette cycles per material id
var plotPalette = []string{"b", "g", "r", "c", "m", "y", "k", "orange"}

// PlotFibers draws the fiber layout of a recorded generation call: one
// marker per point fiber (negative-area carve fibers drawn hollow) plus
// the outlines of quadrilateral and circular patches. The horizontal
// axis is z and the vertical axis is y, so strong-axis bending reads as
// rotation about the horizontal.
func PlotFibers(rec *Recorder) {
	fibs := append([]FiberRec{}, rec.LooseFibs...)
	quads := append([]QuadRec{}, rec.LooseQuads...)
	circs := append([]CircRec{}, rec.LooseCircs...)
	for _, s := range rec.Secs {
		fibs = append(fibs, s.Fibers...)
		quads = append(quads, s.Quads...)
		circs = append(circs, s.Circs...)
	}

	// point fibers grouped by material
	byMat := map[int][]FiberRec{}
	for _, f := range fibs {
		byMat[f.Mat] = append(byMat[f.Mat], f)
	}
	for mat, group := range byMat {
		clr := plotPalette[mat%len(plotPalette)]
		var ys, zs, yh, zh []float64
		for _, f := range group {
			if f.A < 0 {
				yh = append(yh, f.Y)
				zh = append(zh, f.Z)
				continue
			}
			ys = append(ys, f.Y)
			zs = append(zs, f.Z)
		}
		if len(ys) > 0 {
			plt.Plot(zs, ys, &plt.A{C: clr, M: "o", Ls: "none", L: io.Sf("mat %d", mat), NoClip: true})
		}
		if len(yh) > 0 {
			plt.Plot(zh, yh, &plt.A{C: clr, M: "o", Ls: "none", Void: true, NoClip: true})
		}
	}

	// patch outlines
	for _, q := range quads {
		var ys, zs []float64
		for i := 0; i < 5; i++ {
			c := q.Corners[i%4]
			ys = append(ys, c[0])
			zs = append(zs, c[1])
		}
		clr := plotPalette[q.Mat%len(plotPalette)]
		plt.Plot(zs, ys, &plt.A{C: clr, NoClip: true})
	}
	for _, c := range circs {
		clr := plotPalette[c.Mat%len(plotPalette)]
		plotArc(c.Yc, c.Zc, c.Ro, c.A0, c.A1, clr)
		if c.Ri > 0 {
			plotArc(c.Yc, c.Zc, c.Ri, c.A0, c.A1, clr)
		}
	}
}

// plotArc draws one arc; angles in degrees counterclockwise from +y
func plotArc(yc, zc, r, a0, a1 float64, clr string) {
	A := utl.LinSpace(a0*math.Pi/180.0, a1*math.Pi/180.0, 61)
	ys := make([]float64, len(A))
	zs := make([]float64, len(A))
	for i, a := range A {
		ys[i] = yc + r*math.Cos(a)
		zs[i] = zc + r*math.Sin(a)
	}
	plt.Plot(zs, ys, &plt.A{C: clr, NoClip: true})
}

// PlotEnd finishes the figure and shows it, if show==true; otherwise the
// figure is saved to dirout/fnkey.png
func PlotEnd(show bool, dirout, fnkey string) (err error) {
	plt.Equal()
	plt.Gll("$z$", "$y$", nil)
	if show {
		plt.Show()
		return nil
	}
	plt.Save(dirout, fnkey)
	return nil
}
