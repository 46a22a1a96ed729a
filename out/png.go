// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"path/filepath"

	"github.com/cpmech/geertsma/sim"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotProfilePng saves one png figure per group of fields (displacements and stresses)
// along a profile, without the python backend. Non-finite values are skipped.
//  d -- distances of points to the first point of profile
//  Output: filenames of saved figures
func PlotProfilePng(d []float64, res *sim.Results, dirout, fnkey string) (fnames []string, err error) {
	if len(d) != res.Npoints() {
		return nil, chk.Err("number of distances must be equal to the number of points. %d != %d", len(d), res.Npoints())
	}
	var displ, stress []string
	for _, key := range res.Keys {
		if key[0] == 'u' {
			displ = append(displ, key)
		} else {
			stress = append(stress, key)
		}
	}
	groups := []struct {
		suffix, ylabel string
		keys           []string
	}{
		{"_u", "u [m]", displ},
		{"_s", "σ [MPa]", stress},
	}
	for _, g := range groups {
		if len(g.keys) == 0 {
			continue
		}
		p := plot.New()
		p.Title.Text = fnkey
		p.X.Label.Text = "d [m]"
		p.Y.Label.Text = g.ylabel
		var lines []interface{}
		for _, key := range g.keys {
			pts := finitePoints(d, res.Fields[key])
			if len(pts) == 0 {
				continue
			}
			lines = append(lines, key, pts)
		}
		if err = plotutil.AddLines(p, lines...); err != nil {
			return nil, chk.Err("cannot add lines: %v", err)
		}
		fn := filepath.Join(dirout, fnkey+g.suffix+".png")
		if err = p.Save(6*vg.Inch, 4*vg.Inch, fn); err != nil {
			return nil, chk.Err("cannot save %q: %v", fn, err)
		}
		fnames = append(fnames, fn)
	}
	return
}

func finitePoints(d, v []float64) (pts plotter.XYs) {
	pts = make(plotter.XYs, 0, len(d))
	for i := range d {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: d[i], Y: v[i]})
	}
	return
}
