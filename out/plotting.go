// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/geertsma/sim"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
)

// PlotProfile plots displacements and, if available, stresses along a profile
//  d      -- distances of points to the first point of profile
//  dirout -- directory to save figure
//  fnkey  -- filename key of figure
func PlotProfile(d []float64, res *sim.Results, dirout, fnkey string) {
	if len(d) != res.Npoints() {
		chk.Panic("number of distances must be equal to the number of points. %d != %d", len(d), res.Npoints())
	}
	var displ, stress []string
	for _, key := range res.Keys {
		if key[0] == 'u' {
			displ = append(displ, key)
		} else {
			stress = append(stress, key)
		}
	}
	nrow := 1
	if len(stress) > 0 {
		nrow = 2
	}
	plt.Reset(false, nil)
	plt.Subplot(nrow, 1, 1)
	for _, key := range displ {
		plt.Plot(d, res.Fields[key], GetStyle(key))
	}
	plt.Gll(GetTexLabel("d", "m"), GetTexLabel("u", "m"), nil)
	if nrow == 2 {
		plt.Subplot(nrow, 1, 2)
		for _, key := range stress {
			plt.Plot(d, res.Fields[key], GetStyle(key))
		}
		plt.Gll(GetTexLabel("d", "m"), GetTexLabel("\\sigma", "MPa"), nil)
	}
	plt.Save(dirout, fnkey)
}
