// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// CartesianDispl computes the horizontal components of a radial displacement
// ur acting at (y, x) w.r.t an axis passing through (y0, x0)
//  Note: uy = ux = 0 on the axis
func CartesianDispl(y, x, y0, x0, ur float64) (uy, ux float64) {
	Y, X := y-y0, x-x0
	ρ := math.Sqrt(Y*Y + X*X)
	if ρ == 0 {
		return 0, 0
	}
	return ur * Y / ρ, ur * X / ρ
}

// HorizontalStresses computes the Cartesian horizontal stress components at (y, x) from
// the radial and tangential stresses w.r.t an axis passing through (y0, x0)
//  Note: β = 0 on the axis
func HorizontalStresses(y, x, y0, x0, sr, st float64) (syy, sxx, syx float64) {
	β := math.Atan2(x-x0, y-y0)
	si, co := math.Sin(β), math.Cos(β)
	ss, cc, cs := si*si, co*co, co*si
	syy = cc*sr + ss*st
	sxx = ss*sr + cc*st
	syx = cs * (sr - st)
	return
}
