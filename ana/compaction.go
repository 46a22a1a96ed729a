// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

// G computes the shear modulus
//  Input:
//   poisson -- Poisson's coefficient ν
//   young   -- Young's modulus E [MPa]
//  Output:
//   G = E / (2 (1 + ν))  [MPa]
func G(poisson, young float64) float64 {
	return young / (2.0 * (1.0 + poisson))
}

// Cm computes the uniaxial compaction coefficient of the reservoir rock
//
//          (1 + ν) (1 - 2ν)
//   Cm = ────────────────────   [1/MPa]
//            E (1 - ν)
//
//  Note: Cm = 1 / M where M is the P-wave (oedometric) modulus
func Cm(poisson, young float64) float64 {
	return (1.0 + poisson) * (1.0 - 2.0*poisson) / (young * (1.0 - poisson))
}
