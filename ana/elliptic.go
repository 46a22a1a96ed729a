// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// The elliptic integrals below use the parameter m = k² (not the modulus k):
//
//                    φ
//                   ⌠          dt
//       F(φ | m) =  │  ___________________
//                   │     _______________
//                   ⌡   \╱ 1 - m sin²(t)
//                  0
//
//                    φ
//                   ⌠     _______________
//       E(φ | m) =  │   \╱ 1 - m sin²(t)  dt
//                   ⌡
//                  0
//
//   K(m) = F(π/2 | m)   and   E(m) = E(π/2 | m)

// EllipK computes the complete elliptic integral of the first kind K(m)
//  Note: returns +Inf @ m = 1 and NaN for m outside [0,1]
func EllipK(m float64) float64 {
	if m == 1 {
		return math.Inf(1)
	}
	return mathext.CompleteK(m)
}

// EllipE computes the complete elliptic integral of the second kind E(m)
func EllipE(m float64) float64 {
	if m == 1 {
		return 1
	}
	return mathext.CompleteE(m)
}

// EllipF computes the incomplete elliptic integral of the first kind F(φ|m) for 0 ≤ φ ≤ π/2
func EllipF(φ, m float64) float64 {
	if φ == 0 {
		return 0
	}
	if m == 1 && φ == math.Pi/2 {
		return math.Inf(1)
	}
	return mathext.EllipticF(φ, m)
}

// EllipEinc computes the incomplete elliptic integral of the second kind E(φ|m) for 0 ≤ φ ≤ π/2
func EllipEinc(φ, m float64) float64 {
	if φ == 0 {
		return 0
	}
	if m == 1 {
		return math.Sin(φ)
	}
	return mathext.EllipticE(φ, m)
}
