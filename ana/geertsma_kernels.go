// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Kernel defines the signature of the Geertsma integrals I(q, r, R)
//  q -- vertical distance (|Z| or Z + 2D)
//  r -- distance from the centre of the disk
//  R -- radius of the disk
type Kernel func(q, r, R float64) float64

// EllipModulus computes the parameter of the elliptic integrals
//
//            4 R r
//   m = ─────────────────
//        q² + (r + R)²
//
//  Note: 0 ≤ m ≤ 1; m == 1 only when q == 0 and r == R (rim of the disk)
func EllipModulus(q, r, R float64) float64 {
	return 4.0 * R * r / (q*q + (r+R)*(r+R))
}

// Heaviside computes the step function H(x) with H(0) = 1/2
func Heaviside(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return 0
	}
	return 0.5
}

// Sign returns -1, 0 or +1 according to the sign of x
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// I1 computes the integral
//
//         ∞
//        ⌠
//   I1 = │ J1(αR) J1(αr) exp(-αq) dα
//        ⌡
//       0
func I1(q, r, R float64) float64 {
	m := EllipModulus(q, r, R)
	K, E := EllipK(m), EllipE(m)
	return 2.0 * ((1.0-m/2.0)*K - E) / (math.Pi * math.Sqrt(m*r*R))
}

// I2 computes the integral
//
//         ∞
//        ⌠
//   I2 = │ α J1(αR) J1(αr) exp(-αq) dα
//        ⌡
//       0
//
//  Note: singular when q → 0 and r → R
func I2(q, r, R float64) float64 {
	m := EllipModulus(q, r, R)
	K, E := EllipK(m), EllipE(m)
	rR := math.Sqrt(r * R)
	return q * math.Sqrt(m) * ((1.0-m/2.0)*E/(1.0-m) - K) / (2.0 * math.Pi * rR * rR * rR)
}

// I3 computes the integral
//
//         ∞
//        ⌠
//   I3 = │ J1(αR) J0(αr) exp(-αq) dα
//        ⌡
//       0
//
// with the help of Heuman's lambda function Λ0(β, m). The steps H(r-R) and H(R-r)
// are evaluated with H(0) = 1/2, thus Λ0 cancels out @ r == R.
func I3(q, r, R float64) float64 {
	m := EllipModulus(q, r, R)
	mc := 1.0 - m

	// complete integrals
	K0 := EllipK(m)
	K1, E1 := EllipK(mc), EllipE(mc)

	// incomplete integrals
	β := math.Asin(q / math.Sqrt(q*q+(R-r)*(R-r)))
	K2, E2 := EllipF(β, mc), EllipEinc(β, mc)

	// Jacobi's zeta and Heuman's lambda functions
	Z := E2 - E1*K2/K1
	Λ := K2/K1 + 2.0*K0*Z/math.Pi

	hOut, hIn := Heaviside(r-R), Heaviside(R-r)
	return -q*math.Sqrt(m)*K0/(2.0*math.Pi*R*math.Sqrt(r*R)) + (hOut-hIn)*Λ/(2.0*R) + hIn/R
}

// I4 computes the integral
//
//         ∞
//        ⌠
//   I4 = │ α J1(αR) J0(αr) exp(-αq) dα
//        ⌡
//       0
//
//  Note: singular when q → 0 and r → R
func I4(q, r, R float64) float64 {
	m := EllipModulus(q, r, R)
	K0, E0 := EllipK(m), EllipE(m)
	sm := math.Sqrt(m)
	rR := math.Sqrt(r * R)
	return sm*sm*sm*(R*R-r*r-q*q)*E0/(8.0*math.Pi*rR*rR*rR*R*(1.0-m)) + sm*K0/(2.0*math.Pi*R*rR)
}

// I6 computes the integral
//
//         ∞
//        ⌠
//   I6 = │ α² J1(αR) J0(αr) exp(-αq) dα
//        ⌡
//       0
//
//  Note: singular when q → 0 and r → R
func I6(q, r, R float64) float64 {
	m := EllipModulus(q, r, R)
	K0, E0 := EllipK(m), EllipE(m)
	sm := math.Sqrt(m)
	rR := math.Sqrt(r * R)
	num := 3.0*E0 + m*(R*R-r*r-q*q)*((1.0-m/2.0)*E0/(1.0-m)-K0/4.0)/(r*R)
	return q * sm * sm * sm * num / (8.0 * math.Pi * rR * rR * rR * R * (1.0 - m))
}

// EvalKernel evaluates kernel at all (q[i], r[i]) pairs with a fixed radius R
func EvalKernel(kernel Kernel, q, r []float64, R float64) (res []float64) {
	if len(q) != len(r) {
		chk.Panic("EvalKernel: q and r must have the same length. %d != %d", len(q), len(r))
	}
	res = make([]float64, len(q))
	for i := range q {
		res[i] = kernel(q[i], r[i], R)
	}
	return
}
