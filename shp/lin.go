// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "math"

// register shapes
func init() {

	// lin2
	factory["lin2"] = &Shape{
		Type:      "lin2",
		Func:      Lin2,
		Nverts:    2,
		NatCoords: []float64{-1, 1},
		Ips:       GaussLegendre(2),
	}

	// lin3
	factory["lin3"] = &Shape{
		Type:      "lin3",
		Func:      Lin3,
		Nverts:    3,
		NatCoords: []float64{-1, 1, 0},
		Ips:       GaussLegendre(3),
	}

	for _, s := range factory {
		s.initScratchpad()
	}
}

// Lin2 calculates the shape functions (S) and derivatives of lin2 elements
//
//   -1     0    +1
//    0-----------1-->r
func Lin2(S, dSdR, d2SdR []float64, r float64, derivs bool) {
	S[0] = 0.5 * (1.0 - r)
	S[1] = 0.5 * (1.0 + r)
	if !derivs {
		return
	}
	dSdR[0] = -0.5
	dSdR[1] = 0.5
	d2SdR[0] = 0
	d2SdR[1] = 0
}

// Lin3 calculates the shape functions (S) and derivatives of lin3 elements
//
//   -1     0    +1
//    0-----2-----1-->r
func Lin3(S, dSdR, d2SdR []float64, r float64, derivs bool) {
	S[0] = 0.5 * (r*r - r)
	S[1] = 0.5 * (r*r + r)
	S[2] = 1.0 - r*r
	if !derivs {
		return
	}
	dSdR[0] = r - 0.5
	dSdR[1] = r + 0.5
	dSdR[2] = -2.0 * r
	d2SdR[0] = 1
	d2SdR[1] = 1
	d2SdR[2] = -2
}

// GaussLegendre returns n Gauss-Legendre integration points (n = 1, 2 or 3)
func GaussLegendre(n int) []Ipoint {
	switch n {
	case 1:
		return []Ipoint{{0, 2}}
	case 2:
		a := 1.0 / math.Sqrt(3.0)
		return []Ipoint{{-a, 1}, {a, 1}}
	}
	a := math.Sqrt(3.0 / 5.0)
	return []Ipoint{{-a, 5.0 / 9.0}, {0, 8.0 / 9.0}, {a, 5.0 / 9.0}}
}
