// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// constants for InvMap
var (
	INVMAP_NIT = 25      // maximum number of iterations
	INVMAP_TOL = 1.0e-13 // tolerance
)

// InvMap computes the natural coordinate r corresponding to the real coordinate y
//  x -- [nverts] coordinates of vertices
//  Note: S, G, H and J are updated at r
func (o *Shape) InvMap(y float64, x []float64) (r float64, err error) {
	ip := Ipoint{0, 0}
	for it := 0; it < INVMAP_NIT; it++ {
		ip[0] = r
		err = o.CalcAtIp(x, ip, true)
		if err != nil {
			return
		}
		f := -y
		for m := 0; m < o.Nverts; m++ {
			f += o.S[m] * x[m]
		}
		if math.Abs(f) < INVMAP_TOL {
			return
		}
		r -= f / o.J
	}
	err = chk.Err("InvMap did not converge after %d iterations. y = %g", INVMAP_NIT, y)
	return
}

// Integ integrates f(x) over an element with the default integration points
//  x -- [nverts] coordinates of vertices
func (o *Shape) Integ(x []float64, f func(y float64) float64) (res float64, err error) {
	for _, ip := range o.Ips {
		err = o.CalcAtIp(x, ip, true)
		if err != nil {
			return
		}
		res += f(o.IpRealCoord(x, ip)) * o.J * ip[1]
	}
	return
}
