// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// SteadySource computes the steady pressure of a saturated column without gravity, with
// constant mobility and a constant source s, and prescribed pressures at both ends:
//
//    -d/dz (K・m・dp/dz) = s      zb < z < zt
//    p(zb) = pb    p(zt) = pt
//
//  Solution:
//
//    p(z) = pb + (pt - pb)・(z - zb)/L + s・(z - zb)・(zt - z) / (2・K・m)     L = zt - zb
//
type SteadySource struct {
	K  float64 // permeability
	M  float64 // mobility kr/μ
	S  float64 // source
	Zb float64 // elevation of bottom
	Zt float64 // elevation of top
	Pb float64 // pressure at bottom
	Pt float64 // pressure at top
}

// Init initialises this structure
func (o *SteadySource) Init(K, m, s, zb, zt, pb, pt float64) (err error) {
	if K <= 0 || m <= 0 {
		return chk.Err("SteadySource: permeability and mobility must be positive. K = %g, m = %g", K, m)
	}
	if zt <= zb {
		return chk.Err("SteadySource: zt must be greater than zb. zb = %g, zt = %g", zb, zt)
	}
	o.K, o.M, o.S = K, m, s
	o.Zb, o.Zt = zb, zt
	o.Pb, o.Pt = pb, pt
	return
}

// Calc computes pressure at elevation z
func (o SteadySource) Calc(z float64) float64 {
	L := o.Zt - o.Zb
	return o.Pb + (o.Pt-o.Pb)*(z-o.Zb)/L + o.S*(z-o.Zb)*(o.Zt-z)/(2.0*o.K*o.M)
}

// Flux computes the Darcy flux K・m・dp/dz at elevation z
func (o SteadySource) Flux(z float64) float64 {
	L := o.Zt - o.Zb
	dpdz := (o.Pt-o.Pb)/L + o.S*(o.Zt+o.Zb-2.0*z)/(2.0*o.K*o.M)
	return o.K * o.M * dpdz
}

// Plot plots pressure along height of column
func (o SteadySource) Plot(dirout, fnkey string, np int) {
	Z := utl.LinSpace(o.Zb, o.Zt, np)
	P := make([]float64, np)
	for i, z := range Z {
		P[i] = o.Calc(z)
	}
	plt.Plot(P, Z, "'k-', clip_on=0, label='ana'")
	plt.Gll("$p$", "$z$", "")
	plt.SaveD(dirout, fnkey+".eps")
}
