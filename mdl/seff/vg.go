// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seff

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// VanGen implements van Genuchten's effective saturation
//
//   x = -α・p   (suction; p < 0 is unsaturated)
//   n = 1 / (1 - m)
//   seff(p) = (1 + xⁿ)⁻ᵐ  if p < 0
//           = 1          otherwise
//
//  Note: the same curve is used for all van Genuchten variants; they differ on how p
//  is obtained from the coupled variables:
//    vg1      => p = v[iw]
//    vg2water => p = v[iw] - v[ig]     (i.e. -pc)
//    vg2gas   => 1 - seff of vg2water
type VanGen struct {

	// parameters
	α float64 // inverse of air-entry pressure-like parameter
	m float64 // exponent m; 0 < m < 1

	// derived
	n float64 // n = 1/(1-m)

	// variables
	iw  int  // index of water pressure
	ig  int  // index of gas pressure (two-phase only)
	two bool // two-phase model
	gas bool // returns gas saturation instead of water saturation
}

// add model to factory
func init() {
	allocators["vg1"] = func() Model { return new(VanGen) }
	allocators["vg2water"] = func() Model { return &VanGen{two: true} }
	allocators["vg2gas"] = func() Model { return &VanGen{two: true, gas: true} }
}

// Init initialises model
func (o *VanGen) Init(prms fun.Prms) (err error) {
	o.iw, o.ig = 0, 1
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "al", "alp":
			o.α = p.V
		case "m":
			o.m = p.V
		case "iw":
			if o.iw, err = varIndex(p.N, p.V); err != nil {
				return
			}
		case "ig":
			if o.ig, err = varIndex(p.N, p.V); err != nil {
				return
			}
		default:
			return chk.Err("vg: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.α <= 0 {
		return chk.Err("vg: parameter al must be positive. al = %g is invalid\n", o.α)
	}
	if o.m <= 0 || o.m >= 1 {
		return chk.Err("vg: parameter m must satisfy 0 < m < 1. m = %g is invalid\n", o.m)
	}
	if o.two && o.iw == o.ig {
		return chk.Err("vg: indices of water and gas pressures must be different. iw = ig = %d\n", o.iw)
	}
	o.n = 1.0 / (1.0 - o.m)
	return
}

// GetPrms gets (an example) of parameters
func (o VanGen) GetPrms(example bool) fun.Prms {
	if example {
		prms := []*fun.Prm{
			&fun.Prm{N: "al", V: 1.0},
			&fun.Prm{N: "m", V: 0.5},
			&fun.Prm{N: "iw", V: 0},
		}
		if o.two {
			prms = append(prms, &fun.Prm{N: "ig", V: 1})
		}
		return prms
	}
	prms := []*fun.Prm{
		&fun.Prm{N: "al", V: o.α},
		&fun.Prm{N: "m", V: o.m},
		&fun.Prm{N: "iw", V: float64(o.iw)},
	}
	if o.two {
		prms = append(prms, &fun.Prm{N: "ig", V: float64(o.ig)})
	}
	return prms
}

// Vars returns the indices of the variables this model depends on
func (o VanGen) Vars() []int {
	if o.two {
		return []int{o.iw, o.ig}
	}
	return []int{o.iw}
}

// Seff computes seff(p)
func (o VanGen) Seff(p []float64) float64 {
	s, _, _ := o.curve(o.pres(p))
	if o.gas {
		return 1.0 - s
	}
	return s
}

// Dseff computes res[j] = ∂seff/∂p_j
func (o VanGen) Dseff(res, p []float64) {
	zero(res)
	_, ds, _ := o.curve(o.pres(p))
	if o.gas {
		ds = -ds
	}
	res[o.iw] = ds
	if o.two {
		res[o.ig] = -ds
	}
}

// D2seff computes res[j][k] = ∂²seff/∂p_j∂p_k
func (o VanGen) D2seff(res [][]float64, p []float64) {
	zero2(res)
	_, _, d2s := o.curve(o.pres(p))
	if o.gas {
		d2s = -d2s
	}
	res[o.iw][o.iw] = d2s
	if o.two {
		res[o.iw][o.ig] = -d2s
		res[o.ig][o.iw] = -d2s
		res[o.ig][o.ig] = d2s
	}
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// pres returns the pressure argument of the curve
func (o VanGen) pres(p []float64) float64 {
	if o.two {
		return p[o.iw] - p[o.ig]
	}
	return p[o.iw]
}

// curve computes s = (1 + xⁿ)⁻ᵐ and its first and second derivatives w.r.t p
func (o VanGen) curve(p float64) (s, ds, d2s float64) {
	if p >= 0 {
		return 1, 0, 0
	}
	x := -o.α * p
	xn := math.Pow(x, o.n)
	a := 1.0 + xn
	s = math.Pow(a, -o.m)
	ds = o.m * o.n * o.α * math.Pow(x, o.n-1.0) * math.Pow(a, -o.m-1.0)
	d2s = -o.m * o.n * o.α * o.α * ((o.n-1.0)*math.Pow(x, o.n-2.0)*math.Pow(a, -o.m-1.0) - (o.m+1.0)*o.n*math.Pow(x, 2.0*o.n-2.0)*math.Pow(a, -o.m-2.0))
	return
}
