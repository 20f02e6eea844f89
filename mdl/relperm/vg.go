// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relperm

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// VanGen implements Mualem-van Genuchten's relative permeability [1]
//
//   kr(s) = √s・(1 - (1 - s^(1/m))ᵐ)²
//
//  with kr = 0 for s ≤ 0 and kr = 1 for s ≥ 1
type VanGen struct {
	m float64 // exponent; 0 < m < 1
}

// add model to factory
func init() {
	allocators["vg"] = func() Model { return new(VanGen) }
}

// Init initialises model
func (o *VanGen) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "m":
			o.m = p.V
		default:
			return chk.Err("vg: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.m <= 0 || o.m >= 1 {
		return chk.Err("vg: parameter m must satisfy 0 < m < 1. m = %g is invalid\n", o.m)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o VanGen) GetPrms(example bool) fun.Prms {
	if example {
		return []*fun.Prm{&fun.Prm{N: "m", V: 0.5}}
	}
	return []*fun.Prm{&fun.Prm{N: "m", V: o.m}}
}

// Kr returns kr(s)
func (o VanGen) Kr(s float64) float64 {
	kr, _, _ := o.Derivs(s)
	return kr
}

// Derivs returns kr and its derivatives
//  d = 1 - (1 - s^(1/m))ᵐ  =>  kr = √s・d²
func (o VanGen) Derivs(s float64) (kr, dkr, d2kr float64) {
	if s <= 0 {
		return 0, 0, 0
	}
	if s >= 1 {
		return 1, 0, 0
	}
	m := o.m
	a := math.Pow(s, 1.0/m)
	b := 1.0 - a
	d := 1.0 - math.Pow(b, m)
	dd := math.Pow(b, m-1.0) * math.Pow(s, 1.0/m-1.0)
	d2d := (m-1.0)*math.Pow(b, m-2.0)*(-math.Pow(s, 1.0/m-1.0)/m)*math.Pow(s, 1.0/m-1.0) +
		math.Pow(b, m-1.0)*(1.0/m-1.0)*math.Pow(s, 1.0/m-2.0)
	rs := math.Sqrt(s)
	kr = rs * d * d
	dkr = 0.5*d*d/rs + 2.0*rs*d*dd
	d2kr = -0.25*d*d/(s*rs) + 2.0*d*dd/rs + 2.0*rs*(dd*dd+d*d2d)
	return
}
