// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// ViscCte implements a constant viscosity
type ViscCte struct {
	Mu0 float64 // viscosity
}

// ViscExp implements μ(p) = μ0・exp(c・(p - p0))
type ViscExp struct {
	Mu0 float64 // viscosity at p0
	P0  float64 // reference pressure
	Cp  float64 // pressure coefficient
}

// add models to factory
func init() {
	viscosities["cte"] = func() Viscosity { return new(ViscCte) }
	viscosities["exp"] = func() Viscosity { return new(ViscExp) }
}

// Init initialises this structure
func (o *ViscCte) Init(prms fun.Prms) error {
	o.Mu0 = 1
	for _, p := range prms {
		switch p.N {
		case "mu", "mu0":
			o.Mu0 = p.V
		default:
			return chk.Err("cte: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Mu0 <= 0 {
		return chk.Err("cte: viscosity must be positive. mu = %g is invalid\n", o.Mu0)
	}
	return nil
}

// GetPrms gets (an example of) parameters
func (o ViscCte) GetPrms(example bool) fun.Prms {
	if example {
		return fun.Prms{&fun.Prm{N: "mu", V: 1e-6}} // [kPa・s] water
	}
	return fun.Prms{&fun.Prm{N: "mu", V: o.Mu0}}
}

// Mu returns μ and its derivatives
func (o ViscCte) Mu(p float64) (mu, dmu, d2mu float64) {
	return o.Mu0, 0, 0
}

// Init initialises this structure
func (o *ViscExp) Init(prms fun.Prms) error {
	o.Mu0 = 1
	for _, p := range prms {
		switch p.N {
		case "mu", "mu0":
			o.Mu0 = p.V
		case "p0", "P0":
			o.P0 = p.V
		case "c", "cp":
			o.Cp = p.V
		default:
			return chk.Err("exp: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Mu0 <= 0 {
		return chk.Err("exp: viscosity must be positive. mu0 = %g is invalid\n", o.Mu0)
	}
	return nil
}

// GetPrms gets (an example of) parameters
func (o ViscExp) GetPrms(example bool) fun.Prms {
	if example {
		return fun.Prms{
			&fun.Prm{N: "mu0", V: 1.0},
			&fun.Prm{N: "p0", V: 0.0},
			&fun.Prm{N: "c", V: 0.1},
		}
	}
	return fun.Prms{
		&fun.Prm{N: "mu0", V: o.Mu0},
		&fun.Prm{N: "p0", V: o.P0},
		&fun.Prm{N: "c", V: o.Cp},
	}
}

// Mu returns μ and its derivatives
func (o ViscExp) Mu(p float64) (mu, dmu, d2mu float64) {
	mu = o.Mu0 * math.Exp(o.Cp*(p-o.P0))
	return mu, o.Cp * mu, o.Cp * o.Cp * mu
}
