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

// Unity implements kr(s) = 1
type Unity struct{}

// Power implements kr(s) = (n+1)・sⁿ - n・sⁿ⁺¹ with kr = 0 for s ≤ 0 and kr = 1 for s ≥ 1
type Power struct {
	n float64 // exponent; n ≥ 2 gives continuous second derivatives at s = 0
}

// Corey implements kr(s) = sⁿ with kr = 0 for s ≤ 0 and kr = 1 for s ≥ 1
type Corey struct {
	n float64 // exponent
}

// add models to factory
func init() {
	allocators["unity"] = func() Model { return new(Unity) }
	allocators["power"] = func() Model { return new(Power) }
	allocators["corey"] = func() Model { return new(Corey) }
}

// Unity //////////////////////////////////////////////////////////////////////////////////////////

// Init initialises model
func (o *Unity) Init(prms fun.Prms) error {
	if len(prms) > 0 {
		return chk.Err("unity: model does not have parameters. %q is incorrect\n", prms[0].N)
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o Unity) GetPrms(example bool) fun.Prms { return nil }

// Kr returns kr(s)
func (o Unity) Kr(s float64) float64 { return 1 }

// Derivs returns kr and its derivatives
func (o Unity) Derivs(s float64) (kr, dkr, d2kr float64) { return 1, 0, 0 }

// Power //////////////////////////////////////////////////////////////////////////////////////////

// Init initialises model
func (o *Power) Init(prms fun.Prms) (err error) {
	o.n = 2
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "n":
			o.n = p.V
		default:
			return chk.Err("power: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.n < 1 {
		return chk.Err("power: exponent n must be greater than or equal to 1. n = %g is invalid\n", o.n)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Power) GetPrms(example bool) fun.Prms {
	if example {
		return []*fun.Prm{&fun.Prm{N: "n", V: 2}}
	}
	return []*fun.Prm{&fun.Prm{N: "n", V: o.n}}
}

// Kr returns kr(s)
func (o Power) Kr(s float64) float64 {
	kr, _, _ := o.Derivs(s)
	return kr
}

// Derivs returns kr and its derivatives
func (o Power) Derivs(s float64) (kr, dkr, d2kr float64) {
	if s <= 0 {
		return 0, 0, 0
	}
	if s >= 1 {
		return 1, 0, 0
	}
	n := o.n
	sn := math.Pow(s, n)
	kr = (n+1.0)*sn - n*sn*s
	dkr = n * (n + 1.0) * (math.Pow(s, n-1.0) - sn)
	d2kr = n * (n + 1.0) * ((n-1.0)*math.Pow(s, n-2.0) - n*math.Pow(s, n-1.0))
	return
}

// Corey //////////////////////////////////////////////////////////////////////////////////////////

// Init initialises model
func (o *Corey) Init(prms fun.Prms) (err error) {
	o.n = 3
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "n":
			o.n = p.V
		default:
			return chk.Err("corey: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.n < 1 {
		return chk.Err("corey: exponent n must be greater than or equal to 1. n = %g is invalid\n", o.n)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Corey) GetPrms(example bool) fun.Prms {
	if example {
		return []*fun.Prm{&fun.Prm{N: "n", V: 3}}
	}
	return []*fun.Prm{&fun.Prm{N: "n", V: o.n}}
}

// Kr returns kr(s)
func (o Corey) Kr(s float64) float64 {
	kr, _, _ := o.Derivs(s)
	return kr
}

// Derivs returns kr and its derivatives
func (o Corey) Derivs(s float64) (kr, dkr, d2kr float64) {
	if s <= 0 {
		return 0, 0, 0
	}
	if s >= 1 {
		return 1, 0, 0
	}
	kr = math.Pow(s, o.n)
	dkr = o.n * math.Pow(s, o.n-1.0)
	d2kr = o.n * (o.n - 1.0) * math.Pow(s, o.n-2.0)
	return
}
