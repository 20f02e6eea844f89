// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seff

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Lin implements a linear effective saturation: seff(p) := a + b・p[ivar]
//  Note: with clip > 0, seff is limited to [0, 1] and the derivatives vanish outside
type Lin struct {

	// parameters
	a    float64 // intercept
	b    float64 // slope
	ivar int     // index of variable
	clip bool    // limit seff to [0, 1]
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(Lin) }
}

// Init initialises model
func (o *Lin) Init(prms fun.Prms) (err error) {
	o.b = 1.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "a":
			o.a = p.V
		case "b":
			o.b = p.V
		case "ivar":
			if o.ivar, err = varIndex(p.N, p.V); err != nil {
				return
			}
		case "clip":
			o.clip = p.V > 0
		default:
			return chk.Err("lin: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Lin) GetPrms(example bool) fun.Prms {
	if example {
		return []*fun.Prm{
			&fun.Prm{N: "a", V: 0},
			&fun.Prm{N: "b", V: 1},
			&fun.Prm{N: "ivar", V: 0},
			&fun.Prm{N: "clip", V: 0},
		}
	}
	var clip float64
	if o.clip {
		clip = 1
	}
	return []*fun.Prm{
		&fun.Prm{N: "a", V: o.a},
		&fun.Prm{N: "b", V: o.b},
		&fun.Prm{N: "ivar", V: float64(o.ivar)},
		&fun.Prm{N: "clip", V: clip},
	}
}

// Vars returns the indices of the variables this model depends on
func (o Lin) Vars() []int {
	return []int{o.ivar}
}

// Seff computes seff(p)
func (o Lin) Seff(p []float64) float64 {
	s := o.a + o.b*p[o.ivar]
	if o.clip {
		if s < 0 {
			return 0
		}
		if s > 1 {
			return 1
		}
	}
	return s
}

// Dseff computes res[j] = ∂seff/∂p_j
func (o Lin) Dseff(res, p []float64) {
	zero(res)
	if o.clip {
		s := o.a + o.b*p[o.ivar]
		if s < 0 || s > 1 {
			return
		}
	}
	res[o.ivar] = o.b
}

// D2seff computes res[j][k] = ∂²seff/∂p_j∂p_k
func (o Lin) D2seff(res [][]float64, p []float64) {
	zero2(res)
}
