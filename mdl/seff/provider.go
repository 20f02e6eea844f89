// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seff

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Provider holds one effective saturation model per phase of an n-phase system
//  Seff   => s[i]       = seff_i(p)
//  Dseff  => ds[i][j]   = ∂seff_i/∂p_j
//  D2seff => d2s[i][j][k] = ∂²seff_i/∂p_j∂p_k
type Provider struct {
	N      int     // number of phases == number of pressure-like variables
	Models []Model // [N] models
}

// NewProvider allocates and checks a new provider
func NewProvider(n int, models ...Model) (o *Provider, err error) {
	o = new(Provider)
	err = o.Init(n, models)
	if err != nil {
		return nil, err
	}
	return
}

// Init initialises provider
func (o *Provider) Init(n int, models []Model) (err error) {
	if n < 1 {
		return chk.Err("number of phases must be at least 1. n = %d is invalid", n)
	}
	if len(models) != n {
		return chk.Err("number of effective saturation models (%d) must be equal to the number of phases (%d)", len(models), n)
	}
	for i, m := range models {
		if m == nil {
			return chk.Err("effective saturation model of phase %d is missing", i)
		}
		for _, k := range m.Vars() {
			if err = CheckIndex("seff variable index", k, n); err != nil {
				return chk.Err("phase %d: %v", i, err)
			}
		}
	}
	o.N = n
	o.Models = models
	return
}

// AllocProvider allocates and initialises models by name
//  names -- [n] names of models
//  prms  -- [n] parameters
func AllocProvider(names []string, prms []fun.Prms) (o *Provider, err error) {
	if len(names) != len(prms) {
		return nil, chk.Err("number of model names (%d) and parameter sets (%d) must be equal", len(names), len(prms))
	}
	models := make([]Model, len(names))
	for i, name := range names {
		models[i], err = New(name)
		if err != nil {
			return
		}
		err = models[i].Init(prms[i])
		if err != nil {
			return nil, chk.Err("cannot initialise %q model of phase %d:\n%v", name, i, err)
		}
	}
	return NewProvider(len(names), models...)
}

// Seff returns s[i] = seff_i(p)
func (o Provider) Seff(p []float64) (s []float64) {
	s = make([]float64, o.N)
	o.SeffInto(s, p)
	return
}

// Dseff returns ds[i][j] = ∂seff_i/∂p_j
func (o Provider) Dseff(p []float64) (ds [][]float64) {
	ds = la.MatAlloc(o.N, o.N)
	o.DseffInto(ds, p)
	return
}

// D2seff returns d2s[i][j][k] = ∂²seff_i/∂p_j∂p_k
func (o Provider) D2seff(p []float64) (d2s [][][]float64) {
	d2s = utl.Deep3alloc(o.N, o.N, o.N)
	o.D2seffInto(d2s, p)
	return
}

// SeffInto computes s[i] = seff_i(p) into existent slice
func (o Provider) SeffInto(s, p []float64) {
	for i, m := range o.Models {
		s[i] = m.Seff(p)
	}
}

// DseffInto computes ds[i][j] = ∂seff_i/∂p_j into existent matrix
func (o Provider) DseffInto(ds [][]float64, p []float64) {
	for i, m := range o.Models {
		m.Dseff(ds[i], p)
	}
}

// D2seffInto computes d2s[i][j][k] = ∂²seff_i/∂p_j∂p_k into existent tensor
func (o Provider) D2seffInto(d2s [][][]float64, p []float64) {
	for i, m := range o.Models {
		m.D2seff(d2s[i], p)
	}
}
