// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package seff implements models for the effective saturation of fluid phases
// as functions of the pressure-like variables of a multiphase Richards system
//  References:
//   [1] van Genuchten MT (1980) A closed-form equation for predicting the hydraulic
//       conductivity of unsaturated soils. Soil Sci. Soc. Am. J. 44(5), 892-898
package seff

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model computes the effective saturation of ONE phase from all n pressure-like variables
//  Note: models must be immutable after Init; i.e. safe for concurrent use
type Model interface {
	Init(prms fun.Prms) error            // initialises model
	GetPrms(example bool) fun.Prms       // gets (an example) of parameters
	Vars() []int                         // indices of the variables this model depends on
	Seff(p []float64) float64            // computes seff(p)
	Dseff(res, p []float64)              // computes res[j] = ∂seff/∂p_j. len(res) == len(p)
	D2seff(res [][]float64, p []float64) // computes res[j][k] = ∂²seff/∂p_j∂p_k
}

// CheckIndex checks whether 0 <= idx < n
//  what -- name of index used in error message; e.g. "wrtnum"
func CheckIndex(what string, idx, n int) error {
	if idx < 0 || idx >= n {
		return chk.Err("Your %s is %d but it must obey 0 <= %s < %d.", what, idx, what, n)
	}
	return nil
}

// New returns new effective saturation model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'seff' database", name)
	}
	return allocator(), nil
}

// Names returns the names of all available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	return
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// zero fills res with zeros
func zero(res []float64) {
	for i := range res {
		res[i] = 0
	}
}

// zero2 fills res with zeros
func zero2(res [][]float64) {
	for i := range res {
		for j := range res[i] {
			res[i][j] = 0
		}
	}
}

// varIndex reads an index parameter
func varIndex(name string, v float64) (int, error) {
	if v < 0 || v != float64(int(v)) {
		return 0, chk.Err("parameter %q must be a non-negative integer. %g is invalid", name, v)
	}
	return int(v), nil
}
