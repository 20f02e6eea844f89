// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package relperm implements models for the relative permeability of fluid phases
// as functions of effective saturation
//  References:
//   [1] Mualem Y (1976) A new model for predicting the hydraulic conductivity of
//       unsaturated porous media. Water Resources Research, 12(3), 513-522
package relperm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model defines relative permeability models
type Model interface {
	Init(prms fun.Prms) error                 // initialises this structure
	GetPrms(example bool) fun.Prms            // gets (an example) of parameters
	Kr(s float64) float64                     // returns kr(s)
	Derivs(s float64) (kr, dkr, d2kr float64) // returns kr, ∂kr/∂s and ∂²kr/∂s²
}

// New returns new relative permeability model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'relperm' database", name)
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
