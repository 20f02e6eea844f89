// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements models for fluid density and viscosity as functions of pressure
package fluid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Density computes the intrinsic density ρ(p) of a fluid
type Density interface {
	Init(prms fun.Prms) error                 // initialises model
	GetPrms(example bool) fun.Prms            // gets (an example) of parameters
	Rho(p float64) (rho, drho, d2rho float64) // returns ρ, dρ/dp and d²ρ/dp²
}

// Viscosity computes the dynamic viscosity μ(p) of a fluid
type Viscosity interface {
	Init(prms fun.Prms) error             // initialises model
	GetPrms(example bool) fun.Prms        // gets (an example) of parameters
	Mu(p float64) (mu, dmu, d2mu float64) // returns μ, dμ/dp and d²μ/dp²
}

// Column computes pressure and density along a column of fluid at rest
type Column interface {
	SetColumn(H, grav float64)     // sets elevation where (ρ0, p0) is known and gravity
	Calc(z float64) (p, R float64) // computes pressure and density at elevation z
}

// NewDensity returns new density model
func NewDensity(name string) (model Density, err error) {
	allocator, ok := densities[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'density' database", name)
	}
	return allocator(), nil
}

// NewViscosity returns new viscosity model
func NewViscosity(name string) (model Viscosity, err error) {
	allocator, ok := viscosities[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'viscosity' database", name)
	}
	return allocator(), nil
}

// DensityNames returns the names of all density models
func DensityNames() (names []string) {
	for name := range densities {
		names = append(names, name)
	}
	return
}

// ViscosityNames returns the names of all viscosity models
func ViscosityNames() (names []string) {
	for name := range viscosities {
		names = append(names, name)
	}
	return
}

// allocators
var (
	densities   = map[string]func() Density{}
	viscosities = map[string]func() Viscosity{}
)
