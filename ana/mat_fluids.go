// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "github.com/cpmech/gosl/fun"

// Water handles the properties of water
type Water struct {
	Θ   float64 // reference temperature; default = 25°C or 298.15K
	K   float64 // bulk modulus @ reference temperature
	Rho float64 // intrinsic density @ reference temperature
	C   float64 // compressibility @ reference temperature
	Mu  float64 // dynamic viscosity @ reference temperature
}

// DryAir handles the properties of dry air
type DryAir struct {
	Θ    float64 // reference temperature; default = 25°C or 298.15K
	R    float64 // specific ideal gas constant
	Patm float64 // absolute atmospheric pressure
	Rho  float64 // intrinsic density @ reference temperature
	C    float64 // compressibility @ reference temperature
	Mu   float64 // dynamic viscosity @ reference temperature
}

// Init initialises data
func (o *Water) Init() {
	o.Θ = 298.15      // [K]      25°C
	o.K = 2.2e6       // [kPa]    25°C
	o.Rho = 0.9970479 // [Mg/m³]  25°C
	o.C = o.Rho / o.K // [Mg/(m³・kPa)]
	o.Mu = 8.9e-7     // [kPa・s]  25°C
}

// Init initialises data
func (o *DryAir) Init() {
	o.Θ = 298.15                 // [K]          25°C
	o.R = 287.058                // [J/(kg・K)]  25°C  [kJ/(Mg・K)]  [kPa・m³/(Mg・K)]
	o.Patm = 101.325             // [kPa]
	o.Rho = o.Patm / (o.R * o.Θ) // [Mg/m³]      25°C
	o.C = 1.0 / (o.R * o.Θ)      // [Mg/(m³・kPa)]
	o.Mu = 1.849e-8              // [kPa・s]      25°C
}

// DensPrms returns the parameters of the "lin" density model with p0 = 0
func (o Water) DensPrms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "R0", V: o.Rho},
		&fun.Prm{N: "P0", V: 0},
		&fun.Prm{N: "C", V: o.C},
	}
}

// ViscPrms returns the parameters of the "cte" viscosity model
func (o Water) ViscPrms() fun.Prms {
	return fun.Prms{&fun.Prm{N: "mu", V: o.Mu}}
}

// DensPrms returns the parameters of the "lin" density model with p0 = 0 (gauge pressure)
func (o DryAir) DensPrms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "R0", V: o.Rho},
		&fun.Prm{N: "P0", V: 0},
		&fun.Prm{N: "C", V: o.C},
		&fun.Prm{N: "Gas", V: 1},
	}
}

// ViscPrms returns the parameters of the "cte" viscosity model
func (o DryAir) ViscPrms() fun.Prms {
	return fun.Prms{&fun.Prm{N: "mu", V: o.Mu}}
}
