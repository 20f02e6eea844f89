// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Lin implements a linear density model and computes pressure (p) and intrinsic density (R)
// of a fluid along a column with gravity (g). The model is:
//   R(p) = R0 + C・(p - p0)   thus   dR/dp = C
type Lin struct {

	// material data
	R0  float64 // intrinsic density corresponding to p0
	P0  float64 // pressure corresponding to R0
	C   float64 // compressibility coefficient; e.g. R0/Kbulk or M/(R・θ)
	Gas bool    // is gas instead of liquid?

	// column data
	H    float64 // elevation where (R0,p0) is known
	Grav float64 // gravity acceleration (positive constant)
}

// Bulk implements R(p) = R0・exp(p/B)
type Bulk struct {
	R0 float64 // density at zero pressure
	B  float64 // bulk modulus
}

// Cte implements a constant density
type Cte struct {
	R0 float64 // density
}

// add models to factory
func init() {
	densities["lin"] = func() Density { return new(Lin) }
	densities["bulk"] = func() Density { return new(Bulk) }
	densities["cte"] = func() Density { return new(Cte) }
}

// Lin ////////////////////////////////////////////////////////////////////////////////////////////

// Init initialises this structure
func (o *Lin) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch p.N {
		case "R0":
			o.R0 = p.V
		case "P0":
			o.P0 = p.V
		case "C":
			o.C = p.V
		case "gas", "Gas":
			o.Gas = p.V > 0
		default:
			return chk.Err("lin: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.R0 < 0 {
		return chk.Err("lin: density R0 must be non-negative. R0 = %g is invalid\n", o.R0)
	}
	return nil
}

// GetPrms gets (an example of) parameters
//  Input:
//   example -- returns example of parameters; othewise returs current parameters
//  Note:
//   Gas variable is used to return dry air properties instead of water
func (o Lin) GetPrms(example bool) fun.Prms {
	if example {
		if o.Gas {
			return fun.Prms{ // dry air
				&fun.Prm{N: "R0", V: 0.0012}, // [Mg/m³]
				&fun.Prm{N: "P0", V: 0.0},    // [kPa]
				&fun.Prm{N: "C", V: 1.17e-5}, // [Mg/(m³・kPa)]
				&fun.Prm{N: "Gas", V: 1},     // [-]
			}
		}
		return fun.Prms{ // water
			&fun.Prm{N: "R0", V: 1.0},    // [Mg/m³]
			&fun.Prm{N: "P0", V: 0.0},    // [kPa]
			&fun.Prm{N: "C", V: 4.53e-7}, // [Mg/(m³・kPa)]
			&fun.Prm{N: "Gas", V: 0},     // [-]
		}
	}
	var gas float64
	if o.Gas {
		gas = 1
	}
	return fun.Prms{
		&fun.Prm{N: "R0", V: o.R0},
		&fun.Prm{N: "P0", V: o.P0},
		&fun.Prm{N: "C", V: o.C},
		&fun.Prm{N: "Gas", V: gas},
	}
}

// Rho returns ρ and its derivatives
func (o Lin) Rho(p float64) (rho, drho, d2rho float64) {
	return o.R0 + o.C*(p-o.P0), o.C, 0
}

// SetColumn sets column data
func (o *Lin) SetColumn(H, grav float64) {
	o.H = H
	o.Grav = grav
}

// Calc computes pressure and density at elevation z
func (o Lin) Calc(z float64) (p, R float64) {
	if o.C == 0 {
		return o.P0 + o.R0*o.Grav*(o.H-z), o.R0
	}
	p = o.P0 + (o.R0/o.C)*(math.Exp(o.C*o.Grav*(o.H-z))-1.0)
	R = o.R0 + o.C*(p-o.P0)
	return
}

// Plot plots pressure and density along height of column
func (o Lin) Plot(dirout, fnkey string, np int) {

	Z := utl.LinSpace(0, o.H, np)
	P := make([]float64, np)
	R := make([]float64, np)
	for i, z := range Z {
		P[i], R[i] = o.Calc(z)
	}

	pMaxLin := o.R0 * o.Grav * o.H
	subscript := "\\ell"
	if o.Gas {
		subscript = "g"
	}

	plt.Subplot(2, 1, 1)
	plt.Plot(P, Z, "'b-', clip_on=0")
	plt.Plot([]float64{o.P0, pMaxLin}, []float64{o.H, 0}, "'k--', color='gray'")
	plt.Gll("$p_{"+subscript+"}$", "$z$", "")

	plt.Subplot(2, 1, 2)
	plt.Plot(R, Z, "'r-', clip_on=0")
	plt.Plot([]float64{o.R0, o.R0 + o.C*pMaxLin}, []float64{o.H, 0}, "'k--', color='gray'")
	plt.Gll(io.Sf("$\\rho_{%s}$", subscript), "$z$", "")

	plt.SaveD(dirout, fnkey+".eps")
}

// Bulk ///////////////////////////////////////////////////////////////////////////////////////////

// Init initialises this structure
func (o *Bulk) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch p.N {
		case "R0":
			o.R0 = p.V
		case "B":
			o.B = p.V
		default:
			return chk.Err("bulk: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.B <= 0 {
		return chk.Err("bulk: bulk modulus B must be positive. B = %g is invalid\n", o.B)
	}
	return nil
}

// GetPrms gets (an example of) parameters
func (o Bulk) GetPrms(example bool) fun.Prms {
	if example {
		return fun.Prms{
			&fun.Prm{N: "R0", V: 1.0}, // [Mg/m³]
			&fun.Prm{N: "B", V: 2e6},  // [kPa]
		}
	}
	return fun.Prms{
		&fun.Prm{N: "R0", V: o.R0},
		&fun.Prm{N: "B", V: o.B},
	}
}

// Rho returns ρ and its derivatives
func (o Bulk) Rho(p float64) (rho, drho, d2rho float64) {
	rho = o.R0 * math.Exp(p/o.B)
	return rho, rho / o.B, rho / (o.B * o.B)
}

// Cte ////////////////////////////////////////////////////////////////////////////////////////////

// Init initialises this structure
func (o *Cte) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch p.N {
		case "R0", "rho":
			o.R0 = p.V
		default:
			return chk.Err("cte: parameter named %q is incorrect\n", p.N)
		}
	}
	return nil
}

// GetPrms gets (an example of) parameters
func (o Cte) GetPrms(example bool) fun.Prms {
	if example {
		return fun.Prms{&fun.Prm{N: "R0", V: 1.0}}
	}
	return fun.Prms{&fun.Prm{N: "R0", V: o.R0}}
}

// Rho returns ρ and its derivatives
func (o Cte) Rho(p float64) (rho, drho, d2rho float64) {
	return o.R0, 0, 0
}
