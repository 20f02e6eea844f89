// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used to verify the numerical ones
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// ColumnFluidPressure computes pressure (p) and intrinsic density (R) of a fluid
// along a column with gravity (g). The numerical solution is:
//
//    R    = R0 + C・(p - p0)   thus   dR/dp = C
//    Z(z) = H + T・(z - H)   with 0 ≤ T ≤ 1    T is a pseudo variable
//    dZ   = (z - H)・dT
//    dp   = R(p)・g・(-dZ)
//    dp   = R(p)・g・(H - z)・dT
//    Δz   = H - z
//
//            / dp/dT \    / R(p)・g・Δz \
//    dY/dT = |        | = |             |
//            \ dR/dT /    \  C・dp/dT   /
//
type ColumnFluidPressure struct {
	R0   float64 // intrinsic density corresponding to p0
	P0   float64 // pressure corresponding to R0
	C    float64 // compressibility coefficient; e.g. R0/Kbulk or M/(R・θ)
	Grav float64 // gravity acceleration (positive constant)
	H    float64 // elevation where (R0,p0) is known

	// ode solver
	fcn ode.Cb_fcn // function for ode solver
	jac ode.Cb_jac // Jacobian for ode solver
	sol ode.ODE    // ode solver
}

// Init initialises this structure
//  withNum -- initialise the ODE solver for CalcNum
func (o *ColumnFluidPressure) Init(R0, p0, C, g, H float64, withNum bool) {

	// input data
	o.R0 = R0
	o.P0 = p0
	o.C = C
	o.Grav = g
	o.H = H
	if !withNum {
		return
	}

	// x := {p, R}
	o.fcn = func(f []float64, x float64, y []float64, args ...interface{}) error {
		Δz := args[0].(float64)
		R := y[1]
		f[0] = R * o.Grav * Δz // dp/dT
		f[1] = o.C * f[0]      // dR/dT
		return nil
	}
	o.jac = func(dfdy *la.Triplet, x float64, y []float64, args ...interface{}) error {
		if dfdy.Max() == 0 {
			dfdy.Init(2, 2, 4)
		}
		Δz := args[0].(float64)
		dfdy.Start()
		dfdy.Put(0, 0, 0)
		dfdy.Put(0, 1, o.Grav*Δz)
		dfdy.Put(1, 0, 0)
		dfdy.Put(1, 1, o.C*o.Grav*Δz)
		return nil
	}
	silent := true
	o.sol.Init("Radau5", 2, o.fcn, o.jac, nil, nil, silent)
	o.sol.Distr = false
}

// Calc computes pressure and density
func (o ColumnFluidPressure) Calc(z float64) (p, R float64) {
	if o.C == 0 {
		return o.P0 + o.R0*o.Grav*(o.H-z), o.R0
	}
	p = o.P0 + (o.R0/o.C)*(math.Exp(o.C*o.Grav*(o.H-z))-1.0)
	R = o.R0 + o.C*(p-o.P0)
	return
}

// CalcNum computes pressure and density using numerical method
func (o ColumnFluidPressure) CalcNum(z float64) (p, R float64, err error) {
	if o.fcn == nil {
		return 0, 0, chk.Err("ColumnFluidPressure: ODE solver is not initialised")
	}
	Δz := o.H - z
	y := []float64{o.P0, o.R0}
	err = o.sol.Solve(y, 0, 1, 1, false, Δz)
	if err != nil {
		return 0, 0, chk.Err("ColumnFluidPressure failed when calculating pressure using ODE solver: %v", err)
	}
	return y[0], y[1], nil
}

// Plot plots pressure and density along height of column
func (o ColumnFluidPressure) Plot(dirout, fnkey, subscript string, np int) {

	Z := utl.LinSpace(0, o.H, np)
	P := make([]float64, np)
	R := make([]float64, np)
	for i, z := range Z {
		P[i], R[i] = o.Calc(z)
	}

	pMaxLin := o.P0 + o.R0*o.Grav*o.H

	plt.Subplot(2, 1, 1)
	plt.Plot(P, Z, "'k-', clip_on=0")
	plt.Plot([]float64{o.P0, pMaxLin}, []float64{o.H, 0}, "'k--', color='gray'")
	plt.Gll("$p_{"+subscript+"}$", "$z$", "")

	plt.Subplot(2, 1, 2)
	plt.Plot(R, Z, "'r-', clip_on=0")
	plt.Plot([]float64{o.R0, o.R0 + o.C*(pMaxLin-o.P0)}, []float64{o.H, 0}, "'k--', color='gray'")
	plt.Gll("$\\rho_{"+subscript+"}$", "$z$", "")

	plt.SaveD(dirout, fnkey+".eps")
}
