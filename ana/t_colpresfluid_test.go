// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

func Test_colpresfluid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("colpresfluid01. pressure on fluid along column")

	R0 := 1.0
	p0 := 0.0
	C := 1e-2
	H := 10.0
	g := 10.0

	var col ColumnFluidPressure
	col.Init(R0, p0, C, g, H, true)

	tol := 1e-8
	np := 11
	dz := H / float64(np-1)
	if chk.Verbose {
		io.PfWhite("%8s%14s%14s%14s%14s%23s\n", "z", "pAna", "Rana", "pNum", "Rnum", "errp")
	}
	for i := 0; i < np; i++ {
		z := H - float64(i)*dz
		pAna, Rana := col.Calc(z)
		pNum, Rnum, err := col.CalcNum(z)
		if err != nil {
			tst.Errorf("CalcNum failed:\n%v", err)
			return
		}
		if chk.Verbose {
			io.Pf("%8.4f%14.8f%14.8f%14.8f%14.8f%23.15e\n", z, pAna, Rana, pNum, Rnum, math.Abs(pAna-pNum))
		}
		chk.AnaNum(tst, "p", tol, pAna, pNum, false)
		chk.AnaNum(tst, "R", tol, Rana, Rnum, false)
	}

	// top and linear limit
	p, R := col.Calc(H)
	chk.Scalar(tst, "p(H)", 1e-15, p, p0)
	chk.Scalar(tst, "R(H)", 1e-15, R, R0)
	var inc ColumnFluidPressure
	inc.Init(R0, p0, 0, g, H, false)
	p, R = inc.Calc(0)
	chk.Scalar(tst, "p(0) incompressible", 1e-15, p, R0*g*H)
	chk.Scalar(tst, "R(0) incompressible", 1e-15, R, R0)
	_, _, err := inc.CalcNum(0)
	if err == nil {
		tst.Errorf("CalcNum should have failed without ODE solver")
	}

	if chk.Verbose {
		np = 101
		Z := utl.LinSpace(0, H, np)
		Pana := make([]float64, np)
		Pnum := make([]float64, np)
		for i, z := range Z {
			Pana[i], _ = col.Calc(z)
			Pnum[i], _, _ = col.CalcNum(z)
		}
		plt.Reset()
		plt.Plot(Pnum, Z, "'r-', label='num'")
		plt.Plot(Pana, Z, "'b.', label='ana', markevery=20")
		plt.Gll("$p$", "$z$", "")
		plt.SaveD("/tmp/moose", "fig_colpresfluid01.eps")
	}
}

func Test_steadysource01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("steadysource01. column with source and no gravity")

	var sol SteadySource
	err := sol.Init(2, 0.5, 3, 1, 5, 10, 4)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "p(zb)", 1e-15, sol.Calc(1), 10)
	chk.Scalar(tst, "p(zt)", 1e-15, sol.Calc(5), 4)

	// -(K・m・p')' = s
	h := 1e-3
	for _, z := range []float64{1.5, 2.2, 3, 4.9} {
		d2p := (sol.Calc(z+h) - 2.0*sol.Calc(z) + sol.Calc(z-h)) / (h * h)
		chk.Scalar(tst, io.Sf("-K・m・p''(%g)", z), 1e-6, -sol.K*sol.M*d2p, sol.S)
		dp := (sol.Calc(z+h) - sol.Calc(z-h)) / (2.0 * h)
		chk.Scalar(tst, io.Sf("flux(%g)", z), 1e-6, sol.Flux(z), sol.K*sol.M*dp)
	}

	// errors
	if err = sol.Init(0, 1, 1, 0, 1, 0, 0); err == nil {
		tst.Errorf("Init should have failed with K = 0")
	}
	if err = sol.Init(1, 1, 1, 1, 1, 0, 0); err == nil {
		tst.Errorf("Init should have failed with zt = zb")
	}
}
