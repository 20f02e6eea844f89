// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// Summary records summary of outputs
type Summary struct {
	OutTimes []float64    // [nOutTimes] output times
	NumIts   []int        // [nOutTimes] number of Newton iterations to reach each output time
	Resids   utl.DblSlist // largest component of residual at each iteration (if Stat is on)
	Hist     [][]float64  // [nOutTimes][ny] solution at output times
}

// save saves the current solution
func (o *Summary) save(sol *Solution, nit int) {
	o.OutTimes = append(o.OutTimes, sol.T)
	o.NumIts = append(o.NumIts, nit)
	o.Hist = append(o.Hist, la.VecClone(sol.Y))
}

// Run solves the problem from the current state
//  steady:    one nonlinear solution at t = tf
//  transient: backward Euler steps with constant Δt until tf
func (o *Domain) Run() (err error) {

	// steady
	ctrl := o.Sim.Control
	if o.Sim.Data.Steady {
		o.Sol.T, o.Sol.Dt = ctrl.Tf, 0
		it, err := o.runIterations()
		if err != nil {
			return err
		}
		o.Summary.save(o.Sol, it)
		return nil
	}

	// initial state
	o.Summary.save(o.Sol, 0)

	// time loop
	for o.Sol.T < ctrl.Tf-1e-14 {

		// time update
		Δt := math.Min(ctrl.Dt, ctrl.Tf-o.Sol.T)
		copy(o.Sol.Yold, o.Sol.Y)
		o.Sol.T += Δt
		o.Sol.Dt = Δt

		// message
		if o.ShowMsg && !o.Sim.Data.ShowR {
			io.PfWhite("%30.15f\r", o.Sol.T)
		}

		// run iterations
		it, err := o.runIterations()
		if err != nil {
			return err
		}
		o.Summary.save(o.Sol, it)
	}
	if o.ShowMsg && !o.Sim.Data.ShowR {
		io.Pf("\n")
	}
	return
}

// runIterations solves the nonlinear problem at the current time with Newton's method
func (o *Domain) runIterations() (nit int, err error) {

	// auxiliary variables
	prm := &o.Sim.Solver
	var it int
	var largFb, largFb0, Lδu float64

	// message
	if o.Sim.Data.ShowR {
		io.Pf("\n%13s%4s%23s%23s\n", "t", "it", "largFb", "Lδu")
		defer func() {
			io.Pf("%13.6e%4d%23.15e%23.15e\n", o.Sol.T, it, largFb, Lδu)
		}()
	}

	// iterations
	for it = 0; it < prm.NmaxIt; it++ {

		// assemble right-hand side vector (fb) with negative of residuals and Jacobian matrix
		err = o.Assemble(true)
		if err != nil {
			return it, err
		}

		// find largest absolute component of fb
		largFb = la.VecLargest(o.Fb, 1)
		if o.Sim.Data.Stat {
			o.Summary.Resids.Append(it == 0, largFb)
		}

		// check largFb value
		if it == 0 {
			largFb0 = largFb
		} else {
			if largFb < prm.FbTol*largFb0 { // converged on fb
				break
			}
			if largFb < prm.FbMin { // converged with smallest value of fb
				break
			}
		}

		// solve for wb := δyb
		err = o.solve()
		if err != nil {
			return it, chk.Err("linear solver failed at t = %g, iteration %d:\n%v", o.Sol.T, it, err)
		}

		// update primary variables (y)
		for i := 0; i < o.Ny; i++ {
			o.Sol.Y[i] += o.Wb[i] // y += δy
		}

		// compute RMS norm of δu and check convegence on δu
		Lδu = la.VecRmsErr(o.Wb, prm.Atol, prm.Rtol, o.Sol.Y)
		if math.IsNaN(Lδu) {
			return it, chk.Err("Newton iterations produced NaN at t = %g, iteration %d", o.Sol.T, it)
		}
		if Lδu < prm.Itol {
			break
		}
	}

	// check if iterations diverged
	if it == prm.NmaxIt {
		return it, chk.Err("Newton iterations did not converge after %d iterations at t = %g. largFb = %g, Lδu = %g", it, o.Sol.T, largFb, Lδu)
	}
	return it + 1, nil
}

// solve solves Kb・wb = fb
func (o *Domain) solve() (err error) {
	var x mat.VecDense
	err = x.SolveVec(o.Kb, mat.NewVecDense(o.Ny, o.Fb))
	if err != nil {
		return
	}
	for i := 0; i < o.Ny; i++ {
		o.Wb[i] = x.AtVec(i)
	}
	return
}
