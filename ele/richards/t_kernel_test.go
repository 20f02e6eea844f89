// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richards

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	rmdl "github.com/hereiam-at-mit-dot-edu/moose/mdl/richards"
)

// twoPhase returns a water-gas model
func twoPhase(tst *testing.T, ndim int, stab string) *rmdl.Model {
	vg := fun.Prms{
		&fun.Prm{N: "al", V: 1},
		&fun.Prm{N: "m", V: 0.5},
		&fun.Prm{N: "iw", V: 0},
		&fun.Prm{N: "ig", V: 1},
	}
	mdl, err := rmdl.New(ndim, fun.Prms{
		&fun.Prm{N: "k", V: 1.5},
		&fun.Prm{N: "por", V: 0.3},
		&fun.Prm{N: "g", V: 10},
	}, []*rmdl.PhaseData{{
		Seff: "vg2water", SeffPrms: vg,
		Krel: "power", KrelPrms: fun.Prms{&fun.Prm{N: "n", V: 2}},
		Dens: "bulk", DensPrms: fun.Prms{&fun.Prm{N: "R0", V: 1}, &fun.Prm{N: "B", V: 20}},
		Visc: "exp", ViscPrms: fun.Prms{&fun.Prm{N: "mu0", V: 1}, &fun.Prm{N: "c", V: 0.2}},
	}, {
		Seff: "vg2gas", SeffPrms: vg,
		Krel: "vg", KrelPrms: fun.Prms{&fun.Prm{N: "m", V: 0.5}},
		Dens: "lin", DensPrms: fun.Prms{&fun.Prm{N: "R0", V: 0.1}, &fun.Prm{N: "C", V: 0.01}},
		Visc: "cte", ViscPrms: fun.Prms{&fun.Prm{N: "mu", V: 0.02}},
	}}, stab, nil)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return nil
	}
	return mdl
}

// context returns a context with non-trivial data
func context(tst *testing.T, mdl *rmdl.Model) (c *Ctx, dxidx [][]float64) {
	ndim := mdl.Ndim
	c = NewCtx(mdl.Nph, ndim)
	c.V.P[0], c.V.P[1] = 0.2, 0.9
	copy(c.V.GradP[0], []float64{0.5, -0.3})
	copy(c.V.GradP[1], []float64{-0.2, 0.4})
	hp := [][]float64{{0.3, 0.1}, {0.1, -0.6}}
	hg := [][]float64{{-0.4, 0.2}, {0.2, 0.7}}
	hphi := [][]float64{{1.1, -0.2}, {-0.2, 0.5}}
	dxidx = [][]float64{{2, 0.3}, {0.1, 1.5}}[:ndim]
	for a := 0; a < ndim; a++ {
		copy(c.V.HessP[0][a], hp[a])
		copy(c.V.HessP[1][a], hg[a])
		copy(c.HessPhi[a], hphi[a])
		dxidx[a] = dxidx[a][:ndim]
	}
	c.Test, c.Phi = 0.6, 0.7
	copy(c.GradTest, []float64{-0.5, 0.8})
	copy(c.GradPhi, []float64{0.3, -0.4})
	c.Pold[0], c.Pold[1] = 0.1, 0.95
	err := c.Calc(mdl, dxidx)
	if err != nil {
		tst.Errorf("Calc failed: %v\n", err)
	}
	return
}

func Test_kernel01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernel01. flux: Jacobian")

	for _, stab := range []string{"none", "standard"} {
		for ndim := 1; ndim <= 2; ndim++ {
			io.Pfyel("\nstab = %s  ndim = %d\n", stab, ndim)
			mdl := twoPhase(tst, ndim, stab)
			if mdl == nil {
				return
			}
			c, dxidx := context(tst, mdl)
			if stab == "standard" && c.S.Tau[0] <= 0 {
				tst.Errorf("τ of water phase should be positive. τ = %v\n", c.S.Tau[0])
				return
			}
			for ivar := 0; ivar < 2; ivar++ {
				k, err := New("flux", mdl, ivar, nil, nil)
				if err != nil {
					tst.Errorf("New failed: %v\n", err)
					return
				}
				CheckJacobian(tst, k, mdl, c, dxidx, 1e-5, 1e-6, chk.Verbose)
				chk.Scalar(tst, "Jacobian", 1e-15, k.Jacobian(c), k.OffDiagJacobian(c, ivar))
				chk.Scalar(tst, "OffDiagJacobian(-1)", 1e-17, k.OffDiagJacobian(c, -1), 0)
				chk.Scalar(tst, "OffDiagJacobian(2)", 1e-17, k.OffDiagJacobian(c, 2), 0)
			}
		}
	}
}

func Test_kernel02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernel02. flux: Galerkin residual of single phase")

	mdl, err := rmdl.New(2, fun.Prms{&fun.Prm{N: "k", V: 2}}, []*rmdl.PhaseData{{
		Seff: "lin", SeffPrms: fun.Prms{&fun.Prm{N: "ivar", V: 0}},
		Krel: "unity",
		Dens: "cte", DensPrms: fun.Prms{&fun.Prm{N: "R0", V: 0}},
		Visc: "cte", ViscPrms: fun.Prms{&fun.Prm{N: "mu", V: 4}},
	}}, "", nil)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	c := NewCtx(1, 2)
	c.V.P[0] = 0.5
	copy(c.V.GradP[0], []float64{1, 3})
	copy(c.GradTest, []float64{0.5, -1})
	err = c.Calc(mdl, [][]float64{{1, 0}, {0, 1}})
	if err != nil {
		tst.Errorf("Calc failed: %v\n", err)
		return
	}
	k, err := New("flux", mdl, 0, nil, nil)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	// flux = K・m・∇p = 2・0.5・(1,3)/4
	chk.Scalar(tst, "R", 1e-15, k.Residual(c), (0.5*0.25-1*0.75)*2)

	// errors
	_, err = New("flux", mdl, 1, nil, nil)
	if err == nil {
		tst.Errorf("New should have failed with out-of-range variable\n")
		return
	}
	if !strings.Contains(err.Error(), "Your richardsVarNum is 1 but it must obey 0 <= richardsVarNum < 1.") {
		tst.Errorf("error message is incorrect: %v\n", err)
	}
}

func Test_kernel03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernel03. body forces")

	mdl := twoPhase(tst, 1, "")
	if mdl == nil {
		return
	}
	c, dxidx := context(tst, mdl)
	c.V.P[1] = 0.5
	if err := c.Calc(mdl, dxidx); err != nil {
		tst.Errorf("Calc failed: %v\n", err)
		return
	}
	fcn, err := fun.New("cte", fun.Prms{&fun.Prm{N: "c", V: 2}})
	if err != nil {
		tst.Errorf("fun.New failed: %v\n", err)
		return
	}
	value := fun.Prms{&fun.Prm{N: "value", V: 3}}

	// source
	k, err := New("bodyforce", mdl, 0, value, fcn)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "R", 1e-15, k.Residual(c), -0.6*3*2)
	chk.Scalar(tst, "J", 1e-17, k.Jacobian(c), 0)
	k, err = New("bodyforce", mdl, 0, nil, nil)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "R(nil)", 1e-15, k.Residual(c), -0.6)

	// void-weighted source
	prms := append(value, &fun.Prm{N: "c", V: 1})
	for ivar := 0; ivar < 2; ivar++ {
		k, err = New("bodyforcevoid", mdl, ivar, prms, fcn)
		if err != nil {
			tst.Errorf("New failed: %v\n", err)
			return
		}
		chk.Scalar(tst, "R(void)", 1e-15, k.Residual(c), 0.6*(-3*2*(1-0.25)))
		CheckJacobian(tst, k, mdl, c, dxidx, 1e-5, 1e-8, chk.Verbose)
	}
	chk.Scalar(tst, "J(void)", 1e-15, k.Jacobian(c), 0.6*3*2*2*0.5*0.7)

	// errors
	_, err = New("bodyforcevoid", mdl, 0, value, nil)
	if err == nil {
		tst.Errorf("New should have failed without coupled variable\n")
		return
	}
	_, err = New("bodyforcevoid", mdl, 0, fun.Prms{&fun.Prm{N: "c", V: 2}}, nil)
	if err == nil {
		tst.Errorf("New should have failed with out-of-range coupled variable\n")
		return
	}
	_, err = New("bodyforce", mdl, 0, fun.Prms{&fun.Prm{N: "val", V: 2}}, nil)
	if err == nil {
		tst.Errorf("New should have failed with wrong parameter\n")
		return
	}
	_, err = New("bodyforce", mdl, 2, nil, nil)
	if err == nil {
		tst.Errorf("New should have failed with out-of-range variable\n")
	}
}

func Test_kernel04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernel04. mass change")

	mdl := twoPhase(tst, 1, "")
	if mdl == nil {
		return
	}
	c, dxidx := context(tst, mdl)
	dm := make([]float64, 2)
	for ivar := 0; ivar < 2; ivar++ {
		k, err := New("masschange", mdl, ivar, nil, nil)
		if err != nil {
			tst.Errorf("New failed: %v\n", err)
			return
		}

		// steady state
		c.Dt = 0
		chk.Scalar(tst, "R(Δt=0)", 1e-17, k.Residual(c), 0)
		chk.Scalar(tst, "J(Δt=0)", 1e-17, k.Jacobian(c), 0)

		// transient
		c.Dt = 0.1
		m := mdl.Mass(dm, ivar, c.V.P)
		mold := mdl.Mass(dm, ivar, c.Pold)
		chk.Scalar(tst, "R", 1e-14, k.Residual(c), 0.6*0.3*(m-mold)/0.1)
		CheckJacobian(tst, k, mdl, c, dxidx, 1e-5, 1e-7, chk.Verbose)
		chk.Scalar(tst, "Jacobian", 1e-15, k.Jacobian(c), k.OffDiagJacobian(c, ivar))
	}

	// errors
	_, err := New("masschange", mdl, 0, fun.Prms{&fun.Prm{N: "dt", V: 1}}, nil)
	if err == nil {
		tst.Errorf("New should have failed with parameter\n")
	}
}

func Test_kernel05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernel05. factory")

	mdl := twoPhase(tst, 1, "")
	if mdl == nil {
		return
	}
	for _, name := range []string{"flux", "bodyforce", "masschange"} {
		if _, err := New(name, mdl, 0, nil, nil); err != nil {
			tst.Errorf("New(%q) failed: %v\n", name, err)
			return
		}
	}
	if len(Names()) != 4 {
		tst.Errorf("there should be 4 kernels. names = %v\n", Names())
		return
	}
	_, err := New("darcy", mdl, 0, nil, nil)
	if err == nil {
		tst.Errorf("New should have failed with unknown kernel\n")
		return
	}
	_, err = New("flux", nil, 0, nil, nil)
	if err == nil {
		tst.Errorf("New should have failed without model\n")
		return
	}
	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("SetAllocator should have panicked with existent name\n")
		}
	}()
	SetAllocator("flux", nil)
}
