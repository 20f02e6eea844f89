// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

// CheckShape checks that shape functions evaluate to 1.0 @ nodes and add up to 1.0
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	for n := 0; n < shape.Nverts; n++ {

		// compute function
		shape.Func(shape.S, shape.DSdR, shape.D2SdR, shape.NatCoords[n], false)

		// check
		if verbose {
			io.Pf("S = %v\n", shape.S)
		}
		sum := 0.0
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
			sum += shape.S[m]
		}
		errS += math.Abs(sum - 1.0)
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckDSdR checks first and second derivatives w.r.t natural coordinate
func CheckDSdR(tst *testing.T, shape *Shape, r, tol float64, verbose bool) {

	// analytical
	n := shape.Nverts
	dSdR := make([]float64, n)
	d2SdR := make([]float64, n)
	shape.Func(shape.S, dSdR, d2SdR, r, true)

	// numerical
	for m := 0; m < n; m++ {
		dnum, _ := num.DerivCentral(func(x float64, args ...interface{}) (res float64) {
			shape.Func(shape.S, shape.DSdR, shape.D2SdR, x, false)
			return shape.S[m]
		}, r, 1e-3)
		chk.AnaNum(tst, io.Sf("dS%d/dR", m), tol, dSdR[m], dnum, verbose)
		dnum, _ = num.DerivCentral(func(x float64, args ...interface{}) (res float64) {
			shape.Func(shape.S, shape.DSdR, shape.D2SdR, x, true)
			return shape.DSdR[m]
		}, r, 1e-3)
		chk.AnaNum(tst, io.Sf("d²S%d/dR²", m), tol, d2SdR[m], dnum, verbose)
	}
}

// CheckDSdx checks G=dSdx and H=d²S/dx² of shape structures at real coordinate y
//  x -- [nverts] coordinates of vertices
func CheckDSdx(tst *testing.T, shape *Shape, x []float64, y, tol float64, verbose bool) {

	// analytical
	_, err := shape.InvMap(y, x)
	if err != nil {
		tst.Errorf("InvMap failed:\n%v", err)
		return
	}
	n := shape.Nverts
	G := make([]float64, n)
	H := make([]float64, n)
	copy(G, shape.G)
	copy(H, shape.H)

	// numerical
	for m := 0; m < n; m++ {
		dnum, _ := num.DerivCentral(func(t float64, args ...interface{}) (res float64) {
			if _, e := shape.InvMap(t, x); e != nil {
				chk.Panic("InvMap failed: %v", e)
			}
			return shape.S[m]
		}, y, 1e-4)
		chk.AnaNum(tst, io.Sf("dS%d/dx", m), tol, G[m], dnum, verbose)
		dnum, _ = num.DerivCentral(func(t float64, args ...interface{}) (res float64) {
			if _, e := shape.InvMap(t, x); e != nil {
				chk.Panic("InvMap failed: %v", e)
			}
			return shape.G[m]
		}, y, 1e-4)
		chk.AnaNum(tst, io.Sf("d²S%d/dx²", m), tol, H[m], dnum, verbose)
	}
}
