// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seff

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
)

// CheckDerivs compares analytical derivatives of a model with numerical ones at p
//  h -- step size for central differences
func CheckDerivs(tst *testing.T, mdl Model, p []float64, h, tol1, tol2 float64, verbose bool) {

	// analytical
	n := len(p)
	ds := make([]float64, n)
	d2s := la.MatAlloc(n, n)
	mdl.Dseff(ds, p)
	mdl.D2seff(d2s, p)
	if verbose {
		io.Pforan("p = %v  seff = %v\n", p, mdl.Seff(p))
	}

	// ∂seff/∂p_j
	pt := make([]float64, n)
	for j := 0; j < n; j++ {
		dnum, _ := num.DerivCentral(func(x float64, args ...interface{}) (res float64) {
			copy(pt, p)
			pt[j] = x
			return mdl.Seff(pt)
		}, p[j], h)
		chk.AnaNum(tst, io.Sf("∂seff/∂p%d", j), tol1, ds[j], dnum, verbose)
	}

	// ∂²seff/∂p_j∂p_k
	tmp := make([]float64, n)
	for j := 0; j < n; j++ {
		for k := 0; k < n; k++ {
			dnum, _ := num.DerivCentral(func(x float64, args ...interface{}) (res float64) {
				copy(pt, p)
				pt[k] = x
				mdl.Dseff(tmp, pt)
				return tmp[j]
			}, p[k], h)
			chk.AnaNum(tst, io.Sf("∂²seff/∂p%d∂p%d", j, k), tol2, d2s[j][k], dnum, verbose)
		}
	}
}
