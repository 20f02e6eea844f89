// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relperm

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots kr(s) and, optionally, its first derivative
func Plot(o Model, dirout, fname string, np int, withText, deriv bool) {
	X := utl.LinSpace(0, 1, np)
	Y := make([]float64, np)
	Z := make([]float64, np)
	for i := 0; i < np; i++ {
		Y[i], Z[i], _ = o.Derivs(X[i])
	}
	if deriv {
		plt.Subplot(2, 1, 1)
	}
	plt.Plot(X, Y, "'b-', clip_on=0")
	if withText {
		l := np - 1
		plt.Text(X[0], Y[0], io.Sf("(%g, %g)", X[0], Y[0]), "ha='left',  color='red', size=8")
		plt.Text(X[l], Y[l], io.Sf("(%g, %g)", X[l], Y[l]), "ha='right', color='red', size=8")
	}
	plt.Gll("$s_{eff}$", "$k^r$", "")
	if deriv {
		plt.Subplot(2, 1, 2)
		plt.Plot(X, Z, "'b-', clip_on=0")
		plt.Gll("$s_{eff}$", "$\\mathrm{d}k^r/\\mathrm{d}s_{eff}$", "")
	}
	plt.SaveD(dirout, fname)
}
