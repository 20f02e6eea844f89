// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seff

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots seff versus the variable ivar; the other variables are taken from p
//  args -- arguments for plotting; e.g. "'b.-'"
func Plot(mdl Model, p []float64, ivar int, xmin, xmax float64, npts int, args, label string) (X, S []float64) {
	X = utl.LinSpace(xmin, xmax, npts)
	S = make([]float64, npts)
	pt := make([]float64, len(p))
	copy(pt, p)
	for i, x := range X {
		pt[ivar] = x
		S[i] = mdl.Seff(pt)
	}
	plt.Plot(X, S, io.Sf("%s, label='%s', clip_on=0", args, label))
	return
}

// PlotEnd ends plot and saves figure
func PlotEnd(dirout, fnkey string) {
	plt.Gll("$p$", "$s_{eff}$", "")
	plt.SaveD(dirout, fnkey+".eps")
}
