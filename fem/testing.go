// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// TestingCompareJacobian compares the assembled Jacobian with the numerical one at the current state
func TestingCompareJacobian(tst *testing.T, dom *Domain, h, tol float64, verbose bool) {
	maxdiff, Ka, Kn, err := dom.CheckJacobian(h)
	if err != nil {
		tst.Errorf("CheckJacobian failed:\n%v", err)
		return
	}
	if verbose {
		io.Pforan("max |Ka - Kn| = %v\n", maxdiff)
	}
	chk.Matrix(tst, "Kb", tol, Ka, Kn)
}
