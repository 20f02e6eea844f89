// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sync"

	"github.com/cpmech/gosl/la"
)

// Assemble computes fb = -R and (optionally) Kb = dR/dy
//  Note: elements are computed concurrently by chunks (one worker per chunk) and merged serially.
//        Rows of prescribed equations are replaced by y - value(t) = 0
func (o *Domain) Assemble(withK bool) (err error) {

	// compute element data
	nel, nw := len(o.Elems), len(o.workers)
	errs := make([]error, nw)
	var wg sync.WaitGroup
	for i, w := range o.workers {
		wg.Add(1)
		go func(i int, w *worker) {
			defer wg.Done()
			for _, e := range o.Elems[i*nel/nw : (i+1)*nel/nw] {
				if errs[i] = o.calcElem(w, e, withK); errs[i] != nil {
					return
				}
			}
		}(i, w)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return e
		}
	}

	// merge
	nph := o.Nph
	la.VecFill(o.Fb, 0)
	if withK {
		o.Kb.Zero()
	}
	for _, e := range o.Elems {
		for m, vid := range e.Verts {
			for p := 0; p < nph; p++ {
				I := vid*nph + p
				o.Fb[I] -= e.Rl[m*nph+p]
				if !withK {
					continue
				}
				for n, vjd := range e.Verts {
					for q := 0; q < nph; q++ {
						J := vjd*nph + q
						o.Kb.Set(I, J, o.Kb.At(I, J)+e.Kl[m*nph+p][n*nph+q])
					}
				}
			}
		}
	}

	// essential boundary conditions
	o.EssenBcs.AddToRhs(o.Fb, o.Sol)
	if withK {
		o.EssenBcs.AddToKb(o.Kb)
	}
	return
}
