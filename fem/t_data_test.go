// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/io"
	"github.com/hereiam-at-mit-dot-edu/moose/inp"
)

// twoPhaseMat is a water-gas material with strong coupling through the capillary pressure
const twoPhaseMat = `{
  "name" : "soil", "stab" : %q,
  "prms" : [ {"n":"k", "v":1.5}, {"n":"por", "v":0.3}, {"n":"g", "v":10} ],
  "phases" : [
    { "seff":"vg2water", "seffprms":[{"n":"al","v":1}, {"n":"m","v":0.5}, {"n":"iw","v":0}, {"n":"ig","v":1}],
      "krel":"power",    "krelprms":[{"n":"n","v":2}],
      "dens":"bulk",     "densprms":[{"n":"R0","v":1}, {"n":"B","v":20}],
      "visc":"exp",      "viscprms":[{"n":"mu0","v":1}, {"n":"c","v":0.2}] },
    { "seff":"vg2gas",   "seffprms":[{"n":"al","v":1}, {"n":"m","v":0.5}, {"n":"iw","v":0}, {"n":"ig","v":1}],
      "krel":"vg",       "krelprms":[{"n":"m","v":0.5}],
      "dens":"lin",      "densprms":[{"n":"R0","v":0.1}, {"n":"C","v":0.01}],
      "visc":"cte",      "viscprms":[{"n":"mu","v":0.02}] }
  ]
}`

// twoPhaseSim returns the data of an unsaturated column with prescribed water and gas pressures at both ends
func twoPhaseSim(tst *testing.T, meshType, stab string, steady, skipOffDiag bool, nworkers int, kernels string) *inp.Simulation {
	str := io.Sf(`{
  "data" : { "desc":"two-phase column", "steady":%v },
  "functions" : [
    { "name":"pwb", "type":"cte", "prms":[{"n":"c","v":-0.5}] },
    { "name":"pwt", "type":"cte", "prms":[{"n":"c","v":-1.0}] },
    { "name":"pgb", "type":"cte", "prms":[{"n":"c","v":0.1}] },
    { "name":"src", "type":"cte", "prms":[{"n":"c","v":0.8}] }
  ],
  "materials" : [ %s ],
  "mesh" : { "type":%q, "zmin":0, "zmax":1, "nel":6 },
  "kernels" : [ %s ],
  "ebcs" : [
    { "var":0, "side":"bottom", "func":"pwb" },
    { "var":0, "side":"top",    "func":"pwt" },
    { "var":1, "side":"bottom", "func":"pgb" },
    { "var":1, "side":"top",    "func":"zero" }
  ],
  "inis" : [
    { "var":0, "type":"lin", "value":-0.5, "vtop":-1.0 },
    { "var":1, "type":"lin", "value":0.1,  "vtop":0.0 }
  ],
  "solver" : { "nmaxit":12, "fbtol":1e-12, "skipoffdiag":%v, "nworkers":%d },
  "control" : { "tf":1, "dt":0.5 }
}`, steady, io.Sf(twoPhaseMat, stab), meshType, kernels, skipOffDiag, nworkers)
	sim, err := inp.Decode([]byte(str), false)
	if err != nil {
		tst.Errorf("Decode failed:\n%v", err)
		return nil
	}
	return sim
}

// twoPhaseKernels holds the terms of a steady two-phase column with a source of water weighted by the gas pressure
const twoPhaseKernels = `
    { "type":"flux", "var":0 },
    { "type":"flux", "var":1 },
    { "type":"bodyforcevoid", "var":0, "prms":[{"n":"value","v":0.5}, {"n":"c","v":1}], "func":"src" }`

// singlePhaseSim returns the data of a saturated column without gravity and with a constant source
func singlePhaseSim(tst *testing.T, meshType string, nel int, src float64) *inp.Simulation {
	str := io.Sf(`{
  "data" : { "desc":"steady source", "steady":true },
  "functions" : [
    { "name":"pb", "type":"cte", "prms":[{"n":"c","v":10}] },
    { "name":"pt", "type":"cte", "prms":[{"n":"c","v":4}] }
  ],
  "materials" : [ {
    "name" : "sand",
    "prms" : [ {"n":"k", "v":2}, {"n":"g", "v":0} ],
    "phases" : [ { "seff":"lin", "seffprms":[{"n":"a","v":1}, {"n":"b","v":0}],
                   "krel":"unity", "dens":"cte", "densprms":[{"n":"R0","v":1}],
                   "visc":"cte", "viscprms":[{"n":"mu","v":2}] } ]
  } ],
  "mesh" : { "type":%q, "zmin":1, "zmax":5, "nel":%d },
  "kernels" : [
    { "type":"flux", "var":0 },
    { "type":"bodyforce", "var":0, "prms":[{"n":"value","v":%g}] }
  ],
  "ebcs" : [
    { "var":0, "side":"bottom", "func":"pb" },
    { "var":0, "side":"top",    "func":"pt" }
  ]
}`, meshType, nel, src)
	sim, err := inp.Decode([]byte(str), false)
	if err != nil {
		tst.Errorf("Decode failed:\n%v", err)
		return nil
	}
	return sim
}
