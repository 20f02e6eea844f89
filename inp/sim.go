// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a simulation (.json or .yaml) file
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gopkg.in/yaml.v3"
)

// Data holds global data for simulations
type Data struct {

	// global information
	Desc   string `json:"desc" yaml:"desc"`     // description of simulation
	Mat    string `json:"mat" yaml:"mat"`       // name of material
	DirOut string `json:"dirout" yaml:"dirout"` // directory for output; e.g. /tmp/moose

	// problem definition and options
	Steady bool `json:"steady" yaml:"steady"` // steady simulation
	ShowR  bool `json:"showr" yaml:"showr"`   // show residual
	Stat   bool `json:"stat" yaml:"stat"`     // save residuals in summary
}

// MeshData holds the data of a one-dimensional column mesh along the elevation z
type MeshData struct {
	Type string  `json:"type" yaml:"type"` // shape of elements; "lin2" or "lin3"
	Zmin float64 `json:"zmin" yaml:"zmin"` // elevation of bottom
	Zmax float64 `json:"zmax" yaml:"zmax"` // elevation of top
	Nel  int     `json:"nel" yaml:"nel"`   // number of elements
}

// KernelData holds the definition of one term of the equation of one variable
type KernelData struct {
	Type string   `json:"type" yaml:"type"` // kernel type; e.g. "flux", "bodyforce"
	Var  int      `json:"var" yaml:"var"`   // index of variable whose equation receives the term
	Prms fun.Prms `json:"prms" yaml:"prms"` // parameters of kernel
	Func string   `json:"func" yaml:"func"` // name of function of space and time; "" means none
}

// EbcData holds essential (Dirichlet) boundary conditions
type EbcData struct {
	Var  int    `json:"var" yaml:"var"`   // index of variable
	Side string `json:"side" yaml:"side"` // "bottom" or "top"
	Func string `json:"func" yaml:"func"` // name of function of time giving the prescribed value
}

// IniData holds the initial values of one variable
//  Type:
//   "cte"     -- p = Value
//   "lin"     -- p varies linearly from Value at bottom to Vtop at top
//   "hydrost" -- p follows the hydrostatic column of the phase density with p = P0 at elevation H
type IniData struct {
	Var   int     `json:"var" yaml:"var"`     // index of variable
	Type  string  `json:"type" yaml:"type"`   // "cte", "lin" or "hydrost"
	Value float64 `json:"value" yaml:"value"` // value; or value at bottom
	Vtop  float64 `json:"vtop" yaml:"vtop"`   // value at top
	H     float64 `json:"h" yaml:"h"`         // elevation of reference; 0 means zmax
}

// ProbeData holds the definition of an output probe
type ProbeData struct {
	Type string   `json:"type" yaml:"type"` // "seff", "seffprime" or "seffprimeprime"
	Prms fun.Prms `json:"prms" yaml:"prms"` // parameters; e.g. phase, wrt
}

// TimeControl holds data for defining the simulation time stepping
type TimeControl struct {
	Tf float64 `json:"tf" yaml:"tf"` // final time
	Dt float64 `json:"dt" yaml:"dt"` // time step size
}

// SolverData holds FEM solver data
type SolverData struct {

	// nonlinear solver
	NmaxIt      int     `json:"nmaxit" yaml:"nmaxit"`           // number of max iterations
	Atol        float64 `json:"atol" yaml:"atol"`               // absolute tolerance
	Rtol        float64 `json:"rtol" yaml:"rtol"`               // relative tolerance
	FbTol       float64 `json:"fbtol" yaml:"fbtol"`             // tolerance for convergence on fb
	FbMin       float64 `json:"fbmin" yaml:"fbmin"`             // minimum value of fb
	SkipOffDiag bool    `json:"skipoffdiag" yaml:"skipoffdiag"` // do not assemble off-diagonal (cross-variable) Jacobian terms
	Nworkers    int     `json:"nworkers" yaml:"nworkers"`       // number of goroutines assembling elements; 0 means 1

	// constants
	Eps float64 `json:"eps" yaml:"eps"` // smallest number satisfying 1.0 + ϵ > 1.0

	// derived
	Itol float64 `json:"-" yaml:"-"` // iterations tolerance
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data          `json:"data" yaml:"data"`           // stores global simulation data
	Functions FuncsData     `json:"functions" yaml:"functions"` // stores all boundary condition functions
	PlotF     *PlotFdata    `json:"plotf" yaml:"plotf"`         // plot functions
	Materials MatsData      `json:"materials" yaml:"materials"` // all materials
	Mesh      MeshData      `json:"mesh" yaml:"mesh"`           // column mesh
	Kernels   []*KernelData `json:"kernels" yaml:"kernels"`     // terms of the weak form
	Ebcs      []*EbcData    `json:"ebcs" yaml:"ebcs"`           // essential boundary conditions
	Inis      []*IniData    `json:"inis" yaml:"inis"`           // initial values
	Probes    []*ProbeData  `json:"probes" yaml:"probes"`       // output probes
	Solver    SolverData    `json:"solver" yaml:"solver"`       // FEM solver data
	Control   TimeControl   `json:"control" yaml:"control"`     // time control

	// derived
	DirOut string    // directory to save results
	Key    string    // simulation key; e.g. mysim01.json => mysim01 or mysim01-alias
	Ndim   int       // space dimension
	Mat    *Material // material in use
}

// ReadSim reads all simulation data from a .json or .yaml file
//  alias        -- word to be appended to simulation key; e.g. when running multiple FE solutions
//  createDirOut -- creates directory for output
func ReadSim(simfilepath, alias string, createDirOut bool) (o *Simulation, err error) {

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// decode
	ext := strings.ToLower(filepath.Ext(simfilepath))
	o, err = Decode(b, ext == ".yaml" || ext == ".yml")
	if err != nil {
		return nil, chk.Err("ReadSim: cannot decode simulation file %q:\n%v", simfilepath, err)
	}

	// filename key
	o.Key = io.FnKey(filepath.Base(simfilepath))
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = os.ExpandEnv(o.Data.DirOut)
	if o.DirOut == "" {
		o.DirOut = "/tmp/moose/" + o.Key
	}
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}
	return
}

// Decode decodes and checks simulation data
//  isYaml -- data is in YAML format; otherwise JSON
func Decode(b []byte, isYaml bool) (o *Simulation, err error) {

	// new sim with default values
	o = new(Simulation)
	o.Solver.SetDefault()

	// decode
	if isYaml {
		err = yaml.Unmarshal(b, o)
	} else {
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, err
	}

	// set solver constants
	o.Solver.PostProcess()

	// mesh
	o.Ndim = 1
	if o.Mesh.Type == "" {
		o.Mesh.Type = "lin2"
	}
	if o.Mesh.Nel < 1 {
		return nil, chk.Err("number of elements must be at least 1. nel = %d is invalid", o.Mesh.Nel)
	}
	if o.Mesh.Zmax <= o.Mesh.Zmin {
		return nil, chk.Err("zmax must be greater than zmin. zmin = %g, zmax = %g", o.Mesh.Zmin, o.Mesh.Zmax)
	}

	// time control
	if o.Data.Steady {
		o.Control.Dt = 0
		if o.Control.Tf < 1e-14 {
			o.Control.Tf = 1
		}
	} else if o.Control.Dt <= 0 || o.Control.Tf <= 0 {
		return nil, chk.Err("transient simulations require positive tf and dt. tf = %g, dt = %g", o.Control.Tf, o.Control.Dt)
	}

	// material
	if o.Data.Mat == "" && len(o.Materials) == 1 {
		o.Data.Mat = o.Materials[0].Name
	}
	o.Mat = o.Materials.Get(o.Data.Mat)
	if o.Mat == nil {
		return nil, chk.Err("cannot find material named %q", o.Data.Mat)
	}
	err = o.Mat.Alloc(o.Ndim)
	if err != nil {
		return nil, err
	}
	nph := o.Mat.Model.Nph

	// kernels
	if len(o.Kernels) == 0 {
		for i := 0; i < nph; i++ {
			o.Kernels = append(o.Kernels, &KernelData{Type: "flux", Var: i})
			if !o.Data.Steady {
				o.Kernels = append(o.Kernels, &KernelData{Type: "masschange", Var: i})
			}
		}
	}

	// boundary conditions and initial values
	for _, bc := range o.Ebcs {
		if bc.Side != "bottom" && bc.Side != "top" {
			return nil, chk.Err("side of boundary condition must be \"bottom\" or \"top\". %q is invalid", bc.Side)
		}
		if err = o.Mat.Model.CheckPhase("variable of boundary condition", bc.Var); err != nil {
			return nil, err
		}
	}
	for _, ini := range o.Inis {
		if err = o.Mat.Model.CheckPhase("variable of initial values", ini.Var); err != nil {
			return nil, err
		}
		if ini.H == 0 {
			ini.H = o.Mesh.Zmax
		}
	}
	return
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.NmaxIt = 20
	o.Atol = 1e-6
	o.Rtol = 1e-6
	o.FbTol = 1e-8
	o.FbMin = 1e-12
	o.Eps = 1e-16
}

// PostProcess performs a post-processing of the just read file
func (o *SolverData) PostProcess() {
	if o.Nworkers < 1 {
		o.Nworkers = 1
	}
	o.Itol = utl.Max(10.0*o.Eps/o.Rtol, utl.Min(0.01, math.Sqrt(o.Rtol)))
}

// GetEbcFunc returns the function of an essential boundary condition
func (o *Simulation) GetEbcFunc(bc *EbcData) (fun.Func, error) {
	return o.Functions.Get(bc.Func)
}

// GetKernelFunc returns the function of a kernel; nil if not given
func (o *Simulation) GetKernelFunc(k *KernelData) (fun.Func, error) {
	if k.Func == "" {
		return nil, nil
	}
	return o.Functions.Get(k.Func)
}
