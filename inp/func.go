// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotFdata holds information to plot functions
type PlotFdata struct {
	Ti      float64  `json:"ti" yaml:"ti"`           // initial time
	Tf      float64  `json:"tf" yaml:"tf"`           // final time
	Np      int      `json:"np" yaml:"np"`           // number of points
	Skip    []string `json:"skip" yaml:"skip"`       // skip functions
	WithTxt bool     `json:"withtxt" yaml:"withtxt"` // show text corresponding to initial and final points
}

// FuncData holds function definition
type FuncData struct {
	Name string   `json:"name" yaml:"name"` // name of function. ex: zero, pbot, source, etc.
	Type string   `json:"type" yaml:"type"` // type of function. ex: cte, rmp
	Prms fun.Prms `json:"prms" yaml:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name
//  Note: "zero" and "none" return the zero function
func (o FuncsData) Get(name string) (fcn fun.Func, err error) {
	if name == "zero" || name == "none" {
		fcn = &fun.Cte{C: 0}
		return
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = fun.New(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q\n", name)
	return
}

// PlotAll plot all functions
func (o FuncsData) PlotAll(pd *PlotFdata, dirout, fnkey string) (err error) {
	np := pd.Np
	if np < 2 {
		np = 101
	}
	T := utl.LinSpace(pd.Ti, pd.Tf, np)
	F := make([]float64, np)
	skip := make(map[string]bool)
	for _, name := range pd.Skip {
		skip[name] = true
	}
	for _, f := range o {
		if skip[f.Name] {
			continue
		}
		ff, e := o.Get(f.Name)
		if e != nil {
			return e
		}
		for i, t := range T {
			F[i] = ff.F(t, nil)
		}
		plt.Reset()
		plt.Plot(T, F, "'b-', clip_on=0")
		if pd.WithTxt {
			plt.Text(T[0], F[0], io.Sf("%g", F[0]), "")
			plt.Text(T[np-1], F[np-1], io.Sf("%g", F[np-1]), "")
		}
		plt.Gll("$t$", io.Sf("$%s$", f.Name), "")
		plt.SaveD(dirout, io.Sf("functions-%s-%s.eps", fnkey, f.Name))
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////////

// String prints one function
func (o FuncData) String() string {
	return io.Sf("    {\"name\":%q, \"type\":%q, \"prms\":%s}", o.Name, o.Type, prmsString(o.Prms))
}

// String prints functions
func (o FuncsData) String() string {
	if len(o) == 0 {
		return "  \"functions\" : []"
	}
	l := "  \"functions\" : [\n"
	for i, f := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", f)
	}
	l += "\n  ]"
	return l
}
