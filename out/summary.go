// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Summary records summary of outputs
type Summary struct {
	RunId    string    `json:"runid"`    // unique identifier of run
	Key      string    `json:"key"`      // simulation key
	Desc     string    `json:"desc"`     // description of simulation
	Steady   bool      `json:"steady"`   // steady simulation
	Nph      int       `json:"nph"`      // number of phases
	Nnod     int       `json:"nnod"`     // number of nodes
	Keys     []string  `json:"keys"`     // keys of columns in profiles
	OutTimes []float64 `json:"outtimes"` // output times
	NumIts   []int     `json:"numits"`   // number of Newton iterations to reach each output time
	CpuTime  string    `json:"cputime"`  // cpu time of run
	Files    []string  `json:"files"`    // profile files
}

// SummaryPath returns the path of the summary file
func SummaryPath(dirout, fnkey string) string {
	return filepath.Join(dirout, fnkey+"_sum.json")
}

// GetSummary collects the summary of results
func (o *Results) GetSummary(files []string) *Summary {
	return &Summary{
		RunId:    o.RunId,
		Key:      o.Main.Sim.Key,
		Desc:     o.Main.Sim.Data.Desc,
		Steady:   o.Main.Sim.Data.Steady,
		Nph:      o.Dom.Nph,
		Nnod:     len(o.Dom.Nodes),
		Keys:     o.Keys,
		OutTimes: o.Sum.OutTimes,
		NumIts:   o.Sum.NumIts,
		CpuTime:  o.Main.CpuTime.String(),
		Files:    files,
	}
}

// Save saves summary to disc
func (o Summary) Save(dirout string) (fn string, err error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	err = enc.Encode(o)
	if err != nil {
		return "", chk.Err("cannot encode summary: %v", err)
	}
	fn = SummaryPath(dirout, o.Key)
	io.WriteFileD(dirout, filepath.Base(fn), &buf)
	return
}

// ReadSummary reads summary back
func ReadSummary(dirout, fnkey string) (o *Summary, err error) {
	fn := SummaryPath(dirout, fnkey)
	fil, err := os.Open(fn)
	if err != nil {
		return nil, chk.Err("cannot open summary file %q: %v", fn, err)
	}
	defer fil.Close()
	o = new(Summary)
	err = json.NewDecoder(fil).Decode(o)
	if err != nil {
		return nil, chk.Err("cannot decode summary file %q: %v", fn, err)
	}
	return
}

// WriteAll writes profiles of all output times and the summary; returns the summary
func (o *Results) WriteAll(dirout string) (sum *Summary, err error) {
	files, err := o.WriteProfiles(dirout)
	if err != nil {
		return
	}
	sum = o.GetSummary(files)
	_, err = sum.Save(dirout)
	return
}
