// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/hereiam-at-mit-dot-edu/moose/out"
	"github.com/stretchr/testify/require"
)

// execute runs the command line with the given arguments and returns the output
func execute(args ...string) (string, error) {
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func Test_cmd01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmd01. models")

	res, err := execute("models")
	require.NoError(tst, err)
	if chk.Verbose {
		io.Pf("%s", res)
	}
	lines := strings.Split(strings.TrimSpace(res), "\n")
	require.Len(tst, lines, len(registries()))
	require.Contains(tst, res, "vg2water")
	require.Contains(tst, res, "bodyforcevoid")
	require.Contains(tst, res, "seffprime")
	require.Contains(tst, res, "lin3")

	_, err = execute("models", "extra")
	require.Error(tst, err)
	require.Equal(tst, 1, Execute([]string{"unknown"}))
}

func Test_cmd02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmd02. run")

	dirout := "/tmp/moose/column-cmd02"
	os.RemoveAll(dirout)
	res, err := execute("run", "../../inp/data/column.yaml", "--alias", "cmd02", "--history", "0")
	require.NoError(tst, err)
	require.Contains(tst, res, dirout)

	sum, err := out.ReadSummary(dirout, "column-cmd02")
	require.NoError(tst, err)
	require.False(tst, sum.Steady)
	require.Equal(tst, 11, len(sum.OutTimes))
	require.Equal(tst, len(sum.OutTimes), len(sum.Files))
	require.Contains(tst, res, sum.RunId)
	for _, fn := range sum.Files {
		_, err = os.Stat(fn)
		require.NoError(tst, err)
	}
	_, err = os.Stat(dirout + "/column-cmd02_hist0.csv")
	require.NoError(tst, err)

	// errors
	_, err = execute("run")
	require.Error(tst, err)
	_, err = execute("run", "../../inp/data/bad.json")
	require.Error(tst, err)
	_, err = execute("run", "../../inp/data/notfound.json")
	require.Error(tst, err)
}

func Test_cmd03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmd03. check Jacobian")

	res, err := execute("check", "../../inp/data/column.json")
	require.NoError(tst, err)
	require.Contains(tst, res, "22 equations")

	res, err = execute("check", "../../inp/data/column.yaml")
	require.NoError(tst, err)
	require.Contains(tst, res, "11 equations")

	_, err = execute("check", "../../inp/data/column.json", "--tol", "-1")
	require.Error(tst, err)
}
