// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

// options holds the flags shared by all commands
type options struct {
	verbose bool   // show messages
	alias   string // word appended to the simulation key
}

// newRootCmd returns the root command with all subcommands
func newRootCmd() *cobra.Command {
	opts := new(options)
	root := &cobra.Command{
		Use:   "richards",
		Short: "Finite element solver of the multiphase Richards equation in 1-D columns",
		Long: `richards solves the multiphase Richards equation along a column of porous medium.

Simulation files are JSON (.json) or YAML (.yaml, .yml) and hold the materials,
the mesh, the terms of the weak form (kernels), boundary conditions, initial values,
probes and solver settings.

Examples:
  richards run column.json           # solve and write CSV profiles and summary
  richards run column.yaml --plot    # also plot profiles
  richards check column.json         # compare analytic and numerical Jacobians
  richards models                    # list available models and kernels`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show messages")
	root.PersistentFlags().StringVar(&opts.alias, "alias", "", "Word to be appended to the simulation key")
	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newCheckCmd(opts))
	root.AddCommand(newModelsCmd())
	return root
}

// Execute runs the command line and returns the exit code
func Execute(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		return 1
	}
	return 0
}
