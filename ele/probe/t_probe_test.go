// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probe

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/hereiam-at-mit-dot-edu/moose/mdl/seff"
)

func provider(tst *testing.T) *seff.Provider {
	vg := fun.Prms{
		&fun.Prm{N: "al", V: 1.2},
		&fun.Prm{N: "m", V: 0.4},
		&fun.Prm{N: "iw", V: 0},
		&fun.Prm{N: "ig", V: 1},
	}
	prv, err := seff.AllocProvider([]string{"vg2water", "vg2gas"}, []fun.Prms{vg, vg})
	if err != nil {
		tst.Errorf("AllocProvider failed: %v\n", err)
		return nil
	}
	return prv
}

func Test_probe01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("probe01. values")

	prv := provider(tst)
	if prv == nil {
		return
	}
	p := []float64{-0.3, 0.4}
	s := prv.Seff(p)
	ds := prv.Dseff(p)
	d2s := prv.D2seff(p)
	for i := 0; i < 2; i++ {
		pb, err := NewSeff(prv, i)
		if err != nil {
			tst.Errorf("NewSeff failed: %v\n", err)
			return
		}
		chk.Scalar(tst, pb.Key(), 1e-17, pb.Value(p), s[i])
		for j := 0; j < 2; j++ {
			pr, err := NewSeffPrime(prv, i, j)
			if err != nil {
				tst.Errorf("NewSeffPrime failed: %v\n", err)
				return
			}
			chk.Scalar(tst, pr.Key(), 1e-17, pr.Value(p), ds[i][j])
			for k := 0; k < 2; k++ {
				prr, err := NewSeffPrimePrime(prv, i, j, k)
				if err != nil {
					tst.Errorf("NewSeffPrimePrime failed: %v\n", err)
					return
				}
				chk.Scalar(tst, prr.Key(), 1e-17, prr.Value(p), d2s[i][j][k])
			}
		}
	}
	chk.Scalar(tst, "sw + sg", 1e-15, s[0]+s[1], 1)

	// by name
	pb, err := New("seffprimeprime", prv, fun.Prms{
		&fun.Prm{N: "phase", V: 1},
		&fun.Prm{N: "wrt1", V: 0},
		&fun.Prm{N: "wrt2", V: 1},
	})
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if pb.Key() != "d2seff1d0d1" {
		tst.Errorf("key is incorrect: %q\n", pb.Key())
		return
	}
	chk.Scalar(tst, "d2seff1d0d1", 1e-17, pb.Value(p), d2s[1][0][1])
}

func Test_probe02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("probe02. indices")

	prv := provider(tst)
	if prv == nil {
		return
	}
	for _, idx := range []int{-1, 2, 5} {
		msg := io.Sf("Your wrtnum is %d but it must obey 0 <= wrtnum < 2.", idx)
		_, err := NewSeffPrime(prv, 0, idx)
		if err == nil || !strings.Contains(err.Error(), msg) {
			tst.Errorf("NewSeffPrime should have failed with %q. err = %v\n", msg, err)
			return
		}
		_, err = NewSeffPrimePrime(prv, 0, 0, idx)
		if err == nil || !strings.Contains(err.Error(), io.Sf("Your wrtnum2 is %d", idx)) {
			tst.Errorf("NewSeffPrimePrime should have failed. err = %v\n", err)
			return
		}
		_, err = NewSeffPrimePrime(prv, 0, idx, 0)
		if err == nil || !strings.Contains(err.Error(), io.Sf("Your wrtnum1 is %d", idx)) {
			tst.Errorf("NewSeffPrimePrime should have failed. err = %v\n", err)
			return
		}
		_, err = NewSeff(prv, idx)
		if err == nil {
			tst.Errorf("NewSeff should have failed\n")
			return
		}
	}

	// in-range indices of a single-phase provider
	one, err := seff.AllocProvider([]string{"lin"}, []fun.Prms{nil})
	if err != nil {
		tst.Errorf("AllocProvider failed: %v\n", err)
		return
	}
	pr, err := NewSeffPrime(one, 0, 0)
	if err != nil {
		tst.Errorf("NewSeffPrime failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "dseff", 1e-17, pr.Value([]float64{0.3}), 1)
	prr, err := NewSeffPrimePrime(one, 0, 0, 0)
	if err != nil {
		tst.Errorf("NewSeffPrimePrime failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "d2seff", 1e-17, prr.Value([]float64{0.3}), 0)

	// errors
	if _, err = New("seffprime", prv, fun.Prms{&fun.Prm{N: "wrtnum", V: 0}}); err == nil {
		tst.Errorf("New should have failed with wrong parameter\n")
		return
	}
	if _, err = New("suction", prv, nil); err == nil {
		tst.Errorf("New should have failed with unknown probe\n")
		return
	}
	if _, err = NewSeff(nil, 0); err == nil {
		tst.Errorf("NewSeff should have failed without provider\n")
	}
}
