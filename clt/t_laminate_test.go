// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clt

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/golam/ana"
)

func Test_lam01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lam01. angle-ply reference laminate [45°,-45°,0°]")

	lam, err := NewLaminate(
		[]float64{45, -45, 0},
		[]float64{40, 40, 40},
		[]float64{9.8, 9.8, 9.8},
		[]float64{0.3, 0.3, 0.3},
		[]float64{2.8, 2.8, 2.8},
		[]float64{0.4, 0.4, 0.2},
	)
	if err != nil {
		tst.Errorf("NewLaminate failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "h_tot", 1e-15, lam.Thickness(), 1.0)

	res, err := lam.Stiffness()
	if err != nil {
		tst.Errorf("Stiffness failed: %v\n", err)
		return
	}
	io.Pforan("Ex=%.8g Ey=%.8g Gxy=%.8g νxy=%.8g\n", res.Ex, res.Ey, res.Gxy, res.Nuxy)

	chk.Matrix(tst, "Q*", 1e-3, res.Qs, [][]float64{
		{21.8075, 9.7483, 0},
		{9.7483, 15.6313, 0},
		{0, 0, 9.5421},
	})
	chk.Scalar(tst, "Ex ", 1e-4, res.Ex, 15.727973)
	chk.Scalar(tst, "Ey ", 1e-4, res.Ey, 11.273586)
	chk.Scalar(tst, "Gxy", 1e-4, res.Gxy, 9.542054)
	chk.Scalar(tst, "νxy", 1e-5, res.Nuxy, 0.623643)

	// the +45° and -45° plies have equal thickness, hence the shear
	// coupling terms of A cancel exactly with the 0° ply contributing none
	chk.Scalar(tst, "A13", 1e-12, res.A[0][2], 0)
	chk.Scalar(tst, "A23", 1e-12, res.A[1][2], 0)
}

func Test_lam02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lam02. inversion round trip: Q*·S* == I")

	lam, err := NewLaminate(
		[]float64{30, -60, 15, 90},
		[]float64{40, 40, 180, 180},
		[]float64{9.8, 9.8, 10.3, 10.3},
		[]float64{0.3, 0.3, 0.28, 0.28},
		[]float64{2.8, 2.8, 7.17, 7.17},
		[]float64{0.25, 0.25, 0.125, 0.125},
	)
	if err != nil {
		tst.Errorf("NewLaminate failed: %v\n", err)
		return
	}
	res, err := lam.Stiffness()
	if err != nil {
		tst.Errorf("Stiffness failed: %v\n", err)
		return
	}
	I := la.MatAlloc(3, 3)
	la.MatMul(I, 1, res.Qs, res.Ss)
	chk.Matrix(tst, "Q*·S*", 1e-9, I, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})

	// stacking order does not affect the extensional stiffness
	rev := &Laminate{Plies: []*Ply{lam.Plies[3], lam.Plies[2], lam.Plies[1], lam.Plies[0]}}
	resRev, err := rev.Stiffness()
	if err != nil {
		tst.Errorf("Stiffness failed: %v\n", err)
		return
	}
	chk.Matrix(tst, "Q* is order-independent", 1e-14, resRev.Qs, res.Qs)
}

func Test_lam03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lam03. isotropic material at any orientation")

	// G = E/(2(1+ν)) makes the ply isotropic in-plane; the effective
	// constants must equal the ply constants regardless of angles
	E, ν := 10.0, 0.3
	G := E / (2.0 * (1.0 + ν))
	lam, err := NewLaminate(
		[]float64{0, 33, -70},
		[]float64{E, E, E},
		[]float64{E, E, E},
		[]float64{ν, ν, ν},
		[]float64{G, G, G},
		[]float64{0.5, 0.3, 0.2},
	)
	if err != nil {
		tst.Errorf("NewLaminate failed: %v\n", err)
		return
	}
	res, err := lam.Stiffness()
	if err != nil {
		tst.Errorf("Stiffness failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "Ex == E", 1e-12, res.Ex, E)
	chk.Scalar(tst, "Ey == E", 1e-12, res.Ey, E)
	chk.Scalar(tst, "Gxy == G", 1e-12, res.Gxy, G)
	chk.Scalar(tst, "νxy == ν", 1e-12, res.Nuxy, ν)
}

func Test_lam04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lam04. uniform layup equals single off-axis ply")

	// all plies identical: the laminate behaves as one thick ply and
	// must match the closed-form off-axis solution
	θ := 35.0
	lam, err := NewLaminate(
		[]float64{θ, θ, θ},
		[]float64{40, 40, 40},
		[]float64{9.8, 9.8, 9.8},
		[]float64{0.3, 0.3, 0.3},
		[]float64{2.8, 2.8, 2.8},
		[]float64{0.1, 0.5, 0.4},
	)
	if err != nil {
		tst.Errorf("NewLaminate failed: %v\n", err)
		return
	}
	res, err := lam.Stiffness()
	if err != nil {
		tst.Errorf("Stiffness failed: %v\n", err)
		return
	}
	var sol ana.OffAxisPly
	sol.Init(nil)
	emax := sol.CompareConstants(θ, res.Ex, res.Ey, res.Gxy, res.Nuxy, 1e-10, chk.Verbose)
	if emax > 1e-10 {
		tst.Errorf("uniform layup deviates from off-axis solution: emax=%g\n", emax)
		return
	}

	// at 45° the effective moduli along x and y coincide
	res45, err := lam.Rotated(45 - θ).Stiffness()
	if err != nil {
		tst.Errorf("Stiffness failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "Ex == Ey @ 45°", 1e-12, res45.Ex, res45.Ey)
}

func Test_lam05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lam05. input rejection")

	// mismatched array lengths
	_, err := NewLaminate(
		[]float64{45, -45, 0},
		[]float64{40, 40},
		[]float64{9.8, 9.8, 9.8},
		[]float64{0.3, 0.3, 0.3},
		[]float64{2.8, 2.8, 2.8},
		[]float64{0.4, 0.4, 0.2},
	)
	if err == nil {
		tst.Errorf("mismatched array lengths were not caught\n")
		return
	}
	io.Pforan("mismatched lengths: %v\n", err)

	// empty laminate
	_, err = NewLaminate(nil, nil, nil, nil, nil, nil)
	if err == nil {
		tst.Errorf("empty laminate was not caught\n")
		return
	}

	// invalid ply embedded in otherwise fine arrays
	_, err = NewLaminate(
		[]float64{45, 0},
		[]float64{40, 5},
		[]float64{9.8, 20},
		[]float64{0.3, 0.8}, // ν12·ν21 = 2.56 on ply #1
		[]float64{2.8, 2},
		[]float64{0.4, 0.4},
	)
	if err == nil {
		tst.Errorf("invalid ply was not caught\n")
		return
	}
	io.Pforan("invalid ply: %v\n", err)

	// degenerate stiffness: determinant below tolerance
	tiny := 1e-120
	lam := &Laminate{Plies: []*Ply{{Ang: 0, E1: tiny, E2: tiny, Nu12: 0.0, G12: tiny, H: 1}}}
	_, err = lam.Stiffness()
	if err == nil {
		tst.Errorf("singular average stiffness was not caught\n")
		return
	}
	io.Pforan("singular: %v\n", err)
}
