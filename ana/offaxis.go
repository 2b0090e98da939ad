// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// OffAxisPly implements the closed-form engineering constants of a
// single unidirectional orthotropic ply loaded off-axis; i.e. with the
// fibres rotated by θ with respect to the loading frame
type OffAxisPly struct {

	// input
	e1  float64 // axial Young's modulus
	e2  float64 // transverse Young's modulus
	ν12 float64 // major Poisson's ratio
	g12 float64 // in-plane shear modulus
}

// Init initialises this structure
func (o *OffAxisPly) Init(prms fun.Prms) {

	// default values
	o.e1 = 40.0
	o.e2 = 9.8
	o.ν12 = 0.3
	o.g12 = 2.8

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E1":
			o.e1 = p.V
		case "E2":
			o.e2 = p.V
		case "nu12":
			o.ν12 = p.V
		case "G12":
			o.g12 = p.V
		}
	}
}

// Constants computes the engineering constants at fibre angle θ [deg]
func (o OffAxisPly) Constants(θdeg float64) (ex, ey, gxy, νxy float64) {

	// auxiliary
	θ := θdeg * math.Pi / 180.0
	s, c := math.Sin(θ), math.Cos(θ)
	cc, ss := c*c, s*s
	c4, s4 := cc*cc, ss*ss
	sscc := ss * cc

	// compliance-based solution
	ex = 1.0 / (c4/o.e1 + (1.0/o.g12-2.0*o.ν12/o.e1)*sscc + s4/o.e2)
	ey = 1.0 / (s4/o.e1 + (1.0/o.g12-2.0*o.ν12/o.e1)*sscc + c4/o.e2)
	gxy = 1.0 / ((2.0/o.e1+2.0/o.e2+4.0*o.ν12/o.e1-1.0/o.g12)*2.0*sscc + (s4+c4)/o.g12)
	νxy = ex * (o.ν12/o.e1*(s4+c4) - (1.0/o.e1+1.0/o.e2-1.0/o.g12)*sscc)
	return
}

// CompareConstants compares numerically obtained engineering constants
// with the analytical solution at fibre angle θ [deg]
func (o OffAxisPly) CompareConstants(θdeg, ex, ey, gxy, νxy, tol float64, verbose bool) (emax float64) {
	aex, aey, agxy, aνxy := o.Constants(θdeg)
	if verbose {
		chk.PrintAnaNum("Ex ", tol, aex, ex, verbose)
		chk.PrintAnaNum("Ey ", tol, aey, ey, verbose)
		chk.PrintAnaNum("Gxy", tol, agxy, gxy, verbose)
		chk.PrintAnaNum("νxy", tol, aνxy, νxy, verbose)
	}
	for _, e := range []float64{math.Abs(aex - ex), math.Abs(aey - ey), math.Abs(agxy - gxy), math.Abs(aνxy - νxy)} {
		if e > emax {
			emax = e
		}
	}
	return
}
