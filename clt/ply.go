// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package clt implements the Classical Laminate Theory computation of
// effective in-plane stiffness properties of fibre-composite laminates
package clt

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// Ply holds the material properties and orientation of one lamina
//
//            2 ↖       ↗ 1 (fibre direction)
//               ╲     ╱
//                ╲   ╱  θ
//        ─────────╲ ╱──────────→ x
//
type Ply struct {

	// input
	Ang  float64 // orientation angle θ of fibres w.r.t global x-axis [deg]
	E1   float64 // axial Young's modulus (fibre direction)
	E2   float64 // transverse Young's modulus
	Nu12 float64 // major Poisson's ratio ν12
	G12  float64 // in-plane shear modulus
	H    float64 // ply thickness

	// derived
	ν21 float64 // minor Poisson's ratio: ν21 = ν12·E2/E1
	den float64 // 1 - ν12·ν21
}

// Init initialises the ply from a list of parameters and validates it
func (o *Ply) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "ang":
			o.Ang = p.V
		case "E1":
			o.E1 = p.V
		case "E2":
			o.E2 = p.V
		case "nu12":
			o.Nu12 = p.V
		case "G12":
			o.G12 = p.V
		case "h":
			o.H = p.V
		default:
			return chk.Err("ply: parameter named %q is incorrect", p.N)
		}
	}
	return o.Validate()
}

// GetPrms gets (an example) of parameters
func (o Ply) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "ang", V: 45},
		&fun.Prm{N: "E1", V: 40},
		&fun.Prm{N: "E2", V: 9.8},
		&fun.Prm{N: "nu12", V: 0.3},
		&fun.Prm{N: "G12", V: 2.8},
		&fun.Prm{N: "h", V: 0.4},
	}
}

// Validate checks the material properties and computes derived quantities.
// ν21 follows from the reciprocal relation ν21·E1 = ν12·E2; the resulting
// product ν12·ν21 must be smaller than one for Ql to be well-defined.
func (o *Ply) Validate() (err error) {
	if o.E1 <= 0 || o.E2 <= 0 || o.G12 <= 0 {
		return chk.Err("ply: moduli must be positive: E1=%g, E2=%g, G12=%g", o.E1, o.E2, o.G12)
	}
	if o.H <= 0 {
		return chk.Err("ply: thickness must be positive: h=%g", o.H)
	}
	if o.Nu12 < 0 || o.Nu12 >= 1 {
		return chk.Err("ply: Poisson's ratio is out of range: ν12=%g", o.Nu12)
	}
	o.ν21 = o.Nu12 * o.E2 / o.E1
	o.den = 1.0 - o.Nu12*o.ν21
	if o.den < MINDEN {
		return chk.Err("ply: invalid material properties: ν12·ν21=%g must be smaller than one", o.Nu12*o.ν21)
	}
	return
}

// CalcQl computes the local (fibre-aligned) reduced stiffness matrix
//
//        ┌                                   ┐
//    1   │ E1       ν21·E1    0              │
//   ─── ·│ ν12·E2   E2        0              │
//   den  │ 0        0         G12·den        │
//        └                                   ┘   den = 1 - ν12·ν21
//
func (o *Ply) CalcQl() (Ql [][]float64, err error) {
	if err = o.Validate(); err != nil {
		return
	}
	Ql = la.MatAlloc(3, 3)
	Ql[0][0] = o.E1 / o.den
	Ql[0][1] = o.ν21 * o.E1 / o.den
	Ql[1][0] = o.Nu12 * o.E2 / o.den
	Ql[1][1] = o.E2 / o.den
	Ql[2][2] = o.G12
	return
}

// CalcT computes the transformation matrix for rotation by the ply angle
// (s = sin θ, c = cos θ)
//
//        ┌                   ┐
//        │ c²    s²    -2sc  │
//    T = │ s²    c²     2sc  │
//        │ sc   -sc   c²-s²  │
//        └                   ┘
//
func (o *Ply) CalcT() (T [][]float64) {
	θ := o.Ang * math.Pi / 180.0
	s, c := math.Sin(θ), math.Cos(θ)
	cc, ss := c*c, s*s
	sc := s * c
	T = la.MatAlloc(3, 3)
	T[0][0], T[0][1], T[0][2] = cc, ss, -2.0*sc
	T[1][0], T[1][1], T[1][2] = ss, cc, 2.0*sc
	T[2][0], T[2][1], T[2][2] = sc, -sc, cc-ss
	return
}

// CalcQ computes the global (laminate-frame) ply stiffness matrix
//   Q := T * Ql * trans(T)
func (o *Ply) CalcQ() (Q [][]float64, err error) {
	Ql, err := o.CalcQl()
	if err != nil {
		return nil, err
	}
	T := o.CalcT()
	Tt := la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			Tt[i][j] = T[j][i]
		}
	}
	Q = la.MatAlloc(3, 3)
	la.MatTrMul3(Q, 1, Tt, Ql, Tt) // Q := 1 * trans(Tt) * Ql * Tt
	return
}
