// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clt

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// tolerances
const (
	MINDEN = 1e-10 // minimum value of 1 - ν12·ν21
	MINDET = 1e-20 // minimum determinant of average stiffness matrix
)

// Laminate holds an ordered stack of plies. The order defines the
// stacking sequence; the in-plane (extensional) stiffness does not
// depend on it since no coupling terms are computed.
type Laminate struct {
	Plies []*Ply
}

// NewLaminate creates a laminate from per-ply property arrays, all of
// equal length; ang [deg], moduli and thicknesses in consistent units
func NewLaminate(ang, e1, e2, nu12, g12, h []float64) (o *Laminate, err error) {
	n := len(ang)
	if len(e1) != n || len(e2) != n || len(nu12) != n || len(g12) != n || len(h) != n {
		return nil, chk.Err("laminate: property arrays have mismatched lengths: ang=%d, E1=%d, E2=%d, ν12=%d, G12=%d, h=%d",
			len(ang), len(e1), len(e2), len(nu12), len(g12), len(h))
	}
	if n < 1 {
		return nil, chk.Err("laminate: at least one ply is required")
	}
	o = &Laminate{Plies: make([]*Ply, n)}
	for i := 0; i < n; i++ {
		o.Plies[i] = &Ply{Ang: ang[i], E1: e1[i], E2: e2[i], Nu12: nu12[i], G12: g12[i], H: h[i]}
		if err = o.Plies[i].Validate(); err != nil {
			return nil, chk.Err("laminate: ply #%d is invalid: %v", i, err)
		}
	}
	return
}

// Validate checks all plies and the total thickness
func (o *Laminate) Validate() (err error) {
	if len(o.Plies) < 1 {
		return chk.Err("laminate: at least one ply is required")
	}
	for i, p := range o.Plies {
		if err = p.Validate(); err != nil {
			return chk.Err("laminate: ply #%d is invalid: %v", i, err)
		}
	}
	if o.Thickness() <= 0 {
		return chk.Err("laminate: total thickness must be positive")
	}
	return
}

// Thickness returns the total thickness of the laminate
func (o *Laminate) Thickness() (htot float64) {
	for _, p := range o.Plies {
		htot += p.H
	}
	return
}

// Rotated returns a copy of this laminate with all ply angles shifted
// by φ [deg]; material properties and thicknesses are preserved
func (o *Laminate) Rotated(φ float64) (rot *Laminate) {
	rot = &Laminate{Plies: make([]*Ply, len(o.Plies))}
	for i, p := range o.Plies {
		q := *p
		q.Ang += φ
		rot.Plies[i] = &q
	}
	return
}

// Stiffness computes the effective in-plane stiffness of the laminate:
// the thickness-weighted extensional stiffness A, the average stiffness
// Q* = A/h_tot, the compliance S* = inverse(Q*) and the engineering
// constants Ex, Ey, Gxy and νxy. No partial results are returned on
// failure.
func (o *Laminate) Stiffness() (res *Result, err error) {

	// validate input
	if err = o.Validate(); err != nil {
		return nil, err
	}

	// per-ply global stiffness and assembly: A = Σ Qi·hi
	res = &Result{
		Qplies: make([][][]float64, len(o.Plies)),
		A:      la.MatAlloc(3, 3),
		Qs:     la.MatAlloc(3, 3),
		Ss:     la.MatAlloc(3, 3),
		Htot:   o.Thickness(),
	}
	for i, p := range o.Plies {
		res.Qplies[i], err = p.CalcQ()
		if err != nil {
			return nil, chk.Err("laminate: ply #%d is invalid: %v", i, err)
		}
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				res.A[j][k] += res.Qplies[i][j][k] * p.H
			}
		}
	}

	// average stiffness and compliance
	for j := 0; j < 3; j++ {
		for k := 0; k < 3; k++ {
			res.Qs[j][k] = res.A[j][k] / res.Htot
		}
	}
	_, err = la.MatInv(res.Ss, res.Qs, MINDET)
	if err != nil {
		return nil, chk.Err("laminate: average stiffness matrix is singular: %v", err)
	}

	// engineering constants
	if res.Ss[0][0] == 0 || res.Ss[1][1] == 0 || res.Ss[2][2] == 0 {
		return nil, chk.Err("laminate: compliance matrix has zero diagonal components")
	}
	res.Ex = 1.0 / res.Ss[0][0]
	res.Ey = 1.0 / res.Ss[1][1]
	res.Gxy = 1.0 / res.Ss[2][2]
	res.Nuxy = -res.Ss[1][0] / res.Ss[0][0]
	return
}
