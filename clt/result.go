// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clt

// Result holds the outcome of one laminate stiffness computation.
// All quantities are set once by Laminate.Stiffness and must not be
// modified afterwards.
type Result struct {
	Qplies [][][]float64 // global stiffness matrix of each ply [nplies][3][3]
	A      [][]float64   // extensional stiffness: A = Σ Qi·hi [3][3]
	Qs     [][]float64   // average stiffness: Q* = A/h_tot [3][3]
	Ss     [][]float64   // compliance: S* = inverse(Q*) [3][3]
	Htot   float64       // total thickness
	Ex     float64       // effective Young's modulus along x
	Ey     float64       // effective Young's modulus along y
	Gxy    float64       // effective shear modulus
	Nuxy   float64       // effective Poisson's ratio νxy
}
