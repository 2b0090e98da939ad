// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the presentation of laminate stiffness results
package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/golam/clt"
)

// Report prints per-ply stiffness matrices, the laminate matrices and
// the engineering constants of one computation
func Report(lam *clt.Laminate, res *clt.Result) {

	// per-ply matrices
	for i, p := range lam.Plies {
		io.Pf("\nply #%d: θ=%g°, E1=%g, E2=%g\n", i, p.Ang, p.E1, p.E2)
		la.PrintMat("Q", res.Qplies[i], "%13.6f", false)
	}

	// laminate matrices
	io.Pf("\nlaminate: %d plies, h_tot=%g\n", len(lam.Plies), res.Htot)
	la.PrintMat("A ", res.A, "%13.6f", false)
	la.PrintMat("Q*", res.Qs, "%13.6f", false)
	la.PrintMat("S*", res.Ss, "%13.8f", false)

	// engineering constants
	io.Pf("\nEx=%.8g Ey=%.8g Gxy=%.8g νxy=%.8g\n", res.Ex, res.Ey, res.Gxy, res.Nuxy)
}

// Sweep prints a table with the engineering constants of the laminate
// rotated by each angle φ [deg] in φvals
func Sweep(lam *clt.Laminate, φvals []float64) (err error) {
	io.Pf("\n%8s%15s%15s%15s%15s\n", "φ [deg]", "Ex", "Ey", "Gxy", "νxy")
	for _, φ := range φvals {
		res, err := lam.Rotated(φ).Stiffness()
		if err != nil {
			return err
		}
		io.Pf("%8.2f%15.6f%15.6f%15.6f%15.6f\n", φ, res.Ex, res.Ey, res.Gxy, res.Nuxy)
	}
	return
}
