// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/golam/clt"
	"github.com/cpmech/golam/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	verbose := io.ArgToBool(0, true)
	sweep := io.ArgToBool(1, false)
	nφ := io.ArgToInt(2, 19)
	io.Verbose = verbose

	// message
	if verbose {
		io.PfWhite("\nGolam -- Classical Laminate Theory\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable(
			"show messages", "verbose", verbose,
			"print rotation sweep table", "sweep", sweep,
			"number of sweep angles", "nphi", nφ,
		))
	}

	// profiling?
	defer utl.DoProf(false)()

	// reference layup: angle-ply [45°, -45°, 0°] laminate; GPa and mm
	lam, err := clt.NewLaminate(
		[]float64{45, -45, 0},
		[]float64{40, 40, 40},
		[]float64{9.8, 9.8, 9.8},
		[]float64{0.3, 0.3, 0.3},
		[]float64{2.8, 2.8, 2.8},
		[]float64{0.4, 0.4, 0.2},
	)
	if err != nil {
		chk.Panic("cannot create laminate:\n%v", err)
	}

	// compute and report effective stiffness
	res, err := lam.Stiffness()
	if err != nil {
		chk.Panic("stiffness computation failed:\n%v", err)
	}
	out.Report(lam, res)

	// rotation sweep
	if sweep {
		err = out.Sweep(lam, utl.LinSpace(0, 180, nφ))
		if err != nil {
			chk.Panic("rotation sweep failed:\n%v", err)
		}
	}
}
