package main

import "github.com/urfave/cli/v2"

var (
	verboseFlag = cli.BoolFlag{
		Name:  "verbose",
		Usage: "enable debug logging",
	}
	goRoutinesFlag = cli.IntFlag{
		Name:  "goroutines",
		Usage: "number of go-routines used for multi exponentiations, 0 uses all CPUs",
		Value: 0,
	}
	srsFlag = cli.StringFlag{
		Name:  "srs",
		Usage: "path of a trusted setup JSON file, as written by the setup command",
	}
	maxDegreeFlag = cli.IntFlag{
		Name:  "max-degree",
		Usage: "largest degree of a polynomial that can be committed to",
		Value: 4,
	}
	seedFlag = cli.StringFlag{
		Name:  "seed",
		Usage: "INSECURE: derive the trapdoor from this seed instead of system randomness, for reproducible testing only",
	}
	outFlag = cli.StringFlag{
		Name:     "out",
		Usage:    "path to write the trusted setup JSON file to",
		Required: true,
	}
	coeffsFlag = cli.StringFlag{
		Name:  "coeffs",
		Usage: "comma separated polynomial coefficients in ascending order, e.g. -60,114,-19",
	}
	pointsFlag = cli.StringFlag{
		Name:  "points",
		Usage: "comma separated x:y pairs to interpolate, e.g. 1:35,2:92,3:111",
	}
	zFlag = cli.StringFlag{
		Name:     "z",
		Usage:    "evaluation point",
		Required: true,
	}
	valueFlag = cli.StringFlag{
		Name:     "value",
		Usage:    "claimed evaluation at the point",
		Required: true,
	}
	commitmentFlag = cli.StringFlag{
		Name:     "commitment",
		Usage:    "hex encoded compressed commitment",
		Required: true,
	}
	proofFlag = cli.StringFlag{
		Name:     "proof",
		Usage:    "hex encoded compressed proof",
		Required: true,
	}
	interpolateFlag = cli.BoolFlag{
		Name:  "interpolate",
		Usage: "build the demo polynomial by interpolating points instead of from its coefficients",
	}
)
