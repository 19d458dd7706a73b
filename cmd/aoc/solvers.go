package main

import (
	"svw.info/aoc2023/internal/almanac"
	"svw.info/aoc2023/internal/boatrace"
	"svw.info/aoc2023/internal/camelcards"
	"svw.info/aoc2023/internal/cubes"
	"svw.info/aoc2023/internal/oasis"
	"svw.info/aoc2023/internal/ports"
	"svw.info/aoc2023/internal/schematic"
	"svw.info/aoc2023/internal/scratchcard"
	"svw.info/aoc2023/internal/trebuchet"
	"svw.info/aoc2023/internal/wasteland"
)

// solvers returns one solver per implemented day.
func solvers() []ports.Solver {
	return []ports.Solver{
		trebuchet.NewSolver(),
		cubes.NewSolver(),
		schematic.NewSolver(),
		scratchcard.NewSolver(),
		almanac.NewSolver(),
		boatrace.NewSolver(),
		camelcards.NewSolver(),
		wasteland.NewSolver(),
		oasis.NewSolver(),
	}
}
