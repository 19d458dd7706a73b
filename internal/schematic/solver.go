package schematic

import (
	"context"
	"time"

	"svw.info/aoc2023/internal/domain"
	"svw.info/aoc2023/internal/ports"
)

// Solver answers day 3: part numbers and gear ratios.
type Solver struct{}

func NewSolver() *Solver { return &Solver{} }

func (s *Solver) Day() int { return 3 }

func (s *Solver) Solve(ctx context.Context, input []byte) (domain.Answer, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return domain.Answer{}, ports.Stats{}, err
	}
	g, err := Parse(input)
	if err != nil {
		return domain.Answer{}, ports.Stats{Duration: time.Since(start)}, err
	}
	ans := domain.Answer{Day: s.Day(), Part1: g.PartSum(), Part2: g.GearRatioSum()}
	return ans, ports.Stats{Records: g.Height(), Duration: time.Since(start)}, nil
}
