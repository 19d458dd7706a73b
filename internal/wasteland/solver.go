package wasteland

import (
	"context"
	"time"

	"svw.info/aoc2023/internal/domain"
	"svw.info/aoc2023/internal/ports"
)

// Solver answers day 8.
type Solver struct{}

func NewSolver() *Solver { return &Solver{} }

func (s *Solver) Day() int { return 8 }

func (s *Solver) Solve(ctx context.Context, input []byte) (domain.Answer, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return domain.Answer{}, ports.Stats{}, err
	}
	n, err := Parse(input)
	if err != nil {
		return domain.Answer{}, ports.Stats{Duration: time.Since(start)}, err
	}
	p1, err := n.StepsToFinish(ctx)
	if err != nil {
		return domain.Answer{}, ports.Stats{Duration: time.Since(start)}, err
	}
	p2, err := n.GhostSteps(ctx)
	if err != nil {
		return domain.Answer{}, ports.Stats{Duration: time.Since(start)}, err
	}
	return domain.Answer{Day: s.Day(), Part1: p1, Part2: p2},
		ports.Stats{Records: len(n.Nodes), Duration: time.Since(start)}, nil
}
