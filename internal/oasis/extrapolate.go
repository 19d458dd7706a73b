// Package oasis extrapolates value histories by repeated differencing.
package oasis

import (
	"context"
	"errors"
	"time"

	"svw.info/aoc2023/internal/domain"
	"svw.info/aoc2023/internal/parse"
	"svw.info/aoc2023/internal/ports"
)

var errNoHistory = errors.New("empty history")

// differences returns the stack of difference rows of seq, seq first,
// ending with the first all-zero row (or a single-element row).
func differences(seq []int) [][]int {
	rows := [][]int{seq}
	for cur := seq; len(cur) > 1 && !allZero(cur); {
		next := make([]int, len(cur)-1)
		for i := range next {
			next[i] = cur[i+1] - cur[i]
		}
		rows = append(rows, next)
		cur = next
	}
	return rows
}

func allZero(s []int) bool {
	for _, v := range s {
		if v != 0 {
			return false
		}
	}
	return true
}

// Next extrapolates the value following seq.
func Next(seq []int) (int, error) {
	if len(seq) == 0 {
		return 0, errNoHistory
	}
	rows := differences(seq)
	v := 0
	for i := len(rows) - 1; i >= 0; i-- {
		v += rows[i][len(rows[i])-1]
	}
	return v, nil
}

// Prev extrapolates the value preceding seq.
func Prev(seq []int) (int, error) {
	if len(seq) == 0 {
		return 0, errNoHistory
	}
	rows := differences(seq)
	v := 0
	for i := len(rows) - 1; i >= 0; i-- {
		v = rows[i][0] - v
	}
	return v, nil
}

// Parse reads one space separated history per line.
func Parse(input []byte) ([][]int, error) {
	lines := parse.Lines(input)
	if len(lines) == 0 {
		return nil, errNoHistory
	}
	out := make([][]int, 0, len(lines))
	for _, l := range lines {
		seq, err := parse.Ints(l.No, l.Text)
		if err != nil {
			return nil, err
		}
		out = append(out, seq)
	}
	return out, nil
}

// SumWith adds fn over all histories.
func SumWith(seqs [][]int, fn func([]int) (int, error)) (int, error) {
	total := 0
	for _, s := range seqs {
		v, err := fn(s)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

// Solver answers day 9.
type Solver struct{}

func NewSolver() *Solver { return &Solver{} }

func (s *Solver) Day() int { return 9 }

func (s *Solver) Solve(ctx context.Context, input []byte) (domain.Answer, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return domain.Answer{}, ports.Stats{}, err
	}
	seqs, err := Parse(input)
	if err != nil {
		return domain.Answer{}, ports.Stats{Duration: time.Since(start)}, err
	}
	p1, err := SumWith(seqs, Next)
	if err != nil {
		return domain.Answer{}, ports.Stats{Duration: time.Since(start)}, err
	}
	p2, err := SumWith(seqs, Prev)
	if err != nil {
		return domain.Answer{}, ports.Stats{Duration: time.Since(start)}, err
	}
	return domain.Answer{Day: s.Day(), Part1: p1, Part2: p2},
		ports.Stats{Records: len(seqs), Duration: time.Since(start)}, nil
}
