// Package trebuchet recovers calibration values from amended document lines.
package trebuchet

import (
	"context"
	"strings"
	"time"

	"svw.info/aoc2023/internal/domain"
	"svw.info/aoc2023/internal/parse"
	"svw.info/aoc2023/internal/ports"
)

var spelled = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt reports the digit starting at s[i], if any. Spelled digits are
// only recognised when words is set. Matches may overlap ("twone").
func digitAt(s string, i int, words bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !words {
		return 0, false
	}
	for d, w := range spelled {
		if strings.HasPrefix(s[i:], w) {
			return d + 1, true
		}
	}
	return 0, false
}

// Value combines the first and last digit of s into a two-digit number.
func Value(s string, words bool) (int, bool) {
	first, last, found := 0, 0, false
	for i := range len(s) {
		d, ok := digitAt(s, i, words)
		if !ok {
			continue
		}
		if !found {
			first, found = d, true
		}
		last = d
	}
	return first*10 + last, found
}

// Sum adds the calibration values of every line.
func Sum(lines []parse.Line, words bool) (int, error) {
	total := 0
	for _, l := range lines {
		v, ok := Value(l.Text, words)
		if !ok {
			return 0, parse.Errorf(l.No, "no digit in %q", l.Text)
		}
		total += v
	}
	return total, nil
}

// Solver answers day 1.
type Solver struct{}

func NewSolver() *Solver { return &Solver{} }

func (s *Solver) Day() int { return 1 }

func (s *Solver) Solve(ctx context.Context, input []byte) (domain.Answer, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return domain.Answer{}, ports.Stats{}, err
	}
	lines := parse.Lines(input)
	p1, err := Sum(lines, false)
	if err != nil {
		return domain.Answer{}, ports.Stats{Duration: time.Since(start)}, err
	}
	p2, err := Sum(lines, true)
	if err != nil {
		return domain.Answer{}, ports.Stats{Duration: time.Since(start)}, err
	}
	return domain.Answer{Day: s.Day(), Part1: p1, Part2: p2},
		ports.Stats{Records: len(lines), Duration: time.Since(start)}, nil
}
