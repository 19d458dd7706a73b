// Package scratchcard scores scratchcards and resolves won copies.
package scratchcard

import (
	"context"
	"errors"
	"strings"
	"time"

	"svw.info/aoc2023/internal/domain"
	"svw.info/aoc2023/internal/parse"
	"svw.info/aoc2023/internal/ports"
)

// Card lists winning numbers and the numbers held.
type Card struct {
	ID      int
	Winning []int
	Have    []int
}

var errNoCards = errors.New("no cards")

// ParseCard parses "Card 3:  1 21 53 | 69 82 63".
func ParseCard(line int, s string) (Card, error) {
	head, body, err := parse.Cut(line, s, ":")
	if err != nil {
		return Card{}, err
	}
	id, ok := strings.CutPrefix(head, "Card")
	if !ok {
		return Card{}, parse.Errorf(line, "missing \"Card\" prefix")
	}
	var c Card
	if c.ID, err = parse.Int(line, id); err != nil {
		return Card{}, err
	}
	win, have, err := parse.Cut(line, body, "|")
	if err != nil {
		return Card{}, err
	}
	if c.Winning, err = parse.Ints(line, win); err != nil {
		return Card{}, err
	}
	if c.Have, err = parse.Ints(line, have); err != nil {
		return Card{}, err
	}
	return c, nil
}

// Parse reads one card per line.
func Parse(input []byte) ([]Card, error) {
	lines := parse.Lines(input)
	if len(lines) == 0 {
		return nil, errNoCards
	}
	cards := make([]Card, 0, len(lines))
	for _, l := range lines {
		c, err := ParseCard(l.No, l.Text)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Matches counts held numbers that are winning numbers.
func (c Card) Matches() int {
	win := make(map[int]bool, len(c.Winning))
	for _, w := range c.Winning {
		win[w] = true
	}
	n := 0
	for _, h := range c.Have {
		if win[h] {
			n++
			win[h] = false // count duplicates on the held side once
		}
	}
	return n
}

// Points is 2^(m-1) for m matches, 0 without matches.
func (c Card) Points() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// TotalPoints sums the points of every card.
func TotalPoints(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Points()
	}
	return total
}

// TotalCards plays out the copy rule: a card with m matches wins one copy
// of each of the next m cards. Copies never extend past the last card.
func TotalCards(cards []Card) int {
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, c := range cards {
		total += copies[i]
		m := c.Matches()
		for j := i + 1; j <= i+m && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return total
}

// Solver answers day 4.
type Solver struct{}

func NewSolver() *Solver { return &Solver{} }

func (s *Solver) Day() int { return 4 }

func (s *Solver) Solve(ctx context.Context, input []byte) (domain.Answer, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return domain.Answer{}, ports.Stats{}, err
	}
	cards, err := Parse(input)
	if err != nil {
		return domain.Answer{}, ports.Stats{Duration: time.Since(start)}, err
	}
	return domain.Answer{Day: s.Day(), Part1: TotalPoints(cards), Part2: TotalCards(cards)},
		ports.Stats{Records: len(cards), Duration: time.Since(start)}, nil
}
