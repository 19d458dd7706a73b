// Package cubes evaluates the cube drawing game.
package cubes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"svw.info/aoc2023/internal/domain"
	"svw.info/aoc2023/internal/parse"
	"svw.info/aoc2023/internal/ports"
)

// Round is one handful of cubes.
type Round struct {
	Red, Green, Blue int
}

// Game is a numbered sequence of rounds.
type Game struct {
	ID     int
	Rounds []Round
}

// Bag is the part one bag content.
var Bag = Round{Red: 12, Green: 13, Blue: 14}

var errNoGames = errors.New("no games")

// ParseGame parses "Game <id>: 3 blue, 4 red; 1 red, 2 green".
func ParseGame(line int, s string) (Game, error) {
	head, body, err := parse.Cut(line, s, ":")
	if err != nil {
		return Game{}, err
	}
	id, ok := strings.CutPrefix(head, "Game ")
	if !ok {
		return Game{}, parse.Errorf(line, "missing \"Game\" prefix")
	}
	var g Game
	if g.ID, err = parse.Int(line, id); err != nil {
		return Game{}, err
	}
	for _, rs := range strings.Split(body, ";") {
		var r Round
		for _, draw := range strings.Split(rs, ",") {
			f := strings.Fields(draw)
			if len(f) != 2 {
				return Game{}, parse.Errorf(line, "bad draw %q", strings.TrimSpace(draw))
			}
			n, err := parse.Int(line, f[0])
			if err != nil {
				return Game{}, err
			}
			switch f[1] {
			case "red":
				r.Red += n
			case "green":
				r.Green += n
			case "blue":
				r.Blue += n
			default:
				return Game{}, parse.Errorf(line, "unknown color %q", f[1])
			}
		}
		g.Rounds = append(g.Rounds, r)
	}
	return g, nil
}

// Parse reads one game per line.
func Parse(input []byte) ([]Game, error) {
	lines := parse.Lines(input)
	if len(lines) == 0 {
		return nil, errNoGames
	}
	games := make([]Game, 0, len(lines))
	for _, l := range lines {
		g, err := ParseGame(l.No, l.Text)
		if err != nil {
			return nil, fmt.Errorf("parse game: %w", err)
		}
		games = append(games, g)
	}
	return games, nil
}

// Possible reports whether every round fits in bag.
func (g Game) Possible(bag Round) bool {
	for _, r := range g.Rounds {
		if r.Red > bag.Red || r.Green > bag.Green || r.Blue > bag.Blue {
			return false
		}
	}
	return true
}

// Minimum is the smallest bag that makes g possible.
func (g Game) Minimum() Round {
	var m Round
	for _, r := range g.Rounds {
		m.Red = max(m.Red, r.Red)
		m.Green = max(m.Green, r.Green)
		m.Blue = max(m.Blue, r.Blue)
	}
	return m
}

// Power multiplies the three colour counts.
func (r Round) Power() int { return r.Red * r.Green * r.Blue }

// PossibleIDSum sums the ids of the games possible with bag.
func PossibleIDSum(games []Game, bag Round) int {
	total := 0
	for _, g := range games {
		if g.Possible(bag) {
			total += g.ID
		}
	}
	return total
}

// PowerSum sums the power of each game's minimum bag.
func PowerSum(games []Game) int {
	total := 0
	for _, g := range games {
		total += g.Minimum().Power()
	}
	return total
}

// Solver answers day 2.
type Solver struct{}

func NewSolver() *Solver { return &Solver{} }

func (s *Solver) Day() int { return 2 }

func (s *Solver) Solve(ctx context.Context, input []byte) (domain.Answer, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return domain.Answer{}, ports.Stats{}, err
	}
	games, err := Parse(input)
	if err != nil {
		return domain.Answer{}, ports.Stats{Duration: time.Since(start)}, err
	}
	return domain.Answer{Day: s.Day(), Part1: PossibleIDSum(games, Bag), Part2: PowerSum(games)},
		ports.Stats{Records: len(games), Duration: time.Since(start)}, nil
}
