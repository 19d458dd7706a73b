// Package boatrace counts the ways to beat toy boat race records.
package boatrace

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"svw.info/aoc2023/internal/domain"
	"svw.info/aoc2023/internal/mathx"
	"svw.info/aoc2023/internal/parse"
	"svw.info/aoc2023/internal/ports"
)

// Race is a time budget and the record distance to beat.
type Race struct {
	Time, Record int
}

func (r Race) beats(hold int) bool { return hold*(r.Time-hold) > r.Record }

// Wins counts integer hold times h in (0, Time) with h*(Time-h) > Record.
// The float roots are corrected to exact integer bounds before counting.
func (r Race) Wins() int {
	disc := float64(r.Time)*float64(r.Time) - 4*float64(r.Record)
	if disc < 0 {
		return 0
	}
	sq := math.Sqrt(disc)
	lo := max(int(math.Floor((float64(r.Time)-sq)/2)), 1)
	hi := min(int(math.Ceil((float64(r.Time)+sq)/2)), r.Time-1)
	for lo <= hi && !r.beats(lo) {
		lo++
	}
	for lo > 1 && r.beats(lo-1) {
		lo--
	}
	for hi >= lo && !r.beats(hi) {
		hi--
	}
	for hi < r.Time-1 && r.beats(hi+1) {
		hi++
	}
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

var errShape = errors.New("want a \"Time:\" line and a \"Distance:\" line")

// Parse reads the separate races of the two input lines.
func Parse(input []byte) ([]Race, error) {
	times, dists, err := fields(input)
	if err != nil {
		return nil, err
	}
	ts, err := parse.Ints(times.No, times.Text)
	if err != nil {
		return nil, err
	}
	ds, err := parse.Ints(dists.No, dists.Text)
	if err != nil {
		return nil, err
	}
	if len(ts) != len(ds) {
		return nil, parse.Errorf(dists.No, "%d records for %d races", len(ds), len(ts))
	}
	races := make([]Race, len(ts))
	for i := range ts {
		races[i] = Race{Time: ts[i], Record: ds[i]}
	}
	return races, nil
}

// ParseJoined reads both lines as one race, ignoring the spaces between
// digits.
func ParseJoined(input []byte) (Race, error) {
	times, dists, err := fields(input)
	if err != nil {
		return Race{}, err
	}
	t, err := parse.Int(times.No, strings.Join(strings.Fields(times.Text), ""))
	if err != nil {
		return Race{}, err
	}
	d, err := parse.Int(dists.No, strings.Join(strings.Fields(dists.Text), ""))
	if err != nil {
		return Race{}, err
	}
	return Race{Time: t, Record: d}, nil
}

func fields(input []byte) (times, dists parse.Line, err error) {
	lines := parse.Lines(input)
	if len(lines) != 2 {
		return times, dists, errShape
	}
	times, dists = lines[0], lines[1]
	var ok bool
	if times.Text, ok = strings.CutPrefix(times.Text, "Time:"); !ok {
		return times, dists, parse.Errorf(times.No, "missing \"Time:\"")
	}
	if dists.Text, ok = strings.CutPrefix(dists.Text, "Distance:"); !ok {
		return times, dists, parse.Errorf(dists.No, "missing \"Distance:\"")
	}
	return times, dists, nil
}

// WinProduct multiplies the win counts of every race.
func WinProduct(races []Race) int {
	counts := make([]int, len(races))
	for i, r := range races {
		counts[i] = r.Wins()
	}
	return mathx.Product(counts...)
}

// Solver answers day 6.
type Solver struct{}

func NewSolver() *Solver { return &Solver{} }

func (s *Solver) Day() int { return 6 }

func (s *Solver) Solve(ctx context.Context, input []byte) (domain.Answer, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return domain.Answer{}, ports.Stats{}, err
	}
	races, err := Parse(input)
	if err != nil {
		return domain.Answer{}, ports.Stats{Duration: time.Since(start)}, err
	}
	big, err := ParseJoined(input)
	if err != nil {
		return domain.Answer{}, ports.Stats{Duration: time.Since(start)}, err
	}
	return domain.Answer{Day: s.Day(), Part1: WinProduct(races), Part2: big.Wins()},
		ports.Stats{Records: len(races), Duration: time.Since(start)}, nil
}
