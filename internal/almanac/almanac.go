// Package almanac maps seeds through the chain of category maps down to a
// location, for single seeds and for whole seed ranges.
package almanac

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"svw.info/aoc2023/internal/domain"
	"svw.info/aoc2023/internal/parse"
	"svw.info/aoc2023/internal/ports"
)

const (
	SourceCategory = "seed"
	TargetCategory = "location"
)

var (
	// ErrMissingMap is returned when no map leads on from a category.
	ErrMissingMap = errors.New("missing category map")
	errNoSeeds    = errors.New("no seeds")
)

// Entry maps [Src, Src+Len) onto [Dst, Dst+Len).
type Entry struct {
	Dst, Src, Len int
}

// Map converts values of category From into category To.
type Map struct {
	From, To string
	Entries  []Entry
}

// Lookup converts one value; values outside every entry map to themselves.
func (m Map) Lookup(v int) int {
	for _, e := range m.Entries {
		if v >= e.Src && v < e.Src+e.Len {
			return e.Dst + v - e.Src
		}
	}
	return v
}

// Range is the half-open interval [Start, Start+Len).
type Range struct {
	Start, Len int
}

func (r Range) end() int { return r.Start + r.Len }

// LookupRanges maps every interval through m, splitting intervals at entry
// boundaries.
func (m Map) LookupRanges(in []Range) []Range {
	var out []Range
	todo := slices.Clone(in)
	for len(todo) > 0 {
		r := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if r.Len <= 0 {
			continue
		}
		mapped := false
		for _, e := range m.Entries {
			lo, hi := max(r.Start, e.Src), min(r.end(), e.Src+e.Len)
			if lo >= hi {
				continue
			}
			out = append(out, Range{Start: e.Dst + lo - e.Src, Len: hi - lo})
			if r.Start < lo {
				todo = append(todo, Range{Start: r.Start, Len: lo - r.Start})
			}
			if hi < r.end() {
				todo = append(todo, Range{Start: hi, Len: r.end() - hi})
			}
			mapped = true
			break
		}
		if !mapped {
			out = append(out, r)
		}
	}
	return out
}

// Almanac is the seed list plus every category map.
type Almanac struct {
	Seeds []int
	Maps  []Map
}

// chain returns the maps leading from SourceCategory to TargetCategory.
func (a *Almanac) chain() ([]Map, error) {
	byFrom := make(map[string]Map, len(a.Maps))
	for _, m := range a.Maps {
		byFrom[m.From] = m
	}
	var out []Map
	for cat := SourceCategory; cat != TargetCategory; {
		m, ok := byFrom[cat]
		if !ok {
			return nil, fmt.Errorf("%w: from %q", ErrMissingMap, cat)
		}
		if len(out) > len(a.Maps) {
			return nil, fmt.Errorf("%w: category loop at %q", ErrMissingMap, cat)
		}
		out = append(out, m)
		cat = m.To
	}
	return out, nil
}

// Location maps a single seed to its location.
func (a *Almanac) Location(seed int) (int, error) {
	maps, err := a.chain()
	if err != nil {
		return 0, err
	}
	for _, m := range maps {
		seed = m.Lookup(seed)
	}
	return seed, nil
}

// LowestLocation is the minimum location over the listed seeds.
func (a *Almanac) LowestLocation() (int, error) {
	if len(a.Seeds) == 0 {
		return 0, errNoSeeds
	}
	maps, err := a.chain()
	if err != nil {
		return 0, err
	}
	lowest := -1
	for _, s := range a.Seeds {
		for _, m := range maps {
			s = m.Lookup(s)
		}
		if lowest < 0 || s < lowest {
			lowest = s
		}
	}
	return lowest, nil
}

// SeedRanges reads the seed list as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]Range, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("seed list has odd length %d", len(a.Seeds))
	}
	out := make([]Range, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		out = append(out, Range{Start: a.Seeds[i], Len: a.Seeds[i+1]})
	}
	return out, nil
}

// LowestRangeLocation is the minimum location over every seed range.
func (a *Almanac) LowestRangeLocation() (int, error) {
	rs, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	maps, err := a.chain()
	if err != nil {
		return 0, err
	}
	for _, m := range maps {
		rs = m.LookupRanges(rs)
	}
	if len(rs) == 0 {
		return 0, errNoSeeds
	}
	lowest := rs[0].Start
	for _, r := range rs[1:] {
		lowest = min(lowest, r.Start)
	}
	return lowest, nil
}

// Parse reads the "seeds:" line followed by "<from>-to-<to> map:" blocks.
func Parse(input []byte) (*Almanac, error) {
	blocks := parse.Blocks(input)
	if len(blocks) == 0 {
		return nil, errNoSeeds
	}
	head := blocks[0][0]
	seeds, ok := strings.CutPrefix(head.Text, "seeds:")
	if !ok {
		return nil, parse.Errorf(head.No, "missing \"seeds:\" header")
	}
	a := &Almanac{}
	var err error
	if a.Seeds, err = parse.Ints(head.No, seeds); err != nil {
		return nil, err
	}
	rest := blocks[0][1:]
	var groups [][]parse.Line
	if len(rest) > 0 {
		groups = append(groups, rest)
	}
	groups = append(groups, blocks[1:]...)
	for _, b := range groups {
		m, err := parseMap(b)
		if err != nil {
			return nil, err
		}
		a.Maps = append(a.Maps, m)
	}
	return a, nil
}

func parseMap(lines []parse.Line) (Map, error) {
	title := lines[0]
	name, ok := strings.CutSuffix(title.Text, " map:")
	if !ok {
		return Map{}, parse.Errorf(title.No, "want \"<from>-to-<to> map:\", got %q", title.Text)
	}
	from, to, err := parse.Cut(title.No, name, "-to-")
	if err != nil {
		return Map{}, err
	}
	m := Map{From: from, To: to}
	for _, l := range lines[1:] {
		ns, err := parse.Ints(l.No, l.Text)
		if err != nil {
			return Map{}, err
		}
		if len(ns) != 3 {
			return Map{}, parse.Errorf(l.No, "want 3 numbers, got %d", len(ns))
		}
		m.Entries = append(m.Entries, Entry{Dst: ns[0], Src: ns[1], Len: ns[2]})
	}
	return m, nil
}

// Solver answers day 5.
type Solver struct{}

func NewSolver() *Solver { return &Solver{} }

func (s *Solver) Day() int { return 5 }

func (s *Solver) Solve(ctx context.Context, input []byte) (domain.Answer, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return domain.Answer{}, ports.Stats{}, err
	}
	a, err := Parse(input)
	if err != nil {
		return domain.Answer{}, ports.Stats{Duration: time.Since(start)}, err
	}
	p1, err := a.LowestLocation()
	if err != nil {
		return domain.Answer{}, ports.Stats{Duration: time.Since(start)}, err
	}
	p2, err := a.LowestRangeLocation()
	if err != nil {
		return domain.Answer{}, ports.Stats{Duration: time.Since(start)}, err
	}
	return domain.Answer{Day: s.Day(), Part1: p1, Part2: p2},
		ports.Stats{Records: len(a.Maps), Duration: time.Since(start)}, nil
}
