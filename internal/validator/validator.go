// Package validator checks computed answers against a book of recorded
// answers. It is a regression check kept apart from every solver.
package validator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"svw.info/aoc2023/internal/domain"
)

// ErrNoExpectation is returned for a day missing from the book.
var ErrNoExpectation = errors.New("no recorded answer")

// Expected holds the recorded parts of one day. A nil part is unchecked.
type Expected struct {
	Part1 *int `yaml:"part1,omitempty"`
	Part2 *int `yaml:"part2,omitempty"`
}

// Book is a set of recorded answers keyed by day.
type Book struct {
	Days map[int]Expected `yaml:"days"`
}

func New() *Book { return &Book{Days: map[int]Expected{}} }

// Recorded returns the days in the book in ascending order.
func (b *Book) Recorded() []int {
	if b == nil {
		return nil
	}
	days := make([]int, 0, len(b.Days))
	for d := range b.Days {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

// Decode reads a YAML answer book.
func Decode(r io.Reader) (*Book, error) {
	b := New()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(b); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode answer book: %w", err)
	}
	if b.Days == nil {
		b.Days = map[int]Expected{}
	}
	return b, nil
}

// Load reads a YAML answer book from path.
func Load(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Record stores both parts of a for later checks.
func (b *Book) Record(a domain.Answer) {
	p1, p2 := a.Part1, a.Part2
	b.Days[a.Day] = Expected{Part1: &p1, Part2: &p2}
}

// Encode writes the book as YAML.
func (b *Book) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(b); err != nil {
		return err
	}
	return enc.Close()
}

func (b *Book) Validate(ctx context.Context, a domain.Answer) (bool, []domain.Mismatch, error) {
	want, ok := b.Days[a.Day]
	if !ok {
		return false, nil, fmt.Errorf("%w: day %d", ErrNoExpectation, a.Day)
	}
	var bad []domain.Mismatch
	check := func(p domain.Part, w *int) {
		if w != nil && *w != a.Get(p) {
			bad = append(bad, domain.Mismatch{Day: a.Day, Part: p, Got: a.Get(p), Want: *w})
		}
	}
	check(domain.PartOne, want.Part1)
	check(domain.PartTwo, want.Part2)
	return len(bad) == 0, bad, nil
}
