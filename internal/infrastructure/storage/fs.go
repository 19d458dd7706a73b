package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"

	"svw.info/aoc2023/internal/domain"
	"svw.info/aoc2023/internal/ports"
)

// FS reads puzzle inputs from a directory.
//
// Real input for day N lives in dayN.txt, the published sample in
// test_dayN.txt. A per-day folder layout (N/input.txt, N/sample.txt) is
// accepted as well.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) candidates(day int, kind domain.InputKind) []string {
	d := strconv.Itoa(day)
	if kind == domain.SampleInput {
		return []string{
			filepath.Join(s.dir, "test_day"+d+".txt"),
			filepath.Join(s.dir, d, "sample.txt"),
		}
	}
	return []string{
		filepath.Join(s.dir, "day"+d+".txt"),
		filepath.Join(s.dir, d, "input.txt"),
	}
}

func (s *FS) Load(ctx context.Context, day int, kind domain.InputKind) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, p := range s.candidates(day, kind) {
		if _, statErr := os.Stat(p); statErr != nil {
			continue
		}
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	return nil, fmt.Errorf("%w: day %d %s input in %s", ports.ErrNoInput, day, kind, s.dir)
}

var (
	flatName   = regexp.MustCompile(`^(test_)?day(\d+)\.txt$`)
	folderName = regexp.MustCompile(`^\d+$`)
)

func (s *FS) List(ctx context.Context) ([]domain.InputMeta, error) {
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	byDay := map[int]*domain.InputMeta{}
	meta := func(day int) *domain.InputMeta {
		m, ok := byDay[day]
		if !ok {
			m = &domain.InputMeta{Day: day}
			byDay[day] = m
		}
		return m
	}
	for _, e := range ents {
		name := e.Name()
		if e.IsDir() {
			if !folderName.MatchString(name) {
				continue
			}
			day, _ := strconv.Atoi(name)
			if _, err := os.Stat(filepath.Join(s.dir, name, "input.txt")); err == nil {
				meta(day).Real = true
			}
			if _, err := os.Stat(filepath.Join(s.dir, name, "sample.txt")); err == nil {
				meta(day).Sample = true
			}
			continue
		}
		m := flatName.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		day, _ := strconv.Atoi(m[2])
		if m[1] != "" {
			meta(day).Sample = true
		} else {
			meta(day).Real = true
		}
	}
	out := make([]domain.InputMeta, 0, len(byDay))
	for _, m := range byDay {
		if m.Real || m.Sample {
			out = append(out, *m)
		}
	}
	slices.SortFunc(out, func(a, b domain.InputMeta) int { return a.Day - b.Day })
	return out, nil
}
