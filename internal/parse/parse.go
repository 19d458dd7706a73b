// Package parse holds the small line-oriented helpers shared by the
// individual day parsers.
package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// Error reports a malformed input at a 1-based line and column.
// Col is 0 when the whole line is at fault.
type Error struct {
	Line int
	Col  int
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	pos := fmt.Sprintf("line %d", e.Line)
	if e.Col > 0 {
		pos += fmt.Sprintf(" col %d", e.Col)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", pos, e.Msg, e.Err)
	}
	return pos + ": " + e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds an *Error for the given line.
func Errorf(line int, format string, args ...any) error {
	return &Error{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// At builds an *Error for a line and column wrapping cause.
func At(line, col int, msg string, cause error) error {
	return &Error{Line: line, Col: col, Msg: msg, Err: cause}
}

// Line is one non-empty input line with its 1-based position.
type Line struct {
	No   int
	Text string
}

// Lines splits input into its non-empty lines. Carriage returns are dropped.
func Lines(input []byte) []Line {
	var out []Line
	for i, l := range strings.Split(string(input), "\n") {
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, Line{No: i + 1, Text: l})
	}
	return out
}

// Blocks splits input into groups of non-empty lines separated by one or
// more blank lines.
func Blocks(input []byte) [][]Line {
	var (
		out [][]Line
		cur []Line
	)
	for i, l := range strings.Split(string(input), "\n") {
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, Line{No: i + 1, Text: l})
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// Ints parses whitespace separated integers from s. line is used for
// error positions only.
func Ints(line int, s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, At(line, 0, fmt.Sprintf("bad number %q", f), err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Int parses a single decimal integer, trimming surrounding spaces.
func Int(line int, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, At(line, 0, fmt.Sprintf("bad number %q", strings.TrimSpace(s)), err)
	}
	return n, nil
}

// Cut splits s around the first sep, failing with a positioned error when
// sep is absent.
func Cut(line int, s, sep string) (before, after string, err error) {
	before, after, ok := strings.Cut(s, sep)
	if !ok {
		return "", "", Errorf(line, "missing %q", sep)
	}
	return before, after, nil
}
