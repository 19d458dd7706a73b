// Package wasteland walks a left/right node network following a repeating
// instruction list.
package wasteland

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"svw.info/aoc2023/internal/mathx"
	"svw.info/aoc2023/internal/parse"
)

var (
	// ErrCycle is returned when a walk revisits a state without reaching
	// its target.
	ErrCycle = errors.New("walk cycles without reaching target")
	// ErrUnknownNode is returned for a reference to an undefined node.
	ErrUnknownNode = errors.New("unknown node")
	errNoStarts    = errors.New("no start nodes")
)

const (
	Start  = "AAA"
	Finish = "ZZZ"
)

// Fork is a node's left and right successors.
type Fork struct {
	Left, Right string
}

// Network is the instruction list and node table.
type Network struct {
	Moves string
	Nodes map[string]Fork
}

// Parse reads the instruction line, a blank line and "AAA = (BBB, CCC)"
// node lines.
func Parse(input []byte) (*Network, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return nil, errors.New("want an instruction line, a blank line and node lines")
	}
	head := blocks[0][0]
	n := &Network{Moves: strings.TrimSpace(head.Text), Nodes: make(map[string]Fork, len(blocks[1]))}
	for i, m := range n.Moves {
		if m != 'L' && m != 'R' {
			return nil, parse.At(head.No, i+1, fmt.Sprintf("bad instruction %q", m), nil)
		}
	}
	for _, l := range blocks[1] {
		name, fork, err := parse.Cut(l.No, l.Text, " = ")
		if err != nil {
			return nil, err
		}
		fork, ok := strings.CutPrefix(fork, "(")
		if ok {
			fork, ok = strings.CutSuffix(fork, ")")
		}
		if !ok {
			return nil, parse.Errorf(l.No, "want \"(<left>, <right>)\", got %q", fork)
		}
		left, right, err := parse.Cut(l.No, fork, ", ")
		if err != nil {
			return nil, err
		}
		name = strings.TrimSpace(name)
		if _, dup := n.Nodes[name]; dup {
			return nil, parse.Errorf(l.No, "duplicate node %q", name)
		}
		n.Nodes[name] = Fork{Left: left, Right: right}
	}
	return n, nil
}

type state struct {
	node string
	move int
}

// Steps walks from start until done reports true for the current node and
// returns the number of moves taken. A walk that revisits a (node,
// instruction index) state can never finish and fails with ErrCycle.
func (n *Network) Steps(ctx context.Context, start string, done func(string) bool) (int, error) {
	seen := make(map[state]bool)
	cur := start
	for steps := 0; ; steps++ {
		if done(cur) {
			return steps, nil
		}
		st := state{node: cur, move: steps % len(n.Moves)}
		if seen[st] {
			return 0, fmt.Errorf("%w: from %q after %d steps", ErrCycle, start, steps)
		}
		seen[st] = true
		if steps%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		f, ok := n.Nodes[cur]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownNode, cur)
		}
		if n.Moves[st.move] == 'L' {
			cur = f.Left
		} else {
			cur = f.Right
		}
	}
}

// StepsToFinish walks from AAA to ZZZ.
func (n *Network) StepsToFinish(ctx context.Context) (int, error) {
	if _, ok := n.Nodes[Start]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, Start)
	}
	return n.Steps(ctx, Start, func(s string) bool { return s == Finish })
}

// GhostSteps walks from every node ending in A to a node ending in Z at
// once. Each ghost's path is assumed to loop back with the same period as
// its first arrival, so the answer is the LCM of the first arrivals.
func (n *Network) GhostSteps(ctx context.Context) (int, error) {
	var starts []string
	for name := range n.Nodes {
		if strings.HasSuffix(name, "A") {
			starts = append(starts, name)
		}
	}
	if len(starts) == 0 {
		return 0, errNoStarts
	}
	slices.Sort(starts)
	lengths := make([]int, len(starts))
	for i, s := range starts {
		l, err := n.Steps(ctx, s, func(s string) bool { return strings.HasSuffix(s, "Z") })
		if err != nil {
			return 0, err
		}
		lengths[i] = l
	}
	return mathx.LCM(lengths...), nil
}
