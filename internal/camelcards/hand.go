// Package camelcards ranks five-card hands by type and a per-variant card
// order, optionally treating one card as a wildcard.
package camelcards

import (
	"errors"
	"fmt"
	"strings"

	"svw.info/aoc2023/internal/parse"
)

// HandType is the categorical rank of a hand. Larger is stronger.
type HandType int

const (
	HighCard HandType = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

var handTypeNames = [...]string{
	HighCard:     "high card",
	OnePair:      "one pair",
	TwoPair:      "two pair",
	ThreeOfAKind: "three of a kind",
	FullHouse:    "full house",
	FourOfAKind:  "four of a kind",
	FiveOfAKind:  "five of a kind",
}

func (t HandType) String() string {
	if t < HighCard || t > FiveOfAKind {
		return fmt.Sprintf("HandType(%d)", int(t))
	}
	return handTypeNames[t]
}

// HandSize is the number of cards in every hand.
const HandSize = 5

// Wildcard is the card that stands in for any other under the wildcard
// order.
const Wildcard = 'J'

// Order is a total order over card symbols, strongest first.
type Order string

const (
	Standard     Order = "AKQJT98765432"
	WildcardRank Order = "AKQT98765432J"
)

// strength returns a card's strength under o; higher is stronger and -1
// means the card is not part of the order.
func (o Order) strength(c rune) int {
	i := strings.IndexRune(string(o), c)
	if i < 0 {
		return -1
	}
	return len(o) - i
}

// Counts maps each distinct card to its multiplicity.
type Counts map[rune]int

// CountCards tallies a hand's cards.
func CountCards(cards [HandSize]rune) Counts {
	c := make(Counts, HandSize)
	for _, r := range cards {
		c[r]++
	}
	return c
}

// Classify maps card counts to a hand type. Rules are checked in strength
// order and the first match wins.
func Classify(counts Counts) HandType {
	var byCount [HandSize + 1]int // byCount[n] = number of cards seen n times
	for _, n := range counts {
		if n >= 0 && n <= HandSize {
			byCount[n]++
		}
	}
	switch {
	case byCount[5] > 0:
		return FiveOfAKind
	case byCount[4] > 0:
		return FourOfAKind
	case byCount[3] > 0 && byCount[2] > 0:
		return FullHouse
	case byCount[3] > 0 && byCount[1] > 0:
		return ThreeOfAKind
	case byCount[2] == 2:
		return TwoPair
	case byCount[2] == 1 && byCount[1] == 3:
		return OnePair
	default:
		return HighCard
	}
}

// Redistribute returns a copy of counts with the wildcard's count moved
// onto the most frequent other card. The choice among tied cards does not
// change the resulting type. A hand of only wildcards is returned as five
// of the wildcard.
func Redistribute(counts Counts, wild rune) Counts {
	out := make(Counts, len(counts))
	for r, n := range counts {
		out[r] = n
	}
	j := out[wild]
	if j == 0 || len(out) == 1 {
		return out
	}
	delete(out, wild)
	best, bestN := rune(0), -1
	for r, n := range out {
		if n > bestN {
			best, bestN = r, n
		}
	}
	out[best] += j
	return out
}

// ClassifyWild classifies counts with wild acting as a wildcard.
func ClassifyWild(counts Counts, wild rune) HandType {
	if counts[wild] == HandSize {
		return FiveOfAKind
	}
	return Classify(Redistribute(counts, wild))
}

// Hand is a parsed, classified hand and its bid.
type Hand struct {
	Cards [HandSize]rune
	Bid   int
	Type  HandType
}

func (h Hand) String() string { return string(h.Cards[:]) }

var errNoHands = errors.New("no hands")

// ParseHand parses "<5 cards> <bid>". With wild set, Wildcard cards are
// redistributed before classification.
func ParseHand(line int, s string, wild bool) (Hand, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Hand{}, parse.Errorf(line, "want \"<cards> <bid>\", got %q", s)
	}
	cards := []rune(fields[0])
	if len(cards) != HandSize {
		return Hand{}, parse.Errorf(line, "hand %q has %d cards, want %d", fields[0], len(cards), HandSize)
	}
	var h Hand
	for i, c := range cards {
		if Standard.strength(c) < 0 {
			return Hand{}, parse.At(line, i+1, fmt.Sprintf("unknown card %q", c), nil)
		}
		h.Cards[i] = c
	}
	bid, err := parse.Int(line, fields[1])
	if err != nil {
		return Hand{}, err
	}
	if bid < 0 {
		return Hand{}, parse.Errorf(line, "negative bid %d", bid)
	}
	h.Bid = bid
	counts := CountCards(h.Cards)
	if wild {
		h.Type = ClassifyWild(counts, Wildcard)
	} else {
		h.Type = Classify(counts)
	}
	return h, nil
}

// Parse reads one hand per line.
func Parse(input []byte, wild bool) ([]Hand, error) {
	lines := parse.Lines(input)
	if len(lines) == 0 {
		return nil, errNoHands
	}
	hands := make([]Hand, 0, len(lines))
	for _, l := range lines {
		h, err := ParseHand(l.No, l.Text, wild)
		if err != nil {
			return nil, err
		}
		hands = append(hands, h)
	}
	return hands, nil
}
