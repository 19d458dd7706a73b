package camelcards

import (
	"cmp"
	"slices"
)

// Compare orders two hands by type, then card by card under o. It returns
// a negative number when a is weaker than b.
func Compare(a, b Hand, o Order) int {
	if c := cmp.Compare(a.Type, b.Type); c != 0 {
		return c
	}
	for i := range a.Cards {
		if a.Cards[i] != b.Cards[i] {
			return cmp.Compare(o.strength(a.Cards[i]), o.strength(b.Cards[i]))
		}
	}
	return 0
}

// Rank sorts hands in place from weakest to strongest.
func Rank(hands []Hand, o Order) {
	slices.SortStableFunc(hands, func(a, b Hand) int { return Compare(a, b, o) })
}

// Winnings sums bid times 1-based rank over hands already sorted weakest
// first.
func Winnings(ranked []Hand) int {
	total := 0
	for i, h := range ranked {
		total += h.Bid * (i + 1)
	}
	return total
}

// TotalWinnings ranks a copy of hands under o and scores it.
func TotalWinnings(hands []Hand, o Order) int {
	ranked := slices.Clone(hands)
	Rank(ranked, o)
	return Winnings(ranked)
}
