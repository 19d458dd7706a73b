package domain

// InputKind selects which input file a day is run against.
type InputKind int

const (
	RealInput   InputKind = iota // dayN.txt
	SampleInput                  // test_dayN.txt
)

func (k InputKind) String() string {
	if k == SampleInput {
		return "sample"
	}
	return "real"
}

// Part names one of the two answers of a day.
type Part int

const (
	PartOne Part = iota + 1
	PartTwo
)
