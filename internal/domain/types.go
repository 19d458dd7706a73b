package domain

// Answer holds both results of a single day.
type Answer struct {
	Day   int `json:"day" yaml:"day"`
	Part1 int `json:"part1" yaml:"part1"`
	Part2 int `json:"part2" yaml:"part2"`
}

// Get returns the value of the given part.
func (a Answer) Get(p Part) int {
	if p == PartTwo {
		return a.Part2
	}
	return a.Part1
}

// Mismatch describes a computed part that differs from the recorded answer.
type Mismatch struct {
	Day  int  `json:"day"`
	Part Part `json:"part"`
	Got  int  `json:"got"`
	Want int  `json:"want"`
}

// InputMeta is a lightweight listing entry for a day's inputs.
type InputMeta struct {
	Day    int  `json:"day"`
	Real   bool `json:"real"`
	Sample bool `json:"sample"`
}
