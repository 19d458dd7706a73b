// Package mathx has generic integer helpers.
package mathx

import "golang.org/x/exp/constraints"

// Sum adds all values.
func Sum[T constraints.Integer](vs ...T) T {
	var s T
	for _, v := range vs {
		s += v
	}
	return s
}

// Product multiplies all values. The product of nothing is 1.
func Product[T constraints.Integer](vs ...T) T {
	p := T(1)
	for _, v := range vs {
		p *= v
	}
	return p
}

// GCD returns the greatest common divisor of a and b (non-negative).
func GCD[T constraints.Integer](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of all values, 0 if any is 0.
func LCM[T constraints.Integer](vs ...T) T {
	if len(vs) == 0 {
		return 0
	}
	l := vs[0]
	for _, v := range vs[1:] {
		if l == 0 || v == 0 {
			return 0
		}
		l = l / GCD(l, v) * v
	}
	if l < 0 {
		l = -l
	}
	return l
}
