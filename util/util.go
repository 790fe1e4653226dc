package util

import (
	"os"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0777)
}

// GetKeys returns the keys of m in ascending order.
func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// Mod is the floored modulo, so the result always has the sign of n.
// Mod(-1, 12) == 11.
func Mod[A constraints.Integer](a A, n A) A {
	r := a % n
	if r != 0 && (r < 0) != (n < 0) {
		r += n
	}
	return r
}

// FloorDiv rounds toward negative infinity. FloorDiv(-1, 12) == -1.
func FloorDiv[A constraints.Integer](a A, n A) A {
	return (a - Mod(a, n)) / n
}

func Abs[A constraints.Signed](a A) A {
	if a < 0 {
		return -a
	}
	return a
}
