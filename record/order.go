package record

import (
	"sort"
	"strconv"
	"strings"
)

// ComparePositions orders two position keys naturally.
//
// Positions that both parse as integers compare numerically ("2" < "10");
// integer positions sort before non-integer ones; everything else compares
// lexicographically. Returns -1, 0 or +1.
//
// Complexity: O(len(a)+len(b)).
func ComparePositions(a, b string) int {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	switch {
	case aErr == nil && bErr == nil:
		if ai != bi {
			if ai < bi {
				return -1
			}
			return 1
		}
		// "01" and "1" are distinct keys; fall back to bytes for a total order.
		return strings.Compare(a, b)
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// SortPositions sorts keys in place by ComparePositions.
func SortPositions(keys []string) {
	sort.Slice(keys, func(i, j int) bool { return ComparePositions(keys[i], keys[j]) < 0 })
}
