package rule

import "fmt"

// MaxPartitionArity bounds Partitions; 2^(k-1)-1 bipartitions grow fast.
const MaxPartitionArity = 30

// PartitionCount returns the number of non-trivial unordered bipartitions of
// an arity-k rule: 2^(k-1) - 1 (0 for k < 2).
func PartitionCount(k int) int {
	if k < 2 {
		return 0
	}

	return 1<<(k-1) - 1
}

// Partitions calls fn for every non-trivial unordered bipartition {left,
// right} of r, with left ∪ right = r, left ∩ right = ∅ and both non-empty.
// Each unordered pair is visited once: the last edit always lands in right.
// Enumeration order is deterministic (ascending bitmask). Returning false from
// fn stops the enumeration.
//
// Errors: ErrTooManyPartitions if r.Arity() > MaxPartitionArity.
// Complexity: O(2^(k-1)·k).
func Partitions(r Rule, fn func(left, right Rule) bool) error {
	k := len(r.edits)
	if k > MaxPartitionArity {
		return fmt.Errorf("%w: arity %d", ErrTooManyPartitions, k)
	}
	if k < 2 {
		return nil
	}

	limit := uint64(1) << (k - 1)
	for mask := uint64(1); mask < limit; mask++ {
		left := make([]Edit, 0, k-1)
		right := make([]Edit, 0, k-1)
		for i, e := range r.edits {
			if i < k-1 && mask&(1<<i) != 0 {
				left = append(left, e)
			} else {
				right = append(right, e)
			}
		}
		// Subsequences of a canonical slice stay canonical.
		if !fn(fromSorted(left), fromSorted(right)) {
			return nil
		}
	}

	return nil
}
