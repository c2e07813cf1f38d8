package algorithms

import (
	"fmt"
	"slices"
)

// BinarySearch traces a search for in.Target in the sorted in.Array.
func BinarySearch(in Input) ([]Step, error) {
	a := in.Array
	if len(a) == 0 {
		return nil, fmt.Errorf("%w: binary search needs a non-empty array", ErrInvalidInput)
	}
	if !slices.IsSorted(a) {
		return nil, fmt.Errorf("%w: binary search needs a sorted array", ErrInvalidInput)
	}

	var r recorder
	lo, hi := 0, len(a)-1
	r.addWindow(a, fmt.Sprintf("search for %d in %d values", in.Target, len(a)), nil, nil, lo, hi)

	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case a[mid] == in.Target:
			r.addWindow(a, fmt.Sprintf("a[%d] = %d, found", mid, a[mid]), nil, []int{mid}, mid, mid)
			return r.steps, nil
		case a[mid] < in.Target:
			r.addWindow(a, fmt.Sprintf("a[%d] = %d < %d, drop the left half", mid, a[mid], in.Target), []int{mid}, nil, lo, hi)
			lo = mid + 1
		default:
			r.addWindow(a, fmt.Sprintf("a[%d] = %d > %d, drop the right half", mid, a[mid], in.Target), []int{mid}, nil, lo, hi)
			hi = mid - 1
		}
	}

	r.add(a, fmt.Sprintf("%d is not present", in.Target), nil, nil)
	return r.steps, nil
}
