package algorithms

import (
	"fmt"
	"slices"
)

// BubbleSort traces an ascending bubble sort with early exit.
func BubbleSort(in Input) ([]Step, error) {
	if len(in.Array) == 0 {
		return nil, fmt.Errorf("%w: bubble sort needs a non-empty array", ErrInvalidInput)
	}
	a := slices.Clone(in.Array)
	n := len(a)

	var r recorder
	var done []int
	r.add(a, fmt.Sprintf("sort %d values", n), nil, nil)

	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			r.add(a, fmt.Sprintf("compare a[%d]=%d with a[%d]=%d", j, a[j], j+1, a[j+1]), []int{j, j + 1}, done)
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
				swapped = true
				r.add(a, fmt.Sprintf("swap, %d moves right", a[j+1]), []int{j, j + 1}, done)
			}
		}
		done = append(done, n-1-i)
		if !swapped {
			r.add(a, fmt.Sprintf("pass %d made no swaps, stop early", i+1), nil, done)
			break
		}
	}

	r.add(a, "sorted", nil, span(0, n-1))
	return r.steps, nil
}

// InsertionSort traces an ascending insertion sort.
func InsertionSort(in Input) ([]Step, error) {
	if len(in.Array) == 0 {
		return nil, fmt.Errorf("%w: insertion sort needs a non-empty array", ErrInvalidInput)
	}
	a := slices.Clone(in.Array)
	n := len(a)

	var r recorder
	r.add(a, fmt.Sprintf("sort %d values", n), nil, []int{0})

	for i := 1; i < n; i++ {
		key := a[i]
		r.add(a, fmt.Sprintf("take key a[%d]=%d", i, key), []int{i}, span(0, i-1))
		j := i - 1
		for j >= 0 && a[j] > key {
			a[j+1] = a[j]
			r.add(a, fmt.Sprintf("%d > %d, shift it right", a[j], key), []int{j, j + 1}, span(0, i-1))
			j--
		}
		a[j+1] = key
		r.add(a, fmt.Sprintf("insert %d at index %d", key, j+1), []int{j + 1}, span(0, i))
	}

	r.add(a, "sorted", nil, span(0, n-1))
	return r.steps, nil
}
