package config

import (
	"sort"

	"github.com/san-kum/algoviz/internal/algorithms"
)

var Presets = map[string]map[string]algorithms.Input{
	"binary_search": {
		"hit":   {Array: []int{1, 4, 9, 16, 25, 36, 49, 64, 81, 100}, Target: 49},
		"miss":  {Array: []int{1, 4, 9, 16, 25, 36, 49, 64, 81, 100}, Target: 50},
		"first": {Array: []int{3, 6, 9, 12, 15, 18, 21}, Target: 3},
	},
	"bubble_sort": {
		"reversed": {Array: []int{9, 8, 7, 6, 5, 4, 3, 2}},
		"sorted":   {Array: []int{1, 2, 3, 4, 5, 6}},
		"random":   {Array: []int{29, 10, 14, 37, 13, 5, 88}},
	},
	"insertion_sort": {
		"reversed":      {Array: []int{9, 8, 7, 6, 5, 4, 3, 2}},
		"nearly_sorted": {Array: []int{1, 2, 4, 3, 5, 7, 6, 8}},
	},
	"fibonacci": {
		"small": {N: 6},
		"large": {N: 30},
	},
	"bfs": {
		"line": {
			Start: 0,
			Graph: map[int][]int{0: {1}, 1: {2}, 2: {3}, 3: {4}},
		},
		"star": {
			Start: 0,
			Graph: map[int][]int{0: {1, 2, 3, 4, 5}},
		},
		"islands": {
			Start: 0,
			Graph: map[int][]int{0: {1}, 1: {0}, 2: {3}, 3: {2}},
		},
	},
}

// GetPreset returns a copy of a named input preset.
func GetPreset(algorithm, preset string) (algorithms.Input, bool) {
	algPresets, ok := Presets[algorithm]
	if !ok {
		return algorithms.Input{}, false
	}
	in, ok := algPresets[preset]
	if !ok {
		return algorithms.Input{}, false
	}
	return in.Clone(), true
}

// ListPresets returns the sorted preset names for an algorithm.
func ListPresets(algorithm string) []string {
	algPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(algPresets))
	for name := range algPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
