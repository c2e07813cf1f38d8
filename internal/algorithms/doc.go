// Package algorithms produces step-by-step traces of classic algorithms.
//
// Each producer runs once over a fixed [Input] and returns every frame up
// front; frame count never depends on anything but the input.
//
//   - binary_search: window narrowing over a sorted array
//   - bubble_sort, insertion_sort: comparison sorts
//   - fibonacci: bottom-up dynamic programming table
//   - bfs: breadth-first traversal of an adjacency list
//
// Every trace starts with an initial frame and ends with a final frame.
// Use [Registry] to look producers up by name.
package algorithms
