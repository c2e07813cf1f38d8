package algorithms

import (
	"fmt"
	"sort"

	"github.com/san-kum/algoviz/internal/trace"
)

// Algorithm describes a registered producer.
type Algorithm struct {
	Name    string
	Summary string
	Default Input
	Produce func(Input) ([]Step, error)
}

// Build runs the producer over in and wraps the frames.
func (a Algorithm) Build(in Input) (*trace.Trace[Step], error) {
	in = in.Clone()
	return trace.Build(func() ([]Step, error) { return a.Produce(in) })
}

type Registry struct {
	algorithms map[string]Algorithm
}

// NewRegistry returns a registry holding every built-in producer.
func NewRegistry() *Registry {
	r := &Registry{algorithms: make(map[string]Algorithm)}

	r.Register(Algorithm{
		Name:    "binary_search",
		Summary: "halve a sorted window",
		Default: Input{Array: []int{2, 5, 8, 12, 16, 23, 38, 56, 72, 91}, Target: 23},
		Produce: BinarySearch,
	})
	r.Register(Algorithm{
		Name:    "bubble_sort",
		Summary: "swap adjacent pairs",
		Default: Input{Array: []int{5, 1, 4, 2, 8, 3}},
		Produce: BubbleSort,
	})
	r.Register(Algorithm{
		Name:    "insertion_sort",
		Summary: "grow a sorted prefix",
		Default: Input{Array: []int{12, 11, 13, 5, 6, 7}},
		Produce: InsertionSort,
	})
	r.Register(Algorithm{
		Name:    "fibonacci",
		Summary: "bottom-up dp table",
		Default: Input{N: 10},
		Produce: Fibonacci,
	})
	r.Register(Algorithm{
		Name:    "bfs",
		Summary: "level-order graph traversal",
		Default: Input{
			Start: 0,
			Graph: map[int][]int{
				0: {1, 2},
				1: {3, 4},
				2: {5},
				3: {},
				4: {5, 6},
				5: {6},
				6: {},
			},
		},
		Produce: BFS,
	})

	return r
}

// Register adds or replaces an algorithm.
func (r *Registry) Register(a Algorithm) {
	r.algorithms[a.Name] = a
}

func (r *Registry) Get(name string) (Algorithm, error) {
	a, ok := r.algorithms[name]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
	}
	return a, nil
}

// Build produces the trace of a named algorithm.
func (r *Registry) Build(name string, in Input) (*trace.Trace[Step], error) {
	a, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	tr, err := a.Build(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return tr, nil
}

// Names lists registered algorithms in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.algorithms))
	for name := range r.algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
