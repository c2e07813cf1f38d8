package algorithms

import "slices"

// Input parameterizes a producer. Each algorithm reads only the fields it
// needs.
type Input struct {
	Array  []int         `yaml:"array,omitempty" json:"array,omitempty"`
	Target int           `yaml:"target,omitempty" json:"target,omitempty"`
	N      int           `yaml:"n,omitempty" json:"n,omitempty"`
	Start  int           `yaml:"start,omitempty" json:"start,omitempty"`
	Graph  map[int][]int `yaml:"graph,omitempty" json:"graph,omitempty"`
}

// Clone returns a deep copy of the input.
func (in Input) Clone() Input {
	out := in
	out.Array = slices.Clone(in.Array)
	if in.Graph != nil {
		out.Graph = make(map[int][]int, len(in.Graph))
		for k, v := range in.Graph {
			out.Graph[k] = slices.Clone(v)
		}
	}
	return out
}

// Step is one frame of an algorithm trace.
type Step struct {
	Values []int  `json:"values"`
	Active []int  `json:"active,omitempty"`
	Done   []int  `json:"done,omitempty"`
	Low    int    `json:"low"`
	High   int    `json:"high"`
	Note   string `json:"note"`
}

// IsActive reports whether index i is under inspection.
func (s Step) IsActive(i int) bool { return slices.Contains(s.Active, i) }

// IsDone reports whether index i is settled.
func (s Step) IsDone(i int) bool { return slices.Contains(s.Done, i) }

// InWindow reports whether i lies inside the search window, if any.
func (s Step) InWindow(i int) bool {
	return s.Low >= 0 && s.High >= s.Low && i >= s.Low && i <= s.High
}

// recorder accumulates frames, snapshotting slices so later mutation of
// the working data does not leak into earlier frames.
type recorder struct {
	steps []Step
}

func (r *recorder) add(values []int, note string, active, done []int) {
	r.addWindow(values, note, active, done, -1, -1)
}

func (r *recorder) addWindow(values []int, note string, active, done []int, low, high int) {
	r.steps = append(r.steps, Step{
		Values: slices.Clone(values),
		Active: slices.Clone(active),
		Done:   slices.Clone(done),
		Low:    low,
		High:   high,
		Note:   note,
	})
}

func span(lo, hi int) []int {
	if hi < lo {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}
