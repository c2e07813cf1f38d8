package algorithms

import "fmt"

// MaxNodes bounds the node ids a BFS graph may use. Distances are stored
// densely, so a single large id would size the whole table.
const MaxNodes = 1000

// BFS traces a breadth-first traversal of in.Graph from in.Start. Nodes
// are dense ids 0..n-1; Values holds each node's distance, -1 while
// undiscovered.
func BFS(in Input) ([]Step, error) {
	n, err := nodeCount(in.Graph)
	if err != nil {
		return nil, err
	}
	if in.Start < 0 || in.Start >= n {
		return nil, fmt.Errorf("%w: start node %d outside graph of %d nodes", ErrInvalidInput, in.Start, n)
	}

	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}

	var r recorder
	var visited []int
	r.add(dist, fmt.Sprintf("traverse %d nodes from %d", n, in.Start), nil, nil)

	dist[in.Start] = 0
	queue := []int{in.Start}
	r.add(dist, fmt.Sprintf("enqueue start node %d", in.Start), []int{in.Start}, nil)

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		visited = append(visited, u)
		r.add(dist, fmt.Sprintf("visit %d at distance %d", u, dist[u]), []int{u}, visited)

		for _, v := range in.Graph[u] {
			if dist[v] != -1 {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
			r.add(dist, fmt.Sprintf("discover %d from %d", v, u), []int{u, v}, visited)
		}
	}

	r.add(dist, fmt.Sprintf("reached %d of %d nodes", len(visited), n), nil, visited)
	return r.steps, nil
}

func nodeCount(g map[int][]int) (int, error) {
	if len(g) == 0 {
		return 0, fmt.Errorf("%w: bfs needs a non-empty graph", ErrInvalidInput)
	}
	maxID := -1
	check := func(id int) error {
		if id < 0 {
			return fmt.Errorf("%w: negative node id %d", ErrInvalidInput, id)
		}
		if id >= MaxNodes {
			return fmt.Errorf("%w: node id %d exceeds the %d node limit", ErrInvalidInput, id, MaxNodes)
		}
		maxID = max(maxID, id)
		return nil
	}
	for u, vs := range g {
		if err := check(u); err != nil {
			return 0, err
		}
		for _, v := range vs {
			if err := check(v); err != nil {
				return 0, err
			}
		}
	}
	return maxID + 1, nil
}
