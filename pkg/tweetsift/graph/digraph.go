// Package graph provides a small directed graph over author handles,
// sized for feasibility sampling rather than full-corpus analysis.
package graph

// Digraph is a directed graph keyed by string handles. Parallel edges
// contribute to EdgeCount but adjacency is deduplicated, matching how the
// feasibility analyzers count extractions versus unique relations.
type Digraph struct {
	nodes     map[string]struct{}
	neighbors map[string]map[string]struct{} // undirected view for weak connectivity
	edges     int
}

// New creates an empty digraph.
func New() *Digraph {
	return &Digraph{
		nodes:     make(map[string]struct{}),
		neighbors: make(map[string]map[string]struct{}),
	}
}

// AddEdge inserts a directed edge from one handle to another. Every call
// increments the edge count, including repeats of the same pair.
func (g *Digraph) AddEdge(from, to string) {
	g.nodes[from] = struct{}{}
	g.nodes[to] = struct{}{}
	g.link(from, to)
	g.link(to, from)
	g.edges++
}

func (g *Digraph) link(a, b string) {
	set, ok := g.neighbors[a]
	if !ok {
		set = make(map[string]struct{})
		g.neighbors[a] = set
	}
	set[b] = struct{}{}
}

// NodeCount returns the number of distinct handles.
func (g *Digraph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of AddEdge calls.
func (g *Digraph) EdgeCount() int { return g.edges }

// WeaklyConnectedComponents returns the node sets of each weakly
// connected component. Edge direction is ignored, matching the usual
// connectivity check for directed interaction graphs.
func (g *Digraph) WeaklyConnectedComponents() [][]string {
	visited := make(map[string]struct{}, len(g.nodes))
	var components [][]string

	for node := range g.nodes {
		if _, ok := visited[node]; ok {
			continue
		}

		var component []string
		queue := []string{node}
		visited[node] = struct{}{}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			component = append(component, cur)
			for next := range g.neighbors[cur] {
				if _, ok := visited[next]; ok {
					continue
				}
				visited[next] = struct{}{}
				queue = append(queue, next)
			}
		}
		components = append(components, component)
	}

	return components
}

// LargestComponentSize returns the node count of the biggest weakly
// connected component, or zero for an empty graph.
func (g *Digraph) LargestComponentSize() int {
	largest := 0
	for _, c := range g.WeaklyConnectedComponents() {
		if len(c) > largest {
			largest = len(c)
		}
	}
	return largest
}
