package adjacency

import "github.com/katalvlaran/cdt2d/pool"

// queueItem pairs a vertex with its discovered distance from the
// search root, mirroring the teacher corpus's bfs walker queue entry.
type queueItem struct {
	label pool.Label
	dist  int
}

// Distances runs a breadth-first search from root over the vertex
// adjacency graph and returns every reachable vertex's graph distance
// (number of links) from root. The result always contains root itself
// at distance 0.
func (s *Snapshot) Distances(root pool.Label) map[pool.Label]int {
	dist := make(map[pool.Label]int, len(s.Vertices))
	queue := make([]queueItem, 0, len(s.Vertices))

	dist[root] = 0
	queue = append(queue, queueItem{label: root, dist: 0})

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, next := range s.Vertices[cur.label].Neighbors {
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = cur.dist + 1
			queue = append(queue, queueItem{label: next, dist: cur.dist + 1})
		}
	}

	return dist
}

// Ball returns the labels of every vertex within radius links of root
// (inclusive), the discrete geodesic ball used by Hausdorff-dimension
// sampling.
func (s *Snapshot) Ball(root pool.Label, radius int) []pool.Label {
	dist := s.Distances(root)
	out := make([]pool.Label, 0, len(dist))
	for v, d := range dist {
		if d <= radius {
			out = append(out, v)
		}
	}
	return out
}
