package network

// Terminal is a leaf segment reached by a forward walk, with the minutes
// elapsed from the walk's starting point to the leaf's destination.
type Terminal struct {
	Segment int `json:"segment"`
	Elapsed int `json:"elapsed"`
}

// WalkForward walks successors depth-first from id and returns every leaf it
// reaches. Elapsed on each leaf is accumulated plus the durations of every
// segment from id down to and including the leaf.
func (n *Network) WalkForward(id, accumulated int) []Terminal {
	if !n.valid(id) {
		return nil
	}
	return n.walkForward(id, accumulated, n.newVisitSet())
}

func (n *Network) walkForward(id, accumulated int, visited visitSet) []Terminal {
	if visited.has(id) {
		return nil
	}
	visited.mark(id)
	s := n.segments[id]
	elapsed := accumulated + s.Duration
	if s.IsLeaf() {
		// leaves stay reachable for later walks sharing this set
		visited.unmark(id)
		return []Terminal{{Segment: id, Elapsed: elapsed}}
	}
	var out []Terminal
	for _, next := range s.Successors {
		out = append(out, n.walkForward(next, elapsed, visited)...)
	}
	return out
}
