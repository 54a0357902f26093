package network

// FindRoots returns the root segments reachable from id by walking
// predecessors backwards, without duplicates. A route that loops back on
// itself with no root yields nothing.
func (n *Network) FindRoots(id int) []int {
	if !n.valid(id) {
		return nil
	}
	return n.findRoots(id, n.newVisitSet())
}

func (n *Network) findRoots(id int, visited visitSet) []int {
	if visited.has(id) {
		return nil
	}
	visited.mark(id)
	s := n.segments[id]
	if s.IsRoot() {
		visited.unmark(id)
		return []int{id}
	}
	var out []int
	seen := map[int]struct{}{}
	for _, prev := range s.Predecessors {
		for _, r := range n.findRoots(prev, visited) {
			if _, dup := seen[r]; dup {
				continue
			}
			seen[r] = struct{}{}
			out = append(out, r)
		}
	}
	return out
}

// FindLeaves returns, for every root of id, the leaves reached by walking
// forward from that root with no accumulated time. One visit set is shared by
// all roots of the call. A leaf reached more than once keeps its first
// elapsed value.
func (n *Network) FindLeaves(id int) []Terminal {
	if !n.valid(id) {
		return nil
	}
	visited := n.newVisitSet()
	var out []Terminal
	seen := map[int]struct{}{}
	for _, root := range n.FindRoots(id) {
		for _, t := range n.walkForward(root, 0, visited) {
			if _, dup := seen[t.Segment]; dup {
				continue
			}
			seen[t.Segment] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}
