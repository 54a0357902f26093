package network

// Each applies action once to every segment satisfying pred, in store order,
// and returns the segments it was applied to. A nil pred matches everything;
// a nil action only collects.
func (n *Network) Each(pred func(Segment) bool, action func(Segment)) []Segment {
	ids := make([]int, len(n.segments))
	for i := range ids {
		ids[i] = i
	}
	return n.EachOf(ids, pred, action)
}

// EachOf is Each over a candidate sequence that may name the same segment more
// than once. Every qualifying segment is still handled exactly once, in order
// of first appearance. Out-of-range ids are skipped.
func (n *Network) EachOf(ids []int, pred func(Segment) bool, action func(Segment)) []Segment {
	visited := n.newVisitSet()
	var out []Segment
	for _, id := range ids {
		if !n.valid(id) || visited.has(id) {
			continue
		}
		s := n.segments[id]
		if pred != nil && !pred(s) {
			continue
		}
		visited.mark(id)
		if action != nil {
			action(s)
		}
		out = append(out, s)
	}
	return out
}
