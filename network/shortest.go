package network

// Shortest picks the group whose last step has the smallest elapsed time.
// The first minimum wins; empty groups are ignored.
func Shortest(groups []RouteGroup) (RouteGroup, bool) {
	i := shortestIndex(groups)
	if i < 0 {
		return RouteGroup{}, false
	}
	return groups[i], true
}

// ShortestPath compares the route groups of every candidate path and returns
// the path owning the minimum group together with that group's elapsed time.
func ShortestPath(paths []Path) (Path, int, bool) {
	var groups []RouteGroup
	var owner []int
	for i, p := range paths {
		for _, g := range p.RouteGroups() {
			groups = append(groups, g)
			owner = append(owner, i)
		}
	}
	i := shortestIndex(groups)
	if i < 0 {
		return Path{}, 0, false
	}
	return paths[owner[i]], lastElapsed(groups[i]), true
}

func shortestIndex(groups []RouteGroup) int {
	best := -1
	for i, g := range groups {
		if len(g.Steps) == 0 {
			continue
		}
		if best < 0 || lastElapsed(g) < lastElapsed(groups[best]) {
			best = i
		}
	}
	return best
}

func lastElapsed(g RouteGroup) int { return g.Steps[len(g.Steps)-1].Elapsed }
