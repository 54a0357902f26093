package network

import (
	"slices"
	"strconv"
	"strings"
)

// Step is one segment of a discovered path with the minutes elapsed from the
// search start to the segment's destination.
type Step struct {
	Segment     int    `json:"segment"`
	Route       string `json:"route"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Elapsed     int    `json:"elapsed"`
}

// Path is one result of FindPaths. Steps are the segments walked from the
// start; Terminator is the stop segment that ended the search.
type Path struct {
	Steps      []Step `json:"steps"`
	Terminator Step   `json:"terminator"`
}

// Total is the elapsed minutes recorded on the terminator.
func (p Path) Total() int { return p.Terminator.Elapsed }

// Stations lists the origin of every step followed by the terminator's
// destination.
func (p Path) Stations() []string {
	out := make([]string, 0, len(p.Steps)+1)
	for _, s := range p.Steps {
		out = append(out, s.Origin)
	}
	return append(out, p.Terminator.Destination)
}

// RouteGroup is a run of path steps sharing a route.
type RouteGroup struct {
	Route string `json:"route"`
	Steps []Step `json:"steps"`
}

// RouteGroups groups the path's steps by route in order of first appearance.
// A path with no steps is a single group holding the terminator.
func (p Path) RouteGroups() []RouteGroup {
	seq := p.Steps
	if len(seq) == 0 {
		seq = []Step{p.Terminator}
	}
	var groups []RouteGroup
	index := map[string]int{}
	for _, s := range seq {
		i, ok := index[s.Route]
		if !ok {
			i = len(groups)
			index[s.Route] = i
			groups = append(groups, RouteGroup{Route: s.Route})
		}
		groups[i].Steps = append(groups[i].Steps, s)
	}
	return groups
}

// Interchanges is the number of distinct routes on the path minus one.
func (p Path) Interchanges() int {
	return max(len(p.RouteGroups())-1, 0)
}

func (p Path) key() string {
	var b strings.Builder
	for _, s := range p.Steps {
		b.WriteString(strconv.Itoa(s.Segment))
		b.WriteByte(',')
	}
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(p.Terminator.Segment))
	return b.String()
}

func (n *Network) step(id, elapsed int) Step {
	s := n.segments[id]
	return Step{Segment: id, Route: s.Route, Origin: s.Origin, Destination: s.Destination, Elapsed: elapsed}
}

// FindPaths enumerates the simple paths from start that end on stop.
//
// The search stops on a segment once stop is one of its predecessors, so a
// stop that has no successor of its own is never found. With accessibleOnly,
// a start that is not step-free is replaced by its nearest step-free ancestor
// and a stop that is not step-free by its nearest step-free descendant; when
// either has none, there are no paths.
func (n *Network) FindPaths(start, stop int, accessibleOnly bool) []Path {
	if !n.valid(start) || !n.valid(stop) {
		return nil
	}
	if accessibleOnly {
		var ok bool
		if start, ok = n.nearestStepFree(start, func(s Segment) []int { return s.Predecessors }); !ok {
			return nil
		}
		if stop, ok = n.nearestStepFree(stop, func(s Segment) []int { return s.Successors }); !ok {
			return nil
		}
	}
	paths, _ := n.search(start, stop, 0, n.newVisitSet())
	return paths
}

// search returns the paths found below current and whether any branch
// reached stop. A dead end reports false.
func (n *Network) search(current, stop, depth int, onPath visitSet) ([]Path, bool) {
	if onPath.has(current) {
		return nil, false
	}
	s := n.segments[current]
	if s.IsLeaf() {
		return nil, false
	}
	if slices.Contains(s.Predecessors, stop) {
		return []Path{{Terminator: n.step(stop, depth)}}, true
	}

	onPath.mark(current)
	defer onPath.unmark(current)

	elapsed := depth + s.Duration
	here := n.step(current, elapsed)
	var out []Path
	seen := map[string]struct{}{}
	for _, next := range s.Successors {
		branch, ok := n.search(next, stop, elapsed, onPath)
		if !ok {
			continue
		}
		for _, p := range branch {
			p.Steps = append([]Step{here}, p.Steps...)
			k := p.key()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, p)
		}
	}
	return out, len(out) > 0
}

// nearestStepFree returns id itself when step-free, otherwise the closest
// step-free segment reachable through next, breadth first.
func (n *Network) nearestStepFree(id int, next func(Segment) []int) (int, bool) {
	visited := n.newVisitSet()
	queue := []int{id}
	visited.mark(id)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		s := n.segments[cur]
		if s.StepFree {
			return cur, true
		}
		for _, nb := range next(s) {
			if visited.has(nb) {
				continue
			}
			visited.mark(nb)
			queue = append(queue, nb)
		}
	}
	return 0, false
}
