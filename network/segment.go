package network

// Record is one raw route segment as delivered by a loader.
type Record struct {
	Route       string `json:"route"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Duration    int    `json:"duration"`
}

// Segment is one directed hop within a named route.
type Segment struct {
	ID           int    `json:"id"`
	Route        string `json:"route"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	Duration     int    `json:"duration"`
	StepFree     bool   `json:"step_free"`
	Predecessors []int  `json:"predecessors,omitempty"`
	Successors   []int  `json:"successors,omitempty"`
}

// IsRoot reports whether the segment starts a chain.
func (s Segment) IsRoot() bool { return len(s.Predecessors) == 0 }

// IsLeaf reports whether the segment ends a chain.
func (s Segment) IsLeaf() bool { return len(s.Successors) == 0 }

// StationSet is a set of station names, used for step-free access.
type StationSet map[string]struct{}

// NewStationSet builds a set from names.
func NewStationSet(names ...string) StationSet {
	set := make(StationSet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// Contains reports whether name is in the set. A nil set contains nothing.
func (s StationSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Network is the segment store: a flat arena of linked segments.
type Network struct {
	segments   []Segment
	routes     map[string][]int // route -> segment ids in store order
	routeOrder []string         // routes by first appearance
}

// Len returns the number of segments.
func (n *Network) Len() int { return len(n.segments) }

// Segment returns the segment with the given id.
func (n *Network) Segment(id int) Segment { return n.segments[id] }

// Segments returns a copy of all segments in store order.
func (n *Network) Segments() []Segment {
	out := make([]Segment, len(n.segments))
	copy(out, n.segments)
	return out
}

// Routes returns route names in order of first appearance.
func (n *Network) Routes() []string {
	out := make([]string, len(n.routeOrder))
	copy(out, n.routeOrder)
	return out
}

// HasRoute reports whether any segment belongs to route.
func (n *Network) HasRoute(route string) bool {
	_, ok := n.routes[route]
	return ok
}

// RouteSegments returns the ids of the route's segments in store order.
func (n *Network) RouteSegments(route string) []int {
	ids := n.routes[route]
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}

func (n *Network) valid(id int) bool { return id >= 0 && id < len(n.segments) }

// visitSet is per-call traversal scratch state, indexed by segment id.
type visitSet []bool

func (n *Network) newVisitSet() visitSet { return make(visitSet, len(n.segments)) }

func (v visitSet) has(id int) bool { return v[id] }
func (v visitSet) mark(id int)     { v[id] = true }
func (v visitSet) unmark(id int)   { v[id] = false }
