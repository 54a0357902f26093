package network

import (
	"github.com/hashicorp/go-hclog"
)

type buildOptions struct {
	logger hclog.Logger
}

// BuildOption configures Build.
type BuildOption func(*buildOptions)

// WithLogger sets the logger used for data-integrity observations.
func WithLogger(l hclog.Logger) BuildOption {
	return func(o *buildOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Build links records into per-route chains and marks step-free segments.
//
// Records equal in all four fields collapse to the first one. Within a route,
// each segment is linked behind the first segment (in store order) whose
// destination is its origin; further candidates are ignored. Malformed input
// is never rejected.
func Build(records []Record, stepFree StationSet, opts ...BuildOption) *Network {
	o := buildOptions{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	n := &Network{routes: map[string][]int{}}
	seen := make(map[Record]struct{}, len(records))
	for _, r := range records {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		if r.Duration <= 0 {
			o.logger.Warn("non-positive segment duration", "route", r.Route, "origin", r.Origin, "destination", r.Destination, "duration", r.Duration)
		}
		id := len(n.segments)
		n.segments = append(n.segments, Segment{
			ID:          id,
			Route:       r.Route,
			Origin:      r.Origin,
			Destination: r.Destination,
			Duration:    r.Duration,
			StepFree:    stepFree.Contains(r.Origin),
		})
		if _, ok := n.routes[r.Route]; !ok {
			n.routeOrder = append(n.routeOrder, r.Route)
		}
		n.routes[r.Route] = append(n.routes[r.Route], id)
	}

	for _, route := range n.routeOrder {
		group := n.routes[route]
		for _, sid := range group {
			s := &n.segments[sid]
			for _, pid := range group {
				p := &n.segments[pid]
				if p.Destination != s.Origin {
					continue
				}
				s.Predecessors = append(s.Predecessors, pid)
				p.Successors = append(p.Successors, sid)
				break
			}
		}
		n.reportShape(route, o.logger)
	}

	o.logger.Debug("network built", "segments", len(n.segments), "routes", len(n.routeOrder), "duplicates", len(records)-len(n.segments))
	return n
}

// reportShape logs routes that do not form a single simple chain.
func (n *Network) reportShape(route string, logger hclog.Logger) {
	roots, leaves := 0, 0
	for _, id := range n.routes[route] {
		s := n.segments[id]
		if s.IsRoot() {
			roots++
		}
		if s.IsLeaf() {
			leaves++
		}
	}
	if roots != 1 || leaves != 1 {
		logger.Warn("route is not a simple chain", "route", route, "roots", roots, "leaves", leaves)
	}
}
