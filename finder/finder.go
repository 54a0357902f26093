// Package finder answers the route finder's queries by composing the
// traversals of package network. Queries never fail: an unknown route or
// station yields an empty result or false.
package finder

import (
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/theoremus-urban-solutions/wmr-route-finder/network"
)

// Termini are the two ends of a line and the minutes between them.
type Termini struct {
	Route       string `json:"route"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Minutes     int    `json:"minutes"`
}

// StationTime is a station with the minutes elapsed since the start of the line.
type StationTime struct {
	Station string `json:"station"`
	Minutes int    `json:"minutes"`
}

// LineSummary is one start-to-end run of a line.
type LineSummary struct {
	Route       string `json:"route"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Minutes     int    `json:"minutes"`
}

// PathSummary is a path between two stations.
type PathSummary struct {
	Route        string   `json:"route"`
	Interchanges int      `json:"interchanges"`
	Stations     []string `json:"stations"`
	Minutes      int      `json:"minutes"`
}

// Finder runs queries against a built network. It holds no per-query state
// and is safe for concurrent use.
type Finder struct {
	net    *network.Network
	logger hclog.Logger
}

// Option configures a Finder.
type Option func(*Finder)

// WithLogger sets the logger used to report empty or degraded answers.
func WithLogger(l hclog.Logger) Option {
	return func(f *Finder) {
		if l != nil {
			f.logger = l
		}
	}
}

// New creates a Finder over net.
func New(net *network.Network, opts ...Option) *Finder {
	f := &Finder{net: net, logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Network returns the underlying network.
func (f *Finder) Network() *network.Network { return f.net }

// NormalizeRoute trims a route name and collapses a doubled en dash, which
// the line catalogue sometimes carries.
func NormalizeRoute(route string) string {
	return strings.ReplaceAll(strings.TrimSpace(route), "––", "–")
}

func onRoute(route string, extra func(network.Segment) bool) func(network.Segment) bool {
	return func(s network.Segment) bool { return s.Route == route && extra(s) }
}

// ListTermini returns the first start and the first end of route. A start
// must lead somewhere and an end must be reached from somewhere, so a line of
// a single segment has no termini.
func (f *Finder) ListTermini(route string) (Termini, bool) {
	route = NormalizeRoute(route)
	roots := f.net.Each(onRoute(route, func(s network.Segment) bool { return s.IsRoot() && !s.IsLeaf() }), nil)
	leaves := f.net.Each(onRoute(route, func(s network.Segment) bool { return s.IsLeaf() && !s.IsRoot() }), nil)
	if len(roots) == 0 && len(leaves) == 0 {
		f.logger.Debug("no termini", "route", route)
		return Termini{}, false
	}

	t := Termini{Route: route}
	if len(roots) > 0 {
		t.Origin = roots[0].Origin
	}
	if len(leaves) > 0 {
		t.Destination = leaves[0].Destination
	}
	if len(roots) > 0 && len(leaves) > 0 {
		reached := false
		for _, term := range f.net.WalkForward(roots[0].ID, 0) {
			if term.Segment == leaves[0].ID {
				t.Minutes, reached = term.Elapsed, true
				break
			}
		}
		if !reached {
			f.logger.Warn("termini are not connected", "route", route, "origin", t.Origin, "destination", t.Destination)
		}
	}
	return t, true
}

// ListStationsInLine lists the stations of route in the order its segments
// were loaded, each with the minutes accumulated before it.
func (f *Finder) ListStationsInLine(route string) []StationTime {
	route = NormalizeRoute(route)
	var out []StationTime
	var last network.Segment
	total := 0
	f.net.Each(onRoute(route, func(network.Segment) bool { return true }), func(s network.Segment) {
		out = append(out, StationTime{Station: s.Origin, Minutes: total})
		total += s.Duration
		last = s
	})
	if len(out) == 0 {
		return nil
	}
	return append(out, StationTime{Station: last.Destination, Minutes: total})
}

// ListAllLines returns every distinct start-to-end run in the network.
func (f *Finder) ListAllLines() []LineSummary {
	var out []LineSummary
	seen := map[LineSummary]struct{}{}
	for _, s := range f.net.Segments() {
		leaves := f.net.FindLeaves(s.ID)
		if len(leaves) == 0 {
			continue
		}
		root := f.net.Segment(f.net.FindRoots(s.ID)[0])
		for _, leaf := range leaves {
			row := LineSummary{
				Route:       s.Route,
				Origin:      root.Origin,
				Destination: f.net.Segment(leaf.Segment).Destination,
				Minutes:     leaf.Elapsed,
			}
			if _, dup := seen[row]; dup {
				continue
			}
			seen[row] = struct{}{}
			out = append(out, row)
		}
	}
	return out
}

// FindAccessiblePath returns the stations of the first step-free path from
// one station to another, or nil.
func (f *Finder) FindAccessiblePath(from, to string) []string {
	if paths := f.paths(from, to, true); len(paths) > 0 {
		return paths[0].Stations()
	}
	f.logger.Debug("no accessible path", "from", from, "to", to)
	return nil
}

// FindAllPaths returns every path between two stations.
func (f *Finder) FindAllPaths(from, to string) []PathSummary {
	var out []PathSummary
	for _, p := range f.paths(from, to, false) {
		out = append(out, summarize(p, p.Total()))
	}
	return out
}

// FindShortestPath returns the path with the fewest minutes between two
// stations.
func (f *Finder) FindShortestPath(from, to string) (PathSummary, bool) {
	best, total, ok := network.ShortestPath(f.paths(from, to, false))
	if !ok {
		return PathSummary{}, false
	}
	return summarize(best, total), true
}

// paths searches every route that both departs from and arrives at the given
// stations, in route order. Within a route the first matching segment is used
// for each end.
func (f *Finder) paths(from, to string, accessibleOnly bool) []network.Path {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	var out []network.Path
	for _, route := range f.net.Routes() {
		start, stop := -1, -1
		for _, id := range f.net.RouteSegments(route) {
			s := f.net.Segment(id)
			if start < 0 && s.Origin == from {
				start = id
			}
			if stop < 0 && s.Destination == to {
				stop = id
			}
		}
		if start < 0 || stop < 0 {
			continue
		}
		found := f.net.FindPaths(start, stop, accessibleOnly)
		f.logger.Trace("searched route", "route", route, "from", from, "to", to, "accessible", accessibleOnly, "paths", len(found))
		out = append(out, found...)
	}
	return out
}

func summarize(p network.Path, minutes int) PathSummary {
	return PathSummary{
		Route:        p.Terminator.Route,
		Interchanges: p.Interchanges(),
		Stations:     p.Stations(),
		Minutes:      minutes,
	}
}
