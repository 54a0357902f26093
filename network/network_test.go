package network

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chain(route string, hops ...any) []Record {
	var out []Record
	for i := 0; i+2 < len(hops); i += 2 {
		out = append(out, Record{
			Route:       route,
			Origin:      hops[i].(string),
			Destination: hops[i+2].(string),
			Duration:    hops[i+1].(int),
		})
	}
	return out
}

func TestBuild_LinksSimpleChain(t *testing.T) {
	net := Build(chain("X", "A", 10, "B", 5, "C", 7, "D"), nil)
	require.Equal(t, 3, net.Len())

	roots, leaves := 0, 0
	for _, s := range net.Segments() {
		if s.IsRoot() {
			roots++
		}
		if s.IsLeaf() {
			leaves++
		}
	}
	assert.Equal(t, 1, roots)
	assert.Equal(t, 1, leaves)

	assert.Equal(t, []int{0}, net.Segment(1).Predecessors)
	assert.Equal(t, []int{2}, net.Segment(1).Successors)
}

func TestBuild_StepFreeFollowsOrigin(t *testing.T) {
	set := NewStationSet("A", "C")
	net := Build(chain("X", "A", 10, "B", 5, "C", 7, "D"), set)
	for _, s := range net.Segments() {
		assert.Equal(t, set.Contains(s.Origin), s.StepFree, s.Origin)
	}
}

func TestBuild_CollapsesDuplicateRecords(t *testing.T) {
	recs := chain("X", "A", 10, "B", 5, "C")
	recs = append(recs, recs[0], Record{Route: "X", Origin: "A", Destination: "B", Duration: 11})
	net := Build(recs, nil)
	assert.Equal(t, 3, net.Len())
}

func TestBuild_LinksFirstMatchOnly(t *testing.T) {
	recs := []Record{
		{Route: "X", Origin: "A", Destination: "B", Duration: 1},
		{Route: "X", Origin: "Z", Destination: "B", Duration: 1},
		{Route: "X", Origin: "B", Destination: "C", Duration: 1},
	}
	net := Build(recs, nil)
	assert.Equal(t, []int{0}, net.Segment(2).Predecessors)
	assert.Equal(t, []int{2}, net.Segment(0).Successors)
	assert.True(t, net.Segment(1).IsRoot())
	assert.True(t, net.Segment(1).IsLeaf())
}

func TestBuild_NeverLinksAcrossRoutes(t *testing.T) {
	recs := append(chain("X", "A", 1, "B"), chain("Y", "B", 1, "C")...)
	net := Build(recs, nil)
	assert.Empty(t, net.Segment(1).Predecessors)
	assert.Empty(t, net.Segment(0).Successors)
	assert.Equal(t, []string{"X", "Y"}, net.Routes())
	assert.Equal(t, []int{1}, net.RouteSegments("Y"))
	assert.False(t, net.HasRoute("Z"))
}

func TestBuild_LogsIrregularRoutes(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Output: &buf, Level: hclog.Warn})
	recs := append(chain("Loop", "P", 1, "Q", 1, "P"), Record{Route: "Bad", Origin: "A", Destination: "B", Duration: 0})
	Build(recs, nil, WithLogger(logger))

	out := buf.String()
	assert.Contains(t, out, "route is not a simple chain")
	assert.Contains(t, out, "route=Loop")
	assert.Contains(t, out, "non-positive segment duration")
}

func TestEach_VisitsMatchingOnceInStoreOrder(t *testing.T) {
	recs := append(chain("X", "A", 10, "B", 5, "C"), chain("Y", "C", 1, "D")...)
	net := Build(recs, nil)

	var names []string
	got := net.Each(func(s Segment) bool { return s.Route == "X" }, func(s Segment) { names = append(names, s.Origin) })
	assert.Equal(t, []string{"A", "B"}, names)
	assert.Len(t, got, 2)

	var ids []int
	net.EachOf([]int{2, 0, 2, 1, 0, 99}, nil, func(s Segment) { ids = append(ids, s.ID) })
	assert.Equal(t, []int{2, 0, 1}, ids)
}

func TestFindRoots(t *testing.T) {
	net := Build(chain("X", "A", 10, "B", 5, "C", 7, "D"), nil)

	tests := []struct {
		name string
		id   int
		want []int
	}{
		{name: "root is its own root", id: 0, want: []int{0}},
		{name: "middle descends into predecessors", id: 1, want: []int{0}},
		{name: "leaf", id: 2, want: []int{0}},
		{name: "out of range", id: 7, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, net.FindRoots(tt.id))
		})
	}
}

func TestFindRoots_CycleHasNoRoot(t *testing.T) {
	net := Build(chain("Loop", "P", 1, "Q", 1, "R", 1, "P"), nil)
	for id := 0; id < net.Len(); id++ {
		assert.Empty(t, net.FindRoots(id))
	}
}

func TestWalkForward_AccumulatesToLeaf(t *testing.T) {
	net := Build(chain("X", "A", 10, "B", 5, "C", 7, "D"), nil)
	assert.Equal(t, []Terminal{{Segment: 2, Elapsed: 22}}, net.WalkForward(0, 0))
	assert.Equal(t, []Terminal{{Segment: 2, Elapsed: 27}}, net.WalkForward(1, 15))
	assert.Nil(t, net.WalkForward(-1, 0))
}

func TestWalkForward_CycleTerminates(t *testing.T) {
	net := Build(chain("Loop", "P", 1, "Q", 1, "P"), nil)
	assert.Empty(t, net.WalkForward(0, 0))
}

func TestFindLeaves_Branching(t *testing.T) {
	recs := []Record{
		{Route: "X", Origin: "A", Destination: "B", Duration: 1},
		{Route: "X", Origin: "B", Destination: "C", Duration: 2},
		{Route: "X", Origin: "B", Destination: "D", Duration: 3},
	}
	net := Build(recs, nil)
	want := []Terminal{{Segment: 1, Elapsed: 3}, {Segment: 2, Elapsed: 4}}
	assert.Equal(t, want, net.FindLeaves(1))
	assert.Equal(t, want, net.FindLeaves(0))
}

func TestQueriesLeaveNoState(t *testing.T) {
	net := Build(chain("X", "A", 10, "B", 5, "C", 7, "D", 3, "E", 4, "F"), NewStationSet("A", "C"))

	first := [][]any{
		{net.FindRoots(3)}, {net.FindLeaves(2)}, {net.WalkForward(0, 0)},
		{net.FindPaths(0, 2, false)}, {net.FindPaths(1, 2, true)},
	}
	// interleave in a different order and repeat
	_ = net.FindPaths(4, 0, true)
	_ = net.FindLeaves(4)
	second := [][]any{
		{net.FindRoots(3)}, {net.FindLeaves(2)}, {net.WalkForward(0, 0)},
		{net.FindPaths(0, 2, false)}, {net.FindPaths(1, 2, true)},
	}
	assert.Equal(t, first, second)
}
