package formatter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/wmr-route-finder/finder"
)

func TestTextTermini(t *testing.T) {
	assert.Equal(t, "Nuneaton -- Coventry (22)",
		TextTermini("Nuneaton -- Coventry", finder.Termini{Origin: "Nuneaton", Destination: "Coventry", Minutes: 22}, true))
	assert.Equal(t, "Line Z has no termini.", TextTermini("Z", finder.Termini{}, false))
}

func TestTextStations(t *testing.T) {
	stations := []finder.StationTime{
		{Station: "Nuneaton", Minutes: 0},
		{Station: "Bermuda Park", Minutes: 4},
		{Station: "Bedworth", Minutes: 8},
		{Station: "Coventry", Minutes: 22},
	}
	want := "Nuneaton -- Coventry (22) :\nNuneaton <4> Bermuda Park <8> Bedworth <22> Coventry"
	assert.Equal(t, want, TextStations("Nuneaton -- Coventry", stations))
	assert.Equal(t, "Line Z has no stations.", TextStations("Z", nil))
}

func TestTextAllLines(t *testing.T) {
	lines := []finder.LineSummary{
		{Route: "X", Origin: "A", Destination: "F", Minutes: 29},
		{Route: "Y", Origin: "A", Destination: "H", Minutes: 18},
	}
	assert.Equal(t, "A <...> F (29mins)\nA <...> H (18mins)", TextAllLines(lines))
	assert.Equal(t, "No lines loaded.", TextAllLines(nil))
}

func TestTextPaths(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "accessible",
			got:  TextAccessiblePath("A", "D", []string{"A", "B", "C", "D"}),
			want: "A -> B -> C -> D",
		},
		{
			name: "accessible none",
			got:  TextAccessiblePath("A", "Q", nil),
			want: "No step-free path from A to Q.",
		},
		{
			name: "all paths",
			got: TextAllPaths("A", "D", []finder.PathSummary{
				{Route: "X", Stations: []string{"A", "B", "C", "D"}, Minutes: 22},
				{Route: "Y", Stations: []string{"A", "D"}, Minutes: 15},
			}),
			want: "0 changes: A -> B -> C -> D\n0 changes: A -> D",
		},
		{
			name: "all paths none",
			got:  TextAllPaths("A", "Q", nil),
			want: "No path from A to Q.",
		},
		{
			name: "shortest",
			got:  TextShortestPath("A", "D", finder.PathSummary{Stations: []string{"A", "D"}, Minutes: 15}, true),
			want: "shortest: A -> D (15 mins)",
		},
		{
			name: "shortest none",
			got:  TextShortestPath("A", "Q", finder.PathSummary{}, false),
			want: "No path from A to Q.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestRender(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("BST", 3600))
	res := Wrap("termini", finder.Termini{Route: "X", Origin: "A", Destination: "F", Minutes: 29}, true, now)

	text, err := Render(FormatText, res, "A -- F (29)")
	require.NoError(t, err)
	assert.Equal(t, "A -- F (29)\n", string(text))

	raw, err := Render(FormatJSON, res, "ignored")
	require.NoError(t, err)
	var decoded struct {
		Query             string         `json:"query"`
		ResponseTimestamp string         `json:"response_timestamp"`
		Found             bool           `json:"found"`
		Result            finder.Termini `json:"result"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "termini", decoded.Query)
	assert.Equal(t, "2026-03-01T11:00:00Z", decoded.ResponseTimestamp)
	assert.True(t, decoded.Found)
	assert.Equal(t, 29, decoded.Result.Minutes)
}
