package formatter

import (
	"fmt"
	"strings"

	"github.com/theoremus-urban-solutions/wmr-route-finder/finder"
)

const arrow = " -> "

// TextTermini renders "Origin -- Destination (minutes)".
func TextTermini(route string, t finder.Termini, ok bool) string {
	if !ok {
		return fmt.Sprintf("Line %s has no termini.", route)
	}
	return fmt.Sprintf("%s -- %s (%d)", t.Origin, t.Destination, t.Minutes)
}

// TextStations renders a header with the line's total time followed by every
// station separated by the cumulative minutes to the next one:
//
//	Nuneaton -- Coventry (22) :
//	Nuneaton <4> Bermuda Park <8> Bedworth <14> Coventry Arena <22> Coventry
func TextStations(route string, stations []finder.StationTime) string {
	if len(stations) == 0 {
		return fmt.Sprintf("Line %s has no stations.", route)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d) :\n", route, stations[len(stations)-1].Minutes)
	for i, s := range stations {
		if i > 0 {
			fmt.Fprintf(&b, " <%d> ", s.Minutes)
		}
		b.WriteString(s.Station)
	}
	return b.String()
}

// TextAllLines renders one "Origin <...> Destination (Nmins)" per line.
func TextAllLines(lines []finder.LineSummary) string {
	if len(lines) == 0 {
		return "No lines loaded."
	}
	rows := make([]string, len(lines))
	for i, l := range lines {
		rows[i] = fmt.Sprintf("%s <...> %s (%dmins)", l.Origin, l.Destination, l.Minutes)
	}
	return strings.Join(rows, "\n")
}

// TextAccessiblePath renders "A -> B -> C".
func TextAccessiblePath(from, to string, stations []string) string {
	if len(stations) == 0 {
		return fmt.Sprintf("No step-free path from %s to %s.", from, to)
	}
	return strings.Join(stations, arrow)
}

// TextAllPaths renders one "N changes: A -> B" per path.
func TextAllPaths(from, to string, paths []finder.PathSummary) string {
	if len(paths) == 0 {
		return fmt.Sprintf("No path from %s to %s.", from, to)
	}
	rows := make([]string, len(paths))
	for i, p := range paths {
		rows[i] = fmt.Sprintf("%d changes: %s", p.Interchanges, strings.Join(p.Stations, arrow))
	}
	return strings.Join(rows, "\n")
}

// TextShortestPath renders "shortest: A -> B (N mins)".
func TextShortestPath(from, to string, p finder.PathSummary, ok bool) string {
	if !ok {
		return fmt.Sprintf("No path from %s to %s.", from, to)
	}
	return fmt.Sprintf("shortest: %s (%d mins)", strings.Join(p.Stations, arrow), p.Minutes)
}
