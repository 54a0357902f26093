package loader

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/wmr-route-finder/network"
)

type stopTime struct {
	stop    string
	seq     int
	arrival string
	depart  string
}

// gtfsFeed is the subset of a GTFS static feed needed to build segments.
type gtfsFeed struct {
	routeOrder []string
	routeNames map[string]string // route_id -> display name
	firstTrip  map[string]string // route_id -> first trip_id in trips.txt
	stopNames  map[string]string // stop_id -> stop_name
	stepFree   map[string]bool   // stop_id -> wheelchair_boarding == 1
	stopTimes  map[string][]stopTime
}

// LoadGTFS reads a GTFS static zip from a path or URL.
func (l *Loader) LoadGTFS(ctx context.Context, src string) (*Dataset, error) {
	data, err := l.Fetch(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("gtfs: %w", err)
	}
	ds, err := ParseGTFS(data)
	if err != nil {
		return nil, err
	}
	l.logger.Info("loaded gtfs network", "source", src, "records", len(ds.Records), "step_free", len(ds.StepFree))
	return ds, nil
}

// ParseGTFS builds a dataset from the bytes of a GTFS static zip. Each route
// contributes the consecutive stop pairs of its first trip.
func ParseGTFS(data []byte) (*Dataset, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: gtfs zip: %w", ErrLoad, err)
	}
	feed := &gtfsFeed{
		routeNames: map[string]string{},
		firstTrip:  map[string]string{},
		stopNames:  map[string]string{},
		stepFree:   map[string]bool{},
		stopTimes:  map[string][]stopTime{},
	}

	// stop_times.txt needs the chosen trips, so it is read last
	files := map[string]*zip.File{}
	for _, f := range zr.File {
		files[strings.ToLower(f.Name)] = f
	}
	for _, name := range []string{"routes.txt", "trips.txt", "stops.txt", "stop_times.txt"} {
		f, ok := files[name]
		if !ok {
			return nil, fmt.Errorf("%w: gtfs zip has no %s", ErrLoad, name)
		}
		if err := feed.consumeCSV(name, f); err != nil {
			return nil, fmt.Errorf("%w: gtfs %s: %w", ErrLoad, name, err)
		}
	}
	return feed.dataset(), nil
}

func (g *gtfsFeed) consumeCSV(name string, f *zip.File) error {
	r, err := f.Open()
	if err != nil {
		return err
	}
	defer r.Close()
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	rec, err := csvr.ReadAll()
	if err != nil {
		return err
	}
	if len(rec) == 0 {
		return nil
	}
	head := rec[0]
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimPrefix(strings.TrimSpace(h), "\ufeff"), col) {
				return i
			}
		}
		return -1
	}
	field := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	switch name {
	case "routes.txt":
		rID, rSN, rLN := idx("route_id"), idx("route_short_name"), idx("route_long_name")
		for _, row := range rec[1:] {
			id := field(row, rID)
			if id == "" {
				continue
			}
			display := field(row, rLN)
			if display == "" {
				display = field(row, rSN)
			}
			if display == "" {
				display = id
			}
			if _, ok := g.routeNames[id]; !ok {
				g.routeOrder = append(g.routeOrder, id)
			}
			g.routeNames[id] = display
		}
	case "trips.txt":
		rID, tID := idx("route_id"), idx("trip_id")
		for _, row := range rec[1:] {
			route, trip := field(row, rID), field(row, tID)
			if route == "" || trip == "" {
				continue
			}
			if _, ok := g.firstTrip[route]; !ok {
				g.firstTrip[route] = trip
			}
		}
	case "stops.txt":
		sID, sN, wb := idx("stop_id"), idx("stop_name"), idx("wheelchair_boarding")
		for _, row := range rec[1:] {
			id := field(row, sID)
			if id == "" {
				continue
			}
			g.stopNames[id] = field(row, sN)
			g.stepFree[id] = field(row, wb) == "1"
		}
	case "stop_times.txt":
		tID, sID, sq := idx("trip_id"), idx("stop_id"), idx("stop_sequence")
		arr, dep := idx("arrival_time"), idx("departure_time")
		if tID < 0 || sID < 0 || sq < 0 {
			return fmt.Errorf("missing trip_id, stop_id or stop_sequence column")
		}
		wanted := make(map[string]bool, len(g.firstTrip))
		for _, trip := range g.firstTrip {
			wanted[trip] = true
		}
		for _, row := range rec[1:] {
			trip := field(row, tID)
			if !wanted[trip] {
				continue
			}
			seq, err := strconv.Atoi(field(row, sq))
			if err != nil {
				return fmt.Errorf("trip %s: stop_sequence %q: %w", trip, field(row, sq), err)
			}
			g.stopTimes[trip] = append(g.stopTimes[trip], stopTime{
				stop:    field(row, sID),
				seq:     seq,
				arrival: field(row, arr),
				depart:  field(row, dep),
			})
		}
		for _, st := range g.stopTimes {
			sort.SliceStable(st, func(i, j int) bool { return st[i].seq < st[j].seq })
		}
	}
	return nil
}

func (g *gtfsFeed) stopName(id string) string {
	if n := g.stopNames[id]; n != "" {
		return n
	}
	return id
}

func (g *gtfsFeed) dataset() *Dataset {
	ds := &Dataset{StepFree: network.NewStationSet()}
	for id, ok := range g.stepFree {
		if ok {
			ds.StepFree[g.stopName(id)] = struct{}{}
		}
	}
	for _, routeID := range g.routeOrder {
		times := g.stopTimes[g.firstTrip[routeID]]
		for i := 0; i+1 < len(times); i++ {
			from, to := times[i], times[i+1]
			ds.Records = append(ds.Records, network.Record{
				Route:       g.routeNames[routeID],
				Origin:      g.stopName(from.stop),
				Destination: g.stopName(to.stop),
				Duration:    minutesBetween(from, to),
			})
		}
	}
	return ds
}

// minutesBetween is the rounded minutes from leaving a to arriving at b, or 0
// when either time is missing.
func minutesBetween(a, b stopTime) int {
	leave := a.depart
	if leave == "" {
		leave = a.arrival
	}
	arrive := b.arrival
	if arrive == "" {
		arrive = b.depart
	}
	from, ok1 := parseGTFSTime(leave)
	to, ok2 := parseGTFSTime(arrive)
	if !ok1 || !ok2 {
		return 0
	}
	return (to - from + 30) / 60
}

// parseGTFSTime parses H:MM:SS into seconds past midnight; hours may exceed 23.
func parseGTFSTime(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, false
	}
	var secs int
	for _, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return 0, false
		}
		secs = secs*60 + v
	}
	return secs, true
}
