package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/theoremus-urban-solutions/wmr-route-finder/finder"
	"github.com/theoremus-urban-solutions/wmr-route-finder/formatter"
)

type healthResponse struct {
	Status   string `json:"status"`
	Routes   int    `json:"routes"`
	Segments int    `json:"segments"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	nw := s.finder.Network()
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Routes:   len(nw.Routes()),
		Segments: nw.Len(),
	})
}

func (s *Server) handleLines(w http.ResponseWriter, r *http.Request) {
	s.respond(w, "lines", memoKey("lines"), func() (any, bool) {
		lines := s.finder.ListAllLines()
		if lines == nil {
			lines = []finder.LineSummary{}
		}
		return lines, len(lines) > 0
	})
}

func (s *Server) handleTermini(w http.ResponseWriter, r *http.Request) {
	route := finder.NormalizeRoute(chi.URLParam(r, "route"))
	s.respond(w, "termini", memoKey("termini", route), func() (any, bool) {
		t, ok := s.finder.ListTermini(route)
		if !ok {
			return nil, false
		}
		return t, true
	})
}

func (s *Server) handleStations(w http.ResponseWriter, r *http.Request) {
	route := finder.NormalizeRoute(chi.URLParam(r, "route"))
	s.respond(w, "stations", memoKey("stations", route), func() (any, bool) {
		stations := s.finder.ListStationsInLine(route)
		if stations == nil {
			stations = []finder.StationTime{}
		}
		return stations, len(stations) > 0
	})
}

func (s *Server) handlePaths(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseStations(r)
	if err != nil {
		s.writeError(w, "paths", err)
		return
	}
	s.respond(w, "paths", memoKey("paths", from, to), func() (any, bool) {
		paths := s.finder.FindAllPaths(from, to)
		if paths == nil {
			paths = []finder.PathSummary{}
		}
		return paths, len(paths) > 0
	})
}

func (s *Server) handleShortest(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseStations(r)
	if err != nil {
		s.writeError(w, "shortest", err)
		return
	}
	s.respond(w, "shortest", memoKey("shortest", from, to), func() (any, bool) {
		p, ok := s.finder.FindShortestPath(from, to)
		if !ok {
			return nil, false
		}
		return p, true
	})
}

func (s *Server) handleAccessible(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseStations(r)
	if err != nil {
		s.writeError(w, "accessible", err)
		return
	}
	s.respond(w, "accessible", memoKey("accessible", from, to), func() (any, bool) {
		stations := s.finder.FindAccessiblePath(from, to)
		if stations == nil {
			stations = []string{}
		}
		return stations, len(stations) > 0
	})
}

// respond answers a query from the cache or by running it, wrapped in the
// response envelope. An empty answer is still a 200.
func (s *Server) respond(w http.ResponseWriter, query, key string, run func() (any, bool)) {
	entry, hit := s.cache.get(key)
	if !hit {
		result, found := run()
		entry = cacheEntry{result: result, found: found}
		s.cache.put(key, entry)
	}
	s.metrics.cacheLookups.WithLabelValues(query, hitLabel(hit)).Inc()
	s.writeJSON(w, http.StatusOK, formatter.Wrap(query, entry.result, entry.found, s.now()))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := formatter.BuildJSON(v)
	if err != nil {
		s.logger.Error("encode response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func hitLabel(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
