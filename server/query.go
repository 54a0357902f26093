package server

import (
	"net/http"
	"strings"
)

// QueryError is a malformed request; it is reported as 400.
type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

type errorResponse struct {
	Query string `json:"query"`
	Error string `json:"error"`
}

func parseStations(r *http.Request) (from, to string, err error) {
	q := r.URL.Query()
	from = strings.TrimSpace(q.Get("from"))
	to = strings.TrimSpace(q.Get("to"))
	switch {
	case from == "" && to == "":
		return "", "", &QueryError{Msg: "You must provide from and to stations."}
	case from == "":
		return "", "", &QueryError{Msg: "You must provide a from station."}
	case to == "":
		return "", "", &QueryError{Msg: "You must provide a to station."}
	}
	return from, to, nil
}

func (s *Server) writeError(w http.ResponseWriter, query string, err error) {
	s.metrics.badRequests.WithLabelValues(query).Inc()
	s.writeJSON(w, http.StatusBadRequest, errorResponse{Query: query, Error: err.Error()})
}
