package formatter

import (
	"fmt"
	"time"
)

// Formats accepted by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Response wraps one query result.
type Response struct {
	Query             string `json:"query"`
	ResponseTimestamp string `json:"response_timestamp"`
	Found             bool   `json:"found"`
	Result            any    `json:"result"`
}

// Wrap creates a response envelope stamped with now in UTC.
func Wrap(query string, result any, found bool, now time.Time) *Response {
	return &Response{
		Query:             query,
		ResponseTimestamp: now.UTC().Format(time.RFC3339),
		Found:             found,
		Result:            result,
	}
}

// Render returns the JSON envelope for FormatJSON and text otherwise, with a
// trailing newline.
func Render(format string, res *Response, text string) ([]byte, error) {
	if format != FormatJSON {
		return []byte(text + "\n"), nil
	}
	b, err := BuildJSON(res)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", res.Query, err)
	}
	return append(b, '\n'), nil
}
