package formatter

import (
	"encoding/json"
)

// BuildJSON serializes v to indented JSON.
func BuildJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
