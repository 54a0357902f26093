// Package formatter renders finder results for people and programs.
//
// This package is organized into:
// - wrapper.go: response envelope (query name, timestamp, found flag)
// - json.go: JSON serialization of the envelope
// - text.go: the console wording of the route finder
package formatter
