package graphio

import "errors"

var (
	// ErrEmptyGraph is returned when an input yields no edges.
	ErrEmptyGraph = errors.New("empty graph")

	// ErrMalformedLine is wrapped by every record-level parse failure.
	ErrMalformedLine = errors.New("malformed line")
)
