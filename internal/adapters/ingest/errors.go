package ingest

import "errors"

// Sentinel kinds for ingestion errors.
var (
	ErrReadSource = errors.New("read source failed")
	ErrBadField   = errors.New("bad field value")
)
