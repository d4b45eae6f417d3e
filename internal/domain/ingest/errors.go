package ingest

import "errors"

// Batch-level failures. Row-level defects are never errors; they only count.
var (
	ErrTooManyRows = errors.New("upload exceeds the row ceiling")
)
