package ingest

import "context"

// IngestService runs upload batches through the pipeline: validate and
// normalize rows, write punches, rebuild the daily cache for touched days.
// One transaction per batch; a malformed row never aborts the batch.
type IngestService interface {
	Ingest(ctx context.Context, req IngestRequest) (IngestSummary, error)
}
