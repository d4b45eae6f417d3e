package ingest

import (
	"github.com/geraldx2005/attendance-backend-go/internal/pkg/tabular"
)

// IngestRequest carries one already-parsed tabular dataset into the pipeline.
// The pipeline does not care whether the rows came from CSV text or a
// spreadsheet; that conversion is the row source's job.
type IngestRequest struct {
	Filename string
	Rows     []tabular.Row
	// Source tags the punches; defaults to manual-upload when empty.
	// Biometric device exports pass "biometric".
	Source   string
	Progress ProgressFunc
}

// IngestSummary reports the outcome counters of one batch. Row-level defects
// surface only here, never as a per-row error list.
type IngestSummary struct {
	UploadID        string `json:"upload_id"`
	Filename        string `json:"filename"`
	RecordsInserted int    `json:"records_inserted"`
	RecordsSkipped  int    `json:"records_skipped"`
	RecordsEmpty    int    `json:"records_empty"`
	DaysTouched     int    `json:"days_touched"`
}
