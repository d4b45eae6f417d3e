package upload

import "time"

// Upload records the provenance and outcome counters of one ingestion batch.
// Deleting an upload cascades: its punches are removed and every touched
// employee-day is re-derived from the punches that remain.
type Upload struct {
	ID              string
	Filename        string
	RecordsInserted int
	RecordsSkipped  int
	RecordsEmpty    int
	UploadedAt      time.Time
}
