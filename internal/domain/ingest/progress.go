package ingest

// Ingestion phases, in order. The error phase is terminal and only follows a
// batch-level failure.
const (
	PhaseReading   = "reading"
	PhaseParsing   = "parsing"
	PhaseInserting = "inserting"
	PhaseComplete  = "complete"
	PhaseError     = "error"
)

// Progress is one progress report. Percent is monotonic over a batch.
type Progress struct {
	Phase   string `json:"phase"`
	Percent int    `json:"percent"`
	Message string `json:"message"`
	Current int    `json:"current"`
	Total   int    `json:"total"`
}

// ProgressFunc receives incremental progress. It may be called zero times for
// a trivial batch and is never called transactionally: reports can arrive
// from inside an open transaction.
type ProgressFunc func(Progress)
