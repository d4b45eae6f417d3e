package upload

type UploadResponse struct {
	ID              string `json:"id"`
	Filename        string `json:"filename"`
	RecordsInserted int    `json:"records_inserted"`
	RecordsSkipped  int    `json:"records_skipped"`
	RecordsEmpty    int    `json:"records_empty"`
	UploadedAt      string `json:"uploaded_at"`
}

type DeleteUploadResponse struct {
	ID             string `json:"id"`
	PunchesRemoved int64  `json:"punches_removed"`
}
