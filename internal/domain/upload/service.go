package upload

import "context"

// UploadService manages upload provenance. Delete is the inverse of an
// ingestion batch: it removes the batch's punches and re-derives every
// employee-day the batch had touched, all in one transaction.
type UploadService interface {
	List(ctx context.Context) ([]UploadResponse, error)
	Get(ctx context.Context, id string) (UploadResponse, error)
	Delete(ctx context.Context, id string) (DeleteUploadResponse, error)
}
