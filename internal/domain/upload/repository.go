package upload

import "context"

// UploadRepository defines data access methods for upload batches.
type UploadRepository interface {
	// Create inserts the provenance row for a new batch.
	Create(ctx context.Context, u Upload) error

	// UpdateCounters writes the final inserted/skipped/empty counts.
	UpdateCounters(ctx context.Context, u Upload) error

	// GetByID retrieves one upload. Returns ErrUploadNotFound when absent.
	GetByID(ctx context.Context, id string) (Upload, error)

	// List retrieves all uploads, newest first.
	List(ctx context.Context) ([]Upload, error)

	// Delete removes the provenance row. Returns ErrUploadNotFound when the
	// id does not exist.
	Delete(ctx context.Context, id string) error
}
