package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/geraldx2005/attendance-backend-go/internal/domain/upload"
	"github.com/geraldx2005/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type uploadRepository struct {
	db *database.DB
}

// Create implements upload.UploadRepository.
func (u *uploadRepository) Create(ctx context.Context, up upload.Upload) error {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO uploads (id, filename, records_inserted, records_skipped, records_empty, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := q.Exec(ctx, query,
		up.ID, up.Filename, up.RecordsInserted, up.RecordsSkipped, up.RecordsEmpty, up.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create upload: %w", err)
	}
	return nil
}

// UpdateCounters implements upload.UploadRepository.
func (u *uploadRepository) UpdateCounters(ctx context.Context, up upload.Upload) error {
	q := GetQuerier(ctx, u.db)

	query := `
		UPDATE uploads
		SET records_inserted = $1, records_skipped = $2, records_empty = $3
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, up.RecordsInserted, up.RecordsSkipped, up.RecordsEmpty, up.ID)
	if err != nil {
		return fmt.Errorf("failed to update upload counters: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return upload.ErrUploadNotFound
	}
	return nil
}

// GetByID implements upload.UploadRepository.
func (u *uploadRepository) GetByID(ctx context.Context, id string) (upload.Upload, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, filename, records_inserted, records_skipped, records_empty, uploaded_at
		FROM uploads
		WHERE id = $1
	`

	var up upload.Upload
	err := q.QueryRow(ctx, query, id).Scan(
		&up.ID, &up.Filename, &up.RecordsInserted, &up.RecordsSkipped, &up.RecordsEmpty, &up.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return upload.Upload{}, upload.ErrUploadNotFound
		}
		return upload.Upload{}, fmt.Errorf("failed to get upload by id: %w", err)
	}

	return up, nil
}

// List implements upload.UploadRepository.
func (u *uploadRepository) List(ctx context.Context) ([]upload.Upload, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, filename, records_inserted, records_skipped, records_empty, uploaded_at
		FROM uploads
		ORDER BY uploaded_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}
	defer rows.Close()

	var uploads []upload.Upload
	for rows.Next() {
		var up upload.Upload
		err := rows.Scan(&up.ID, &up.Filename, &up.RecordsInserted, &up.RecordsSkipped, &up.RecordsEmpty, &up.UploadedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan upload: %w", err)
		}
		uploads = append(uploads, up)
	}

	return uploads, rows.Err()
}

// Delete implements upload.UploadRepository.
func (u *uploadRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, u.db)

	query := `DELETE FROM uploads WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete upload: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return upload.ErrUploadNotFound
	}

	return nil
}

func NewUploadRepository(db *database.DB) upload.UploadRepository {
	return &uploadRepository{db: db}
}
