package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/nyr/internal/model"
)

var (
	ErrRecordNotFound = fmt.Errorf("progress record %w", ErrNotFound)
)

type ProgressRecordRepository interface {
	Create(ctx context.Context, record *model.ProgressRecord) error
	Records(ctx context.Context) ([]*model.ProgressRecord, error)
	RecordsByTarget(ctx context.Context, targetID string) ([]*model.ProgressRecord, error)
	Delete(ctx context.Context, id string) error
}

type progressRecordRepository struct {
	db *sqlx.DB
}

func NewProgressRecordRepository(db *sqlx.DB) ProgressRecordRepository {
	return &progressRecordRepository{db: db}
}

func (r *progressRecordRepository) Create(ctx context.Context, record *model.ProgressRecord) error {
	query := `INSERT INTO progress_records (id, target_id, entry_date, value, item_name, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.TargetID,
		record.EntryDate,
		record.Value,
		record.ItemName,
		record.CreatedAt,
	)

	return err
}

func (r *progressRecordRepository) Records(ctx context.Context) ([]*model.ProgressRecord, error) {
	var records []*model.ProgressRecord
	query := `SELECT * FROM progress_records ORDER BY entry_date ASC, created_at ASC`

	err := r.db.SelectContext(ctx, &records, query)
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *progressRecordRepository) RecordsByTarget(ctx context.Context, targetID string) ([]*model.ProgressRecord, error) {
	var records []*model.ProgressRecord
	query := `SELECT * FROM progress_records WHERE target_id = $1 ORDER BY entry_date ASC, created_at ASC`

	err := r.db.SelectContext(ctx, &records, query, targetID)
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *progressRecordRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM progress_records WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrRecordNotFound
	}

	return nil
}
