package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/nyr/internal/model"
)

var (
	// ErrNotFound is wrapped by every lookup miss.
	ErrNotFound       = errors.New("not found")
	ErrTargetNotFound = fmt.Errorf("target %w", ErrNotFound)
)

type TargetRepository interface {
	Create(ctx context.Context, target *model.Target) error
	ByID(ctx context.Context, id string) (*model.Target, error)
	Targets(ctx context.Context) ([]*model.Target, error)
	Delete(ctx context.Context, id string) error
}

type targetRepository struct {
	db *sqlx.DB
}

func NewTargetRepository(db *sqlx.DB) TargetRepository {
	return &targetRepository{db: db}
}

func (r *targetRepository) Create(ctx context.Context, target *model.Target) error {
	query := `INSERT INTO targets (id, name, target_date, status, start_value, target_value, target_type, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		target.ID,
		target.Name,
		target.TargetDate,
		target.Status,
		target.StartValue,
		target.TargetValue,
		target.TargetType,
		target.CreatedAt,
	)

	return err
}

func (r *targetRepository) ByID(ctx context.Context, id string) (*model.Target, error) {
	target := &model.Target{}
	query := `SELECT * FROM targets WHERE id = $1`

	err := r.db.GetContext(ctx, target, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTargetNotFound
	}
	if err != nil {
		return nil, err
	}

	return target, nil
}

// Targets returns every target, oldest first.
func (r *targetRepository) Targets(ctx context.Context) ([]*model.Target, error) {
	var targets []*model.Target
	query := `SELECT * FROM targets ORDER BY created_at ASC, id ASC`

	err := r.db.SelectContext(ctx, &targets, query)
	if err != nil {
		return nil, err
	}

	return targets, nil
}

// Delete removes the target; its records go with it via ON DELETE CASCADE.
func (r *targetRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM targets WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTargetNotFound
	}

	return nil
}
