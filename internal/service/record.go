package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/templui/nyr/internal/model"
	"github.com/templui/nyr/internal/repository"
	"github.com/templui/nyr/internal/validation"
)

// RecordInput carries a new progress entry. EntryDate defaults to today.
type RecordInput struct {
	TargetID  string
	EntryDate *time.Time
	Value     *float64
	ItemName  *string
}

// recordCheck ties the required field to the owning target's type.
type recordCheck struct {
	TargetType string   `label:"target type"`
	ItemName   *string  `label:"item name" validate:"required_if=TargetType count"`
	Value      *float64 `label:"value" validate:"required_if=TargetType value"`
}

type RecordService struct {
	repo       repository.ProgressRecordRepository
	targetRepo repository.TargetRepository
	now        func() time.Time
}

func NewRecordService(repo repository.ProgressRecordRepository, targetRepo repository.TargetRepository) *RecordService {
	return &RecordService{
		repo:       repo,
		targetRepo: targetRepo,
		now:        time.Now,
	}
}

// Append logs a progress entry against an existing target. Count targets
// need an item name and value targets need a value.
func (s *RecordService) Append(ctx context.Context, in RecordInput) (*model.ProgressRecord, error) {
	target, err := s.targetRepo.ByID(ctx, in.TargetID)
	if err != nil {
		return nil, storageErr("get target", err)
	}

	itemName := in.ItemName
	if itemName != nil && strings.TrimSpace(*itemName) == "" {
		itemName = nil
	}

	err = validation.Struct(recordCheck{
		TargetType: string(target.TargetType),
		ItemName:   itemName,
		Value:      in.Value,
	})
	if err != nil {
		return nil, err
	}
	if in.Value != nil {
		err = validation.Finite("value", *in.Value)
		if err != nil {
			return nil, err
		}
	}

	now := s.now().UTC()
	record := &model.ProgressRecord{
		ID:        uuid.New().String(),
		TargetID:  target.ID,
		EntryDate: model.Today(now),
		Value:     in.Value,
		ItemName:  itemName,
		CreatedAt: now,
	}
	if in.EntryDate != nil {
		record.EntryDate = model.Today(*in.EntryDate)
	}

	err = s.repo.Create(ctx, record)
	if err != nil {
		return nil, storageErr("create progress record", err)
	}

	slog.Info("progress record created", "id", record.ID, "target_id", record.TargetID)
	return record, nil
}

func (s *RecordService) Records(ctx context.Context) ([]*model.ProgressRecord, error) {
	records, err := s.repo.Records(ctx)
	if err != nil {
		return nil, storageErr("list progress records", err)
	}
	return records, nil
}

func (s *RecordService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		return storageErr("delete progress record", err)
	}

	slog.Info("progress record deleted", "id", id)
	return nil
}
