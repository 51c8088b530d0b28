package service

import (
	"context"

	"github.com/templui/nyr/internal/progress"
	"github.com/templui/nyr/internal/repository"
)

// ProgressService reads targets and records and hands them to the aggregator.
type ProgressService struct {
	targetRepo repository.TargetRepository
	recordRepo repository.ProgressRecordRepository
}

func NewProgressService(targetRepo repository.TargetRepository, recordRepo repository.ProgressRecordRepository) *ProgressService {
	return &ProgressService{
		targetRepo: targetRepo,
		recordRepo: recordRepo,
	}
}

// AllTargetProgress returns one row per target, including targets with no
// records. Rows for targets that cannot be computed carry Err.
func (s *ProgressService) AllTargetProgress(ctx context.Context) ([]progress.TargetProgress, error) {
	targets, err := s.targetRepo.Targets(ctx)
	if err != nil {
		return nil, storageErr("list targets", err)
	}

	records, err := s.recordRepo.Records(ctx)
	if err != nil {
		return nil, storageErr("list progress records", err)
	}

	return progress.Batch(targets, records), nil
}

// TargetProgress computes the percentage for a single target.
func (s *ProgressService) TargetProgress(ctx context.Context, targetID string) (progress.TargetProgress, error) {
	target, err := s.targetRepo.ByID(ctx, targetID)
	if err != nil {
		return progress.TargetProgress{}, storageErr("get target", err)
	}

	records, err := s.recordRepo.RecordsByTarget(ctx, targetID)
	if err != nil {
		return progress.TargetProgress{}, storageErr("list progress records", err)
	}

	pct, err := progress.Percentage(target, records)
	if err != nil {
		return progress.TargetProgress{}, err
	}

	return progress.TargetProgress{
		TargetID:    target.ID,
		Name:        target.Name,
		Percentage:  pct,
		TargetValue: target.TargetValue,
	}, nil
}
