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

// TargetInput carries the create-target options. Nil pointers take defaults:
// type count, start value 0, target date Dec 31 of the current year.
type TargetInput struct {
	Name        string
	TargetType  *string
	TargetDate  *time.Time
	StartValue  *float64
	TargetValue float64
}

type targetCheck struct {
	TargetType  string   `label:"target type" validate:"required,oneof=count value"`
	StartValue  *float64 `label:"start value" validate:"omitempty,finite"`
	TargetValue float64  `label:"target value" validate:"finite,ne=0"`
}

type TargetService struct {
	repo repository.TargetRepository
	now  func() time.Time
}

func NewTargetService(repo repository.TargetRepository) *TargetService {
	return &TargetService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *TargetService) Create(ctx context.Context, in TargetInput) (*model.Target, error) {
	typeTag := string(model.TargetTypeCount)
	if in.TargetType != nil {
		typeTag = strings.ToLower(strings.TrimSpace(*in.TargetType))
	}

	err := validation.ValidateName(in.Name)
	if err != nil {
		return nil, err
	}

	err = validation.Struct(targetCheck{
		TargetType:  typeTag,
		StartValue:  in.StartValue,
		TargetValue: in.TargetValue,
	})
	if err != nil {
		return nil, err
	}

	targetType, err := model.ParseTargetType(typeTag)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	target := &model.Target{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		TargetDate:  model.EndOfYear(now),
		Status:      model.TargetStatusActive,
		TargetValue: in.TargetValue,
		TargetType:  targetType,
		CreatedAt:   now,
	}
	if in.TargetDate != nil {
		target.TargetDate = model.Today(*in.TargetDate)
	}
	if in.StartValue != nil {
		target.StartValue = *in.StartValue
	}

	err = s.repo.Create(ctx, target)
	if err != nil {
		return nil, storageErr("create target", err)
	}

	slog.Info("target created", "id", target.ID, "type", target.TargetType, "target_value", target.TargetValue)
	return target, nil
}

func (s *TargetService) ByID(ctx context.Context, id string) (*model.Target, error) {
	target, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, storageErr("get target", err)
	}
	return target, nil
}

func (s *TargetService) Targets(ctx context.Context) ([]*model.Target, error) {
	targets, err := s.repo.Targets(ctx)
	if err != nil {
		return nil, storageErr("list targets", err)
	}
	return targets, nil
}

// Delete removes the target and, through the schema, its records.
func (s *TargetService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		return storageErr("delete target", err)
	}

	slog.Info("target deleted", "id", id)
	return nil
}
