package progress

import (
	"errors"
	"fmt"
	"math"

	"github.com/templui/nyr/internal/model"
)

// ErrInvalidTarget is returned when a target's value cannot serve as a denominator.
var ErrInvalidTarget = errors.New("invalid target: target value must be a non-zero number")

// TargetProgress is one dashboard row.
type TargetProgress struct {
	TargetID    string
	Name        string
	Percentage  float64
	TargetValue float64
	// Err is set instead of Percentage when the row could not be computed.
	Err error
}

// CurrentValue derives the target's current value from its records.
// Records belonging to other targets are ignored.
func CurrentValue(target *model.Target, records []*model.ProgressRecord) (float64, error) {
	switch target.TargetType {
	case model.TargetTypeCount:
		return countValue(target, records), nil
	case model.TargetTypeValue:
		return maxValue(target, records), nil
	default:
		return 0, fmt.Errorf("%w: unknown target type %q", ErrInvalidTarget, target.TargetType)
	}
}

// countValue counts each record once regardless of its value.
func countValue(target *model.Target, records []*model.ProgressRecord) float64 {
	n := 0
	for _, r := range records {
		if r.TargetID == target.ID {
			n++
		}
	}
	return float64(n)
}

// maxValue returns the highest recorded value, or the start value with no values logged.
func maxValue(target *model.Target, records []*model.ProgressRecord) float64 {
	found := false
	best := 0.0
	for _, r := range records {
		if r.TargetID != target.ID || r.Value == nil {
			continue
		}
		if !found || *r.Value > best {
			best = *r.Value
			found = true
		}
	}
	if !found {
		return target.StartValue
	}
	return best
}

// Percentage returns CurrentValue / TargetValue as an unclamped ratio.
func Percentage(target *model.Target, records []*model.ProgressRecord) (float64, error) {
	if !validDenominator(target.TargetValue) {
		return 0, ErrInvalidTarget
	}

	current, err := CurrentValue(target, records)
	if err != nil {
		return 0, err
	}

	return current / target.TargetValue, nil
}

func validDenominator(v float64) bool {
	return v != 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Batch computes one row per target, in input order. Targets without records
// still get a row; targets that cannot be computed get a row with Err set.
func Batch(targets []*model.Target, records []*model.ProgressRecord) []TargetProgress {
	byTarget := make(map[string][]*model.ProgressRecord, len(targets))
	for _, r := range records {
		byTarget[r.TargetID] = append(byTarget[r.TargetID], r)
	}

	rows := make([]TargetProgress, 0, len(targets))
	for _, t := range targets {
		row := TargetProgress{
			TargetID:    t.ID,
			Name:        t.Name,
			TargetValue: t.TargetValue,
		}
		row.Percentage, row.Err = Percentage(t, byTarget[t.ID])
		rows = append(rows, row)
	}

	return rows
}

// DisplayPercent scales a ratio to the 0-100 display range. It does not clamp.
func DisplayPercent(ratio float64) float64 {
	return ratio * 100
}
