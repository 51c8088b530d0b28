package model

import (
	"fmt"
	"strings"
	"time"
)

// TargetStatusActive is the status every new target starts with.
const TargetStatusActive = "active"

// TargetType selects how a target's current value is derived from its records.
type TargetType string

const (
	// TargetTypeCount counts logged records.
	TargetTypeCount TargetType = "count"
	// TargetTypeValue takes the highest logged value.
	TargetTypeValue TargetType = "value"
)

// TargetTypes lists every known variant.
var TargetTypes = []TargetType{TargetTypeCount, TargetTypeValue}

// TargetTypeTags joins the known type tags with sep.
func TargetTypeTags(sep string) string {
	tags := make([]string, len(TargetTypes))
	for i, t := range TargetTypes {
		tags[i] = string(t)
	}
	return strings.Join(tags, sep)
}

// ParseTargetType accepts a type tag in any case.
func ParseTargetType(s string) (TargetType, error) {
	t := TargetType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown target type %q (want %s)", s, TargetTypeTags(" or "))
	}
	return t, nil
}

func (t TargetType) Valid() bool {
	switch t {
	case TargetTypeCount, TargetTypeValue:
		return true
	}
	return false
}

func (t TargetType) String() string {
	return string(t)
}

type Target struct {
	ID          string     `db:"id"`
	Name        string     `db:"name"`
	TargetDate  time.Time  `db:"target_date"`
	Status      string     `db:"status"`
	StartValue  float64    `db:"start_value"`
	TargetValue float64    `db:"target_value"`
	TargetType  TargetType `db:"target_type"`
	CreatedAt   time.Time  `db:"created_at"`
}

// EndOfYear returns Dec 31 of the year containing t, the default target date.
func EndOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
}
