package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/nyr/internal/model"
	"github.com/templui/nyr/internal/repository"
	"github.com/templui/nyr/internal/testutil"
)

type services struct {
	targets  *TargetService
	records  *RecordService
	progress *ProgressService
	rawRepo  repository.TargetRepository
}

func newServices(t *testing.T) services {
	t.Helper()
	database := testutil.NewDB(t)
	targetRepo := repository.NewTargetRepository(database)
	recordRepo := repository.NewProgressRecordRepository(database)

	fixed := func() time.Time { return time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC) }
	targets := NewTargetService(targetRepo)
	targets.now = fixed
	records := NewRecordService(recordRepo, targetRepo)
	records.now = fixed

	return services{
		targets:  targets,
		records:  records,
		progress: NewProgressService(targetRepo, recordRepo),
		rawRepo:  targetRepo,
	}
}

func TestTargetService_CreateDefaults(t *testing.T) {
	s := newServices(t)

	target, err := s.targets.Create(context.Background(), TargetInput{Name: "  Read books ", TargetValue: 12})
	require.NoError(t, err)

	assert.Equal(t, "Read books", target.Name)
	assert.Equal(t, model.TargetTypeCount, target.TargetType)
	assert.Equal(t, model.TargetStatusActive, target.Status)
	assert.Equal(t, 0.0, target.StartValue)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), target.TargetDate)
	assert.NotEmpty(t, target.ID)
}

func TestTargetService_CreateValidation(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	_, err := s.targets.Create(ctx, TargetInput{Name: "Zero", TargetValue: 0})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.targets.Create(ctx, TargetInput{Name: "", TargetValue: 5})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.targets.Create(ctx, TargetInput{Name: "Streak", TargetType: testutil.Ptr("streak"), TargetValue: 5})
	assert.ErrorIs(t, err, ErrValidation)

	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err = s.targets.Create(ctx, TargetInput{Name: "Endless", TargetValue: v})
		assert.ErrorIs(t, err, ErrValidation, "target value %v", v)
		assert.NotErrorIs(t, err, ErrStorage, "target value %v", v)

		_, err = s.targets.Create(ctx, TargetInput{Name: "Endless", StartValue: testutil.Ptr(v), TargetValue: 5})
		assert.ErrorIs(t, err, ErrValidation, "start value %v", v)
	}

	targets, err := s.targets.Targets(ctx)
	require.NoError(t, err)
	assert.Empty(t, targets)

	target, err := s.targets.Create(ctx, TargetInput{Name: "Weight", TargetType: testutil.Ptr("VALUE"), TargetValue: 5})
	require.NoError(t, err)
	assert.Equal(t, model.TargetTypeValue, target.TargetType)
}

func TestTargetService_DeleteMissing(t *testing.T) {
	s := newServices(t)

	err := s.targets.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordService_AppendDefaultsEntryDate(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	target, err := s.targets.Create(ctx, TargetInput{Name: "Books", TargetValue: 12})
	require.NoError(t, err)

	record, err := s.records.Append(ctx, RecordInput{TargetID: target.ID, ItemName: testutil.Ptr("Dune")})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), record.EntryDate)
	assert.Equal(t, target.ID, record.TargetID)

	explicit := time.Date(2025, 2, 3, 18, 0, 0, 0, time.UTC)
	record, err = s.records.Append(ctx, RecordInput{TargetID: target.ID, ItemName: testutil.Ptr("Emma"), EntryDate: &explicit})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC), record.EntryDate)
}

func TestRecordService_AppendValidation(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	books, err := s.targets.Create(ctx, TargetInput{Name: "Books", TargetValue: 12})
	require.NoError(t, err)
	run, err := s.targets.Create(ctx, TargetInput{Name: "Run", TargetType: testutil.Ptr("value"), TargetValue: 42})
	require.NoError(t, err)

	_, err = s.records.Append(ctx, RecordInput{TargetID: books.ID, Value: testutil.Ptr(1.0)})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.records.Append(ctx, RecordInput{TargetID: books.ID, ItemName: testutil.Ptr("  ")})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.records.Append(ctx, RecordInput{TargetID: run.ID, ItemName: testutil.Ptr("morning")})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.records.Append(ctx, RecordInput{TargetID: run.ID, Value: testutil.Ptr(math.NaN())})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.records.Append(ctx, RecordInput{TargetID: run.ID, Value: testutil.Ptr(math.Inf(1))})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.records.Append(ctx, RecordInput{TargetID: "missing", Value: testutil.Ptr(1.0)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProgressService_CountScenario(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	target, err := s.targets.Create(ctx, TargetInput{Name: "Books", TargetValue: 12})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := s.records.Append(ctx, RecordInput{TargetID: target.ID, ItemName: testutil.Ptr("book"), Value: testutil.Ptr(float64(i * 100))})
		require.NoError(t, err)
	}

	got, err := s.progress.TargetProgress(ctx, target.ID)
	require.NoError(t, err)
	assert.InDelta(t, 5.0/12.0, got.Percentage, 1e-12)
	assert.Equal(t, "Books", got.Name)
}

func TestProgressService_ValueScenario(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	target, err := s.targets.Create(ctx, TargetInput{Name: "Pushups", TargetType: testutil.Ptr("value"), TargetValue: 50})
	require.NoError(t, err)
	for _, v := range []float64{10, 30, 20} {
		_, err := s.records.Append(ctx, RecordInput{TargetID: target.ID, Value: testutil.Ptr(v)})
		require.NoError(t, err)
	}

	got, err := s.progress.TargetProgress(ctx, target.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, got.Percentage, 1e-12)
}

func TestProgressService_InvalidTarget(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	// Rows written before validation existed can still hold a zero denominator.
	legacy := &model.Target{
		ID:          uuid.New().String(),
		Name:        "Legacy",
		TargetDate:  time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		Status:      model.TargetStatusActive,
		TargetType:  model.TargetTypeCount,
		TargetValue: 0,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, s.rawRepo.Create(ctx, legacy))

	_, err := s.progress.TargetProgress(ctx, legacy.ID)
	assert.ErrorIs(t, err, ErrInvalidTarget)

	rows, err := s.progress.AllTargetProgress(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.ErrorIs(t, rows[0].Err, ErrInvalidTarget)
}

func TestProgressService_TargetProgressMissing(t *testing.T) {
	s := newServices(t)

	_, err := s.progress.TargetProgress(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProgressService_DashboardIncludesEmptyTargets(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	books, err := s.targets.Create(ctx, TargetInput{Name: "Books", TargetValue: 10})
	require.NoError(t, err)
	weight, err := s.targets.Create(ctx, TargetInput{Name: "Squat", TargetType: testutil.Ptr("value"), StartValue: testutil.Ptr(40.0), TargetValue: 100})
	require.NoError(t, err)

	_, err = s.records.Append(ctx, RecordInput{TargetID: books.ID, ItemName: testutil.Ptr("Dune")})
	require.NoError(t, err)

	rows, err := s.progress.AllTargetProgress(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := map[string]float64{}
	for _, row := range rows {
		require.NoError(t, row.Err)
		byID[row.TargetID] = row.Percentage
	}
	assert.InDelta(t, 0.1, byID[books.ID], 1e-12)
	assert.InDelta(t, 0.4, byID[weight.ID], 1e-12)
}
