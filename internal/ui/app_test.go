package ui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/nyr/internal/progress"
)

var fixedNow = time.Date(2025, 6, 15, 14, 30, 5, 0, time.UTC)

func testOptions() Options {
	return Options{
		Title:         "Resolutions 2025",
		Step:          0.5,
		AnimationTick: time.Millisecond,
		ClockTick:     time.Millisecond,
		BarWidth:      20,
		ExitOnDone:    true,
		Now:           func() time.Time { return fixedNow },
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(animationTickMsg(fixedNow))
	return next.(Model), cmd
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m := NewDashboardModel(nil, testOptions())
		next, cmd := m.Update(key)

		assert.True(t, next.(Model).Quitting(), key.String())
		assert.True(t, isQuit(cmd), key.String())
	}
}

func TestModel_OtherKeysIgnored(t *testing.T) {
	m := NewDashboardModel(nil, testOptions())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	assert.False(t, next.(Model).Quitting())
	assert.Nil(t, cmd)
}

func TestModel_AnimatedExitsWhenDone(t *testing.T) {
	m := NewAnimatedModel([]BarSpec{{Goal: 45, Label: "Books", TargetText: "12"}}, testOptions())

	var cmd tea.Cmd
	for i := 0; i < 89; i++ {
		m, cmd = tick(t, m)
		require.NotNil(t, cmd)
		_, isTick := cmd().(animationTickMsg)
		require.True(t, isTick, "tick %d", i+1)
	}

	m, cmd = tick(t, m)
	assert.True(t, m.Finished())
	assert.True(t, isQuit(cmd))
	assert.Equal(t, 45.0, m.bars[0].Ratio())
}

func TestModel_OneBarDoneDoesNotExit(t *testing.T) {
	m := NewAnimatedModel([]BarSpec{
		{Goal: 1, Label: "short"},
		{Goal: 3, Label: "long"},
	}, testOptions())

	m, cmd := tick(t, m)
	m, cmd = tick(t, m)
	assert.True(t, m.bars[0].Done())
	assert.False(t, m.Finished())
	_, isTick := cmd().(animationTickMsg)
	assert.True(t, isTick)

	for i := 0; i < 3; i++ {
		m, cmd = tick(t, m)
		assert.False(t, m.Finished())
	}
	m, cmd = tick(t, m)
	assert.True(t, m.Finished())
	assert.True(t, isQuit(cmd))
}

func TestModel_HoldsWhenExitOnDoneDisabled(t *testing.T) {
	opts := testOptions()
	opts.ExitOnDone = false
	m := NewAnimatedModel([]BarSpec{{Goal: 0.5}}, opts)

	m, cmd := tick(t, m)
	assert.True(t, m.Finished())
	assert.Nil(t, cmd)
	assert.False(t, m.Quitting())
}

func TestModel_InitQuitsWhenNothingToAnimate(t *testing.T) {
	m := NewAnimatedModel([]BarSpec{{Goal: 0}}, testOptions())
	assert.True(t, isQuit(m.Init()))
}

func TestModel_ClockTickKeepsTicking(t *testing.T) {
	m := NewDashboardModel(nil, testOptions())

	next, cmd := m.Update(clockTickMsg(fixedNow))
	require.NotNil(t, cmd)
	_, ok := cmd().(clockTickMsg)
	assert.True(t, ok)
	assert.Contains(t, next.View(), "14:30:05")
}

func TestModel_ViewRendersRows(t *testing.T) {
	rows := []progress.TargetProgress{
		{TargetID: "a", Name: "Books", Percentage: 5.0 / 12.0, TargetValue: 12},
		{TargetID: "b", Name: "Squat", Percentage: 0.4, TargetValue: 100},
		{TargetID: "c", Name: "Broken", TargetValue: 0, Err: progress.ErrInvalidTarget},
	}
	m := NewDashboardModel(rows, testOptions())
	view := m.View()

	assert.Contains(t, view, "Resolutions 2025")
	assert.Contains(t, view, "Books")
	assert.Contains(t, view, "42%")
	assert.Contains(t, view, "Squat")
	assert.Contains(t, view, "40%")
	assert.Contains(t, view, "invalid target")
	assert.Contains(t, view, quitHint)
}

func TestStaticBar(t *testing.T) {
	out := StaticBar(60, "Pushups", "50", 20)
	assert.Contains(t, out, "Pushups")
	assert.Contains(t, out, "50")
	assert.Contains(t, out, "60%")

	over := StaticBar(250, "Run", "10", 20)
	assert.Contains(t, over, "250%")
}

func TestRenderDashboard_Empty(t *testing.T) {
	assert.Contains(t, RenderDashboard("Title", nil, 20), "No targets yet")
}

func TestTargetText(t *testing.T) {
	assert.Equal(t, "12", TargetText(12))
	assert.Equal(t, "2.5", TargetText(2.5))
}

func TestRunDashboard_NonInteractive(t *testing.T) {
	var buf bytes.Buffer
	opts := testOptions()
	opts.Output = &buf

	err := RunDashboard(context.Background(), []progress.TargetProgress{
		{TargetID: "a", Name: "Books", Percentage: 0.25, TargetValue: 12},
	}, opts)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Books")
	assert.Contains(t, buf.String(), "25%")
	assert.NotContains(t, buf.String(), quitHint)
}

func TestRunAnimated_NonInteractive(t *testing.T) {
	var buf bytes.Buffer
	opts := testOptions()
	opts.Output = &buf

	err := RunAnimated(context.Background(), []BarSpec{{Goal: 45, Label: "Books", TargetText: "12"}}, opts)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "45%")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRunDashboard_WriteError(t *testing.T) {
	opts := testOptions()
	opts.Output = failingWriter{}

	assert.Error(t, RunDashboard(context.Background(), nil, opts))
}

func TestInterrupted(t *testing.T) {
	assert.True(t, interrupted(tea.ErrProgramKilled))
	assert.True(t, interrupted(fmt.Errorf("%w: %w", tea.ErrProgramKilled, context.Canceled)))
	assert.False(t, interrupted(errors.New("terminal gone")))
	assert.False(t, interrupted(nil))
}
