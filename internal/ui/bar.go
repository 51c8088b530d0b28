package ui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// DefaultStep is the percentage points an animated bar advances per tick.
const DefaultStep = 0.5

// BarState is the animated bar's state.
type BarState int

const (
	BarRunning BarState = iota
	BarDone
)

func (s BarState) String() string {
	if s == BarDone {
		return "done"
	}
	return "running"
}

// AnimatedBar advances a displayed ratio toward a goal one fixed step per tick.
//
// The goal is a display percentage supplied once; the bar never re-reads
// storage. The ratio saturates at 100, so a goal above 100 finishes at 100
// and Saturated reports true. A goal at or below 0 starts out done.
type AnimatedBar struct {
	Label      string
	TargetText string

	goal  float64
	step  float64
	ticks int
	ratio float64
	state BarState
}

func NewAnimatedBar(goal, step float64, label, targetText string) *AnimatedBar {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		step = DefaultStep
	}
	if math.IsNaN(goal) {
		goal = 0
	}

	b := &AnimatedBar{
		Label:      label,
		TargetText: targetText,
		goal:       goal,
		step:       step,
	}
	if b.ratio >= b.limit() {
		b.state = BarDone
	}
	return b
}

// limit is the ratio at which the bar is done.
func (b *AnimatedBar) limit() float64 {
	return math.Min(b.goal, 100)
}

// Tick advances the bar by one step. It returns true only on the tick that
// completes the bar; ticks after that are no-ops.
func (b *AnimatedBar) Tick() bool {
	if b.state == BarDone {
		return false
	}

	// ticks*step rather than repeated addition keeps the ratio free of drift.
	b.ticks++
	b.ratio = math.Min(float64(b.ticks)*b.step, 100)

	if b.ratio >= b.limit() {
		b.state = BarDone
		return true
	}
	return false
}

func (b *AnimatedBar) Ratio() float64 { return b.ratio }
func (b *AnimatedBar) Goal() float64 { return b.goal }
func (b *AnimatedBar) Ticks() int { return b.ticks }
func (b *AnimatedBar) State() BarState { return b.state }
func (b *AnimatedBar) Done() bool { return b.state == BarDone }
func (b *AnimatedBar) Saturated() bool { return b.goal > 100 }
func (b *AnimatedBar) Step() float64 { return b.step }

// TicksToDone is the number of ticks a bar needs to reach goal.
func TicksToDone(goal, step float64) int {
	limit := math.Min(goal, 100)
	if limit <= 0 || step <= 0 {
		return 0
	}
	return int(math.Ceil(limit / step))
}

// View renders the label, the bar at its current ratio and the percent text.
func (b *AnimatedBar) View(width int) string {
	bar := newBar(width)

	pct := fmt.Sprintf("%.0f%%", b.ratio)
	if b.Done() && b.Saturated() {
		pct = fmt.Sprintf("100%% %s", overachievedStyle.Render(fmt.Sprintf("(%.0f%% of target)", b.goal)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		barHeader(b.Label, b.TargetText, width),
		lipgloss.JoinHorizontal(lipgloss.Center, bar.ViewAs(b.ratio/100), " ", percentStyle.Render(pct)),
	)
}

func newBar(width int) progress.Model {
	if width <= 0 {
		width = 40
	}
	return progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
}

// clampUnit limits a display percentage to the drawable 0-1 range.
func clampUnit(percent float64) float64 {
	return math.Max(0, math.Min(1, percent/100))
}
