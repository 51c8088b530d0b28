package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/templui/nyr/internal/progress"
)

const quitHint = `Press "q" to quit.`

// Options configures the render loop.
type Options struct {
	Title         string
	Step          float64
	AnimationTick time.Duration
	ClockTick     time.Duration
	BarWidth      int
	// ExitOnDone ends an animated view once every bar is done.
	ExitOnDone bool
	Output     io.Writer
	Now        func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Step <= 0 {
		o.Step = DefaultStep
	}
	if o.AnimationTick <= 0 {
		o.AnimationTick = 100 * time.Millisecond
	}
	if o.ClockTick <= 0 {
		o.ClockTick = time.Second
	}
	if o.BarWidth <= 0 {
		o.BarWidth = 40
	}
	if o.Output == nil {
		o.Output = os.Stdout
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// BarSpec describes one animated bar.
type BarSpec struct {
	Goal       float64 // display percentage, 0-100 for an on-track target
	Label      string
	TargetText string
}

type clockTickMsg time.Time

type animationTickMsg time.Time

// Model is the single state owned by the render loop. View is a pure
// function of it.
type Model struct {
	opts Options

	rows     []progress.TargetProgress
	bars     []*AnimatedBar
	animated bool

	now      time.Time
	done     int
	quitting bool
	width    int
	height   int
}

// NewDashboardModel shows static bars for rows until the user quits.
func NewDashboardModel(rows []progress.TargetProgress, opts Options) Model {
	opts = opts.withDefaults()
	return Model{
		opts: opts,
		rows: rows,
		now:  opts.Now(),
	}
}

// NewAnimatedModel animates one bar per spec.
func NewAnimatedModel(specs []BarSpec, opts Options) Model {
	opts = opts.withDefaults()
	m := Model{
		opts:     opts,
		now:      opts.Now(),
		animated: true,
	}
	for _, s := range specs {
		b := NewAnimatedBar(s.Goal, opts.Step, s.Label, s.TargetText)
		if b.Done() {
			m.done++
		}
		m.bars = append(m.bars, b)
	}
	return m
}

func (m Model) clockTick() tea.Cmd {
	return tea.Tick(m.opts.ClockTick, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func (m Model) animationTick() tea.Cmd {
	return tea.Tick(m.opts.AnimationTick, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}

// animating reports whether any bar still needs ticks.
func (m Model) animating() bool {
	return m.done < len(m.bars)
}

// finished is the aggregate completion condition: every bar is done.
func (m Model) finished() bool {
	return len(m.bars) > 0 && !m.animating()
}

func (m Model) Init() tea.Cmd {
	if m.finished() && m.opts.ExitOnDone {
		return tea.Quit
	}

	cmds := []tea.Cmd{m.clockTick()}
	if m.animating() {
		cmds = append(cmds, m.animationTick())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case clockTickMsg:
		m.now = m.opts.Now()
		return m, m.clockTick()

	case animationTickMsg:
		for _, b := range m.bars {
			if b.Tick() {
				m.done++
				slog.Debug("bar done", "label", b.Label, "ticks", b.Ticks(), "saturated", b.Saturated())
			}
		}
		if !m.animating() {
			if m.opts.ExitOnDone {
				return m, tea.Quit
			}
			return m, nil
		}
		return m, m.animationTick()
	}

	return m, nil
}

func (m Model) View() string {
	var panel string
	if m.animated {
		panel = RenderAnimated(m.opts.Title, m.bars, m.opts.BarWidth)
	} else {
		panel = RenderDashboard(m.opts.Title, m.rows, m.opts.BarWidth)
	}

	hint := quitHint
	if m.quitting {
		hint = ""
	}
	return Frame(panel, m.now, hint, m.width, m.height)
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool { return m.quitting }

// Finished reports whether every animated bar is done.
func (m Model) Finished() bool { return m.finished() }

// Interactive reports whether w is a terminal the render loop can drive.
func Interactive(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// RunDashboard shows rows until the user quits. Without a terminal it
// prints a single frame.
func RunDashboard(ctx context.Context, rows []progress.TargetProgress, opts Options) error {
	m := NewDashboardModel(rows, opts)
	if !Interactive(m.opts.Output) {
		_, err := fmt.Fprintln(m.opts.Output, Frame(RenderDashboard(m.opts.Title, rows, m.opts.BarWidth), time.Time{}, "", 0, 0))
		return err
	}
	return run(ctx, m)
}

// RunAnimated animates the bars toward their goals. It returns when the
// user quits or, with ExitOnDone, when every bar is done. Without a
// terminal it prints the completed frame.
func RunAnimated(ctx context.Context, specs []BarSpec, opts Options) error {
	m := NewAnimatedModel(specs, opts)
	if !Interactive(m.opts.Output) {
		for m.animating() {
			for _, b := range m.bars {
				if b.Tick() {
					m.done++
				}
			}
		}
		_, err := fmt.Fprintln(m.opts.Output, Frame(RenderAnimated(m.opts.Title, m.bars, m.opts.BarWidth), time.Time{}, "", 0, 0))
		return err
	}
	return run(ctx, m)
}

func run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithOutput(m.opts.Output),
	)

	final, err := p.Run()
	if interrupted(err) {
		slog.Debug("render loop interrupted", "error", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("render loop failed: %w", err)
	}

	if fm, ok := final.(Model); ok {
		slog.Debug("render loop exited", "quit", fm.Quitting(), "finished", fm.Finished())
	}
	return nil
}

// interrupted reports whether the loop stopped because its context was
// cancelled, as on SIGINT. That counts as a quit.
func interrupted(err error) bool {
	return errors.Is(err, tea.ErrProgramKilled)
}
