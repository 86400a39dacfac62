// Package tui provides a Bubble Tea terminal user interface for soundpack-combiner.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/soundpack-combiner/internal/combine"
	"github.com/handiism/soundpack-combiner/internal/config"
	"github.com/handiism/soundpack-combiner/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	packStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// maxLogs is how many progress lines stay on screen.
const maxLogs = 10

// State represents the current UI state.
type State int

const (
	StateReady State = iota
	StateRunning
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   combine.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	spinner  spinner.Model
	progress progress.Model
	settings *config.Settings
	packs    []model.Soundpack
	logs     []LogEntry
	summary  *combine.Summary
	err      error

	ctx    context.Context
	cancel context.CancelFunc

	manager *combine.Manager
	events  chan combine.ProgressEvent

	processed int32
	total     int32

	// Options
	curated bool
	dryRun  bool
	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model for the given settings.
func NewModel(settings *config.Settings) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:    StateReady,
		spinner:  sp,
		progress: prog,
		settings: settings,
		packs:    settings.Catalogue(),
		logs:     make([]LogEntry, 0),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Message types
type (
	// ProgressMsg carries a progress event from the running manager.
	ProgressMsg struct {
		Event combine.ProgressEvent
	}

	// RunDoneMsg is sent when the run finishes.
	RunDoneMsg struct {
		Summary *combine.Summary
		Err     error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateReady {
				return m, tea.Quit
			}
			if m.state == StateRunning {
				m.cancel()
			}

		case "enter":
			if m.state == StateReady {
				if err := m.settings.Validate(); err != nil {
					m.state = StateError
					m.err = fmt.Errorf("invalid settings: %w", err)
					break
				}
				m.state = StateRunning
				m.events = make(chan combine.ProgressEvent, 64)
				m.manager = combine.NewManager(m.settings, m.forward(m.ctx, m.events), combine.WithDryRun(m.dryRun))
				cmds = append(cmds, m.startRun(), m.waitForEvent(), m.tickProgress(), m.spinner.Tick)
			}

		case "c":
			if m.state == StateReady {
				m.curated = !m.curated
			}

		case "n":
			if m.state == StateReady {
				m.dryRun = !m.dryRun
			}

		case "v":
			if m.state == StateReady {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m.state = StateReady
				m.logs = nil
				m.summary = nil
				m.err = nil
				m.processed = 0
				m.total = 0
				m.manager = nil
				m.events = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		if m.events != nil {
			cmds = append(cmds, m.waitForEvent())
		}
		if msg.Event.Level == combine.LevelVerbose && !m.verbose {
			break
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		if len(m.logs) > maxLogs {
			m.logs = m.logs[len(m.logs)-maxLogs:]
		}

	case RunDoneMsg:
		m.summary = msg.Summary
		if m.manager != nil {
			m.processed, m.total = m.manager.GetProgress()
		}
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateRunning {
			m.processed, m.total = m.manager.GetProgress()

			var percent float64
			if m.total > 0 {
				percent = float64(m.processed) / float64(m.total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// forward returns a progress callback that hands events to the UI until
// ctx is done.
func (m Model) forward(ctx context.Context, events chan<- combine.ProgressEvent) func(combine.ProgressEvent) {
	return func(event combine.ProgressEvent) {
		select {
		case events <- event:
		case <-ctx.Done():
		}
	}
}

// waitForEvent returns a command that delivers the next progress event.
func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return ProgressMsg{Event: event}
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// startRun runs the catalogue (or the curated list) in the background.
func (m Model) startRun() tea.Cmd {
	ctx, manager, events := m.ctx, m.manager, m.events
	settings, curated := m.settings, m.curated
	packs := m.packs

	return func() tea.Msg {
		defer close(events)

		if curated {
			result := manager.RunCurated(ctx, settings.CustomFiles, settings.CustomOutputName)
			summary := &combine.Summary{Results: []*model.JobResult{result}}
			if result.Success() {
				summary.Succeeded = 1
			} else {
				summary.Failed = 1
			}
			return RunDoneMsg{Summary: summary}
		}

		summary, err := manager.Run(ctx, packs)
		return RunDoneMsg{Summary: summary, Err: err}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🔊 Soundpack Combiner"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Combine soundpack samples into one track"))
	b.WriteString("\n\n")

	switch m.state {
	case StateReady:
		b.WriteString(m.viewReady())
	case StateRunning:
		b.WriteString(m.viewRunning())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewReady() string {
	var b strings.Builder

	if m.curated {
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("Custom soundpack (%d files):", len(m.settings.CustomFiles))))
		b.WriteString("\n")
		for _, file := range m.settings.CustomFiles {
			b.WriteString(packStyle.Render(fmt.Sprintf("  ♪ %s", file)))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("Soundpacks (%d):", len(m.packs))))
		b.WriteString("\n")
		for _, pack := range m.packs {
			b.WriteString(packStyle.Render(fmt.Sprintf("  ♪ %s", pack.Name)))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Custom soundpack (c)\n", checkbox(m.curated)))
	b.WriteString(fmt.Sprintf("  %s Dry run, resolve only (n)\n", checkbox(m.dryRun)))
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", checkbox(m.verbose)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output directory: %s", m.settings.OutputDir)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewRunning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Combining..."))
	b.WriteString("\n\n")

	var percent float64
	if m.total > 0 {
		percent = float64(m.processed) / float64(m.total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Soundpacks: %d/%d", m.processed, m.total)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	var succeeded, failed int
	if m.summary != nil {
		succeeded, failed = m.summary.Succeeded, m.summary.Failed
	}

	box := boxStyle.Render(fmt.Sprintf(
		"✨ Done!\n\n"+
			"Successful: %d\n"+
			"Failed: %d\n"+
			"Output: %s",
		succeeded,
		failed,
		m.settings.OutputDir,
	))
	b.WriteString(box)
	b.WriteString("\n\n")

	if m.summary != nil {
		for _, result := range m.summary.Results {
			if result.Success() {
				continue
			}
			b.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s: %v", result.Soundpack, result.Err)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case combine.LevelError:
			style = errorStyle
			prefix = "✗"
		case combine.LevelWarning:
			style = warningStyle
			prefix = "!"
		case combine.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case combine.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateReady:
		return "enter: start • c: custom • n: dry run • v: verbose • esc: quit"
	case StateRunning:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: run again • q: quit"
	}
	return ""
}

func checkbox(checked bool) string {
	if checked {
		return "[×]"
	}
	return "[ ]"
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
