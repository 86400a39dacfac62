package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/soundpack-combiner/internal/combine"
	"github.com/handiism/soundpack-combiner/internal/config"
	"github.com/handiism/soundpack-combiner/internal/model"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated
}

func TestModel_ReadyViewListsCatalogue(t *testing.T) {
	m := NewModel(config.DefaultSettings())

	view := m.View()

	assert.Contains(t, view, "Soundpacks (11):")
	assert.Contains(t, view, "CC-Sounds")
	assert.Contains(t, view, "[ ] Dry run")
}

func TestModel_ToggleOptions(t *testing.T) {
	m := NewModel(config.DefaultSettings())

	m = update(t, m, key("c"))
	m = update(t, m, key("n"))
	m = update(t, m, key("v"))

	assert.True(t, m.curated)
	assert.True(t, m.dryRun)
	assert.True(t, m.verbose)
	assert.Contains(t, m.View(), "Custom soundpack (9 files):")
}

func TestModel_VerboseEventsFiltered(t *testing.T) {
	m := NewModel(config.DefaultSettings())

	m = update(t, m, ProgressMsg{Event: combine.ProgressEvent{Message: "  + shoot: a.ogg", Level: combine.LevelVerbose}})
	m = update(t, m, ProgressMsg{Event: combine.ProgressEvent{Message: "Processing Pack...", Level: combine.LevelInfo}})

	require.Len(t, m.logs, 1)
	assert.Equal(t, "Processing Pack...", m.logs[0].Message)
}

func TestModel_LogsAreCapped(t *testing.T) {
	m := NewModel(config.DefaultSettings())

	for i := 0; i < maxLogs+5; i++ {
		m = update(t, m, ProgressMsg{Event: combine.ProgressEvent{Message: "line", Level: combine.LevelInfo}})
	}

	assert.Len(t, m.logs, maxLogs)
}

func TestModel_RunDone(t *testing.T) {
	m := NewModel(config.DefaultSettings())
	m.state = StateRunning

	summary := &combine.Summary{
		Succeeded: 1,
		Failed:    1,
		Results: []*model.JobResult{
			{Soundpack: "Good"},
			{Soundpack: "Missing", Err: combine.ErrSoundpackRootMissing},
		},
	}
	m = update(t, m, RunDoneMsg{Summary: summary})

	assert.Equal(t, StateComplete, m.state)
	view := m.View()
	assert.Contains(t, view, "Successful: 1")
	assert.Contains(t, view, "Missing: soundpack not found")
}

func TestModel_CancelledRunIsError(t *testing.T) {
	m := NewModel(config.DefaultSettings())
	m.state = StateRunning
	m.cancel()

	m = update(t, m, RunDoneMsg{Summary: &combine.Summary{}})

	assert.Equal(t, StateError, m.state)
	assert.EqualError(t, m.err, "cancelled by user")
}

func TestModel_ResetAfterComplete(t *testing.T) {
	m := NewModel(config.DefaultSettings())
	m.state = StateComplete
	m.logs = []LogEntry{{Message: "done"}}

	m = update(t, m, key("r"))

	assert.Equal(t, StateReady, m.state)
	assert.Empty(t, m.logs)
	assert.NoError(t, m.ctx.Err())
}

func TestModel_InvalidSettingsDoNotStart(t *testing.T) {
	settings := config.DefaultSettings()
	settings.OutputFormat = ".ogg"
	m := NewModel(settings)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, StateError, m.state)
	assert.Nil(t, m.manager)
	require.Error(t, m.err)
	assert.Contains(t, m.err.Error(), "output_format")
}
