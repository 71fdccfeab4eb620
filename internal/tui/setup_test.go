// ABOUTME: Unit tests for the settings TUI wizard bubbletea model.
// ABOUTME: Uses synthetic tea.Msg values to test state machine transitions.
package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/causa-colectivo/borrador/internal/models"
)

func TestNewSetupModel_PrefillsCurrentSettings(t *testing.T) {
	m := NewSetupModel(models.Settings{PostsPerDay: 2, CleanupMonths: 6})
	if m.step != StepPostsPerDay {
		t.Errorf("expected initial step StepPostsPerDay, got %d", m.step)
	}
	if m.inputs[0].Value() != "2" {
		t.Errorf("expected pre-filled posts per day, got %q", m.inputs[0].Value())
	}
	if m.inputs[1].Value() != "6" {
		t.Errorf("expected pre-filled cleanup months, got %q", m.inputs[1].Value())
	}
}

func TestSetupModel_StepTransitions(t *testing.T) {
	m := NewSetupModel(models.DefaultSettings())

	m.inputs[0].SetValue("5")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(SetupModel)
	if m.step != StepCleanupMonths {
		t.Errorf("expected StepCleanupMonths after Enter on posts per day, got %d", m.step)
	}

	m.inputs[1].SetValue("12")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(SetupModel)
	if m.step != StepDone {
		t.Errorf("expected StepDone after Enter on cleanup months, got %d", m.step)
	}
	if cmd == nil {
		t.Error("expected tea.Quit cmd when wizard completes")
	}

	got := m.Result()
	if got.PostsPerDay != 5 || got.CleanupMonths != 12 {
		t.Errorf("unexpected result: %+v", got)
	}
	if !m.ShouldSave() {
		t.Error("expected ShouldSave() after completion")
	}
}

func TestSetupModel_InvalidInputStaysOnStep(t *testing.T) {
	m := NewSetupModel(models.DefaultSettings())

	m.inputs[0].SetValue("9")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(SetupModel)
	if m.step != StepPostsPerDay {
		t.Errorf("expected to stay on StepPostsPerDay for out-of-range value, got %d", m.step)
	}
	if m.inputErr == "" {
		t.Error("expected validation error message")
	}
	if !strings.Contains(m.View(), m.inputErr) {
		t.Error("expected validation error in view")
	}

	// A corrected value clears the error and advances.
	m.inputs[0].SetValue("3")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(SetupModel)
	if m.step != StepCleanupMonths {
		t.Errorf("expected StepCleanupMonths after corrected value, got %d", m.step)
	}
	if m.inputErr != "" {
		t.Errorf("expected cleared error, got %q", m.inputErr)
	}
}

func TestSetupModel_EscapeCancels(t *testing.T) {
	m := NewSetupModel(models.DefaultSettings())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = updated.(SetupModel)
	if cmd == nil {
		t.Error("expected tea.Quit cmd on escape")
	}
	if m.ShouldSave() {
		t.Error("expected ShouldSave() to be false after cancel")
	}
}

func TestSetupModel_ViewShowsSteps(t *testing.T) {
	m := NewSetupModel(models.DefaultSettings())

	view := m.View()
	if !strings.Contains(view, "Step 1 of 2") {
		t.Errorf("expected step 1 marker in view, got: %s", view)
	}

	m.inputs[0].SetValue("3")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(SetupModel)
	view = m.View()
	if !strings.Contains(view, "Step 2 of 2") {
		t.Errorf("expected step 2 marker in view, got: %s", view)
	}

	m.inputs[1].SetValue("4")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(SetupModel)
	if !strings.Contains(m.View(), "Settings updated") {
		t.Errorf("expected completion message, got: %s", m.View())
	}
}
