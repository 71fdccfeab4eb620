// ABOUTME: Interactive TUI wizard for editing store settings.
// ABOUTME: 2-step bubbletea model collecting posts per day and cleanup months with inline validation.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/causa-colectivo/borrador/internal/models"
)

// Step represents the current wizard step.
type Step int

const (
	StepPostsPerDay Step = iota
	StepCleanupMonths
	StepDone
)

// SetupModel is the bubbletea model for the settings wizard.
type SetupModel struct {
	step     Step
	inputs   [2]textinput.Model
	inputErr string
	settings models.Settings
	quitting bool
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	brandStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NewSetupModel creates a settings wizard pre-filled with current values.
func NewSetupModel(current models.Settings) SetupModel {
	perDayInput := textinput.New()
	perDayInput.Placeholder = "3"
	perDayInput.Focus()
	perDayInput.Width = 10
	perDayInput.SetValue(strconv.Itoa(current.PostsPerDay))

	monthsInput := textinput.New()
	monthsInput.Placeholder = "4"
	monthsInput.Width = 10
	monthsInput.SetValue(strconv.Itoa(current.CleanupMonths))

	return SetupModel{
		step:     StepPostsPerDay,
		inputs:   [2]textinput.Model{perDayInput, monthsInput},
		settings: current,
	}
}

// Init implements tea.Model.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEscape:
		m.quitting = true
		return m, tea.Quit
	}

	switch m.step {
	case StepPostsPerDay, StepCleanupMonths:
		return m.updateInput(keyMsg)
	}
	return m, nil
}

func (m SetupModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		switch m.step {
		case StepPostsPerDay:
			n, err := ValidatePostsPerDay(m.inputs[0].Value())
			if err != nil {
				m.inputErr = err.Error()
				return m, nil
			}
			m.settings.PostsPerDay = n
			m.inputErr = ""
			m.inputs[0].Blur()
			m.step = StepCleanupMonths
			m.inputs[1].Focus()
			return m, textinput.Blink

		case StepCleanupMonths:
			n, err := ValidateCleanupMonths(m.inputs[1].Value())
			if err != nil {
				m.inputErr = err.Error()
				return m, nil
			}
			m.settings.CleanupMonths = n
			m.inputErr = ""
			m.step = StepDone
			return m, tea.Quit
		}
	}

	// Forward to the active input
	idx := int(m.step)
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m SetupModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(brandStyle.Render("   BORRADOR"))
	b.WriteString(titleStyle.Render(" - Ajustes"))
	b.WriteString("\n\n")
	b.WriteString("Configure the draft store.\n\n")

	switch m.step {
	case StepPostsPerDay:
		b.WriteString(stepStyle.Render("Step 1 of 2: Posts per day"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(fmt.Sprintf("(between %d and %d)", minPostsPerDay, maxPostsPerDay)))
		b.WriteString("\n")
		b.WriteString(m.inputs[0].View())
		b.WriteString("\n")

	case StepCleanupMonths:
		b.WriteString(fmt.Sprintf("  Posts per day: %d\n\n", m.settings.PostsPerDay))
		b.WriteString(stepStyle.Render("Step 2 of 2: Cleanup months"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("(drafts older than this are swept)"))
		b.WriteString("\n")
		b.WriteString(m.inputs[1].View())
		b.WriteString("\n")

	case StepDone:
		b.WriteString(successStyle.Render("✓ Settings updated!"))
		b.WriteString("\n")
	}

	if m.inputErr != "" {
		b.WriteString(errorStyle.Render("✗ " + m.inputErr))
		b.WriteString("\n")
	}

	return b.String()
}

// Result returns the entered settings.
func (m SetupModel) Result() models.Settings {
	return m.settings
}

// ShouldSave returns true if the wizard completed and the user did not
// cancel with Ctrl+C or Escape.
func (m SetupModel) ShouldSave() bool {
	return m.step == StepDone && !m.quitting
}
