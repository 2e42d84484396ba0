package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var errUnexpectedSpinnerModel = errors.New("unexpected final spinner model type")

type applyDoneMsg struct {
	err error
}

type applySpinnerModel struct {
	spinner spinner.Model
	label   string
	apply   tea.Cmd
	err     error
	done    bool
}

func newApplySpinnerModel(label string, apply tea.Cmd) applySpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return applySpinnerModel{
		spinner: s,
		label:   label,
		apply:   apply,
	}
}

func (m applySpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.apply)
}

func (m applySpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case applyDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m applySpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

func runApplySpinner(ctx context.Context, output io.Writer, label string, apply func() error) error {
	applyCmd := func() tea.Msg {
		return applyDoneMsg{err: apply()}
	}

	p := tea.NewProgram(
		newApplySpinnerModel(label, applyCmd),
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(output),
	)

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run apply spinner: %w", err)
	}

	m, ok := finalModel.(applySpinnerModel)
	if !ok {
		return errUnexpectedSpinnerModel
	}

	return m.err
}
