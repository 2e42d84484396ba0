package grid

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/confsched/slotgrid/internal/domain"
	"github.com/confsched/slotgrid/internal/schedule"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	project domain.Project
	report  schedule.Report
	opts    RenderOptions
	styles  styles
	output  string
}

func newModel(project domain.Project, report schedule.Report, opts RenderOptions) model {
	return model{
		project: project,
		report:  report,
		opts:    opts,
		styles:  newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.project, m.report, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render produces the console view through a one-shot bubbletea
// program that quits after the first update.
func Render(project domain.Project, report schedule.Report, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(project, report, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
