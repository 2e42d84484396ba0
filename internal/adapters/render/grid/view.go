package grid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/confsched/slotgrid/internal/domain"
	"github.com/confsched/slotgrid/internal/schedule"
)

type View string

const (
	ViewSlot    View = "slot"
	ViewRoom    View = "room"
	ViewSession View = "session"
)

func ParseView(value string) (View, error) {
	switch View(value) {
	case ViewSlot, ViewRoom, ViewSession:
		return View(value), nil
	}
	return "", fmt.Errorf("unknown view %q (want slot, room, or session)", value)
}

type RenderOptions struct {
	View View
	Seed string
}

func renderView(project domain.Project, report schedule.Report, opts RenderOptions, s styles) string {
	var body string
	switch opts.View {
	case ViewRoom:
		body = renderByRoom(project, s)
	case ViewSession:
		body = renderBySession(project, s)
	default:
		body = renderBySlot(project, s)
	}

	lines := []string{
		s.title.Render("Conference grid"),
		s.header.Render(fmt.Sprintf("sessions: %d  rooms: %d  slots: %d", len(project.Sessions), len(project.Rooms), len(project.Slots))),
		body,
	}

	if footer := renderFooter(project, report, opts, s); footer != "" {
		lines = append(lines, s.section.Render(footer))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderBySlot(project domain.Project, s styles) string {
	var sections []string
	for _, slot := range project.Slots {
		header := s.slot.Render(string(slot.Name)) + " " + s.meta.Render(slotTimes(slot))

		var lines []string
		for _, session := range project.Sessions {
			if session.Slot == nil || *session.Slot != slot.Name {
				continue
			}
			room := "?"
			if session.Room != nil {
				room = string(*session.Room)
			}
			lines = append(lines, s.session.Render(fmt.Sprintf("  %-12s %s", room, sessionLabel(*session))))
		}
		if len(lines) == 0 {
			lines = append(lines, s.empty.Render("  (empty)"))
		}

		sections = append(sections, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, lines...)...)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderByRoom(project domain.Project, s styles) string {
	var sections []string
	for _, room := range project.Rooms {
		header := s.room.Render(string(room.Name)) + " " + s.meta.Render(fmt.Sprintf("(capacity %d)", room.Capacity))

		var lines []string
		for _, slot := range project.Slots {
			for _, session := range project.Sessions {
				if session.Room == nil || *session.Room != room.Name {
					continue
				}
				if session.Slot == nil || *session.Slot != slot.Name {
					continue
				}
				line := fmt.Sprintf("  %-12s %s", slot.Name, sessionLabel(*session))
				if session.Capacity > room.Capacity {
					line += " " + s.warning.Render("[over capacity]")
				}
				lines = append(lines, s.session.Render(line))
			}
		}
		if len(lines) == 0 {
			lines = append(lines, s.empty.Render("  (empty)"))
		}

		sections = append(sections, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, lines...)...)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderBySession(project domain.Project, s styles) string {
	var lines []string
	for _, session := range project.Sessions {
		placement := s.warning.Render("unscheduled")
		if session.Placed() {
			placement = s.meta.Render(fmt.Sprintf("%s / %s", *session.Room, *session.Slot))
		}
		lines = append(lines, s.session.Render(fmt.Sprintf("  %s ", sessionLabel(*session)))+placement)
	}
	if len(lines) == 0 {
		return s.empty.Render("No sessions.")
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderFooter(project domain.Project, report schedule.Report, opts RenderOptions, s styles) string {
	var lines []string

	if opts.Seed != "" {
		lines = append(lines, s.meta.Render(fmt.Sprintf("seed: %s", opts.Seed)))
	}

	for _, result := range report.Results {
		if result.Placed && result.Relaxed() {
			lines = append(lines, s.relaxation.Render(fmt.Sprintf(
				"relaxed: session %d (%s) placed after %s",
				result.SessionID, result.Title, strings.Join(result.Steps, " > "),
			)))
		}
	}

	unscheduled := unscheduledSessions(project, report)
	for _, label := range unscheduled {
		lines = append(lines, s.warning.Render("unscheduled: "+label))
	}

	if len(lines) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// unscheduledSessions lists every session without a placement, from
// the project itself rather than the run report, so nothing can fall
// through unlisted.
func unscheduledSessions(project domain.Project, report schedule.Report) []string {
	var labels []string
	for _, session := range project.Sessions {
		if session.Placed() {
			continue
		}
		label := sessionLabel(*session)
		if result, ok := report.Result(session.ID); ok && len(result.Steps) > 0 {
			label += fmt.Sprintf(" (tried %s)", strings.Join(result.Steps, " > "))
		}
		labels = append(labels, label)
	}
	return labels
}

func sessionLabel(session domain.Session) string {
	label := fmt.Sprintf("#%d %s", session.ID, session.Title)
	if len(session.Tracks) > 0 {
		label += fmt.Sprintf(" [%s]", strings.Join(session.Tracks, ", "))
	}
	return label
}

func slotTimes(slot domain.Slot) string {
	if slot.Start.IsZero() {
		return fmt.Sprintf("(%d min)", slot.Duration)
	}
	return fmt.Sprintf("%s-%s (%d min)", slot.Start.Format("15:04"), slot.End.Format("15:04"), slot.Duration)
}
