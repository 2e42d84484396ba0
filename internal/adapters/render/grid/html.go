package grid

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/confsched/slotgrid/internal/domain"
)

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Conference grid</title>
<style>
table { border-collapse: collapse; }
th, td { border: 1px solid #999; padding: 6px 10px; vertical-align: top; }
td.over-capacity { background: #f8d7da; }
td.track-collision { background: #fff3cd; }
td.empty { background: #f5f5f5; color: #999; }
</style>
</head>
<body>
<h1>Conference grid</h1>
<table>
<tr><th>Slot</th>{{range .Rooms}}<th>{{.Name}} ({{.Capacity}})</th>{{end}}</tr>
{{range .Rows}}<tr><th>{{.Slot}}</th>{{range .Cells}}{{if .Empty}}<td class="empty">&mdash;</td>{{else}}<td class="{{.Class}}" title="{{.Note}}">{{.Label}}</td>{{end}}{{end}}</tr>
{{end}}</table>
{{if .Unscheduled}}<h2>Unscheduled</h2><ul>{{range .Unscheduled}}<li>{{.}}</li>{{end}}</ul>{{end}}
</body>
</html>
`

type htmlRoom struct {
	Name     string
	Capacity int
}

type htmlCell struct {
	Empty bool
	Label string
	Class string
	Note  string
}

type htmlRow struct {
	Slot  string
	Cells []htmlCell
}

type htmlData struct {
	Rooms       []htmlRoom
	Rows        []htmlRow
	Unscheduled []string
}

// WriteHTML renders the slot-by-room table, highlighting cells whose
// session exceeds the room capacity and slots where two sessions
// share a track.
func WriteHTML(w io.Writer, project domain.Project) error {
	tmpl, err := template.New("grid").Parse(htmlTemplate)
	if err != nil {
		return fmt.Errorf("parse grid template: %w", err)
	}

	data := htmlData{}
	for _, room := range project.Rooms {
		data.Rooms = append(data.Rooms, htmlRoom{Name: string(room.Name), Capacity: room.Capacity})
	}

	for _, slot := range project.Slots {
		row := htmlRow{Slot: string(slot.Name)}
		occupants := slotSessions(project, slot.Name)
		for _, room := range project.Rooms {
			row.Cells = append(row.Cells, buildCell(room, occupants))
		}
		data.Rows = append(data.Rows, row)
	}

	for _, session := range project.Sessions {
		if !session.Placed() {
			data.Unscheduled = append(data.Unscheduled, sessionLabel(*session))
		}
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render grid template: %w", err)
	}
	return nil
}

func buildCell(room domain.Room, occupants []*domain.Session) htmlCell {
	var session *domain.Session
	for _, s := range occupants {
		if s.Room != nil && *s.Room == room.Name {
			session = s
			break
		}
	}
	if session == nil {
		return htmlCell{Empty: true}
	}

	cell := htmlCell{Label: sessionLabel(*session)}
	var notes []string

	if session.Capacity > room.Capacity {
		cell.Class = "over-capacity"
		notes = append(notes, fmt.Sprintf("needs %d seats, room has %d", session.Capacity, room.Capacity))
	}

	for _, other := range occupants {
		if other.ID == session.ID {
			continue
		}
		if session.SharesTrack(*other) {
			if cell.Class == "" {
				cell.Class = "track-collision"
			}
			notes = append(notes, fmt.Sprintf("same track as session %d in this slot", other.ID))
		}
	}

	cell.Note = strings.Join(notes, "; ")
	return cell
}

func slotSessions(project domain.Project, slot domain.SlotID) []*domain.Session {
	var sessions []*domain.Session
	for _, s := range project.Sessions {
		if s.Slot != nil && *s.Slot == slot {
			sessions = append(sessions, s)
		}
	}
	return sessions
}
