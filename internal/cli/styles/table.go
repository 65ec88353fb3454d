package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/domain/entity"
)

// TableRenderer renders placements and events as bordered tables.
type TableRenderer struct {
	theme *Theme
}

// NewTableRenderer creates a new table renderer with the given theme.
func NewTableRenderer(theme *Theme) *TableRenderer {
	return &TableRenderer{theme: theme}
}

func (r *TableRenderer) newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.theme.Subtitle.Padding(0, 1)
			}
			return r.theme.Normal.Padding(0, 1)
		}).
		Headers(headers...)
}

// RenderPlacements renders the last placement applied to each window.
func (r *TableRenderer) RenderPlacements(placements []port.WindowPlacement) string {
	if len(placements) == 0 {
		return r.theme.Subtle.Render("  No windows placed")
	}

	t := r.newTable("Window", "Class", "State", "Visible", "Rect")
	for _, p := range placements {
		visible := "no"
		if p.Visible {
			visible = "yes"
		}
		t.Row(
			fmt.Sprintf("#%d", p.Window.Handle),
			p.Window.ClassName,
			string(p.State),
			visible,
			formatRect(p.Rect),
		)
	}
	return t.String()
}

// RenderEvents renders published events in order.
func (r *TableRenderer) RenderEvents(events []entity.WmEvent) string {
	if len(events) == 0 {
		return r.theme.Subtle.Render("  No events published")
	}

	t := r.newTable("#", "Event", "Container", "Detail")
	for i, e := range events {
		t.Row(fmt.Sprintf("%d", i+1), string(e.Type), shortID(e.ContainerID), eventDetail(e))
	}
	return t.String()
}

func eventDetail(e entity.WmEvent) string {
	switch e.Type {
	case entity.EventBindingModesChanged:
		names := make([]string, 0, len(e.BindingModes))
		for _, m := range e.BindingModes {
			names = append(names, m.Name)
		}
		if len(names) == 0 {
			return "(none)"
		}
		return strings.Join(names, ", ")
	case entity.EventWindowStateChanged:
		return fmt.Sprintf("#%d %s", e.Handle, e.State)
	case entity.EventTilingDirectionChanged:
		return string(e.TilingDirection)
	case entity.EventWindowManaged, entity.EventWindowUnmanaged:
		return fmt.Sprintf("#%d", e.Handle)
	case entity.EventFocusChanged:
		if e.Container != nil {
			return e.Container.Type
		}
	}
	return ""
}

// shortID keeps the first block of a UUID so tables stay narrow.
func shortID(id entity.ContainerID) string {
	s := string(id)
	if i := strings.IndexByte(s, '-'); i > 0 {
		return s[:i]
	}
	return s
}
