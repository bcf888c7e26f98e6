package cli

import (
	"fmt"
	"strings"

	"github.com/Makepad-fr/tada/internal/bind"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/ui"
)

// -------------- rendering helpers --------------

func renderList(props bind.TodoListProps, links []bind.FilterLinkProps, group bool) []string {
	t := ui.Current()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Todos"),
		ui.C(t.Success, t.SymDone), props.Done,
		ui.C(t.Pending, t.SymOpen), props.Open,
		ui.C(t.Accent, "Total"), props.Total,
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(t.Muted, ui.ProgressBar(props.Done, props.Total, 28)))
	lines = append(lines, "")

	if group {
		lines = append(lines, groupLines(props.Todos)...)
	} else {
		lines = append(lines, flatLines(props.Todos)...)
	}
	lines = append(lines, "")
	lines = append(lines, filterLine(links))
	return lines
}

// filterLine renders "Show: [All] Open Done"; the active filter is the
// bracketed one.
func filterLine(links []bind.FilterLinkProps) string {
	t := ui.Current()
	parts := []string{ui.C(t.Muted, "Show:")}
	for _, l := range links {
		if l.Active {
			parts = append(parts, ui.C(t.Title, "["+l.Filter.Label()+"]"))
		} else {
			parts = append(parts, ui.C(t.Accent, l.Filter.Label()))
		}
	}
	return strings.Join(parts, " ")
}

// routeLinks marks the routed filter active; the store's filter does not
// decide what is shown when a route is given.
func routeLinks(route model.Filter) []bind.FilterLinkProps {
	fs := model.Filters()
	out := make([]bind.FilterLinkProps, len(fs))
	for i, f := range fs {
		out[i] = bind.FilterLinkProps{Filter: f, Active: f == route}
	}
	return out
}

func flatLines(todos []*model.Todo) []string {
	t := ui.Current()
	if len(todos) == 0 {
		return []string{ui.C(t.Muted, "no todos")}
	}
	out := make([]string, 0, len(todos))
	for _, it := range todos {
		idx := fmt.Sprintf("#%-3d", it.ID)
		box, color, text := t.BoxUnchecked, t.Muted, it.Text
		if it.Completed {
			box, color = t.BoxChecked, t.Success
		}
		if len([]rune(text)) > 80 {
			text = string([]rune(text)[:77]) + "..."
		}
		if it.Completed {
			text = ui.C(ui.Strike(), text)
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			ui.C(ui.Dim(), idx), ui.C(color, box), text))
	}
	return out
}

func groupLines(todos []*model.Todo) []string {
	var open, done []*model.Todo
	for _, it := range todos {
		if it.Completed {
			done = append(done, it)
		} else {
			open = append(open, it)
		}
	}
	t := ui.Current()
	var lines []string
	lines = append(lines, ui.C(t.Accent, "Open"))
	if len(open) == 0 {
		lines = append(lines, ui.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(open)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Accent, "Done"))
	if len(done) == 0 {
		lines = append(lines, ui.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
