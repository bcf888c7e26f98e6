// Package tui is an interactive Bubble Tea front end for a todo store.
//
// It holds no todo state of its own: key presses go out through the bound
// callbacks as actions, and what is drawn comes from props the bindings
// re-derive after every dispatch.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/action"
	"github.com/Makepad-fr/tada/internal/bind"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/state"
	"github.com/Makepad-fr/tada/internal/store"
)

// listItem adapts a todo to bubbles/list.Item
type listItem struct {
	todo *model.Todo
}

func (i listItem) FilterValue() string { return i.todo.Text }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box, text := mutedStyle.Render(boxUnchecked), it.todo.Text
	if it.todo.Completed {
		box, text = successStyle.Render(boxChecked), doneStyle.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, text)
}

type (
	todoListBinding = bind.Binding[state.State, bind.TodoListProps, bind.TodoListCallbacks]
	filterBinding   = bind.Binding[state.State, []bind.FilterLinkProps, bind.FilterCallbacks]
	addBinding      = bind.Binding[state.State, struct{}, bind.AddTodoCallbacks]
)

// Options configure a session.
type Options struct {
	// IDs hands out ids for added todos.
	IDs action.IDSource
	// Filter, when set, overrides the store's visibility filter for the
	// list, the way a route segment would.
	Filter model.Filter
	Logger *log.Logger
}

type modelTUI struct {
	todos   *todoListBinding
	filters *filterBinding
	adder   *addBinding
	logger  *log.Logger

	list list.Model
	keys keyMap
	seen int // todos.Updates() when the list was last rebuilt

	// Inline add
	adding bool            // true when inline add is active
	ti     textinput.Model // text input for new todo titles
	addErr string          // last add validation error (shown briefly)

	width, height int
}

func newModel(s *store.Store[state.State], opts Options) modelTUI {
	mapTodos := bind.VisibleTodoList
	if opts.Filter != "" {
		mapTodos = bind.VisibleTodoListFor(opts.Filter)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := modelTUI{
		todos:   bind.Connect(s, mapTodos, bind.TodoListDispatch),
		filters: bind.Connect(s, bind.FilterLinks, bind.FilterDispatch),
		adder:   bind.Connect(s, func(state.State) struct{} { return struct{}{} }, bind.AddTodoDispatch(opts.IDs)),
		logger:  logger,
		keys:    defaultKeyMap(),
		width:   80,
		height:  24,
	}

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")
	l.AdditionalShortHelpKeys = m.keys.short
	l.AdditionalFullHelpKeys = m.keys.full
	m.list = l

	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "What needs doing?"
	m.ti.CharLimit = 200

	m.sync()
	m.resize()
	return m
}

// Run starts an interactive session on s and blocks until the user quits.
func Run(s *store.Store[state.State], opts Options) error {
	m := newModel(s, opts)
	defer m.close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func (m modelTUI) close() {
	m.todos.Close()
	m.filters.Close()
	m.adder.Close()
}

// sync rebuilds the list items from the latest props.
func (m *modelTUI) sync() tea.Cmd {
	props := m.todos.Props()
	items := make([]list.Item, len(props.Todos))
	for i, t := range props.Todos {
		items[i] = listItem{todo: t}
	}
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), props.Done,
		pendingStyle.Render("•"), props.Open,
		accentStyle.Render("Total"), props.Total,
	)
	m.seen = m.todos.Updates()
	return m.list.SetItems(items)
}

func (m *modelTUI) resize() {
	listHeight := m.height - 5
	if m.adding {
		listHeight -= 4
	}
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(m.width-4, listHeight)
}

func (m modelTUI) Init() tea.Cmd { return nil }

// Update and View implement Bubble Tea's Model on modelTUI
func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	if m.todos.Updates() != m.seen {
		cmd = tea.Batch(cmd, m.sync())
	}
	return m, cmd
}

func (m modelTUI) update(msg tea.Msg) (modelTUI, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		m.resize()
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case keyMsg.String() == "esc" && m.list.FilterState() == list.FilterApplied:
		m.list.ResetFilter()
		return m, nil
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Toggle):
		if it, ok := m.list.SelectedItem().(listItem); ok {
			m.todos.Callbacks().OnTodoClick(it.todo.ID)
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Add):
		m.adding = true
		m.addErr = ""
		m.ti.SetValue("")
		m.resize()
		return m, m.ti.Focus()
	case key.Matches(keyMsg, m.keys.NextFilter):
		m.filters.Callbacks().OnFilterClick(m.nextFilter())
		return m, nil
	case key.Matches(keyMsg, m.keys.ShowAll):
		m.filters.Callbacks().OnFilterClick(model.ShowAll)
		return m, nil
	case key.Matches(keyMsg, m.keys.ShowOpen):
		m.filters.Callbacks().OnFilterClick(model.ShowOpen)
		return m, nil
	case key.Matches(keyMsg, m.keys.ShowDone):
		m.filters.Callbacks().OnFilterClick(model.ShowDone)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m modelTUI) updateAdding(msg tea.Msg) (modelTUI, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "enter":
			title := strings.TrimSpace(m.ti.Value())
			if title == "" {
				m.addErr = "Title cannot be empty"
				return m, nil
			}
			m.adder.Callbacks().OnAdd(title)
			m.logger.Debug("added todo", "text", title)
			m.stopAdding()
			return m, nil
		case "esc":
			m.stopAdding()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *modelTUI) stopAdding() {
	m.adding = false
	m.addErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m modelTUI) nextFilter() model.Filter {
	links := m.filters.Props()
	for i, l := range links {
		if l.Active {
			return links[(i+1)%len(links)].Filter
		}
	}
	return model.ShowAll
}

func (m modelTUI) View() string {
	content := m.list.View() + "\n" + m.filterBar()
	if m.adding {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		title := "Add new todo"
		if m.addErr != "" {
			title += " · " + errorStyle.Render(m.addErr)
		}
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	return panelString(content)
}

// filterBar renders "Show: All Open Done" with the active filter as plain
// text and the others as links.
func (m modelTUI) filterBar() string {
	parts := []string{mutedStyle.Render("Show:")}
	for _, l := range m.filters.Props() {
		label := l.Filter.Label()
		if l.Active {
			parts = append(parts, activeStyle.Render(label))
		} else {
			parts = append(parts, linkStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}
