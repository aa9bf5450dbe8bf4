package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/yousci/yousci-cli/internal/apperr"
)

// BrowserItem is one dataset row shown in the explore browser. Detail is the
// prediction text shown for the highlighted row.
type BrowserItem struct {
	System  string
	Summary string
	Detail  string
}

// systemItem represents a system in the list
type systemItem struct {
	BrowserItem
	selected bool
}

func (i systemItem) Title() string {
	checkbox := Dim.Render("[ ] ")
	if i.selected {
		checkbox = Success.Render("[✓] ")
	}
	return checkbox + i.System
}

func (i systemItem) Description() string { return Dim.Render(i.Summary) }

func (i systemItem) FilterValue() string { return i.System }

// browserModel is the Bubble Tea model for the dataset browser
type browserModel struct {
	list      list.Model
	items     []systemItem
	quitting  bool
	confirmed bool
	width     int
	height    int
}

func newBrowser(items []BrowserItem) *browserModel {
	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(ColorHighlight).
		BorderForeground(ColorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(ColorTextDim).
		BorderForeground(ColorPrimary)

	m := &browserModel{width: 80, height: 24}
	m.items = make([]systemItem, len(items))
	for i, it := range items {
		m.items[i] = systemItem{BrowserItem: it}
	}

	l := list.New(m.listItems(), delegate, 0, 0)
	l.Title = "Catalyst Systems"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 0, 1, 0)
	m.list = l
	return m
}

func (m *browserModel) listItems() []list.Item {
	out := make([]list.Item, len(m.items))
	for i, it := range m.items {
		out[i] = it
	}
	return out
}

// Init initializes the model
func (m *browserModel) Init() tea.Cmd { return nil }

// Update handles messages
func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		case "s", "space":
			if i, ok := m.list.SelectedItem().(systemItem); ok {
				m.toggle(i.System)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width/2, msg.Height-4)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *browserModel) toggle(system string) {
	for i := range m.items {
		if m.items[i].System == system {
			m.items[i].selected = !m.items[i].selected
			m.list.SetItems(m.listItems())
			return
		}
	}
}

// View renders the list with the detail pane of the highlighted row
func (m *browserModel) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}
	return tea.NewView(m.render())
}

func (m *browserModel) render() string {
	detail := Dim.Render("no system highlighted")
	if i, ok := m.list.SelectedItem().(systemItem); ok {
		detail = i.Detail
	}
	pane := Box.Render(detail)

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), "  ", pane))
	b.WriteString("\n\n")
	if n := len(m.Selected()); n > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", Success.Render("Selected:"), Highlight.Render(fmt.Sprintf("%d system(s)", n))))
	}
	b.WriteString(Dim.Render("s/space: select · ↑/↓: navigate · /: filter · enter: confirm · esc: cancel"))
	return b.String()
}

// Selected returns the toggled systems in list order.
func (m *browserModel) Selected() []string {
	var out []string
	for _, it := range m.items {
		if it.selected {
			out = append(out, it.System)
		}
	}
	return out
}

// result falls back to the highlighted system when nothing was toggled.
func (m *browserModel) result() []string {
	if sel := m.Selected(); len(sel) > 0 {
		return sel
	}
	if i, ok := m.list.SelectedItem().(systemItem); ok {
		return []string{i.System}
	}
	return nil
}

// RunBrowser runs the interactive dataset browser and returns the chosen
// system identifiers.
func RunBrowser(items []BrowserItem) ([]string, error) {
	p := tea.NewProgram(newBrowser(items))
	m, err := p.Run()
	if err != nil {
		return nil, err
	}

	model := m.(*browserModel)
	if !model.confirmed {
		return nil, apperr.ErrCancelled
	}
	return model.result(), nil
}
