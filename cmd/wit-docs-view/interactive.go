package main

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/witdoc"
	"github.com/wippyai/witdoc/render"
	"github.com/wippyai/witdoc/section"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	worldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browserModel struct {
	err      error
	tree     *witdoc.Tree
	filename string
	worlds   []string
	viewport viewport.Model
	width    int
	height   int
	selected int
	state    modelState
}

type modelState int

const (
	stateSelectWorld modelState = iota
	stateShowWorld
)

func newBrowserModel(filename string) *browserModel {
	return &browserModel{
		filename: filename,
		state:    stateSelectWorld,
		width:    80,
		height:   24,
	}
}

type docsLoadedMsg struct {
	err  error
	tree *witdoc.Tree
}

func (m *browserModel) Init() tea.Cmd {
	return m.loadDocs
}

func (m *browserModel) loadDocs() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return docsLoadedMsg{err: err}
	}

	tree, ok, err := section.Extract(data)
	if err != nil {
		return docsLoadedMsg{err: err}
	}
	if !ok || tree == nil || tree.Empty() {
		return docsLoadedMsg{err: fmt.Errorf("no %s section found in %s", section.Name, m.filename)}
	}

	return docsLoadedMsg{tree: tree}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectWorld && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectWorld && m.selected < len(m.worlds)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateSelectWorld && len(m.worlds) > 0 {
				m.openWorld(m.worlds[m.selected])
				m.state = stateShowWorld
			}

		case "esc":
			if m.state == stateShowWorld {
				m.state = stateSelectWorld
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == stateShowWorld {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 4
		}

	case docsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.tree = msg.tree
		m.worlds = m.worlds[:0]
		for name := range m.tree.Worlds {
			m.worlds = append(m.worlds, name)
		}
		sort.Strings(m.worlds)
	}

	if m.state == stateShowWorld {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// openWorld fills the viewport with the rendered docs of a single world.
func (m *browserModel) openWorld(name string) {
	sub := &witdoc.Tree{
		Worlds: map[string]*witdoc.WorldDocs{name: m.tree.Worlds[name]},
	}

	var buf bytes.Buffer
	if err := render.Pretty(&buf, sub, render.Options{}); err != nil {
		buf.Reset()
		buf.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", err)))
	}

	m.viewport = viewport.New(m.width, m.height-4)
	m.viewport.SetContent(buf.String())
}

func (m *browserModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.tree == nil {
		return "Loading documentation..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("WIT Docs"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectWorld:
		b.WriteString("Select a world:\n\n")
		for i, name := range m.worlds {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + m.formatWorld(name)))
			} else {
				b.WriteString(cursor + m.formatWorld(name))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter open • q quit"))

	case stateShowWorld:
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • esc back • q quit"))
	}

	return b.String()
}

func (m *browserModel) formatWorld(name string) string {
	w := m.tree.Worlds[name]
	if w == nil {
		return worldStyle.Render(name)
	}
	exportFuncs := w.FuncExports
	if exportFuncs == nil {
		exportFuncs = w.Functions
	}
	exports := len(exportFuncs)
	imports := len(w.FuncImports)
	return worldStyle.Render(name) + " " +
		countStyle.Render(fmt.Sprintf("(%d exported, %d imported)", exports, imports))
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newBrowserModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
