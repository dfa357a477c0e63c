package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"awsomemath/internal/pages"
)

// StartModel is the start menu. It hosts one calculator at a time; esc in a
// calculator comes back here.
type StartModel struct {
	pages  []pages.Page
	cursor int
	theme  Theme
	shape  string
	active tea.Model
}

// NewStartModel builds the menu. shape preselects the volume calculator's shape.
func NewStartModel(theme Theme, shape string) *StartModel {
	return &StartModel{
		pages: pages.Catalog(),
		theme: theme,
		shape: shape,
	}
}

// Init implements tea.Model.
func (m *StartModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *StartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if m.active != nil {
		if isKey && keyMsg.String() == "esc" {
			m.active = nil
			return m, nil
		}
		var cmd tea.Cmd
		m.active, cmd = m.active.Update(msg)
		return m, cmd
	}

	if !isKey {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.pages)-1 {
			m.cursor++
		}
	case "enter":
		return m, m.open(m.pages[m.cursor].Path)
	}
	return m, nil
}

func (m *StartModel) open(path string) tea.Cmd {
	switch path {
	case pages.CalculatorPath:
		m.active = NewCalculatorModel(m.theme, false)
	case pages.VolumesPath:
		m.active = NewVolumeModel(m.theme, m.shape, false)
	default:
		return nil
	}
	return m.active.Init()
}

// View implements tea.Model.
func (m *StartModel) View() string {
	if m.active != nil {
		return m.active.View()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(pages.Welcome))
	b.WriteString("\n\n")
	for i, p := range m.pages {
		marker := "  "
		title := p.Title
		if i == m.cursor {
			marker = "> "
			title = selectStyle.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s%s\n", marker, title))
		b.WriteString(helpStyle.Render("    " + p.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ choose · enter open · q quit"))
	return b.String()
}
