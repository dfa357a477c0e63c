package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"awsomemath/internal/volume"
)

// VolumeModel is the volume calculator screen: a shape selector plus one
// text input per dimension of the active shape.
type VolumeModel struct {
	state      volume.State
	theme      Theme
	inputs     map[string]textinput.Model
	focus      int
	standalone bool
}

// NewVolumeModel builds a volume calculator showing shape, or the default
// shape when shape is empty or unknown.
func NewVolumeModel(theme Theme, shape string, standalone bool) *VolumeModel {
	m := &VolumeModel{
		state:      volume.NewState(),
		theme:      theme,
		inputs:     make(map[string]textinput.Model),
		standalone: standalone,
	}
	if shape != "" {
		_ = m.state.ChangeShape(shape)
	}
	m.syncInputs()
	return m
}

// State exposes the current volume state.
func (m *VolumeModel) State() volume.State {
	return m.state
}

// Init implements tea.Model.
func (m *VolumeModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *VolumeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	case "tab":
		return m, m.cycleShape(1)
	case "shift+tab":
		return m, m.cycleShape(-1)
	case "down", "enter":
		return m, m.moveFocus(1)
	case "up":
		return m, m.moveFocus(-1)
	case "ctrl+r":
		m.state.Clear()
		m.focus = 0
		return m, m.syncInputs()
	}

	if keyMsg.Type == tea.KeyRunes && !numeric(keyMsg.Runes) {
		return m, nil
	}
	return m.updateFocused(msg)
}

func (m *VolumeModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	name, ok := m.focusedName()
	if !ok {
		return m, nil
	}
	input := m.inputs[name]
	before := input.Value()

	var cmd tea.Cmd
	input, cmd = input.Update(msg)
	m.inputs[name] = input

	if input.Value() != before {
		// Validation failures already show as 0.
		_ = m.state.ChangeDimension(name, input.Value())
	}
	return m, cmd
}

func numeric(runes []rune) bool {
	for _, r := range runes {
		if !strings.ContainsRune("0123456789.-+eE", r) {
			return false
		}
	}
	return true
}

func (m *VolumeModel) activeShape() volume.Shape {
	shape, err := volume.Lookup(m.state.Shape)
	if err != nil {
		shape, _ = volume.Lookup(volume.DefaultShape)
	}
	return shape
}

func (m *VolumeModel) focusedName() (string, bool) {
	dims := m.activeShape().Dimensions
	if m.focus < 0 || m.focus >= len(dims) {
		return "", false
	}
	return dims[m.focus], true
}

func (m *VolumeModel) cycleShape(step int) tea.Cmd {
	names := volume.Names()
	idx := 0
	for i, n := range names {
		if n == m.state.Shape {
			idx = i
			break
		}
	}
	next := names[(idx+step+len(names))%len(names)]
	_ = m.state.ChangeShape(next)
	m.focus = 0
	return m.syncInputs()
}

func (m *VolumeModel) moveFocus(step int) tea.Cmd {
	n := len(m.activeShape().Dimensions)
	if n == 0 {
		return nil
	}
	m.focus = (m.focus + step + n) % n
	return m.refocus()
}

// syncInputs rebuilds the inputs of the active shape from the state.
func (m *VolumeModel) syncInputs() tea.Cmd {
	for _, name := range m.activeShape().Dimensions {
		input, ok := m.inputs[name]
		if !ok {
			input = textinput.New()
			input.Prompt = ""
			input.CharLimit = 16
			input.Width = 12
		}
		input.SetValue(m.state.Dimensions[name])
		m.inputs[name] = input
	}
	return m.refocus()
}

func (m *VolumeModel) refocus() tea.Cmd {
	var cmd tea.Cmd
	for i, name := range m.activeShape().Dimensions {
		input := m.inputs[name]
		if i == m.focus {
			cmd = input.Focus()
		} else {
			input.Blur()
		}
		m.inputs[name] = input
	}
	return cmd
}

// View implements tea.Model.
func (m *VolumeModel) View() string {
	width := m.theme.displayWidth()
	d := m.state.Display()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Volumes"))
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(d.Image))
	b.WriteString("\n")

	screen := historyStyle.Render(alignRight(d.Formula, width)) + "\n" +
		m.theme.resultStyle().Render(alignRight(d.Result, width))
	b.WriteString(panelStyle.Render(screen))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("shape"))
	for _, name := range volume.Names() {
		if name == d.Shape {
			b.WriteString(selectStyle.Render(fmt.Sprintf("[%s]", name)))
		} else {
			b.WriteString(helpStyle.Render(fmt.Sprintf(" %s ", name)))
		}
	}
	b.WriteString("\n")

	for _, f := range d.Fields {
		b.WriteString(labelStyle.Render(f.Name))
		b.WriteString(m.inputs[f.Name].View())
		b.WriteString("\n")
	}

	help := "tab shape · ↑/↓ field · ctrl+r clear"
	if m.standalone {
		help += " · esc quit"
	} else {
		help += " · esc back"
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}
