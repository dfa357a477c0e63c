package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"awsomemath/internal/calculator"
)

// CalculatorModel is the integer calculator screen.
type CalculatorModel struct {
	state      calculator.State
	theme      Theme
	notice     string
	standalone bool
}

// NewCalculatorModel builds a cleared calculator. A standalone model quits on
// esc; an embedded one leaves esc to its parent.
func NewCalculatorModel(theme Theme, standalone bool) *CalculatorModel {
	return &CalculatorModel{
		state:      calculator.NewState(),
		theme:      theme,
		standalone: standalone,
	}
}

// State exposes the current calculator tuple.
func (m *CalculatorModel) State() calculator.State {
	return m.state
}

// Init implements tea.Model.
func (m *CalculatorModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q":
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	k, ok := calculatorKey(key)
	if !ok {
		return m, nil
	}

	m.notice = ""
	if err := m.state.Apply(k); err != nil {
		if errors.Is(err, calculator.ErrDivisionByZero) {
			m.notice = "cannot divide by zero"
		}
	}
	return m, nil
}

// calculatorKey maps a terminal key to a calculator button.
func calculatorKey(key string) (calculator.Key, bool) {
	switch key {
	case "=", "enter":
		return calculator.KeyEquals, true
	case "c", "C", "delete":
		return calculator.KeyClear, true
	}
	if k := calculator.Key(key); k.IsDigit() {
		return k, true
	}
	if op, err := calculator.ParseOperator(key); err == nil {
		return calculator.Key(op), true
	}
	return "", false
}

// View implements tea.Model.
func (m *CalculatorModel) View() string {
	width := m.theme.displayWidth()
	d := m.state.Display()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Calculator"))
	b.WriteString("\n")

	screen := historyStyle.Render(alignRight(d.History, width)) + "\n" +
		m.theme.resultStyle().Render(alignRight(d.Result, width))
	b.WriteString(panelStyle.Render(screen))
	b.WriteString("\n")

	b.WriteString(renderKeypad())
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	help := "0-9 digits · + - * / · = or enter · c clear"
	if m.standalone {
		help += " · esc quit"
	} else {
		help += " · esc back"
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

var keypadRows = [][]string{
	{"7", "8", "9", "/"},
	{"4", "5", "6", "*"},
	{"1", "2", "3", "-"},
	{"0", "=", "AC", "+"},
}

func renderKeypad() string {
	rows := make([]string, len(keypadRows))
	for i, row := range keypadRows {
		cells := make([]string, len(row))
		for j, label := range row {
			cells[j] = alignRight(label, 3)
		}
		rows[i] = strings.Join(cells, "  ")
	}
	return helpStyle.Render(strings.Join(rows, "\n"))
}
