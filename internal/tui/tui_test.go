package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awsomemath/internal/calculator"
	"awsomemath/internal/volume"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestAlignRight(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{in: "8", width: 4, want: "   8"},
		{in: "1234", width: 4, want: "1234"},
		{in: "123456", width: 4, want: "…456"},
		{in: "", width: 2, want: "  "},
		{in: "12", width: 0, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, alignRight(tc.in, tc.width))
		})
	}
}

func TestCalculatorModelChainedSequence(t *testing.T) {
	m := NewCalculatorModel(DefaultTheme(), true)

	press(m, runes("5"), runes("+"), runes("3"), runes("-"))
	assert.Equal(t, "8", m.State().First)
	assert.Equal(t, calculator.OpSub, m.State().Operator)

	press(m, runes("2"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "6", m.State().Result)
	assert.Contains(t, m.View(), "6")
}

func TestCalculatorModelDivisionByZeroShowsNotice(t *testing.T) {
	m := NewCalculatorModel(DefaultTheme(), true)

	press(m, runes("7"), runes("/"), runes("0"), runes("="))
	assert.Equal(t, "", m.State().Result)
	assert.Contains(t, m.View(), "cannot divide by zero")

	press(m, runes("c"))
	assert.Equal(t, calculator.NewState(), m.State())
	assert.NotContains(t, m.View(), "cannot divide by zero")
}

func TestCalculatorModelEscQuitsOnlyWhenStandalone(t *testing.T) {
	_, cmd := NewCalculatorModel(DefaultTheme(), true).Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = NewCalculatorModel(DefaultTheme(), false).Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
}

func TestCalculatorKeyMap(t *testing.T) {
	tests := []struct {
		key  string
		want calculator.Key
		ok   bool
	}{
		{key: "7", want: "7", ok: true},
		{key: "+", want: calculator.Key(calculator.OpAdd), ok: true},
		{key: "/", want: calculator.Key(calculator.OpDiv), ok: true},
		{key: "=", want: calculator.KeyEquals, ok: true},
		{key: "enter", want: calculator.KeyEquals, ok: true},
		{key: "c", want: calculator.KeyClear, ok: true},
		{key: "C", want: calculator.KeyClear, ok: true},
		{key: "delete", want: calculator.KeyClear, ok: true},
		{key: "esc", ok: false},
		{key: "x", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			got, ok := calculatorKey(tc.key)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCalculatorModelDeleteClearsAndEscKeepsState(t *testing.T) {
	m := NewCalculatorModel(DefaultTheme(), false)

	press(m, runes("4"), runes("*"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "4", m.State().First, "esc in an embedded calculator leaves state alone")

	press(m, tea.KeyMsg{Type: tea.KeyDelete})
	assert.Equal(t, calculator.NewState(), m.State())
}

func TestVolumeModelEditsDimension(t *testing.T) {
	m := NewVolumeModel(DefaultTheme(), "", true)
	require.Equal(t, volume.DefaultShape, m.State().Shape)

	// The length input starts at "1"; typing "0" makes it "10".
	press(m, runes("0"))
	assert.Equal(t, "10", m.State().Dimensions[volume.DimLength])
	assert.Equal(t, 1000.0, m.State().Result)
	assert.Contains(t, m.View(), "1000")
}

func TestVolumeModelIgnoresNonNumericRunes(t *testing.T) {
	m := NewVolumeModel(DefaultTheme(), "Sphere", true)

	press(m, runes("x"))
	assert.Equal(t, "1", m.State().Dimensions[volume.DimRadius])
}

func TestVolumeModelCyclesShapesKeepingDimensions(t *testing.T) {
	m := NewVolumeModel(DefaultTheme(), "Cube", true)

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "Sphere", m.State().Shape)

	press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "Cylinder", m.State().Shape)
	assert.InDelta(t, 3.14159, m.State().Result, 1e-4)
}

func TestVolumeModelEmptiedFieldShowsZero(t *testing.T) {
	m := NewVolumeModel(DefaultTheme(), "Cone", true)

	press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "", m.State().Dimensions[volume.DimRadius])
	assert.Zero(t, m.State().Result)

	press(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, volume.DefaultShape, m.State().Shape)
	assert.Equal(t, 1.0, m.State().Result)
}

func TestStartModelOpensAndLeavesCalculators(t *testing.T) {
	m := NewStartModel(DefaultTheme(), "")
	assert.Contains(t, m.View(), "Welcome to AWSomeMath")

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.IsType(t, &CalculatorModel{}, m.active)
	assert.True(t, strings.Contains(m.View(), "Calculator"))

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.active)

	press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	require.IsType(t, &VolumeModel{}, m.active)
}
