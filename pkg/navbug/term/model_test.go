package term

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milchschlumpf/navbug/pkg/navbug/shell"
)

func testModel(t *testing.T) Model {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sh, err := shell.New(shell.Options{Logger: logger})
	require.NoError(t, err)

	m := New(sh, Options{Logger: logger})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// settle feeds frame messages until the model stops asking for them.
func settle(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 10_000; i++ {
		var cmd tea.Cmd
		m, cmd = press(t, m, frameMsg{})
		if cmd == nil {
			return m
		}
	}
	t.Fatal("animations never settled")
	return m
}

func TestArrowKeysMoveSelection(t *testing.T) {
	m := settle(t, testModel(t))

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.shell.Bar.Current())
	assert.NotNil(t, cmd, "selection starts frame ticks")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 3, m.shell.Bar.Current(), "left wraps around")
}

func TestNumberKeysSelectTab(t *testing.T) {
	m := testModel(t)

	m, _ = press(t, m, runes("3"))
	assert.Equal(t, 2, m.shell.Bar.Current())
	assert.Equal(t, "home3", m.shell.Router.Current().Route)

	m, _ = press(t, m, runes("9"))
	assert.Equal(t, 2, m.shell.Bar.Current(), "keys past the last tab are ignored")

	m = settle(t, m)
	assert.Equal(t, 2.0, m.shell.Bar.IndicatorPosition())
	assert.Contains(t, m.View(), "Home 3")
}

func TestFramesStopWhenSettled(t *testing.T) {
	m := settle(t, testModel(t))
	assert.False(t, m.ticking)
	assert.True(t, m.shell.Bar.Settled())

	m, cmd := press(t, m, runes("1"))
	assert.Nil(t, cmd, "selecting the active tab does nothing")
	assert.False(t, m.ticking)
}

func TestMouseClickSelectsTab(t *testing.T) {
	m := settle(t, testModel(t))

	// 78 inner columns give 19-column slots; tab 3 starts at column 58.
	m, _ = press(t, m, tea.MouseMsg{X: 60, Y: 21, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Equal(t, 3, m.shell.Bar.Current())

	m, _ = press(t, m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Equal(t, 3, m.shell.Bar.Current(), "clicks above the bar are ignored")

	m, _ = press(t, m, tea.MouseMsg{X: 5, Y: 21, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, 3, m.shell.Bar.Current(), "only releases select")
}

func TestEnterCountsAndBackPops(t *testing.T) {
	m := testModel(t)

	m, _ = press(t, m, runes("2"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "Pressed 1 time")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.Equal(t, "home1", m.shell.Router.Current().Route)

	_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestQuit(t *testing.T) {
	_, cmd := press(t, testModel(t), runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestViewFillsTerminal(t *testing.T) {
	m := settle(t, testModel(t))

	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 24)
	assert.Contains(t, lines[21], "Home 1")
	assert.Contains(t, lines[22], indicatorRune)
}
