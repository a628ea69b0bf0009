// Package term hosts the bottom navigation demo in a terminal with Bubble
// Tea. It drives the same shell.Shell as the SDL window: tea.Tick messages
// advance the springs until they settle, and lipgloss draws the bar as a
// bordered card with an indicator row under the tabs.
package term

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/milchschlumpf/navbug/pkg/navbug/icons"
	"github.com/milchschlumpf/navbug/pkg/navbug/layout"
	"github.com/milchschlumpf/navbug/pkg/navbug/shell"
	"github.com/milchschlumpf/navbug/pkg/navbug/spring"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// Border, tab labels, indicator, border.
	barHeight = 4
)

type frameMsg struct{}

// Options configures a Model.
type Options struct {
	FPS    int
	Logger *slog.Logger
}

// Model is the Bubble Tea model of the terminal host.
type Model struct {
	shell   *shell.Shell
	fps     int
	logger  *slog.Logger
	width   int
	height  int
	ticking bool
	err     error
}

// New creates a Model showing sh. The first frame tick is scheduled by Init,
// since a restored selection starts with the indicator in motion.
func New(sh *shell.Shell, opts Options) Model {
	fps := opts.FPS
	if fps <= 0 {
		fps = spring.DefaultFPS
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return Model{
		shell:   sh,
		fps:     fps,
		logger:  logger,
		width:   defaultWidth,
		height:  defaultHeight,
		ticking: true,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case frameMsg:
		if m.shell.Bar.Tick() {
			return m, m.tick()
		}
		m.ticking = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if id, ok := m.hitTest(msg.X, msg.Y); ok && m.shell.Bar.Select(id) {
			return m.animate()
		}
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	bar := m.shell.Bar

	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h", "shift+tab":
		bar.SelectPrevious()
		return m.animate()

	case "right", "l", "tab":
		bar.SelectNext()
		return m.animate()

	case "enter", " ":
		presses := m.shell.Press()
		m.logger.Debug("Pressed screen button", "route", m.shell.Router.Current().Route, "presses", presses)

	case "esc", "backspace":
		if !m.shell.Back() {
			return m, tea.Quit
		}

	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if bar.Select(int(key[0] - '1')) {
				return m.animate()
			}
		}
	}
	return m, nil
}

// animate schedules frame ticks unless they are already running.
func (m Model) animate() (tea.Model, tea.Cmd) {
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (m Model) constraints() layout.Constraints {
	return layout.Constraints{MaxWidth: int32(max(m.width-2, 1)), Height: 1}
}

// hitTest maps a terminal cell to a tab id. Only the tab label row and the
// indicator row inside the card count.
func (m Model) hitTest(x, y int) (int, bool) {
	top := m.height - barHeight
	if y <= top || y >= m.height-1 {
		return -1, false
	}
	return m.shell.Bar.HitTest(m.constraints(), int32(x-1))
}

// View implements tea.Model
func (m Model) View() string {
	content := m.renderScreen()
	bar := m.renderBar()
	return lipgloss.JoinVertical(lipgloss.Left, content, bar)
}

func (m Model) renderScreen() string {
	height := max(m.height-barHeight, 1)

	screen, err := m.shell.Screen()
	if err != nil {
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
			ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
	}

	block := lipgloss.JoinVertical(lipgloss.Center,
		TitleStyle.Render(screen.Title),
		"",
		CounterStyle.Render(screen.Counter),
		HintStyle.Render(screen.Hint),
	)
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, block)
}

func (m Model) renderBar() string {
	cons := m.constraints()
	res := m.shell.Bar.Layout(cons)
	inner := int(cons.MaxWidth)

	var tabs strings.Builder
	for i, item := range m.shell.Bar.Items() {
		width := int(res.Items[i].W)
		label := glyph(item.Section.Icon(item.Selected)) + " " + m.shell.Strings.Title(item.Section)
		if lipgloss.Width(label) > width {
			label = glyph(item.Section.Icon(item.Selected))
		}
		style := TabStyle
		if item.Selected {
			style = SelectedTabStyle
		}
		tabs.WriteString(style.Render(lipgloss.PlaceHorizontal(width, lipgloss.Center, label)))
	}

	ind := res.Indicator
	start := clamp(int(ind.X), 0, inner)
	end := clamp(int(ind.X+ind.W), start, inner)
	indicator := strings.Repeat(" ", start) +
		IndicatorStyle.Render(strings.Repeat(indicatorRune, end-start)) +
		strings.Repeat(" ", inner-end)

	row := lipgloss.NewStyle().Width(inner)
	return CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		row.Render(tabs.String()),
		row.Render(indicator),
	))
}

func glyph(ref icons.Ref) string {
	if ref == icons.BaselineHome {
		return baselineGlyph
	}
	return outlineGlyph
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
