package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wordaxis/internal/domain"
)

// ExplorerPort is the TUI-facing subset of the explorer service.
type ExplorerPort interface {
	Axes() []domain.Axis
	Baseline(i int) (float64, error)
	Explore(word string, axis, k int) ([]domain.Projection, error)
}

// Model is the Bubble Tea model for the axis explorer.
type Model struct {
	service  ExplorerPort
	axes     []domain.Axis
	input    textinput.Model
	viewport viewport.Model
	results  []domain.Projection
	axis     int
	word     string
	status   string
	ready    bool
}

// New creates a new TUI model instance.
func New(service ExplorerPort) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a word and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		service:  service,
		axes:     service.Axes(),
		input:    ti,
		viewport: vp,
		status:   "Loaded. Tab switches axis.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header + axis, status, spacer
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, msg.Height-reserved-rh)
		m.viewport.SetContent(m.renderResults())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			if w := strings.TrimSpace(m.input.Value()); w != "" {
				m.word = w
				m.explore()
				return m, nil
			}
		case "tab":
			if len(m.axes) > 0 {
				m.axis = (m.axis + 1) % len(m.axes)
				m.explore()
				return m, nil
			}
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) explore() {
	if m.word == "" {
		m.viewport.SetContent(m.renderResults())
		return
	}
	res, err := m.service.Explore(m.word, m.axis, 0)
	if err != nil {
		m.status = "Error: " + err.Error()
		m.results = nil
	} else {
		m.status = fmt.Sprintf("Neighbours of %q on %s", m.word, m.axes[m.axis])
		m.results = res
	}
	m.viewport.SetContent(m.renderResults())
	m.viewport.GotoTop()
}

// View renders the TUI layout and the current projections.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Word Axis Explorer")
	axis := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.axisLine())
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	results := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + axis + "\n" + results + "\n" + input + "\n" + status
}

func (m Model) axisLine() string {
	if len(m.axes) == 0 {
		return "no axes configured"
	}
	base, err := m.service.Baseline(m.axis)
	if err != nil {
		return err.Error()
	}
	return fmt.Sprintf("axis %d/%d: %s  (baseline %.3f)", m.axis+1, len(m.axes), m.axes[m.axis], base)
}

func (m Model) renderResults() string {
	if len(m.results) == 0 {
		return "No results yet."
	}
	half := max(5, (m.viewport.Width-30)/2)
	return renderBars(m.results, half)
}

// renderBars draws one centred bar per projection, negative scores to the left.
func renderBars(results []domain.Projection, half int) string {
	maxAbs := 0.0
	width := 0
	for _, r := range results {
		maxAbs = math.Max(maxAbs, math.Abs(r.Score))
		width = max(width, lipgloss.Width(r.Word))
	}
	var b strings.Builder
	for _, r := range results {
		n := 0
		if maxAbs > 0 {
			n = int(math.Round(math.Abs(r.Score) / maxAbs * float64(half)))
		}
		left := strings.Repeat(" ", half)
		right := ""
		if r.Score < 0 {
			left = strings.Repeat(" ", half-n) + leftBarStyle.Render(strings.Repeat("█", n))
		} else {
			right = rightBarStyle.Render(strings.Repeat("█", n))
		}
		fmt.Fprintf(&b, "%*s %s│%s %+.3f\n", width, r.Word, left, right, r.Score)
	}
	return strings.TrimRight(b.String(), "\n")
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	leftBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	rightBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)
