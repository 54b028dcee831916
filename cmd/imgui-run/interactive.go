package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/imgui-bridge/imgui"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// chromeRows is the number of terminal rows taken by the header and footer.
const chromeRows = 5

type interactiveModel struct {
	err   error
	scene *scene
	stats frameStats
	jump  textinput.Model
	rows  int
	cols  int
	state modelState
}

type modelState int

const (
	stateBrowse modelState = iota
	stateGoto
)

func newInteractiveModel(s *scene) *interactiveModel {
	ti := textinput.New()
	ti.Prompt = "go to item: "
	ti.Placeholder = "0"
	ti.Width = 12
	cols, rows := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cols, rows = w, h
	}
	m := &interactiveModel{scene: s, jump: ti}
	m.resize(cols, rows)
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

// resize maps the terminal rows below the header onto the display height,
// one row per item line.
func (m *interactiveModel) resize(cols, rows int) {
	m.cols, m.rows = cols, max(rows-chromeRows, 1)
	spacing := m.stats.LineSpacing
	if spacing == 0 {
		spacing = 17
	}
	m.scene.display = imgui.Vec2{X: float32(cols * 8), Y: float32(m.rows) * spacing}
	m.render()
}

func (m *interactiveModel) render() {
	m.stats = m.scene.settle()
}

// scrollBy moves by whole lines and clamps to the scrollable range of the
// last frame.
func (m *interactiveModel) scrollBy(lines int) {
	m.scrollTo(m.scene.scrollY + float32(lines)*m.stats.LineSpacing)
}

func (m *interactiveModel) scrollTo(y float32) {
	m.scene.scrollY = min(max(y, 0), m.stats.ScrollMaxY)
	m.render()
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if m.state == stateGoto {
			return m.updateGoto(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			m.scrollBy(-1)
		case "down", "j":
			m.scrollBy(1)
		case "pgup", "b":
			m.scrollBy(-m.rows)
		case "pgdown", " ":
			m.scrollBy(m.rows)
		case "home", "g":
			m.scrollTo(0)
		case "end", "G":
			m.scrollTo(m.stats.ScrollMaxY)
		case ":":
			m.state = stateGoto
			m.err = nil
			m.jump.SetValue("")
			return m, m.jump.Focus()
		}
	}
	return m, nil
}

func (m *interactiveModel) updateGoto(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateBrowse
		m.jump.Blur()
		return m, nil
	case "enter":
		m.state = stateBrowse
		m.jump.Blur()
		n, err := strconv.Atoi(strings.TrimSpace(m.jump.Value()))
		if err != nil || n < 0 || n >= m.scene.items {
			m.err = fmt.Errorf("no item %q", m.jump.Value())
			return m, nil
		}
		m.scrollTo(float32(n) * m.stats.LineSpacing)
		return m, nil
	}
	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ImGui List Clipper"))
	b.WriteString(" ")
	b.WriteString(fmt.Sprintf("%d items, display %.0fx%.0f", m.scene.items, m.scene.display.X, m.scene.display.Y))
	b.WriteString("\n\n")

	start, end := m.stats.Visible()
	shown := 0
	for i := start; i < end && shown < m.rows; i++ {
		b.WriteString(indexStyle.Render(fmt.Sprintf("%6d ", i)))
		b.WriteString(itemStyle.Render(itemLabel(i)))
		b.WriteString("\n")
		shown++
	}
	for ; shown < m.rows; shown++ {
		b.WriteString("\n")
	}

	b.WriteString(statStyle.Render(fmt.Sprintf(
		"frame %d  items [%d, %d)  clipped %d  scroll %.0f/%.0f  %d vertices  %d indices  %d commands",
		m.stats.Frame, start, end, m.stats.ClippedItems, m.stats.ScrollY, m.stats.ScrollMaxY,
		m.stats.Vertices, m.stats.Indices, m.stats.Commands)))
	b.WriteString("\n")

	switch {
	case m.state == stateGoto:
		b.WriteString(m.jump.View())
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	default:
		b.WriteString(helpStyle.Render("↑/↓ scroll • pgup/pgdn page • g/G top/bottom • : go to • q quit"))
	}
	return b.String()
}

func runInteractive(items int, itemHeight float32, display imgui.Vec2, fontFile string) error {
	s, err := newScene(items, itemHeight, display, fontFile)
	if err != nil {
		return err
	}
	defer s.close()

	p := tea.NewProgram(newInteractiveModel(s), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
