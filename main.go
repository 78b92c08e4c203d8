package main

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// frameInterval paces the animation ticker.
const frameInterval = 200 * time.Millisecond

// tickMsg advances the animation frame counter.
type tickMsg time.Time

// Model represents the application state following Elm architecture
type Model struct {
	renderer *Renderer
	input    textinput.Model
	viewport viewport.Model

	fonts     []string
	fontIdx   int
	schemes   []ColorScheme
	schemeIdx int
	anims     []AnimationTag
	animIdx   int

	result *RenderResult
	frame  int

	width  int
	height int
	ready  bool
}

func newModel(renderer *Renderer) Model {
	input := textinput.New()
	input.Placeholder = "type text, press enter to render"
	input.CharLimit = renderer.cfg.MaxTextLength
	input.Focus()

	return Model{
		renderer: renderer,
		input:    input,
		fonts:    renderer.Fonts(),
		schemes:  []ColorScheme{ColorNone, ColorSolid, ColorRainbow, ColorGradient},
		anims:    []AnimationTag{AnimNone, AnimBlink, AnimPulse, AnimWave},
	}
}

// Init starts with a focused text input and no pending work.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit

		case "enter":
			return m.dispatchRender()

		case "ctrl+f":
			m.fontIdx = (m.fontIdx + 1) % len(m.fonts)
			return m.dispatchRender()

		case "ctrl+g":
			m.schemeIdx = (m.schemeIdx + 1) % len(m.schemes)
			return m.dispatchRender()

		case "ctrl+a":
			m.animIdx = (m.animIdx + 1) % len(m.anims)
			return m.dispatchRender()

		case "ctrl+t":
			NextTheme()
			InitStyles()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.width, 10) // Initial size, resized in View()
			m.ready = true
		} else {
			m.viewport.Width = m.width
		}
		m.refreshOutput()

	case tickMsg:
		if !m.animating() {
			return m, nil
		}
		m.frame++
		m.refreshOutput()
		return m, tick()
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// dispatchRender runs the current input through the render pipeline. Boundary
// validation stays thin; the dispatcher re-validates everything itself.
func (m Model) dispatchRender() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	result := m.renderer.Render(GenerationRequest{
		Text:      text,
		FontName:  m.fonts[m.fontIdx],
		Scheme:    m.schemes[m.schemeIdx],
		Animation: m.anims[m.animIdx],
	})

	m.result = &result
	m.frame = 0
	m.refreshOutput()

	if m.animating() {
		return m, tick()
	}
	return m, nil
}

// animating reports whether the current result carries a live animation tag.
func (m Model) animating() bool {
	return m.result != nil && m.result.Ok() && m.result.Art.Animation != AnimNone
}

// refreshOutput writes the current frame of the current result into the
// output viewport.
func (m *Model) refreshOutput() {
	if !m.ready || m.result == nil {
		return
	}
	if !m.result.Ok() {
		m.viewport.SetContent(errorStyle.Render(
			fmt.Sprintf("%s: %s", m.result.Err.Kind, m.result.Err.Message)))
		return
	}
	lines := animateFrame(m.result.Art, m.frame)
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return labelStyle.Render("Starting...")
	}

	title := titleStyle.Render("asciigen") +
		labelStyle.Render("  text -> ASCII art")

	inputBox := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(CurrentTheme.Blue)).
		Width(m.width - 2).
		Render(m.input.View())

	selectors := m.renderSelectors()
	statusBar := m.renderStatusBar(m.width)

	// Output viewport takes whatever height the chrome leaves over.
	chrome := lipgloss.Height(title) + lipgloss.Height(inputBox) +
		lipgloss.Height(selectors) + lipgloss.Height(statusBar)
	outputHeight := m.height - chrome
	if outputHeight < 3 {
		outputHeight = 3
	}
	m.viewport.Height = outputHeight

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		inputBox,
		selectors,
		m.viewport.View(),
		statusBar,
	)
}

// renderSelectors shows the active font, color scheme and animation.
func (m Model) renderSelectors() string {
	parts := []string{
		labelStyle.Render("font: ") + selectorStyle.Render(m.fonts[m.fontIdx]),
		labelStyle.Render("color: ") + selectorStyle.Render(string(m.schemes[m.schemeIdx])),
		labelStyle.Render("anim: ") + selectorStyle.Render(string(m.anims[m.animIdx])),
		labelStyle.Render("theme: ") + selectorStyle.Render(GetCurrentThemeName()),
	}
	if m.result != nil && m.result.Ok() {
		stats := m.result.Stats
		parts = append(parts, labelStyle.Render(
			fmt.Sprintf("%dx%d, %d chars", stats.ColCount, stats.RowCount, stats.CharCount)))
	}
	return " " + strings.Join(parts, "  |  ")
}

// renderStatusBar renders the bottom status bar with keybindings and cache
// counters.
func (m Model) renderStatusBar(width int) string {
	metrics := m.renderer.Metrics()
	help := fmt.Sprintf(
		"enter: render | ctrl+f: font | ctrl+g: color | ctrl+a: anim | ctrl+t: theme | esc: quit | cache %d hit / %d miss",
		metrics.Hits, metrics.Misses,
	)
	if utf8.RuneCountInString(help) > width {
		help = "enter: render | esc: quit"
	}
	return statusBarStyle.Width(width).Render(help)
}

func main() {
	// Recover from panics to restore terminal state
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Fatal error: %v\n", r)
			os.Exit(1)
		}
	}()

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	InitTheme()
	InitStyles()

	renderer, err := NewRenderer(cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(renderer), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
