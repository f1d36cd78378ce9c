package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-fireworks/internal/config"
	"github.com/vovakirdan/tui-fireworks/internal/core"
	"github.com/vovakirdan/tui-fireworks/internal/registry"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// menuKeys are the bindings of the source picker.
type menuKeys struct {
	Up, Down, Prev, Next, Select, Quit key.Binding
}

func defaultMenuKeys() menuKeys {
	return menuKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Prev:   key.NewBinding(key.WithKeys("left", "h")),
		Next:   key.NewBinding(key.WithKeys("right", "l", "tab")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc")),
	}
}

// MenuModel picks a pointer source and a preset before a show.
type MenuModel struct {
	sources  []registry.SourceInfo
	cursor   int
	preset   int // Index into config.PresetNames
	width    int
	height   int
	config   core.RuntimeConfig
	keys     menuKeys
	quitting bool
	selected bool
}

// NewMenuModel creates a menu with the cursor on initialSource and initialPreset.
func NewMenuModel(cfg core.RuntimeConfig, initialSource string, initialPreset config.Preset) MenuModel {
	m := MenuModel{
		sources: registry.List(),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		config:  cfg,
		keys:    defaultMenuKeys(),
	}
	for i, s := range m.sources {
		if s.ID == initialSource {
			m.cursor = i
		}
	}
	m.preset = indexOfPreset(config.PresetNormal)
	if initialPreset != "" {
		m.preset = indexOfPreset(initialPreset)
	}
	return m
}

func indexOfPreset(p config.Preset) int {
	for i, name := range config.PresetNames {
		if name == p {
			return i
		}
	}
	return 0
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(config.PresetNames)

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.sources)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Prev):
		m.preset = (m.preset + n - 1) % n
	case key.Matches(msg, m.keys.Next):
		m.preset = (m.preset + 1) % n
	case key.Matches(msg, m.keys.Select):
		if len(m.sources) > 0 {
			m.selected = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  F I R E W O R K S  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a pointer source", m.width))
	b.WriteString("\n\n")

	for i, s := range m.sources {
		line := "  " + s.Title
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + s.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Preset: < %s >", config.PresetNames[m.preset]), m.width))
	b.WriteString("\n\n")
	controls := "Up/Down: Source  |  Left/Right: Preset  |  Enter: Start  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	SourceID string
	Preset   config.Preset
	Config   core.RuntimeConfig
	Quit     bool
}

// Result reports the current choice.
func (m MenuModel) Result() MenuResult {
	r := MenuResult{Config: m.config, Quit: !m.selected}
	if m.selected && len(m.sources) > 0 {
		r.SourceID = m.sources[m.cursor].ID
		r.Preset = config.PresetNames[m.preset]
	}
	return r
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, initialSource string, initialPreset config.Preset) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg, initialSource, initialPreset), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
