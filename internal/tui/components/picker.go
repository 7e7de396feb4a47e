package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Item is one pickable entry.
type Item struct {
	Label       string
	Description string
	Value       string
}

// Picker is a multi-select list component: toggle any number of items, then
// confirm or cancel.
type Picker struct {
	title     string
	items     []Item
	cursor    int
	chosen    map[int]struct{}
	width     int
	showHelp  bool
	keyMap    pickerKeyMap
	styles    pickerStyles
	submitted bool
	cancelled bool
}

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	All    key.Binding
	Accept key.Binding
	Quit   key.Binding
}

type pickerStyles struct {
	Title       lipgloss.Style
	Cursor      lipgloss.Style
	Chosen      lipgloss.Style
	Unchosen    lipgloss.Style
	Description lipgloss.Style
	Help        lipgloss.Style
}

func defaultPickerStyles() pickerStyles {
	return pickerStyles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1),
		Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Chosen:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Unchosen:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginLeft(4),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1),
	}
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		All: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle all"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// NewPicker creates a multi-select picker.
func NewPicker(title string, items []Item) Picker {
	return Picker{
		title:    title,
		items:    items,
		cursor:   0,
		chosen:   make(map[int]struct{}),
		width:    60,
		showHelp: true,
		keyMap:   defaultPickerKeyMap(),
		styles:   defaultPickerStyles(),
	}
}

// WithPreselected marks the given values as already chosen.
func (p Picker) WithPreselected(values []string) Picker {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	for i, item := range p.items {
		if _, ok := set[item.Value]; ok {
			p.chosen[i] = struct{}{}
		}
	}
	return p
}

// WithShowHelp enables or disables the help text.
func (p Picker) WithShowHelp(show bool) Picker {
	p.showHelp = show
	return p
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keyMap.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		case key.Matches(msg, p.keyMap.Down):
			if p.cursor < len(p.items)-1 {
				p.cursor++
			}
		case key.Matches(msg, p.keyMap.Toggle):
			if _, ok := p.chosen[p.cursor]; ok {
				delete(p.chosen, p.cursor)
			} else {
				p.chosen[p.cursor] = struct{}{}
			}
		case key.Matches(msg, p.keyMap.All):
			if len(p.chosen) == len(p.items) {
				p.chosen = make(map[int]struct{})
			} else {
				for i := range p.items {
					p.chosen[i] = struct{}{}
				}
			}
		case key.Matches(msg, p.keyMap.Accept):
			p.submitted = true
			return p, tea.Quit
		case key.Matches(msg, p.keyMap.Quit):
			p.cancelled = true
			return p, tea.Quit
		}
	case tea.WindowSizeMsg:
		p.width = msg.Width
	}
	return p, nil
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	b.WriteString(p.styles.Title.Render(p.title))
	b.WriteString("\n\n")

	for i, item := range p.items {
		cursor := "  "
		if i == p.cursor {
			cursor = p.styles.Cursor.Render("❯ ")
		}

		symbol := "○"
		style := p.styles.Unchosen
		if _, ok := p.chosen[i]; ok {
			symbol = "◉"
			style = p.styles.Chosen
		}

		b.WriteString(cursor)
		b.WriteString(style.Render(symbol + " " + item.Label))
		b.WriteString("\n")

		if item.Description != "" {
			b.WriteString(p.styles.Description.Render(item.Description))
			b.WriteString("\n")
		}
	}

	if p.showHelp {
		b.WriteString(p.styles.Help.Render("\n↑/↓ navigate • space toggle • a toggle all • enter confirm • q quit"))
	}

	return b.String()
}

// Chosen returns the chosen values in item order.
func (p Picker) Chosen() []string {
	var values []string
	for i, item := range p.items {
		if _, ok := p.chosen[i]; ok {
			values = append(values, item.Value)
		}
	}
	return values
}

// Submitted returns true if the user confirmed the selection.
func (p Picker) Submitted() bool {
	return p.submitted
}

// Cancelled returns true if the user cancelled.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
