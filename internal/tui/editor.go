package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// editorModel edits the value of the menu's selected option through a
// text input. Enter applies, Esc cancels.
type editorModel struct {
	baseModel
	input textinput.Model
}

func newEditorModel(base baseModel) editorModel {
	ti := textinput.New()
	ti.Placeholder = "Enter new value"
	ti.Width = 32
	ti.Prompt = "> "
	ti.Focus()
	base.title = "Edit Setting"
	base.message = ""
	base.err = nil
	return editorModel{
		baseModel: base,
		input:     ti,
	}
}

func (m editorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m.goBack(""), nil
		case "enter":
			return m.handleEnter()
		}
	}
	return m, cmd
}

func (m editorModel) View() string {
	option, ok := m.menu.Selection()
	if !ok {
		return m.renderInner(func(s *strings.Builder) {
			s.WriteString(styles.Error.Render("nothing selected") + "\n")
		})
	}

	item := option.Item()
	return m.renderInner(func(s *strings.Builder) {
		fmt.Fprintf(s, "Setting: %s\n", styles.Name.Render(item.Name()))
		fmt.Fprintf(s, "Current value: %s (%s)\n\n",
			styles.Value.Render(item.String()), item.Kind())
		s.WriteString("New value:\n")
		s.WriteString(m.input.View() + "\n")
		s.WriteString(styles.Help.Render("\nEnter apply — Esc cancel\n"))
	})
}

func (m editorModel) handleEnter() (tea.Model, tea.Cmd) {
	option, ok := m.menu.Selection()
	if !ok {
		return m.goBack(""), nil
	}
	item := option.Item()

	text := m.input.Value()
	v := item.Value()
	if !v.SetString(text) {
		m.err = fmt.Errorf("%q is not a valid %s", text, item.Kind())
		return m, nil
	}

	if err := m.menu.Apply(text); err != nil {
		m.err = err
		return m, nil
	}

	m.log.Infow("setting changed", "tag", item.Tagname(), "value", item.String())
	return m.goBack(fmt.Sprintf("%s = %s", item.Name(), item.String())), nil
}

func (m editorModel) goBack(message string) MenuModel {
	m.input.Blur()
	next := MenuModel{baseModel: m.baseModel}
	next.title = "Settings"
	next.message = message
	next.err = nil
	return next
}
