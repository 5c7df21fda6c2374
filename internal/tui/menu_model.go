package tui

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/balltrack/cfgmenu/internal/config"
	"github.com/balltrack/cfgmenu/internal/menu"
)

// MenuModel is the top-level screen: the rendered menu plus key
// handling. Pressing an option's key selects it in the menu and opens
// the field editor.
type MenuModel struct {
	baseModel
}

// NewMenuModel builds the top-level screen over an already populated
// menu. The tree and persister back the save shortcut.
func NewMenuModel(m *menu.Menu, tree *config.Tree, persister *config.Persister, log *zap.SugaredLogger) MenuModel {
	model := MenuModel{
		baseModel: baseModel{
			menu:      m,
			tree:      tree,
			persister: persister,
			log:       log,
		},
	}
	model.title = "Settings"
	return model
}

func (m MenuModel) Init() tea.Cmd {
	return m.baseModel.Init()
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "ctrl+s":
			return m.handleSave(), nil
		default:
			if key, ok := singleKey(msg); ok && m.menu.Select(key) {
				return newEditorModel(m.baseModel), nil
			}
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	return m.renderInner(func(s *strings.Builder) {
		for _, option := range m.menu.Options() {
			item := option.Item()
			fmt.Fprintf(s, "%s | %s %s\n",
				styles.Key.Render(string(unicode.ToUpper(rune(option.Key())))),
				styles.Name.Render(fmt.Sprintf("%-20s", item.Name())),
				styles.Value.Render(fmt.Sprintf("%16s", item.String())))
		}
		s.WriteString(styles.Help.Render(
			"\npress a key to edit — Ctrl+S save — Q quit\n"))
	})
}

func (m MenuModel) handleSave() MenuModel {
	if err := m.persister.Save(m.tree); err != nil {
		m.err = err
		m.message = ""
		return m
	}
	m.err = nil
	m.message = "Settings saved"
	return m
}

// singleKey extracts a single-byte menu key from a key press.
func singleKey(msg tea.KeyMsg) (byte, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r > unicode.MaxASCII {
		return 0, false
	}
	return byte(r), true
}
