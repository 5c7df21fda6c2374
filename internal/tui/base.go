// Package tui is the interactive operator front end over a settings
// menu. The menu model lists every bound option; pressing an option's
// key selects it and opens a field editor for its value.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/balltrack/cfgmenu/internal/config"
	"github.com/balltrack/cfgmenu/internal/menu"
)

// baseModel carries the state shared by every screen.
type baseModel struct {
	menu      *menu.Menu
	tree      *config.Tree
	persister *config.Persister
	log       *zap.SugaredLogger

	title   string
	message string
	err     error
}

func (m baseModel) Init() tea.Cmd {
	return nil
}

func (m baseModel) renderInner(f func(*strings.Builder)) string {
	var s strings.Builder
	if m.title != "" {
		s.WriteString(styles.Title.Render(" "+m.title+" ") + "\n\n")
	}
	if m.message != "" {
		s.WriteString(styles.Success.Render(m.message) + "\n\n")
	}
	if m.err != nil {
		s.WriteString(styles.Error.Render(m.err.Error()) + "\n\n")
	}
	f(&s)
	return s.String()
}
