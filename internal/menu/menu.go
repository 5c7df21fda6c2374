package menu

import (
	"fmt"
	"strings"

	"github.com/balltrack/cfgmenu/internal/config"
)

// unselected is the cursor value while no option is selected.
const unselected = -1

// Menu is an ordered, key-addressed collection of options with a single
// selection cursor. A menu starts unselected; Select moves the cursor,
// and any structural change (Add, Remove) resets it, so callers must
// re-Select afterwards.
type Menu struct {
	options  []Option
	selected int
}

// New returns an empty, unselected menu.
func New() *Menu {
	return &Menu{selected: unselected}
}

// Add appends an option binding key to an item and optional action.
// Keys are unique within a menu: a key that is already bound is rejected
// with ErrDuplicateKey. Adding invalidates the current selection.
func (m *Menu) Add(key byte, item *config.Item, action Action) error {
	if m.indexOf(key) != unselected {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	m.options = append(m.options, NewOption(key, item, action))
	m.selected = unselected
	return nil
}

// Select moves the cursor to the option bound to key and reports whether
// one was found. On a miss the menu is left unselected, never holding a
// stale cursor.
func (m *Menu) Select(key byte) bool {
	m.selected = m.indexOf(key)
	return m.selected != unselected
}

// Remove erases the selected option and leaves the menu unselected.
// Returns ErrNoSelection when nothing is selected.
func (m *Menu) Remove() error {
	if m.selected == unselected {
		return ErrNoSelection
	}
	m.options = append(m.options[:m.selected], m.options[m.selected+1:]...)
	m.selected = unselected
	return nil
}

// Apply commits a value through the selected option. Returns
// ErrNoSelection when nothing is selected.
func (m *Menu) Apply(value any) error {
	if m.selected == unselected {
		return ErrNoSelection
	}
	return m.options[m.selected].Apply(value)
}

// Selection returns the selected option, if any.
func (m *Menu) Selection() (Option, bool) {
	if m.selected == unselected {
		return Option{}, false
	}
	return m.options[m.selected], true
}

// Len returns the number of options.
func (m *Menu) Len() int {
	return len(m.options)
}

// Options returns a copy of the options in collection order.
func (m *Menu) Options() []Option {
	out := make([]Option, len(m.options))
	copy(out, m.options)
	return out
}

// String renders every option's line in collection order. Rendering
// neither reads nor changes the selection.
func (m *Menu) String() string {
	var b strings.Builder
	for _, option := range m.options {
		b.WriteString(option.String())
	}
	return b.String()
}

// indexOf returns the position of the first option bound to key, or
// unselected when the key is not bound.
func (m *Menu) indexOf(key byte) int {
	for i, option := range m.options {
		if option.Key() == key {
			return i
		}
	}
	return unselected
}
