package menu

import (
	"fmt"
	"unicode"

	"github.com/balltrack/cfgmenu/internal/config"
)

// Action is a side effect fired after an option's item changes.
type Action func()

// Option maps a key to a configuration item and an optional action. The
// item is borrowed, not owned.
type Option struct {
	key    byte
	item   *config.Item
	action Action
}

// NewOption constructs an option with the given key, item, and optional
// action (nil for none).
func NewOption(key byte, item *config.Item, action Action) Option {
	return Option{key: key, item: item, action: action}
}

// Key returns the bound key, immutable after construction.
func (o Option) Key() byte {
	return o.key
}

// Item returns the bound configuration item.
func (o Option) Item() *config.Item {
	return o.item
}

// Apply sets the bound item with the given value, then fires the action
// if one was supplied. The value is committed before the action runs,
// so the action observes the new value.
func (o Option) Apply(value any) error {
	if err := o.item.Set(value); err != nil {
		return err
	}
	if o.action != nil {
		o.action()
	}
	return nil
}

// String renders the option as one fixed-width menu line: the key
// uppercased, the item name left-justified, the current value
// right-justified.
func (o Option) String() string {
	return fmt.Sprintf("%c | %-20s %16s\n",
		unicode.ToUpper(rune(o.key)), o.item.Name(), o.item.String())
}

// Equal reports option equality: options are equal iff their keys match.
func (o Option) Equal(other Option) bool {
	return o.key == other.key
}
