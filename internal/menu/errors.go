package menu

import "errors"

// Errors returned by menu operations.
var (
	// ErrNoSelection indicates Apply or Remove was called with no
	// option selected.
	ErrNoSelection = errors.New("no menu option selected")

	// ErrDuplicateKey indicates Add was called with a key already
	// bound in the menu.
	ErrDuplicateKey = errors.New("menu key already bound")
)
