// Package menu provides the operator-facing text menu over configuration
// items.
//
// An Option binds a single-byte key to one config.Item and an optional
// zero-argument action fired after the item changes. A Menu is an
// ordered, key-addressed collection of options with a single selection
// cursor: Select picks an option by key, Apply commits a value through
// it, Remove erases it.
//
// Options borrow their items; the tree (or whatever storage holds the
// items) must outlive every menu built over it. The package is not safe
// for concurrent use.
package menu
