// Package store provides the structured key/value stores that back
// configuration persistence.
//
// A Store is a hierarchical document with named scopes of flat key/text
// pairs. The persistence layer opens a single root scope (conventionally
// "settings"), reads or writes one key per configuration item, and
// closes the scope again, leaving the store clean for reuse.
//
// Four interchangeable backends exist: XML (the default, matching the
// original settings.xml layout), TOML, JSON, and YAML.
package store

import (
	"errors"
	"fmt"
)

// Store is a structured document holding flat key/text pairs grouped
// into named scopes.
//
// Get and Set operate on the currently open scope. With no scope open,
// Get returns the fallback and Set is a no-op.
type Store interface {
	// Load reads the document from disk. A missing file is not an
	// error; it yields an empty document.
	Load(path string) error

	// Save writes the document to disk.
	Save(path string) error

	// Open enters the named scope, creating it if absent.
	Open(scope string)

	// Close leaves the open scope.
	Close()

	// Get returns the text value stored under key in the open scope,
	// or fallback when the key is absent.
	Get(key, fallback string) string

	// Set stores a text value under key in the open scope, replacing
	// any prior value.
	Set(key, value string)
}

// ErrUnknownBackend indicates an unrecognized backend name.
var ErrUnknownBackend = errors.New("unknown store backend")

// New returns a fresh store for the named backend: "xml", "toml",
// "json", or "yaml".
func New(backend string) (Store, error) {
	switch backend {
	case "xml":
		return NewXML(), nil
	case "toml":
		return NewTOML(), nil
	case "json":
		return NewJSON(), nil
	case "yaml":
		return NewYAML(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
