package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// JSON is a Store backed by a JSON document, addressed with gjson/sjson
// paths: one object per scope, one member per key.
type JSON struct {
	doc   []byte
	scope string
}

// NewJSON returns an empty JSON store.
func NewJSON() *JSON {
	return &JSON{doc: []byte("{}")}
}

// Load reads the document from disk. A missing file yields an empty
// document.
func (s *JSON) Load(path string) error {
	s.doc = []byte("{}")
	s.scope = ""

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if !gjson.ValidBytes(data) {
		return fmt.Errorf("parsing %s: invalid JSON document", path)
	}
	s.doc = data
	return nil
}

// Save writes the document to disk.
func (s *JSON) Save(path string) error {
	if err := os.WriteFile(path, s.doc, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Open enters the named object. The object itself is created lazily on
// the first Set.
func (s *JSON) Open(scope string) {
	s.scope = scope
}

// Close leaves the open object.
func (s *JSON) Close() {
	s.scope = ""
}

// Get returns the text value under key, or fallback when absent.
func (s *JSON) Get(key, fallback string) string {
	if s.scope == "" {
		return fallback
	}
	result := gjson.GetBytes(s.doc, s.path(key))
	if !result.Exists() {
		return fallback
	}
	return result.String()
}

// Set stores a text value under key, creating the scope object as
// needed.
func (s *JSON) Set(key, value string) {
	if s.scope == "" {
		return
	}
	doc, err := sjson.SetBytes(s.doc, s.path(key), value)
	if err != nil {
		return
	}
	s.doc = doc
}

// path builds a gjson path for a key in the open scope. Dots inside key
// names are escaped so they address a single member rather than a
// nested one.
func (s *JSON) path(key string) string {
	return escapeDots(s.scope) + "." + escapeDots(key)
}

func escapeDots(part string) string {
	return strings.ReplaceAll(part, ".", `\.`)
}
