package store

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// XML is a Store backed by a tagged-markup document. It mirrors the
// settings.xml layout of the original rig: one root element per scope,
// one child element per key.
type XML struct {
	root *xmlElement
	open *xmlElement
}

// xmlElement is one node of the document tree. Leaf nodes carry text;
// scope nodes carry children.
type xmlElement struct {
	XMLName  xml.Name
	Children []*xmlElement `xml:",any"`
	Text     string        `xml:",chardata"`
}

// NewXML returns an empty XML store.
func NewXML() *XML {
	return &XML{}
}

// Load reads the document from disk. A missing file yields an empty
// document.
func (s *XML) Load(path string) error {
	s.root = nil
	s.open = nil

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var root xmlElement
	if err := xml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	normalize(&root)
	s.root = &root
	return nil
}

// Save writes the document to disk.
func (s *XML) Save(path string) error {
	var body []byte
	if s.root != nil {
		var err error
		body, err = xml.MarshalIndent(s.root, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding document: %w", err)
		}
	}

	data := append([]byte(xml.Header), body...)
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Open enters the named root scope, creating it if absent. The document
// holds a single root, so a created scope replaces whatever root Load
// produced and is what Save writes.
func (s *XML) Open(scope string) {
	if s.root != nil && s.root.XMLName.Local == scope {
		s.open = s.root
		return
	}
	s.root = &xmlElement{XMLName: xml.Name{Local: scope}}
	s.open = s.root
}

// Close leaves the open scope.
func (s *XML) Close() {
	s.open = nil
}

// Get returns the text of the child element named key, or fallback when
// no such element exists.
func (s *XML) Get(key, fallback string) string {
	if s.open == nil {
		return fallback
	}
	for _, child := range s.open.Children {
		if child.XMLName.Local == key {
			return child.Text
		}
	}
	return fallback
}

// Set replaces the text of the child element named key, appending a new
// element when absent.
func (s *XML) Set(key, value string) {
	if s.open == nil {
		return
	}
	for _, child := range s.open.Children {
		if child.XMLName.Local == key {
			child.Text = value
			return
		}
	}
	s.open.Children = append(s.open.Children, &xmlElement{
		XMLName: xml.Name{Local: key},
		Text:    value,
	})
}

// normalize strips the indentation whitespace that element chardata
// collects during decoding. Elements with children carry no text of
// their own.
func normalize(el *xmlElement) {
	if len(el.Children) > 0 {
		el.Text = ""
		for _, child := range el.Children {
			normalize(child)
		}
		return
	}
	el.Text = strings.TrimSpace(el.Text)
}
