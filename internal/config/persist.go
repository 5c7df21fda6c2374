package config

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/balltrack/cfgmenu/internal/config/store"
)

// Default persistence location, matching the original rig.
const (
	DefaultPath  = "settings.xml"
	DefaultScope = "settings"
)

// Persister moves a Tree in and out of a structured store. Both Load
// and Save bracket a single root scope in the store and leave it closed
// afterwards.
type Persister struct {
	store store.Store
	path  string
	scope string
	log   *zap.SugaredLogger
}

// NewPersister returns a persister over the given store, file path, and
// root scope name.
func NewPersister(st store.Store, path, scope string) *Persister {
	return &Persister{
		store: st,
		path:  path,
		scope: scope,
		log:   zap.NewNop().Sugar(),
	}
}

// WithLogger attaches a logger for load/save reporting.
func (p *Persister) WithLogger(log *zap.SugaredLogger) *Persister {
	p.log = log
	return p
}

// Load overrides tree items with any values present in the store. Items
// whose tag is absent keep their current value, so a default tree loads
// as "default, then override with anything present". A missing backing
// file leaves the whole tree untouched.
func (p *Persister) Load(tree *Tree) error {
	if err := p.store.Load(p.path); err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	p.store.Open(p.scope)
	defer p.store.Close()

	loaded := 0
	for _, item := range tree.Flatten() {
		text := p.store.Get(item.Tagname(), item.String())
		if item.SetString(text) {
			loaded++
		} else {
			p.log.Warnw("ignoring malformed setting",
				"tag", item.Tagname(), "kind", item.Kind(), "text", text)
		}
	}

	p.log.Debugw("settings loaded", "path", p.path, "items", loaded)
	return nil
}

// Save writes every tree item to the store under its tagname,
// overwriting prior values, and flushes the store to disk.
func (p *Persister) Save(tree *Tree) error {
	p.store.Open(p.scope)
	defer p.store.Close()

	items := tree.Flatten()
	for _, item := range items {
		p.store.Set(item.Tagname(), item.String())
	}

	if err := p.store.Save(p.path); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	p.log.Debugw("settings saved", "path", p.path, "items", len(items))
	return nil
}
