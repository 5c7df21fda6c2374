// Package config provides the typed settings model for the ball-tracking
// application.
//
// A Value is a tagged union over a fixed set of scalar kinds (boolean,
// uint8, int32, float64). An Item names a Value and derives a canonical,
// space-free tag used as its persistence key. The Tree is the fixed
// hierarchy of all items, built once from Defaults and flattened in a
// deterministic order for load and save.
//
// # Basic Usage
//
//	tree := config.Defaults()
//
//	p := config.NewPersister(store.NewXML(), "settings.xml", "settings")
//	if err := p.Load(tree); err != nil {
//	    // defaults remain in place for anything not loaded
//	}
//
//	width, err := tree.Screen.Width.AsInt32()
//
// Items are mutated in place for the life of the process; the active kind
// of an item never changes after construction. The package is not safe
// for concurrent use: a single owner performs all reads and writes.
package config
