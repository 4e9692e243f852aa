package dialect

import (
	"sort"
	"sync"

	"github.com/pseudomuto/sqlfmt/pkg/tokenizer"
)

// Dialect bundles the tokenizer configuration for one SQL dialect. It is
// pure data with no database driver dependencies, so tools that only need
// dialect information never pay for a connection stack.
type Dialect struct {
	// Name identifies the dialect in configuration and on the CLI.
	Name string

	// Tokenizer is the keyword/lexing configuration consumed by the
	// tokenizer package.
	Tokenizer tokenizer.Config
}

var (
	mu       sync.RWMutex
	registry = map[string]*Dialect{}
)

// Register adds a dialect to the process-wide registry. Built-in dialects
// register themselves from init; later registrations with the same name
// replace earlier ones.
func Register(d *Dialect) {
	mu.Lock()
	defer mu.Unlock()
	registry[d.Name] = d
}

// Get returns the named dialect, or nil if no such dialect is registered.
func Get(name string) *Dialect {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// Names returns the registered dialect names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
