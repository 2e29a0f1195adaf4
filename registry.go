package dialect

import (
	"sort"
	"strings"
	"sync"
)

// Platform registry. Platform packages register themselves from their
// init() functions; the generic layer selects by name.
var (
	platformsMu sync.RWMutex
	platforms   = make(map[string]Platform)
)

// Register adds a platform to the global registry, keyed by its lower-cased
// name. Later registrations with the same name replace earlier ones.
func Register(p Platform) {
	platformsMu.Lock()
	defer platformsMu.Unlock()
	platforms[strings.ToLower(p.Name())] = p
}

// Get returns a platform by name.
func Get(name string) (Platform, bool) {
	platformsMu.RLock()
	defer platformsMu.RUnlock()
	p, ok := platforms[strings.ToLower(name)]
	return p, ok
}

// List returns all registered platform names (sorted).
func List() []string {
	platformsMu.RLock()
	defer platformsMu.RUnlock()
	names := make([]string, 0, len(platforms))
	for name := range platforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
