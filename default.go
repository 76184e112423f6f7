package xtee

import (
	"sort"
	"sync"
)

// BackendFactory builds an Adapter from a normalized, validated Config.
type BackendFactory func(cfg Config) (Adapter, error)

var (
	backendsMu sync.RWMutex
	backends   = map[string]BackendFactory{}
)

// RegisterBackend makes a backend available to Config.Backend.
// Adapter packages call this from init() to avoid import cycles:
//
//	func init() {
//	  xtee.RegisterBackend("zap", func(cfg xtee.Config) (xtee.Adapter, error) {
//	    return zapadapter.Build(cfg)
//	  })
//	}
func RegisterBackend(name string, f BackendFactory) {
	if name == "" || f == nil {
		panic("xtee: RegisterBackend requires a name and a factory")
	}
	backendsMu.Lock()
	defer backendsMu.Unlock()
	backends[name] = f
}

// Backends lists the registered backend names, sorted.
func Backends() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	out := make([]string, 0, len(backends))
	for name := range backends {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func lookupBackend(name string) (BackendFactory, bool) {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	f, ok := backends[name]
	return f, ok
}
