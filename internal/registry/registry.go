// Package registry holds the presentation backends a session can run on.
// Backends register themselves in init() functions, so the CLI can offer them
// by name without importing each one explicitly.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/riverraid/internal/session"
)

// SessionFactory builds a session once the backend knows its screen size.
type SessionFactory func(cols, rows int) (*session.Controller, error)

// Launcher runs one complete session, banners included, and blocks until it ends.
type Launcher func(ctx context.Context, newSession SessionFactory) (session.Result, error)

// BackendInfo describes a registered backend.
type BackendInfo struct {
	Name        string
	Description string
}

type entry struct {
	info   BackendInfo
	launch Launcher
}

var (
	backends = make(map[string]entry)
	mu       sync.RWMutex
)

// Register adds a backend. Panics if the name is taken.
func Register(name, description string, l Launcher) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := backends[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}
	backends[name] = entry{
		info:   BackendInfo{Name: name, Description: description},
		launch: l,
	}
}

// List returns all registered backends sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(backends))
	for _, e := range backends {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Lookup returns the launcher registered under name.
func Lookup(name string) (Launcher, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}
	return e.launch, nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := backends[name]
	return ok
}
