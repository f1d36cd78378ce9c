// Package registry provides a global registry for pointer source factories.
// Sources register themselves in init() functions, so the platform can
// discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-fireworks/internal/core"
)

// Source moves the spawn anchor that stars appear at.
// Sources hold pure logic with no terminal dependencies; the platform
// feeds them input and time. All coordinates are pixels.
type Source interface {
	// ID returns a unique identifier (e.g., "mouse", "orbit").
	// Used for CLI arguments.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset places the source inside bounds. seed drives any randomness.
	Reset(bounds core.Box, seed int64)

	// Step advances the source by elapsedMs milliseconds.
	Step(elapsedMs float64, bounds core.Box)

	// MoveTo reports where the user pointed. Autonomous sources may ignore it.
	MoveTo(p core.Vector)

	// Position returns the current anchor.
	Position() core.Vector
}

// SourceInfo contains metadata about a registered source.
type SourceInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a source.
type Factory func() Source

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a source factory to the registry.
// Panics if a source with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: source %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered sources, sorted by ID.
func List() []SourceInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SourceInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SourceInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new source by its ID.
func Create(id string) (Source, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown pointer source %q", id)
	}
	return f(), nil
}

// Exists checks if a source with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
