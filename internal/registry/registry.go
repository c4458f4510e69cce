// Package registry provides a global registry for solver factories.
// Solvers register themselves in init() functions, allowing the platform
// to discover and instantiate them by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/mines"
)

// Solver is the interface every move-selection strategy implements.
// Solvers only read the player's view; the platform applies the move.
type Solver interface {
	// Name returns the unique identifier used on the command line and in
	// stored results (e.g., "probability").
	Name() string

	// Next returns the cell to open, or false if no unopened cell remains.
	Next(v mines.View) (core.Move, bool)
}

// Info contains metadata about a registered solver.
type Info struct {
	Name        string
	Description string
}

// Factory creates a solver. Randomized solvers draw from seed.
type Factory func(seed int64) Solver

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a solver factory to the registry.
// Panics if a solver with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: solver %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = description
}

// List returns information about all registered solvers, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for name := range factories {
		result = append(result, Info{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a solver by name.
// Returns an error if the name is not registered.
func Create(name string, seed int64) (Solver, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown solver %q", name)
	}

	return f(seed), nil
}

// Exists checks if a solver with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
