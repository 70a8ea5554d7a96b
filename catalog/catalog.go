// Package catalog is an in-memory, thread-safe registry of named scenario
// definitions. The CLI seeds it with the built-in scenarios; callers embedding
// the simulator can register their own.
package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/DChenet/sec-cost-simulator2/core"
	"github.com/DChenet/sec-cost-simulator2/model"
)

// Catalog stores scenario definitions by name.
type Catalog struct {
	mu        sync.RWMutex
	scenarios map[string]*model.ScenarioDefinition
}

// New constructs an empty catalog.
func New() *Catalog {
	return &Catalog{scenarios: make(map[string]*model.ScenarioDefinition)}
}

// Register adds a definition under its name. It returns an error for unnamed
// definitions and for names that already exist.
func (c *Catalog) Register(def *model.ScenarioDefinition) error {
	if def == nil || def.Name == "" {
		return fmt.Errorf("catalog: scenario definition without a name")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.scenarios[def.Name]; exists {
		return fmt.Errorf("catalog: scenario %q already registered", def.Name)
	}
	c.scenarios[def.Name] = def
	return nil
}

// Get returns the definition registered under name, or nil if not found.
func (c *Catalog) Get(name string) *model.ScenarioDefinition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scenarios[name]
}

// Names returns the sorted names of all registered scenarios.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.scenarios))
	for name := range c.scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build looks up a definition and converts it into a runnable scenario.
func (c *Catalog) Build(name string) (*core.Scenario, error) {
	def := c.Get(name)
	if def == nil {
		return nil, fmt.Errorf("catalog: unknown scenario %q (available: %v)", name, c.Names())
	}
	return core.BuildScenario(def)
}
