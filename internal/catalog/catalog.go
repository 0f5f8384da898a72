// Package catalog persists the set of render components known to the host:
// the built-in ones plus any contributed by matcher plugins. The CLI uses it
// to list and toggle components between sessions.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/conversive/chatmatch/internal/matcher"
)

// Catalog manages component catalog persistence.
type Catalog struct {
	path       string
	mu         sync.RWMutex
	version    string
	components []Component
}

// New creates a Catalog instance and loads it from disk. A missing file
// starts an empty catalog; a corrupt file is backed up and replaced rather
// than blocking the CLI.
func New(path string) (*Catalog, error) {
	c := &Catalog{
		path:    path,
		version: "1.0",
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create catalog directory: %w", err)
	}

	if err := c.Load(); err != nil {
		if os.IsNotExist(err) {
			c.components = []Component{}
			return c, nil
		}
		// Corrupt catalog: keep the broken file aside and start fresh.
		if renameErr := os.Rename(path, path+".corrupt"); renameErr != nil {
			return nil, err
		}
		c.components = []Component{}
	}

	return c, nil
}

// Load reads the catalog from disk.
func (c *Catalog) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		return err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse catalog: %w", err)
	}

	c.version = file.Version
	c.components = file.Components

	return nil
}

// Save writes the catalog to disk atomically.
func (c *Catalog) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	file := File{
		Version:    c.version,
		Components: c.components,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	tmpPath := c.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, c.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// List returns all cataloged components.
func (c *Catalog) List() []Component {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]Component, len(c.components))
	copy(result, c.components)
	return result
}

// Get retrieves a component by name.
func (c *Catalog) Get(name string) (Component, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, component := range c.components {
		if component.Name == name {
			return component, nil
		}
	}

	return Component{}, fmt.Errorf("component not found: %s", name)
}

// Add adds a new component to the catalog.
func (c *Catalog) Add(component Component) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.components {
		if existing.Name == component.Name {
			return fmt.Errorf("component %s already cataloged", component.Name)
		}
	}

	c.components = append(c.components, component)
	return nil
}

// Update replaces an existing component entry.
func (c *Catalog) Update(component Component) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.components {
		if existing.Name == component.Name {
			c.components[i] = component
			return nil
		}
	}

	return fmt.Errorf("component not found: %s", component.Name)
}

// Remove removes a component from the catalog. Built-in components cannot
// be removed, only disabled.
func (c *Catalog) Remove(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, component := range c.components {
		if component.Name != name {
			continue
		}
		if component.Kind == KindBuiltin {
			return fmt.Errorf("component %s is builtin and cannot be removed", name)
		}
		c.components = append(c.components[:i], c.components[i+1:]...)
		return nil
	}

	return fmt.Errorf("component not found: %s", name)
}

// SeedBuiltins adds catalog entries for the built-in matcher rules that are
// not yet present. Existing entries keep their enabled state.
func (c *Catalog) SeedBuiltins(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	known := make(map[string]struct{}, len(c.components))
	for _, component := range c.components {
		known[component.Name] = struct{}{}
	}

	for _, rule := range matcher.BuiltinRules() {
		if _, exists := known[rule.Component]; exists {
			continue
		}
		c.components = append(c.components, Component{
			Name:         rule.Component,
			Rule:         rule.Name,
			Kind:         KindBuiltin,
			Enabled:      true,
			RegisteredAt: now,
		})
	}
}
