package catalog

import (
	"sort"
	"strings"
	"sync"
)

// IngredientCatalog is an owned per-100g reference table. Instances are
// independent, so tests and concurrent callers can each hold their own;
// lookups and writes on one instance are safe under the internal lock.
type IngredientCatalog struct {
	mu      sync.RWMutex
	entries map[string]IngredientNutrition
}

// NewIngredientCatalog returns a catalog seeded with the built-in reference
// table.
func NewIngredientCatalog() *IngredientCatalog {
	entries := make(map[string]IngredientNutrition, len(referenceTable))
	for name, n := range referenceTable {
		entries[name] = n
	}
	return &IngredientCatalog{entries: entries}
}

// Lookup resolves a free-text ingredient name. Exact case-insensitive match
// first, then a bidirectional substring match walking keys in sorted order so
// ties break deterministically.
func (c *IngredientCatalog) Lookup(name string) (IngredientNutrition, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return IngredientNutrition{}, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if n, ok := c.entries[normalized]; ok {
		return n, true
	}

	for _, key := range c.sortedKeysLocked() {
		if strings.Contains(key, normalized) || strings.Contains(normalized, key) {
			return c.entries[key], true
		}
	}

	return IngredientNutrition{}, false
}

// Add inserts or overwrites an entry, keyed by the lower-cased name. All
// subsequent lookups on this catalog see it.
func (c *IngredientCatalog) Add(name string, nutrition IngredientNutrition) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = nutrition
}

// Names returns the known ingredient names in sorted order, for autocomplete.
func (c *IngredientCatalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sortedKeysLocked()
}

// Len reports the number of entries.
func (c *IngredientCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *IngredientCatalog) sortedKeysLocked() []string {
	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		if key == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
