// plugins/objectcount/objectcount.go
package objectcount

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/bethropolis/worldedit/internal/event"
	"github.com/bethropolis/worldedit/internal/plugin"
)

// Ensure ObjectCount implements plugin.Plugin
var _ plugin.Plugin = (*ObjectCount)(nil)

// ObjectCount reports how many objects the world holds, per kind, and how
// many were added and removed during this session.
type ObjectCount struct {
	api plugin.EditorAPI

	mu      sync.Mutex
	added   int
	removed int
}

// New creates a new instance of the ObjectCount plugin.
func New() *ObjectCount {
	return &ObjectCount{}
}

// Name returns the unique name of the plugin.
func (p *ObjectCount) Name() string {
	return "objectcount"
}

// Initialize registers the :count command and tracks object churn.
func (p *ObjectCount) Initialize(api plugin.EditorAPI) error {
	p.api = api
	api.SubscribeEvent(event.TypeObjectAdded, func(event.Event) bool {
		p.mu.Lock()
		p.added++
		p.mu.Unlock()
		return false
	})
	api.SubscribeEvent(event.TypeObjectRemoved, func(event.Event) bool {
		p.mu.Lock()
		p.removed++
		p.mu.Unlock()
		return false
	})
	if err := api.RegisterCommand("count", p.executeCount); err != nil {
		return fmt.Errorf("failed to register 'count' command: %w", err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed).
func (p *ObjectCount) Shutdown() error {
	return nil
}

// Summary formats the counts shown by :count.
func (p *ObjectCount) Summary() string {
	byKind := p.api.ObjectCountByKind()
	kinds := make([]string, 0, len(byKind))
	for k := range byKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%s: %d", k, byKind[k]))
	}

	p.mu.Lock()
	added, removed := p.added, p.removed
	p.mu.Unlock()

	msg := fmt.Sprintf("Objects: %d", p.api.ObjectCount())
	if len(parts) > 0 {
		msg += " (" + strings.Join(parts, ", ") + ")"
	}
	return msg + fmt.Sprintf(", session +%d -%d", added, removed)
}

func (p *ObjectCount) executeCount(args []string) error {
	if p.api == nil {
		return fmt.Errorf("objectcount plugin not initialized with API")
	}
	p.api.SetStatusMessage("%s", p.Summary())
	return nil
}
