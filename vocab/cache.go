package vocab

import (
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/tunesmith/model"
	log "github.com/sirupsen/logrus"
)

type BuildFunc func() (model.Vocabulary, model.BuildReport)

// Cache holds one built vocabulary for reuse across generation calls. A new
// vocabulary is built completely before it replaces the old one, so readers never see
// a partial result. The published slice must be treated as read-only.
type Cache struct {
	build    BuildFunc
	debounce func(f func())

	mu     sync.RWMutex
	vocab  model.Vocabulary
	report model.BuildReport
	built  bool
}

// NewCache builds lazily on first Get. Invalidate calls arriving within delay of each
// other collapse into a single rebuild.
func NewCache(build BuildFunc, delay time.Duration) *Cache {
	return &Cache{
		build:    build,
		debounce: debounce.New(delay),
	}
}

func (c *Cache) Get() (model.Vocabulary, model.BuildReport) {
	c.mu.RLock()
	if c.built {
		defer c.mu.RUnlock()
		return c.vocab, c.report
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.built {
		c.vocab, c.report = c.build()
		c.built = true
	}
	return c.vocab, c.report
}

// Reload rebuilds now and publishes the result.
func (c *Cache) Reload() model.BuildReport {
	v, report := c.build()

	c.mu.Lock()
	c.vocab, c.report, c.built = v, report, true
	c.mu.Unlock()

	log.WithFields(log.Fields{
		"tokens":  len(v),
		"skipped": report.Skipped,
	}).Info("Vocabulary reloaded")
	return report
}

// Invalidate schedules a debounced Reload.
func (c *Cache) Invalidate() {
	c.debounce(func() { c.Reload() })
}
