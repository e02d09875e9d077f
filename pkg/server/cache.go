package server

import (
	"sync"

	"github.com/yurifrl/overdraft/pkg/models"
)

// reportCache holds processed reports by download name. Once full, storing
// a new name evicts the oldest one.
type reportCache struct {
	mu      sync.Mutex
	size    int
	order   []string
	reports map[string]*models.Report
}

func newReportCache(size int) *reportCache {
	return &reportCache{
		size:    size,
		reports: make(map[string]*models.Report, size),
	}
}

// Store saves rep under name. Re-storing a name makes it the newest entry.
func (c *reportCache) Store(name string, rep *models.Report) (evicted []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.reports[name]; ok {
		for i, n := range c.order {
			if n == name {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
	}
	c.reports[name] = rep
	c.order = append(c.order, name)

	for len(c.order) > c.size {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.reports, oldest)
		evicted = append(evicted, oldest)
	}
	return evicted
}

func (c *reportCache) Load(name string) (*models.Report, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rep, ok := c.reports[name]
	return rep, ok
}

func (c *reportCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.reports)
}
