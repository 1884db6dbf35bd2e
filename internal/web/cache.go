package web

import (
	"sync"

	"github.com/username/leave-planner/internal/report"
)

// summaryCache memoizes summaries by leave count. Summaries do not depend on
// the display language, so a language switch reuses the cached entry.
type summaryCache struct {
	mu      sync.RWMutex
	entries map[int]*report.Summary
}

func newSummaryCache() *summaryCache {
	return &summaryCache{entries: make(map[int]*report.Summary)}
}

func (c *summaryCache) get(maxLeaves int) (*report.Summary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.entries[maxLeaves]
	return s, ok
}

// getOrBuild returns the cached summary or builds and stores it
func (c *summaryCache) getOrBuild(maxLeaves int, build func(int) (*report.Summary, error)) (*report.Summary, error) {
	if s, ok := c.get(maxLeaves); ok {
		return s, nil
	}

	s, err := build(maxLeaves)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[maxLeaves]; ok {
		return existing, nil
	}
	c.entries[maxLeaves] = s
	return s, nil
}

func (c *summaryCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
