package command

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Caching memoises results by argv for the lifetime of a single run, so tools
// queried by more than one collector (smartctl against the internal disk) are
// executed once.
type Caching struct {
	next Runner

	mu      sync.Mutex
	results map[string]Result
}

// NewCaching wraps next with a per-run result cache.
func NewCaching(next Runner) *Caching {
	return &Caching{
		next:    next,
		results: make(map[string]Result),
	}
}

// Run returns the cached result for an identical invocation, or runs it.
func (c *Caching) Run(ctx context.Context, timeout time.Duration, name string, args ...string) Result {
	key := cacheKey(name, args)

	c.mu.Lock()
	defer c.mu.Unlock()

	if res, ok := c.results[key]; ok {
		return res
	}
	res := c.next.Run(ctx, timeout, name, args...)
	c.results[key] = res
	return res
}

func cacheKey(name string, args []string) string {
	return name + "\x00" + strings.Join(args, "\x00")
}
