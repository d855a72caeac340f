// Package keywords holds the seen-set and pending-queue shared by the
// discovery and generation loops.
package keywords

import (
	"container/list"
	"context"
	"strings"
	"sync"
)

// Key is the deduplication key of a keyword.
func Key(keyword string) string {
	return strings.ToLower(strings.Join(strings.Fields(keyword), " "))
}

// MemoryQueue is a process-local keyword queue. A keyword enters the pending
// queue at most once; it stays in the seen-set afterwards unless evicted by
// the maxSeen bound.
type MemoryQueue struct {
	mu      sync.Mutex
	maxSeen int
	seen    map[string]*list.Element
	order   *list.List // seen keys, oldest first
	pending []string
	queued  map[string]struct{}
}

// NewMemoryQueue creates a queue that remembers at most maxSeen keywords.
// Zero means the seen-set is unbounded.
func NewMemoryQueue(maxSeen int) *MemoryQueue {
	return &MemoryQueue{
		maxSeen: maxSeen,
		seen:    make(map[string]*list.Element),
		order:   list.New(),
		queued:  make(map[string]struct{}),
	}
}

func (q *MemoryQueue) Offer(_ context.Context, keyword string) (bool, error) {
	keyword = strings.TrimSpace(keyword)
	key := Key(keyword)
	if key == "" {
		return false, nil
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.seen[key]; ok {
		return false, nil
	}
	q.seen[key] = q.order.PushBack(key)
	q.pending = append(q.pending, keyword)
	q.queued[key] = struct{}{}
	q.evict()
	return true, nil
}

func (q *MemoryQueue) Poll(_ context.Context) (string, bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return "", false, nil
	}
	keyword := q.pending[0]
	q.pending[0] = ""
	q.pending = q.pending[1:]
	delete(q.queued, Key(keyword))
	return keyword, true, nil
}

func (q *MemoryQueue) Len(_ context.Context) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending), nil
}

// Seen reports how many keywords are remembered.
func (q *MemoryQueue) Seen() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.seen)
}

// evict drops the oldest seen keys that are no longer pending. Pending keys
// are never evicted, so the set may exceed maxSeen while the queue is long.
func (q *MemoryQueue) evict() {
	if q.maxSeen <= 0 {
		return
	}
	for e := q.order.Front(); e != nil && len(q.seen) > q.maxSeen; {
		next := e.Next()
		key := e.Value.(string)
		if _, pending := q.queued[key]; !pending {
			q.order.Remove(e)
			delete(q.seen, key)
		}
		e = next
	}
}
