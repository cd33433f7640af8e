package storage

import (
	"maps"
	"slices"
	"sync"
)

type notifier struct {
	mu        sync.RWMutex
	listeners map[int]func(Event)
	next      int
}

func (n *notifier) Subscribe(fn func(Event)) func() {
	n.mu.Lock()
	if n.listeners == nil {
		n.listeners = make(map[int]func(Event))
	}
	id := n.next
	n.next++
	n.listeners[id] = fn
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.listeners, id)
			n.mu.Unlock()
		})
	}
}

// notify calls listeners in subscription order without holding the lock, so
// a listener may subscribe, unsubscribe or write back into the storage.
func (n *notifier) notify(ev Event) {
	n.mu.RLock()
	ids := slices.Sorted(maps.Keys(n.listeners))
	fns := make([]func(Event), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, n.listeners[id])
	}
	n.mu.RUnlock()

	for _, fn := range fns {
		fn(ev)
	}
}
