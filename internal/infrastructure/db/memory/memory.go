// Package memory implements the repository ports with volatile, in-process
// collections. Records live for the lifetime of the process; there is no
// durability, transaction log or rollback. Each repository guards its
// allocate-and-insert sequence (and any compound invariant scan) with its
// own mutex, since the HTTP layer serves requests concurrently.
package memory

import "time"

// collection is an insertion-ordered map of live records keyed by an
// auto-incrementing identifier. Identifiers start at 1 and are never reused,
// even after deletion. The collection itself is not synchronized; the owning
// repository holds the lock.
type collection[T any] struct {
	nextID int
	order  []int
	items  map[int]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{
		nextID: 1,
		items:  make(map[int]T),
	}
}

// list returns all live records in insertion order.
func (c *collection[T]) list() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		if item, ok := c.items[id]; ok {
			out = append(out, item)
		}
	}
	return out
}

func (c *collection[T]) get(id int) (T, bool) {
	item, ok := c.items[id]
	return item, ok
}

// insert allocates the next identifier, builds the record through build and
// stores it. The creation timestamp is stamped once here and never changes.
func (c *collection[T]) insert(build func(id int, createdAt time.Time) T) T {
	id := c.nextID
	c.nextID++
	item := build(id, time.Now().UTC())
	c.items[id] = item
	c.order = append(c.order, id)
	return item
}

// put replaces an existing record in place. It reports false when no record
// with that identifier is live.
func (c *collection[T]) put(id int, item T) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	c.items[id] = item
	return true
}

// remove hard-deletes a record. Deletion leaves the identifier retired: the
// allocator never hands it out again.
func (c *collection[T]) remove(id int) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func (c *collection[T]) size() int {
	return len(c.items)
}

// Store bundles one repository per entity kind. Construct with New at
// process start and inject into services; each instance is fully isolated,
// which keeps tests independent.
type Store struct {
	Users      *UserRepository
	Games      *GameRepository
	Navigation *NavigationRepository
	Layouts    *LayoutRepository
}

func New() *Store {
	return &Store{
		Users:      NewUserRepository(),
		Games:      NewGameRepository(),
		Navigation: NewNavigationRepository(),
		Layouts:    NewLayoutRepository(),
	}
}

// Counts reports the number of live records per collection, for the
// readiness probe.
func (s *Store) Counts() map[string]int {
	return map[string]int{
		"users":      s.Users.count(),
		"games":      s.Games.count(),
		"navigation": s.Navigation.count(),
		"layouts":    s.Layouts.count(),
	}
}
