package engine

import (
	"sync"
	"sync/atomic"

	"github.com/dop251/goja"
)

// DefaultCacheEntries is the number of compiled scripts kept when no limit is configured.
const DefaultCacheEntries = 4

// ScriptKey identifies one revision of a compiler script.
type ScriptKey struct {
	Name    string
	Size    int64
	ModTime int64
}

type scriptEntry struct {
	key  ScriptKey
	prog *goja.Program
	prev *scriptEntry
	next *scriptEntry
}

// ScriptCache is a thread-safe LRU of compiled scripts. A compiled
// [goja.Program] can be run by any number of runtimes, so workers that each
// own an engine share one compilation of the (large) compiler script.
type ScriptCache struct {
	mu         sync.Mutex
	entries    map[ScriptKey]*scriptEntry
	head       *scriptEntry // Most recently used.
	tail       *scriptEntry // Least recently used.
	maxEntries int

	hits   atomic.Int64
	misses atomic.Int64
}

// CacheStats holds cache counters.
type CacheStats struct {
	Hits    int64
	Misses  int64
	Entries int
}

// NewScriptCache creates a cache holding at most maxEntries programs.
func NewScriptCache(maxEntries int) *ScriptCache {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheEntries
	}

	return &ScriptCache{
		entries:    make(map[ScriptKey]*scriptEntry),
		maxEntries: maxEntries,
	}
}

// Compile returns the cached program for key, compiling src on a miss.
func (c *ScriptCache) Compile(key ScriptKey, src string) (*goja.Program, error) {
	if prog, ok := c.get(key); ok {
		return prog, nil
	}

	prog, err := goja.Compile(key.Name, src, false)
	if err != nil {
		return nil, err
	}

	c.put(key, prog)

	return prog, nil
}

// Stats returns the current counters.
func (c *ScriptCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: len(c.entries),
	}
}

func (c *ScriptCache) get(key ScriptKey) (*goja.Program, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)

		return nil, false
	}

	c.hits.Add(1)
	c.moveToFront(ent)

	return ent.prog, true
}

func (c *ScriptCache) put(key ScriptKey, prog *goja.Program) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.entries[key]; ok {
		ent.prog = prog
		c.moveToFront(ent)

		return
	}

	for len(c.entries) >= c.maxEntries && c.tail != nil {
		victim := c.tail
		c.removeFromList(victim)
		delete(c.entries, victim.key)
	}

	ent := &scriptEntry{key: key, prog: prog}
	c.entries[key] = ent
	c.addToFront(ent)
}

func (c *ScriptCache) moveToFront(ent *scriptEntry) {
	if ent == c.head {
		return
	}

	c.removeFromList(ent)
	c.addToFront(ent)
}

func (c *ScriptCache) addToFront(ent *scriptEntry) {
	ent.prev = nil
	ent.next = c.head

	if c.head != nil {
		c.head.prev = ent
	}

	c.head = ent

	if c.tail == nil {
		c.tail = ent
	}
}

func (c *ScriptCache) removeFromList(ent *scriptEntry) {
	if ent.prev != nil {
		ent.prev.next = ent.next
	} else {
		c.head = ent.next
	}

	if ent.next != nil {
		ent.next.prev = ent.prev
	} else {
		c.tail = ent.prev
	}
}
