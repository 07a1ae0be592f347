package hashtable

import (
	"hash/maphash"
	"unsafe"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Map is the container contract implemented by HashTable.
type Map[K comparable, V any] interface {
	// Put maps key to value, replacing the value of an equal key.
	Put(key K, value V)
	// Get returns the value mapped to key and whether it was present.
	Get(key K) (V, bool)
	// Size returns the number of distinct keys stored.
	Size() int
}

// HashTable is a generic hash table with separate chaining.
//
// Each slot of a power-of-2 sized array owns a singly linked chain of
// entries. The table doubles once the number of keys exceeds
// capacity*loadFactor; it never shrinks. Entries keep their identity across
// growth: they are relinked into the new array rather than copied.
//
// For pointer, interface and channel key types the nil key is a valid key.
// It hashes to 0 and at most one nil-keyed entry exists at a time.
//
// HashTable is not safe for concurrent use. It assumes a single owner, and
// must not be copied after first use.
type HashTable[K comparable, V any] struct {
	_ [(CacheLineSize - unsafe.Sizeof(struct {
		_          noCopy
		table      []unsafe.Pointer
		keyHash    func()
		seed       maphash.Seed
		size       int
		threshold  int
		loadFactor float64
		growths    uint32
		nullable   bool
		logger     log.Logger
	}{})%CacheLineSize) % CacheLineSize]byte

	_          noCopy
	table      []*entry[K, V]
	keyHash    hashFunc[K]
	seed       maphash.Seed
	size       int
	threshold  int
	loadFactor float64
	growths    uint32
	nullable   bool
	logger     log.Logger
}

// entry is a chain node. key is never reassigned once the entry exists;
// hash is the spread hash computed on insert and reused when the table
// grows.
type entry[K comparable, V any] struct {
	key   K
	value V
	hash  uint32
	next  *entry[K, V]
}

var _ Map[string, int] = (*HashTable[string, int])(nil)

// New creates an empty HashTable with DefaultCapacity and
// DefaultLoadFactor, unless overridden by options.
func New[K comparable, V any](options ...Option) *HashTable[K, V] {
	var cfg Config
	for _, opt := range options {
		opt(&cfg)
	}
	return newHashTable[K, V](cfg)
}

// NewWithCapacity creates an empty HashTable sized for initialCapacity
// slots (rounded up to a power of 2) that grows once the key count exceeds
// capacity*loadFactor.
//
// Non-positive arguments silently select the defaults. Options are applied
// after the positional arguments.
func NewWithCapacity[K comparable, V any](
	initialCapacity int,
	loadFactor float64,
	options ...Option,
) *HashTable[K, V] {
	cfg := Config{
		Capacity:   initialCapacity,
		LoadFactor: loadFactor,
	}
	for _, opt := range options {
		opt(&cfg)
	}
	return newHashTable[K, V](cfg)
}

func newHashTable[K comparable, V any](cfg Config) *HashTable[K, V] {
	cfg.normalize()
	capacity := nextPowOf2(cfg.Capacity)
	h := &HashTable[K, V]{
		table:      make([]*entry[K, V], capacity),
		seed:       maphash.MakeSeed(),
		threshold:  thresholdFor(capacity, cfg.LoadFactor),
		loadFactor: cfg.LoadFactor,
		logger:     cfg.Logger,
	}
	h.keyHash, h.nullable = defaultHasher[K]()
	return h
}

// hash returns the spread hash of key. The nil key of a nillable key
// type hashes to 0.
func (h *HashTable[K, V]) hash(key K) uint32 {
	if h.nullable && key == *new(K) {
		return 0
	}
	return spread(h.keyHash(key, h.seed))
}

// Put maps key to value. If an equal key is already present its value is
// replaced in place and the size is unchanged; otherwise a new entry is
// appended to the end of the key's chain and the table grows if the size
// now exceeds the threshold.
func (h *HashTable[K, V]) Put(key K, value V) {
	hash := h.hash(key)
	idx := indexFor(hash, len(h.table))

	var last *entry[K, V]
	for e := h.table[idx]; e != nil; e = e.next {
		if e.hash == hash && e.key == key {
			e.value = value
			return
		}
		last = e
	}

	e := &entry[K, V]{key: key, value: value, hash: hash}
	if last == nil {
		h.table[idx] = e
	} else {
		last.next = e
	}
	h.size++

	if h.size > h.threshold {
		h.grow()
	}
}

// Get returns the value mapped to key. The ok result reports whether the
// key was present; a missing key yields the zero value of V.
func (h *HashTable[K, V]) Get(key K) (value V, ok bool) {
	hash := h.hash(key)
	for e := h.table[indexFor(hash, len(h.table))]; e != nil; e = e.next {
		if e.hash == hash && e.key == key {
			return e.value, true
		}
	}
	return
}

// Size returns the number of distinct keys in the table.
func (h *HashTable[K, V]) Size() int {
	return h.size
}

// Capacity returns the current number of slots. It is always a power of 2.
func (h *HashTable[K, V]) Capacity() int {
	return len(h.table)
}

// grow doubles the slot array. Every entry is pushed onto the head of its
// chain in the new array, so chain order is reversed relative to the old
// traversal.
func (h *HashTable[K, V]) grow() {
	oldTable := h.table
	newTable := make([]*entry[K, V], len(oldTable)<<1)
	for i := range oldTable {
		for e := oldTable[i]; e != nil; {
			next := e.next
			idx := indexFor(e.hash, len(newTable))
			e.next = newTable[idx]
			newTable[idx] = e
			e = next
		}
		oldTable[i] = nil
	}
	h.table = newTable
	h.threshold = thresholdFor(len(newTable), h.loadFactor)
	h.growths++

	level.Debug(h.logger).Log(
		"msg", "hash table grown",
		"old_capacity", len(oldTable),
		"new_capacity", len(newTable),
		"size", h.size,
		"threshold", h.threshold,
	)
}
