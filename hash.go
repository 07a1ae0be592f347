package hashtable

import (
	"hash/maphash"
	"math/bits"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Hashable is implemented by key types that supply their own hash code.
// Keys that compare equal with == must return the same HashCode.
type Hashable interface {
	HashCode() uint32
}

// hashFunc computes the raw (unspread) hash of a key.
type hashFunc[K comparable] func(key K, seed maphash.Seed) uint32

// defaultHasher picks the raw hash function for K and reports whether K
// has a nil value that must be treated as the null key.
func defaultHasher[K comparable]() (keyHash hashFunc[K], nullable bool) {
	kt := reflect.TypeFor[K]()
	switch kt.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.UnsafePointer:
		nullable = true
	}

	if kt.Implements(reflect.TypeFor[Hashable]()) {
		return func(key K, _ maphash.Seed) uint32 {
			return any(key).(Hashable).HashCode()
		}, nullable
	}

	switch kt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(key K, _ maphash.Seed) uint32 {
			return fold64(uint64(reflect.ValueOf(key).Int()))
		}, nullable
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(key K, _ maphash.Seed) uint32 {
			return fold64(reflect.ValueOf(key).Uint())
		}, nullable
	case reflect.String:
		return func(key K, _ maphash.Seed) uint32 {
			return fold64(xxhash.Sum64String(reflect.ValueOf(key).String()))
		}, nullable
	}

	return func(key K, seed maphash.Seed) uint32 {
		return fold64(maphash.Comparable(seed, key))
	}, nullable
}

// fold64 folds a 64-bit hash into 32 bits so the upper word still
// influences the bucket index.
func fold64(h uint64) uint32 {
	return uint32(h ^ h>>32)
}

// spread XORs the high half of the hash into the low half. Indexing only
// looks at the low bits, so hashes whose variance sits in the high bits
// would otherwise cluster in small tables.
func spread(h uint32) uint32 {
	return h ^ (h >> 16)
}

// indexFor maps a spread hash onto a table of length n.
// n must be a power of 2.
func indexFor(h uint32, n int) int {
	return int(h & uint32(n-1))
}

// nextPowOf2 calculates the smallest power of 2 that is greater than or equal to n.
// Compatible with both 32-bit and 64-bit systems.
func nextPowOf2(n int) int {
	if n <= 1 {
		return 1
	}
	if bits.UintSize == 32 {
		return int(1 << bits.Len32(uint32(n-1)))
	}
	return int(1 << bits.Len64(uint64(n-1)))
}
