/*
Package hashtable provides a generic hash table with separate chaining.

Basic usage:

	h := hashtable.New[string, int]()
	h.Put("a", 1)
	h.Put("a", 2) // replaces the value, size stays 1

	if v, ok := h.Get("a"); ok {
		fmt.Println(v)
	}

	// 10 is rounded up to 16 slots; the table doubles past 8 keys
	h2 := hashtable.NewWithCapacity[int, string](10, 0.5)

Features:

  - Power-of-2 slot array indexed with a bitmask
  - Hash spreading (h ^ h>>16) so high hash bits reach small tables
  - Grow-only doubling once size exceeds capacity*loadFactor
  - Entries are relinked, not copied, when the table grows
  - The nil key of pointer, interface and channel key types is a valid key
  - Keys may provide their own hash through the Hashable interface

A HashTable has a single owner. It is not safe for concurrent use.
*/
package hashtable
