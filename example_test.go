package hashtable_test

import (
	"fmt"

	"github.com/llxisdsh/hashtable"
)

func ExampleHashTable() {
	h := hashtable.New[string, int]()
	h.Put("a", 1)
	h.Put("a", 2)
	v, ok := h.Get("a")
	fmt.Println(v, ok, h.Size())
	_, ok = h.Get("b")
	fmt.Println(ok)
	// Output:
	// 2 true 1
	// false
}

func ExampleNewWithCapacity() {
	h := hashtable.NewWithCapacity[int, string](10, 0.5)
	fmt.Println(h.Capacity())
	for i := 0; i < 9; i++ {
		h.Put(i, fmt.Sprint(i))
	}
	fmt.Println(h.Capacity(), h.Size())
	// Output:
	// 16
	// 32 9
}

func ExampleHashTable_Stats() {
	h := hashtable.New[int, int]()
	for i := 0; i < 13; i++ {
		h.Put(i, i*i)
	}
	fmt.Print(h.Stats())
	// Output:
	// TableStats{
	// Capacity:     32
	// Size:         13
	// Threshold:    24
	// LoadFactor:   0.75
	// EmptyBuckets: 19
	// MinChain:     1
	// MaxChain:     1
	// TotalGrowths: 1
	// }
}
