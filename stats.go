package hashtable

import (
	"fmt"
	"strings"
)

// TableStats is HashTable statistics.
//
// Warning: map statistics are intended to be used for diagnostic
// purposes, not for production code. This means that breaking changes
// may be introduced into this struct even between minor releases.
type TableStats struct {
	// Capacity is the number of slots.
	Capacity int
	// Size is the number of keys stored.
	Size int
	// Threshold is the size above which the next insert doubles the table.
	Threshold int
	// LoadFactor is the configured load factor.
	LoadFactor float64
	// EmptyBuckets is the number of slots without a chain.
	EmptyBuckets int
	// MinChain is the length of the shortest non-empty chain.
	MinChain int
	// MaxChain is the length of the longest chain.
	MaxChain int
	// TotalGrowths is the number of times the table doubled.
	TotalGrowths uint32
}

// Stats walks every slot and chain and returns the table's statistics.
// It runs in O(capacity + size).
func (h *HashTable[K, V]) Stats() *TableStats {
	stats := &TableStats{
		Capacity:     len(h.table),
		Size:         h.size,
		Threshold:    h.threshold,
		LoadFactor:   h.loadFactor,
		TotalGrowths: h.growths,
	}
	for _, head := range h.table {
		if head == nil {
			stats.EmptyBuckets++
			continue
		}
		n := 0
		for e := head; e != nil; e = e.next {
			n++
		}
		if stats.MinChain == 0 || n < stats.MinChain {
			stats.MinChain = n
		}
		stats.MaxChain = max(stats.MaxChain, n)
	}
	return stats
}

// String returns string representation of table stats.
func (s *TableStats) String() string {
	var sb strings.Builder
	sb.WriteString("TableStats{\n")
	sb.WriteString(fmt.Sprintf("Capacity:     %d\n", s.Capacity))
	sb.WriteString(fmt.Sprintf("Size:         %d\n", s.Size))
	sb.WriteString(fmt.Sprintf("Threshold:    %d\n", s.Threshold))
	sb.WriteString(fmt.Sprintf("LoadFactor:   %g\n", s.LoadFactor))
	sb.WriteString(fmt.Sprintf("EmptyBuckets: %d\n", s.EmptyBuckets))
	sb.WriteString(fmt.Sprintf("MinChain:     %d\n", s.MinChain))
	sb.WriteString(fmt.Sprintf("MaxChain:     %d\n", s.MaxChain))
	sb.WriteString(fmt.Sprintf("TotalGrowths: %d\n", s.TotalGrowths))
	sb.WriteString("}\n")
	return sb.String()
}
