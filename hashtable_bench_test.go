package hashtable

import (
	"testing"
)

func BenchmarkHashTableGet(b *testing.B) {
	benchmarkHashTableGet(b, testData[:])
}

func BenchmarkHashTableGetInt(b *testing.B) {
	benchmarkHashTableGet(b, testDataInt[:])
}

func benchmarkHashTableGet[K comparable](b *testing.B, data []K) {
	b.ReportAllocs()
	h := New[K, int]()
	for i := range data {
		h.Put(data[i], i)
	}
	b.ResetTimer()
	i := 0
	for n := 0; n < b.N; n++ {
		_, _ = h.Get(data[i])
		i++
		if i >= len(data) {
			i = 0
		}
	}
}

func BenchmarkHashTablePut(b *testing.B) {
	benchmarkHashTablePut(b, testData[:])
}

func BenchmarkHashTablePutInt(b *testing.B) {
	benchmarkHashTablePut(b, testDataInt[:])
}

func benchmarkHashTablePut[K comparable](b *testing.B, data []K) {
	b.ReportAllocs()
	h := New[K, int]()
	b.ResetTimer()
	i := 0
	for n := 0; n < b.N; n++ {
		h.Put(data[i], n)
		i++
		if i >= len(data) {
			i = 0
		}
	}
}

func BenchmarkHashTableFill(b *testing.B) {
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		h := New[int, int]()
		for i := 0; i < 1<<16; i++ {
			h.Put(i, i)
		}
	}
}

func BenchmarkBuiltinMapGet(b *testing.B) {
	b.ReportAllocs()
	m := make(map[string]int)
	for i := range testData {
		m[testData[i]] = i
	}
	b.ResetTimer()
	i := 0
	for n := 0; n < b.N; n++ {
		_ = m[testData[i]]
		i++
		if i >= len(testData) {
			i = 0
		}
	}
}
