package common

import (
	"fmt"
	"runtime"
)

// MemoryStats is the slice of runtime.MemStats a sort benchmark cares about.
type MemoryStats struct {
	HeapAlloc  uint64 `json:"heap_alloc" yaml:"heap_alloc"`
	TotalAlloc uint64 `json:"total_alloc" yaml:"total_alloc"` // cumulative bytes allocated
	Mallocs    uint64 `json:"mallocs" yaml:"mallocs"`
	NumGC      uint32 `json:"num_gc" yaml:"num_gc"`
}

// GetMemoryStats returns current memory statistics.
func GetMemoryStats() MemoryStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemoryStats{
		HeapAlloc:  m.HeapAlloc,
		TotalAlloc: m.TotalAlloc,
		Mallocs:    m.Mallocs,
		NumGC:      m.NumGC,
	}
}

// AllocatedSince returns the bytes allocated between before and m.
// TotalAlloc only grows, so this never underflows for ordered snapshots.
func (m MemoryStats) AllocatedSince(before MemoryStats) uint64 {
	if m.TotalAlloc < before.TotalAlloc {
		return 0
	}
	return m.TotalAlloc - before.TotalAlloc
}

// String returns a formatted string representation of memory stats.
func (m MemoryStats) String() string {
	return fmt.Sprintf("Heap: %d KB, Total: %d KB, Mallocs: %d, GC: %d",
		m.HeapAlloc/1024,
		m.TotalAlloc/1024,
		m.Mallocs,
		m.NumGC)
}
