package metrics

import "runtime"

// RuntimeStats is the process view shown next to the ring and served on
// /state.
type RuntimeStats struct {
	HeapAlloc    uint64 `json:"heapAllocBytes"`
	Sys          uint64 `json:"sysBytes"`
	NumGC        uint32 `json:"numGC"`
	NumGoroutine int    `json:"goroutines"`
}

// ReadRuntime samples the Go runtime. It stops the world briefly, so callers
// sample on a slow ticker rather than per frame.
func ReadRuntime() RuntimeStats {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return RuntimeStats{
		HeapAlloc:    ms.HeapAlloc,
		Sys:          ms.Sys,
		NumGC:        ms.NumGC,
		NumGoroutine: runtime.NumGoroutine(),
	}
}
