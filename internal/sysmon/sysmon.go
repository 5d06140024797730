// Package sysmon samples system-wide CPU and memory use for the stats
// panel, the debug snapshot and the metrics endpoint.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds one system-wide reading, in percent.
type Stats struct {
	CPUPercent float64 `json:"cpuPercent"`
	MemPercent float64 `json:"memPercent"`
}

// Sample reads system CPU and memory use. CPU is measured since the
// previous call (interval 0), so the first call may report zero. A reading
// that fails is left at zero.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = clampPercent(pcts[0])
	}
	s.MemPercent = MemoryPercent()
	return s
}

// MemoryPercent returns the share of physical memory in use, or zero if it
// cannot be read.
func MemoryPercent() float64 {
	vmem, err := mem.VirtualMemory()
	if err != nil || vmem == nil {
		return 0
	}
	return clampPercent(vmem.UsedPercent)
}

func clampPercent(p float64) float64 {
	return max(0, min(100, p))
}
