// Package metrics probes host resource usage for the admin dashboard.
package metrics

import (
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
	"github.com/shopspring/decimal"
)

type System struct {
	CPUPercent    float64  `json:"cpu_percent"`
	MemoryPercent float64  `json:"memory_percent"`
	MemoryUsedMB  float64  `json:"memory_used_mb"`
	MemoryTotalMB float64  `json:"memory_total_mb"`
	DiskPercent   float64  `json:"disk_percent"`
	DiskUsedGB    float64  `json:"disk_used_gb"`
	DiskTotalGB   float64  `json:"disk_total_gb"`
	Network       *Network `json:"network"`
}

// Network stats are best effort: on hosts where counters are unavailable the
// field stays null rather than failing the whole probe.
type Network struct {
	BytesSent uint64 `json:"bytes_sent"`
	BytesRecv uint64 `json:"bytes_recv"`
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Probe samples CPU, memory and disk usage. CPU is sampled over a short
// interval; errors in any probe zero that section instead of failing.
func Probe() *System {
	s := &System{}

	if percents, err := cpu.Percent(200*time.Millisecond, false); err == nil && len(percents) > 0 {
		s.CPUPercent = round2(percents[0])
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		s.MemoryPercent = round2(vm.UsedPercent)
		s.MemoryUsedMB = round2(float64(vm.Used) / 1024 / 1024)
		s.MemoryTotalMB = round2(float64(vm.Total) / 1024 / 1024)
	}

	if du, err := disk.Usage("/"); err == nil {
		s.DiskPercent = round2(du.UsedPercent)
		s.DiskUsedGB = round2(float64(du.Used) / 1024 / 1024 / 1024)
		s.DiskTotalGB = round2(float64(du.Total) / 1024 / 1024 / 1024)
	}

	if counters, err := net.IOCounters(false); err == nil && len(counters) > 0 {
		s.Network = &Network{
			BytesSent: counters[0].BytesSent,
			BytesRecv: counters[0].BytesRecv,
		}
	}
	return s
}
