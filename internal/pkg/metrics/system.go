package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

var (
	DeviceCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "device_cpu_usage_percent",
			Help: "Device CPU usage percentage",
		},
	)

	DeviceMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "device_memory_usage_bytes",
			Help: "Device memory usage in bytes",
		},
	)

	ClientHeapUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "client_heap_alloc_bytes",
			Help: "Driver client heap allocation in bytes",
		},
	)
)

// StartSystemMetricsCollector собирает метрики устройства. Интервал
// крупный: клиент живет на терминале водителя и не должен греть батарею.
func StartSystemMetricsCollector() {
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			collectSystemMetrics()
		}
	}()
}

func collectSystemMetrics() {
	cpuPercent, err := cpu.Percent(time.Second, false)
	if err == nil && len(cpuPercent) > 0 {
		DeviceCPUUsage.Set(cpuPercent[0])
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	vmStat, err := mem.VirtualMemory()
	if err == nil {
		DeviceMemoryUsage.Set(float64(vmStat.Used))
	}

	ClientHeapUsage.Set(float64(m.Alloc))
}
