package hub

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// SystemStats is the diagnostics payload behind the dashboard's system panel.
// Unavailable values carry "--" instead of being omitted.
type SystemStats struct {
	FreeMemory string `json:"freeMemory"`
	UsedMemory string `json:"usedMemory"`
	Goroutines int    `json:"goroutines"`
	Uptime     string `json:"uptime"`
	CPUTemp    string `json:"cpuTemp"`
}

func (h *Hub) SystemStats() SystemStats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return SystemStats{
		FreeMemory: fmt.Sprintf("%d KB", (mem.HeapSys-mem.HeapAlloc)/1024),
		UsedMemory: fmt.Sprintf("%d KB", mem.HeapAlloc/1024),
		Goroutines: runtime.NumGoroutine(),
		Uptime:     FormatUptime(time.Since(h.startedAt)),
		CPUTemp:    readCPUTemp(),
	}
}

// FormatUptime renders a duration the way the dashboard displays it: the two
// most significant units only.
func FormatUptime(d time.Duration) string {
	seconds := int64(d.Seconds())
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours%24)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes%60)
	default:
		return fmt.Sprintf("%dm %ds", minutes, seconds%60)
	}
}

// readCPUTemp is best effort: thermal zone 0 in millidegrees on linux hosts
// that expose it, "--" everywhere else.
func readCPUTemp() string {
	raw, err := os.ReadFile("/sys/class/thermal/thermal_zone0/temp")
	if err != nil {
		return "--"
	}
	milli, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
	if err != nil {
		return "--"
	}
	return fmt.Sprintf("%.1f°C", float64(milli)/1000)
}
