package handlers

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/dkoster/rootwalk/internal/api/models"
)

// Stats godoc
// @Summary Process statistics
// @Description Returns runtime, process and resolver statistics
// @Tags system
// @Produce json
// @Success 200 {object} models.StatsResponse
// @Security ApiKeyAuth
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)
	snap := h.stats.Snapshot()

	resp := models.StatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		NumCPU:        runtime.NumCPU(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
		Lookups: models.LookupStatsResponse{
			Total:          snap.Total,
			Answered:       snap.Answered,
			NoGlue:         snap.NoGlue,
			DepthExceeded:  snap.DepthExceeded,
			ProtocolErrors: snap.ProtocolErrors,
			TransportFails: snap.TransportFails,
			AvgLatencyMs:   snap.AvgLatencyMs,
		},
	}

	// OS-level process stats are best effort; the endpoint still answers
	// when the platform probe fails.
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if mem, err := proc.MemoryInfo(); err == nil && mem != nil {
			resp.ProcessRSSMB = float64(mem.RSS) / 1024 / 1024
		}
		if pct, err := proc.CPUPercent(); err == nil {
			resp.ProcessCPUPct = pct
		}
	}

	c.JSON(http.StatusOK, resp)
}
