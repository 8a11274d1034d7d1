package server

import (
	"sync"
	"time"
)

// StatsSnapshot is a JSON-friendly snapshot of collected counters.
type StatsSnapshot struct {
	StartedUnix int64          `json:"started_unix"`
	UptimeSec   int64          `json:"uptime_sec"`
	TotalReq    uint64         `json:"total_requests"`
	TotalErr    uint64         `json:"total_errors"`
	BytesIn     uint64         `json:"bytes_in"`
	BytesOut    uint64         `json:"bytes_out"`
	AvgMs       uint64         `json:"avg_ms"`
	ByStatus    map[int]uint64 `json:"by_status"`
}

// statsHub keeps lightweight aggregate counters.
//
// It is intentionally simple and dependency-free.
type statsHub struct {
	mu sync.Mutex

	started time.Time

	totalReq   uint64
	totalErr   uint64
	bytesIn    uint64
	bytesOut   uint64
	totalDurMs uint64

	byStatus map[int]uint64
}

func newStatsHub() *statsHub {
	return &statsHub{
		started:  time.Now(),
		byStatus: make(map[int]uint64),
	}
}

func (h *statsHub) add(status int, reqBytes, respBytes int, durMs int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.totalReq++
	h.byStatus[status]++
	if status >= 400 {
		h.totalErr++
	}
	if reqBytes > 0 {
		h.bytesIn += uint64(reqBytes)
	}
	if respBytes > 0 {
		h.bytesOut += uint64(respBytes)
	}
	if durMs > 0 {
		h.totalDurMs += uint64(durMs)
	}
}

func (h *statsHub) snapshot() StatsSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	by := make(map[int]uint64, len(h.byStatus))
	for k, v := range h.byStatus {
		by[k] = v
	}

	avg := uint64(0)
	if h.totalReq > 0 {
		avg = h.totalDurMs / h.totalReq
	}

	now := time.Now()
	return StatsSnapshot{
		StartedUnix: h.started.Unix(),
		UptimeSec:   int64(now.Sub(h.started).Seconds()),
		TotalReq:    h.totalReq,
		TotalErr:    h.totalErr,
		BytesIn:     h.bytesIn,
		BytesOut:    h.bytesOut,
		AvgMs:       avg,
		ByStatus:    by,
	}
}
