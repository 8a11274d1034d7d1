package server

import (
	"sync"
	"time"
)

// LogEntry is a compact per-request record for debugging.
type LogEntry struct {
	ID         uint64 `json:"id"`
	TimeUnixMs int64  `json:"time_unix_ms"`
	RemoteAddr string `json:"remote_addr"`
	Method     string `json:"method,omitempty"`
	Path       string `json:"path,omitempty"`
	Status     int    `json:"status"`
	ReqBytes   int    `json:"req_bytes"`
	RespBytes  int    `json:"resp_bytes"`
	DurationMs int64  `json:"duration_ms"`
	Info       string `json:"info,omitempty"`
}

// logHub keeps a ring buffer of recent request records.
type logHub struct {
	mu      sync.Mutex
	ring    []LogEntry
	cap     int
	nextPos int
	count   int
	nextID  uint64
}

func newLogHub(capacity int) *logHub {
	if capacity <= 0 {
		capacity = 256
	}
	return &logHub{
		ring: make([]LogEntry, capacity),
		cap:  capacity,
	}
}

func (h *logHub) add(e LogEntry) {
	if e.TimeUnixMs == 0 {
		e.TimeUnixMs = time.Now().UnixMilli()
	}

	h.mu.Lock()
	h.nextID++
	e.ID = h.nextID

	// Ring insert.
	h.ring[h.nextPos] = e
	h.nextPos = (h.nextPos + 1) % h.cap
	if h.count < h.cap {
		h.count++
	}
	h.mu.Unlock()
}

// snapshot returns up to limit of the most recent entries, oldest first.
// limit <= 0 means all retained entries.
func (h *logHub) snapshot(limit int) []LogEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	if limit <= 0 || limit > h.count {
		limit = h.count
	}
	if limit == 0 {
		return nil
	}

	// Oldest index.
	start := h.nextPos - h.count
	if start < 0 {
		start += h.cap
	}
	// We want only the last `limit`.
	start = (start + (h.count - limit)) % h.cap

	out := make([]LogEntry, 0, limit)
	for i := 0; i < limit; i++ {
		idx := (start + i) % h.cap
		out = append(out, h.ring[idx])
	}
	return out
}
