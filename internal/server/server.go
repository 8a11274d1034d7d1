package server

import (
	"bufio"
	"errors"
	"log"
	"net"
	"time"

	"tinyhttpd/internal/config"
	"tinyhttpd/internal/proto"
)

// Server owns the shared, read-only state every connection worker
// references: the configuration and the resolved base directory.
type Server struct {
	cfg     config.Config
	baseDir string

	// recent request records and aggregate counters.
	logs  *logHub
	stats *statsHub

	// sem gates connection spawns when MaxConns > 0.
	sem chan struct{}
}

func New(cfg config.Config, baseDir string) *Server {
	s := &Server{
		cfg:     cfg,
		baseDir: baseDir,
		logs:    newLogHub(256),
		stats:   newStatsHub(),
	}
	if cfg.MaxConns > 0 {
		s.sem = make(chan struct{}, cfg.MaxConns)
	}
	return s
}

// BaseDir returns the absolute directory the /files/ handler is
// confined to. It never changes after New.
func (s *Server) BaseDir() string { return s.baseDir }

// Serve accepts connections until the listener is closed. Each accepted
// connection is handled by its own goroutine performing exactly one
// request/response transaction; the accept loop never blocks on request
// processing beyond acquiring a concurrency permit.
func (s *Server) Serve(ln net.Listener) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			log.Printf("accept: %v", err)
			continue
		}
		s.acquire()
		go func() {
			defer s.release()
			s.handleConn(conn)
		}()
	}
}

func (s *Server) acquire() {
	if s.sem != nil {
		s.sem <- struct{}{}
	}
}

func (s *Server) release() {
	if s.sem != nil {
		<-s.sem
	}
}

// handleConn runs one parse -> route -> handle -> serialize transaction
// and closes the connection. A parse failure maps to a single 400; write
// failures are logged, never retried.
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	start := time.Now()
	le := LogEntry{
		TimeUnixMs: start.UnixMilli(),
		RemoteAddr: conn.RemoteAddr().String(),
	}

	if d := s.cfg.ReadTimeout(); d > 0 {
		_ = conn.SetReadDeadline(start.Add(d))
	}

	var res *proto.Response
	req, err := proto.ReadRequest(bufio.NewReader(conn), s.cfg.MaxBodyBytes)
	if err != nil {
		res = proto.NewResponse(proto.StatusBadRequest)
		le.Info = err.Error()
	} else {
		le.Method = req.Method.String()
		le.Path = req.Path
		le.ReqBytes = len(req.Body)
		res = s.route(req)
	}

	if d := s.cfg.WriteTimeout(); d > 0 {
		_ = conn.SetWriteDeadline(time.Now().Add(d))
	}
	bw := bufio.NewWriter(conn)
	werr := proto.WriteResponse(bw, res)
	if werr == nil {
		werr = bw.Flush()
	}
	if werr != nil {
		log.Printf("write %s: %v", le.RemoteAddr, werr)
	}

	le.Status = int(res.Status)
	le.RespBytes = len(res.Body)
	le.DurationMs = time.Since(start).Milliseconds()
	s.record(le)
}

func (s *Server) record(le LogEntry) {
	if s.cfg.LogRequests {
		s.logs.add(le)
		log.Printf("%s %s %s -> %d (%dms)", le.RemoteAddr, le.Method, le.Path, le.Status, le.DurationMs)
	}
	s.stats.add(le.Status, le.ReqBytes, le.RespBytes, le.DurationMs)
}

// RecentLogs returns up to limit of the most recent request records,
// oldest first. Empty unless log_requests is enabled.
func (s *Server) RecentLogs(limit int) []LogEntry {
	return s.logs.snapshot(limit)
}

// Stats returns the aggregate request counters.
func (s *Server) Stats() StatsSnapshot {
	return s.stats.snapshot()
}
