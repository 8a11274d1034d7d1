package server

import (
	"strings"

	"tinyhttpd/internal/proto"
)

// route dispatches a request on its raw path. Matching is purely
// lexical: no normalization, no query stripping, no percent decoding.
func (s *Server) route(req *proto.Request) *proto.Response {
	switch {
	case req.Path == "/":
		return s.handleRoot(req)
	case req.Path == "/user-agent":
		return s.handleUserAgent(req)
	case req.Path == "/echo" || strings.HasPrefix(req.Path, "/echo/"):
		return s.handleEcho(req)
	case strings.HasPrefix(req.Path, "/files/"):
		return s.handleFiles(req)
	default:
		return proto.NewResponse(proto.StatusNotFound)
	}
}
