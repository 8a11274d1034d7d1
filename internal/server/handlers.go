package server

import (
	"errors"
	"io/fs"
	"log"
	"strings"

	"tinyhttpd/internal/fsops"
	"tinyhttpd/internal/pathutil"
	"tinyhttpd/internal/proto"
)

const rootGreeting = "Hello World"

func (s *Server) handleRoot(req *proto.Request) *proto.Response {
	if req.Method != proto.MethodGet {
		return proto.NewResponse(proto.StatusMethodNotAllowed)
	}
	return proto.NewResponse(proto.StatusOK).WithTextBody(rootGreeting)
}

// handleEcho answers GET /echo[/<subpath>] with the subpath and
// POST /echo (exact path only) with the request body verbatim.
func (s *Server) handleEcho(req *proto.Request) *proto.Response {
	var body string
	switch req.Method {
	case proto.MethodGet:
		if rest, ok := strings.CutPrefix(req.Path, "/echo/"); ok {
			body = rest
		}
	case proto.MethodPost:
		if req.Path != "/echo" {
			return proto.NewResponse(proto.StatusMethodNotAllowed)
		}
		body = req.Body
	default:
		return proto.NewResponse(proto.StatusMethodNotAllowed)
	}
	return proto.NewResponse(proto.StatusOK).WithTextBody(body)
}

func (s *Server) handleUserAgent(req *proto.Request) *proto.Response {
	if req.Method != proto.MethodGet {
		return proto.NewResponse(proto.StatusMethodNotAllowed)
	}
	ua, ok := req.Headers[proto.HeaderUserAgent]
	if !ok {
		return proto.NewResponse(proto.StatusBadRequest)
	}
	return proto.NewResponse(proto.StatusOK).WithTextBody(ua)
}

// handleFiles maps /files/<name> to a single regular file under the base
// directory: GET reads, POST creates without overwrite, DELETE removes.
// Unsafe names are rejected before any filesystem access.
func (s *Server) handleFiles(req *proto.Request) *proto.Response {
	name := strings.TrimPrefix(req.Path, "/files/")
	path, err := pathutil.Resolve(s.baseDir, name)
	if err != nil {
		return proto.NewResponse(proto.StatusBadRequest)
	}

	switch req.Method {
	case proto.MethodGet:
		if !fsops.Exists(path) {
			return proto.NewResponse(proto.StatusNotFound)
		}
		b, err := fsops.ReadAll(path)
		if err != nil {
			log.Printf("read %s: %v", path, err)
			return proto.NewResponse(proto.StatusInternal)
		}
		return proto.NewResponse(proto.StatusOK).WithTextBody(string(b))

	case proto.MethodPost:
		if fsops.Exists(path) {
			return proto.NewResponse(proto.StatusConflict)
		}
		if err := fsops.CreateExclusive(path, []byte(req.Body)); err != nil {
			// A concurrent creator may win between the check and the open.
			if errors.Is(err, fs.ErrExist) {
				return proto.NewResponse(proto.StatusConflict)
			}
			log.Printf("create %s: %v", path, err)
			return proto.NewResponse(proto.StatusInternal)
		}
		return proto.NewResponse(proto.StatusCreated)

	case proto.MethodDelete:
		if !fsops.Exists(path) {
			return proto.NewResponse(proto.StatusNotFound)
		}
		if err := fsops.Remove(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return proto.NewResponse(proto.StatusNotFound)
			}
			log.Printf("remove %s: %v", path, err)
			return proto.NewResponse(proto.StatusInternal)
		}
		return proto.NewResponse(proto.StatusOK)

	default:
		return proto.NewResponse(proto.StatusMethodNotAllowed)
	}
}
