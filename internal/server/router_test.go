package server

import (
	"testing"

	"tinyhttpd/internal/proto"
)

// Routing is lexical and priority-ordered; these cases pin the
// boundaries between the exact and prefix routes.
func TestRoute(t *testing.T) {
	s := newTestServer(t)

	cases := []struct {
		path   string
		status proto.Status
	}{
		{"/", proto.StatusOK},
		{"/echo", proto.StatusOK},
		{"/echo/abc", proto.StatusOK},
		{"/echoes", proto.StatusNotFound},
		{"/user-agent", proto.StatusBadRequest}, // routed, header missing
		{"/user-agent/", proto.StatusNotFound},
		{"/files/missing.txt", proto.StatusNotFound},
		{"/files", proto.StatusNotFound},
		{"/nope", proto.StatusNotFound},
		{"/favicon.ico", proto.StatusNotFound},
		{"", proto.StatusNotFound},
	}
	for _, c := range cases {
		res := s.route(newRequest(proto.MethodGet, c.path))
		if res.Status != c.status {
			t.Errorf("GET %q: got %d, want %d", c.path, res.Status, c.status)
		}
	}
}

func TestRouteUnknownPathAnyMethod(t *testing.T) {
	s := newTestServer(t)
	for _, m := range []proto.Method{proto.MethodGet, proto.MethodPost, proto.MethodPut, proto.MethodDelete} {
		res := s.route(newRequest(m, "/nope"))
		if res.Status != proto.StatusNotFound {
			t.Errorf("%s /nope: got %d, want 404", m, res.Status)
		}
	}
}
