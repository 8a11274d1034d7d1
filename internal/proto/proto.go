package proto

import "fmt"

// Version11 is the only protocol version the server speaks.
const Version11 = "HTTP/1.1"

// Header keys the server recognizes or emits.
const (
	HeaderContentLength = "Content-Length"
	HeaderContentType   = "Content-Type"
	HeaderUserAgent     = "User-Agent"
)

// Content types.
const (
	TypeTextPlain = "text/plain"
)

// Method is the closed set of request methods the server understands.
// Any other token fails parsing.
type Method byte

const (
	MethodGet Method = iota
	MethodPost
	MethodPut
	MethodDelete
)

func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	case MethodPut:
		return "PUT"
	case MethodDelete:
		return "DELETE"
	}
	return fmt.Sprintf("Method(%d)", byte(m))
}

// ParseMethod maps a request-line token to a Method. Matching is
// case-sensitive.
func ParseMethod(tok string) (Method, error) {
	switch tok {
	case "GET":
		return MethodGet, nil
	case "POST":
		return MethodPost, nil
	case "PUT":
		return MethodPut, nil
	case "DELETE":
		return MethodDelete, nil
	}
	return 0, fmt.Errorf("unsupported method %q", tok)
}

// Status is the closed set of response status codes the server produces.
type Status int

const (
	StatusOK               Status = 200
	StatusCreated          Status = 201
	StatusBadRequest       Status = 400
	StatusNotFound         Status = 404
	StatusMethodNotAllowed Status = 405
	StatusConflict         Status = 409
	StatusInternal         Status = 500
)

// Reason returns the fixed reason phrase for the status line.
func (s Status) Reason() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusCreated:
		return "Created"
	case StatusBadRequest:
		return "Bad Request"
	case StatusNotFound:
		return "Not Found"
	case StatusMethodNotAllowed:
		return "Method Not Allowed"
	case StatusConflict:
		return "Conflict"
	case StatusInternal:
		return "Internal Server Error"
	}
	return "Unknown"
}

// Header holds request or response headers. Keys are case-sensitive as
// received; a repeated name overwrites the previous value.
type Header map[string]string

// Request is a single parsed request. It is created once per connection
// by ReadRequest and never mutated afterwards.
type Request struct {
	Method  Method
	Path    string // raw, as received, including the leading '/'
	Version string
	Headers Header
	Body    string
}

// Response is built by a handler and finalized when handed to
// WriteResponse.
type Response struct {
	Status  Status
	Headers Header
	Body    string
}

func NewResponse(status Status) *Response {
	return &Response{Status: status, Headers: Header{}}
}

func (r *Response) WithHeader(key, value string) *Response {
	r.Headers[key] = value
	return r
}

func (r *Response) WithBody(body string) *Response {
	r.Body = body
	return r
}

// WithTextBody sets the body together with Content-Type: text/plain and
// a Content-Length equal to the exact byte length of the body.
func (r *Response) WithTextBody(body string) *Response {
	r.Body = body
	r.Headers[HeaderContentType] = TypeTextPlain
	r.Headers[HeaderContentLength] = fmt.Sprint(len(body))
	return r
}
