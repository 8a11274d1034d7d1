package proto

import (
	"fmt"
	"io"
)

// WriteResponse serializes res onto w: status line, headers (order is not
// significant), a blank line, then the raw body with no trailing
// terminator. Write errors are returned to the caller, never retried.
func WriteResponse(w io.Writer, res *Response) error {
	if _, err := fmt.Fprintf(w, "HTTP/1.1 %d %s\r\n", int(res.Status), res.Status.Reason()); err != nil {
		return err
	}
	for k, v := range res.Headers {
		if _, err := fmt.Fprintf(w, "%s: %s\r\n", k, v); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\r\n"); err != nil {
		return err
	}
	if len(res.Body) > 0 {
		if _, err := io.WriteString(w, res.Body); err != nil {
			return err
		}
	}
	return nil
}
