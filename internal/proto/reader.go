package proto

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// similar to readLineSlice() in net/textproto/reader.go
func readLine(br *bufio.Reader) (string, error) {
	var line []byte
	for {
		l, more, err := br.ReadLine()
		if err != nil {
			return "", err
		}
		if line == nil && !more {
			return string(l), nil
		}
		line = append(line, l...)
		if !more {
			break
		}
	}
	return string(line), nil
}

// ReadRequest parses a single request from br: request line, headers, and
// a body of exactly the declared Content-Length bytes. maxBody caps the
// declared length as a resource-exhaustion guard.
//
// If the declared length is 0 (header absent or non-numeric) no body
// bytes are read at all, so a request without a body never blocks waiting
// for bytes that will not arrive. A declared length the sender does not
// deliver in full is a parse failure, not a truncated body.
func ReadRequest(br *bufio.Reader, maxBody int) (*Request, error) {
	line, err := readLine(br)
	if err != nil {
		return nil, fmt.Errorf("read request line: %w", err)
	}
	parts := strings.SplitN(line, " ", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("malformed request line %q", line)
	}
	method, err := ParseMethod(parts[0])
	if err != nil {
		return nil, err
	}
	if parts[2] != Version11 {
		return nil, fmt.Errorf("unsupported version %q", parts[2])
	}

	headers := Header{}
	for {
		line, err := readLine(br)
		if err != nil {
			return nil, fmt.Errorf("read headers: %w", err)
		}
		if line == "" {
			break
		}
		idx := strings.Index(line, ": ")
		if idx < 0 {
			return nil, fmt.Errorf("malformed header %q", line)
		}
		headers[line[:idx]] = line[idx+2:]
	}

	length := 0
	if v, ok := headers[HeaderContentLength]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			length = n
		}
	}
	if length > maxBody {
		return nil, fmt.Errorf("body length %d exceeds limit %d", length, maxBody)
	}

	body := ""
	if length > 0 {
		buf := make([]byte, length)
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		body = string(buf)
	}

	return &Request{
		Method:  method,
		Path:    parts[1],
		Version: parts[2],
		Headers: headers,
		Body:    body,
	}, nil
}
