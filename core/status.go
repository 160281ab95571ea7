package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMalformedStatusLine = errors.New("malformed status line")
	ErrInvalidStatusCode   = errors.New("invalid status code")
)

// ParseStatusCode reads the numeric code from the status line of a raw
// HTTP response, e.g. 200 from "HTTP/1.0 200 OK\r\n...".
func ParseStatusCode(response string) (uint32, error) {
	statusLine := strings.Split(response, "\r\n")[0]
	fields := strings.Split(statusLine, " ")
	if len(fields) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedStatusLine, statusLine)
	}

	token := strings.TrimPrefix(fields[1], "+")
	code, err := strconv.ParseUint(token, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidStatusCode, fields[1], err)
	}
	return uint32(code), nil
}
