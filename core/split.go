package core

import (
	"errors"
	"fmt"
	"strings"

	"urlprof/types"
)

var ErrMalformedURL = errors.New("malformed url")

// SplitURL breaks a URL into host and path by plain substring splitting.
// It is not a URL parser: ports, queries and credentials get no special
// treatment, and the path is whatever follows the first occurrence of the
// host in the URL, up to any second occurrence.
func SplitURL(url string) (types.ParsedURL, error) {
	var rest string
	if strings.Contains(url, "//") {
		parts := strings.Split(url, "//")
		rest = parts[1]
	} else {
		parts := strings.Split(url, "/")
		if len(parts) < 2 {
			return types.ParsedURL{}, fmt.Errorf("%w: no host segment in %q", ErrMalformedURL, url)
		}
		rest = parts[1]
	}

	host := strings.Split(rest, "/")[0]
	if host == "" {
		return types.ParsedURL{}, fmt.Errorf("%w: empty host in %q", ErrMalformedURL, url)
	}

	// host is a substring of url, so there are always at least two parts
	path := strings.Split(url, host)[1]
	return types.ParsedURL{Host: host, Path: path}, nil
}
