package util

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var XSSPolicy = bluemonday.UGCPolicy()

// XSSSanitize strips unsafe HTML. The result stays HTML escaped, so
// entity-encoded markup is never turned back into live tags.
func XSSSanitize(val string) string {
	return XSSPolicy.Sanitize(val)
}

// IsBlank reports whether val has no non-whitespace characters.
func IsBlank(val string) bool {
	return strings.TrimSpace(val) == ""
}
