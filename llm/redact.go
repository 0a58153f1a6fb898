package llm

import "regexp"

var dataURLPattern = regexp.MustCompile(`data:([^;,\s"']+);base64,[A-Za-z0-9+/=_-]+`)

// RedactDataURLs replaces the base64 payload of any data URL embedded
// in s, keeping the MIME type. Log lines and error messages must never
// carry image bytes.
func RedactDataURLs(s string) string {
	return dataURLPattern.ReplaceAllString(s, "data:$1;base64,[redacted]")
}
