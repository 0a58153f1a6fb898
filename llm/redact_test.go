package llm

import (
	"strings"
	"testing"
)

func TestRedactDataURLs_StripsPayload(t *testing.T) {
	in := `{"url":"data:image/png;base64,aVeryLongBase64PayloadHere=="}`
	out := RedactDataURLs(in)

	if strings.Contains(out, "aVeryLongBase64PayloadHere") {
		t.Fatalf("payload leaked: %s", out)
	}
	if !strings.Contains(out, "data:image/png;base64,[redacted]") {
		t.Fatalf("expected redaction marker, got: %s", out)
	}
}

func TestRedactDataURLs_LeavesPlainTextAlone(t *testing.T) {
	in := "no data urls here, just text about image/png"
	if out := RedactDataURLs(in); out != in {
		t.Fatalf("expected input unchanged, got: %s", out)
	}
}

func TestRedactDataURLs_MultipleURLs(t *testing.T) {
	in := "data:image/png;base64,AAAA and data:image/jpeg;base64,BBBB"
	out := RedactDataURLs(in)

	if strings.Contains(out, "AAAA") || strings.Contains(out, "BBBB") {
		t.Fatalf("payload leaked: %s", out)
	}
	if strings.Count(out, "[redacted]") != 2 {
		t.Fatalf("expected both URLs redacted, got: %s", out)
	}
}
