package llm

import (
	"encoding/json"
	"testing"
)

func TestMessageContent_UnmarshalString(t *testing.T) {
	var mc MessageContent
	if err := json.Unmarshal([]byte(`"a blue circle"`), &mc); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !mc.IsString() {
		t.Fatalf("expected string content")
	}
	if mc.String() != "a blue circle" {
		t.Fatalf("unexpected text: %q", mc.String())
	}
}

func TestMessageContent_UnmarshalParts(t *testing.T) {
	raw := `[{"type":"text","text":"ok"},{"type":"image_url","image_url":{"url":"data:image/png;base64,aGk="}}]`

	var mc MessageContent
	if err := json.Unmarshal([]byte(raw), &mc); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if mc.IsString() {
		t.Fatalf("expected array content")
	}
	parts := mc.Parts()
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	if parts[0].Type != "text" || parts[0].Text != "ok" {
		t.Fatalf("unexpected first part: %+v", parts[0])
	}
	if parts[1].Type != "image_url" || parts[1].ImageURL == nil || parts[1].ImageURL.URL != "data:image/png;base64,aGk=" {
		t.Fatalf("unexpected second part: %+v", parts[1])
	}
}

func TestMessageContent_UnmarshalNull(t *testing.T) {
	var mc MessageContent
	if err := json.Unmarshal([]byte(`null`), &mc); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if mc.IsString() || mc.Parts() != nil {
		t.Fatalf("expected empty content, got %+v", mc)
	}
}

func TestMessageContent_UnmarshalRejectsObjects(t *testing.T) {
	var mc MessageContent
	if err := json.Unmarshal([]byte(`{"oops":true}`), &mc); err == nil {
		t.Fatalf("expected error for object-shaped content")
	}
}

func TestResponseImage_URLPrefersSnakeCase(t *testing.T) {
	img := ResponseImage{
		ImageURL:    &ImageURL{URL: "data:image/png;base64,YQ=="},
		ImageURLAlt: &ImageURL{URL: "data:image/png;base64,Yg=="},
	}
	if got := img.URL(); got != "data:image/png;base64,YQ==" {
		t.Fatalf("unexpected URL: %q", got)
	}
}

func TestResponseImage_URLFallsBackToCamelCase(t *testing.T) {
	var img ResponseImage
	if err := json.Unmarshal([]byte(`{"type":"image_url","imageUrl":{"url":"data:image/png;base64,aGk="}}`), &img); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got := img.URL(); got != "data:image/png;base64,aGk=" {
		t.Fatalf("unexpected URL: %q", got)
	}
}

func TestMessage_MarshalKeepsPartOrder(t *testing.T) {
	msg := Message{
		Role: RoleUser,
		Content: []ContentPart{
			TextPart("combine these"),
			ImagePart("data:image/png;base64,YQ=="),
			ImagePart("data:image/jpeg;base64,Yg=="),
		},
	}

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	var decoded struct {
		Role    string        `json:"role"`
		Content []ContentPart `json:"content"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if decoded.Role != "user" {
		t.Fatalf("expected user role, got %q", decoded.Role)
	}
	if len(decoded.Content) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(decoded.Content))
	}
	if decoded.Content[0].Type != "text" || decoded.Content[1].Type != "image_url" || decoded.Content[2].Type != "image_url" {
		t.Fatalf("unexpected part order: %+v", decoded.Content)
	}
	if decoded.Content[1].ImageURL.URL != "data:image/png;base64,YQ==" {
		t.Fatalf("unexpected image order: %+v", decoded.Content)
	}
}
