package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Role represents the role of a message
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ContentPart is one element of a multimodal message content array.
// Type is "text" or "image_url".
type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// ImageURL wraps an image reference. This server only ever sends and
// receives data URIs here, never remote URLs.
type ImageURL struct {
	URL string `json:"url"`
}

// TextPart builds a text content part.
func TextPart(text string) ContentPart {
	return ContentPart{Type: "text", Text: text}
}

// ImagePart builds an image_url content part from a data URI.
func ImagePart(dataURI string) ContentPart {
	return ContentPart{Type: "image_url", ImageURL: &ImageURL{URL: dataURI}}
}

// Message is a request-side chat message with multimodal content.
type Message struct {
	Role    Role          `json:"role"`
	Content []ContentPart `json:"content"`
}

// ChatRequest represents a chat completion request
type ChatRequest struct {
	Model      string    `json:"model"`
	Messages   []Message `json:"messages"`
	Modalities []string  `json:"modalities,omitempty"`
	Stream     bool      `json:"stream,omitempty"`
}

// ChatResponse represents a chat completion response
type ChatResponse struct {
	ID      string         `json:"id,omitempty"`
	Object  string         `json:"object,omitempty"`
	Created int64          `json:"created,omitempty"`
	Model   string         `json:"model,omitempty"`
	Choices []Choice       `json:"choices"`
	Usage   *Usage         `json:"usage,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

// Choice represents a single response choice
type Choice struct {
	Index        int             `json:"index"`
	Message      ResponseMessage `json:"message"`
	FinishReason string          `json:"finish_reason,omitempty"`
}

// ResponseMessage is the assistant message in a completion response.
// Content may be a plain string or an array of parts depending on the
// model. Images is an OpenRouter extension outside the standard
// chat-completion schema; it is best-effort and often absent.
type ResponseMessage struct {
	Role    Role            `json:"role,omitempty"`
	Content MessageContent  `json:"content,omitempty"`
	Images  []ResponseImage `json:"images,omitempty"`
}

// ResponseImage is one entry of the non-standard images array. Both
// key spellings for the URL wrapper have been observed in the wild.
type ResponseImage struct {
	Type        string    `json:"type,omitempty"`
	ImageURL    *ImageURL `json:"image_url,omitempty"`
	ImageURLAlt *ImageURL `json:"imageUrl,omitempty"`
}

// URL returns the image URL regardless of which key spelling carried it.
func (ri ResponseImage) URL() string {
	if ri.ImageURL != nil && ri.ImageURL.URL != "" {
		return ri.ImageURL.URL
	}
	if ri.ImageURLAlt != nil {
		return ri.ImageURLAlt.URL
	}
	return ""
}

// Usage represents token usage information
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ErrorResponse represents an API error
type ErrorResponse struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
	Code    any    `json:"code,omitempty"`
}

// MessageContent holds a response content field that may be either a
// JSON string or an array of parts.
type MessageContent struct {
	str      string
	parts    []ContentPart
	isString bool
}

// StringContent builds a plain-string content value.
func StringContent(s string) MessageContent {
	return MessageContent{str: s, isString: true}
}

// PartsContent builds an array-valued content value.
func PartsContent(parts ...ContentPart) MessageContent {
	return MessageContent{parts: parts}
}

// IsString reports whether the content field was a plain JSON string.
func (mc MessageContent) IsString() bool {
	return mc.isString
}

// String returns the plain-text content, or "" for array content.
func (mc MessageContent) String() string {
	return mc.str
}

// Parts returns the content parts, or nil for string content.
func (mc MessageContent) Parts() []ContentPart {
	return mc.parts
}

// UnmarshalJSON accepts a string, an array of parts, or null.
func (mc *MessageContent) UnmarshalJSON(data []byte) error {
	*mc = MessageContent{}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	switch trimmed[0] {
	case '"':
		mc.isString = true
		return json.Unmarshal(trimmed, &mc.str)
	case '[':
		return json.Unmarshal(trimmed, &mc.parts)
	default:
		return fmt.Errorf("unexpected content field shape: %s", string(trimmed))
	}
}

// MarshalJSON mirrors UnmarshalJSON.
func (mc MessageContent) MarshalJSON() ([]byte, error) {
	if mc.isString {
		return json.Marshal(mc.str)
	}
	if mc.parts != nil {
		return json.Marshal(mc.parts)
	}
	return []byte("null"), nil
}
