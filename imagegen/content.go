package imagegen

import (
	"strings"

	"github.com/nachoal/nano-banana-mcp/llm"
)

// ContentType tags a ContentItem.
type ContentType string

const (
	ContentText  ContentType = "text"
	ContentImage ContentType = "image"
)

// ContentItem is one normalized piece of a task result: either plain
// text or a base64-encoded image.
type ContentItem struct {
	Type     ContentType `json:"type"`
	Text     string      `json:"text,omitempty"`
	Data     string      `json:"data,omitempty"`
	MimeType string      `json:"mimeType,omitempty"`
}

func textItem(text string) ContentItem {
	return ContentItem{Type: ContentText, Text: text}
}

func imageItem(data, mimeType string) ContentItem {
	return ContentItem{Type: ContentImage, Data: data, MimeType: mimeType}
}

// parseDataURL splits a data:<mime>;base64,<payload> URI. Anything
// else (remote URLs, non-base64 data URIs) is rejected.
func parseDataURL(url string) (mimeType, payload string, ok bool) {
	after, found := strings.CutPrefix(url, "data:")
	if !found {
		return "", "", false
	}
	prefix, data, hasComma := strings.Cut(after, ",")
	if !hasComma || data == "" {
		return "", "", false
	}
	mime, _, hasBase64 := strings.Cut(prefix, ";base64")
	if !hasBase64 || mime == "" {
		return "", "", false
	}
	return mime, data, true
}

// ExtractContent normalizes a chat completion response into an ordered
// content sequence. The model may return images in two places: the
// non-standard message.images array and an array-valued content field.
// Both locations are always scanned and both contribute, images-array
// entries first. A plain-string content field yields at most one
// leading text item.
func ExtractContent(resp *llm.ChatResponse) []ContentItem {
	if resp == nil || len(resp.Choices) == 0 {
		return nil
	}
	msg := resp.Choices[0].Message

	var items []ContentItem
	if msg.Content.IsString() {
		if text := msg.Content.String(); text != "" {
			items = append(items, textItem(text))
		}
	}

	for _, img := range msg.Images {
		if img.Type != "" && img.Type != "image_url" {
			continue
		}
		if mime, data, ok := parseDataURL(img.URL()); ok {
			items = append(items, imageItem(data, mime))
		}
	}

	for _, part := range msg.Content.Parts() {
		if part.Type != "image_url" || part.ImageURL == nil {
			continue
		}
		if mime, data, ok := parseDataURL(part.ImageURL.URL); ok {
			items = append(items, imageItem(data, mime))
		}
	}

	return items
}
