// Package imagegen executes image generation and edit tasks against an
// OpenRouter-style chat-completion backend.
package imagegen

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/nachoal/nano-banana-mcp/llm"
)

// MaxContextImages bounds the reference images per task. The bound is
// enforced at the tool-schema boundary, not re-validated here.
const MaxContextImages = 12

// Task describes one image generation or edit request. Relative paths
// are resolved against the process working directory.
type Task struct {
	Prompt     string   `json:"prompt"`
	ImagePaths []string `json:"imagePaths,omitempty"`
	OutputPath string   `json:"outputPath,omitempty"`
}

// Result is the outcome of one task. IsError marks recoverable
// failures (unreadable context image, upstream API error) that are
// reported to the caller instead of propagated.
type Result struct {
	Content []ContentItem
	IsError bool
}

// Executor runs tasks against a chat-completion backend, one blocking
// call at a time.
type Executor struct {
	client llm.Client
	model  string
	log    zerolog.Logger
}

// NewExecutor creates an executor bound to a client and model.
func NewExecutor(client llm.Client, model string, log zerolog.Logger) *Executor {
	return &Executor{client: client, model: model, log: log}
}

// Execute runs a single task: load context images, make one chat
// completion call, normalize the response, and optionally persist the
// first generated image.
func (e *Executor) Execute(ctx context.Context, task Task) (*Result, error) {
	parts := []llm.ContentPart{llm.TextPart(task.Prompt)}
	for _, path := range task.ImagePaths {
		dataURI, err := loadContextImage(path)
		if err != nil {
			// Abort before any network call; remaining images are not tried.
			e.log.Warn().Err(err).Str("path", path).Msg("context image load failed")
			return errorResult(err.Error()), nil
		}
		parts = append(parts, llm.ImagePart(dataURI))
	}

	e.log.Debug().
		Str("model", e.model).
		Int("context_images", len(parts)-1).
		Str("prompt", task.Prompt).
		Msg("executing image task")

	resp, err := e.client.Chat(ctx, &llm.ChatRequest{
		Model:      e.model,
		Messages:   []llm.Message{{Role: llm.RoleUser, Content: parts}},
		Modalities: []string{"image", "text"},
	})
	if err != nil {
		e.log.Warn().Err(err).Msg("chat completion failed")
		return errorResult(fmt.Sprintf("Image generation failed: %v", llm.RedactDataURLs(err.Error()))), nil
	}

	items := ExtractContent(resp)
	if len(items) == 0 {
		return &Result{Content: []ContentItem{
			textItem("No text or image content was returned by the model."),
		}}, nil
	}

	if task.OutputPath != "" {
		if image, ok := firstImage(items); ok {
			items = append(items, e.saveImage(image, task.OutputPath))
		}
	}

	return &Result{Content: items}, nil
}

func errorResult(message string) *Result {
	return &Result{Content: []ContentItem{textItem(message)}, IsError: true}
}

func firstImage(items []ContentItem) (ContentItem, bool) {
	for _, item := range items {
		if item.Type == ContentImage {
			return item, true
		}
	}
	return ContentItem{}, false
}

// loadContextImage reads a local image fully into memory and encodes
// it as a data URI tagged with an extension-derived MIME type.
func loadContextImage(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve context image path %s: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return "", fmt.Errorf("failed to read context image %s: %w", path, err)
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeTypeForPath(abs), base64.StdEncoding.EncodeToString(data)), nil
}

// saveImage writes the decoded image to outputPath, creating parent
// directories as needed. A failure degrades to a warning item; the
// task still succeeds and the image is still returned inline.
func (e *Executor) saveImage(image ContentItem, outputPath string) ContentItem {
	abs, err := filepath.Abs(outputPath)
	if err == nil {
		err = writeImageFile(abs, image.Data)
	}
	if err != nil {
		e.log.Warn().Err(err).Str("path", outputPath).Msg("image save failed")
		return textItem(fmt.Sprintf("Warning: failed to save the generated image to %s: %v", outputPath, err))
	}
	e.log.Info().Str("path", abs).Msg("image saved")
	return textItem(fmt.Sprintf("Successfully saved the generated image to: %s", abs))
}

func writeImageFile(absPath, b64 string) error {
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return fmt.Errorf("failed to decode image data: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(absPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}
