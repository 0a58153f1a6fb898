package server

import (
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nachoal/nano-banana-mcp/imagegen"
)

const serverInstructions = `Generate or edit images from text prompts. ` +
	`Pass local reference images via imagePaths to edit or combine them, ` +
	`and set outputPath to save the first generated image to disk. Use ` +
	`the batch tool for multi-step jobs where a later task reads a file ` +
	`written by an earlier one.`

func intp(i int) *int {
	return &i
}

// taskProperties is the shared schema for a single task descriptor.
func taskProperties() map[string]*jsonschema.Schema {
	return map[string]*jsonschema.Schema{
		"prompt": {
			Type:        "string",
			Description: "Text description of the image to generate, or of the edits to make to the reference images.",
		},
		"imagePaths": {
			Type:        "array",
			Description: "Local paths of reference images to send along with the prompt, in order.",
			Items:       &jsonschema.Schema{Type: "string"},
			MaxItems:    intp(imagegen.MaxContextImages),
		},
		"outputPath": {
			Type:        "string",
			Description: "Local path to save the first generated image to. Parent directories are created as needed.",
		},
	}
}

var editOrCreateImageTool = &mcp.Tool{
	Name:        "edit_or_create_image",
	Description: "Generate a new image from a text prompt, or edit/combine up to 12 local reference images. Returns the model's text and image output; optionally saves the first image to outputPath.",
	Annotations: &mcp.ToolAnnotations{Title: "Edit or Create Image"},
	InputSchema: &jsonschema.Schema{
		Type:       "object",
		Properties: taskProperties(),
		Required:   []string{"prompt"},
	},
}

var batchEditOrCreateImagesTool = &mcp.Tool{
	Name:        "batch_edit_or_create_images",
	Description: "Run several image generation/edit tasks strictly in order, continuing past individual failures. A later task may reference a file written by an earlier one. Returns a JSON report with one record per task.",
	Annotations: &mcp.ToolAnnotations{Title: "Batch Edit or Create Images"},
	InputSchema: &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"tasks": {
				Type:        "array",
				Description: "Ordered task list; each task has the same shape as the edit_or_create_image arguments.",
				MinItems:    intp(1),
				Items: &jsonschema.Schema{
					Type:       "object",
					Properties: taskProperties(),
					Required:   []string{"prompt"},
				},
			},
		},
		Required: []string{"tasks"},
	},
}
