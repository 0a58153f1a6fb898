package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nachoal/nano-banana-mcp/imagegen"
)

// taskArgs mirrors the task descriptor schema in tools.go.
type taskArgs struct {
	Prompt     string   `json:"prompt"`
	ImagePaths []string `json:"imagePaths"`
	OutputPath string   `json:"outputPath"`
}

type batchArgs struct {
	Tasks []taskArgs `json:"tasks"`
}

func (s *Server) handleEditOrCreateImage(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.editOrCreateImage(ctx, req.Params.Arguments)
}

func (s *Server) handleBatchEditOrCreateImages(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.batchEditOrCreateImages(ctx, req.Params.Arguments)
}

func (s *Server) editOrCreateImage(ctx context.Context, rawArgs json.RawMessage) (*mcp.CallToolResult, error) {
	var args taskArgs
	if err := json.Unmarshal(rawArgs, &args); err != nil {
		return errorCallResult("Invalid arguments: " + err.Error()), nil
	}
	if err := validateTask(args); err != nil {
		return errorCallResult(err.Error()), nil
	}

	s.log.Debug().Str("tool", editOrCreateImageTool.Name).Msg("tool invoked")

	// A shutdown signal stops the transport, not work already started;
	// an accepted task runs to completion.
	result, err := s.executor.Execute(context.WithoutCancel(ctx), taskFromArgs(args))
	if err != nil {
		return nil, err
	}
	return toCallResult(result)
}

func (s *Server) batchEditOrCreateImages(ctx context.Context, rawArgs json.RawMessage) (*mcp.CallToolResult, error) {
	var args batchArgs
	if err := json.Unmarshal(rawArgs, &args); err != nil {
		return errorCallResult("Invalid arguments: " + err.Error()), nil
	}
	if len(args.Tasks) == 0 {
		return errorCallResult("at least one task is required"), nil
	}
	for i, task := range args.Tasks {
		if err := validateTask(task); err != nil {
			return errorCallResult(fmt.Sprintf("task %d: %v", i+1, err)), nil
		}
	}

	s.log.Debug().
		Str("tool", batchEditOrCreateImagesTool.Name).
		Int("tasks", len(args.Tasks)).
		Msg("tool invoked")

	tasks := make([]imagegen.Task, 0, len(args.Tasks))
	for _, task := range args.Tasks {
		tasks = append(tasks, taskFromArgs(task))
	}

	records := s.executor.RunBatch(context.WithoutCancel(ctx), tasks)

	report, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode batch report: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(report)}},
	}, nil
}

// validateTask re-checks the schema-level bounds at the handler
// boundary; violations come back as error results, never protocol
// errors.
func validateTask(args taskArgs) error {
	if strings.TrimSpace(args.Prompt) == "" {
		return fmt.Errorf("prompt is required")
	}
	if len(args.ImagePaths) > imagegen.MaxContextImages {
		return fmt.Errorf("at most %d context images are allowed, got %d", imagegen.MaxContextImages, len(args.ImagePaths))
	}
	return nil
}

func taskFromArgs(args taskArgs) imagegen.Task {
	return imagegen.Task{
		Prompt:     args.Prompt,
		ImagePaths: args.ImagePaths,
		OutputPath: args.OutputPath,
	}
}

// toCallResult maps executor content onto MCP content blocks.
func toCallResult(result *imagegen.Result) (*mcp.CallToolResult, error) {
	content := make([]mcp.Content, 0, len(result.Content))
	for _, item := range result.Content {
		switch item.Type {
		case imagegen.ContentText:
			content = append(content, &mcp.TextContent{Text: item.Text})
		case imagegen.ContentImage:
			data, err := base64.StdEncoding.DecodeString(item.Data)
			if err != nil {
				return nil, fmt.Errorf("invalid image payload in result: %w", err)
			}
			content = append(content, &mcp.ImageContent{Data: data, MIMEType: item.MimeType})
		}
	}
	return &mcp.CallToolResult{Content: content, IsError: result.IsError}, nil
}

func errorCallResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: message}},
		IsError: true,
	}
}
