// Package server exposes the image generation tools over the Model
// Context Protocol.
package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/nachoal/nano-banana-mcp/imagegen"
)

const (
	serverName    = "nano-banana-mcp"
	serverVersion = "1.0.0"
)

// Server wires the task executor onto an MCP server.
type Server struct {
	mcp      *mcp.Server
	executor *imagegen.Executor
	log      zerolog.Logger
}

// New creates the MCP server and registers both tools.
func New(executor *imagegen.Executor, log zerolog.Logger) *Server {
	s := &Server{executor: executor, log: log}

	s.mcp = mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, &mcp.ServerOptions{
		Instructions: serverInstructions,
	})

	s.mcp.AddTool(editOrCreateImageTool, s.handleEditOrCreateImage)
	s.mcp.AddTool(batchEditOrCreateImagesTool, s.handleBatchEditOrCreateImages)

	return s
}

// Run serves MCP over stdio until ctx is cancelled or stdin closes.
// Stdout belongs to the protocol; diagnostics go to the logger only.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info().
		Str("name", serverName).
		Str("version", serverVersion).
		Msg("serving MCP over stdio")

	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
