package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"rlm/internal/service"
)

const (
	// ServerName is the MCP server name
	ServerName = "rlm"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Answerer is the subset of the service the MCP tools need.
type Answerer interface {
	Answer(query string) string
	Stats() service.Stats
}

// Server exposes the assistant as MCP tools over stdio.
type Server struct {
	mcp       *server.MCPServer
	assistant Answerer
}

// NewServer creates a new MCP server instance
func NewServer(assistant Answerer) *Server {
	s := &Server{
		mcp:       server.NewMCPServer(ServerName, ServerVersion),
		assistant: assistant,
	}
	s.registerTools()
	return s
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(answerTool(), s.handleAnswer)
	s.mcp.AddTool(contextStatsTool(), s.handleContextStats)
}
