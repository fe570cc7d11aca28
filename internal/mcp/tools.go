package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeEmptyQuery    = -32004 // Query parameter is empty
)

// handleAnswer handles the answer tool invocation
func (s *Server) handleAnswer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}
	query, ok := args["query"].(string)
	if !ok || strings.TrimSpace(query) == "" {
		return nil, newMCPError(ErrorCodeEmptyQuery, "query parameter is required and cannot be empty", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	}
	return mcp.NewToolResultText(s.assistant.Answer(query)), nil
}

// handleContextStats handles the context_stats tool invocation
func (s *Server) handleContextStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats := s.assistant.Stats()
	skipped := stats.FilesSkipped
	if skipped == nil {
		skipped = []string{}
	}
	sources := stats.Sources
	if sources == nil {
		sources = []string{}
	}
	response := map[string]interface{}{
		"files_loaded":  stats.FilesLoaded,
		"files_skipped": skipped,
		"sources":       sources,
		"chunks":        stats.Chunks,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}
