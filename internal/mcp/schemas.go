package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// answerTool returns the tool definition for answer
func answerTool() mcp.Tool {
	return mcp.Tool{
		Name:        "answer",
		Description: "Answer a question from the local knowledge base using recursive lexical search",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Natural language question",
				},
			},
			Required: []string{"query"},
		},
	}
}

// contextStatsTool returns the tool definition for context_stats
func contextStatsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "context_stats",
		Description: "Report which documents were loaded and how many chunks they produced",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
