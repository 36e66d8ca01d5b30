package mcp

import (
	"encoding/json"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bioseek/bioseek/internal/errors"
)

// toJSON marshals v to a JSON string. On error it returns the error message.
func toJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return `{"error":"` + err.Error() + `"}`
	}
	return string(b)
}

// textResult wraps a text payload in a successful CallToolResult.
func textResult(text string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: text}},
	}
}

// errResult returns a CallToolResult flagged as an error.
func errResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}

// clientErrResult renders a client error as a JSON error payload so the
// calling agent sees both the message and the suggestion.
func clientErrResult(err error) *gomcp.CallToolResult {
	if ce := errors.AsClient(err); ce != nil {
		return &gomcp.CallToolResult{
			Content: []gomcp.Content{&gomcp.TextContent{Text: toJSON(ce)}},
			IsError: true,
		}
	}
	return errResult(err.Error())
}
