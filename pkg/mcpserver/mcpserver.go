// Package mcpserver exposes a calculator session as tools over the Model
// Context Protocol, using the official MCP Go SDK.
package mcpserver

import (
	"context"
	"encoding/json"
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler runs a tool call. input is the raw JSON arguments object; the
// returned text becomes the single content item of the result.
type Handler func(ctx context.Context, input json.RawMessage) (string, error)

// Tool describes one calculator operation offered to MCP clients.
type Tool struct {
	Name        string
	Description string
	InputSchema json.RawMessage
	Handler     Handler
}

// Server wraps an mcp.Server that only carries calculator tools.
type Server struct {
	sdk *mcp.Server
}

// New returns a Server announcing itself as name/version.
func New(name, version string) *Server {
	return &Server{
		sdk: mcp.NewServer(&mcp.Implementation{Name: name, Version: version}, nil),
	}
}

// Register adds tools. A later tool with the same name replaces an earlier one.
func (s *Server) Register(tools ...Tool) {
	for _, t := range tools {
		s.sdk.AddTool(&mcp.Tool{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
		}, callTool(t.Handler))
	}
}

// Serve speaks newline-delimited JSON-RPC over in/out until ctx is done or
// the client hangs up. in and out are not closed.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	return s.run(ctx, &mcp.IOTransport{
		Reader: io.NopCloser(in),
		Writer: nopWriteCloser{out},
	})
}

func (s *Server) run(ctx context.Context, transport mcp.Transport) error {
	return s.sdk.Run(ctx, transport)
}

// callTool adapts h to the SDK. A handler error is a tool result with IsError
// set, not a protocol error, so the client sees the message.
func callTool(h Handler) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input := req.Params.Arguments
		if len(input) == 0 {
			input = json.RawMessage("{}")
		}

		text, err := h(ctx, input)
		if err != nil {
			return textResult(err.Error(), true), nil
		}

		return textResult(text, false), nil
	}
}

func textResult(text string, isError bool) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: isError,
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
