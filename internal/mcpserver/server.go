// Package mcpserver serves the tool catalogue over the Model Context Protocol
// on stdio.
package mcpserver

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"fattureincloud-mcp/internal/logger"
	"fattureincloud-mcp/internal/tools"
)

// Name is the server name announced to clients.
const Name = "fattureincloud"

// Server binds a tool dispatcher to an MCP server.
type Server struct {
	mcp        *server.MCPServer
	dispatcher *tools.Dispatcher
	log        zerolog.Logger
}

// toolCall is the part of a tools/call request needed to route it.
type toolCall struct {
	ID     mcp.RequestId `json:"id"`
	Method string        `json:"method"`
	Params struct {
		Name      string         `json:"name"`
		Arguments map[string]any `json:"arguments"`
	} `json:"params"`
}

// New registers every tool of the dispatcher's registry on a new MCP server.
func New(dispatcher *tools.Dispatcher, version string) *Server {
	s := &Server{
		mcp:        server.NewMCPServer(Name, version, server.WithToolCapabilities(false)),
		dispatcher: dispatcher,
		log:        logger.WithComponent("mcpserver"),
	}

	for _, def := range dispatcher.Registry().All() {
		tool := mcp.NewToolWithRawSchema(def.Name, def.Description, def.InputSchema)
		tool.Annotations.ReadOnlyHint = boolPtr(!def.RequiresConfirmation)
		tool.Annotations.DestructiveHint = boolPtr(def.Irreversible)
		s.mcp.AddTool(tool, s.handle)
	}

	s.log.Debug().
		Strs("tools", dispatcher.Registry().Names()).
		Msg("Tools registered")
	return s
}

// MCP returns the underlying protocol server.
func (s *Server) MCP() *server.MCPServer {
	return s.mcp
}

// HandleMessage answers one JSON-RPC message. Calls to tools outside the
// catalogue go to the dispatcher so the client gets a text result instead of
// a protocol error; everything else is handled by the MCP server.
func (s *Server) HandleMessage(ctx context.Context, raw json.RawMessage) mcp.JSONRPCMessage {
	var call toolCall
	if err := json.Unmarshal(raw, &call); err == nil && call.Method == string(mcp.MethodToolsCall) {
		if _, ok := s.dispatcher.Registry().Get(call.Params.Name); !ok {
			res := s.dispatcher.Call(ctx, call.Params.Name, call.Params.Arguments)
			return mcp.JSONRPCResponse{
				JSONRPC: mcp.JSONRPC_VERSION,
				ID:      call.ID,
				Result:  mcp.NewToolResultText(res.Text),
			}
		}
	}
	return s.mcp.HandleMessage(ctx, raw)
}

// handle forwards a tool call to the dispatcher. Failures are reported as
// text content, never as protocol errors.
func (s *Server) handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res := s.dispatcher.Call(ctx, req.Params.Name, req.GetArguments())
	return mcp.NewToolResultText(res.Text), nil
}

// ServeStdio serves newline-delimited requests read from in, writing responses
// to out, until in is closed or ctx is cancelled.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	s.log.Info().
		Str("server", Name).
		Int("tools", len(s.dispatcher.Registry().All())).
		Msg("Serving MCP over stdio")

	lines := make(chan []byte)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		reader := bufio.NewReader(in)
		for {
			line, err := reader.ReadBytes('\n')
			if len(line) > 0 {
				select {
				case lines <- line:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if err != io.EOF {
					readErr <- err
				}
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("MCP stdio server stopped")
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					s.log.Error().Err(err).Msg("MCP stdio server stopped")
					return fmt.Errorf("failed to read request: %w", err)
				default:
				}
				s.log.Info().Msg("MCP stdio server stopped")
				return nil
			}
			if len(bytes.TrimSpace(line)) == 0 {
				continue
			}
			resp := s.HandleMessage(ctx, json.RawMessage(line))
			if resp == nil {
				continue
			}
			if err := writeMessage(out, resp); err != nil {
				s.log.Error().Err(err).Msg("MCP stdio server stopped")
				return err
			}
		}
	}
}

// writeMessage writes one JSON-RPC message followed by a newline.
func writeMessage(out io.Writer, msg mcp.JSONRPCMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	if _, err := fmt.Fprintf(out, "%s\n", data); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

func boolPtr(b bool) *bool {
	return &b
}
