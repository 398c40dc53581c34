package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/typist"
	"github.com/aretw0/typist/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// StagesURI is the resource listing the pipeline stages.
const StagesURI = "typist://stages"

// Engine defines the interface required by the MCP server to interact with typist.
type Engine interface {
	Process(event domain.Event) []domain.Event
	Stages() []string
}

// TranslateArgs are the arguments of the translate_event tool.
type TranslateArgs struct {
	Event string `json:"event"`
}

// Server wraps the typist Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{
		engine:    engine,
		logger:    logger,
		mcpServer: server.NewMCPServer("typist-mcp", strings.TrimSpace(typist.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops it when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: translate_event
	translateTool := mcp.NewTool("translate_event",
		mcp.WithDescription("Translate an engine event into the injection commands sent to the keyboard backend. "+
			"Returns a JSON array of the processed events."),
		mcp.WithString("event", mcp.Required(),
			mcp.Description(`JSON event, e.g. {"type":"rendered","payload":{"match_id":1,"body":"hi"}}`)),
	)
	s.mcpServer.AddTool(translateTool, mcp.NewTypedToolHandler(s.handleTranslate))
}

func (s *Server) handleTranslate(ctx context.Context, request mcp.CallToolRequest, args TranslateArgs) (*mcp.CallToolResult, error) {
	var ev domain.Event
	if err := json.Unmarshal([]byte(args.Event), &ev); err != nil {
		s.logger.Warn("MCP Translate: Invalid event", "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("invalid event: %v", err)), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s.engine.Process(ev)); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(strings.TrimSuffix(buf.String(), "\n")), nil
}

func (s *Server) registerResources() {
	// EXPOSE: typist://stages
	s.mcpServer.AddResource(mcp.NewResource(StagesURI, "Pipeline Stages",
		mcp.WithMIMEType("application/json"),
	), s.handleStages)
}

func (s *Server) handleStages(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(s.engine.Stages())
	if err != nil {
		return nil, fmt.Errorf("failed to encode stages: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      StagesURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
