// Package mcp implements the Model Context Protocol server, exposing the
// ingredient database to LLMs. This enables AI assistants to validate the
// dataset and query ingredients through a standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP
// clients.
//
// Design: the dataset is reloaded on each tool call rather than held open.
// The data is small, files are user-edited between calls, and a stale
// snapshot would make the validate tool report fixed problems as broken.
func Serve(dataDir string, maxFileSize int64) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	h := &handlers{dataDir: dataDir, maxFileSize: maxFileSize}

	s := server.NewMCPServer(
		"sid",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)

	slog.Info("sid MCP server ready", "version", Version, "transport", "stdio", "data", dataDir)

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers with access to the dataset.
type handlers struct {
	dataDir     string
	maxFileSize int64
}
