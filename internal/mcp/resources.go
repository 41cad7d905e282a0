// resources.go implements MCP resource handlers for ingredient access.
//
// MCP resources provide read-only access to ingredients via URI schemes,
// enabling LLM clients to reference entries without using tools. This is
// useful for context loading where the LLM needs an ingredient's data but
// isn't performing an action.
//
// Design: Resource URIs follow the pattern sid://ingredients/{id}. The
// content is the entry as JSON, mirroring the on-disk file.

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/saffron-lang/sid/internal/catalog"
)

var (
	// ErrInvalidURI indicates a malformed resource URI, helping clients
	// debug URI construction issues.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrEmptyID indicates a missing ingredient id in a resource URI.
	ErrEmptyID = errors.New("empty ingredient id")
)

// registerResources adds URI-based resource access for direct ingredient reads.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"sid://ingredients/{id}",
			"Ingredient",
			mcp.WithTemplateDescription("Read one ingredient entry by id"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		h.readIngredient,
	)
}

// readIngredient reads an ingredient and returns it as resource contents.
func (h *handlers) readIngredient(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	id, err := parseIngredientURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	c, _, err := catalog.Load(h.dataDir)
	if err != nil {
		return nil, err
	}
	ing, ok := c.Get(id)
	if !ok {
		return nil, fmt.Errorf("ingredient not found: %s", id)
	}

	data, err := json.MarshalIndent(ing, "", "  ")
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// parseIngredientURI extracts the ingredient id from a resource URI.
// Supports: sid://ingredients/{id}
func parseIngredientURI(uri string) (string, error) {
	const prefix = "sid://ingredients/"
	if !strings.HasPrefix(uri, prefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	id := strings.TrimPrefix(uri, prefix)
	if id == "" {
		return "", ErrEmptyID
	}
	return id, nil
}
