// tools.go implements the MCP tools for dataset validation and queries.
//
// Design: results are returned as pretty-printed JSON because LLMs parse
// structured output more reliably when it is formatted for readability.
// Tool failures are communicated via MCP's error result mechanism rather
// than Go errors, giving the LLM actionable feedback it can retry or
// report to the user.

package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/saffron-lang/sid/internal/catalog"
	"github.com/saffron-lang/sid/internal/log"
	"github.com/saffron-lang/sid/internal/report"
	"github.com/saffron-lang/sid/internal/validate"
)

// registerTools exposes sid operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("sid_validate",
			mcp.WithDescription("Validate every ingredient file against the SID rules. Returns per-file errors/warnings and a summary."),
		),
		h.validateDataset,
	)

	s.AddTool(
		mcp.NewTool("sid_get",
			mcp.WithDescription("Look up one ingredient by id"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Ingredient id, e.g. \"beef\"")),
		),
		h.getIngredient,
	)

	s.AddTool(
		mcp.NewTool("sid_search",
			mcp.WithDescription("Search ingredients by English name or id (case-insensitive substring)"),
			mcp.WithString("query", mcp.Required(), mcp.Description("Search text")),
			mcp.WithString("category", mcp.Description("Restrict matches to one category")),
		),
		h.searchIngredients,
	)

	s.AddTool(
		mcp.NewTool("sid_stats",
			mcp.WithDescription("Dataset totals: ingredient count, per-category breakdown, sourced count"),
		),
		h.datasetStats,
	)
}

// validateDataset handles sid_validate tool calls.
func (h *handlers) validateDataset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	results, sum, err := validate.Run(h.dataDir, h.maxFileSize)

	log.Event("mcp:sid_validate", "validate").Path(h.dataDir).
		Detail("failed", sum.Failed).Detail("total", sum.Total).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(report.Report{Results: results, Summary: sum})
}

// getIngredient handles sid_get tool calls.
func (h *handlers) getIngredient(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil //nolint:nilerr
	}

	c, _, err := catalog.Load(h.dataDir)

	log.Event("mcp:sid_get", "show").Path(id).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ing, ok := c.Get(id)
	if !ok {
		return mcp.NewToolResultError("ingredient not found: " + id), nil
	}
	return jsonResult(ing)
}

// searchIngredients handles sid_search tool calls.
func (h *handlers) searchIngredients(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil //nolint:nilerr
	}
	category := getString(req, "category", "")

	c, _, err := catalog.Load(h.dataDir)
	if err != nil {
		log.Event("mcp:sid_search", "search").Detail("query", query).Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	matches := c.Search(query)
	if category != "" {
		filtered := matches[:0]
		for _, ing := range matches {
			if ing.Category == category {
				filtered = append(filtered, ing)
			}
		}
		matches = filtered
	}

	log.Event("mcp:sid_search", "search").
		Detail("query", query).Detail("count", len(matches)).Write(nil)

	if matches == nil {
		matches = []*catalog.Ingredient{}
	}
	return jsonResult(matches)
}

// datasetStats handles sid_stats tool calls.
func (h *handlers) datasetStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, _, err := catalog.Load(h.dataDir)

	log.Event("mcp:sid_stats", "stats").Path(h.dataDir).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(c.Stats())
}

// getString extracts a string parameter from the MCP request, returning the
// provided default if the parameter is missing or cannot be parsed as a
// string. Optional parameters should never cause tool failures; an LLM
// omitting one gets the default instead of a type error.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// jsonResult serialises any value as pretty-printed JSON and wraps it in an
// MCP text result for return to the LLM client.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
