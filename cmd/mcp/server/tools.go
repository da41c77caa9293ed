package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/news-summarizer/news-summarizer/cmd/mcp/client"
)

func (s *Server) handleListArticles(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	page, pageSize := parsePagination(request.GetArguments())

	result, err := s.client.ListArticles(ctx, page, pageSize)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list articles: %v", err)), nil
	}

	if len(result.Data) == 0 {
		return mcp.NewToolResultText("No articles found."), nil
	}

	return formatJSONResult(
		fmt.Sprintf("Found %d article(s) of %d:", len(result.Data), result.Metadata.TotalRows),
		result.Data,
	)
}

func (s *Server) handleGetArticle(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	articleID, ok := parseArticleID(request.GetArguments())
	if !ok {
		return mcp.NewToolResultError("article_id is required"), nil
	}

	article, err := s.client.GetArticle(ctx, articleID)
	if errors.Is(err, client.ErrNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("no article with ID %d", articleID)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get article: %v", err)), nil
	}

	return formatJSONResult("", article)
}

func (s *Server) handleSummarizeArticle(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	articleID, ok := parseArticleID(request.GetArguments())
	if !ok {
		return mcp.NewToolResultError("article_id is required"), nil
	}

	summary, err := s.client.GetArticleSummary(ctx, articleID)
	if errors.Is(err, client.ErrNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("no article with ID %d", articleID)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to summarize article: %v", err)), nil
	}

	return mcp.NewToolResultText(summary.Summary), nil
}

func parseArticleID(args map[string]any) (int64, bool) {
	id, ok := args["article_id"].(float64)
	if !ok || id < 1 || id != float64(int64(id)) {
		return 0, false
	}
	return int64(id), true
}

func parsePagination(args map[string]any) (page, pageSize int) {
	page = 1
	pageSize = 50

	if p, ok := args["page"].(float64); ok && p > 0 {
		page = int(p)
	}
	if ps, ok := args["page_size"].(float64); ok && ps > 0 {
		pageSize = min(int(ps), 200)
	}
	return page, pageSize
}

func formatJSONResult(heading string, v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format result: %v", err)), nil
	}

	if heading == "" {
		return mcp.NewToolResultText(string(data)), nil
	}
	return mcp.NewToolResultText(heading + "\n\n" + string(data)), nil
}
