// Package server provides the MCP server implementation.
package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/news-summarizer/news-summarizer/cmd/mcp/client"
	"github.com/news-summarizer/news-summarizer/internal/domain"
)

// API is the subset of the news summarizer API the MCP server exposes.
type API interface {
	ListArticles(ctx context.Context, page, pageSize int) (*client.ArticlesResponse, error)
	GetArticle(ctx context.Context, articleID int64) (*domain.Article, error)
	GetArticleSummary(ctx context.Context, articleID int64) (*domain.ArticleSummary, error)
}

// Server is the MCP server for the news summarizer.
type Server struct {
	client    API
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with the given API client.
func NewServer(apiClient API) *Server {
	s := &Server{
		client: apiClient,
	}

	s.mcpServer = server.NewMCPServer(
		"news-summarizer",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_articles",
		mcp.WithDescription(
			"List the latest news articles, newest first. "+
				"Returns titles, links, sources and publication dates."),
		mcp.WithNumber("page",
			mcp.Description("Page number for pagination (1-indexed, default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of articles per page (default: 50, max: 200)"),
		),
	), s.handleListArticles)

	s.mcpServer.AddTool(mcp.NewTool("get_article",
		mcp.WithDescription("Get full details of a specific article, including its content, by its numeric ID."),
		mcp.WithNumber("article_id",
			mcp.Required(),
			mcp.Description("The ID of the article to retrieve"),
		),
	), s.handleGetArticle)

	s.mcpServer.AddTool(mcp.NewTool("summarize_article",
		mcp.WithDescription(
			"Get a concise summary of an article by its numeric ID. "+
				"Summaries are cached for a day; the result says whether it came from the cache."),
		mcp.WithNumber("article_id",
			mcp.Required(),
			mcp.Description("The ID of the article to summarize"),
		),
	), s.handleSummarizeArticle)
}
