package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"article://{id}",
			"Individual news article",
			mcp.WithTemplateDescription(
				"Fetch a specific article by its numeric ID, including title, link, "+
					"source, publication date and full content."),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleArticleResource,
	)
}

func (s *Server) handleArticleResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	if !strings.HasPrefix(uri, "article://") {
		return nil, fmt.Errorf("invalid article URI format: %s", uri)
	}

	articleID, err := strconv.ParseInt(strings.TrimPrefix(uri, "article://"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid article ID in URI %s: %w", uri, err)
	}

	article, err := s.client.GetArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch article %d: %w", articleID, err)
	}

	data, err := json.MarshalIndent(article, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal article: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
