// Package main provides the entry point for the news summarizer MCP server.
//
// The server lets AI agents list articles, read them and request summaries over stdio.
//
// Configuration:
//
//	NEWS_SUMMARIZER_API_URL - Base URL of the API (default: http://localhost:8080)
package main

import (
	"log"
	"os"

	"github.com/news-summarizer/news-summarizer/cmd/mcp/client"
	"github.com/news-summarizer/news-summarizer/cmd/mcp/server"
)

func main() {
	apiURL := os.Getenv("NEWS_SUMMARIZER_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	apiClient := client.NewClient(apiURL)
	srv := server.NewServer(apiClient)

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
