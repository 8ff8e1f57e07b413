package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/NiuTrans/MCP-DocumentParse/config"
	"github.com/NiuTrans/MCP-DocumentParse/docparse"
	"github.com/NiuTrans/MCP-DocumentParse/document"
	"github.com/NiuTrans/MCP-DocumentParse/store"
	"github.com/mark3labs/mcp-go/server"
)

// Server identity constants.
const (
	serverName    = "niutrans-document-parse"
	serverVersion = "0.1.0"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("configuration error: %v\n", err)
	}

	// stdout carries the MCP stdio protocol; logs must go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	client := docparse.NewClient(cfg.BaseURL, cfg.APIKey, cfg.AppID, cfg.PollInterval)
	docs := store.NewMemoryStore(cfg.DocumentTTL)
	svc := document.NewService(cfg, client, docs, logger)

	s := server.NewMCPServer(serverName, serverVersion,
		server.WithResourceCapabilities(false, false))
	registerTools(s, svc)
	registerResources(s)

	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("server error: %v\n", err)
	}
}
