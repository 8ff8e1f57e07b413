// Package document orchestrates the parse and retrieval operations: validate
// the input file, delegate conversion to the remote API, chunk the returned
// Markdown, and keep the result addressable through the store.
package document

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/NiuTrans/MCP-DocumentParse/chunker"
	"github.com/NiuTrans/MCP-DocumentParse/config"
	"github.com/NiuTrans/MCP-DocumentParse/store"
)

// Converter is the remote conversion dependency.
// docparse.Client implements it; tests inject a fake.
type Converter interface {
	Convert(ctx context.Context, filePath string) (string, error)
}

// Service wires the converter, the chunking policy, and the document store.
type Service struct {
	conv  Converter
	store store.Store
	cfg   *config.Config
	log   *slog.Logger
}

// NewService creates a Service. A nil logger disables logging.
func NewService(cfg *config.Config, conv Converter, st store.Store, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{conv: conv, store: st, cfg: cfg, log: log}
}

// Parse converts the file at filePath and stores the chunked result.
// Validation failures and upstream failures come back as plain errors; the
// tool boundary turns them into the uniform error payload.
func (s *Service) Parse(ctx context.Context, filePath string) (ParseResult, error) {
	if strings.TrimSpace(filePath) == "" {
		return ParseResult{}, fmt.Errorf("file_path is required")
	}
	if !filepath.IsAbs(filePath) {
		return ParseResult{}, fmt.Errorf("file_path must be an absolute path: %s", filePath)
	}
	if !IsSupported(filePath) {
		return ParseResult{}, fmt.Errorf("unsupported file type %q (supported: %s)",
			filepath.Ext(filePath), strings.Join(SupportedExtensions(), ", "))
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return ParseResult{}, fmt.Errorf("file not found: %s", filePath)
	}
	if info.Size() > s.cfg.MaxFileSizeBytes {
		return ParseResult{}, fmt.Errorf("file too large: %d bytes (max %d MB)",
			info.Size(), s.cfg.MaxFileSizeMB())
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.ConvertTimeout)
	defer cancel()

	raw, err := s.conv.Convert(ctx, filePath)
	if err != nil {
		return ParseResult{}, fmt.Errorf("conversion failed: %w", err)
	}

	chunks := chunker.Split(chunker.Clean(raw), s.cfg.ChunkSize)
	filename := filepath.Base(filePath)
	id := s.store.Put(filename, chunks)

	s.log.Info("document parsed",
		"document_id", id, "filename", filename, "total_chunks", len(chunks))

	return ParseResult{
		Status:      StatusSuccess,
		DocumentID:  id,
		TotalChunks: len(chunks),
		Filename:    filename,
	}, nil
}

// GetChunk returns one chunk of a previously parsed document.
func (s *Service) GetChunk(documentID string, chunkIndex int) (ChunkResult, error) {
	if strings.TrimSpace(documentID) == "" {
		return ChunkResult{}, fmt.Errorf("document_id is required")
	}

	chunk, err := s.store.GetChunk(documentID, chunkIndex)
	if err != nil {
		return ChunkResult{}, err
	}
	return ChunkResult{
		Status:       StatusSuccess,
		DocumentID:   chunk.DocumentID,
		CurrentChunk: chunk.Index,
		TotalChunks:  chunk.TotalChunks,
		Content:      chunk.Content,
	}, nil
}
