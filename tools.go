package main

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/NiuTrans/MCP-DocumentParse/document"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MCP tool parameter key constants — shared between schema definitions and
// argument extraction so a typo in one place is caught by the other.
const (
	argFilePath   = "file_path"
	argDocumentID = "document_id"
	argChunkIndex = "chunk_index"
)

const supportedTypesURI = "document://supported-types"

// DocumentService is the surface the tool handlers call into.
// *document.Service implements it; tests can inject a fake.
type DocumentService interface {
	Parse(ctx context.Context, filePath string) (document.ParseResult, error)
	GetChunk(documentID string, chunkIndex int) (document.ChunkResult, error)
}

// registerTools binds MCP tool definitions to their handlers. Every failure
// is returned as the uniform {"status":"error","error":...} JSON payload;
// handlers never propagate a Go error for domain failures.
func registerTools(s *server.MCPServer, svc DocumentService) {
	// parse_document_by_path — convert a local document via the remote API
	s.AddTool(
		mcp.NewTool("parse_document_by_path",
			mcp.WithDescription("Convert a PDF, Word, Excel, or PPT file to Markdown. "+
				"Pass the absolute path of the file, not a relative path. "+
				"Supported formats: "+strings.Join(document.SupportedExtensions(), ", ")+". "+
				"On success returns a document id and the number of chunks; "+
				"fetch the content with get_document_chunk."),
			mcp.WithString(argFilePath,
				mcp.Required(),
				mcp.Description("Absolute path of the document to parse"),
			),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			filePath, _ := req.Params.Arguments[argFilePath].(string)
			res, err := svc.Parse(ctx, filePath)
			if err != nil {
				return errorResult(err), nil
			}
			return jsonResult(res), nil
		},
	)

	// get_document_chunk — fetch one chunk of a parsed document
	s.AddTool(
		mcp.NewTool("get_document_chunk",
			mcp.WithDescription("Return one chunk of a document previously parsed with "+
				"parse_document_by_path. Chunk indexes are zero-based; the total is "+
				"reported in the parse result."),
			mcp.WithString(argDocumentID,
				mcp.Required(),
				mcp.Description("Document id returned by parse_document_by_path"),
			),
			mcp.WithNumber(argChunkIndex,
				mcp.Required(),
				mcp.Description("Zero-based index of the chunk to fetch"),
			),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			documentID, _ := req.Params.Arguments[argDocumentID].(string)
			index, ok := req.Params.Arguments[argChunkIndex].(float64)
			if !ok {
				return errorString(argChunkIndex + " must be an integer"), nil
			}
			res, err := svc.GetChunk(documentID, int(index))
			if err != nil {
				return errorResult(err), nil
			}
			return jsonResult(res), nil
		},
	)
}

// registerResources exposes the static supported-types catalog.
func registerResources(s *server.MCPServer) {
	s.AddResource(
		mcp.NewResource(supportedTypesURI, "Supported file types",
			mcp.WithResourceDescription("File formats accepted by parse_document_by_path"),
			mcp.WithMIMEType("application/json"),
		),
		func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			data, err := json.Marshal(document.SupportedTypes())
			if err != nil {
				return nil, err
			}
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      supportedTypesURI,
					MIMEType: "application/json",
					Text:     string(data),
				},
			}, nil
		},
	)
}

// jsonResult serializes a success payload to a text result.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return errorResult(err)
	}
	return mcp.NewToolResultText(string(data))
}

// errorResult converts any failure into the uniform error payload.
func errorResult(err error) *mcp.CallToolResult {
	data, marshalErr := json.Marshal(document.NewErrorResult(err))
	if marshalErr != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultText(string(data))
}

func errorString(msg string) *mcp.CallToolResult {
	data, err := json.Marshal(document.ErrorResult{Status: document.StatusError, Error: msg})
	if err != nil {
		return mcp.NewToolResultError(msg)
	}
	return mcp.NewToolResultText(string(data))
}
