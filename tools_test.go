package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/NiuTrans/MCP-DocumentParse/document"
	"github.com/mark3labs/mcp-go/mcp"
)

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("got %d content items, want 1", len(res.Content))
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", res.Content[0])
	}
	return tc.Text
}

func TestJSONResult_ParseWireShape(t *testing.T) {
	res := jsonResult(document.ParseResult{
		Status:      document.StatusSuccess,
		DocumentID:  "id-1",
		TotalChunks: 3,
		Filename:    "report.pdf",
	})

	var payload map[string]any
	if err := json.Unmarshal([]byte(textOf(t, res)), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"status", "document_id", "total_chunks", "filename"} {
		if _, ok := payload[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
	if payload["total_chunks"] != float64(3) {
		t.Errorf("total_chunks = %v, want JSON number 3", payload["total_chunks"])
	}
}

func TestJSONResult_ChunkWireShape(t *testing.T) {
	res := jsonResult(document.ChunkResult{
		Status:       document.StatusSuccess,
		DocumentID:   "id-1",
		CurrentChunk: 0,
		TotalChunks:  3,
		Content:      "# first chunk",
	})

	var payload map[string]any
	if err := json.Unmarshal([]byte(textOf(t, res)), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"status", "document_id", "current_chunk", "total_chunks", "content"} {
		if _, ok := payload[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
	if payload["current_chunk"] != float64(0) {
		t.Errorf("current_chunk = %v, want JSON number 0", payload["current_chunk"])
	}
}

func TestErrorResult_UniformShape(t *testing.T) {
	res := errorResult(errors.New("unsupported file type"))

	var payload map[string]string
	if err := json.Unmarshal([]byte(textOf(t, res)), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload["status"] != "error" {
		t.Errorf("status = %q, want error", payload["status"])
	}
	if payload["error"] != "unsupported file type" {
		t.Errorf("error = %q", payload["error"])
	}
	if len(payload) != 2 {
		t.Errorf("payload has %d keys, want exactly status and error", len(payload))
	}
}
