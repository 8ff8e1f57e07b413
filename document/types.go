package document

// Result statuses as seen by MCP callers.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ParseResult is the success payload of parse_document_by_path.
type ParseResult struct {
	Status      string `json:"status"`
	DocumentID  string `json:"document_id"`
	TotalChunks int    `json:"total_chunks"`
	Filename    string `json:"filename"`
}

// ChunkResult is the success payload of get_document_chunk. CurrentChunk
// echoes the requested zero-based index.
type ChunkResult struct {
	Status       string `json:"status"`
	DocumentID   string `json:"document_id"`
	CurrentChunk int    `json:"current_chunk"`
	TotalChunks  int    `json:"total_chunks"`
	Content      string `json:"content"`
}

// ErrorResult is the uniform failure payload of every tool.
type ErrorResult struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// NewErrorResult wraps an error message in the uniform failure shape.
func NewErrorResult(err error) ErrorResult {
	return ErrorResult{Status: StatusError, Error: err.Error()}
}
