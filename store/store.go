// Package store keeps parsed documents addressable by id for chunked
// retrieval. Documents are write-once: inserted whole by Put, never mutated.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound means the document id is unknown (or expired).
	ErrNotFound = errors.New("document not found")

	// ErrOutOfRange means the chunk index is outside [0, total_chunks).
	ErrOutOfRange = errors.New("chunk index out of range")
)

// Document is one successfully parsed file.
type Document struct {
	ID        string
	Filename  string
	Chunks    []string
	CreatedAt time.Time
}

// TotalChunks is the number of stored chunks.
func (d *Document) TotalChunks() int {
	return len(d.Chunks)
}

// Chunk is a single retrieval result.
type Chunk struct {
	DocumentID  string
	Index       int
	TotalChunks int
	Content     string
}

// Store is the document registry consumed by the service layer.
type Store interface {
	// Put inserts a new document and returns its generated id.
	Put(filename string, chunks []string) string

	// GetChunk returns chunk index of the given document.
	// Fails with ErrNotFound or ErrOutOfRange.
	GetChunk(documentID string, index int) (Chunk, error)
}

// MemoryStore is the in-process Store backing. With a nonzero TTL, expired
// documents are dropped on access and swept on Put; a zero TTL keeps
// documents for the life of the process.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]*Document
	ttl  time.Duration
	now  func() time.Time
}

// NewMemoryStore creates a MemoryStore. ttl <= 0 disables eviction.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		docs: make(map[string]*Document),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Put inserts the document as a single atomic unit and returns a fresh id.
func (s *MemoryStore) Put(filename string, chunks []string) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	s.docs[id] = &Document{
		ID:        id,
		Filename:  filename,
		Chunks:    chunks,
		CreatedAt: s.now(),
	}
	return id
}

// GetChunk returns one chunk of a stored document. Repeated reads return the
// same content.
func (s *MemoryStore) GetChunk(documentID string, index int) (Chunk, error) {
	s.mu.RLock()
	doc, ok := s.docs[documentID]
	s.mu.RUnlock()

	if ok && s.expired(doc) {
		s.mu.Lock()
		delete(s.docs, documentID)
		s.mu.Unlock()
		ok = false
	}
	if !ok {
		return Chunk{}, fmt.Errorf("%w: %s", ErrNotFound, documentID)
	}

	total := doc.TotalChunks()
	if index < 0 || index >= total {
		return Chunk{}, fmt.Errorf("%w: index %d, total %d (valid 0..%d)",
			ErrOutOfRange, index, total, total-1)
	}
	return Chunk{
		DocumentID:  documentID,
		Index:       index,
		TotalChunks: total,
		Content:     doc.Chunks[index],
	}, nil
}

// Len reports the number of live documents.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, doc := range s.docs {
		if !s.expired(doc) {
			n++
		}
	}
	return n
}

func (s *MemoryStore) expired(doc *Document) bool {
	return s.ttl > 0 && s.now().Sub(doc.CreatedAt) > s.ttl
}

// sweepLocked drops expired documents. Caller holds the write lock.
func (s *MemoryStore) sweepLocked() {
	if s.ttl <= 0 {
		return
	}
	for id, doc := range s.docs {
		if s.expired(doc) {
			delete(s.docs, id)
		}
	}
}
