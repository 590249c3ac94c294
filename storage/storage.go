package storage

import (
	"lectio/word"
)

// Cursor for paginated lemma-based queries.
type Cursor int64

// SentenceResult is one sentence row returned by FindCandidates.
type SentenceResult struct {
	RowID    int64
	DocID    int
	DocTitle string
	Language string
	Sentence word.Sentence
}

// DocInfo is the stored-document metadata returned by List. Id is the
// backend's own identifier and is only meaningful as an argument to
// Read on the same store.
type DocInfo struct {
	Id       int
	Language string
	Title    string
	Labels   []string
}

// DocReader defines read operations for analyzed-document storage.
type DocReader interface {
	// List returns the metadata of stored documents. Sentences are
	// not loaded.
	List() ([]DocInfo, error)

	// Read returns a full document by the id reported in List.
	Read(id int) (word.Doc, error)

	// FindCandidates streams sentences containing ALL given lemmas,
	// resuming after the given cursor. It calls onCandidate for each
	// result and returns the new cursor.
	FindCandidates(lemmas []string, after Cursor, limit int, onCandidate func(SentenceResult) error) (Cursor, error)
}

// DocWriter defines write operations for analyzed-document storage.
type DocWriter interface {
	// Write persists a document with its sentences and lemma index.
	Write(doc word.Doc) error
}

// DocRepository combines read and write operations.
type DocRepository interface {
	DocReader
	DocWriter
}
