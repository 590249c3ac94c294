package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lectio/match"
	"lectio/storage"
	"lectio/word"
)

// DocStore keeps analyzed documents as one JSON file per document in a
// directory.
type DocStore struct {
	docDir string

	// In-memory cache
	docs []word.Doc
}

var _ storage.DocRepository = (*DocStore)(nil)

// NewDocStore creates a filesystem document store over docDir.
func NewDocStore(docDir string) (*DocStore, error) {
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	docs := make([]word.Doc, 0, len(files))
	for _, file := range files {
		if filepath.Ext(file.Name()) == ".json" {
			docs = append(docs, word.Doc{
				Title: file.Name(),
			})
		}
	}

	return &DocStore{
		docDir: docDir,
		docs:   docs,
	}, nil
}

// LoadAll preloads all documents into memory. cb, when not nil, is
// called once per document for progress reporting.
func (h *DocStore) LoadAll(cb func(total int, name string)) error {
	total := len(h.docs)
	for i := range h.docs {
		doc := &h.docs[i]

		if cb != nil {
			cb(total, doc.Title)
		}

		fullDoc, err := ReadDoc(filepath.Join(h.docDir, doc.Title))
		if err != nil {
			return err
		}

		doc.Language = fullDoc.Language
		doc.Labels = fullDoc.Labels
		doc.Raw = fullDoc.Raw
		doc.Sentences = fullDoc.Sentences
	}

	return nil
}

// List reports positions in the store's file order as ids; Read
// resolves them.
func (h *DocStore) List() ([]storage.DocInfo, error) {
	out := make([]storage.DocInfo, len(h.docs))
	for i, d := range h.docs {
		out[i] = storage.DocInfo{Id: i, Language: d.Language, Title: d.Title, Labels: d.Labels}
	}

	return out, nil
}

func (h *DocStore) Read(id int) (word.Doc, error) {
	if id < 0 || id >= len(h.docs) {
		return word.Doc{}, fmt.Errorf("doc id out of range: %d", id)
	}

	doc := h.docs[id]
	if doc.Sentences == nil {
		full, err := ReadDoc(filepath.Join(h.docDir, doc.Title))
		if err != nil {
			return word.Doc{}, err
		}
		full.Title = doc.Title
		h.docs[id] = full
		return full, nil
	}

	return doc, nil
}

// FindCandidates scans all loaded documents in memory. Lemma filtering
// happens here so the callback only sees real candidates.
func (h *DocStore) FindCandidates(lemmas []string, after storage.Cursor, limit int, onCandidate func(storage.SentenceResult) error) (storage.Cursor, error) {
	// The whole scan happens in one pass; a later cursor means EOF.
	if after > 0 {
		return after, nil
	}

	sent := 0
	for i := range h.docs {
		doc, err := h.Read(i)
		if err != nil {
			return after, err
		}

		for _, hit := range match.Doc(doc, i, lemmas) {
			err := onCandidate(storage.SentenceResult{
				DocID:    hit.DocId,
				DocTitle: hit.DocTitle,
				Language: doc.Language,
				Sentence: hit.Sentence,
			})
			if err != nil {
				return after, err
			}

			sent++
			if limit > 0 && sent >= limit {
				return 1, nil
			}
		}
	}

	return 1, nil
}

// Write persists the document as <title>.json in the store directory.
func (h *DocStore) Write(doc word.Doc) error {
	if doc.Title == "" {
		return fmt.Errorf("doc has no title")
	}

	name := doc.Title
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(h.docDir, name), data, 0o644); err != nil {
		return err
	}

	doc.Title = name
	h.docs = append(h.docs, doc)

	return nil
}

// ReadDoc reads a Doc JSON from the given path and unmarshals it.
func ReadDoc(path string) (word.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return word.Doc{}, fmt.Errorf("IO error: %w", err)
	}

	var doc word.Doc
	err = json.Unmarshal(f, &doc)
	if err != nil {
		return word.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
	}

	return doc, nil
}
