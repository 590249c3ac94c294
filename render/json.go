package render

import (
	"encoding/json"
	"io"

	"lectio/word"
)

// JSONRenderer writes annotated documents as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Doc serializes one annotated document.
func (r *JSONRenderer) Doc(doc word.Doc) error {
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Word serializes a single annotated word.
func (r *JSONRenderer) Word(w word.Word) error {
	return json.NewEncoder(r.W).Encode(w)
}
