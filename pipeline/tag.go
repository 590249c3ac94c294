package pipeline

import (
	"lectio/lexicon"
	"lectio/word"
)

// Tagger assigns universal and fine-grained part-of-speech tags from
// the lexicon: closed-class entries first, then suffix rules, then the
// open-class default.
type Tagger struct {
	Lex *lexicon.Lexicon
}

// Words not covered by any lexicon rule default to NOUN, the largest
// open class.
const defaultUPos = "NOUN"

func (t *Tagger) Name() string { return "tag" }

func (t *Tagger) Run(doc *word.Doc) error {
	for si := range doc.Sentences {
		words := doc.Sentences[si].Words
		for wi := range words {
			t.tag(&words[wi])
		}
	}

	return nil
}

func (t *Tagger) tag(w *word.Word) {
	if t.Lex.IsName(w.Text) {
		w.NamedEntity = true
	}

	if e, ok := t.Lex.Entry(w.Text); ok {
		w.UPos = e.UPos
		w.Tag = e.Tag
		return
	}

	if r, ok := t.Lex.Suffix(w.Text); ok {
		w.UPos = r.UPos
		w.Tag = r.Tag
		return
	}

	if w.NamedEntity {
		w.UPos = "PROPN"
		return
	}

	w.UPos = defaultUPos
}
