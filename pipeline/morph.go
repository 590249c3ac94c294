package pipeline

import (
	"lectio/lexicon"
	"lectio/word"
)

// MorphTagger fills the morphological feature set of every word from
// the same lexicon lookups the tagger uses. Words with no matching
// entry or rule keep an empty feature set; downstream consumers treat
// that as "no morphology available".
type MorphTagger struct {
	Lex *lexicon.Lexicon
}

func (m *MorphTagger) Name() string { return "morph" }

func (m *MorphTagger) Run(doc *word.Doc) error {
	for si := range doc.Sentences {
		words := doc.Sentences[si].Words
		for wi := range words {
			w := &words[wi]

			if e, ok := m.Lex.Entry(w.Text); ok {
				w.Features = word.ParseFeatures(e.Feats)
				continue
			}

			if r, ok := m.Lex.Suffix(w.Text); ok {
				w.Features = word.ParseFeatures(r.Feats)
			}
		}
	}

	return nil
}
