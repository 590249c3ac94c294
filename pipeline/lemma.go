package pipeline

import (
	"lectio/lexicon"
	"lectio/word"
)

// Lemmatizer resolves the base form of every word. In identity mode
// (languages without full lemmatization support) the surface form is
// copied instead. The stem field is filled from the lexicon's ending
// list in both modes.
type Lemmatizer struct {
	Lex      *lexicon.Lexicon
	Identity bool
}

func (l *Lemmatizer) Name() string { return "lemma" }

func (l *Lemmatizer) Run(doc *word.Doc) error {
	for si := range doc.Sentences {
		words := doc.Sentences[si].Words
		for wi := range words {
			w := &words[wi]

			if l.Identity {
				w.Lemma = w.Text
			} else {
				w.Lemma = l.Lex.LemmaOf(w.Text)
			}

			w.Stem = l.Lex.StemOf(w.Text)
		}
	}

	return nil
}
