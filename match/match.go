package match

import (
	"lectio/word"
)

// Hit is one sentence that contains all searched lemmas.
type Hit struct {
	DocId      int
	DocTitle   string
	SentenceId int
	Sentence   word.Sentence
}

// Sentence reports whether every lemma occurs in the sentence.
func Sentence(s word.Sentence, lemmas []string) bool {
	if len(lemmas) == 0 {
		return false
	}

	for _, lemma := range lemmas {
		found := false
		for _, w := range s.Words {
			if w.Lemma == lemma {
				found = true
				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}

// Doc returns the sentences of the document matching all lemmas.
func Doc(doc word.Doc, docId int, lemmas []string) []Hit {
	var hits []Hit
	for _, s := range doc.Sentences {
		if Sentence(s, lemmas) {
			hits = append(hits, Hit{
				DocId:      docId,
				DocTitle:   doc.Title,
				SentenceId: s.Id,
				Sentence:   s,
			})
		}
	}

	return hits
}
