package match

import (
	"testing"

	"lectio/word"
)

func sentenceOf(lemmas ...string) word.Sentence {
	words := make([]word.Word, len(lemmas))
	for i, l := range lemmas {
		words[i] = word.Word{Index: i, Text: l, Lemma: l}
	}
	return word.Sentence{Words: words}
}

func TestSentenceAllPresent(t *testing.T) {
	s := sentenceOf("gallia", "sum", "omnis")

	if !Sentence(s, []string{"sum", "gallia"}) {
		t.Fatal("expected a match when all lemmas occur")
	}
}

func TestSentenceOneMissing(t *testing.T) {
	s := sentenceOf("gallia", "sum")

	if Sentence(s, []string{"sum", "bellum"}) {
		t.Fatal("expected no match when a lemma is missing")
	}
}

func TestSentenceEmptyLemmas(t *testing.T) {
	s := sentenceOf("gallia")

	if Sentence(s, nil) {
		t.Fatal("an empty lemma list matches nothing")
	}
}

func TestDoc(t *testing.T) {
	doc := word.Doc{
		Title: "bellum-gallicum",
		Sentences: []word.Sentence{
			{Id: 0, Words: sentenceOf("gallia", "sum").Words},
			{Id: 1, Words: sentenceOf("belgae", "incolo").Words},
			{Id: 2, Words: sentenceOf("gallia", "appello").Words},
		},
	}

	hits := Doc(doc, 7, []string{"gallia"})
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}

	if hits[0].DocId != 7 || hits[0].DocTitle != "bellum-gallicum" {
		t.Errorf("hit metadata wrong: %+v", hits[0])
	}
	if hits[0].SentenceId != 0 || hits[1].SentenceId != 2 {
		t.Errorf("unexpected sentence ids: %d, %d", hits[0].SentenceId, hits[1].SentenceId)
	}
}
