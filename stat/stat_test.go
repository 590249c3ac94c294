package stat

import (
	"testing"

	"lectio/word"
)

func TestAggregate(t *testing.T) {
	doc := word.Doc{
		Sentences: []word.Sentence{
			{Words: []word.Word{
				{Text: "Gallia", UPos: "PROPN"},
				{Text: "est", UPos: "AUX"},
				{Text: "omnis", UPos: "ADJ"},
			}},
			{Words: []word.Word{
				{Text: "Galli", UPos: "PROPN"},
			}},
		},
	}

	h := NewHandler()
	h.Aggregate(doc)
	s := h.Get()

	if s.NumSentences != 2 {
		t.Errorf("expected 2 sentences, got %d", s.NumSentences)
	}
	if s.NumWords != 4 {
		t.Errorf("expected 4 words, got %d", s.NumWords)
	}
	if s.WordsPerSentenceMean != 2 {
		t.Errorf("expected mean 2, got %d", s.WordsPerSentenceMean)
	}
	if s.UPosDis["PROPN"] != 2 {
		t.Errorf("expected 2 PROPN, got %d", s.UPosDis["PROPN"])
	}
	if s.WordsPerSentenceDis[3] != 1 || s.WordsPerSentenceDis[1] != 1 {
		t.Errorf("unexpected length distribution: %v", s.WordsPerSentenceDis)
	}
}

func TestAggregateAccumulates(t *testing.T) {
	doc := word.Doc{
		Sentences: []word.Sentence{
			{Words: []word.Word{{Text: "a", UPos: "NOUN"}}},
		},
	}

	h := NewHandler()
	h.Aggregate(doc)
	h.Aggregate(doc)

	if s := h.Get(); s.NumSentences != 2 || s.NumWords != 2 {
		t.Fatalf("expected accumulated totals, got %+v", s)
	}
}

func TestAggregateSkipsUntagged(t *testing.T) {
	doc := word.Doc{
		Sentences: []word.Sentence{
			{Words: []word.Word{{Text: "a"}}},
		},
	}

	h := NewHandler()
	h.Aggregate(doc)

	if len(h.Get().UPosDis) != 0 {
		t.Fatalf("untagged words must not enter the distribution: %v", h.Get().UPosDis)
	}
}
