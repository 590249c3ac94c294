package pipeline

import (
	"testing"

	"lectio/tree"
	"lectio/word"
)

func annotated(upos ...string) []word.Word {
	words := make([]word.Word, len(upos))
	for i, u := range upos {
		words[i] = word.Word{Index: i, Text: u, UPos: u, Governor: -1}
	}
	return words
}

func TestDepParserRootIsFirstVerb(t *testing.T) {
	words := annotated("PROPN", "AUX", "VERB", "NOUN")
	parse(words)

	if words[2].Dep != "root" || words[2].Governor != -1 {
		t.Fatalf("expected the verb as root, got %+v", words[2])
	}
	if words[1].Dep != "aux" {
		t.Errorf("expected aux relation, got %q", words[1].Dep)
	}
}

func TestDepParserAuxFallback(t *testing.T) {
	words := annotated("PROPN", "AUX", "NOUN")
	parse(words)

	if words[1].Dep != "root" {
		t.Fatalf("expected the auxiliary as root fallback, got %+v", words)
	}
}

func TestDepParserFirstWordFallback(t *testing.T) {
	words := annotated("NOUN", "ADJ")
	parse(words)

	if words[0].Dep != "root" {
		t.Fatalf("expected the first word as last-resort root, got %+v", words)
	}
}

func TestDepParserSubjectBeforeRoot(t *testing.T) {
	words := annotated("PROPN", "VERB", "NOUN")
	parse(words)

	if words[0].Dep != "nsubj" {
		t.Errorf("expected nsubj for the pre-root nominal, got %q", words[0].Dep)
	}
	if words[2].Dep != "obj" {
		t.Errorf("expected obj for the post-root nominal, got %q", words[2].Dep)
	}
}

func TestDepParserOblAfterAdposition(t *testing.T) {
	words := annotated("VERB", "ADP", "NOUN")
	parse(words)

	if words[1].Dep != "case" {
		t.Errorf("expected case for the adposition, got %q", words[1].Dep)
	}
	if words[1].Governor != 2 {
		t.Errorf("expected the adposition to attach to the noun, got %d", words[1].Governor)
	}
	if words[2].Dep != "obl" {
		t.Errorf("expected obl after an adposition, got %q", words[2].Dep)
	}
}

func TestDepParserAlwaysYieldsTree(t *testing.T) {
	// Whatever the tag sequence, the result must build into a tree.
	sequences := [][]string{
		{"NOUN"},
		{"ADP", "ADP", "ADP"},
		{"VERB", "VERB", "VERB"},
		{"DET", "NOUN", "AUX", "VERB", "ADV", "PROPN", "CCONJ", "PRON"},
		{"X", "SYM", "NOUN"},
	}

	for _, seq := range sequences {
		words := annotated(seq...)
		parse(words)

		if _, err := tree.New(word.Sentence{Words: words}); err != nil {
			t.Errorf("sequence %v: %v", seq, err)
		}
	}
}
