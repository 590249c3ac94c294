package pipeline

import (
	"errors"
	"strings"
	"testing"

	"lectio/corpus"
	"lectio/lang"
)

func TestNewForEveryLanguage(t *testing.T) {
	for _, l := range lang.Registry() {
		p, err := New(l.Code)
		if err != nil {
			t.Errorf("%s: %v", l.Code, err)
			continue
		}

		got := p.Processes()
		if strings.Join(got, ",") != strings.Join(l.Processes, ",") {
			t.Errorf("%s: expected stages %v, got %v", l.Code, l.Processes, got)
		}
	}
}

func TestNewUnknownLanguage(t *testing.T) {
	_, err := New("xyz")
	if !errors.Is(err, lang.ErrUnknownLanguage) {
		t.Fatalf("expected ErrUnknownLanguage, got %v", err)
	}
}

func TestNewUnknownTreebank(t *testing.T) {
	_, err := New("lat", WithTreebank("srcmf"))
	if !errors.Is(err, lang.ErrUnknownTreebank) {
		t.Fatalf("expected ErrUnknownTreebank, got %v", err)
	}
}

func TestAnalyzeLatin(t *testing.T) {
	p, err := New("lat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, err := corpus.Example("lat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, err := p.Analyze(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Language != "lat" {
		t.Errorf("expected language lat, got %q", doc.Language)
	}
	if len(doc.Sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(doc.Sentences))
	}

	first := doc.Sentences[0]
	w := first.Words[0]

	if w.Text != "Gallia" {
		t.Fatalf("expected first word Gallia, got %q", w.Text)
	}
	if w.UPos != "PROPN" {
		t.Errorf("expected PROPN, got %q", w.UPos)
	}
	if w.Lemma != "Gallia" {
		t.Errorf("expected lemma Gallia, got %q", w.Lemma)
	}
	if !w.NamedEntity {
		t.Error("Gallia must be flagged as a named entity")
	}
	if w.Idx != 0 {
		t.Errorf("expected offset 0, got %d", w.Idx)
	}

	if !first.HasFeatures() {
		t.Error("every word of the Latin example sentence must carry features")
	}

	// depparse ran: every word has a relation, exactly one root.
	roots := 0
	for _, w := range first.Words {
		if w.Dep == "" {
			t.Errorf("word %q has no relation", w.Text)
		}
		if w.Dep == "root" {
			roots++
			if w.Text != "divisa" {
				t.Errorf("expected divisa as root, got %q", w.Text)
			}
		}
	}
	if roots != 1 {
		t.Errorf("expected exactly one root, got %d", roots)
	}
}

func TestAnalyzeGreekParticlesLackFeatures(t *testing.T) {
	p, err := New("grc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, err := corpus.Example("grc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, err := p.Analyze(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Sentences) == 0 {
		t.Fatal("expected sentences")
	}

	// The opening particles (ὅτι, μὲν) have no morphology in the
	// lexicon, so the sentence as a whole reports none.
	if doc.Sentences[0].HasFeatures() {
		t.Fatal("expected the first Greek sentence to lack full features")
	}
}

func TestAnalyzeOldFrenchIdentityLemma(t *testing.T) {
	p, err := New("fro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, err := corpus.Example("fro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, err := p.Analyze(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Sentences) == 0 {
		t.Fatal("expected sentences")
	}

	first := doc.Sentences[0]
	if !first.HasFeatures() {
		t.Error("expected features on the Old French example")
	}

	for _, w := range first.Words {
		if w.Lemma != w.Text {
			t.Errorf("identity lemma: expected %q, got %q", w.Text, w.Lemma)
		}
		if w.Dep != "" {
			t.Errorf("no depparse stage, but %q has relation %q", w.Text, w.Dep)
		}
	}
}

func TestAnalyzeElidedFormsSurvive(t *testing.T) {
	p, err := New("fro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, err := p.Analyze("Tresqu'en la mer.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Sentences) != 1 || len(doc.Sentences[0].Words) != 3 {
		t.Fatalf("expected 3 words in one sentence, got %+v", doc.Sentences)
	}
	if doc.Sentences[0].Words[0].Text != "Tresqu'en" {
		t.Fatalf("elided form split: %q", doc.Sentences[0].Words[0].Text)
	}
}

func TestForCachesPerLanguage(t *testing.T) {
	p1, err := For("chu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p2, err := For("chu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p1 != p2 {
		t.Fatal("expected the cached pipeline on second use")
	}
}
