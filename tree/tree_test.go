package tree

import (
	"errors"
	"strings"
	"testing"

	"lectio/word"
)

func parsed() word.Sentence {
	return word.Sentence{
		Words: []word.Word{
			{Index: 0, Text: "Galli", UPos: "PROPN", Dep: "nsubj", Governor: 1},
			{Index: 1, Text: "appellantur", UPos: "VERB", Dep: "root", Governor: -1},
			{Index: 2, Text: "lingua", UPos: "NOUN", Dep: "obl", Governor: 1},
		},
	}
}

func TestNew(t *testing.T) {
	tr, err := New(parsed())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tr.Root.Word.Text != "appellantur" {
		t.Fatalf("expected appellantur as root, got %q", tr.Root.Word.Text)
	}
	if len(tr.Root.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(tr.Root.Children))
	}
}

func TestNewEmptySentence(t *testing.T) {
	_, err := New(word.Sentence{})
	if err == nil {
		t.Fatal("expected an error for an empty sentence")
	}
}

func TestNewNoParse(t *testing.T) {
	s := parsed()
	s.Words[2].Dep = ""

	_, err := New(s)
	if !errors.Is(err, ErrNoParse) {
		t.Fatalf("expected ErrNoParse, got %v", err)
	}
	if !strings.Contains(err.Error(), "lingua") {
		t.Errorf("expected the word in the error, got %v", err)
	}
}

func TestNewMultipleRoots(t *testing.T) {
	s := parsed()
	s.Words[0].Dep = "root"
	s.Words[0].Governor = -1

	_, err := New(s)
	if err == nil || !strings.Contains(err.Error(), "multiple roots") {
		t.Fatalf("expected a multiple-roots error, got %v", err)
	}
}

func TestNewNoRoot(t *testing.T) {
	s := parsed()
	s.Words[1].Dep = "conj"
	s.Words[1].Governor = 0

	// 0 -> 1 -> 0 is a cycle with no root at all.
	_, err := New(s)
	if err == nil {
		t.Fatal("expected an error for a rootless sentence")
	}
}

func TestNewGovernorOutOfRange(t *testing.T) {
	s := parsed()
	s.Words[2].Governor = 9

	_, err := New(s)
	if err == nil || !strings.Contains(err.Error(), "governor out of range") {
		t.Fatalf("expected a governor error, got %v", err)
	}
}

func TestNewSelfGovernor(t *testing.T) {
	s := parsed()
	s.Words[2].Governor = 2

	_, err := New(s)
	if err == nil || !strings.Contains(err.Error(), "governor out of range") {
		t.Fatalf("expected a governor error, got %v", err)
	}
}

func TestNewCyclicAnnotation(t *testing.T) {
	s := word.Sentence{
		Words: []word.Word{
			{Index: 0, Text: "a", Dep: "root", Governor: -1},
			{Index: 1, Text: "b", Dep: "conj", Governor: 2},
			{Index: 2, Text: "c", Dep: "conj", Governor: 1},
		},
	}

	_, err := New(s)
	if err == nil || !strings.Contains(err.Error(), "cyclic") {
		t.Fatalf("expected a cycle error, got %v", err)
	}
}

func TestPrint(t *testing.T) {
	tr, err := New(parsed())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "root | appellantur/VERB\n" +
		"  nsubj | Galli/PROPN\n" +
		"  obl | lingua/NOUN\n"

	if got := tr.String(); got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}
