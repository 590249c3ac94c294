package main

import (
	"bytes"
	"strings"
	"testing"
)

func testUI() (UI, *bytes.Buffer) {
	var buf bytes.Buffer
	return UI{Out: &buf, Err: &buf}, &buf
}

func TestParseMainArgs(t *testing.T) {
	ui, _ := testUI()

	cmd, args, err := parseMainArgs([]string{"analyze", "-f", "lemma", "lat"}, ui)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cmd != "analyze" {
		t.Errorf("expected command analyze, got %q", cmd)
	}
	if len(args) != 3 {
		t.Errorf("expected 3 remaining args, got %v", args)
	}
}

func TestParseMainArgsNoCommand(t *testing.T) {
	ui, buf := testUI()

	_, _, err := parseMainArgs(nil, ui)
	if err == nil {
		t.Fatal("expected an error without a command")
	}
	if !strings.Contains(buf.String(), "Usage:") {
		t.Errorf("expected usage output, got %q", buf.String())
	}
}

func TestParseAnalyzeArgs(t *testing.T) {
	ui, _ := testUI()

	opts, code, text, err := parseAnalyzeArgs([]string{"-f", "lemma", "-t", "perseus", "lat", "Gallia", "est"}, ui)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if code != "lat" {
		t.Errorf("expected code lat, got %q", code)
	}
	if text != "Gallia est" {
		t.Errorf("expected joined text, got %q", text)
	}
	if opts.Format != "lemma" {
		t.Errorf("expected format lemma, got %q", opts.Format)
	}
	if opts.Treebank != "perseus" {
		t.Errorf("expected treebank perseus, got %q", opts.Treebank)
	}
}

func TestParseAnalyzeArgsNeedsLanguage(t *testing.T) {
	ui, _ := testUI()

	_, _, _, err := parseAnalyzeArgs(nil, ui)
	if err == nil {
		t.Fatal("expected an error without a language code")
	}
}

func TestParseAnalyzeArgsBadFormat(t *testing.T) {
	ui, _ := testUI()

	_, _, _, err := parseAnalyzeArgs([]string{"-f", "nope", "lat"}, ui)
	if err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}

func TestParseAnalyzeArgsTitleNeedsDocPath(t *testing.T) {
	t.Setenv("LECTIO_DOC_PATH", "")
	ui, _ := testUI()

	_, _, _, err := parseAnalyzeArgs([]string{"-title", "caesar", "lat"}, ui)
	if err == nil {
		t.Fatal("expected an error when -title has no doc path")
	}
}

func TestParseFetchArgs(t *testing.T) {
	ui, _ := testUI()

	_, code, treebank, err := parseFetchArgs([]string{"grc", "perseus"}, ui)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if code != "grc" || treebank != "perseus" {
		t.Errorf("expected grc/perseus, got %s/%s", code, treebank)
	}
}

func TestParseFetchArgsTooMany(t *testing.T) {
	ui, _ := testUI()

	_, _, _, err := parseFetchArgs([]string{"grc", "perseus", "extra"}, ui)
	if err == nil {
		t.Fatal("expected an error for extra arguments")
	}
}

func TestParseFindArgsNeedsDocPath(t *testing.T) {
	t.Setenv("LECTIO_DOC_PATH", "")
	ui, _ := testUI()

	_, _, err := parseFindArgs([]string{"gallia"}, ui)
	if err == nil {
		t.Fatal("expected an error without a doc path")
	}
}

func TestParseFindArgs(t *testing.T) {
	dir := t.TempDir()
	ui, _ := testUI()

	opts, lemmas, err := parseFindArgs([]string{"-d", dir, "gallia", "sum"}, ui)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if opts.DocPath != dir {
		t.Errorf("expected doc path %q, got %q", dir, opts.DocPath)
	}
	if len(lemmas) != 2 || lemmas[0] != "gallia" {
		t.Errorf("unexpected lemmas: %v", lemmas)
	}
}

func TestParseImportDocArgsRequired(t *testing.T) {
	ui, _ := testUI()

	if _, err := parseImportDocArgs([]string{"--from", "dir"}, ui); err == nil {
		t.Fatal("expected an error without --to")
	}
}

func TestRunCommandUnknown(t *testing.T) {
	ui, _ := testUI()

	err := runCommand("frobnicate", nil, ui)
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("expected an unknown-command error, got %v", err)
	}
}

func TestGetCompletions(t *testing.T) {
	got := getCompletions([]string{"lectio", "an"})
	if len(got) != 1 || got[0] != "analyze" {
		t.Fatalf("expected [analyze], got %v", got)
	}

	if got := getCompletions([]string{"lectio", "analyze", "la"}); got != nil {
		t.Fatalf("arguments must not be completed, got %v", got)
	}
}
