package lexicon

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFetchInstallsArtifact(t *testing.T) {
	artifact := `{"language": "lat", "treebank": "proiel", "closed": {"est": {"upos": "AUX"}}}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/lat/proiel.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(artifact))
	}))
	defer srv.Close()

	dir := t.TempDir()

	var buf bytes.Buffer
	if err := Fetch(srv.URL, dir, "lat", "proiel", &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !Present(dir, "lat", "proiel") {
		t.Fatal("artifact missing after fetch")
	}

	lex, err := Load(dir, "lat", "proiel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := lex.Entry("est"); !ok {
		t.Fatal("fetched lexicon does not contain the expected entry")
	}

	if !strings.Contains(buf.String(), "lat/proiel") {
		t.Errorf("expected fetch notice, got %q", buf.String())
	}
}

func TestFetchRejectsBrokenArtifact(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"language": "grc", "treebank": "proiel"}`))
	}))
	defer srv.Close()

	dir := t.TempDir()

	var buf bytes.Buffer
	err := Fetch(srv.URL, dir, "lat", "proiel", &buf)
	if err == nil || !strings.Contains(err.Error(), "not usable") {
		t.Fatalf("expected a validation error, got %v", err)
	}

	if Present(dir, "lat", "proiel") {
		t.Fatal("broken artifact must not be installed")
	}

	// No stray temp files either.
	entries, err := os.ReadDir(filepath.Join(dir, "lat"))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".fetch-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestFetchNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	var buf bytes.Buffer
	err := Fetch(srv.URL, t.TempDir(), "lat", "proiel", &buf)
	if err == nil || !strings.Contains(err.Error(), "unexpected status") {
		t.Fatalf("expected a status error, got %v", err)
	}
}
