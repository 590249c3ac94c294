package lexicon

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gosuri/uiprogress"
)

// DefaultMirror is the base URL lexicon artifacts are fetched from.
// Overridable via the config file.
const DefaultMirror = "https://lexica.lectio.dev"

const fetchChunk = 32 * 1024

// Fetch downloads the lexicon artifact for a language/treebank pair into
// the models directory. The file is written atomically and validated
// before it replaces anything. A short notice and a progress bar go to
// out.
func Fetch(mirror, dir, code, treebank string, out io.Writer) error {
	if mirror == "" {
		mirror = DefaultMirror
	}

	url := fmt.Sprintf("%s/%s/%s.json", mirror, code, treebank)
	dst := Path(dir, code, treebank)

	fmt.Fprintf(out, "⬇  Fetching lexicon %s/%s from %s\n", code, treebank, mirror)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".fetch-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	size := int(resp.ContentLength)
	if size <= 0 {
		// Unknown length, show a single-step bar.
		size = 1
	}

	// A fresh Progress per call: the package-level singleton cannot be
	// restarted after Stop (its Listen goroutine closes the done channel)
	// and panics if Fetch runs more than once in a process.
	progress := uiprogress.New()
	progress.Start()
	bar := progress.AddBar(size)
	bar.AppendCompleted()
	bar.PrependElapsed()

	buf := make([]byte, fetchChunk)
	for {
		n, rerr := resp.Body.Read(buf)
		if n > 0 {
			if _, werr := tmp.Write(buf[:n]); werr != nil {
				progress.Stop()
				tmp.Close()
				return werr
			}
			if cur := bar.Current() + n; cur < size {
				bar.Set(cur)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			progress.Stop()
			tmp.Close()
			return fmt.Errorf("fetch %s: %w", url, rerr)
		}
	}
	bar.Set(size)
	progress.Stop()

	if err := tmp.Close(); err != nil {
		return err
	}

	data, err := os.ReadFile(tmp.Name())
	if err != nil {
		return err
	}
	if _, err := parse(data, code, treebank); err != nil {
		return fmt.Errorf("fetched artifact is not usable: %w", err)
	}

	if err := os.Rename(tmp.Name(), dst); err != nil {
		return err
	}

	if !Present(dir, code, treebank) {
		return fmt.Errorf("lexicon still missing after fetch at %s", dst)
	}

	return nil
}
