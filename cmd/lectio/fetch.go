package main

import (
	"fmt"

	"lectio/config"
	"lectio/lang"
	"lectio/lexicon"
)

func fetchCommand(opts FetchOptions, code, treebank string, ui UI) error {
	cfgPath := opts.Config
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	l, err := lang.ByCode(code)
	if err != nil {
		return err
	}

	if treebank == "" {
		treebank = l.Default
	} else if !l.ValidTreebank(treebank) {
		return fmt.Errorf("%w: %q for %q", lang.ErrUnknownTreebank, treebank, code)
	}

	mirror := opts.Mirror
	if mirror == "" {
		mirror = cfg.Mirror
	}

	dir := opts.ModelsDir
	if dir == "" {
		dir = cfg.ModelsDir
	}

	if lexicon.Present(dir, code, treebank) {
		_, _ = fmt.Fprintf(ui.Out, "Lexicon %s/%s already present in %s\n", code, treebank, dir)
		return nil
	}

	if err := lexicon.Fetch(mirror, dir, code, treebank, ui.Out); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(ui.Out, "Installed %s\n", lexicon.Path(dir, code, treebank))
	return nil
}
