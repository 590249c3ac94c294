package main

import (
	"errors"
	"fmt"

	"lectio/config"
	"lectio/corpus"
	"lectio/pipeline"
	"lectio/render"
	"lectio/tree"
)

func treeCommand(opts TreeOptions, code, text string, ui UI) error {
	cfgPath := opts.Config
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	log, err := newLogger(opts.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if text == "" {
		text, err = corpus.Example(code)
		if err != nil {
			return err
		}
	}

	treebank := opts.Treebank
	if treebank == "" {
		treebank = cfg.Treebank(code)
	}

	popts := []pipeline.Option{
		pipeline.WithModelsDir(cfg.ModelsDir),
		pipeline.WithLogger(log),
	}
	if treebank != "" {
		popts = append(popts, pipeline.WithTreebank(treebank))
	}

	p, err := pipeline.New(code, popts...)
	if err != nil {
		return err
	}

	doc, err := p.Analyze(text)
	if err != nil {
		return err
	}

	r := render.NewRenderer()
	r.Out = ui.Out

	for _, s := range doc.Sentences {
		_, _ = fmt.Fprintf(ui.Out, "🌳 %s-%d\n", doc.Language, s.Id)

		t, err := tree.New(s)
		if err != nil {
			if errors.Is(err, tree.ErrNoParse) {
				_, _ = fmt.Fprintf(ui.Out, "   no dependency annotations\n")
				continue
			}
			return err
		}

		r.Tree(t)
	}

	return nil
}
