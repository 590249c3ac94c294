package main

import (
	"lectio/config"
	"lectio/pipeline"
	"lectio/render"
	"lectio/repl"
)

func replCommand(opts ReplOptions, ui UI) error {
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

	r := render.NewRenderer()
	r.Out = ui.Out
	r.HasColor = !opts.NoColor
	r.Format = opts.Format

	pipelines := func(code string) (*pipeline.Pipeline, error) {
		popts := []pipeline.Option{
			pipeline.WithModelsDir(cfg.ModelsDir),
			pipeline.WithLogger(log),
		}
		if tb := cfg.Treebank(code); tb != "" {
			popts = append(popts, pipeline.WithTreebank(tb))
		}

		return pipeline.For(code, popts...)
	}

	handler := repl.NewHandler(r, pipelines)
	return handler.Run()
}
