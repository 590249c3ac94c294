package repl

import (
	"fmt"
	"strings"

	"github.com/c-bata/go-prompt"

	"lectio/lang"
	"lectio/pipeline"
	"lectio/render"
	"lectio/tree"
)

const langPrefix = "/"

// Handler is the interactive analysis loop. Lines are analyzed with the
// pipeline of the current language; /code switches the language.
type Handler struct {
	Renderer *render.Renderer

	// Pipelines builds (or returns a cached) pipeline for a code.
	Pipelines func(code string) (*pipeline.Pipeline, error)

	current lang.Language
}

func NewHandler(r *render.Renderer, pipelines func(code string) (*pipeline.Pipeline, error)) *Handler {
	return &Handler{
		Renderer:  r,
		Pipelines: pipelines,
	}
}

func (h *Handler) Run() error {
	fmt.Println("🔑 /<code>: switch language, Ctrl+F: next format, quit: exit")

	registry := lang.Registry()
	h.current = registry[0]

	history := []string{}

	for {
		in := prompt.Input(fmt.Sprintf("  📜 %s ", h.current.Code), h.completer(registry),
			prompt.OptionTitle("lectio"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Println("Format set to: " + h.Renderer.Format)
				}}),
		)

		if in == "quit" {
			return nil
		}

		if in == "" {
			continue
		}

		history = append(history, in)

		if strings.HasPrefix(in, langPrefix) {
			code := strings.TrimPrefix(strings.Fields(in)[0], langPrefix)
			l, err := lang.ByCode(code)
			if err != nil {
				fmt.Printf("Unknown language: %s\n", code)
				continue
			}
			h.current = l
			fmt.Printf("Language set to: %s (%s)\n", l.Name, l.Code)
			continue
		}

		h.analyze(in)
	}
}

func (h *Handler) analyze(text string) {
	p, err := h.Pipelines(h.current.Code)
	if err != nil {
		fmt.Printf("Error building pipeline: %v\n", err)
		return
	}

	doc, err := p.Analyze(text)
	if err != nil {
		fmt.Printf("Error analyzing: %v\n", err)
		return
	}

	h.Renderer.Doc(doc)

	for _, s := range doc.Sentences {
		if !s.HasFeatures() {
			continue
		}

		t, err := tree.New(s)
		if err != nil {
			continue
		}
		h.Renderer.Tree(t)
	}
}

func (h *Handler) completer(registry []lang.Language) func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()

		if befCursor == "" {
			return s
		}

		if strings.HasPrefix(befCursor, langPrefix) {
			token := strings.TrimPrefix(befCursor, langPrefix)
			for _, l := range registry {
				if strings.HasPrefix(l.Code, token) {
					s = append(s, prompt.Suggest{Text: langPrefix + l.Code, Description: l.Name})
				}
			}
			return s
		}

		if strings.HasPrefix("quit", befCursor) {
			s = append(s, prompt.Suggest{Text: "quit", Description: "exit"})
		}

		return s
	}
}
