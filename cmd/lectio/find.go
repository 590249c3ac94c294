package main

import (
	"fmt"

	"lectio/render"
	"lectio/storage"
)

// findBatchSize is how many candidate sentences a single storage query
// may return before the cursor is advanced.
const findBatchSize = 500

func findCommand(opts FindOptions, lemmas []string, ui UI) error {
	repo, closeRepo, err := openDocRepository(opts.DocPath)
	if err != nil {
		return err
	}
	defer closeRepo()

	r := render.NewRenderer()
	r.Out = ui.Out
	r.HasColor = !opts.NoColor

	shown := 0
	cursor := storage.Cursor(0)

	for {
		next, err := repo.FindCandidates(lemmas, cursor, findBatchSize, func(res storage.SentenceResult) error {
			prefix := fmt.Sprintf("✍  %s %s-%d ", res.Language, res.DocTitle, res.Sentence.Id)
			r.Sentence(res.Sentence, prefix)

			shown++
			return nil
		})
		if err != nil {
			return err
		}

		if opts.Limit > 0 && shown >= opts.Limit {
			break
		}
		if next == cursor {
			break
		}
		cursor = next
	}

	_, _ = fmt.Fprintf(ui.Out, "\n%d sentences matched\n", shown)
	return nil
}
