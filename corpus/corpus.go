package corpus

import (
	"fmt"

	"lectio/lang"
)

// examples maps ISO 639-3 codes to a short canned passage, used by the
// demo command and as default input for analyze/tree.
var examples = map[string]string{
	// Lord's Prayer, Codex Marianus orthography.
	"chu": "отьчє нашь ижє ѥси на нєбєсьхъ. да свѧтитъ сѧ имѧ твоѥ. да придєтъ цѣсар҄ьствиѥ твоѥ.",

	// Song of Roland, opening laisse.
	"fro": "Carles li reis, nostre emperere magnes, set anz tuz pleins ad estet en Espaigne. Tresqu'en la mer cunquist la tere altaigne.",

	// Lord's Prayer, Codex Argenteus.
	"got": "atta unsar þu in himinam, weihnai namo þein. qimai þiudinassus þeins.",

	// Plato, Apology 17a.
	"grc": "ὅτι μὲν ὑμεῖς, ὦ ἄνδρες Ἀθηναῖοι, πεπόνθατε ὑπὸ τῶν ἐμῶν κατηγόρων, οὐκ οἶδα. ἐγὼ δ᾽ οὖν καὶ αὐτὸς ὑπ᾽ αὐτῶν ὀλίγου ἐμαυτοῦ ἐπελαθόμην.",

	// Caesar, De Bello Gallico 1.1.
	"lat": "Gallia est omnis divisa in partes tres, quarum unam incolunt Belgae, aliam Aquitani, tertiam qui ipsorum lingua Celtae, nostra Galli appellantur.",
}

// Example returns the canned example text for a language code.
func Example(code string) (string, error) {
	text, ok := examples[code]
	if !ok {
		return "", fmt.Errorf("no example text: %w: %q", lang.ErrUnknownLanguage, code)
	}

	return text, nil
}
