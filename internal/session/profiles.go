package session

import "github.com/fmorandi/chatai/internal/model"

// verbosityProfiles maps each verbosity tag to the system-prompt text
// that seeds the conversation. The table is process-wide and fixed: two
// entries, nothing session-specific.
var verbosityProfiles = map[model.Verbosity]string{
	model.VerbosityVerbose: "Rispondi sempre in italiano con spiegazioni complete e dettagliate. " +
		"Per il codice, spiega le parti principali. Per la matematica, illustra i passaggi. " +
		"Usa uno stile chiaro, ordinato, con frasi complete.",
	model.VerbosityCompact: "Rispondi sempre in italiano in modo molto sintetico (max 2-3 righe). " +
		"Vai dritto al punto. Per il codice, mostra solo il codice essenziale. " +
		"Per la matematica, indica solo i passaggi necessari e il risultato.",
}

// ProfileText returns the system-prompt text bound to a verbosity tag.
func ProfileText(v model.Verbosity) (string, bool) {
	text, ok := verbosityProfiles[v]
	return text, ok
}
