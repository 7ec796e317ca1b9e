package console

import "github.com/fmorandi/chatai/pkg/local"

// Status texts shown around the conversation. Italian is the default,
// matching the assistant's response language; English is available for
// operators who want the chrome translated.
var (
	msgModeChanged = local.NewSet(
		"✓ Modalità cambiata a: %s",
		local.NewTrans(local.Eng, "✓ Mode changed to: %s"),
	)
	msgModeUnknown = local.NewSet(
		"✗ Modalità '%s' non trovata. Usa: verbose, compact",
		local.NewTrans(local.Eng, "✗ Mode '%s' not found. Use: verbose, compact"),
	)
	msgModelChanged = local.NewSet(
		"✓ Modello cambiato a: %s",
		local.NewTrans(local.Eng, "✓ Model changed to: %s"),
	)
	msgModelUsage = local.NewSet(
		"Uso: /model [nome_modello]",
		local.NewTrans(local.Eng, "Usage: /model [model_name]"),
	)
	msgChatCleared = local.NewSet(
		"✓ Chat cancellata (contesto interno pulito).",
		local.NewTrans(local.Eng, "✓ Chat cleared (internal context wiped)."),
	)
	msgChatSaved = local.NewSet(
		"✓ Cronologia salvata",
		local.NewTrans(local.Eng, "✓ History saved"),
	)
	msgChatLoaded = local.NewSet(
		"✓ Chat caricata (%d messaggi)",
		local.NewTrans(local.Eng, "✓ Chat loaded (%d messages)"),
	)
	msgNoPreviousChat = local.NewSet(
		"⚠ Nessuna chat precedente. Nuova sessione.",
		local.NewTrans(local.Eng, "⚠ No previous chat. Fresh session."),
	)
	msgCodeCopied = local.NewSet(
		"✓ Codice copiato negli appunti!",
		local.NewTrans(local.Eng, "✓ Code copied to clipboard!"),
	)
	msgCopyFailed = local.NewSet(
		"⚠ Impossibile copiare: %v",
		local.NewTrans(local.Eng, "⚠ Could not copy: %v"),
	)
	msgNoCodeToCopy = local.NewSet(
		"⚠ Nessun codice da copiare",
		local.NewTrans(local.Eng, "⚠ No code to copy"),
	)
	msgUnknownCommand = local.NewSet(
		"✗ Comando sconosciuto: %s",
		local.NewTrans(local.Eng, "✗ Unknown command: %s"),
	)
	msgGoodbye = local.NewSet(
		"Arrivederci! 👋",
		local.NewTrans(local.Eng, "Goodbye! 👋"),
	)
	msgResponseTime = local.NewSet(
		"⏱ Tempo risposta: %d ms",
		local.NewTrans(local.Eng, "⏱ Response time: %d ms"),
	)
	msgThinkingHard = local.NewSet(
		"💡 Domanda impegnativa, ci sto pensando per bene...",
		local.NewTrans(local.Eng, "💡 Tough question, thinking it through..."),
	)
	msgError = local.NewSet(
		"✗ Errore: %v",
		local.NewTrans(local.Eng, "✗ Error: %v"),
	)
	msgHelp = local.NewSet(
		`
=== COMANDI ===
/clear   /cls   - Cancella chat
/save    /s     - Salva cronologia
/load    /l     - Carica cronologia
/verbose /v     - Risposte dettagliate
/compact /c     - Risposte brevi (default)
/copy    /cp    - Copia l'ultimo codice
/model   /m     - Cambia modello (/model nome)
/help    /h /?  - Aiuto
/exit    /quit /q - Esci
==============
`,
		local.NewTrans(
			local.Eng, `
=== COMMANDS ===
/clear   /cls   - Clear chat
/save    /s     - Save history
/load    /l     - Load history
/verbose /v     - Detailed answers
/compact /c     - Short answers (default)
/copy    /cp    - Copy the last code block
/model   /m     - Switch model (/model name)
/help    /h /?  - Help
/exit    /quit /q - Quit
==============
`,
		),
	)
)
