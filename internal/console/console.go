// Package console is the interactive REPL surface: slash commands,
// styled output, a spinner while a turn is in flight and a copyable
// code box for extracted fragments.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/fmorandi/chatai/internal/session"
	"github.com/fmorandi/chatai/internal/usecase"
	"github.com/fmorandi/chatai/pkg/local"
	"github.com/sourcegraph/conc"
)

const (
	spinnerInterval = 80 * time.Millisecond
	thinkingAfter   = 8 * time.Second
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type Console struct {
	chat     *usecase.ChatUsecase
	store    *session.Store
	lang     local.Language
	in       io.Reader
	out      io.Writer
	lastCode string

	// copyToClipboard is swappable so tests run without a display server.
	copyToClipboard func(text string) error
}

func New(chat *usecase.ChatUsecase, store *session.Store, lang local.Language, in io.Reader, out io.Writer) *Console {
	return &Console{
		chat:            chat,
		store:           store,
		lang:            lang,
		in:              in,
		out:             out,
		copyToClipboard: clipboard.WriteAll,
	}
}

// Run drives the REPL until /exit or the input closes. The single
// session behind it is mutated strictly sequentially.
func (c *Console) Run(ctx context.Context) error {
	c.printHeader()

	if err := c.chat.Load(ctx, c.store, session.DefaultKey); err != nil {
		if errors.Is(err, session.ErrHistoryNotFound) {
			c.println(warnStyle.Render(msgNoPreviousChat.Text(c.lang)))
		} else {
			c.println(errorStyle.Render(msgError.Format(c.lang, err)))
		}
	} else {
		c.println(successStyle.Render(msgChatLoaded.Format(c.lang, len(c.store.Snapshot().Messages))))
	}

	c.printSeparator()
	c.println(helpStyle.Render(msgHelp.Text(c.lang)))

	scanner := bufio.NewScanner(c.in)
	for {
		c.printPrompt()
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if quit := c.handleCommand(ctx, input); quit {
				return nil
			}
			continue
		}

		c.processTurn(ctx, input)
	}
	return scanner.Err()
}

func (c *Console) processTurn(ctx context.Context, input string) {
	start := time.Now()

	done := make(chan struct{})
	wg := conc.NewWaitGroup()
	wg.Go(
		func() {
			c.spin(start, done)
		},
	)

	result, err := c.chat.ProcessTurn(ctx, c.store, input)
	close(done)
	wg.Wait()

	if err != nil {
		c.println(errorStyle.Render(msgError.Format(c.lang, err)))
		return
	}

	timestamp := timingStyle.Render(fmt.Sprintf("[%s] ", time.Now().Format("15:04")))
	c.println(timestamp + promptStyle.Render("◄ AI: ") + replyStyle.Render(result.Prose))
	c.println(timingStyle.Render(msgResponseTime.Format(c.lang, time.Since(start).Milliseconds())))

	if result.Code != "" {
		c.lastCode = result.Code
		c.printCodeBox(result.Code)
	}
	c.printSeparator()
}

// spin animates an in-flight indicator on a single line; after a while
// it adds a note so long waits do not look like a hang.
func (c *Console) spin(start time.Time, done <-chan struct{}) {
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-done:
			fmt.Fprint(c.out, "\r\033[K")
			return
		case <-ticker.C:
			line := separatorStyle.Render("⟳ " + spinnerFrames[frame%len(spinnerFrames)])
			if time.Since(start) > thinkingAfter {
				line += " " + timingStyle.Render(msgThinkingHard.Text(c.lang))
			}
			fmt.Fprintf(c.out, "\r\033[K%s", line)
			frame++
		}
	}
}

// handleCommand runs one slash command; true means the REPL should exit.
func (c *Console) handleCommand(ctx context.Context, input string) bool {
	parts := strings.SplitN(input, " ", 2)
	cmd := strings.ToLower(parts[0])
	arg := ""
	if len(parts) > 1 {
		arg = strings.TrimSpace(parts[1])
	}

	switch cmd {
	case "/verbose", "/v":
		c.setVerbosity("verbose")
	case "/compact", "/c":
		c.setVerbosity("compact")
	case "/clear", "/cls":
		c.chat.Clear(c.store)
		c.println(successStyle.Render(msgChatCleared.Text(c.lang)))
	case "/save", "/s":
		if err := c.chat.Save(ctx, c.store, session.DefaultKey); err != nil {
			c.println(errorStyle.Render(msgError.Format(c.lang, err)))
			return false
		}
		c.println(successStyle.Render(msgChatSaved.Text(c.lang)))
	case "/load", "/l":
		if err := c.chat.Load(ctx, c.store, session.DefaultKey); err != nil {
			if errors.Is(err, session.ErrHistoryNotFound) {
				c.println(warnStyle.Render(msgNoPreviousChat.Text(c.lang)))
			} else {
				c.println(errorStyle.Render(msgError.Format(c.lang, err)))
			}
			return false
		}
		c.println(successStyle.Render(msgChatLoaded.Format(c.lang, len(c.store.Snapshot().Messages))))
	case "/model", "/m":
		if arg == "" {
			c.println(msgModelUsage.Text(c.lang))
			return false
		}
		c.chat.SetModel(c.store, arg)
		c.println(successStyle.Render(msgModelChanged.Format(c.lang, arg)))
	case "/copy", "/cp":
		c.copyLastCode()
	case "/help", "/h", "/?":
		c.printSeparator()
		c.println(helpStyle.Render(msgHelp.Text(c.lang)))
	case "/exit", "/quit", "/q":
		c.println(promptStyle.Render(msgGoodbye.Text(c.lang)))
		return true
	default:
		c.println(errorStyle.Render(msgUnknownCommand.Format(c.lang, cmd)))
	}
	return false
}

func (c *Console) setVerbosity(tag string) {
	if err := c.chat.SetVerbosity(c.store, tag); err != nil {
		c.println(errorStyle.Render(msgModeUnknown.Format(c.lang, tag)))
		return
	}
	c.println(successStyle.Render(msgModeChanged.Format(c.lang, strings.ToUpper(tag))))
}

func (c *Console) copyLastCode() {
	if c.lastCode == "" {
		c.println(warnStyle.Render(msgNoCodeToCopy.Text(c.lang)))
		return
	}
	if err := c.copyToClipboard(c.lastCode); err != nil {
		c.println(warnStyle.Render(msgCopyFailed.Format(c.lang, err)))
		return
	}
	c.println(successStyle.Render(msgCodeCopied.Text(c.lang)))
}

func (c *Console) printHeader() {
	c.println(headerStyle.Render("CHAT AI CONSOLE"))
}

func (c *Console) printSeparator() {
	c.println(separatorStyle.Render(strings.Repeat("─", 53)))
}

func (c *Console) printPrompt() {
	badge := modeStyle.Render("[" + strings.ToUpper(string(c.store.Verbosity())) + "]")
	fmt.Fprintf(c.out, "\n%s %s", badge, promptStyle.Render("► Tu:")+" ")
}

func (c *Console) printCodeBox(code string) {
	title := codeTitleStyle.Render("📋 CODE") + "  " + modeStyle.Render("[/copy]")
	c.println(codeBoxStyle.Render(title + "\n\n" + code))
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}
