package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nortedigital/pagebot/internal/chat"
	"github.com/nortedigital/pagebot/internal/playback"
	"github.com/nortedigital/pagebot/internal/render"
	"github.com/nortedigital/pagebot/internal/whatsapp"
	"github.com/nortedigital/pagebot/pkg/logging"
)

// REPL commands.
const (
	cmdClear   = "/limpar"
	cmdContact = "/contato"
	cmdHelp    = "/ajuda"
	cmdQuit    = "/sair"
)

// lineReader is the part of *readline.Instance the REPL needs.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

type chatREPL struct {
	in      lineReader
	out     io.Writer
	term    *render.Terminal
	session *chat.Session
	opener  whatsapp.Opener
	clock   playback.Clock
	hint    *color.Color
	logger  *logging.Logger
}

func newChatCommand(root *rootOptions) *cobra.Command {
	var noOpen bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the Norte Digital assistant",
		Long: `Start an interactive chat with the site assistant. Ask about prices to go
through the budget questions; the finished budget opens in WhatsApp.

Commands: /limpar clears the conversation, /contato opens WhatsApp, /sair exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
			defer stop()

			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "> ",
				Stdout:          cmd.OutOrStdout(),
				InterruptPrompt: "^C",
				EOFPrompt:       cmdQuit,
				HistoryLimit:    200,
			})
			if err != nil {
				return fmt.Errorf("cli: start readline: %w", err)
			}
			defer rl.Close()

			var opener whatsapp.Opener = whatsapp.BrowserOpener{}
			if noOpen {
				opener = whatsapp.PrintOpener{W: cmd.OutOrStdout()}
			}

			repl := newChatREPL(rl, cmd.OutOrStdout(), chat.Options{Number: root.number}, opener, nil, root.log)
			return repl.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&noOpen, "no-open", false, "print WhatsApp links instead of opening the browser")
	return cmd
}

func newChatREPL(in lineReader, out io.Writer, opts chat.Options, opener whatsapp.Opener, clock playback.Clock, logger *logging.Logger) *chatREPL {
	if clock == nil {
		clock = playback.RealClock()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &chatREPL{
		in:      in,
		out:     out,
		term:    render.NewTerminal(out),
		session: chat.NewSession("cli", opts),
		opener:  opener,
		clock:   clock,
		hint:    color.New(color.FgHiBlack),
		logger:  logger,
	}
}

// Run reads lines until EOF, interrupt on an empty line, or /sair.
func (r *chatREPL) Run(ctx context.Context) error {
	if err := r.printMessages(r.session.History()); err != nil {
		return err
	}
	r.hint.Fprintf(r.out, "Sugestões: %s\n", strings.Join(r.session.QuickReplies(), " | "))
	r.hint.Fprintf(r.out, "Digite %s para ver os comandos.\n\n", cmdHelp)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		r.in.SetPrompt(r.prompt())
		line, err := r.in.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if strings.TrimSpace(line) == "" {
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("cli: read line: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		done, err := r.handle(ctx, line)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		if done {
			return nil
		}
	}
}

func (r *chatREPL) handle(ctx context.Context, line string) (bool, error) {
	switch strings.ToLower(line) {
	case cmdQuit:
		return true, nil
	case cmdHelp:
		r.hint.Fprintf(r.out, "%s  limpa a conversa\n%s  abre o WhatsApp\n%s  encerra\n\n", cmdClear, cmdContact, cmdQuit)
		return false, nil
	case cmdClear:
		return false, r.printMessages(r.session.Clear())
	case cmdContact:
		link, err := r.session.ContactLink()
		if err != nil {
			return false, err
		}
		return false, r.open(ctx, link)
	}

	turn, err := r.session.Send(line)
	if err != nil {
		return false, err
	}
	r.logger.Debug("cli: chat turn", "category", string(turn.Category), "lead_state", string(turn.LeadState))
	if turn.Typing {
		if err := r.term.WriteTyping(false); err != nil {
			return false, err
		}
	}
	if err := r.wait(ctx, turn.Delay); err != nil {
		return false, err
	}
	if err := r.printMessages(turn.Replies); err != nil {
		return false, err
	}
	if turn.Handoff == nil {
		return false, nil
	}
	if err := r.wait(ctx, turn.Handoff.Delay); err != nil {
		return false, err
	}
	return false, r.open(ctx, turn.Handoff.Link)
}

func (r *chatREPL) open(ctx context.Context, link string) error {
	if err := r.opener.Open(ctx, link); err != nil {
		r.logger.Warn("cli: open whatsapp link failed", "error", err)
		r.hint.Fprintf(r.out, "Não foi possível abrir o navegador. Acesse: %s\n", link)
	}
	return nil
}

func (r *chatREPL) printMessages(msgs []chat.Message) error {
	for _, m := range msgs {
		if m.Sender != chat.SenderBot {
			continue
		}
		if err := r.term.WriteText(render.Text(m.Text, true)); err != nil {
			return err
		}
	}
	return nil
}

func (r *chatREPL) prompt() string {
	return r.hint.Sprintf("%s", r.session.Placeholder()) + "\n> "
}

func (r *chatREPL) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-r.clock.After(d):
		return nil
	}
}
