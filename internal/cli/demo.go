package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nortedigital/pagebot/internal/playback"
	"github.com/nortedigital/pagebot/internal/render"
	"github.com/nortedigital/pagebot/internal/script"
	"github.com/nortedigital/pagebot/pkg/logging"
)

type demoOptions struct {
	loops     int
	speed     float64
	cooldown  time.Duration
	scannable bool
	clock     playback.Clock
}

func newDemoCommand(root *rootOptions) *cobra.Command {
	opts := &demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Play the PageBot sales conversation",
		Long: `Play the scripted PageBot conversation with typing indicators, service cards,
quotes and the PIX QR code. The conversation restarts after a cooldown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.speed <= 0 {
				return fmt.Errorf("--speed must be positive, got %v", opts.speed)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			err := runDemo(ctx, cmd.OutOrStdout(), root.log, opts)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVar(&opts.loops, "loops", 1, "number of times to play the conversation (0 plays forever)")
	cmd.Flags().Float64Var(&opts.speed, "speed", 1, "playback speed multiplier")
	cmd.Flags().DurationVar(&opts.cooldown, "cooldown", playback.DefaultCooldown, "pause before the conversation restarts")
	cmd.Flags().BoolVar(&opts.scannable, "scannable", false, "print the WhatsApp call to action as a scannable QR code")
	return cmd
}

func runDemo(ctx context.Context, out io.Writer, logger *logging.Logger, opts *demoOptions) error {
	if logger == nil {
		logger = logging.Default()
	}
	base := opts.clock
	if base == nil {
		base = playback.RealClock()
	}
	term := render.NewTerminal(out)
	term.ScannableLinks = opts.scannable
	renderer := render.New()

	var writeErr error
	observe := func(ev playback.Event) {
		if writeErr != nil {
			return
		}
		switch ev.Kind {
		case playback.EventTyping:
			writeErr = term.WriteTyping(ev.ImageLoading)
		case playback.EventMessage:
			if block, ok := renderer.Render(*ev.Message); ok {
				writeErr = term.WriteText(block)
			}
		case playback.EventReset:
			_, writeErr = fmt.Fprintln(out, "---- reiniciando a conversa ----")
		}
	}

	player := playback.NewPlayer(script.Demo(),
		playback.WithClock(playback.ScaledClock{Base: base, Factor: opts.speed}),
		playback.WithCooldown(opts.cooldown),
		playback.WithObserver(observe),
		playback.WithLogger(logger),
	)

	played := 0
	for {
		if writeErr != nil {
			return writeErr
		}
		if player.Done() {
			played++
			if opts.loops > 0 && played >= opts.loops {
				return nil
			}
		}
		if err := player.Step(ctx); err != nil {
			return err
		}
	}
}
