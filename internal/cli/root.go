// Package cli implements the pagebot terminal commands.
package cli

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nortedigital/pagebot/internal/whatsapp"
	"github.com/nortedigital/pagebot/pkg/logging"
)

type rootOptions struct {
	number   string
	noColor  bool
	logLevel string

	// log is built once per invocation, writing to the command's stderr.
	log *logging.Logger
}

// NewRootCommand builds the command tree. Tests call it directly with their
// own writers.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "pagebot",
		Short: "Norte Digital PageBot in the terminal",
		Long: `pagebot plays the PageBot sales demo, chats with the site assistant and
builds WhatsApp links for Norte Digital, all from the terminal.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
			opts.log = opts.logger(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&opts.number, "number", envOr("WHATSAPP_NUMBER", whatsapp.DefaultNumber), "WhatsApp number in international format, digits only")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", envOr("LOG_LEVEL", "warn"), "log level (debug, info, warn, error)")

	cmd.AddCommand(newDemoCommand(opts))
	cmd.AddCommand(newChatCommand(opts))
	cmd.AddCommand(newLinkCommand(opts))
	return cmd
}

// Execute runs the CLI against the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

func (o *rootOptions) logger(w io.Writer) *logging.Logger {
	return logging.NewWithOptions(logging.Options{Level: o.logLevel, Format: "text", Writer: w})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
