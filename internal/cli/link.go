package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nortedigital/pagebot/internal/render"
	"github.com/nortedigital/pagebot/internal/whatsapp"
)

func newLinkCommand(root *rootOptions) *cobra.Command {
	var (
		text string
		qr   bool
	)

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Print a WhatsApp link with a prefilled message",
		Example: `  pagebot link
  pagebot link --text "Olá! Quero um orçamento." --qr`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			link, err := whatsapp.Link(root.number, text)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, link); err != nil {
				return err
			}
			if qr {
				render.NewTerminal(out).WriteLinkQR(link)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", whatsapp.ContactMessage, "message to prefill")
	cmd.Flags().BoolVar(&qr, "qr", false, "also print the link as a scannable QR code")
	return cmd
}
