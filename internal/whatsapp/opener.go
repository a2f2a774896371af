package whatsapp

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/browser"
)

// Opener hands a link to whatever plays the role of "a new browser tab".
type Opener interface {
	Open(ctx context.Context, link string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(ctx context.Context, link string) error

// Open calls f.
func (f OpenerFunc) Open(ctx context.Context, link string) error { return f(ctx, link) }

// BrowserOpener launches the system browser.
type BrowserOpener struct {
	// Stdout and Stderr receive the launcher's output; nil discards it.
	Stdout io.Writer
	Stderr io.Writer
}

// Open launches link in the default browser.
func (o BrowserOpener) Open(ctx context.Context, link string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	browser.Stdout = discardIfNil(o.Stdout)
	browser.Stderr = discardIfNil(o.Stderr)
	if err := browser.OpenURL(link); err != nil {
		return fmt.Errorf("whatsapp: open browser: %w", err)
	}
	return nil
}

// PrintOpener writes the link instead of opening it.
type PrintOpener struct {
	W io.Writer
}

// Open prints link on its own line.
func (o PrintOpener) Open(_ context.Context, link string) error {
	_, err := fmt.Fprintln(o.W, link)
	return err
}

func discardIfNil(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
