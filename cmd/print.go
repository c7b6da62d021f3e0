package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// printMarkdown writes md to w, rendered for the terminal unless -plain.
func printMarkdown(w io.Writer, md string) {
	if *plain {
		fmt.Fprint(w, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		logger.Warn().Err(err).Msg("cannot create markdown renderer, printing raw markdown")
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		logger.Warn().Err(err).Msg("cannot render markdown, printing raw markdown")
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
