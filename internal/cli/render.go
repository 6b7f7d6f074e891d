package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-jsonml"
)

// renderCommand creates the render command, which writes the HTML text of
// a JsonML document.
func (c *CLI) renderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render [file]",
		Short: "Render a JsonML document as HTML",
		Long:  `Render a JsonML document as HTML. Text content is written verbatim; attribute values are escaped.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.decodeInput(cmd, args)
			if err != nil {
				return err
			}

			prog := newProgress(loggerFromContext(cmd.Context()))
			html, err := jsonml.Render(e)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), html); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Rendered %d bytes", len(html)))
			return nil
		},
	}
}
