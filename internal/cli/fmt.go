package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-jsonml"
)

// fmtCommand creates the fmt command, which re-encodes a JsonML document
// with sorted attributes and uniform indentation.
func (c *CLI) fmtCommand() *cobra.Command {
	var indent int

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Re-encode a JsonML document in canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("indent") {
				indent = c.config.Indent
			}

			e, err := c.decodeInput(cmd, args)
			if err != nil {
				return err
			}

			out, err := jsonml.Marshal(e, jsonml.Indent(indent))
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	cmd.Flags().IntVar(&indent, "indent", defaultIndent, "spaces per indentation level (0 for compact output)")

	return cmd
}
