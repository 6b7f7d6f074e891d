package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-jsonml"
)

const stdinName = "-"

// decodeInput reads the document named by args, or standard input if there
// is no argument or it is "-", and decodes it with the configured options.
func (c *CLI) decodeInput(cmd *cobra.Command, args []string) (jsonml.Element, error) {
	logger := loggerFromContext(cmd.Context())

	name := stdinName
	if len(args) > 0 {
		name = args[0]
	}

	var (
		data []byte
		err  error
	)
	if name == stdinName {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	logger.Debug("read input", "source", name, "bytes", len(data))

	prog := newProgress(logger)
	e, err := jsonml.Unmarshal(data, c.config.decodeOptions()...)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	prog.done("Decoded " + name)
	return e, nil
}
