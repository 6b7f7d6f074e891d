// Package cli implements the jsonml command-line interface.
//
// The commands read one JsonML document from a file or standard input and
// write the result to standard output:
//   - render: convert JsonML to HTML
//   - fmt: re-encode JsonML in canonical form
//   - tree: print the markup tree as an indented outline
//
// All commands support --verbose (-v) for debug-level logging and --config
// for a TOML configuration file.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "jsonml"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	config Config
}

// New creates a new CLI instance whose logger writes to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           appName,
		Short:         "Convert JsonML documents to HTML and back",
		Long:          `jsonml reads markup trees encoded as JsonML arrays, renders them as HTML, re-encodes them canonically and prints their structure.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				cfg, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				c.config = cfg
			}
			if verbose || c.config.Verbose {
				c.SetLogLevel(LogDebug)
			}
			c.Logger.Debug("configuration", "file", configPath, "indent", c.config.Indent, "max_depth", c.config.MaxDepth)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML configuration file")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.fmtCommand())
	root.AddCommand(c.treeCommand())

	return root
}
