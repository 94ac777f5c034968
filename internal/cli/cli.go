// Package cli implements the netroute command-line interface.
//
// # Commands
//
//   - route:    compute shortest paths from one source and print routes
//   - generate: write a random network file (YAML or TOML)
//   - compare:  time both frontier strategies on random networks
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// surfaces the solver's per-run records. The logger travels through the
// command context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "netroute"

// Version is reported by --version. Overridden at build time via ldflags.
var Version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI whose logger writes to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Shortest paths over weighted road networks",
		Long:         `netroute computes single-source shortest paths over directed networks with non-negative edge lengths, using either a linear-scan or a binary-heap priority frontier.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.AddCommand(c.routeCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.compareCommand())

	return root
}
