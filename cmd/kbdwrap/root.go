package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/kbdwrap/internal/app"
	"github.com/dshills/kbdwrap/internal/dispatcher"
)

// cli holds the state shared by all subcommands.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	opts app.Options
	app  *app.Application
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "kbdwrap",
		Short: "Toggle <kbd> tags around selections in text files",
		Long: `kbdwrap wraps selected text in <kbd></kbd> tags, or removes the tags
when the selection or cursor is already inside a <kbd> span.

Selections use 0-indexed line:col byte positions, e.g. --sel 2:4-2:9.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.app != nil {
				c.app.Shutdown()
			}
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&c.opts.ConfigPath, "config", "c", "", "path to the settings file (.toml, .yaml or .json)")
	flags.StringVar(&c.opts.Locale, "locale", "", "language for messages (defaults to $LANG)")
	flags.StringVar(&c.opts.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		c.newToggleCmd(),
		c.newRenderCmd(),
		c.newPreviewCmd(),
		c.newScriptCmd(),
		c.newStyleCmd(),
		c.newMenuCmd(),
		c.newWatchCmd(),
		newVersionCmd(),
	)
	return root
}

func (c *cli) init(cmd *cobra.Command) error {
	if cmd.Name() == "version" {
		return nil
	}

	switch c.opts.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", c.opts.LogLevel)
	}

	c.opts.LogOutput = c.stderr
	c.opts.Notifier = dispatcher.NotifierFunc(func(msg string) {
		fmt.Fprintln(c.stderr, msg)
	})

	a, err := app.New(c.opts)
	if err != nil {
		return err
	}
	c.app = a
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "kbdwrap %s\n", version)
			fmt.Fprintf(out, "Commit: %s\n", commit)
			fmt.Fprintf(out, "Built: %s\n", date)
		},
	}
}
