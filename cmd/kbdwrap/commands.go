package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/kbdwrap/internal/app"
	"github.com/dshills/kbdwrap/internal/engine/cursor"
	"github.com/dshills/kbdwrap/internal/render"
	"github.com/dshills/kbdwrap/internal/style"
)

// openArg opens FILE, reading stdin when it is "-".
func (c *cli) openArg(path string) (*app.Document, error) {
	if path == "-" {
		return c.app.OpenReader(c.stdin)
	}
	return c.app.OpenFile(path)
}

// finish saves doc when write is set, or prints it.
func (c *cli) finish(doc *app.Document, write bool) error {
	if write {
		if !doc.IsModified() {
			return nil
		}
		return doc.Save()
	}
	_, err := fmt.Fprint(c.stdout, doc.Content())
	return err
}

func (c *cli) newToggleCmd() *cobra.Command {
	var (
		specs []string
		write bool
	)

	cmd := &cobra.Command{
		Use:   "toggle FILE",
		Short: "Wrap or unwrap <kbd> tags at the given selections",
		Example: `  kbdwrap toggle notes.md --sel 0:6-0:10
  kbdwrap toggle notes.md --sel 3:12 --sel 5:0-5:4 --write
  echo "Press Esc" | kbdwrap toggle - --sel 0:6-0:9`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sels := make([]cursor.Selection, 0, len(specs))
			for _, spec := range specs {
				sel, err := cursor.ParseSelection(spec)
				if err != nil {
					return err
				}
				sels = append(sels, sel)
			}

			doc, err := c.openArg(args[0])
			if err != nil {
				return err
			}
			doc.Engine.SetSelections(sels...)

			res, err := c.app.ToggleDocument()
			if err != nil {
				return err
			}
			if n := res.GetDataInt("dropped"); n > 0 {
				c.app.Logger().Warn("skipped %d overlapping selections", n)
			}
			return c.finish(doc, write && args[0] != "-")
		},
	}

	cmd.Flags().StringArrayVarP(&specs, "sel", "s", nil, "selection as line:col or line:col-line:col (repeatable)")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to FILE")
	return cmd
}

func (c *cli) newRenderCmd() *cobra.Command {
	var (
		styleName string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render markdown to an HTML page styled with the kbd style",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.openArg(args[0])
			if err != nil {
				return err
			}

			var page []byte
			if styleName != "" {
				st, err := style.Parse(styleName)
				if err != nil {
					return err
				}
				page, err = render.HTML([]byte(doc.Engine.Text()), st)
				if err != nil {
					return err
				}
			} else {
				page, err = c.app.RenderHTML([]byte(doc.Engine.Text()))
				if err != nil {
					return err
				}
			}

			if output != "" {
				return os.WriteFile(output, page, 0o644)
			}
			_, err = c.stdout.Write(page)
			return err
		},
	}

	cmd.Flags().StringVar(&styleName, "style", "", "style to render with instead of the configured one")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the page to this file")
	return cmd
}

func (c *cli) newPreviewCmd() *cobra.Command {
	var colorMode string

	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Show the file with <kbd> spans drawn as key caps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.openArg(args[0])
			if err != nil {
				return err
			}

			var color bool
			switch colorMode {
			case "always":
				color = true
			case "never":
				color = false
			case "auto":
				color = render.ColorEnabled(c.stdout)
			default:
				return fmt.Errorf("invalid --color %q (must be auto, always, or never)", colorMode)
			}

			_, err = fmt.Fprint(c.stdout, c.app.Preview(doc.Engine.Text(), color))
			return err
		},
	}

	cmd.Flags().StringVar(&colorMode, "color", "auto", "colour output: auto, always, or never")
	return cmd
}

func (c *cli) newScriptCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "script FILE SCRIPT.lua",
		Short: "Run a Lua script that selects and toggles text in FILE",
		Long: `script runs SCRIPT.lua against FILE. The script sees a global kbd table:

  kbd.select(l1, c1, l2, c2)  add a selection (1-indexed)
  kbd.add_cursor(l, c)        add a caret
  kbd.clear()                 drop the script's selections
  kbd.toggle()                toggle; returns true if the text changed
  kbd.text(), kbd.line(n)     read the document
  kbd.line_count()            number of lines
  kbd.undo()                  revert the last toggle

Output from print goes to stderr so the document can be piped.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.openArg(args[0])
			if err != nil {
				return err
			}
			if err := c.app.RunScript(cmd.Context(), doc.Engine, args[1], c.stderr); err != nil {
				return err
			}
			return c.finish(doc, write && args[0] != "-")
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to FILE")
	return cmd
}

func (c *cli) newStyleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "style [NAME]",
		Short: "Show the available kbd styles, or select one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return c.app.SetStyle(args[0])
			}

			fmt.Fprintln(c.stdout, c.app.SettingsTitle())
			for _, opt := range c.app.StyleOptions() {
				marker := " "
				if opt.Selected {
					marker = "*"
				}
				fmt.Fprintf(c.stdout, "%s %-14s %s\n", marker, opt.Style, opt.Label)
			}
			return nil
		},
	}
}

func (c *cli) newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "List the editor menu entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, item := range c.app.Menu() {
				fmt.Fprintf(c.stdout, "%s\t%s\t%s\t%s\n", item.Section, item.Icon, item.Title, item.CommandID)
			}
			return nil
		},
	}
}

func (c *cli) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reload the settings file whenever it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(c.stderr, "watching %s (style %s)\n", c.app.Config().Path(), c.app.Style())
			return c.app.Watch(cmd.Context())
		},
	}
}
