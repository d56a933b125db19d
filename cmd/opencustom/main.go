package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/five82/opencustom/internal/app"
	"github.com/five82/opencustom/internal/ui"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Query the terminal background before Bubble Tea owns stdin.
	_ = lipgloss.HasDarkBackground()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "opencustom: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:           "opencustom",
		Short:         "A typewriter showcase of code snippets for the terminal",
		Long:          `Types a collection of syntax-highlighted code snippets into the terminal line by line, erasing and retyping them in a loop.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default: ~/.config/opencustom/config.toml)")
	flags.StringVarP(&opts.Snippets, "snippets", "s", "", "snippet file or http(s) URL, overriding the config")
	flags.StringVarP(&opts.Theme, "theme", "t", "", "color theme: Nightfox, Kanagawa or Slate")
	root.Flags().BoolVar(&opts.Debug, "debug", false, "write a debug log")
	root.Flags().StringVar(&opts.LogFile, "log-file", "", "debug log path (default: ./opencustom.log)")
	root.Flags().BoolVar(&opts.NoWatch, "no-watch", false, "do not reload the snippet file when it changes")

	root.AddCommand(newSnippetsCmd(&opts), newHighlightCmd(&opts))
	return root
}

func newSnippetsCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "snippets",
		Short: "List the snippet collection that would be shown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := app.Prepare(cmd.Context(), *opts)
			if err != nil {
				return err
			}
			res := sess.Snippets
			out := cmd.OutOrStdout()

			switch {
			case res.Source == "":
				fmt.Fprintln(out, "source: built-in defaults")
			case res.Fallback:
				fmt.Fprintf(out, "source: built-in defaults (%s: %v)\n", res.Source, res.Err)
			default:
				fmt.Fprintf(out, "source: %s\n", res.Source)
			}
			for i, s := range res.Snippets {
				lang := s.Language
				if lang == "" {
					lang = "-"
				}
				fmt.Fprintf(out, "%3d  %-12s %3d lines  %s\n", i+1, lang, len(s.Lines), s.Description)
			}
			return nil
		},
	}
}

func newHighlightCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "highlight [file]",
		Short: "Print a file with the panel's syntax colors",
		Long:  `Tokenizes each line of file (or stdin) with the built-in and configured rules and prints it in the selected theme.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Prepare(cmd.Context(), *opts)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open %s: %w", args[0], err)
				}
				defer f.Close()
				in = f
			}
			styles := ui.GetTheme(sess.Config.Theme).Styles()
			return highlightLines(cmd.OutOrStdout(), in, func(line string) string {
				return ui.RenderTokens(styles, sess.Tokenizer.Tokenize(line))
			})
		},
	}
}

func highlightLines(w io.Writer, r io.Reader, render func(string) string) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(w, render(scanner.Text())); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
