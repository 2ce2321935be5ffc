// Command markview renders HTML, Markdown and other documents as terminal
// text using the same widget tree the preview server hands out.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/dgallion1/markwidget/internal/source"
	"github.com/dgallion1/markwidget/internal/termhost"
	"github.com/dgallion1/markwidget/markup"
	"github.com/dgallion1/markwidget/widget"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	width     int
	expandAll bool
	markdown  bool
	verbose   bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "markview",
		Short: "Render documents as terminal text",
		Long: `markview converts a document into a widget tree and draws it in the terminal.

Examples:
  markview render README.md
  markview render page.html --width 60 --expand-all
  cat notes.md | markview render - --markdown
  markview images page.html`,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	root.PersistentFlags().BoolVarP(&opts.markdown, "markdown", "m", false, "Treat standard input as Markdown")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log skipped and unsupported elements")

	render := &cobra.Command{
		Use:   "render <file>",
		Short: "Draw a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := load(args[0], opts, stderr)
			if err != nil {
				return err
			}
			if opts.expandAll {
				expandAll(st)
			}
			tree := markup.Render(st, markup.Options[markup.Change]{
				OnChange: func(c markup.Change) markup.Change { return c },
				OnImage: func(img markup.ImageInfo) widget.Element[markup.Change] {
					return &widget.Image{URL: img.URL, Width: img.Width, Height: img.Height}
				},
			})
			fmt.Fprintln(stdout, termhost.Render[markup.Change](tree, opts.width))
			return nil
		},
	}
	render.Flags().IntVarP(&opts.width, "width", "w", 80, "Output width in columns")
	render.Flags().BoolVar(&opts.expandAll, "expand-all", false, "Open every collapsible section")

	images := &cobra.Command{
		Use:   "images <file>",
		Short: "List image sources referenced by a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := load(args[0], opts, stderr)
			if err != nil {
				return err
			}
			for _, link := range slices.Sorted(maps.Keys(st.FindImageLinks())) {
				fmt.Fprintln(stdout, link)
			}
			return nil
		},
	}

	root.AddCommand(render, images)
	return root
}

// load reads path, or standard input for "-", into a markup state.
func load(path string, opts options, stderr io.Writer) (*markup.State, error) {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		doc := &source.Document{Markup: string(data), Markdown: opts.markdown}
		return doc.State(markup.WithLogger(log)), nil
	}

	loader, err := source.ForFile(path)
	if err != nil {
		return nil, err
	}
	if pdf, ok := loader.(*source.PDFLoader); ok {
		pdf.FallbackPdftotext = true
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := loader.Load(f, path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	log.Debug("document loaded", "title", doc.Title, "markdown", doc.Markdown, "bytes", len(doc.Markup))
	return doc.State(markup.WithLogger(log)), nil
}

// expandAll opens every collapsible section, flushing the queue whenever it
// fills up.
func expandAll(st *markup.State) {
	for id := range st.Dropdowns() {
		c := markup.Change{Kind: markup.ChangeToggle, ID: id, Open: true}
		if err := st.Submit(c); errors.Is(err, markup.ErrQueueFull) {
			st.Update()
			_ = st.Submit(c)
		}
	}
	st.Update()
}
