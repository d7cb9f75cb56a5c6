// Command readably extracts readable content from HTML files, stdin, or a
// URL, and prints the result as JSON, HTML, or plain text.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/nrois/readably"
)

var cli struct {
	Extract ExtractCmd `cmd:"" help:"Extract readable content from an HTML file or stdin."`
	Fetch   FetchCmd   `cmd:"" help:"Fetch a URL and extract readable content from it."`
}

// ExtractCmd reads HTML from a file (or stdin) and extracts an article.
type ExtractCmd struct {
	Input    string `arg:"" optional:"" default:"-" help:"HTML file path, or '-' for stdin."`
	Format   string `enum:"json,html,text" default:"json" help:"Output format."`
	Comments bool   `help:"Include extracted comments."`
	Compact  bool   `help:"Emit compact JSON without indentation."`
}

func (c *ExtractCmd) Run() error {
	html, err := readInput(c.Input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	r, err := readably.New(html)
	if err != nil {
		return err
	}
	data, err := r.ExtractReadabilityData(c.Comments)
	if err != nil {
		return err
	}
	return writeOutput(os.Stdout, data, c.Format, c.Compact)
}

// FetchCmd fetches a URL over HTTP and extracts an article from the body.
type FetchCmd struct {
	URL      string        `arg:"" help:"URL to fetch."`
	Format   string        `enum:"json,html,text" default:"json" help:"Output format."`
	Comments bool          `help:"Include extracted comments."`
	Compact  bool          `help:"Emit compact JSON without indentation."`
	Timeout  time.Duration `default:"30s" help:"Request timeout."`
}

func (c *FetchCmd) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	data, err := readably.Parse(ctx, c.URL, readably.WithIncludeComments(c.Comments))
	if err != nil {
		return err
	}
	return writeOutput(os.Stdout, data, c.Format, c.Compact)
}

func readInput(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "-" && path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func writeOutput(w io.Writer, data *readably.ReadabilityData, format string, compact bool) error {
	switch format {
	case "html":
		_, err := fmt.Fprintln(w, data.Content)
		return err
	case "text":
		_, err := fmt.Fprintln(w, data.Text)
		return err
	default:
		var (
			out []byte
			err error
		)
		if compact {
			out, err = json.Marshal(data)
		} else {
			out, err = json.MarshalIndent(data, "", "  ")
		}
		if err != nil {
			return err
		}
		_, err = w.Write(append(out, '\n'))
		return err
	}
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("readably"),
		kong.Description("Extract a readable article from HTML."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
