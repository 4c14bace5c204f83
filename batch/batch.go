// Package batch turns a file of YouTube URLs into a markdown table of thumbnails, titles and descriptions.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/ytthumbs/ytthumbs/filesystem"
	"github.com/ytthumbs/ytthumbs/icon"
	"github.com/ytthumbs/ytthumbs/log"
	"github.com/ytthumbs/ytthumbs/util"
	"github.com/ytthumbs/ytthumbs/youtube"
)

var (
	ErrBatchFileNotFound = errors.New("batch file not found")
	ErrNoURLs            = errors.New("no URLs found in batch file")
	ErrNothingProcessed  = errors.New("no valid URLs were processed")
)

// MetadataSource looks up metadata for a video identifier.
type MetadataSource interface {
	Lookup(ctx context.Context, id string) (youtube.Metadata, error)
}

// Options configure a batch run.
type Options struct {
	// Input is the path of the URL list, one URL per line.
	Input string

	// Output is the markdown destination. When empty the table goes to Out.
	Output string

	Source MetadataSource

	// DescriptionLimit caps description cells, see NewRow.
	DescriptionLimit int

	// Out receives the table when Output is empty.
	Out io.Writer

	// Err receives warnings and progress.
	Err io.Writer
}

// Skip records a URL that produced no row.
type Skip struct {
	URL    string
	Reason error
}

// Report is the outcome of processing a URL list, in file order.
type Report struct {
	Rows    []Row
	Skipped []Skip
	Total   int
}

// ReadURLs returns the trimmed, non-blank lines of the file at path.
func ReadURLs(path string) ([]string, error) {
	data, err := filesystem.API().ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrBatchFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read batch file: %w", err)
	}

	urls := lo.Filter(lo.Map(strings.Split(string(data), "\n"), func(line string, _ int) string {
		return strings.TrimSpace(line)
	}), func(line string, _ int) bool {
		return line != ""
	})

	if len(urls) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoURLs, path)
	}

	return urls, nil
}

// Process builds one row per URL that yields an identifier and metadata.
// Bad URLs and failed lookups are skipped with a warning on options.Err;
// only cancellation of ctx stops the run early.
func Process(ctx context.Context, urls []string, options *Options) (*Report, error) {
	report := &Report{Total: len(urls)}

	for _, url := range urls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		id, ok := youtube.ExtractVideoID(url).Get()
		if !ok {
			report.Skipped = append(report.Skipped, Skip{URL: url, Reason: errors.New("invalid URL")})
			warn(options.Err, "Warning: Skipping invalid URL: %s", url)
			continue
		}

		meta, err := options.Source.Lookup(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			report.Skipped = append(report.Skipped, Skip{URL: url, Reason: err})
			log.Warnf("batch: lookup %s: %v", id, err)
			warn(options.Err, "Warning: Error processing %s: %v", url, err)
			continue
		}

		row := NewRow(meta, options.DescriptionLimit)
		report.Rows = append(report.Rows, row)
		progress(options.Err, "Processed: "+row.Title)
	}

	return report, nil
}

// Run reads options.Input, processes every URL and emits the table.
// Nothing is written when the input is unusable or no row was produced.
func Run(ctx context.Context, options *Options) (*Report, error) {
	urls, err := ReadURLs(options.Input)
	if err != nil {
		return nil, err
	}

	report, err := Process(ctx, urls, options)
	if err != nil {
		return nil, err
	}

	if len(report.Rows) == 0 {
		return report, ErrNothingProcessed
	}

	table := Render(report.Rows)
	summary := fmt.Sprintf("Processed %d of %s", len(report.Rows), util.Quantify(report.Total, "URL", "URLs"))

	if options.Output == "" {
		_, err = fmt.Fprintln(options.Out, table)
		if err != nil {
			return report, err
		}
		fmt.Fprintf(options.Err, "\n%s\n", summary)
		return report, nil
	}

	if err := Write(options.Output, table); err != nil {
		return report, err
	}

	fmt.Fprintf(options.Err, "\n%s\n", icon.Prefix(icon.Success, "Successfully wrote markdown table to: "+options.Output))
	fmt.Fprintln(options.Err, summary)
	return report, nil
}

// Write stores table at path with a trailing newline, creating parent directories as needed.
func Write(path, table string) error {
	if err := filesystem.EnsureParent(path); err != nil {
		return fmt.Errorf("could not write to output file: %w", err)
	}

	if err := filesystem.WriteAtomic(path, []byte(table+"\n")); err != nil {
		return fmt.Errorf("could not write to output file: %w", err)
	}

	return nil
}

func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, icon.Prefix(icon.Warn, fmt.Sprintf(format, args...)))
}

// progress writes msg on its own line, cut to the terminal width when w is a terminal.
func progress(w io.Writer, msg string) {
	if f, ok := w.(*os.File); ok && util.IsTerminal(f) {
		if width, err := util.TerminalWidth(f); err == nil {
			msg = util.FitWidth(msg, width)
		}
	}
	fmt.Fprintln(w, msg)
}
