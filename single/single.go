// Package single handles one YouTube URL: it prints the thumbnail URL or downloads the image.
package single

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ytthumbs/ytthumbs/filesystem"
	"github.com/ytthumbs/ytthumbs/icon"
	"github.com/ytthumbs/ytthumbs/youtube"
)

// ErrNoVideoID is returned when the URL matches none of youtube.SupportedFormats.
var ErrNoVideoID = errors.New("could not extract video ID from URL")

// Downloader saves the thumbnail of a video to a path.
type Downloader interface {
	Download(ctx context.Context, id, path string) (youtube.Quality, error)
}

// Options configure a single-URL run.
type Options struct {
	URL string

	// Download saves the image instead of printing its URL.
	Download bool

	// Output is the download destination; defaults to "<id>.jpg".
	Output string

	Downloader Downloader
	Out        io.Writer
}

// Run executes single-URL mode.
func Run(ctx context.Context, options *Options) error {
	id, ok := youtube.ExtractVideoID(options.URL).Get()
	if !ok {
		return &NoVideoIDError{URL: options.URL}
	}

	if !options.Download {
		_, err := fmt.Fprintln(options.Out, youtube.ThumbnailURL(id))
		return err
	}

	path := OutputPath(id, options.Output)
	if err := filesystem.EnsureParent(path); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fmt.Fprintln(options.Out, icon.Prefix(icon.Progress, "Downloading thumbnail for video ID: "+id))
	fmt.Fprintln(options.Out, icon.Prefix(icon.Image, "Saving to: "+path))

	quality, err := options.Downloader.Download(ctx, id, path)
	if err != nil {
		return fmt.Errorf("failed to download thumbnail for video ID %s: %w", id, err)
	}

	fmt.Fprintln(options.Out, icon.Prefix(icon.Success, fmt.Sprintf("Successfully downloaded thumbnail (%s) to %s", quality, path)))
	return nil
}

// OutputPath returns output, or "<id>.jpg" when output is empty.
func OutputPath(id, output string) string {
	if output != "" {
		return output
	}
	return id + ".jpg"
}

// NoVideoIDError carries the rejected URL and lists the supported shapes in its message.
type NoVideoIDError struct {
	URL string
}

func (e *NoVideoIDError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\nSupported formats:", ErrNoVideoID, e.URL)
	for _, format := range youtube.SupportedFormats {
		b.WriteString("\n  - " + format)
	}
	return b.String()
}

func (e *NoVideoIDError) Unwrap() error {
	return ErrNoVideoID
}
